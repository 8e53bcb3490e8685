package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/gridplanner/pkg/types"
)

func TestParsePlannerConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *PlannerConfig)
	}{
		{
			name: "full config",
			yamlContent: `
variant: open
grid:
  width: 8
  height: 5
seedTiles:
  - {x: 3, y: 3}
save:
  appName: ""
  path: saves/layout.yaml
window:
  title: Test
  width: 640
  height: 480
  originX: 10
  originY: 20
  cellSize: 32
`,
			validate: func(t *testing.T, cfg *PlannerConfig) {
				if cfg.Variant != types.VariantOpen {
					t.Errorf("expected variant open, got %s", cfg.Variant)
				}
				if cfg.Grid.Width != 8 || cfg.Grid.Height != 5 {
					t.Errorf("expected grid 8x5, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
				}
				seeds := cfg.Seeds()
				if len(seeds) != 1 || seeds[0] != (types.Coord{X: 3, Y: 3}) {
					t.Errorf("expected one seed at 3,3, got %v", seeds)
				}
				if cfg.Save.AppName != "" || cfg.Save.Path != "saves/layout.yaml" {
					t.Errorf("unexpected save config %+v", cfg.Save)
				}
				if cfg.Window.CellSize != 32 || cfg.Window.OriginY != 20 {
					t.Errorf("unexpected window config %+v", cfg.Window)
				}
			},
		},
		{
			name:        "partial config keeps defaults",
			yamlContent: "grid:\n  width: 3\n  height: 2\n",
			validate: func(t *testing.T, cfg *PlannerConfig) {
				if cfg.Variant != types.VariantSeeded {
					t.Errorf("expected default variant seeded, got %s", cfg.Variant)
				}
				if len(cfg.SeedTiles) != 6 {
					t.Errorf("expected 6 default seeds, got %d", len(cfg.SeedTiles))
				}
				if cfg.Save.AppName != "gridplanner" {
					t.Errorf("expected default appName, got %q", cfg.Save.AppName)
				}
			},
		},
		{
			name:        "unknown variant",
			yamlContent: "variant: hexagonal\n",
			wantErr:     true,
			errContains: "unknown variant",
		},
		{
			name:        "zero grid",
			yamlContent: "grid:\n  width: 0\n  height: 4\n",
			wantErr:     true,
			errContains: "grid size must be positive",
		},
		{
			name:        "negative seed",
			yamlContent: "seedTiles:\n  - {x: -1, y: 0}\n",
			wantErr:     true,
			errContains: "negative coordinate",
		},
		{
			name:        "no save backend",
			yamlContent: "save:\n  appName: \"\"\n  path: \"\"\n",
			wantErr:     true,
			errContains: "appName or path is required",
		},
		{
			name:        "bad cell size",
			yamlContent: "window:\n  cellSize: 0\n",
			wantErr:     true,
			errContains: "cellSize must be positive",
		},
		{
			name:        "bad window size",
			yamlContent: "window:\n  width: 0\n",
			wantErr:     true,
			errContains: "window size must be positive",
		},
		{
			name:        "malformed yaml",
			yamlContent: "grid: [1, 2",
			wantErr:     true,
			errContains: "failed to parse planner config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParsePlannerConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadPlannerConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	if err := os.WriteFile(path, []byte("variant: open\n"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := LoadPlannerConfig(path)
	if err != nil {
		t.Fatalf("LoadPlannerConfig error: %v", err)
	}
	if cfg.Variant != types.VariantOpen {
		t.Errorf("expected variant open, got %s", cfg.Variant)
	}

	if _, err := LoadPlannerConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDefaultPlannerConfigIsValid(t *testing.T) {
	if err := DefaultPlannerConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestBundledPlannerConfig(t *testing.T) {
	cfg, err := LoadPlannerConfig(filepath.Join("..", "..", DefaultPlannerConfigPath))
	if err != nil {
		t.Fatalf("bundled config should load: %v", err)
	}
	def := DefaultPlannerConfig()
	if cfg.Variant != def.Variant || cfg.Grid != def.Grid || len(cfg.SeedTiles) != len(def.SeedTiles) {
		t.Errorf("bundled config drifted from defaults: %+v", cfg)
	}
}
