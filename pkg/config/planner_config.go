package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/gridplanner/pkg/types"
)

// DefaultPlannerConfigPath 内嵌默认配置的路径
const DefaultPlannerConfigPath = "data/planner.yaml"

// PlannerConfig 网格规划器配置
//
// 配置文件位置: data/planner.yaml（内嵌），可通过 -config 参数覆盖
type PlannerConfig struct {
	// Variant 网格变体：open（全部解锁，点击解锁）或 seeded（种子解锁，点击放置）
	Variant types.GridVariant `yaml:"variant"`

	// Grid 初始网格尺寸
	Grid GridSizeConfig `yaml:"grid"`

	// SeedTiles seeded 变体下初始解锁的格子
	SeedTiles []TileCoordConfig `yaml:"seedTiles"`

	// Save 存档配置
	Save SaveConfig `yaml:"save"`

	// Window 桌面窗口和格子尺寸
	Window WindowConfig `yaml:"window"`
}

// GridSizeConfig 初始网格尺寸
type GridSizeConfig struct {
	Width  int `yaml:"width"`  // 行数
	Height int `yaml:"height"` // 列数
}

// TileCoordConfig 格子坐标
type TileCoordConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SaveConfig 存档配置
type SaveConfig struct {
	// AppName gdata 应用名，为空时不使用 gdata
	AppName string `yaml:"appName"`

	// Path gdata 不可用时使用的固定存档路径
	Path string `yaml:"path"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title    string  `yaml:"title"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	OriginX  float64 `yaml:"originX"`  // 网格左上角屏幕X坐标
	OriginY  float64 `yaml:"originY"`  // 网格左上角屏幕Y坐标
	CellSize float64 `yaml:"cellSize"` // 格子边长（像素）
}

// DefaultPlannerConfig 返回默认配置
// 与 data/planner.yaml 保持一致，内嵌文件缺失时使用
func DefaultPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		Variant: types.VariantSeeded,
		Grid:    GridSizeConfig{Width: 6, Height: 6},
		SeedTiles: []TileCoordConfig{
			{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
			{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2},
		},
		Save: SaveConfig{
			AppName: "gridplanner",
			Path:    "layout.yaml",
		},
		Window: WindowConfig{
			Title:    "Grid Layout Planner",
			Width:    800,
			Height:   600,
			OriginX:  40,
			OriginY:  40,
			CellSize: 44,
		},
	}
}

// LoadPlannerConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *PlannerConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadPlannerConfig(path string) (*PlannerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read planner config: %w", err)
	}
	return ParsePlannerConfig(data)
}

// ParsePlannerConfig 解析 YAML 配置
//
// 未出现在 YAML 中的字段保留默认值。
func ParsePlannerConfig(data []byte) (*PlannerConfig, error) {
	cfg := DefaultPlannerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse planner config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planner config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 变体为 open 或 seeded
//   - 网格尺寸为正整数
//   - 种子坐标非负
//   - 至少配置一个存档后端
//   - 窗口和格子尺寸为正数
func (c *PlannerConfig) Validate() error {
	if !c.Variant.IsValid() {
		return fmt.Errorf("unknown variant %q (expected %q or %q)", c.Variant, types.VariantOpen, types.VariantSeeded)
	}

	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}

	for i, seed := range c.SeedTiles {
		if seed.X < 0 || seed.Y < 0 {
			return fmt.Errorf("seed tile %d has negative coordinate (%d, %d)", i, seed.X, seed.Y)
		}
	}

	if c.Save.AppName == "" && c.Save.Path == "" {
		return fmt.Errorf("save: appName or path is required")
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Window.CellSize <= 0 {
		return fmt.Errorf("window cellSize must be positive, got %.1f", c.Window.CellSize)
	}

	return nil
}

// Seeds 返回种子格子坐标
func (c *PlannerConfig) Seeds() []types.Coord {
	seeds := make([]types.Coord, 0, len(c.SeedTiles))
	for _, s := range c.SeedTiles {
		seeds = append(seeds, types.Coord{X: s.X, Y: s.Y})
	}
	return seeds
}
