package modules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/gridplanner/pkg/config"
	"github.com/decker502/gridplanner/pkg/game"
	"github.com/decker502/gridplanner/pkg/types"
)

// newTestModule 创建使用文件存档的测试模块
func newTestModule(t *testing.T, variant types.GridVariant) (*PlannerModule, string) {
	t.Helper()
	cfg := config.DefaultPlannerConfig()
	cfg.Variant = variant

	path := filepath.Join(t.TempDir(), "layout.yaml")
	sm, err := game.NewLayoutSaveManager(nil, path)
	if err != nil {
		t.Fatalf("NewLayoutSaveManager error: %v", err)
	}

	m, err := NewPlannerModule(cfg, sm)
	if err != nil {
		t.Fatalf("NewPlannerModule error: %v", err)
	}
	return m, path
}

func expectFeedback(t *testing.T, got Feedback, level types.FeedbackLevel, contains string) {
	t.Helper()
	if got.Level != level {
		t.Errorf("feedback level: got %s, want %s (%q)", got.Level, level, got.Text)
	}
	if !strings.Contains(got.Text, contains) {
		t.Errorf("feedback text: got %q, want it to contain %q", got.Text, contains)
	}
}

// TestNewPlannerModuleInvalidGrid 测试非法网格尺寸
func TestNewPlannerModuleInvalidGrid(t *testing.T) {
	cfg := config.DefaultPlannerConfig()
	cfg.Grid.Width = 0
	if _, err := NewPlannerModule(cfg, nil); err == nil {
		t.Error("expected an error for a zero-width grid")
	}
}

// TestOpenVariantClickUnlocks 测试 open 变体点击执行解锁检查
func TestOpenVariantClickUnlocks(t *testing.T) {
	m, _ := newTestModule(t, types.VariantOpen)

	expectFeedback(t, m.ClickTile(0, 0), types.FeedbackInfo, "already unlocked")
	expectFeedback(t, m.ClickTile(40, 0), types.FeedbackError, "outside the grid")

	m.Expand(types.ExpandRight)
	expectFeedback(t, m.ClickTile(0, 6), types.FeedbackInfo, "Unlocked tile (0, 6)")
	expectFeedback(t, m.ClickTile(0, 6), types.FeedbackInfo, "already unlocked")
}

// TestSeededVariantClickPlaces 测试 seeded 变体点击执行放置
func TestSeededVariantClickPlaces(t *testing.T) {
	m, _ := newTestModule(t, types.VariantSeeded)

	expectFeedback(t, m.ClickTile(5, 5), types.FeedbackInfo, "Unlock this tile first")
	expectFeedback(t, m.ClickTile(0, 0), types.FeedbackInfo, "No pending building")

	expectFeedback(t, m.AddBuilding(0, 2, false), types.FeedbackError, "must be positive")
	expectFeedback(t, m.AddBuilding(3, 2, true), types.FeedbackInfo, "mandatory building 3x2")
	expectFeedback(t, m.ClickTile(0, 0), types.FeedbackInfo, "cannot fit")

	// 默认种子是 2 行 x 3 列，旋转成 2x3 后在原点刚好放下
	expectFeedback(t, m.RotateBuilding(), types.FeedbackInfo, "Rotated building to 2x3")
	expectFeedback(t, m.ClickTile(0, 0), types.FeedbackInfo, "Placed 2x3 building")
	expectFeedback(t, m.RotateBuilding(), types.FeedbackInfo, "No pending building")

	if !strings.Contains(m.StatusLine(), "occupied 6") {
		t.Errorf("StatusLine: got %q", m.StatusLine())
	}
	if m.LastFeedback().Text != "No pending building to rotate" {
		t.Errorf("LastFeedback: got %q", m.LastFeedback().Text)
	}
}

// TestUnlockNextAndNoneRemaining 测试解锁下一个
func TestUnlockNextAndNoneRemaining(t *testing.T) {
	m, _ := newTestModule(t, types.VariantSeeded)

	expectFeedback(t, m.UnlockNext(), types.FeedbackInfo, "Unlocked tile (0, 3)")
	for i := 0; i < 29; i++ {
		m.UnlockNext()
	}
	expectFeedback(t, m.UnlockNext(), types.FeedbackInfo, "All tiles are unlocked!")
	expectFeedback(t, m.UnlockTile(9, 9), types.FeedbackError, "outside the grid")
}

// TestExpandFeedback 测试扩展提示
func TestExpandFeedback(t *testing.T) {
	m, _ := newTestModule(t, types.VariantSeeded)

	expectFeedback(t, m.Expand(types.ExpandDown), types.FeedbackInfo, "6 new locked tiles")
	expectFeedback(t, m.Expand(types.ExpandUnknown), types.FeedbackError, "Cannot expand")
	if m.Grid().Len() != 42 {
		t.Errorf("Len: got %d, want 42", m.Grid().Len())
	}
}

// TestSaveLoadLayout 测试保存和加载
func TestSaveLoadLayout(t *testing.T) {
	m, _ := newTestModule(t, types.VariantSeeded)

	expectFeedback(t, m.LoadLayout(), types.FeedbackWarning, "No saved layout")

	m.AddBuilding(1, 1, true)
	m.ClickTile(0, 0)
	m.AddBuilding(2, 1, false)
	m.RotateBuilding()
	expectFeedback(t, m.SaveLayout(), types.FeedbackInfo, "Layout saved")

	// 修改后加载应恢复保存时的状态
	m.Expand(types.ExpandRight)
	m.AddBuilding(4, 4, false)
	expectFeedback(t, m.LoadLayout(), types.FeedbackInfo, "36 tiles, 1 pending")

	top := m.Grid().Pending().Peek()
	if top.Width != 1 || top.Height != 2 || !top.Rotated {
		t.Errorf("loaded top building: got %+v", *top)
	}
	if p, ok := m.Grid().PlacedAt(0, 0); !ok || !p.Mandatory {
		t.Errorf("placed ledger not restored: %+v %v", p, ok)
	}

	// 加载后的网格仍可放置
	expectFeedback(t, m.ClickTile(0, 1), types.FeedbackInfo, "Placed 1x2 building")
}

// TestLoadKeepsStateOnCorruptSave 测试损坏存档不影响当前状态
func TestLoadKeepsStateOnCorruptSave(t *testing.T) {
	m, path := newTestModule(t, types.VariantSeeded)
	m.AddBuilding(1, 1, false)

	if err := os.WriteFile(path, []byte("version: 2\ntiles:\n  \"bad\": {unlocked: true}\n"), 0644); err != nil {
		t.Fatalf("write error: %v", err)
	}

	expectFeedback(t, m.LoadLayout(), types.FeedbackError, "Load failed")
	if m.Grid().Len() != 36 || m.Grid().Pending().Len() != 1 {
		t.Error("state must be unchanged after a failed load")
	}
}

// TestNoSaveManager 测试没有存档后端
func TestNoSaveManager(t *testing.T) {
	m, err := NewPlannerModule(config.DefaultPlannerConfig(), nil)
	if err != nil {
		t.Fatalf("NewPlannerModule error: %v", err)
	}
	expectFeedback(t, m.SaveLayout(), types.FeedbackWarning, "not available")
	expectFeedback(t, m.LoadLayout(), types.FeedbackWarning, "not available")
	if !m.SaveOnExit() {
		t.Error("SaveOnExit without a save manager should report success")
	}
}

// TestPreview 测试放置预览
func TestPreview(t *testing.T) {
	m, _ := newTestModule(t, types.VariantSeeded)

	if b, fits := m.Preview(0, 0); b != nil || fits {
		t.Error("preview without pending building should be empty")
	}

	m.AddBuilding(2, 2, false)
	if b, fits := m.Preview(0, 0); b == nil || !fits {
		t.Error("2x2 should fit at the origin")
	}
	if _, fits := m.Preview(1, 0); fits {
		t.Error("2x2 should not fit across the locked row")
	}
}
