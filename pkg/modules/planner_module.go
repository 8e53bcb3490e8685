package modules

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/gridplanner/pkg/components"
	"github.com/decker502/gridplanner/pkg/config"
	"github.com/decker502/gridplanner/pkg/game"
	"github.com/decker502/gridplanner/pkg/systems"
	"github.com/decker502/gridplanner/pkg/types"
)

// Feedback 用户可见提示
type Feedback struct {
	Level types.FeedbackLevel
	Text  string
}

// String 返回 "Level: Text" 形式的提示
func (f Feedback) String() string {
	return f.Level.String() + ": " + f.Text
}

func info(format string, args ...interface{}) Feedback {
	return Feedback{Level: types.FeedbackInfo, Text: fmt.Sprintf(format, args...)}
}

func warning(format string, args ...interface{}) Feedback {
	return Feedback{Level: types.FeedbackWarning, Text: fmt.Sprintf(format, args...)}
}

func failure(format string, args ...interface{}) Feedback {
	return Feedback{Level: types.FeedbackError, Text: fmt.Sprintf(format, args...)}
}

// PlannerModule 网格规划器模块
// 封装所有用户意图到网格模型的转换：
//   - 解锁指定格子 / 解锁下一个格子
//   - 添加、旋转待放置建筑
//   - 扩展网格
//   - 点击格子（按变体执行解锁检查或建筑放置）
//   - 保存、加载布局
//
// 设计原则：
//   - 由宿主（桌面场景、终端视图、移动端）持有，通过引用传入界面回调
//   - 所有领域错误都转换为 Feedback，不会导致进程退出
//   - 加载失败时保持当前状态不变
type PlannerModule struct {
	variant     types.GridVariant
	grid        *game.GridModel
	placement   *systems.PlacementSystem
	saveManager *game.LayoutSaveManager // 可为 nil（无法持久化）

	lastFeedback Feedback
}

// NewPlannerModule 按配置创建规划器模块
//
// 参数:
//   - cfg: 规划器配置
//   - saveManager: 存档管理器，可为 nil（保存/加载会给出警告）
//
// 返回:
//   - *PlannerModule: 新模块
//   - error: 初始化网格失败时返回错误
func NewPlannerModule(cfg *config.PlannerConfig, saveManager *game.LayoutSaveManager) (*PlannerModule, error) {
	grid := game.NewGridModel()
	if err := grid.Initialize(cfg.Grid.Width, cfg.Grid.Height, cfg.Variant, cfg.Seeds()); err != nil {
		return nil, fmt.Errorf("failed to initialize grid: %w", err)
	}

	m := &PlannerModule{
		variant:     cfg.Variant,
		grid:        grid,
		placement:   systems.NewPlacementSystem(grid),
		saveManager: saveManager,
	}
	m.lastFeedback = info("Grid %dx%d ready (%s)", cfg.Grid.Width, cfg.Grid.Height, cfg.Variant)
	return m, nil
}

// Grid 返回当前网格（只读使用）
func (m *PlannerModule) Grid() *game.GridModel {
	return m.grid
}

// Variant 返回网格变体
func (m *PlannerModule) Variant() types.GridVariant {
	return m.variant
}

// LastFeedback 返回最近一次操作的提示
func (m *PlannerModule) LastFeedback() Feedback {
	return m.lastFeedback
}

// report 记录并返回提示
func (m *PlannerModule) report(f Feedback) Feedback {
	m.lastFeedback = f
	log.Printf("[PlannerModule] %s", f)
	return f
}

// UnlockTile 解锁指定格子
func (m *PlannerModule) UnlockTile(x, y int) Feedback {
	result, err := m.grid.UnlockTile(x, y)
	if err != nil {
		return m.report(failure("Tile (%d, %d) is outside the grid", x, y))
	}
	if result == types.UnlockAlreadyUnlocked {
		return m.report(info("Tile already unlocked!"))
	}
	return m.report(info("Unlocked tile (%d, %d)", x, y))
}

// UnlockNext 解锁下一个未解锁的格子
func (m *PlannerModule) UnlockNext() Feedback {
	c, ok := m.grid.UnlockNextLocked()
	if !ok {
		return m.report(info("All tiles are unlocked!"))
	}
	return m.report(info("Unlocked tile (%d, %d)", c.X, c.Y))
}

// AddBuilding 添加待放置建筑
func (m *PlannerModule) AddBuilding(width, height int, mandatory bool) Feedback {
	if _, err := m.grid.AddPendingBuilding(width, height, mandatory); err != nil {
		return m.report(failure("Building size must be positive, got %dx%d", width, height))
	}
	kind := "optional"
	if mandatory {
		kind = "mandatory"
	}
	return m.report(info("Added %s building %dx%d (%d pending)", kind, width, height, m.grid.Pending().Len()))
}

// RotateBuilding 旋转栈顶建筑
func (m *PlannerModule) RotateBuilding() Feedback {
	b, err := m.grid.RotateTopBuilding()
	if err != nil {
		return m.report(info("No pending building to rotate"))
	}
	return m.report(info("Rotated building to %dx%d", b.Width, b.Height))
}

// Expand 扩展网格
func (m *PlannerModule) Expand(direction types.ExpandDirection) Feedback {
	added, err := m.grid.Expand(direction)
	if err != nil {
		return m.report(failure("Cannot expand %s", direction))
	}
	return m.report(info("Expanded %s: %d new locked tiles", direction, len(added)))
}

// ClickTile 处理格子点击
//
// open 变体：未解锁则解锁，已解锁则提示
// seeded 变体：尝试放置栈顶建筑
func (m *PlannerModule) ClickTile(x, y int) Feedback {
	if !m.variant.ClickPlaces() {
		return m.UnlockTile(x, y)
	}

	result, placed := m.placement.ClickPlace(x, y)
	switch result {
	case types.PlacementPlaced:
		return m.report(info("Placed %dx%d building at (%d, %d)", placed.Width, placed.Height, x, y))
	case types.PlacementOutOfBounds:
		return m.report(failure("Tile (%d, %d) is outside the grid", x, y))
	case types.PlacementTileLocked:
		return m.report(info("Unlock this tile first"))
	case types.PlacementNoPendingBuilding:
		return m.report(info("No pending building to place"))
	default:
		return m.report(info("Building cannot fit here"))
	}
}

// Preview 返回以 (x, y) 为原点放置栈顶建筑的预览
//
// 返回：
//   - *components.Building: 栈顶建筑，没有待放置建筑时为 nil
//   - bool: 是否能放下
func (m *PlannerModule) Preview(x, y int) (*components.Building, bool) {
	top := m.grid.Pending().Peek()
	if top == nil {
		return nil, false
	}
	return top, m.placement.CanPlace(x, y, top)
}

// SaveLayout 保存布局
func (m *PlannerModule) SaveLayout() Feedback {
	if m.saveManager == nil {
		return m.report(warning("Saving is not available"))
	}
	if err := m.saveManager.Save(m.grid); err != nil {
		return m.report(failure("Save failed: %v", err))
	}
	return m.report(info("Layout saved"))
}

// LoadLayout 加载布局，失败时当前状态保持不变
func (m *PlannerModule) LoadLayout() Feedback {
	if m.saveManager == nil {
		return m.report(warning("Loading is not available"))
	}

	grid, err := m.saveManager.Load()
	switch {
	case errors.Is(err, game.ErrMissingSaveFile):
		return m.report(warning("No saved layout found"))
	case err != nil:
		return m.report(failure("Load failed: %v", err))
	}

	m.grid = grid
	m.placement.SetGrid(grid)
	return m.report(info("Layout loaded: %d tiles, %d pending", grid.Len(), grid.Pending().Len()))
}

// SaveOnExit 退出时自动保存
// 返回 true 表示保存成功或无需保存
func (m *PlannerModule) SaveOnExit() bool {
	if m.saveManager == nil {
		return true
	}
	if err := m.saveManager.Save(m.grid); err != nil {
		log.Printf("[PlannerModule] Warning: auto-save on exit failed: %v", err)
		return false
	}
	return true
}

// StatusLine 返回状态栏文本
func (m *PlannerModule) StatusLine() string {
	unlocked, occupied, locked := m.grid.Counts()
	top := "none"
	if b := m.grid.Pending().Peek(); b != nil {
		kind := "opt"
		if b.Mandatory {
			kind = "req"
		}
		top = fmt.Sprintf("%dx%d %s", b.Width, b.Height, kind)
	}
	return fmt.Sprintf("unlocked %d  occupied %d  locked %d  pending %d (top: %s)",
		unlocked, occupied, locked, m.grid.Pending().Len(), top)
}
