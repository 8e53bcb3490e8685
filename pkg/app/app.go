// Package app 提供规划器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/gridplanner/pkg/config"
	"github.com/decker502/gridplanner/pkg/embedded"
	"github.com/decker502/gridplanner/pkg/game"
	"github.com/decker502/gridplanner/pkg/modules"
	"github.com/decker502/gridplanner/pkg/scenes"
	"github.com/decker502/gridplanner/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空则使用内嵌的 data/planner.yaml
	ConfigPath string
}

// App 是规划器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	plannerConfig            *config.PlannerConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化规划器应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	plannerConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	saveManager, err := OpenSaveManager(plannerConfig.Save)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Layout save location: %s", saveManager.Location())

	module, err := modules.NewPlannerModule(plannerConfig, saveManager)
	if err != nil {
		return nil, fmt.Errorf("规划器初始化失败: %w", err)
	}

	layout := utils.GridLayout{
		OriginX:  plannerConfig.Window.OriginX,
		OriginY:  plannerConfig.Window.OriginY,
		CellSize: plannerConfig.Window.CellSize,
	}

	plannerScene := scenes.NewPlannerScene(module, layout)
	if utils.IsMobile() {
		plannerScene.EnableToolbar(plannerConfig.Window.Height)
		log.Printf("[App] Mobile mode, touch toolbar enabled")
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(plannerScene)

	return &App{
		sceneManager:  sceneManager,
		plannerConfig: plannerConfig,
		verbose:       cfg.Verbose,
	}, nil
}

// LoadConfig 加载规划器配置
//
// 加载顺序：
//  1. path 非空时读取外部文件（失败直接返回错误）
//  2. 内嵌的 data/planner.yaml
//  3. 内置默认配置
func LoadConfig(path string) (*config.PlannerConfig, error) {
	if path != "" {
		cfg, err := config.LoadPlannerConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] Loaded planner config from %s", path)
		return cfg, nil
	}

	if embedded.IsInitialized() {
		data, err := embedded.ReadFile(config.DefaultPlannerConfigPath)
		if err == nil {
			cfg, err := config.ParsePlannerConfig(data)
			if err != nil {
				return nil, fmt.Errorf("内嵌配置无效: %w", err)
			}
			log.Printf("[Config] Loaded embedded %s", config.DefaultPlannerConfigPath)
			return cfg, nil
		}
		log.Printf("[Config] Embedded config unavailable: %v", err)
	}

	log.Printf("[Config] Using built-in default planner config")
	return config.DefaultPlannerConfig(), nil
}

// OpenSaveManager 按存档配置创建存档管理器
// gdata 打开失败时降级为固定文件路径
func OpenSaveManager(cfg config.SaveConfig) (*game.LayoutSaveManager, error) {
	var gdataManager *gdata.Manager
	if cfg.AppName != "" {
		if err := utils.PrepareStorage(cfg.AppName); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
		m, err := gdata.Open(gdata.Config{AppName: cfg.AppName})
		if err != nil {
			log.Printf("[App] Warning: gdata unavailable (%v), falling back to %q", err, cfg.Path)
		} else {
			gdataManager = m
		}
	}

	saveManager, err := game.NewLayoutSaveManager(gdataManager, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("存档初始化失败: %w", err)
	}
	return saveManager, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭前自动保存（需要 main 中启用 SetWindowClosingHandled）
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveCurrentScene()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.plannerConfig.Window.Width, a.plannerConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.plannerConfig.Window.Width, a.plannerConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.plannerConfig.Window.Width, a.plannerConfig.Window.Height
}

// PlannerConfig 返回生效的规划器配置
func (a *App) PlannerConfig() *config.PlannerConfig {
	return a.plannerConfig
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
