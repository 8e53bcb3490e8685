package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/gridplanner/pkg/components"
	"github.com/decker502/gridplanner/pkg/game"
	"github.com/decker502/gridplanner/pkg/modules"
	"github.com/decker502/gridplanner/pkg/utils"
)

// 格子颜色
var (
	colorBackground  = color.RGBA{R: 32, G: 36, B: 40, A: 255}
	colorLocked      = color.RGBA{R: 96, G: 96, B: 96, A: 255}
	colorUnlocked    = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	colorMandatory   = color.RGBA{R: 214, G: 88, B: 72, A: 255}
	colorOptional    = color.RGBA{R: 88, G: 136, B: 214, A: 255}
	colorOccupied    = color.RGBA{R: 200, G: 160, B: 64, A: 255} // 账本中找不到对应建筑
	colorGridLine    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colorPreviewOK   = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	colorPreviewFail = color.RGBA{R: 255, G: 64, B: 64, A: 160}
)

// 文本行高（调试字体）
const textLineHeight = 16

// plannerKeys 桌面端按键到命令的映射
var plannerKeys = map[ebiten.Key]rune{
	ebiten.KeyU:          modules.CmdUnlockNext,
	ebiten.KeyW:          modules.CmdCycleWidth,
	ebiten.KeyH:          modules.CmdCycleHeight,
	ebiten.KeyM:          modules.CmdToggleMand,
	ebiten.KeyA:          modules.CmdAddBuilding,
	ebiten.KeyR:          modules.CmdRotate,
	ebiten.KeyArrowRight: modules.CmdExpandRight,
	ebiten.KeyArrowDown:  modules.CmdExpandDown,
	ebiten.KeyS:          modules.CmdSaveLayout,
	ebiten.KeyL:          modules.CmdLoadLayout,
}

// PlannerScene 网格规划器主场景
//
// 职责：
//   - 把鼠标/触摸点击换算为格子坐标并交给 PlannerModule
//   - 把按键映射为规划器命令
//   - 绘制网格、放置预览、状态栏和提示
type PlannerScene struct {
	module *modules.PlannerModule
	draft  *modules.BuildingDraft
	layout utils.GridLayout

	toolbar *Toolbar // 为 nil 时只响应键盘
}

// NewPlannerScene 创建规划器场景
func NewPlannerScene(module *modules.PlannerModule, layout utils.GridLayout) *PlannerScene {
	return &PlannerScene{
		module: module,
		draft:  modules.NewBuildingDraft(),
		layout: layout,
	}
}

// EnableToolbar 启用触摸工具栏（移动端没有键盘）
func (s *PlannerScene) EnableToolbar(viewHeight int) {
	s.toolbar = newToolbar(viewHeight)
}

// Module 返回场景使用的规划器模块
func (s *PlannerScene) Module() *modules.PlannerModule {
	return s.module
}

// Update 处理输入
func (s *PlannerScene) Update(deltaTime float64) {
	if pressed, mx, my := utils.PointerJustPressed(); pressed {
		s.handlePointer(mx, my)
	}

	for key, cmd := range plannerKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.module.HandleCommand(cmd, s.draft)
		}
	}
}

// handlePointer 处理一次点击，工具栏优先，网格外的点击被忽略
func (s *PlannerScene) handlePointer(mx, my int) {
	if s.toolbar != nil {
		if cmd, hit := s.toolbar.Hit(mx, my); hit {
			s.module.HandleCommand(cmd, s.draft)
			return
		}
	}

	x, y, ok := s.layout.MouseToTile(mx, my)
	if !ok {
		return
	}
	if _, exists := s.module.Grid().Tile(x, y); !exists {
		return
	}
	s.module.ClickTile(x, y)
}

// Draw 绘制场景
func (s *PlannerScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	grid := s.module.Grid()
	cell := float32(s.layout.CellSize)
	for _, tile := range grid.Tiles() {
		left, top := s.layout.TileToScreen(tile.X, tile.Y)
		vector.DrawFilledRect(screen, float32(left), float32(top), cell, cell, tileColor(grid, tile), false)
		vector.StrokeRect(screen, float32(left), float32(top), cell, cell, 1, colorGridLine, false)
	}

	s.drawPreview(screen)
	if s.toolbar != nil {
		s.toolbar.Draw(screen)
	}
	s.drawText(screen)
}

// drawPreview 在 seeded 变体下绘制栈顶建筑在指针处的占地预览
func (s *PlannerScene) drawPreview(screen *ebiten.Image) {
	if !s.module.Variant().ClickPlaces() {
		return
	}
	mx, my := utils.PointerPosition()
	x, y, ok := s.layout.MouseToTile(mx, my)
	if !ok {
		return
	}
	if _, exists := s.module.Grid().Tile(x, y); !exists {
		return
	}
	building, fits := s.module.Preview(x, y)
	if building == nil {
		return
	}

	left, top := s.layout.TileToScreen(x, y)
	clr := colorPreviewFail
	if fits {
		clr = colorPreviewOK
	}
	// Width 沿行（屏幕纵向），Height 沿列（屏幕横向）
	w := float32(float64(building.Height) * s.layout.CellSize)
	h := float32(float64(building.Width) * s.layout.CellSize)
	vector.StrokeRect(screen, float32(left), float32(top), w, h, 3, clr, false)
}

// drawText 绘制状态栏、提示和按键说明
func (s *PlannerScene) drawText(screen *ebiten.Image) {
	height := screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, s.module.StatusLine(), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("next: %s", s.draft), 10, 10+textLineHeight)
	ebitenutil.DebugPrintAt(screen, s.module.LastFeedback().String(), 10, height-3*textLineHeight)
	if s.toolbar == nil {
		ebitenutil.DebugPrintAt(screen, modules.HelpText, 10, height-2*textLineHeight)
	}
}

// SaveOnExit 实现 game.Saveable 接口
func (s *PlannerScene) SaveOnExit() bool {
	return s.module.SaveOnExit()
}

// tileColor 返回格子填充色
func tileColor(grid *game.GridModel, tile *components.Tile) color.Color {
	switch {
	case !tile.Unlocked:
		return colorLocked
	case !tile.Occupied:
		return colorUnlocked
	}
	p, ok := grid.PlacedAt(tile.X, tile.Y)
	switch {
	case !ok:
		return colorOccupied
	case p.Mandatory:
		return colorMandatory
	default:
		return colorOptional
	}
}

// 编译期检查
var (
	_ game.Scene    = (*PlannerScene)(nil)
	_ game.Saveable = (*PlannerScene)(nil)
)
