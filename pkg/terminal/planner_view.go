// Package terminal 提供基于 tcell 的终端界面
//
// 与桌面场景共用 PlannerModule 和按键命令，每个格子占两列字符。
package terminal

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/gridplanner/pkg/modules"
	"github.com/decker502/gridplanner/pkg/types"
)

// 终端布局
const (
	cellWidth  = 2 // 每个格子占用的字符列数
	gridTop    = 3 // 网格起始行（前两行为状态栏）
	gridLeft   = 1
	footerGap  = 1
	statusLine = 0
	draftLine  = 1
)

// 格子样式
var (
	styleDefault   = tcell.StyleDefault
	styleLocked    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleUnlocked  = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleMandatory = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
	styleOptional  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleOccupied  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorOlive)
	styleWarning   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleError     = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// PlannerView 终端规划器视图
type PlannerView struct {
	screen tcell.Screen
	module *modules.PlannerModule
	draft  *modules.BuildingDraft

	// 上一次鼠标事件的按键状态，用于只在按下瞬间触发点击
	lastButtons tcell.ButtonMask
}

// NewPlannerView 创建终端视图，screen 必须已经 Init
func NewPlannerView(screen tcell.Screen, module *modules.PlannerModule) *PlannerView {
	screen.EnableMouse()
	return &PlannerView{
		screen: screen,
		module: module,
		draft:  modules.NewBuildingDraft(),
	}
}

// Module 返回视图使用的规划器模块
func (v *PlannerView) Module() *modules.PlannerModule {
	return v.module
}

// Run 事件循环，按 q / Esc / Ctrl+C 退出
func (v *PlannerView) Run() {
	for {
		v.Draw()
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		if !v.HandleEvent(ev) {
			return
		}
	}
}

// HandleEvent 处理一个终端事件
// 返回 false 表示请求退出
func (v *PlannerView) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			v.module.HandleCommand(modules.CmdExpandRight, v.draft)
		case tcell.KeyDown:
			v.module.HandleCommand(modules.CmdExpandDown, v.draft)
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			if _, ok := v.module.HandleCommand(ev.Rune(), v.draft); !ok {
				log.Printf("[PlannerView] Ignored key %q", ev.Rune())
			}
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && v.lastButtons&tcell.Button1 == 0
		v.lastButtons = buttons
		if pressed {
			if x, y, ok := v.TileAt(ev.Position()); ok {
				v.module.ClickTile(x, y)
			}
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// TileAt 将终端坐标转换为网格坐标
// 行（x）对应终端行，列（y）对应终端列
func (v *PlannerView) TileAt(col, row int) (x, y int, ok bool) {
	if col < gridLeft || row < gridTop {
		return 0, 0, false
	}
	x = row - gridTop
	y = (col - gridLeft) / cellWidth
	if _, exists := v.module.Grid().Tile(x, y); !exists {
		return 0, 0, false
	}
	return x, y, true
}

// Draw 绘制整个视图
func (v *PlannerView) Draw() {
	v.screen.Clear()
	grid := v.module.Grid()

	v.putString(0, statusLine, v.module.StatusLine(), styleDefault)
	v.putString(0, draftLine, fmt.Sprintf("next: %s", v.draft), styleDefault)

	for _, tile := range grid.Tiles() {
		glyph, style := "..", styleLocked
		switch {
		case !tile.Unlocked:
		case !tile.Occupied:
			glyph, style = "  ", styleUnlocked
		default:
			p, ok := grid.PlacedAt(tile.X, tile.Y)
			switch {
			case !ok:
				glyph, style = "##", styleOccupied
			case p.Mandatory:
				glyph, style = "MM", styleMandatory
			default:
				glyph, style = "oo", styleOptional
			}
		}
		v.putString(gridLeft+tile.Y*cellWidth, gridTop+tile.X, glyph, style)
	}

	maxX, _ := grid.Bounds()
	footer := gridTop + maxX + 1 + footerGap
	feedback := v.module.LastFeedback()
	v.putString(0, footer, feedback.String(), feedbackStyle(feedback))
	v.putString(0, footer+1, modules.HelpText+"  q: quit", styleDefault)

	v.screen.Show()
}

// putString 从 (col, row) 开始写入字符串，超出屏幕宽度的部分被截断
func (v *PlannerView) putString(col, row int, s string, style tcell.Style) {
	width, height := v.screen.Size()
	if row < 0 || row >= height {
		return
	}
	for _, r := range s {
		if col >= width {
			return
		}
		v.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func feedbackStyle(f modules.Feedback) tcell.Style {
	switch f.Level {
	case types.FeedbackWarning:
		return styleWarning
	case types.FeedbackError:
		return styleError
	default:
		return styleDefault
	}
}
