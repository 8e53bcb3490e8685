package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/gridplanner/pkg/modules"
)

// 工具栏尺寸
const (
	toolbarButtonWidth  = 64
	toolbarButtonHeight = 28
	toolbarSpacing      = 4
	toolbarLeft         = 10
)

var (
	colorToolbarButton = color.RGBA{R: 70, G: 78, B: 90, A: 255}
	colorToolbarBorder = color.RGBA{R: 160, G: 170, B: 180, A: 255}
)

// toolbarButton 触摸工具栏按钮
type toolbarButton struct {
	label string
	cmd   rune
}

// toolbarButtons 没有键盘时替代按键的按钮，顺序即绘制顺序
var toolbarButtons = []toolbarButton{
	{"Unlock", modules.CmdUnlockNext},
	{"W+", modules.CmdCycleWidth},
	{"H+", modules.CmdCycleHeight},
	{"Req", modules.CmdToggleMand},
	{"Add", modules.CmdAddBuilding},
	{"Rotate", modules.CmdRotate},
	{"+Col", modules.CmdExpandRight},
	{"+Row", modules.CmdExpandDown},
	{"Save", modules.CmdSaveLayout},
	{"Load", modules.CmdLoadLayout},
}

// Toolbar 一行触摸按钮
type Toolbar struct {
	top float64
}

// newToolbar 创建位于视口底部提示行上方的工具栏
func newToolbar(viewHeight int) *Toolbar {
	return &Toolbar{
		top: float64(viewHeight - 3*textLineHeight - toolbarButtonHeight - toolbarSpacing),
	}
}

// buttonRect 返回第 i 个按钮的矩形
func (t *Toolbar) buttonRect(i int) (x, y, w, h float64) {
	x = toolbarLeft + float64(i)*(toolbarButtonWidth+toolbarSpacing)
	return x, t.top, toolbarButtonWidth, toolbarButtonHeight
}

// Hit 返回屏幕坐标下被按中的按钮命令
func (t *Toolbar) Hit(mx, my int) (rune, bool) {
	px, py := float64(mx), float64(my)
	for i, b := range toolbarButtons {
		x, y, w, h := t.buttonRect(i)
		if px >= x && px < x+w && py >= y && py < y+h {
			return b.cmd, true
		}
	}
	return 0, false
}

// Draw 绘制工具栏
func (t *Toolbar) Draw(screen *ebiten.Image) {
	for i, b := range toolbarButtons {
		x, y, w, h := t.buttonRect(i)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorToolbarButton, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorToolbarBorder, false)
		ebitenutil.DebugPrintAt(screen, b.label, int(x)+6, int(y)+6)
	}
}
