package modules

import (
	"fmt"

	"github.com/decker502/gridplanner/pkg/types"
)

// 键盘命令，桌面端和终端共用同一套按键
const (
	CmdUnlockNext  = 'u'
	CmdCycleWidth  = 'w'
	CmdCycleHeight = 'h'
	CmdToggleMand  = 'm'
	CmdAddBuilding = 'a'
	CmdRotate      = 'r'
	CmdExpandRight = '>'
	CmdExpandDown  = 'v'
	CmdSaveLayout  = 's'
	CmdLoadLayout  = 'l'
)

// 草稿尺寸范围
const (
	minDraftSide = 1
	maxDraftSide = 5
)

// HelpText 按键说明
const HelpText = "click: tile  u: unlock next  w/h: size  m: mandatory  a: add  r: rotate  >/v: expand  s: save  l: load"

// BuildingDraft 下一次"添加建筑"使用的参数
// 尺寸在 1..5 之间循环
type BuildingDraft struct {
	Width     int
	Height    int
	Mandatory bool
}

// NewBuildingDraft 创建 1x1 可选建筑草稿
func NewBuildingDraft() *BuildingDraft {
	return &BuildingDraft{Width: minDraftSide, Height: minDraftSide}
}

// String 返回草稿描述
func (d *BuildingDraft) String() string {
	kind := "optional"
	if d.Mandatory {
		kind = "mandatory"
	}
	return fmt.Sprintf("%dx%d %s", d.Width, d.Height, kind)
}

func cycle(v int) int {
	if v >= maxDraftSide {
		return minDraftSide
	}
	return v + 1
}

// HandleCommand 执行一个键盘命令
//
// 返回：
//   - Feedback: 用户可见提示
//   - bool: false 表示不是已知命令（不做任何修改）
func (m *PlannerModule) HandleCommand(cmd rune, draft *BuildingDraft) (Feedback, bool) {
	switch cmd {
	case CmdUnlockNext:
		return m.UnlockNext(), true
	case CmdCycleWidth:
		draft.Width = cycle(draft.Width)
		return m.report(info("Next building: %s", draft)), true
	case CmdCycleHeight:
		draft.Height = cycle(draft.Height)
		return m.report(info("Next building: %s", draft)), true
	case CmdToggleMand:
		draft.Mandatory = !draft.Mandatory
		return m.report(info("Next building: %s", draft)), true
	case CmdAddBuilding:
		return m.AddBuilding(draft.Width, draft.Height, draft.Mandatory), true
	case CmdRotate:
		return m.RotateBuilding(), true
	case CmdExpandRight:
		return m.Expand(types.ExpandRight), true
	case CmdExpandDown:
		return m.Expand(types.ExpandDown), true
	case CmdSaveLayout:
		return m.SaveLayout(), true
	case CmdLoadLayout:
		return m.LoadLayout(), true
	default:
		return Feedback{}, false
	}
}
