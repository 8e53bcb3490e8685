// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerJustPressed 检查本帧是否发生点击或触摸
// 同时支持触摸（移动端）和鼠标左键（桌面端），优先检测触摸
//
// 返回：
//   - pressed: 是否刚刚按下
//   - x, y: 按下位置的屏幕坐标
func PointerJustPressed() (pressed bool, x, y int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// PointerPosition 获取当前指针位置（触摸优先，其次鼠标）
func PointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}
