package utils

import "math"

// GridLayout 网格在屏幕上的布局参数
// 行（x）沿屏幕纵向排列，列（y）沿屏幕横向排列
type GridLayout struct {
	OriginX  float64 // 网格左上角屏幕X坐标
	OriginY  float64 // 网格左上角屏幕Y坐标
	CellSize float64 // 格子边长
}

// MouseToTile 将鼠标屏幕坐标转换为网格坐标
// 参数:
//   - mouseX, mouseY: 鼠标的屏幕坐标
//
// 返回:
//   - x: 行索引
//   - y: 列索引
//   - isValid: 是否位于网格原点右下方（是否存在该格子由调用方判断）
func (l GridLayout) MouseToTile(mouseX, mouseY int) (x, y int, isValid bool) {
	if l.CellSize <= 0 {
		return 0, 0, false
	}

	px := float64(mouseX) - l.OriginX
	py := float64(mouseY) - l.OriginY
	if px < 0 || py < 0 {
		return 0, 0, false
	}

	// 屏幕纵向对应行，横向对应列
	x = int(math.Floor(py / l.CellSize))
	y = int(math.Floor(px / l.CellSize))
	return x, y, true
}

// TileToScreen 返回格子左上角的屏幕坐标
// 参数:
//   - x: 行索引
//   - y: 列索引
func (l GridLayout) TileToScreen(x, y int) (left, top float64) {
	left = l.OriginX + float64(y)*l.CellSize
	top = l.OriginY + float64(x)*l.CellSize
	return left, top
}

// TileCenter 返回格子中心的屏幕坐标
func (l GridLayout) TileCenter(x, y int) (centerX, centerY float64) {
	left, top := l.TileToScreen(x, y)
	return left + l.CellSize/2, top + l.CellSize/2
}
