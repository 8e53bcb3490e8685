package game

// PlacedBuilding 已放置建筑的记录
//
// Width/Height 为放置时的实际占地（已计入旋转）。
// 原版只保存待放置建筑，放置后的尺寸和必需标记会丢失；
// 这里额外保留一份账本，用于显示颜色和存档还原。
type PlacedBuilding struct {
	ID        string
	OriginX   int
	OriginY   int
	Width     int
	Height    int
	Mandatory bool
	Rotated   bool
}

// Covers 检查坐标是否位于该建筑占地范围内
func (p PlacedBuilding) Covers(x, y int) bool {
	return x >= p.OriginX && x < p.OriginX+p.Width &&
		y >= p.OriginY && y < p.OriginY+p.Height
}
