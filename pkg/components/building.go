package components

// Building 矩形建筑占地
//
// 由用户以正整数尺寸创建，旋转会交换宽高并翻转 Rotated 标记。
// Mandatory 仅用于区分显示颜色（必需建筑 / 可选建筑）。
type Building struct {
	Width     int
	Height    int
	Mandatory bool
	Rotated   bool
}

// NewBuilding 创建一个未旋转的建筑
// 尺寸校验由 GridModel 负责
func NewBuilding(width, height int, mandatory bool) *Building {
	return &Building{
		Width:     width,
		Height:    height,
		Mandatory: mandatory,
	}
}

// Rotate 旋转 90 度：交换宽高并翻转旋转标记
// 连续旋转两次恢复原状
func (b *Building) Rotate() {
	b.Width, b.Height = b.Height, b.Width
	b.Rotated = !b.Rotated
}

// BaseSize 返回未旋转时的尺寸
func (b *Building) BaseSize() (width, height int) {
	if b.Rotated {
		return b.Height, b.Width
	}
	return b.Width, b.Height
}

// Area 返回占地格子数
func (b *Building) Area() int {
	return b.Width * b.Height
}
