package components

// Tile 网格中的单个格子
//
// 身份由 (X, Y) 决定，在网格中唯一。
// 不变量：Occupied 为 true 时 Unlocked 必然为 true。
type Tile struct {
	X        int  // 行索引
	Y        int  // 列索引
	Unlocked bool // 是否已解锁
	Occupied bool // 是否已被建筑占用
}

// NewTile 创建一个未占用的格子
func NewTile(x, y int, unlocked bool) *Tile {
	return &Tile{X: x, Y: y, Unlocked: unlocked}
}

// IsFree 检查格子是否可用于放置（已解锁且未占用）
func (t *Tile) IsFree() bool {
	return t.Unlocked && !t.Occupied
}
