package game

import (
	"fmt"
	"log"

	"github.com/decker502/gridplanner/pkg/components"
	"github.com/decker502/gridplanner/pkg/types"
)

// DefaultSeedTiles seeded 变体下初始解锁的六个格子
var DefaultSeedTiles = []types.Coord{
	{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2},
}

// GridModel 网格模型
//
// 职责：
//   - 以坐标为键保存所有格子（稀疏映射，网格按行或列独立增长）
//   - 记录格子的插入顺序（"解锁下一个"按此顺序扫描）
//   - 管理待放置建筑栈和已放置建筑账本
//   - 网格扩展
//
// 不变量：
//   - tiles[c] 的 X/Y 字段与 c 一致
//   - 格子被占用时必然已解锁
//   - 网格只增不减
//
// 架构说明：
//   - 由宿主（App / 终端视图）持有，不是全局单例
//   - 单线程使用，不加锁
type GridModel struct {
	tiles   map[types.Coord]*components.Tile
	order   []types.Coord
	pending *BuildingStack
	placed  []PlacedBuilding
}

// NewGridModel 创建一个空网格
func NewGridModel() *GridModel {
	return &GridModel{
		tiles:   make(map[types.Coord]*components.Tile),
		pending: NewBuildingStack(),
	}
}

// Initialize 创建 width 行 x height 列的矩形网格
//
// 参数：
//   - width: 行数（x 取值 0..width-1）
//   - height: 列数（y 取值 0..height-1）
//   - variant: open 全部解锁；seeded 仅 seeds 解锁
//   - seeds: seeded 变体下初始解锁的坐标，超出网格的坐标被忽略
//
// 返回：
//   - error: 尺寸非正数时返回 ErrInvalidDimensions
func (g *GridModel) Initialize(width, height int, variant types.GridVariant, seeds []types.Coord) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("grid %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	seedSet := make(map[types.Coord]bool, len(seeds))
	for _, c := range seeds {
		seedSet[c] = true
	}

	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			c := types.Coord{X: i, Y: j}
			unlocked := variant == types.VariantOpen || seedSet[c]
			g.addTile(c, unlocked, false)
		}
	}

	if variant == types.VariantSeeded {
		for _, c := range seeds {
			if _, ok := g.tiles[c]; !ok {
				log.Printf("[GridModel] Seed tile %s is outside the %dx%d grid, ignored", c, width, height)
			}
		}
	}

	log.Printf("[GridModel] Initialized %dx%d grid (variant=%s, tiles=%d)", width, height, variant, len(g.tiles))
	return nil
}

// addTile 按插入顺序添加格子，已存在的坐标不会被覆盖
func (g *GridModel) addTile(c types.Coord, unlocked, occupied bool) *components.Tile {
	if t, ok := g.tiles[c]; ok {
		return t
	}
	t := components.NewTile(c.X, c.Y, unlocked)
	t.Occupied = occupied
	g.tiles[c] = t
	g.order = append(g.order, c)
	return t
}

// Tile 按坐标查找格子
func (g *GridModel) Tile(x, y int) (*components.Tile, bool) {
	t, ok := g.tiles[types.Coord{X: x, Y: y}]
	return t, ok
}

// Tiles 按插入顺序返回所有格子
func (g *GridModel) Tiles() []*components.Tile {
	tiles := make([]*components.Tile, 0, len(g.order))
	for _, c := range g.order {
		tiles = append(tiles, g.tiles[c])
	}
	return tiles
}

// Len 返回格子数量
func (g *GridModel) Len() int {
	return len(g.tiles)
}

// Bounds 返回所有格子中的最大 x 和最大 y
// 空网格返回 (-1, -1)
func (g *GridModel) Bounds() (maxX, maxY int) {
	maxX, maxY = -1, -1
	for c := range g.tiles {
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return maxX, maxY
}

// Counts 返回已解锁、已占用、未解锁的格子数量
func (g *GridModel) Counts() (unlocked, occupied, locked int) {
	for _, t := range g.tiles {
		switch {
		case t.Occupied:
			unlocked++
			occupied++
		case t.Unlocked:
			unlocked++
		default:
			locked++
		}
	}
	return unlocked, occupied, locked
}

// UnlockTile 解锁指定格子
//
// 返回：
//   - types.UnlockResult: UnlockApplied 或 UnlockAlreadyUnlocked（信息性，不视为错误）
//   - error: 坐标不在网格中时返回 ErrOutOfBounds
func (g *GridModel) UnlockTile(x, y int) (types.UnlockResult, error) {
	t, ok := g.Tile(x, y)
	if !ok {
		return types.UnlockApplied, fmt.Errorf("unlock (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	if t.Unlocked {
		return types.UnlockAlreadyUnlocked, nil
	}
	t.Unlocked = true
	return types.UnlockApplied, nil
}

// UnlockNextLocked 按插入顺序解锁第一个未解锁的格子
//
// 返回：
//   - types.Coord: 被解锁的坐标
//   - bool: false 表示所有格子都已解锁（不做任何修改）
func (g *GridModel) UnlockNextLocked() (types.Coord, bool) {
	for _, c := range g.order {
		t := g.tiles[c]
		if !t.Unlocked {
			t.Unlocked = true
			return c, true
		}
	}
	return types.Coord{}, false
}

// Expand 扩展网格
//
// right: 在 y = maxY+1 追加一列，覆盖行 0..maxX
// down:  在 x = maxX+1 追加一行，覆盖列 0..maxY
// 新格子均为未解锁、未占用。空网格不添加任何格子。
//
// 返回：
//   - []types.Coord: 新增格子的坐标
//   - error: 方向未知时返回 ErrUnknownDirection
func (g *GridModel) Expand(direction types.ExpandDirection) ([]types.Coord, error) {
	maxX, maxY := g.Bounds()

	var added []types.Coord
	switch direction {
	case types.ExpandRight:
		for x := 0; x <= maxX; x++ {
			c := types.Coord{X: x, Y: maxY + 1}
			g.addTile(c, false, false)
			added = append(added, c)
		}
	case types.ExpandDown:
		for y := 0; y <= maxY; y++ {
			c := types.Coord{X: maxX + 1, Y: y}
			g.addTile(c, false, false)
			added = append(added, c)
		}
	default:
		return nil, fmt.Errorf("expand %s: %w", direction, ErrUnknownDirection)
	}

	log.Printf("[GridModel] Expanded %s: %d new tiles", direction, len(added))
	return added, nil
}

// AddPendingBuilding 向待放置栈压入一个未旋转的建筑
//
// 返回：
//   - *components.Building: 新建筑
//   - error: 宽或高非正数时返回 ErrInvalidDimensions
func (g *GridModel) AddPendingBuilding(width, height int, mandatory bool) (*components.Building, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("building %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	b := components.NewBuilding(width, height, mandatory)
	g.pending.Push(b)
	return b, nil
}

// RotateTopBuilding 旋转栈顶建筑
//
// 返回：
//   - *components.Building: 旋转后的建筑
//   - error: 栈为空时返回 ErrNoPendingBuilding
func (g *GridModel) RotateTopBuilding() (*components.Building, error) {
	top := g.pending.Peek()
	if top == nil {
		return nil, ErrNoPendingBuilding
	}
	top.Rotate()
	return top, nil
}

// Pending 返回待放置建筑栈
func (g *GridModel) Pending() *BuildingStack {
	return g.pending
}

// Placed 返回已放置建筑账本（副本）
func (g *GridModel) Placed() []PlacedBuilding {
	placed := make([]PlacedBuilding, len(g.placed))
	copy(placed, g.placed)
	return placed
}

// PlacedAt 查找覆盖指定坐标的已放置建筑
func (g *GridModel) PlacedAt(x, y int) (PlacedBuilding, bool) {
	for _, p := range g.placed {
		if p.Covers(x, y) {
			return p, true
		}
	}
	return PlacedBuilding{}, false
}

// RecordPlacement 追加一条已放置建筑记录
// 由 PlacementSystem 在标记占用后调用
func (g *GridModel) RecordPlacement(p PlacedBuilding) {
	g.placed = append(g.placed, p)
}
