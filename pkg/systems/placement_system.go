package systems

import (
	"log"

	"github.com/google/uuid"

	"github.com/decker502/gridplanner/pkg/components"
	"github.com/decker502/gridplanner/pkg/game"
	"github.com/decker502/gridplanner/pkg/types"
)

// PlacementSystem 建筑放置系统
// 负责校验建筑占地并把建筑提交到网格上
//
// 放置规则：
//   - 占地内每个坐标 (originX+i, originY+j) 必须存在、已解锁、未被占用
//   - 只有待放置栈顶的建筑可以通过点击放置
type PlacementSystem struct {
	grid *game.GridModel
}

// NewPlacementSystem 创建放置系统
func NewPlacementSystem(grid *game.GridModel) *PlacementSystem {
	return &PlacementSystem{grid: grid}
}

// SetGrid 替换操作的网格（加载存档后调用）
func (s *PlacementSystem) SetGrid(grid *game.GridModel) {
	s.grid = grid
}

// CanPlace 检查建筑能否以 (originX, originY) 为原点放置
// 遇到第一个不满足条件的格子立即返回 false
func (s *PlacementSystem) CanPlace(originX, originY int, b *components.Building) bool {
	if b == nil || b.Width <= 0 || b.Height <= 0 {
		return false
	}
	for i := 0; i < b.Width; i++ {
		for j := 0; j < b.Height; j++ {
			t, ok := s.grid.Tile(originX+i, originY+j)
			if !ok || !t.IsFree() {
				return false
			}
		}
	}
	return true
}

// Place 将建筑放置到网格上
//
// 前置条件：CanPlace 返回 true（由调用方保证，这里不再校验）。
// 标记占地内所有格子为已占用，并在网格账本中记录一条已放置建筑。
//
// 返回：
//   - game.PlacedBuilding: 已放置建筑记录
func (s *PlacementSystem) Place(originX, originY int, b *components.Building) game.PlacedBuilding {
	for i := 0; i < b.Width; i++ {
		for j := 0; j < b.Height; j++ {
			if t, ok := s.grid.Tile(originX+i, originY+j); ok {
				t.Occupied = true
			}
		}
	}

	placed := game.PlacedBuilding{
		ID:        uuid.NewString(),
		OriginX:   originX,
		OriginY:   originY,
		Width:     b.Width,
		Height:    b.Height,
		Mandatory: b.Mandatory,
		Rotated:   b.Rotated,
	}
	s.grid.RecordPlacement(placed)

	log.Printf("[PlacementSystem] Placed %dx%d building at (%d, %d), mandatory=%v",
		b.Width, b.Height, originX, originY, b.Mandatory)
	return placed
}

// ClickPlace 处理点击格子的放置请求
//
// 检查顺序：
//  1. 坐标不在网格中 -> PlacementOutOfBounds
//  2. 格子未解锁 -> PlacementTileLocked（提示先解锁）
//  3. 没有待放置建筑 -> PlacementNoPendingBuilding
//  4. 放不下 -> PlacementCannotFit
//  5. 放置栈顶建筑并出栈 -> PlacementPlaced
//
// 返回：
//   - types.PlacementResult: 放置结果
//   - *game.PlacedBuilding: 放置成功时的记录，其余情况为 nil
func (s *PlacementSystem) ClickPlace(x, y int) (types.PlacementResult, *game.PlacedBuilding) {
	tile, ok := s.grid.Tile(x, y)
	if !ok {
		return types.PlacementOutOfBounds, nil
	}
	if !tile.Unlocked {
		return types.PlacementTileLocked, nil
	}

	pending := s.grid.Pending()
	top := pending.Peek()
	if top == nil {
		return types.PlacementNoPendingBuilding, nil
	}
	if !s.CanPlace(x, y, top) {
		return types.PlacementCannotFit, nil
	}

	placed := s.Place(x, y, top)
	pending.Pop()
	return types.PlacementPlaced, &placed
}
