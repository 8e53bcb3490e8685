package systems

import (
	"testing"

	"github.com/decker502/gridplanner/pkg/components"
	"github.com/decker502/gridplanner/pkg/game"
	"github.com/decker502/gridplanner/pkg/types"
)

// newTestGrid 创建测试网格
func newTestGrid(t *testing.T, width, height int, variant types.GridVariant, seeds []types.Coord) *game.GridModel {
	t.Helper()
	g := game.NewGridModel()
	if err := g.Initialize(width, height, variant, seeds); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	return g
}

// TestCanPlaceInsideFreeRectangle 测试完全位于空闲矩形内的建筑总能放置
func TestCanPlaceInsideFreeRectangle(t *testing.T) {
	g := newTestGrid(t, 5, 5, types.VariantOpen, nil)
	system := NewPlacementSystem(g)

	for w := 1; w <= 5; w++ {
		for h := 1; h <= 5; h++ {
			b := components.NewBuilding(w, h, false)
			for x := 0; x+w <= 5; x++ {
				for y := 0; y+h <= 5; y++ {
					if !system.CanPlace(x, y, b) {
						t.Fatalf("CanPlace(%d, %d, %dx%d) = false, want true", x, y, w, h)
					}
				}
			}
		}
	}
}

// TestCanPlaceRejections 测试越界、未解锁、已占用
func TestCanPlaceRejections(t *testing.T) {
	g := newTestGrid(t, 3, 3, types.VariantSeeded, []types.Coord{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2},
	})
	occupied, _ := g.Tile(1, 1)
	occupied.Occupied = true
	system := NewPlacementSystem(g)

	tests := []struct {
		name    string
		x, y    int
		w, h    int
		wantFit bool
	}{
		{"single free", 0, 0, 1, 1, true},
		{"vertical pair free", 0, 0, 2, 1, true},
		{"covers occupied", 0, 0, 2, 2, false},
		{"covers locked", 0, 1, 1, 2, false},
		{"outside grid", 2, 2, 2, 1, false},
		{"negative origin", -1, 0, 1, 1, false},
		{"isolated seed", 2, 2, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := components.NewBuilding(tt.w, tt.h, false)
			if got := system.CanPlace(tt.x, tt.y, b); got != tt.wantFit {
				t.Errorf("CanPlace(%d, %d, %dx%d) = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.wantFit)
			}
		})
	}

	if system.CanPlace(0, 0, nil) {
		t.Error("CanPlace with nil building should be false")
	}
}

// TestPlaceThenOverlap 测试放置后相同占地不能再次放置
func TestPlaceThenOverlap(t *testing.T) {
	g := newTestGrid(t, 4, 4, types.VariantOpen, nil)
	system := NewPlacementSystem(g)

	first := components.NewBuilding(2, 2, true)
	if !system.CanPlace(1, 1, first) {
		t.Fatal("first building should fit")
	}
	placed := system.Place(1, 1, first)

	if placed.ID == "" {
		t.Error("placed building should carry an ID")
	}
	for x := 1; x <= 2; x++ {
		for y := 1; y <= 2; y++ {
			tile, _ := g.Tile(x, y)
			if !tile.Occupied {
				t.Errorf("Tile(%d, %d) should be occupied", x, y)
			}
		}
	}

	second := components.NewBuilding(2, 2, false)
	if system.CanPlace(1, 1, second) {
		t.Error("second building on the same footprint must not fit")
	}
	if system.CanPlace(2, 2, second) {
		t.Error("partially overlapping building must not fit")
	}
	if !system.CanPlace(3, 0, components.NewBuilding(1, 4, false)) {
		t.Error("building beside the first one should fit")
	}

	if got := g.Placed(); len(got) != 1 || got[0].ID != placed.ID {
		t.Errorf("Placed ledger: got %+v", got)
	}
}

// TestClickPlaceProtocol 测试点击放置的各种结果
func TestClickPlaceProtocol(t *testing.T) {
	g := newTestGrid(t, 3, 3, types.VariantSeeded, game.DefaultSeedTiles)
	system := NewPlacementSystem(g)

	if result, _ := system.ClickPlace(7, 7); result != types.PlacementOutOfBounds {
		t.Errorf("out of bounds click: got %s", result)
	}
	if result, _ := system.ClickPlace(2, 2); result != types.PlacementTileLocked {
		t.Errorf("locked click: got %s", result)
	}
	if result, _ := system.ClickPlace(0, 0); result != types.PlacementNoPendingBuilding {
		t.Errorf("empty stack click: got %s", result)
	}

	// 3x1 沿 x 方向会碰到未解锁的第 2 行
	g.AddPendingBuilding(3, 1, false)
	if result, _ := system.ClickPlace(0, 0); result != types.PlacementCannotFit {
		t.Errorf("cannot fit click: got %s", result)
	}
	if g.Pending().Len() != 1 {
		t.Fatal("failed placement must keep the building pending")
	}

	// 旋转后为 1x3，沿 y 方向全部是种子格子
	g.RotateTopBuilding()
	result, placed := system.ClickPlace(0, 0)
	if result != types.PlacementPlaced {
		t.Fatalf("rotated click: got %s", result)
	}
	if placed == nil || placed.Width != 1 || placed.Height != 3 || !placed.Rotated {
		t.Errorf("placed record: got %+v", placed)
	}
	if g.Pending().Len() != 0 {
		t.Error("placed building should be popped")
	}
	for y := 0; y < 3; y++ {
		tile, _ := g.Tile(0, y)
		if !tile.Occupied {
			t.Errorf("Tile(0, %d) should be occupied", y)
		}
	}
}

// TestClickPlaceOnlyTopBuilding 测试只有栈顶建筑被放置
func TestClickPlaceOnlyTopBuilding(t *testing.T) {
	g := newTestGrid(t, 4, 4, types.VariantOpen, nil)
	system := NewPlacementSystem(g)

	bottom, _ := g.AddPendingBuilding(4, 4, true)
	g.AddPendingBuilding(1, 1, false)

	if result, placed := system.ClickPlace(3, 3); result != types.PlacementPlaced || placed.Mandatory {
		t.Fatalf("expected the 1x1 optional building, got %s %+v", result, placed)
	}
	if g.Pending().Peek() != bottom {
		t.Error("bottom building should now be on top")
	}
	if result, _ := system.ClickPlace(0, 0); result != types.PlacementCannotFit {
		t.Errorf("4x4 over an occupied cell: got %s", result)
	}
}

// TestSetGrid 测试替换网格
func TestSetGrid(t *testing.T) {
	system := NewPlacementSystem(newTestGrid(t, 1, 1, types.VariantOpen, nil))
	bigger := newTestGrid(t, 3, 3, types.VariantOpen, nil)
	system.SetGrid(bigger)

	if !system.CanPlace(0, 0, components.NewBuilding(3, 3, false)) {
		t.Error("CanPlace should use the replaced grid")
	}
}
