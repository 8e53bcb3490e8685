package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decker502/gridplanner/pkg/types"
)

// EncodeCoordKey 将坐标编码为存档键 "x,y"
func EncodeCoordKey(c types.Coord) string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// ParseCoordKey 解析存档键 "x,y"
//
// 以逗号分割，两部分分别转换为整数（允许两侧空白）。
func ParseCoordKey(key string) (types.Coord, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 2 {
		return types.Coord{}, fmt.Errorf("coordinate key %q: expected \"x,y\"", key)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return types.Coord{}, fmt.Errorf("coordinate key %q: bad x: %w", key, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return types.Coord{}, fmt.Errorf("coordinate key %q: bad y: %w", key, err)
	}
	return types.Coord{X: x, Y: y}, nil
}

// SaveLayout 将网格状态转换为存档记录
//
// 格子按插入顺序写出；待放置建筑按栈底到栈顶的顺序写出，
// 尺寸为未旋转尺寸，加载时通过重放旋转还原。
func SaveLayout(g *GridModel) *LayoutRecord {
	record := &LayoutRecord{Version: LayoutSaveVersion}

	for _, t := range g.Tiles() {
		occupied := t.Occupied
		record.Tiles.Set(EncodeCoordKey(types.Coord{X: t.X, Y: t.Y}), TileRecord{
			Unlocked: t.Unlocked,
			Occupied: &occupied,
		})
	}

	record.Buildings = make([]BuildingRecord, 0, g.pending.Len())
	for _, b := range g.pending.Items() {
		w, h := b.BaseSize()
		record.Buildings = append(record.Buildings, BuildingRecord{
			Width:     w,
			Height:    h,
			Mandatory: b.Mandatory,
			Rotated:   b.Rotated,
		})
	}

	for _, p := range g.placed {
		record.Placed = append(record.Placed, PlacedRecord{
			ID:        p.ID,
			X:         p.OriginX,
			Y:         p.OriginY,
			Width:     p.Width,
			Height:    p.Height,
			Mandatory: p.Mandatory,
			Rotated:   p.Rotated,
		})
	}

	return record
}

// LoadLayout 从存档记录还原网格
//
// 版本 0（未写版本号）按版本 1 处理。
//
// 返回：
//   - *GridModel: 还原后的新网格
//   - error: 记录不合法时返回包装了 ErrInvalidRecord 的错误
func LoadLayout(record *LayoutRecord) (*GridModel, error) {
	if record == nil {
		return nil, fmt.Errorf("nil record: %w", ErrInvalidRecord)
	}

	version := record.Version
	if version == 0 {
		version = 1
	}
	if version > LayoutSaveVersion {
		return nil, fmt.Errorf("unsupported layout version %d (max %d): %w",
			record.Version, LayoutSaveVersion, ErrInvalidRecord)
	}

	g := NewGridModel()

	for _, key := range record.Tiles.Keys() {
		c, err := ParseCoordKey(key)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrInvalidRecord)
		}
		rec, _ := record.Tiles.Get(key)

		occupied := false
		if version >= 2 && rec.Occupied != nil {
			occupied = *rec.Occupied
		}
		if occupied && !rec.Unlocked {
			return nil, fmt.Errorf("tile %s is occupied but locked: %w", key, ErrInvalidRecord)
		}
		g.addTile(c, rec.Unlocked, occupied)
	}

	for i, br := range record.Buildings {
		b, err := g.AddPendingBuilding(br.Width, br.Height, br.Mandatory)
		if err != nil {
			return nil, fmt.Errorf("building %d: %v: %w", i, err, ErrInvalidRecord)
		}
		if br.Rotated {
			b.Rotate()
		}
	}

	if version >= 2 {
		for i, pr := range record.Placed {
			p := PlacedBuilding{
				ID:        pr.ID,
				OriginX:   pr.X,
				OriginY:   pr.Y,
				Width:     pr.Width,
				Height:    pr.Height,
				Mandatory: pr.Mandatory,
				Rotated:   pr.Rotated,
			}
			if err := validatePlacedFootprint(g, p); err != nil {
				return nil, fmt.Errorf("placed building %d: %v: %w", i, err, ErrInvalidRecord)
			}
			g.RecordPlacement(p)
		}
	}

	return g, nil
}

// validatePlacedFootprint 检查已放置建筑的占地全部落在已占用的格子上
func validatePlacedFootprint(g *GridModel, p PlacedBuilding) error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("footprint %dx%d is not positive", p.Width, p.Height)
	}
	for i := 0; i < p.Width; i++ {
		for j := 0; j < p.Height; j++ {
			t, ok := g.Tile(p.OriginX+i, p.OriginY+j)
			if !ok || !t.Occupied {
				return fmt.Errorf("cell (%d, %d) is not an occupied tile", p.OriginX+i, p.OriginY+j)
			}
		}
	}
	return nil
}
