package types

// UnlockResult 解锁操作的结果（信息性，非错误）
type UnlockResult int

const (
	// UnlockApplied 格子已被解锁
	UnlockApplied UnlockResult = iota
	// UnlockAlreadyUnlocked 格子此前已解锁，未做任何修改
	UnlockAlreadyUnlocked
)

// PlacementResult 点击放置的结果
type PlacementResult int

const (
	// PlacementPlaced 放置成功，顶部建筑已出栈
	PlacementPlaced PlacementResult = iota
	// PlacementOutOfBounds 点击的坐标不在网格中
	PlacementOutOfBounds
	// PlacementTileLocked 点击的格子尚未解锁
	PlacementTileLocked
	// PlacementNoPendingBuilding 没有待放置的建筑
	PlacementNoPendingBuilding
	// PlacementCannotFit 建筑覆盖范围越界、未解锁或已被占用
	PlacementCannotFit
)

// String 返回放置结果的字符串表示
func (r PlacementResult) String() string {
	switch r {
	case PlacementPlaced:
		return "placed"
	case PlacementOutOfBounds:
		return "out of bounds"
	case PlacementTileLocked:
		return "tile locked"
	case PlacementNoPendingBuilding:
		return "no pending building"
	case PlacementCannotFit:
		return "cannot fit"
	default:
		return "unknown"
	}
}

// FeedbackLevel 用户可见提示的级别
type FeedbackLevel int

const (
	// FeedbackInfo 信息提示
	FeedbackInfo FeedbackLevel = iota
	// FeedbackWarning 警告（如存档不存在）
	FeedbackWarning
	// FeedbackError 用户输入错误（如坐标越界）
	FeedbackError
)

// String 返回提示级别的字符串表示
func (l FeedbackLevel) String() string {
	switch l {
	case FeedbackWarning:
		return "Warning"
	case FeedbackError:
		return "Error"
	default:
		return "Info"
	}
}
