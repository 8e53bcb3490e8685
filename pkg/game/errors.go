package game

import "errors"

// 领域错误
//
// 所有错误都会以用户可见提示的形式呈现，不会导致进程退出。
// 调用方使用 errors.Is 判断具体类型。
var (
	// ErrOutOfBounds 坐标不在网格中
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidDimensions 建筑尺寸或网格尺寸不是正整数
	ErrInvalidDimensions = errors.New("dimensions must be positive")

	// ErrNoPendingBuilding 没有待放置的建筑
	ErrNoPendingBuilding = errors.New("no pending building")

	// ErrUnknownDirection 未知的扩展方向
	ErrUnknownDirection = errors.New("unknown expand direction")

	// ErrMissingSaveFile 没有可加载的存档
	ErrMissingSaveFile = errors.New("no saved layout")

	// ErrInvalidRecord 存档内容无法还原为合法的网格
	ErrInvalidRecord = errors.New("invalid layout record")
)
