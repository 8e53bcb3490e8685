package types

import (
	"fmt"
	"strings"
)

// ExpandDirection 定义网格扩展方向
type ExpandDirection int

const (
	// ExpandUnknown 未知方向
	ExpandUnknown ExpandDirection = iota
	// ExpandRight 向右追加一列（y = maxY + 1）
	ExpandRight
	// ExpandDown 向下追加一行（x = maxX + 1）
	ExpandDown
)

// String 返回扩展方向的字符串表示
func (d ExpandDirection) String() string {
	switch d {
	case ExpandRight:
		return "right"
	case ExpandDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseExpandDirection 将字符串解析为扩展方向（不区分大小写）
func ParseExpandDirection(s string) (ExpandDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return ExpandRight, nil
	case "down":
		return ExpandDown, nil
	default:
		return ExpandUnknown, fmt.Errorf("unknown expand direction %q (expected right or down)", s)
	}
}
