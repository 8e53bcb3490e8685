// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Coord 网格坐标
//
// X 为行索引，Y 为列索引（与网格按行优先创建的顺序一致）
type Coord struct {
	X int
	Y int
}

// String 返回 "x,y" 形式的坐标
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}
