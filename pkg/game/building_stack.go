package game

import "github.com/decker502/gridplanner/pkg/components"

// BuildingStack 待放置建筑的后进先出序列
//
// 只有栈顶（最近添加的）建筑可以被旋转或放置。
type BuildingStack struct {
	items []*components.Building
}

// NewBuildingStack 创建空栈
func NewBuildingStack() *BuildingStack {
	return &BuildingStack{}
}

// Push 压入建筑
func (s *BuildingStack) Push(b *components.Building) {
	s.items = append(s.items, b)
}

// Peek 返回栈顶建筑，栈为空时返回 nil
func (s *BuildingStack) Peek() *components.Building {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Pop 弹出栈顶建筑，栈为空时返回 nil
func (s *BuildingStack) Pop() *components.Building {
	if len(s.items) == 0 {
		return nil
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return top
}

// Len 返回待放置建筑数量
func (s *BuildingStack) Len() int {
	return len(s.items)
}

// IsEmpty 检查栈是否为空
func (s *BuildingStack) IsEmpty() bool {
	return len(s.items) == 0
}

// Items 返回从栈底到栈顶的建筑列表（切片副本，元素为原指针）
func (s *BuildingStack) Items() []*components.Building {
	items := make([]*components.Building, len(s.items))
	copy(items, s.items)
	return items
}
