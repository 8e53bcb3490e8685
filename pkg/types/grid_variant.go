package types

// GridVariant 定义网格的初始化策略和点击行为
//
// 配置文件中以字符串形式出现（"open" / "seeded"）
type GridVariant string

const (
	// VariantOpen 所有格子初始即解锁，点击格子执行解锁检查
	VariantOpen GridVariant = "open"
	// VariantSeeded 只有种子格子初始解锁，点击格子执行建筑放置
	VariantSeeded GridVariant = "seeded"
)

// IsValid 检查变体是否为已知值
func (v GridVariant) IsValid() bool {
	return v == VariantOpen || v == VariantSeeded
}

// ClickPlaces 返回点击格子是否触发建筑放置
func (v GridVariant) ClickPlaces() bool {
	return v == VariantSeeded
}
