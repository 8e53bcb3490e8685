//go:build mobile

package utils

// IsMobile 移动端编译时总是返回 true（没有键盘，使用触摸工具栏）
func IsMobile() bool {
	return true
}
