//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 1 时在桌面端模拟移动模式（显示触摸工具栏）
const MobileEmulateEnv = "GRIDPLANNER_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时仅在设置了 MobileEmulateEnv=1 时返回 true
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
