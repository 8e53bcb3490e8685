//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.gridplanner -o build/android/gridplanner.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/GridPlanner.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/gridplanner/pkg/app"
	"github.com/decker502/gridplanner/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	// 移动端没有命令行参数，使用内嵌配置；点击即触摸
	plannerApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("规划器初始化失败: %v", err)
	}

	mobile.SetGame(plannerApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
