package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/gridplanner/pkg/app"
	"github.com/decker502/gridplanner/pkg/embedded"
)

func main() {
	configPath := flag.String("config", "", "规划器配置文件路径（默认使用内嵌的 data/planner.yaml）")
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	plannerApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("规划器初始化失败: %v", err)
	}

	window := plannerApp.PlannerConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 关闭窗口时先自动保存布局
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(plannerApp); err != nil {
		log.Fatal(err)
	}
}
