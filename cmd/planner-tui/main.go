// planner-tui 终端版网格规划器
//
// 用法：
//
//	go run ./cmd/planner-tui [-config data/planner.yaml] [-log planner.log]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/gridplanner/pkg/app"
	"github.com/decker502/gridplanner/pkg/modules"
	"github.com/decker502/gridplanner/pkg/terminal"
)

func main() {
	configPath := flag.String("config", "", "规划器配置文件路径（默认使用内置配置）")
	logPath := flag.String("log", "", "日志文件路径（终端界面下日志不能输出到屏幕）")
	flag.Parse()

	// 终端被界面占用，日志只能写入文件
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	saveManager, err := app.OpenSaveManager(cfg.Save)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	module, err := modules.NewPlannerModule(cfg, saveManager)
	if err != nil {
		fmt.Fprintf(os.Stderr, "规划器初始化失败: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	view := terminal.NewPlannerView(screen, module)
	view.Run()
	screen.Fini()

	if !module.SaveOnExit() {
		fmt.Fprintf(os.Stderr, "警告: 退出时自动保存失败\n")
	}
}
