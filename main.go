package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/decker502/terrarium/pkg/app"
	"github.com/decker502/terrarium/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "场景配置文件路径（默认使用内嵌的 data/terrarium.yaml）")
	showHUD    = flag.Bool("hud", false, "显示调试 HUD（帧数、累计时间、计时器状态）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		ForceHUD:   *showHUD,
	})
	if err != nil {
		// 非 verbose 模式下日志被关闭，致命错误需要重新打开输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	gameApp.ApplyWindowSettings()

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
