// Package app 提供应用的核心包装器
//
// 该包把初始化逻辑从 main 包中提取出来：加载配置、打开设置存储、
// 创建资源管理器和场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/terrarium/pkg/config"
	"github.com/decker502/terrarium/pkg/game"
	"github.com/decker502/terrarium/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 场景配置文件路径，为空时使用 data/terrarium.yaml
	ConfigPath string
	// ForceHUD 强制显示 HUD（--hud 参数），否则使用保存的设置
	ForceHUD bool
	// StorageAppName gdata 应用名，为空时使用默认值
	StorageAppName string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	scene           *scenes.TerrariumScene
	config          *config.TerrariumConfig
}

// NewApp 创建并初始化应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	terrariumConfig, err := config.LoadTerrariumConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}

	storageName := cfg.StorageAppName
	if storageName == "" {
		storageName = game.DefaultStorageAppName
	}
	settingsManager := game.NewSettingsManager(game.OpenStorage(storageName))

	resourceManager := game.NewResourceManager()

	// 计时器通知始终输出到标准输出，不受 --verbose 影响
	notifier := log.New(os.Stdout, "", log.LstdFlags)

	scene, err := scenes.NewTerrariumScene(resourceManager, terrariumConfig, notifier)
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}
	scene.ShowHUD = cfg.ForceHUD || settingsManager.GetSettings().ShowHUD

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	log.Printf("[App] Terrarium ready (window %dx%d, grid %dx%d, %d images, settings persistent: %v)",
		terrariumConfig.Window.Width, terrariumConfig.Window.Height,
		terrariumConfig.Grid.Width, terrariumConfig.Grid.Height,
		resourceManager.ImageCount(), settingsManager.IsPersistent())

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		scene:           scene,
		config:          terrariumConfig,
	}, nil
}

// ApplyWindowSettings 按配置和保存的设置初始化窗口
// 必须在 ebiten.RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	w := a.config.Window
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(int(float64(w.Width)*w.ScaleFactor), int(float64(w.Height)*w.ScaleFactor))
	ebiten.SetTPS(w.TicksPerSecond)
	ebiten.SetFullscreen(a.settingsManager.GetSettings().Fullscreen)
}

// Update 更新逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// F3 切换 HUD
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.toggleHUD()
	}

	a.sceneManager.Update(a.deltaTime())
	return nil
}

// deltaTime 返回固定时间步长（秒）
func (a *App) deltaTime() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = a.config.Window.TicksPerSecond
	}
	return 1.0 / float64(tps)
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

func (a *App) toggleHUD() {
	a.scene.ShowHUD = !a.scene.ShowHUD
	a.settingsManager.SetShowHUD(a.scene.ShowHUD)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 缩放因子固定时逻辑尺寸等于配置的窗口尺寸，Ebitengine 负责全屏时的缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.Window.Width, a.config.Window.Height
}

// Close 在游戏循环结束后调用，关闭场景并保存设置
func (a *App) Close() {
	a.sceneManager.Close()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings on exit: %v", err)
	}
}
