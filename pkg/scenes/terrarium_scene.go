package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/terrarium/pkg/config"
	"github.com/decker502/terrarium/pkg/ecs"
	"github.com/decker502/terrarium/pkg/entities"
	"github.com/decker502/terrarium/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// TerrariumScene 显示背景瓦片地图并运行全局计时器
//
// 启动时创建摄像机、时钟、计时器和瓦片地图实体；
// 每帧依次执行：时钟 -> 计时器 -> 清理实体。
type TerrariumScene struct {
	entityManager *ecs.EntityManager
	clearColor    color.RGBA

	timeSystem          *systems.TimeSystem
	intervalTimerSystem *systems.IntervalTimerSystem
	tileMapRenderSystem *systems.TileMapRenderSystem
	hudRenderSystem     *systems.HUDRenderSystem

	// ShowHUD 是否绘制调试 HUD
	ShowHUD bool
}

// NewTerrariumScene 创建场景
//
// 参数:
//   - rm: 资源加载器
//   - cfg: 场景配置
//   - notifier: 计时器触发通知的输出，nil 时使用标准 logger
//
// 返回:
//   - *TerrariumScene: 场景实例
//   - error: 瓦片地图创建失败时返回错误
func NewTerrariumScene(rm entities.ResourceLoader, cfg *config.TerrariumConfig, notifier *log.Logger) (*TerrariumScene, error) {
	em := ecs.NewEntityManager()

	entities.NewCameraEntity(em)
	entities.NewClockEntity(em)
	entities.NewIntervalTimerEntity(em, cfg.Timer)

	if _, err := entities.NewTerrariumTileMapEntity(em, rm, cfg); err != nil {
		return nil, fmt.Errorf("failed to set up terrarium: %w", err)
	}

	s := &TerrariumScene{
		entityManager:       em,
		clearColor:          cfg.Window.ClearColor.RGBA(),
		timeSystem:          systems.NewTimeSystem(em),
		intervalTimerSystem: systems.NewIntervalTimerSystem(em, notifier),
		tileMapRenderSystem: systems.NewTileMapRenderSystem(em),
		hudRenderSystem:     systems.NewHUDRenderSystem(em),
	}

	log.Printf("[TerrariumScene] Scene ready with %d entities", em.EntityCount())
	return s, nil
}

// Update 推进一帧
func (s *TerrariumScene) Update(deltaTime float64) {
	s.timeSystem.Update(deltaTime)
	s.intervalTimerSystem.Update()
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *TerrariumScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.clearColor)
	s.tileMapRenderSystem.Draw(screen)

	if s.ShowHUD {
		s.hudRenderSystem.Draw(screen)
	}
}

// EntityManager 返回场景的实体管理器（测试和调试工具使用）
func (s *TerrariumScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
