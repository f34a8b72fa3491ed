package entities

import (
	"fmt"
	"log"

	"github.com/decker502/terrarium/pkg/components"
	"github.com/decker502/terrarium/pkg/config"
	"github.com/decker502/terrarium/pkg/ecs"
	"github.com/decker502/terrarium/pkg/tilemap"
	"github.com/decker502/terrarium/pkg/utils"
)

// NewCameraEntity 创建二维摄像机实体，中心对准世界原点
func NewCameraEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.CameraComponent{Zoom: 1.0})
	return id
}

// NewClockEntity 创建全局时钟实体
func NewClockEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TimeComponent{})
	return id
}

// NewIntervalTimerEntity 根据配置创建周期计时器实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 计时器配置
//
// 返回:
//   - ecs.EntityID: 计时器实体ID
func NewIntervalTimerEntity(em *ecs.EntityManager, cfg config.TimerConfig) ecs.EntityID {
	mode := components.TimerModeRepeating
	if !cfg.IsRepeating() {
		mode = components.TimerModeOnce
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.IntervalTimerComponent{
		Name:     cfg.Name,
		Duration: cfg.Interval(),
		Mode:     mode,
	})

	log.Printf("[Entities] Created timer %q (%v, %s)", cfg.Name, cfg.Interval(), mode)
	return id
}

// NewTerrariumTileMapEntity 创建背景瓦片地图实体
//
// 加载图集纹理，按网格分类规则一次性生成全部瓦片，并挂上变换组件
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器（加载图集纹理）
//   - cfg: 场景配置
//
// 返回:
//   - ecs.EntityID: 瓦片地图实体ID，失败时返回 0
//   - error: 纹理加载或图集布局失败时返回错误
func NewTerrariumTileMapEntity(em *ecs.EntityManager, rm ResourceLoader, cfg *config.TerrariumConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rm == nil {
		return 0, fmt.Errorf("resource loader cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("terrarium config cannot be nil")
	}

	texture, err := rm.LoadImage(cfg.Atlas.Texture)
	if err != nil {
		return 0, fmt.Errorf("failed to load tile atlas: %w", err)
	}

	layout, err := tilemap.FromGridWithPadding(
		cfg.Atlas.TileWidth, cfg.Atlas.TileHeight,
		cfg.Atlas.Columns, cfg.Atlas.Rows,
		cfg.Atlas.PaddingX, cfg.Atlas.PaddingY,
		cfg.Atlas.OffsetX, cfg.Atlas.OffsetY,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to build atlas layout: %w", err)
	}

	// 纹理小于布局时仍然继续，越界的精灵格会被 SubImage 裁剪为空
	if w, h := layout.TextureSize(); texture.Bounds().Dx() < w || texture.Bounds().Dy() < h {
		log.Printf("[Entities] Warning: atlas %s is %dx%d, layout needs %dx%d",
			cfg.Atlas.Texture, texture.Bounds().Dx(), texture.Bounds().Dy(), w, h)
	}

	bounds := utils.BoundsFromSize(cfg.Grid.Width, cfg.Grid.Height)
	cells := utils.EnumerateCells(bounds, cfg.Sprites)

	tiles := tilemap.NewTileMap()
	tiles.SetTiles(utils.BuildTileBatch(cells, cfg.Grid.Layer))

	id := em.CreateEntity()
	em.AddComponent(id, &components.TileMapComponent{
		Texture: texture,
		Layout:  layout,
		Map:     tiles,
	})
	em.AddComponent(id, &components.TransformComponent{
		X:     cfg.TileMap.X,
		Y:     cfg.TileMap.Y,
		Scale: cfg.TileMap.Scale,
	})

	log.Printf("[Entities] Created tilemap with %d tiles (bounds x[%d,%d] y[%d,%d])",
		tiles.Len(), bounds.XMin, bounds.XMax, bounds.YMin, bounds.YMax)
	return id, nil
}
