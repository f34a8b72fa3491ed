package systems

import (
	"image/color"
	"log"

	"github.com/decker502/terrarium/pkg/components"
	"github.com/decker502/terrarium/pkg/ecs"
	"github.com/decker502/terrarium/pkg/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
)

// defaultCamera 场景中没有摄像机实体时使用
var defaultCamera = components.CameraComponent{Zoom: 1.0}

// TileMapRenderSystem 绘制所有瓦片地图实体
//
// 坐标约定：
//   - 瓦片 (x, y) 的中心位于地图局部坐标 (x*TileWidth, y*TileHeight)，+Y 向上
//   - 地图局部坐标经 TransformComponent 缩放、平移后得到世界坐标
//   - 摄像机中心对齐屏幕中心
type TileMapRenderSystem struct {
	entityManager *ecs.EntityManager
	// missingSprites 已报告过的越界精灵索引，避免每帧刷屏
	missingSprites map[uint32]bool
}

// NewTileMapRenderSystem 创建瓦片地图渲染系统
func NewTileMapRenderSystem(em *ecs.EntityManager) *TileMapRenderSystem {
	return &TileMapRenderSystem{
		entityManager:  em,
		missingSprites: make(map[uint32]bool),
	}
}

// Draw 绘制瓦片地图
// 参数:
//   - screen: 绘制目标屏幕
func (s *TileMapRenderSystem) Draw(screen *ebiten.Image) {
	camera := s.camera()
	bounds := screen.Bounds()
	screenW := float64(bounds.Dx())
	screenH := float64(bounds.Dy())

	entities := ecs.GetEntitiesWith2[
		*components.TileMapComponent,
		*components.TransformComponent,
	](s.entityManager)

	for _, id := range entities {
		tm, _ := ecs.GetComponent[*components.TileMapComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if tm == nil || transform == nil || tm.Texture == nil || tm.Layout == nil || tm.Map == nil {
			continue
		}

		for _, placed := range tm.Map.Sorted() {
			rect, ok := tm.Layout.Rect(placed.Tile.SpriteIndex)
			if !ok {
				s.reportMissingSprite(placed.Tile.SpriteIndex, tm.Layout.Len())
				continue
			}

			op := &ebiten.DrawImageOptions{}
			op.GeoM = TileGeoM(placed.Position, placed.Tile, tm.Layout, *transform, camera, screenW, screenH)
			// 像素风格瓦片使用最近邻采样
			op.Filter = ebiten.FilterNearest
			if placed.Tile.Color != (color.RGBA{}) {
				op.ColorScale.ScaleWithColor(placed.Tile.Color)
			}

			screen.DrawImage(tm.Texture.SubImage(rect).(*ebiten.Image), op)
		}
	}
}

// camera 返回场景摄像机，没有摄像机实体时使用默认值
func (s *TileMapRenderSystem) camera() components.CameraComponent {
	ids := ecs.GetEntitiesWith1[*components.CameraComponent](s.entityManager)
	if len(ids) == 0 {
		return defaultCamera
	}
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, ids[0])
	if !ok {
		return defaultCamera
	}
	c := *cam
	if c.Zoom <= 0 {
		c.Zoom = 1.0
	}
	return c
}

func (s *TileMapRenderSystem) reportMissingSprite(index uint32, atlasLen int) {
	if s.missingSprites[index] {
		return
	}
	s.missingSprites[index] = true
	log.Printf("[TileMap] Warning: sprite index %d out of atlas range (0-%d), tiles skipped", index, atlasLen-1)
}

// TileGeoM 计算单个瓦片从图集子图到屏幕的变换
//
// 参数:
//   - pos: 瓦片坐标
//   - tile: 瓦片（用于翻转）
//   - layout: 图集布局（提供瓦片尺寸）
//   - transform: 地图实体变换
//   - camera: 摄像机
//   - screenW, screenH: 屏幕逻辑尺寸
//
// 返回:
//   - ebiten.GeoM: 作用于子图左上角 (0,0) 的变换
func TileGeoM(pos tilemap.TilePosition, tile tilemap.Tile, layout *tilemap.AtlasLayout,
	transform components.TransformComponent, camera components.CameraComponent,
	screenW, screenH float64) ebiten.GeoM {

	tw := float64(layout.TileWidth)
	th := float64(layout.TileHeight)

	var g ebiten.GeoM

	// 翻转以瓦片自身为轴
	if tile.FlipX {
		g.Scale(-1, 1)
		g.Translate(tw, 0)
	}
	if tile.FlipY {
		g.Scale(1, -1)
		g.Translate(0, th)
	}

	// 瓦片左上角在地图局部坐标中的位置（屏幕方向，+Y 向下）
	g.Translate(float64(pos.X)*tw-tw/2, -(float64(pos.Y)*th + th/2))

	scale := transform.Scale
	if scale == 0 {
		scale = 1.0
	}
	g.Scale(scale*camera.Zoom, scale*camera.Zoom)

	g.Translate((transform.X-camera.X)*camera.Zoom, -(transform.Y-camera.Y)*camera.Zoom)
	g.Translate(screenW/2, screenH/2)
	return g
}
