package components

import (
	"github.com/decker502/terrarium/pkg/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
)

// TileMapComponent 瓦片地图组件
// 保存图集纹理、图集布局和瓦片数据，由 TileMapRenderSystem 绘制
type TileMapComponent struct {
	// Texture 图集纹理
	Texture *ebiten.Image

	// Layout 图集网格布局
	Layout *tilemap.AtlasLayout

	// Map 瓦片数据
	Map *tilemap.TileMap
}
