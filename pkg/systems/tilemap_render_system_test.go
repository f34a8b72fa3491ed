package systems

import (
	"math"
	"testing"

	"github.com/decker502/terrarium/pkg/components"
	"github.com/decker502/terrarium/pkg/ecs"
	"github.com/decker502/terrarium/pkg/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestTileGeoM 测试瓦片到屏幕坐标的变换
func TestTileGeoM(t *testing.T) {
	layout, err := tilemap.FromGrid(16, 16, 6, 7)
	if err != nil {
		t.Fatalf("FromGrid failed: %v", err)
	}
	camera := components.CameraComponent{Zoom: 1.0}
	transform := components.TransformComponent{Scale: 2.0}

	tests := []struct {
		name         string
		pos          tilemap.TilePosition
		wantX, wantY float64
	}{
		// 31x31 网格、缩放 2：整张地图 992px，居中于 1024 窗口，边距 16px
		{"左上角瓦片", tilemap.TilePosition{X: -15, Y: 15}, 16, 16},
		{"右下角瓦片", tilemap.TilePosition{X: 15, Y: -15}, 976, 976},
		{"中心瓦片", tilemap.TilePosition{X: 0, Y: 0}, 496, 496},
		{"+Y 向上", tilemap.TilePosition{X: 0, Y: 1}, 496, 464},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := TileGeoM(tt.pos, tilemap.Tile{}, layout, transform, camera, 1024, 1024)
			x, y := g.Apply(0, 0)
			if !approxEqual(x, tt.wantX) || !approxEqual(y, tt.wantY) {
				t.Errorf("top-left = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
			// 瓦片右下角 = 左上角 + 32px
			x2, y2 := g.Apply(16, 16)
			if !approxEqual(x2-x, 32) || !approxEqual(y2-y, 32) {
				t.Errorf("scaled tile size = (%v, %v), want (32, 32)", x2-x, y2-y)
			}
		})
	}
}

// TestTileGeoMCameraAndFlip 测试摄像机偏移和翻转
func TestTileGeoMCameraAndFlip(t *testing.T) {
	layout, _ := tilemap.FromGrid(16, 16, 6, 7)
	transform := components.TransformComponent{Scale: 1.0}

	// 摄像机右移 16 个世界单位，中心瓦片向左移动 16px
	camera := components.CameraComponent{X: 16, Zoom: 1.0}
	g := TileGeoM(tilemap.TilePosition{}, tilemap.Tile{}, layout, transform, camera, 100, 100)
	x, y := g.Apply(0, 0)
	if !approxEqual(x, 50-8-16) || !approxEqual(y, 50-8) {
		t.Errorf("camera offset top-left = (%v, %v)", x, y)
	}

	// 水平翻转：子图左上角映射到瓦片右上角
	flipped := TileGeoM(tilemap.TilePosition{}, tilemap.Tile{FlipX: true}, layout, transform,
		components.CameraComponent{Zoom: 1.0}, 100, 100)
	fx, fy := flipped.Apply(0, 0)
	if !approxEqual(fx, 58) || !approxEqual(fy, 42) {
		t.Errorf("flipX top-left = (%v, %v), want (58, 42)", fx, fy)
	}

	// Scale 为 0 按 1 处理
	zero := TileGeoM(tilemap.TilePosition{}, tilemap.Tile{}, layout, components.TransformComponent{},
		components.CameraComponent{Zoom: 1.0}, 100, 100)
	zx, _ := zero.Apply(16, 0)
	if !approxEqual(zx, 58) {
		t.Errorf("zero scale right edge = %v, want 58", zx)
	}
}

// TestTileMapRenderSystemDrawSkipsIncompleteEntities 测试组件不完整的实体被跳过
func TestTileMapRenderSystemDrawSkipsIncompleteEntities(t *testing.T) {
	layout, err := tilemap.FromGrid(16, 16, 6, 7)
	if err != nil {
		t.Fatalf("FromGrid failed: %v", err)
	}
	tiles := tilemap.NewTileMap()
	tiles.SetTile(tilemap.TilePosition{}, &tilemap.Tile{SpriteIndex: 99})

	em := ecs.NewEntityManager()

	// 变换组件为 nil 指针
	nilTransform := em.CreateEntity()
	em.AddComponent(nilTransform, &components.TileMapComponent{
		Texture: ebiten.NewImage(96, 112),
		Layout:  layout,
		Map:     tiles,
	})
	em.AddComponent(nilTransform, (*components.TransformComponent)(nil))

	// 瓦片地图组件为 nil 指针
	nilTileMap := em.CreateEntity()
	em.AddComponent(nilTileMap, (*components.TileMapComponent)(nil))
	em.AddComponent(nilTileMap, &components.TransformComponent{Scale: 1})

	system := NewTileMapRenderSystem(em)
	system.Draw(ebiten.NewImage(64, 64))

	if len(system.missingSprites) != 0 {
		t.Errorf("skipped entities must not be drawn, got missing sprites %v", system.missingSprites)
	}

	// 补上变换后越界索引只报告一次
	em.AddComponent(nilTransform, &components.TransformComponent{Scale: 1})
	system.Draw(ebiten.NewImage(64, 64))
	system.Draw(ebiten.NewImage(64, 64))
	if len(system.missingSprites) != 1 || !system.missingSprites[99] {
		t.Errorf("Expected sprite 99 reported once, got %v", system.missingSprites)
	}
}
