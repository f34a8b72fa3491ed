package tilemap

import (
	"image/color"
	"sort"
)

// TilePosition 瓦片坐标
// X、Y 为网格坐标（+Y 向上），Z 为图层，数值大的图层绘制在上层
type TilePosition struct {
	X, Y, Z int
}

// Tile 单个瓦片的绘制参数
type Tile struct {
	SpriteIndex uint32
	// Color 染色，零值表示不染色
	Color color.RGBA
	FlipX bool
	FlipY bool
}

// TileChange 一次瓦片修改操作
// Tile 为 nil 表示移除该坐标上的瓦片
type TileChange struct {
	Position TilePosition
	Tile     *Tile
}

// PlacedTile 带坐标的瓦片，用于按绘制顺序遍历
type PlacedTile struct {
	Position TilePosition
	Tile     Tile
}

// TileMap 按坐标存放瓦片
// 非线程安全，只在游戏主循环中访问
type TileMap struct {
	tiles map[TilePosition]Tile
	// sorted 绘制顺序缓存，瓦片变化后置空
	sorted []PlacedTile
}

// NewTileMap 创建空瓦片地图
func NewTileMap() *TileMap {
	return &TileMap{
		tiles: make(map[TilePosition]Tile),
	}
}

// SetTiles 批量应用瓦片修改
// 按顺序执行，同一坐标后出现的修改覆盖先出现的
func (m *TileMap) SetTiles(changes []TileChange) {
	for _, change := range changes {
		if change.Tile == nil {
			delete(m.tiles, change.Position)
			continue
		}
		m.tiles[change.Position] = *change.Tile
	}
	m.sorted = nil
}

// SetTile 设置单个坐标的瓦片，tile 为 nil 时移除
func (m *TileMap) SetTile(pos TilePosition, tile *Tile) {
	m.SetTiles([]TileChange{{Position: pos, Tile: tile}})
}

// GetTile 返回指定坐标的瓦片
func (m *TileMap) GetTile(pos TilePosition) (Tile, bool) {
	tile, ok := m.tiles[pos]
	return tile, ok
}

// Len 返回瓦片数量
func (m *TileMap) Len() int {
	return len(m.tiles)
}

// Clear 移除全部瓦片
func (m *TileMap) Clear() {
	m.tiles = make(map[TilePosition]Tile)
	m.sorted = nil
}

// Sorted 返回按绘制顺序排列的瓦片
// 顺序：Z 升序，同层内 Y 降序（自上而下），同行内 X 升序
// 返回的切片在下一次修改前保持有效，调用方不得修改
func (m *TileMap) Sorted() []PlacedTile {
	if m.sorted != nil {
		return m.sorted
	}

	placed := make([]PlacedTile, 0, len(m.tiles))
	for pos, tile := range m.tiles {
		placed = append(placed, PlacedTile{Position: pos, Tile: tile})
	}
	sort.Slice(placed, func(i, j int) bool {
		a, b := placed[i].Position, placed[j].Position
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y > b.Y
		}
		return a.X < b.X
	})

	m.sorted = placed
	return m.sorted
}
