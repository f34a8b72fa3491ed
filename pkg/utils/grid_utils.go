package utils

import (
	"github.com/decker502/terrarium/pkg/config"
	"github.com/decker502/terrarium/pkg/tilemap"
)

// GridBounds 以原点为中心的网格坐标范围（闭区间）
type GridBounds struct {
	XMin, XMax int
	YMin, YMax int
}

// BoundsFromSize 根据网格宽高计算坐标范围
// 宽高应为奇数，此时范围关于原点对称：31 -> [-15, 15]
// 偶数宽高按整除处理（多出一列/行落在正方向），由配置校验负责拒绝
func BoundsFromSize(width, height int) GridBounds {
	xMax := width / 2
	yMax := height / 2
	return GridBounds{
		XMin: -xMax,
		XMax: xMax,
		YMin: -yMax,
		YMax: yMax,
	}
}

// Width 返回网格列数
func (b GridBounds) Width() int {
	return b.XMax - b.XMin + 1
}

// Height 返回网格行数
func (b GridBounds) Height() int {
	return b.YMax - b.YMin + 1
}

// Contains 检查坐标是否在网格范围内
func (b GridBounds) Contains(x, y int) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// Cell 网格单元：坐标 + 精灵索引
type Cell struct {
	X, Y        int
	SpriteIndex uint32
}

// ClassifyCell 根据坐标在网格中的位置选择精灵索引
//
// 规则按优先级依次匹配（+Y 向上，YMax 为顶边）：
//  1. 四个角：左上、右上、左下、右下
//  2. 四条边：上、左、右、下
//  3. 其余为填充
//
// 调用方只会传入范围内的坐标，因此没有错误返回
func ClassifyCell(b GridBounds, sprites config.SpriteTable, x, y int) uint32 {
	top := y == b.YMax
	bottom := y == b.YMin
	left := x == b.XMin
	right := x == b.XMax

	switch {
	case left && top:
		return sprites.TopLeft
	case right && top:
		return sprites.TopRight
	case left && bottom:
		return sprites.BottomLeft
	case right && bottom:
		return sprites.BottomRight
	case top:
		return sprites.Top
	case left:
		return sprites.Left
	case right:
		return sprites.Right
	case bottom:
		return sprites.Bottom
	default:
		return sprites.Fill
	}
}

// EnumerateCells 遍历整个网格并为每个坐标分类
// 外层按 Y 从小到大，内层按 X 从小到大，共 Width()*Height() 个单元
func EnumerateCells(b GridBounds, sprites config.SpriteTable) []Cell {
	cells := make([]Cell, 0, b.Width()*b.Height())
	for y := b.YMin; y <= b.YMax; y++ {
		for x := b.XMin; x <= b.XMax; x++ {
			cells = append(cells, Cell{
				X:           x,
				Y:           y,
				SpriteIndex: ClassifyCell(b, sprites, x, y),
			})
		}
	}
	return cells
}

// BuildTileBatch 把网格单元转换为一次性提交给瓦片地图的修改列表
// 参数:
//   - cells: EnumerateCells 的结果
//   - layer: 瓦片所在图层（Z）
func BuildTileBatch(cells []Cell, layer int) []tilemap.TileChange {
	changes := make([]tilemap.TileChange, 0, len(cells))
	for _, cell := range cells {
		changes = append(changes, tilemap.TileChange{
			Position: tilemap.TilePosition{X: cell.X, Y: cell.Y, Z: layer},
			Tile:     &tilemap.Tile{SpriteIndex: cell.SpriteIndex},
		})
	}
	return changes
}
