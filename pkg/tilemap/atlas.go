// Package tilemap 提供基于纹理图集的简单瓦片地图
//
// AtlasLayout 把一张纹理按固定网格切分为可按索引访问的精灵格；
// TileMap 以 (x, y, z) 坐标存放瓦片，绘制由 systems.TileMapRenderSystem 负责。
package tilemap

import (
	"fmt"
	"image"
)

// AtlasLayout 描述纹理图集的网格布局
// 精灵索引按行优先编号：index = row*Columns + col，左上角为 0
type AtlasLayout struct {
	TileWidth  int
	TileHeight int
	Columns    int
	Rows       int
	// Padding 相邻精灵格之间的间距（像素）
	PaddingX int
	PaddingY int
	// Offset 第一个精灵格相对纹理左上角的偏移（像素）
	OffsetX int
	OffsetY int
}

// FromGrid 按网格参数创建图集布局
// 参数:
//   - tileWidth, tileHeight: 单个精灵格尺寸（像素）
//   - columns, rows: 网格列数和行数
//
// 返回:
//   - *AtlasLayout: 无间距、无偏移的图集布局
//   - error: 任意参数非正时返回错误
func FromGrid(tileWidth, tileHeight, columns, rows int) (*AtlasLayout, error) {
	return FromGridWithPadding(tileWidth, tileHeight, columns, rows, 0, 0, 0, 0)
}

// FromGridWithPadding 按网格参数创建带间距和偏移的图集布局
func FromGridWithPadding(tileWidth, tileHeight, columns, rows, paddingX, paddingY, offsetX, offsetY int) (*AtlasLayout, error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("invalid atlas tile size %dx%d", tileWidth, tileHeight)
	}
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid atlas grid %dx%d", columns, rows)
	}
	if paddingX < 0 || paddingY < 0 || offsetX < 0 || offsetY < 0 {
		return nil, fmt.Errorf("atlas padding and offset must not be negative")
	}

	return &AtlasLayout{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Columns:    columns,
		Rows:       rows,
		PaddingX:   paddingX,
		PaddingY:   paddingY,
		OffsetX:    offsetX,
		OffsetY:    offsetY,
	}, nil
}

// Len 返回图集中精灵格的总数
func (l *AtlasLayout) Len() int {
	return l.Columns * l.Rows
}

// Rect 返回指定精灵索引在纹理中的像素矩形
// 索引越界时返回 false
func (l *AtlasLayout) Rect(index uint32) (image.Rectangle, bool) {
	if int(index) >= l.Len() {
		return image.Rectangle{}, false
	}

	col := int(index) % l.Columns
	row := int(index) / l.Columns

	x := l.OffsetX + col*(l.TileWidth+l.PaddingX)
	y := l.OffsetY + row*(l.TileHeight+l.PaddingY)
	return image.Rect(x, y, x+l.TileWidth, y+l.TileHeight), true
}

// TextureSize 返回容纳整个布局所需的最小纹理尺寸
func (l *AtlasLayout) TextureSize() (width, height int) {
	width = l.OffsetX + l.Columns*l.TileWidth + (l.Columns-1)*l.PaddingX
	height = l.OffsetY + l.Rows*l.TileHeight + (l.Rows-1)*l.PaddingY
	return width, height
}
