package config

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/decker502/terrarium/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 默认配置文件路径（嵌入资源）
const DefaultConfigPath = "data/terrarium.yaml"

// TerrariumConfig 场景配置
// 对应 data/terrarium.yaml，缺省字段由 applyTerrariumDefaults 补齐
type TerrariumConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Grid    GridConfig    `yaml:"grid"`
	Atlas   AtlasConfig   `yaml:"atlas"`
	Sprites SpriteTable   `yaml:"sprites"`
	Timer   TimerConfig   `yaml:"timer"`
	TileMap TileMapConfig `yaml:"tilemap"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title          string       `yaml:"title"`
	Width          int          `yaml:"width"`
	Height         int          `yaml:"height"`
	ScaleFactor    float64      `yaml:"scaleFactor"`
	TicksPerSecond int          `yaml:"ticksPerSecond"`
	ClearColor     *ColorConfig `yaml:"clearColor"`
}

// ColorConfig sRGB 颜色，各分量范围 0.0 ~ 1.0
type ColorConfig struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// RGBA 转换为 8 位颜色，分量越界时截断
func (c ColorConfig) RGBA() color.RGBA {
	return color.RGBA{R: unitToByte(c.R), G: unitToByte(c.G), B: unitToByte(c.B), A: 0xff}
}

func unitToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

// GridConfig 网格配置
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Layer  int `yaml:"layer"`
}

// AtlasConfig 纹理图集配置
type AtlasConfig struct {
	Texture    string `yaml:"texture"`
	TileWidth  int    `yaml:"tileWidth"`
	TileHeight int    `yaml:"tileHeight"`
	Columns    int    `yaml:"columns"`
	Rows       int    `yaml:"rows"`
	PaddingX   int    `yaml:"paddingX"`
	PaddingY   int    `yaml:"paddingY"`
	OffsetX    int    `yaml:"offsetX"`
	OffsetY    int    `yaml:"offsetY"`
}

// SpriteTable 网格分类到精灵索引的映射
type SpriteTable struct {
	TopLeft     uint32 `yaml:"topLeft"`
	TopRight    uint32 `yaml:"topRight"`
	BottomLeft  uint32 `yaml:"bottomLeft"`
	BottomRight uint32 `yaml:"bottomRight"`
	Top         uint32 `yaml:"top"`
	Left        uint32 `yaml:"left"`
	Right       uint32 `yaml:"right"`
	Bottom      uint32 `yaml:"bottom"`
	Fill        uint32 `yaml:"fill"`
}

// DefaultSpriteTable 返回 Fields.png 的草地九宫格索引
func DefaultSpriteTable() SpriteTable {
	return SpriteTable{
		TopLeft:     SpriteTopLeft,
		TopRight:    SpriteTopRight,
		BottomLeft:  SpriteBottomLeft,
		BottomRight: SpriteBottomRight,
		Top:         SpriteTop,
		Left:        SpriteLeft,
		Right:       SpriteRight,
		Bottom:      SpriteBottom,
		Fill:        SpriteFill,
	}
}

// Indices 按九宫格顺序返回全部索引
func (t SpriteTable) Indices() []uint32 {
	return []uint32{t.TopLeft, t.TopRight, t.BottomLeft, t.BottomRight, t.Top, t.Left, t.Right, t.Bottom, t.Fill}
}

// isZero 判断精灵表是否完全未配置
func (t SpriteTable) isZero() bool {
	return t == SpriteTable{}
}

// TimerConfig 周期计时器配置
type TimerConfig struct {
	Name            string  `yaml:"name"`
	IntervalSeconds float64 `yaml:"intervalSeconds"`
	// Repeating 为 nil 时默认重复
	Repeating *bool `yaml:"repeating"`
}

// Interval 返回计时器间隔
func (c TimerConfig) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds * float64(time.Second))
}

// IsRepeating 返回计时器是否重复触发
func (c TimerConfig) IsRepeating() bool {
	return c.Repeating == nil || *c.Repeating
}

// TileMapConfig 瓦片地图变换配置
type TileMapConfig struct {
	Scale float64 `yaml:"scale"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// DefaultTerrariumConfig 返回全部使用默认值的配置
func DefaultTerrariumConfig() *TerrariumConfig {
	cfg := newTerrariumConfig()
	applyTerrariumDefaults(cfg)
	return cfg
}

// newTerrariumConfig 返回解析前的初始配置
// 零值也合法的字段（如图层）在这里预置默认值，YAML 中缺省时保留
func newTerrariumConfig() *TerrariumConfig {
	return &TerrariumConfig{
		Grid: GridConfig{Layer: DefaultGridLayer},
	}
}

// LoadTerrariumConfig 从文件加载场景配置
//
// 路径以 "assets/" 或 "data/" 开头且嵌入资源可用时从嵌入资源读取，
// 否则从磁盘读取。
//
// 参数:
//   - path: 配置文件路径，如 "data/terrarium.yaml"
//
// 返回:
//   - *TerrariumConfig: 补齐默认值并通过校验的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadTerrariumConfig(path string) (*TerrariumConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read terrarium config file %s: %w", path, err)
	}

	cfg, err := ParseTerrariumConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid terrarium config in %s: %w", path, err)
	}

	log.Printf("[Config] 加载场景配置: %s (grid %dx%d, timer %.2fs)",
		path, cfg.Grid.Width, cfg.Grid.Height, cfg.Timer.IntervalSeconds)
	return cfg, nil
}

// ParseTerrariumConfig 解析 YAML 数据并补齐默认值
func ParseTerrariumConfig(data []byte) (*TerrariumConfig, error) {
	cfg := newTerrariumConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse terrarium config YAML: %w", err)
	}

	applyTerrariumDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// applyTerrariumDefaults 为缺失的可选字段设置默认值
func applyTerrariumDefaults(cfg *TerrariumConfig) {
	if cfg.Window.Title == "" {
		cfg.Window.Title = DefaultWindowTitle
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = DefaultWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = DefaultWindowHeight
	}
	if cfg.Window.ScaleFactor == 0 {
		cfg.Window.ScaleFactor = DefaultScaleFactor
	}
	if cfg.Window.TicksPerSecond == 0 {
		cfg.Window.TicksPerSecond = DefaultTicksPerSecond
	}
	if cfg.Window.ClearColor == nil {
		clear := DefaultClearColor
		cfg.Window.ClearColor = &clear
	}

	if cfg.Grid.Width == 0 {
		cfg.Grid.Width = DefaultGridWidth
	}
	if cfg.Grid.Height == 0 {
		cfg.Grid.Height = DefaultGridHeight
	}

	if cfg.Atlas.Texture == "" {
		cfg.Atlas.Texture = DefaultAtlasTexture
	}
	if cfg.Atlas.TileWidth == 0 {
		cfg.Atlas.TileWidth = DefaultAtlasTileWidth
	}
	if cfg.Atlas.TileHeight == 0 {
		cfg.Atlas.TileHeight = DefaultAtlasTileHeight
	}
	if cfg.Atlas.Columns == 0 {
		cfg.Atlas.Columns = DefaultAtlasColumns
	}
	if cfg.Atlas.Rows == 0 {
		cfg.Atlas.Rows = DefaultAtlasRows
	}

	// 精灵表整体缺省时使用默认九宫格，部分配置时按原样使用
	if cfg.Sprites.isZero() {
		cfg.Sprites = DefaultSpriteTable()
	}

	if cfg.Timer.Name == "" {
		cfg.Timer.Name = DefaultTimerName
	}
	if cfg.Timer.IntervalSeconds == 0 {
		cfg.Timer.IntervalSeconds = DefaultTimerIntervalSeconds
	}

	if cfg.TileMap.Scale == 0 {
		cfg.TileMap.Scale = DefaultTileMapScale
	}
}

// Validate 校验配置
func (cfg *TerrariumConfig) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.ScaleFactor <= 0 {
		return fmt.Errorf("window scaleFactor must be positive, got %f", cfg.Window.ScaleFactor)
	}
	if cfg.Window.TicksPerSecond <= 0 {
		return fmt.Errorf("window ticksPerSecond must be positive, got %d", cfg.Window.TicksPerSecond)
	}

	// 网格以原点对称，宽高必须为正奇数
	if cfg.Grid.Width <= 0 || cfg.Grid.Width%2 == 0 {
		return fmt.Errorf("grid width must be a positive odd number, got %d", cfg.Grid.Width)
	}
	if cfg.Grid.Height <= 0 || cfg.Grid.Height%2 == 0 {
		return fmt.Errorf("grid height must be a positive odd number, got %d", cfg.Grid.Height)
	}

	if cfg.Atlas.TileWidth <= 0 || cfg.Atlas.TileHeight <= 0 {
		return fmt.Errorf("atlas tile size must be positive, got %dx%d", cfg.Atlas.TileWidth, cfg.Atlas.TileHeight)
	}
	if cfg.Atlas.Columns <= 0 || cfg.Atlas.Rows <= 0 {
		return fmt.Errorf("atlas grid must be positive, got %dx%d", cfg.Atlas.Columns, cfg.Atlas.Rows)
	}

	atlasLen := uint32(cfg.Atlas.Columns * cfg.Atlas.Rows)
	for _, index := range cfg.Sprites.Indices() {
		if index >= atlasLen {
			return fmt.Errorf("sprite index %d out of atlas range (0-%d)", index, atlasLen-1)
		}
	}

	if cfg.Timer.IntervalSeconds < 0 {
		return fmt.Errorf("timer intervalSeconds cannot be negative, got %f", cfg.Timer.IntervalSeconds)
	}
	if cfg.TileMap.Scale <= 0 {
		return fmt.Errorf("tilemap scale must be positive, got %f", cfg.TileMap.Scale)
	}

	return nil
}
