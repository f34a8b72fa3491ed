package config

// 布局配置常量
// 本文件定义窗口、网格和图集的默认参数，配置文件缺省字段时使用这些值

// Window Configuration (窗口配置)
const (
	// DefaultWindowTitle 窗口标题
	DefaultWindowTitle = "Terrarium"

	// DefaultWindowWidth 窗口宽度（逻辑像素）
	DefaultWindowWidth = 1024

	// DefaultWindowHeight 窗口高度（逻辑像素）
	DefaultWindowHeight = 1024

	// DefaultScaleFactor 窗口缩放因子
	// 固定为 1.0，忽略系统 DPI 设置，保证像素风格瓦片按整数倍放大
	DefaultScaleFactor = 1.0

	// DefaultTicksPerSecond 逻辑帧率
	DefaultTicksPerSecond = 60
)

// DefaultClearColor 背景清屏颜色（sRGB 0~1）
// 沙土色，与瓦片边缘的泥土颜色接近
var DefaultClearColor = ColorConfig{R: 0.8, G: 0.69, B: 0.38}

// Grid Configuration (网格配置)
// 网格以原点为中心，宽高必须为奇数，坐标范围为 [-W/2, W/2] x [-H/2, H/2]
const (
	// DefaultGridWidth 网格列数
	DefaultGridWidth = 31

	// DefaultGridHeight 网格行数
	DefaultGridHeight = 31

	// DefaultGridLayer 背景瓦片所在图层
	DefaultGridLayer = 0

	// DefaultTileMapScale 瓦片地图整体缩放
	// 16px 瓦片 x2 = 32px，31 格 = 992px，正好放入 1024 窗口
	DefaultTileMapScale = 2.0
)

// Atlas Configuration (图集配置)
// Fields.png: 96x112 像素，16x16 的精灵格，6 列 x 7 行
const (
	DefaultAtlasTexture    = "assets/Fields.png"
	DefaultAtlasTileWidth  = 16
	DefaultAtlasTileHeight = 16
	DefaultAtlasColumns    = 6
	DefaultAtlasRows       = 7
)

// Sprite indices (精灵索引)
// 对应 Fields.png 中草地块的九宫格：
//
//	18 19 20
//	24 25 26
//	30 31 32
const (
	SpriteTopLeft     uint32 = 18
	SpriteTop         uint32 = 19
	SpriteTopRight    uint32 = 20
	SpriteLeft        uint32 = 24
	SpriteFill        uint32 = 25
	SpriteRight       uint32 = 26
	SpriteBottomLeft  uint32 = 30
	SpriteBottom      uint32 = 31
	SpriteBottomRight uint32 = 32
)

// Timer Configuration (计时器配置)
const (
	// DefaultTimerName 全局计时器名称
	DefaultTimerName = "global"

	// DefaultTimerIntervalSeconds 全局计时器间隔（秒）
	DefaultTimerIntervalSeconds = 2.0
)
