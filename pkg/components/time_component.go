package components

import "time"

// TimeComponent 全局时钟组件（单例实体）
// 由 TimeSystem 每帧更新，其他系统只读
type TimeComponent struct {
	// Delta 本帧时间间隔
	Delta time.Duration

	// Elapsed 场景启动以来的累计时间
	Elapsed time.Duration

	// ElapsedSeconds 以秒累计的原始帧间隔，Elapsed 由它取整得到
	ElapsedSeconds float64

	// Frame 已执行的帧数
	Frame uint64
}
