package components

import "time"

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerModeOnce 计时结束后停止
	TimerModeOnce TimerMode = iota
	// TimerModeRepeating 计时结束后扣除一个周期继续计时
	TimerModeRepeating
)

// String 返回模式名称（日志用）
func (m TimerMode) String() string {
	switch m {
	case TimerModeOnce:
		return "once"
	case TimerModeRepeating:
		return "repeating"
	default:
		return "unknown"
	}
}

// IntervalTimerComponent 周期计时器组件
// 每帧由 IntervalTimerSystem 累加帧间隔，累计时间达到 Duration 时触发
// 注意：遵循 ECS 原则，组件仅存储数据，推进逻辑见 systems.TickIntervalTimer
type IntervalTimerComponent struct {
	// Name 计时器名称，如 "global"
	Name string

	// Duration 触发周期
	Duration time.Duration

	// Mode 单次或重复
	Mode TimerMode

	// Elapsed 当前周期内已累计的时间，始终小于 Duration（单次模式结束后等于 Duration）
	Elapsed time.Duration

	// JustFinished 本帧是否触发过
	JustFinished bool

	// TimesFinishedThisTick 本帧触发次数
	// 帧间隔超过多个周期时可能大于 1
	TimesFinishedThisTick int

	// TimesFinished 累计触发次数
	TimesFinished int

	// Finished 单次模式下计时是否已结束
	Finished bool

	// Paused 暂停时不累计时间
	Paused bool
}

// NewRepeatingTimer 创建重复计时器组件
func NewRepeatingTimer(name string, duration time.Duration) *IntervalTimerComponent {
	return &IntervalTimerComponent{
		Name:     name,
		Duration: duration,
		Mode:     TimerModeRepeating,
	}
}
