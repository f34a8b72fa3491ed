package systems

import (
	"log"
	"time"

	"github.com/decker502/terrarium/pkg/components"
	"github.com/decker502/terrarium/pkg/ecs"
)

// TickIntervalTimer 推进计时器一帧
//
// 重复模式：累加 delta，每当累计时间达到周期就扣除一个周期并计一次触发，
// 一帧内可能触发多次。单次模式：最多触发一次，之后保持结束状态。
//
// 参数:
//   - timer: 计时器组件（就地修改）
//   - delta: 本帧间隔
//
// 返回:
//   - int: 本帧触发次数
func TickIntervalTimer(timer *components.IntervalTimerComponent, delta time.Duration) int {
	timer.JustFinished = false
	timer.TimesFinishedThisTick = 0

	if timer.Paused || delta < 0 {
		return 0
	}

	if timer.Mode == components.TimerModeOnce {
		if timer.Finished {
			return 0
		}
		timer.Elapsed += delta
		if timer.Elapsed >= timer.Duration {
			timer.Elapsed = timer.Duration
			timer.Finished = true
			timer.JustFinished = true
			timer.TimesFinishedThisTick = 1
			timer.TimesFinished++
		}
		return timer.TimesFinishedThisTick
	}

	timer.Elapsed += delta

	// 零周期的重复计时器每帧只触发一次，避免死循环
	if timer.Duration <= 0 {
		timer.Elapsed = 0
		timer.JustFinished = true
		timer.TimesFinishedThisTick = 1
		timer.TimesFinished++
		return 1
	}

	for timer.Elapsed >= timer.Duration {
		timer.Elapsed -= timer.Duration
		timer.TimesFinishedThisTick++
	}
	if timer.TimesFinishedThisTick > 0 {
		timer.JustFinished = true
		timer.TimesFinished += timer.TimesFinishedThisTick
	}
	return timer.TimesFinishedThisTick
}

// IntervalTimerSystem 每帧推进所有计时器，并在触发时输出当前累计时间
type IntervalTimerSystem struct {
	entityManager *ecs.EntityManager
	// logger 触发通知的输出目标，与调试日志分开，不受 --verbose 控制
	logger *log.Logger
}

// NewIntervalTimerSystem 创建计时器系统
// 参数:
//   - em: EntityManager 实例
//   - logger: 触发通知输出，nil 时使用标准 logger
func NewIntervalTimerSystem(em *ecs.EntityManager, logger *log.Logger) *IntervalTimerSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &IntervalTimerSystem{
		entityManager: em,
		logger:        logger,
	}
}

// Update 推进所有计时器
// 帧间隔和累计时间取自时钟组件，因此必须在 TimeSystem 之后执行
func (s *IntervalTimerSystem) Update() {
	clock := Clock(s.entityManager)
	if clock == nil {
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.IntervalTimerComponent](s.entityManager) {
		timer, ok := ecs.GetComponent[*components.IntervalTimerComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if TickIntervalTimer(timer, clock.Delta) > 0 {
			s.logger.Printf("tick! the elapsed time is now %v", clock.Elapsed)
		}
	}
}
