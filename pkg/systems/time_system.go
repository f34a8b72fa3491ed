package systems

import (
	"math"
	"time"

	"github.com/decker502/terrarium/pkg/components"
	"github.com/decker502/terrarium/pkg/ecs"
)

// TimeSystem 推进全局时钟
// 必须在每帧所有依赖时间的系统之前执行
type TimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewTimeSystem 创建时钟系统
func NewTimeSystem(em *ecs.EntityManager) *TimeSystem {
	return &TimeSystem{
		entityManager: em,
	}
}

// Update 用本帧间隔更新所有时钟组件
//
// 累计时间先以秒累加再取整到纳秒，Delta 取相邻两帧累计时间之差。
// 1/60 秒这类无法精确表示的间隔不会逐帧丢失精度，
// 120 帧之后 Elapsed 恰好是 2s。
//
// 参数:
//   - deltaTime: 本帧间隔（秒），负值按 0 处理
func (s *TimeSystem) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}

	for _, id := range ecs.GetEntitiesWith1[*components.TimeComponent](s.entityManager) {
		clock, ok := ecs.GetComponent[*components.TimeComponent](s.entityManager, id)
		if !ok {
			continue
		}
		clock.ElapsedSeconds += deltaTime
		elapsed := SecondsToDuration(clock.ElapsedSeconds)
		clock.Delta = elapsed - clock.Elapsed
		clock.Elapsed = elapsed
		clock.Frame++
	}
}

// Clock 返回第一个时钟组件，不存在时返回 nil
func Clock(em *ecs.EntityManager) *components.TimeComponent {
	ids := ecs.GetEntitiesWith1[*components.TimeComponent](em)
	if len(ids) == 0 {
		return nil
	}
	clock, _ := ecs.GetComponent[*components.TimeComponent](em, ids[0])
	return clock
}

// SecondsToDuration 把秒数四舍五入到纳秒，负值返回 0
func SecondsToDuration(seconds float64) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
