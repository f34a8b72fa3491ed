// verify_grid 在终端中打印网格分类结果，并可模拟计时器
//
// 用法:
//
//	go run ./cmd/verify_grid
//	go run ./cmd/verify_grid -width 7 -height 5
//	go run ./cmd/verify_grid -simulate 10s -fps 60
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/decker502/terrarium/pkg/components"
	"github.com/decker502/terrarium/pkg/config"
	"github.com/decker502/terrarium/pkg/ecs"
	"github.com/decker502/terrarium/pkg/entities"
	"github.com/decker502/terrarium/pkg/systems"
	"github.com/decker502/terrarium/pkg/utils"
)

var (
	configPath = flag.String("config", config.DefaultConfigPath, "场景配置文件路径")
	width      = flag.Int("width", 0, "覆盖网格宽度（奇数）")
	height     = flag.Int("height", 0, "覆盖网格高度（奇数）")
	simulate   = flag.Duration("simulate", 0, "模拟计时器运行的时长，如 10s")
	fps        = flag.Int("fps", 60, "模拟帧率")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadTerrariumConfig(*configPath)
	if err != nil {
		fmt.Printf("使用默认配置: %v\n", err)
		cfg = config.DefaultTerrariumConfig()
	}
	if *width > 0 {
		cfg.Grid.Width = *width
	}
	if *height > 0 {
		cfg.Grid.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "配置无效: %v\n", err)
		os.Exit(1)
	}

	printGrid(cfg)

	if *simulate > 0 {
		simulateTimer(cfg, *simulate, *fps)
	}
}

// printGrid 自上而下打印每个格子的精灵索引
func printGrid(cfg *config.TerrariumConfig) {
	bounds := utils.BoundsFromSize(cfg.Grid.Width, cfg.Grid.Height)
	cells := utils.EnumerateCells(bounds, cfg.Sprites)

	byPos := make(map[[2]int]uint32, len(cells))
	counts := make(map[uint32]int)
	for _, c := range cells {
		byPos[[2]int{c.X, c.Y}] = c.SpriteIndex
		counts[c.SpriteIndex]++
	}

	fmt.Printf("=== 网格 %dx%d  x[%d,%d] y[%d,%d] ===\n",
		bounds.Width(), bounds.Height(), bounds.XMin, bounds.XMax, bounds.YMin, bounds.YMax)
	for y := bounds.YMax; y >= bounds.YMin; y-- {
		for x := bounds.XMin; x <= bounds.XMax; x++ {
			fmt.Printf("%3d", byPos[[2]int{x, y}])
		}
		fmt.Println()
	}

	indices := make([]uint32, 0, len(counts))
	for index := range counts {
		indices = append(indices, index)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	fmt.Printf("\n共 %d 个格子\n", len(cells))
	for _, index := range indices {
		fmt.Printf("  sprite %2d: %d\n", index, counts[index])
	}
}

// simulateTimer 以固定帧率推进时钟和计时器，通知输出到标准输出
func simulateTimer(cfg *config.TerrariumConfig, duration time.Duration, framesPerSecond int) {
	if framesPerSecond <= 0 {
		framesPerSecond = 60
	}

	em := ecs.NewEntityManager()
	entities.NewClockEntity(em)
	timerID := entities.NewIntervalTimerEntity(em, cfg.Timer)

	timeSystem := systems.NewTimeSystem(em)
	timerSystem := systems.NewIntervalTimerSystem(em, log.New(os.Stdout, "  ", 0))

	fmt.Printf("\n=== 模拟 %v @ %d fps ===\n", duration, framesPerSecond)
	frames := int(duration.Seconds() * float64(framesPerSecond))
	dt := 1.0 / float64(framesPerSecond)
	for i := 0; i < frames; i++ {
		timeSystem.Update(dt)
		timerSystem.Update()
	}

	timer, ok := ecs.GetComponent[*components.IntervalTimerComponent](em, timerID)
	if !ok {
		return
	}
	fmt.Printf("计时器 %q 共触发 %d 次，当前累计 %v\n", timer.Name, timer.TimesFinished, timer.Elapsed)
}
