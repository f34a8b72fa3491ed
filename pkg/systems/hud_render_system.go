package systems

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/decker502/terrarium/pkg/components"
	"github.com/decker502/terrarium/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD 文字位置和颜色
const (
	hudMarginX    = 8.0
	hudMarginY    = 6.0
	hudLineHeight = 16.0
)

var (
	hudTextColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudShadowColor = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// HUDRenderSystem 在屏幕左上角绘制帧数、累计时间和计时器状态
// 仅用于调试（--hud 参数开启）
type HUDRenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
}

// NewHUDRenderSystem 创建 HUD 渲染系统，使用 7x13 位图字体
func NewHUDRenderSystem(em *ecs.EntityManager) *HUDRenderSystem {
	return &HUDRenderSystem{
		entityManager: em,
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 绘制 HUD
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	lines := HUDLines(s.entityManager, ebiten.ActualTPS())

	for i, line := range lines {
		y := hudMarginY + float64(i)*hudLineHeight

		shadowOp := &text.DrawOptions{}
		shadowOp.GeoM.Translate(hudMarginX+1, y+1)
		shadowOp.ColorScale.ScaleWithColor(hudShadowColor)
		text.Draw(screen, line, s.face, shadowOp)

		op := &text.DrawOptions{}
		op.GeoM.Translate(hudMarginX, y)
		op.ColorScale.ScaleWithColor(hudTextColor)
		text.Draw(screen, line, s.face, op)
	}
}

// HUDLines 生成 HUD 文本行
// 第一行为时钟信息，之后每个计时器一行
func HUDLines(em *ecs.EntityManager, tps float64) []string {
	lines := make([]string, 0, 4)

	if clock := Clock(em); clock != nil {
		lines = append(lines, fmt.Sprintf("frame %d  elapsed %s  tps %.1f",
			clock.Frame, clock.Elapsed.Truncate(time.Millisecond), tps))
	}

	for _, id := range ecs.GetEntitiesWith1[*components.IntervalTimerComponent](em) {
		timer, ok := ecs.GetComponent[*components.IntervalTimerComponent](em, id)
		if !ok {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "timer %s  %s/%s  fired %d",
			timer.Name, timer.Elapsed.Truncate(time.Millisecond), timer.Duration, timer.TimesFinished)
		if timer.Paused {
			b.WriteString("  (paused)")
		}
		lines = append(lines, b.String())
	}

	return lines
}
