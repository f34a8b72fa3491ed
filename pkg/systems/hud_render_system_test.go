package systems

import (
	"strings"
	"testing"
	"time"

	"github.com/decker502/terrarium/pkg/components"
	"github.com/decker502/terrarium/pkg/ecs"
)

func TestHUDLines(t *testing.T) {
	em := ecs.NewEntityManager()

	if lines := HUDLines(em, 60); len(lines) != 0 {
		t.Errorf("Expected no lines for an empty scene, got %v", lines)
	}

	em.AddComponent(em.CreateEntity(), &components.TimeComponent{
		Elapsed: 4*time.Second + 123456*time.Microsecond,
		Frame:   247,
	})
	timer := components.NewRepeatingTimer("global", 2*time.Second)
	timer.Elapsed = 123 * time.Millisecond
	timer.TimesFinished = 2
	em.AddComponent(em.CreateEntity(), timer)

	lines := HUDLines(em, 59.94)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "frame 247  elapsed 4.123s  tps 59.9" {
		t.Errorf("Unexpected clock line %q", lines[0])
	}
	if lines[1] != "timer global  123ms/2s  fired 2" {
		t.Errorf("Unexpected timer line %q", lines[1])
	}

	timer.Paused = true
	if lines := HUDLines(em, 60); !strings.HasSuffix(lines[1], "(paused)") {
		t.Errorf("Expected paused marker, got %q", lines[1])
	}
}
