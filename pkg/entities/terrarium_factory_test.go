package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/decker502/terrarium/pkg/components"
	"github.com/decker502/terrarium/pkg/config"
	"github.com/decker502/terrarium/pkg/ecs"
	"github.com/decker502/terrarium/pkg/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockResourceLoader 内存资源加载器，避免文件 I/O
type mockResourceLoader struct {
	loaded []string
	err    error
}

func (m *mockResourceLoader) LoadImage(path string) (*ebiten.Image, error) {
	m.loaded = append(m.loaded, path)
	if m.err != nil {
		return nil, m.err
	}
	return ebiten.NewImage(96, 112), nil
}

func TestNewTerrariumTileMapEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	rm := &mockResourceLoader{}
	cfg := config.DefaultTerrariumConfig()

	id, err := NewTerrariumTileMapEntity(em, rm, cfg)
	if err != nil {
		t.Fatalf("NewTerrariumTileMapEntity failed: %v", err)
	}

	if len(rm.loaded) != 1 || rm.loaded[0] != "assets/Fields.png" {
		t.Errorf("Expected atlas texture to be loaded once, got %v", rm.loaded)
	}

	tm, ok := ecs.GetComponent[*components.TileMapComponent](em, id)
	if !ok {
		t.Fatal("TileMapComponent missing")
	}
	if tm.Map.Len() != 31*31 {
		t.Errorf("Expected %d tiles, got %d", 31*31, tm.Map.Len())
	}
	if tm.Layout.Len() != 42 {
		t.Errorf("Expected 42 atlas cells, got %d", tm.Layout.Len())
	}

	checks := []struct {
		x, y int
		want uint32
	}{
		{-15, 15, 18},
		{0, 0, 25},
		{0, 15, 19},
		{15, -15, 32},
	}
	for _, c := range checks {
		tile, ok := tm.Map.GetTile(tilemap.TilePosition{X: c.x, Y: c.y})
		if !ok {
			t.Errorf("Tile (%d, %d) missing", c.x, c.y)
			continue
		}
		if tile.SpriteIndex != c.want {
			t.Errorf("Tile (%d, %d) sprite = %d, want %d", c.x, c.y, tile.SpriteIndex, c.want)
		}
	}

	transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok || transform.Scale != 2.0 {
		t.Errorf("Expected transform with scale 2.0, got %+v", transform)
	}
}

func TestNewTerrariumTileMapEntityErrors(t *testing.T) {
	cfg := config.DefaultTerrariumConfig()

	if _, err := NewTerrariumTileMapEntity(nil, &mockResourceLoader{}, cfg); err == nil {
		t.Error("Expected error for nil entity manager")
	}
	if _, err := NewTerrariumTileMapEntity(ecs.NewEntityManager(), nil, cfg); err == nil {
		t.Error("Expected error for nil resource loader")
	}
	if _, err := NewTerrariumTileMapEntity(ecs.NewEntityManager(), &mockResourceLoader{}, nil); err == nil {
		t.Error("Expected error for nil config")
	}

	loadErr := errors.New("file not found")
	em := ecs.NewEntityManager()
	_, err := NewTerrariumTileMapEntity(em, &mockResourceLoader{err: loadErr}, cfg)
	if !errors.Is(err, loadErr) {
		t.Errorf("Expected wrapped load error, got %v", err)
	}
	if em.EntityCount() != 0 {
		t.Error("No entity should be created when the texture fails to load")
	}
}

func TestNewIntervalTimerEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	repeating := NewIntervalTimerEntity(em, config.DefaultTerrariumConfig().Timer)
	timer, ok := ecs.GetComponent[*components.IntervalTimerComponent](em, repeating)
	if !ok {
		t.Fatal("IntervalTimerComponent missing")
	}
	if timer.Name != "global" || timer.Duration != 2*time.Second || timer.Mode != components.TimerModeRepeating {
		t.Errorf("Unexpected timer %+v", timer)
	}

	no := false
	once := NewIntervalTimerEntity(em, config.TimerConfig{Name: "once", IntervalSeconds: 1, Repeating: &no})
	onceTimer, _ := ecs.GetComponent[*components.IntervalTimerComponent](em, once)
	if onceTimer.Mode != components.TimerModeOnce {
		t.Errorf("Expected once mode, got %s", onceTimer.Mode)
	}
}

func TestNewCameraAndClockEntities(t *testing.T) {
	em := ecs.NewEntityManager()

	cam := NewCameraEntity(em)
	if c, ok := ecs.GetComponent[*components.CameraComponent](em, cam); !ok || c.Zoom != 1.0 {
		t.Errorf("Unexpected camera %+v", c)
	}

	clock := NewClockEntity(em)
	if !ecs.HasComponent[*components.TimeComponent](em, clock) {
		t.Error("Clock entity should have a TimeComponent")
	}
}
