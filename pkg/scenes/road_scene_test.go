package scenes

import (
	"testing"

	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/systems"
	"github.com/decker502/crossroad/pkg/types"
)

func TestTileColorDistinct(t *testing.T) {
	seen := map[[4]uint8]types.RoadType{}
	for rt := types.RoadType(0); rt < types.RoadTypePaletteSize; rt++ {
		c := TileColor(rt)
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if other, dup := seen[key]; dup {
			t.Errorf("%v and %v share a color", rt, other)
		}
		seen[key] = rt
	}
}

func TestRoadSceneUpdate(t *testing.T) {
	input := systems.NewScriptedInput()
	scene, err := NewRoadScene(config.DefaultSimConfig(), 11, input, nil, nil)
	if err != nil {
		t.Fatalf("NewRoadScene: %v", err)
	}
	if scene.Seed() != 11 {
		t.Errorf("expected seed 11, got %d", scene.Seed())
	}

	input.Tap(types.KeyUp)
	scene.Update(1.0 / 60.0)
	input.EndFrame()

	if scene.Simulation().Score() != 1 {
		t.Errorf("expected score 1, got %d", scene.Simulation().Score())
	}
	if scene.lastScore != 1 {
		t.Errorf("scene should track the score for sound cues, got %d", scene.lastScore)
	}

	// 非法步长被拒绝，不推进
	scene.Update(-1)
	if scene.Simulation().Ticks() != 1 {
		t.Errorf("negative delta must not advance, ticks=%d", scene.Simulation().Ticks())
	}
}

func TestNewRoadSceneRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultSimConfig()
	cfg.World.SpawnInterval = config.Range{Min: 5, Max: 5}

	if _, err := NewRoadScene(cfg, 1, systems.NewScriptedInput(), nil, nil); err == nil {
		t.Error("expected error for degenerate spawn interval")
	}
}
