package systems

import (
	"testing"

	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/ecs"
	"github.com/decker502/crossroad/pkg/entities"
	"github.com/decker502/crossroad/pkg/types"
)

// newTestTile 创建一个测试路块
func newTestTile(t *testing.T, em *ecs.EntityManager, index int, roadType types.RoadType, period float64, leftOriented bool) ecs.EntityID {
	t.Helper()
	cfg := config.DefaultSimConfig()
	id, err := entities.NewRoadTileEntity(em, &cfg.World, index, roadType, period, leftOriented)
	if err != nil {
		t.Fatalf("failed to create tile: %v", err)
	}
	return id
}

// newTestCar 在 index=0 的路块上直接创建一辆车
func newTestCar(t *testing.T, em *ecs.EntityManager, leftOriented bool, lifetime float64) ecs.EntityID {
	t.Helper()
	cfg := config.DefaultSimConfig()
	cfg.Car.Lifetime = lifetime
	tile := &components.RoadTileComponent{Index: 0, LeftOriented: leftOriented}
	id, err := entities.NewCarEntity(em, tile, &components.PositionComponent{Y: -2}, &cfg.Car, cfg.World.RoadLength)
	if err != nil {
		t.Fatalf("failed to create car: %v", err)
	}
	return id
}

// newTestPlayer 创建玩家与镜头
func newTestPlayer(t *testing.T, em *ecs.EntityManager) (ecs.EntityID, ecs.EntityID) {
	t.Helper()
	cfg := config.DefaultSimConfig()
	return entities.NewPlayerEntity(em, &cfg.Player), entities.NewCameraEntity(em, &cfg.Camera)
}

func countCars(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.CarComponent](em))
}

func mustPlayer(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PlayerComponent {
	t.Helper()
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatal("player component missing")
	}
	return player
}

func mustPosition(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("position component missing")
	}
	return pos
}
