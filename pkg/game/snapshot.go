package game

import (
	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/ecs"
	"github.com/decker502/crossroad/pkg/types"
)

// Snapshot 某一 tick 结束时的只读视图，供渲染层使用
// 所有字段都是值拷贝，持有 Snapshot 不会影响模拟
type Snapshot struct {
	Tick    int
	Elapsed float64
	Score   int

	Player PlayerView
	Camera types.Vec3
	Tiles  []TileView
	Cars   []CarView
}

// PlayerView 玩家状态
type PlayerView struct {
	Position         types.Vec3
	HalfExtents      types.Vec3
	Lane             int
	OnGround         bool
	VerticalVelocity float64
}

// TileView 路块状态
type TileView struct {
	Index        int
	Type         types.RoadType
	Position     types.Vec3
	HalfExtents  types.Vec3
	LeftOriented bool
	NextSpawnIn  float64 // 距下一次生成的秒数（非车道路块也照常给出）
}

// CarView 车辆状态
type CarView struct {
	ID           ecs.EntityID
	Position     types.Vec3
	Size         types.Vec3
	LeftOriented bool
	SourceTile   int
	TimeToLive   float64
}

// Snapshot 构建当前状态的快照
func (s *Simulation) Snapshot() Snapshot {
	em := s.world.EntityManager
	cfg := s.world.Config

	snap := Snapshot{
		Tick:    s.ticks,
		Elapsed: s.elapsed,
		Score:   s.Score(),
		Tiles:   make([]TileView, 0, len(s.world.Tiles)),
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, s.world.PlayerID); ok {
		snap.Player.Position = pos.Vec()
	}
	if body, ok := ecs.GetComponent[*components.RigidBodyComponent](em, s.world.PlayerID); ok {
		snap.Player.HalfExtents = body.HalfExtents
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](em, s.world.PlayerID); ok {
		snap.Player.Lane = player.CurrentLane
		snap.Player.OnGround = player.IsOnGround
		snap.Player.VerticalVelocity = player.VerticalVelocity
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, s.world.CameraID); ok {
		snap.Camera = pos.Vec()
	}

	for _, id := range s.world.Tiles {
		tile, ok := ecs.GetComponent[*components.RoadTileComponent](em, id)
		if !ok {
			continue
		}
		view := TileView{
			Index:        tile.Index,
			Type:         tile.Type,
			LeftOriented: tile.LeftOriented,
			NextSpawnIn:  tile.SpawnTimer.Remaining(),
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			view.Position = pos.Vec()
		}
		if col, ok := ecs.GetComponent[*components.ColliderComponent](em, id); ok {
			view.HalfExtents = col.HalfExtents
		}
		snap.Tiles = append(snap.Tiles, view)
	}

	carSize := cfg.Car.Size.Vec()
	for _, id := range ecs.GetEntitiesWith2[*components.CarComponent, *components.PositionComponent](em) {
		car, _ := ecs.GetComponent[*components.CarComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Cars = append(snap.Cars, CarView{
			ID:           id,
			Position:     pos.Vec(),
			Size:         carSize,
			LeftOriented: car.LeftOriented,
			SourceTile:   car.SourceTile,
			TimeToLive:   car.DespawnTimer.Remaining(),
		})
	}

	return snap
}
