package entities

import (
	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体（动态刚体）
//
// 初始状态：零速度、零冲量、未着地、车道 0。
// 调用方负责保证整个世界只创建一次。
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.PlayerConfig) ecs.EntityID {
	id := em.CreateEntity()

	start := cfg.Start.Vec()
	ecs.AddComponent(em, id, &components.PositionComponent{X: start.X(), Y: start.Y(), Z: start.Z()})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.ImpulseComponent{})
	ecs.AddComponent(em, id, &components.RigidBodyComponent{
		Mass:         cfg.Mass,
		GravityScale: cfg.GravityScale,
		Restitution:  cfg.Restitution,
		HalfExtents:  cfg.HalfExtents.Vec(),
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		IsOnGround:  false,
		CurrentLane: 0,
	})
	ecs.AddComponent(em, id, &components.ScoreComponent{Value: 0})

	return id
}
