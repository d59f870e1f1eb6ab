package entities

import (
	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/ecs"
)

// NewCameraEntity 创建镜头实体
// 调用方负责保证整个世界只创建一次
func NewCameraEntity(em *ecs.EntityManager, cfg *config.CameraConfig) ecs.EntityID {
	id := em.CreateEntity()

	start := cfg.Start.Vec()
	ecs.AddComponent(em, id, &components.PositionComponent{X: start.X(), Y: start.Y(), Z: start.Z()})
	ecs.AddComponent(em, id, &components.CameraComponent{
		LookAt: cfg.LookAt.Vec(),
	})

	return id
}
