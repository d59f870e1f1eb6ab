package systems

import (
	"log"

	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/ecs"
)

// CarMotionSystem 车辆移动与回收系统
//
// 每 tick 对每辆车：
//  1. 推进 DespawnTimer
//  2. 到时则标记删除，本 tick 不再移动
//  3. 否则沿 X 轴移动：未左向 X -= v*dt，左向 X += v*dt
//
// v 为负，因此两侧生成的车辆都驶向路面另一侧。
// 实体在 tick 末尾由 EntityManager.RemoveMarkedEntities 统一清理。
type CarMotionSystem struct {
	entityManager *ecs.EntityManager
	lastDespawned int
	totalRemoved  int
}

// NewCarMotionSystem 创建车辆移动系统
func NewCarMotionSystem(em *ecs.EntityManager) *CarMotionSystem {
	return &CarMotionSystem{
		entityManager: em,
	}
}

// Update 移动并回收车辆
func (s *CarMotionSystem) Update(deltaTime float64) {
	s.lastDespawned = 0

	cars := ecs.GetEntitiesWith2[
		*components.CarComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range cars {
		// 已标记的车辆不再推进，避免重复回收
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		car, ok := ecs.GetComponent[*components.CarComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		car.DespawnTimer.Tick(deltaTime)
		if car.DespawnTimer.JustFinished() {
			s.entityManager.DestroyEntity(id)
			s.lastDespawned++
			s.totalRemoved++
			log.Printf("[CarMotionSystem] Despawned car %d from tile %d", id, car.SourceTile)
			continue
		}

		if car.LeftOriented {
			pos.X += car.Velocity * deltaTime
		} else {
			pos.X -= car.Velocity * deltaTime
		}
	}
}

// LastDespawned 上一个 tick 回收的车辆数
func (s *CarMotionSystem) LastDespawned() int {
	return s.lastDespawned
}

// TotalDespawned 累计回收的车辆数
func (s *CarMotionSystem) TotalDespawned() int {
	return s.totalRemoved
}
