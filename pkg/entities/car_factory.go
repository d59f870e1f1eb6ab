package entities

import (
	"fmt"

	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/ecs"
)

// NewCarEntity 在路块一侧创建车辆实体
//
// 生成位置：路块 X ∓ roadLength/2（LeftOriented 为 false 取减，为 true 取加），Z 与路块相同。
// 朝向与路块序号按值拷贝，车辆之后的生命周期与路块无关。
//
// 参数:
//   - em: EntityManager 实例
//   - tile: 生成车辆的路块组件
//   - tilePos: 路块位置
//   - carCfg: 车辆配置（速度、寿命、生成高度）
//   - roadLength: 路段长度
//
// 返回:
//   - ecs.EntityID: 车辆实体ID
//   - error: 寿命非法时返回错误（此时不会创建实体）
func NewCarEntity(em *ecs.EntityManager, tile *components.RoadTileComponent, tilePos *components.PositionComponent, carCfg *config.CarConfig, roadLength float64) (ecs.EntityID, error) {
	despawnTimer, err := components.NewTimer(carCfg.Lifetime, components.TimerOnce)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("car from tile %d: despawn timer: %w", tile.Index, err)
	}

	x := tilePos.X - roadLength/2
	if tile.LeftOriented {
		x = tilePos.X + roadLength/2
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: x,
		Y: carCfg.SpawnY,
		Z: tilePos.Z,
	})

	ecs.AddComponent(em, id, &components.CarComponent{
		Velocity:     carCfg.Velocity,
		LeftOriented: tile.LeftOriented,
		DespawnTimer: despawnTimer,
		SourceTile:   tile.Index,
	})

	return id, nil
}
