package entities

import (
	"fmt"

	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/ecs"
	"github.com/decker502/crossroad/pkg/types"
)

// NewRoadTileEntity 创建一个路块实体
//
// 随机取值（类别、生成间隔、朝向）由调用方决定，工厂只负责组装组件，便于测试复现。
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 世界配置（间距、高度、路块尺寸）
//   - index: 纵向序号，路块位于 Z = TileSpacing * index
//   - roadType: 路块类别
//   - spawnInterval: 生成计时器周期（秒），必须 > 0
//   - leftOriented: 车辆生成侧与行驶方向
//
// 返回:
//   - ecs.EntityID: 路块实体ID
//   - error: 周期非法时返回错误（此时不会创建实体）
func NewRoadTileEntity(em *ecs.EntityManager, cfg *config.WorldConfig, index int, roadType types.RoadType, spawnInterval float64, leftOriented bool) (ecs.EntityID, error) {
	spawnTimer, err := components.NewTimer(spawnInterval, components.TimerRepeating)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("road tile %d: spawn timer: %w", index, err)
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: 0,
		Y: cfg.TileY,
		Z: cfg.TileSpacing * float64(index),
	})

	// 静态碰撞盒（默认 25 x 1 x 3 的长方体）
	ecs.AddComponent(em, id, &components.ColliderComponent{
		HalfExtents: types.Vec3{cfg.RoadLength, cfg.TileThickness, cfg.TileDepth}.Mul(0.5),
	})

	ecs.AddComponent(em, id, &components.RoadTileComponent{
		Type:         roadType,
		Index:        index,
		LeftOriented: leftOriented,
		SpawnTimer:   spawnTimer,
	})

	return id, nil
}
