package systems

import (
	"log"

	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/ecs"
	"github.com/decker502/crossroad/pkg/entities"
)

// TileSpawnSystem 路块车辆生成系统
//
// 每 tick 扫描所有路块，只推进会生成车辆的路块（RoadTypeTraffic）的计时器；
// 计时器到时即在该路块创建恰好一辆车。即使一个 tick 跨越多个周期也只生成一辆。
// 不修改路块的位置与类别。
type TileSpawnSystem struct {
	entityManager *ecs.EntityManager
	carConfig     config.CarConfig
	roadLength    float64
	lastSpawned   int
	totalSpawned  int
}

// NewTileSpawnSystem 创建车辆生成系统
//
// 参数:
//   - em: EntityManager 实例
//   - carCfg: 车辆配置
//   - roadLength: 路段长度，车辆生成在路块 X ± roadLength/2
func NewTileSpawnSystem(em *ecs.EntityManager, carCfg config.CarConfig, roadLength float64) *TileSpawnSystem {
	log.Printf("[TileSpawnSystem] Initialized with carVelocity=%.1f lifetime=%.1fs roadLength=%.1f",
		carCfg.Velocity, carCfg.Lifetime, roadLength)
	return &TileSpawnSystem{
		entityManager: em,
		carConfig:     carCfg,
		roadLength:    roadLength,
	}
}

// Update 推进路块计时器并生成车辆
func (s *TileSpawnSystem) Update(deltaTime float64) {
	s.lastSpawned = 0

	tiles := ecs.GetEntitiesWith2[
		*components.RoadTileComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range tiles {
		tile, ok := ecs.GetComponent[*components.RoadTileComponent](s.entityManager, id)
		if !ok || !tile.Type.SpawnsCars() {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		tile.SpawnTimer.Tick(deltaTime)
		if !tile.SpawnTimer.JustFinished() {
			continue
		}

		carID, err := entities.NewCarEntity(s.entityManager, tile, pos, &s.carConfig, s.roadLength)
		if err != nil {
			// 配置已在启动时验证，这里只记录
			log.Printf("[TileSpawnSystem] WARNING: failed to spawn car on tile %d: %v", tile.Index, err)
			continue
		}
		s.lastSpawned++
		s.totalSpawned++
		log.Printf("[TileSpawnSystem] Spawned car %d on tile %d (leftOriented=%v)", carID, tile.Index, tile.LeftOriented)
	}
}

// LastSpawned 上一个 tick 生成的车辆数
func (s *TileSpawnSystem) LastSpawned() int {
	return s.lastSpawned
}

// TotalSpawned 累计生成的车辆数
func (s *TileSpawnSystem) TotalSpawned() int {
	return s.totalSpawned
}
