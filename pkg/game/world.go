package game

import (
	"fmt"
	"log"

	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/ecs"
	"github.com/decker502/crossroad/pkg/entities"
	"github.com/decker502/crossroad/pkg/types"
)

// World 一局模拟的全部实体
//
// 玩家与镜头是唯一的，作为具名槽位保存，由 NewWorld 创建且只创建一次。
// 路块在初始化后不再移动也不会被销毁，Tiles 按 Index 排列。
type World struct {
	EntityManager *ecs.EntityManager
	Config        *config.SimConfig

	PlayerID ecs.EntityID
	CameraID ecs.EntityID
	Tiles    []ecs.EntityID
}

// NewWorld 按配置创建世界
//
// 每个路块依次从 rng 抽取：类别 Intn(tileTypeCount)、生成间隔 [min, max) 上的均匀值、
// 朝向 Intn(2)。抽取顺序固定，相同种子得到相同的路面。
//
// 参数:
//   - cfg: 模拟配置，先经过 Validate
//   - rng: 随机源
//
// 返回:
//   - *World: 创建好的世界
//   - error: 配置无效或实体创建失败
func NewWorld(cfg *config.SimConfig, rng RandomSource) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sim config: %w", err)
	}

	em := ecs.NewEntityManager()
	w := &World{
		EntityManager: em,
		Config:        cfg,
		Tiles:         make([]ecs.EntityID, 0, cfg.World.NumTiles),
	}

	interval := cfg.World.SpawnInterval
	traffic := 0
	for i := 0; i < cfg.World.NumTiles; i++ {
		roadType := types.RoadType(rng.Intn(cfg.World.TileTypeCount))
		period := interval.Min + rng.Float64()*(interval.Max-interval.Min)
		leftOriented := rng.Intn(2) == 1

		id, err := entities.NewRoadTileEntity(em, &cfg.World, i, roadType, period, leftOriented)
		if err != nil {
			return nil, fmt.Errorf("failed to create road tile %d: %w", i, err)
		}
		w.Tiles = append(w.Tiles, id)
		if roadType.SpawnsCars() {
			traffic++
		}
	}

	w.PlayerID = entities.NewPlayerEntity(em, &cfg.Player)
	w.CameraID = entities.NewCameraEntity(em, &cfg.Camera)

	log.Printf("[World] Created %d tiles (%d traffic), player=%d camera=%d",
		len(w.Tiles), traffic, w.PlayerID, w.CameraID)
	return w, nil
}
