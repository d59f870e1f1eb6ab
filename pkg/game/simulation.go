package game

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/systems"
)

// ErrNegativeDelta Update 收到负数、NaN 或无穷大的时间步长
var ErrNegativeDelta = errors.New("delta time must be a finite value >= 0")

// Simulation 模拟核心的 tick 编排
//
// 每次 Update 按固定顺序执行：
//  1. GroundContactSystem 读取一次物理反馈
//  2. HopSystem、LaneStepSystem 处理输入
//  3. CarMotionSystem 推进与回收已有车辆
//  4. TileSpawnSystem 推进路块计时器并生成车辆（新车从下一 tick 开始计时与移动）
//  5. 清除标记删除的实体
//  6. ScoreSystem 刷新分数
//
// 物理引擎由宿主在 Update 之后单独推进。Simulation 不是并发安全的。
type Simulation struct {
	world *World

	groundSystem *systems.GroundContactSystem
	hopSystem    *systems.HopSystem
	laneSystem   *systems.LaneStepSystem
	spawnSystem  *systems.TileSpawnSystem
	motionSystem *systems.CarMotionSystem
	scoreSystem  *systems.ScoreSystem

	elapsed float64
	ticks   int
	removed int // 累计清除的实体数
}

// NewSimulation 创建世界并装配全部系统
//
// 参数:
//   - cfg: 模拟配置
//   - rng: 世界初始化使用的随机源
//   - input: 输入协作者（ebiten、tcell 或脚本）
func NewSimulation(cfg *config.SimConfig, rng RandomSource, input systems.KeyboardInput) (*Simulation, error) {
	world, err := NewWorld(cfg, rng)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, fmt.Errorf("simulation requires an input source")
	}

	em := world.EntityManager
	return &Simulation{
		world:        world,
		groundSystem: systems.NewGroundContactSystem(em, world.PlayerID, cfg.Player.GroundEpsilon),
		hopSystem:    systems.NewHopSystem(em, input, world.PlayerID, cfg.Hop, cfg.Physics.Gravity),
		laneSystem:   systems.NewLaneStepSystem(em, input, world.PlayerID, world.CameraID, cfg.Player.LaneStep),
		spawnSystem:  systems.NewTileSpawnSystem(em, cfg.Car, cfg.World.RoadLength),
		motionSystem: systems.NewCarMotionSystem(em),
		scoreSystem:  systems.NewScoreSystem(em, world.PlayerID),
	}, nil
}

// Update 推进一个 tick
//
// dt 为距上一 tick 的秒数。dt == 0 是合法的暂停帧（计时器不前进，但输入仍会处理）。
// dt 非法时返回 ErrNegativeDelta，不修改任何状态。
func (s *Simulation) Update(dt float64) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: got %v", ErrNegativeDelta, dt)
	}

	s.groundSystem.Update(dt)
	s.hopSystem.Update(dt)
	s.laneSystem.Update(dt)
	s.motionSystem.Update(dt)
	s.spawnSystem.Update(dt)
	s.removed += s.world.EntityManager.RemoveMarkedEntities()
	s.scoreSystem.Update(dt)

	s.elapsed += dt
	s.ticks++
	return nil
}

// World 返回模拟世界（宿主用它接入物理引擎与渲染）
func (s *Simulation) World() *World {
	return s.world
}

// Score 当前分数（等于玩家当前车道）
func (s *Simulation) Score() int {
	return s.scoreSystem.Score()
}

// Elapsed 累计模拟时间（秒）
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

// Ticks 已执行的 tick 数
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Stats 诊断计数
type Stats struct {
	Ticks          int
	LastSpawned    int
	LastDespawned  int
	TotalSpawned   int
	TotalDespawned int
	Removed        int
	Hops           int
	LiveEntities   int
}

// Stats 返回当前诊断计数
func (s *Simulation) Stats() Stats {
	return Stats{
		Ticks:          s.ticks,
		LastSpawned:    s.spawnSystem.LastSpawned(),
		LastDespawned:  s.motionSystem.LastDespawned(),
		TotalSpawned:   s.spawnSystem.TotalSpawned(),
		TotalDespawned: s.motionSystem.TotalDespawned(),
		Removed:        s.removed,
		Hops:           s.hopSystem.HopCount(),
		LiveEntities:   s.world.EntityManager.EntityCount(),
	}
}

// LogStats 输出一行诊断信息
func (s *Simulation) LogStats() {
	st := s.Stats()
	log.Printf("[Simulation] tick=%d t=%.2fs score=%d spawned=%d despawned=%d live=%d",
		st.Ticks, s.elapsed, s.Score(), st.TotalSpawned, st.TotalDespawned, st.LiveEntities)
}
