package systems

import (
	"log"
	"math"

	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/ecs"
)

// HopSystem 玩家跳跃系统
//
// 三种策略（config.HopMode）：
//   - held: 任一方向键按住且着地时，每 tick 向上平移 Nudge。按住不放会持续上漂
//   - press: 只在方向键刚按下的 tick 平移一次
//   - impulse: 刚按下时写入向上冲量 m*sqrt(2*g*h)，由物理引擎施加
//
// 多个方向键同时按下不会叠加，每 tick 最多触发一次。
// 必须在 GroundContactSystem 之后运行，读取的是本 tick 的着地快照。
type HopSystem struct {
	entityManager *ecs.EntityManager
	input         KeyboardInput
	playerID      ecs.EntityID
	mode          config.HopMode
	nudge         float64
	height        float64
	gravity       float64
	hops          int
}

// NewHopSystem 创建跳跃系统
//
// 参数:
//   - em: EntityManager 实例
//   - input: 输入协作者
//   - playerID: 玩家实体ID
//   - cfg: 跳跃配置
//   - gravity: 重力加速度（世界单位/秒²，负值向下），impulse 模式使用其绝对值
func NewHopSystem(em *ecs.EntityManager, input KeyboardInput, playerID ecs.EntityID, cfg config.HopConfig, gravity float64) *HopSystem {
	log.Printf("[HopSystem] Initialized with mode=%s nudge=%.2f height=%.2f", cfg.Mode, cfg.Nudge, cfg.Height)
	return &HopSystem{
		entityManager: em,
		input:         input,
		playerID:      playerID,
		mode:          cfg.Mode,
		nudge:         cfg.Nudge,
		height:        cfg.Height,
		gravity:       gravity,
	}
}

// Update 根据输入与着地状态执行跳跃
func (s *HopSystem) Update(deltaTime float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok || !player.IsOnGround {
		return
	}

	switch s.mode {
	case config.HopHeld:
		if anyKeyPressed(s.input) {
			s.nudgeUp()
		}

	case config.HopPress:
		if anyKeyJustPressed(s.input) {
			s.nudgeUp()
		}

	case config.HopImpulse:
		if anyKeyJustPressed(s.input) {
			s.applyImpulse()
		}
	}
}

// HopCount 累计触发次数（held 模式下每个按住的 tick 都计一次）
func (s *HopSystem) HopCount() int {
	return s.hops
}

func (s *HopSystem) nudgeUp() {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	pos.Y += s.nudge
	s.hops++
}

// applyImpulse 写入 J = m * sqrt(2gh)，使刚体以足够到达高度 h 的初速度起跳
func (s *HopSystem) applyImpulse() {
	body, ok := ecs.GetComponent[*components.RigidBodyComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	impulse, ok := ecs.GetComponent[*components.ImpulseComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}

	g := math.Abs(s.gravity * body.GravityScale)
	impulse.Y += body.Mass * math.Sqrt(2*g*s.height)
	s.hops++
	log.Printf("[HopSystem] Impulse hop: J=%.2f", impulse.Y)
}
