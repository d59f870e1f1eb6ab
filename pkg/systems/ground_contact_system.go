package systems

import (
	"log"

	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/ecs"
)

// DefaultGroundEpsilon 默认着地阈值：竖直速度不超过该值视为着地，吸收静止时的抖动
const DefaultGroundEpsilon = 0.1

// GroundContactSystem 着地检测系统
//
// 每个 tick 开始时读取一次物理引擎报告的竖直速度，写入 PlayerComponent.VerticalVelocity，
// 并重新计算 IsOnGround := vy <= epsilon。没有阈值之外的迟滞。
type GroundContactSystem struct {
	entityManager *ecs.EntityManager
	playerID      ecs.EntityID
	epsilon       float64
}

// NewGroundContactSystem 创建着地检测系统
func NewGroundContactSystem(em *ecs.EntityManager, playerID ecs.EntityID, epsilon float64) *GroundContactSystem {
	log.Printf("[GroundContactSystem] Initialized with epsilon=%.3f", epsilon)
	return &GroundContactSystem{
		entityManager: em,
		playerID:      playerID,
		epsilon:       epsilon,
	}
}

// Update 刷新玩家着地状态
func (s *GroundContactSystem) Update(deltaTime float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}

	// 本 tick 唯一一次读取物理状态
	player.VerticalVelocity = vel.Y
	player.IsOnGround = player.VerticalVelocity <= s.epsilon
}
