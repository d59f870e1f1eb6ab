package systems

import (
	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/ecs"
)

// ScoreSystem 分数系统
// 每 tick 无条件执行 score := CurrentLane，供表现层读取
type ScoreSystem struct {
	entityManager *ecs.EntityManager
	playerID      ecs.EntityID
}

// NewScoreSystem 创建分数系统
func NewScoreSystem(em *ecs.EntityManager, playerID ecs.EntityID) *ScoreSystem {
	return &ScoreSystem{
		entityManager: em,
		playerID:      playerID,
	}
}

// Update 刷新分数
func (s *ScoreSystem) Update(deltaTime float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	score, ok := ecs.GetComponent[*components.ScoreComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	score.Value = player.CurrentLane
}

// Score 当前分数
func (s *ScoreSystem) Score() int {
	score, ok := ecs.GetComponent[*components.ScoreComponent](s.entityManager, s.playerID)
	if !ok {
		return 0
	}
	return score.Value
}
