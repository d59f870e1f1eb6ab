package systems

import (
	"log"

	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/ecs"
	"github.com/decker502/crossroad/pkg/types"
)

// DefaultLaneStep 默认换道步长（与路块间距一致）
const DefaultLaneStep = 3.0

// LaneStepSystem 玩家换道系统
//
// 只响应刚按下的边沿，每 tick 最多处理一个方向，优先级 上 > 下 > 左 > 右：
//   - 上: Z += step，CurrentLane + 1
//   - 下: Z -= step，CurrentLane - 1
//   - 左: X += step（不影响分数）
//   - 右: X -= step（不影响分数）
//
// 镜头在同一 tick 施加完全相同的位移。
type LaneStepSystem struct {
	entityManager *ecs.EntityManager
	input         KeyboardInput
	playerID      ecs.EntityID
	cameraID      ecs.EntityID
	step          float64
}

// NewLaneStepSystem 创建换道系统
func NewLaneStepSystem(em *ecs.EntityManager, input KeyboardInput, playerID, cameraID ecs.EntityID, step float64) *LaneStepSystem {
	log.Printf("[LaneStepSystem] Initialized with step=%.2f", step)
	return &LaneStepSystem{
		entityManager: em,
		input:         input,
		playerID:      playerID,
		cameraID:      cameraID,
		step:          step,
	}
}

// Update 处理换道输入
func (s *LaneStepSystem) Update(deltaTime float64) {
	var delta types.Vec3
	laneDelta := 0

	switch {
	case s.input.IsKeyJustPressed(types.KeyUp):
		delta = types.Vec3{0, 0, s.step}
		laneDelta = 1
	case s.input.IsKeyJustPressed(types.KeyDown):
		delta = types.Vec3{0, 0, -s.step}
		laneDelta = -1
	case s.input.IsKeyJustPressed(types.KeyLeft):
		delta = types.Vec3{s.step, 0, 0}
	case s.input.IsKeyJustPressed(types.KeyRight):
		delta = types.Vec3{-s.step, 0, 0}
	default:
		return
	}

	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	cameraPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.cameraID)
	if !ok {
		return
	}

	playerPos.Translate(delta)
	cameraPos.Translate(delta)

	if laneDelta != 0 {
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID); ok {
			player.CurrentLane += laneDelta
			log.Printf("[LaneStepSystem] Lane -> %d", player.CurrentLane)
		}
	}
}
