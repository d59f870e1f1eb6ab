package components

// PlayerComponent 玩家状态
//
// 玩家是单例，实体ID保存在 game.World.PlayerID 中。
type PlayerComponent struct {
	// IsOnGround 是否着地，每 tick 由 GroundContactSystem 根据竖直速度重新计算
	IsOnGround bool

	// CurrentLane 从起点开始的前进/后退步数（带符号），即分数
	CurrentLane int

	// VerticalVelocity 本 tick 开始时读取的物理竖直速度快照
	// 同一 tick 内的其他系统只读取这个值，不再查询物理引擎
	VerticalVelocity float64
}

// ScoreComponent 对外展示的分数
type ScoreComponent struct {
	Value int
}
