package components

// CarComponent 车辆（障碍物）组件
//
// 车辆由 TileSpawnSystem 创建，由 CarMotionSystem 在 DespawnTimer 到时后删除，没有其他删除路径。
// 与生成它的路块之间只有生成时的值拷贝（SourceTile、LeftOriented），不持有引用。
type CarComponent struct {
	Velocity     float64 // 恒定速度（负值），方向由 LeftOriented 决定
	LeftOriented bool    // 从生成路块拷贝
	DespawnTimer *Timer  // 一次性计时器，固定寿命
	SourceTile   int     // 生成路块的序号（仅用于展示与调试）
}
