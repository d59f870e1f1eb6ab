package components

import "github.com/decker502/crossroad/pkg/types"

// CameraComponent 跟随玩家的视角锚点
//
// 镜头本身的位置保存在 PositionComponent 中。玩家换道时，LaneStepSystem 对镜头施加相同的位移，
// 保证玩家始终位于画面中央。
type CameraComponent struct {
	// LookAt 初始注视点（世界坐标）
	LookAt types.Vec3
}
