// Package types 定义共享的基础类型
package types

import "github.com/go-gl/mathgl/mgl64"

// Vec3 三维向量（世界坐标，单位与物理引擎一致）
//
// 坐标系约定：X 为横向（车辆行驶方向），Y 为竖直向上，Z 为纵向（玩家前进方向）。
// 下标 0/1/2 依次对应 X/Y/Z。
type Vec3 = mgl64.Vec3
