package components

import "github.com/decker502/crossroad/pkg/types"

// VelocityComponent 线速度（由物理引擎积分与写入）
type VelocityComponent struct {
	X, Y, Z float64
}

// Vec 返回速度向量
func (v *VelocityComponent) Vec() types.Vec3 {
	return types.Vec3{v.X, v.Y, v.Z}
}

// SetVec 用向量覆盖速度
func (v *VelocityComponent) SetVec(vec types.Vec3) {
	v.X, v.Y, v.Z = vec.Elem()
}

// ImpulseComponent 待施加的外部冲量
// 物理引擎在下一次 Step 中施加 v += J/m 并清零
type ImpulseComponent struct {
	X, Y, Z float64
}

// Vec 返回冲量向量
func (j *ImpulseComponent) Vec() types.Vec3 {
	return types.Vec3{j.X, j.Y, j.Z}
}

// RigidBodyComponent 动态刚体属性
type RigidBodyComponent struct {
	Mass         float64    // 质量
	GravityScale float64    // 重力倍数
	Restitution  float64    // 弹性系数 [0,1]
	HalfExtents  types.Vec3 // 长方体碰撞盒半尺寸
}

// ColliderComponent 静态长方体碰撞盒（如路块）
type ColliderComponent struct {
	HalfExtents types.Vec3
}
