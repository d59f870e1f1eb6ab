package components

import "github.com/decker502/crossroad/pkg/types"

// PositionComponent 实体的世界坐标
// 对动态刚体而言，它是物理引擎拥有的变换，核心只做平移
type PositionComponent struct {
	X, Y, Z float64
}

// Vec 返回位置向量
func (p *PositionComponent) Vec() types.Vec3 {
	return types.Vec3{p.X, p.Y, p.Z}
}

// SetVec 用向量覆盖位置
func (p *PositionComponent) SetVec(v types.Vec3) {
	p.X, p.Y, p.Z = v.Elem()
}

// Translate 按 delta 平移
func (p *PositionComponent) Translate(delta types.Vec3) {
	p.SetVec(p.Vec().Add(delta))
}
