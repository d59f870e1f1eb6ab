// Package physics 宿主侧的最小刚体模拟
//
// 模拟核心只通过 ECS 组件与物理引擎交互（位置、速度、冲量、刚体与碰撞盒），
// 这里提供一个足以驱动演示与回放的替身：重力、冲量、显式欧拉积分、
// 以及动态长方体与静态长方体之间的 AABB 碰撞响应。
package physics

import (
	"log"
	"math"

	"github.com/decker502/crossroad/pkg/components"
	"github.com/decker502/crossroad/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultRestSpeed 反弹速度低于该值时直接归零，刚体停在碰撞面上
const DefaultRestSpeed = 1.0

// World 物理世界
//
// 每个 Step 依次执行：
//  1. 施加并清零待处理冲量 v += J/m
//  2. 重力 v.y += g * gravityScale * dt
//  3. 积分 p += v * dt
//  4. 与所有静态碰撞盒做分离，沿穿透最浅的轴推出
type World struct {
	entityManager *ecs.EntityManager
	gravity       float64
	restSpeed     float64

	contacts int // 上一次 Step 的接触数
}

// NewWorld 创建物理世界
//
// 参数:
//   - em: EntityManager 实例
//   - gravity: 重力加速度（负值向下）
func NewWorld(em *ecs.EntityManager, gravity float64) *World {
	log.Printf("[PhysicsWorld] Initialized with gravity=%.2f", gravity)
	return &World{
		entityManager: em,
		gravity:       gravity,
		restSpeed:     DefaultRestSpeed,
	}
}

// Contacts 上一次 Step 中发生的接触次数
func (w *World) Contacts() int {
	return w.contacts
}

// Step 推进 dt 秒；dt <= 0 时不做任何事
func (w *World) Step(dt float64) {
	w.contacts = 0
	if !(dt > 0) {
		return
	}

	bodies := ecs.GetEntitiesWith3[
		*components.RigidBodyComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](w.entityManager)

	statics := ecs.GetEntitiesWith2[*components.ColliderComponent, *components.PositionComponent](w.entityManager)

	for _, id := range bodies {
		body, _ := ecs.GetComponent[*components.RigidBodyComponent](w.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](w.entityManager, id)

		v := vel.Vec()
		if imp, ok := ecs.GetComponent[*components.ImpulseComponent](w.entityManager, id); ok && body.Mass > 0 {
			v = v.Add(imp.Vec().Mul(1 / body.Mass))
			*imp = components.ImpulseComponent{}
		}
		v = v.Add(mgl64.Vec3{0, w.gravity * body.GravityScale * dt, 0})
		vel.SetVec(v)

		pos.Translate(v.Mul(dt))

		for _, sid := range statics {
			if sid == id || ecs.HasComponent[*components.RigidBodyComponent](w.entityManager, sid) {
				continue
			}
			col, _ := ecs.GetComponent[*components.ColliderComponent](w.entityManager, sid)
			spos, _ := ecs.GetComponent[*components.PositionComponent](w.entityManager, sid)
			if w.resolve(body, pos, vel, col, spos) {
				w.contacts++
			}
		}
	}
}

// resolve 处理一个动态刚体与一个静态碰撞盒的穿透
// 沿穿透最浅的轴推出；深度相同时优先 Y，其次 X
func (w *World) resolve(
	body *components.RigidBodyComponent, pos *components.PositionComponent, vel *components.VelocityComponent,
	col *components.ColliderComponent, spos *components.PositionComponent) bool {

	d := pos.Vec().Sub(spos.Vec())
	reach := body.HalfExtents.Add(col.HalfExtents)

	// 各轴穿透深度，任一轴 <= 0 即没有重叠
	var pen mgl64.Vec3
	for i := range pen {
		pen[i] = reach[i] - math.Abs(d[i])
		if pen[i] <= 0 {
			return false
		}
	}

	axis := 1
	switch {
	case pen[1] <= pen[0] && pen[1] <= pen[2]:
	case pen[0] <= pen[2]:
		axis = 0
	default:
		axis = 2
	}

	var push mgl64.Vec3
	push[axis] = math.Copysign(pen[axis], d[axis])
	pos.Translate(push)

	v := vel.Vec()
	v[axis] = w.bounce(v[axis], d[axis], body.Restitution)
	vel.SetVec(v)
	return true
}

// bounce 计算法向速度：朝向碰撞面的分量按弹性系数反向，过小则归零
func (w *World) bounce(v, normal, restitution float64) float64 {
	// 已经在分离
	if v*normal >= 0 {
		return v
	}
	out := -v * restitution
	if math.Abs(out) < w.restSpeed {
		return 0
	}
	return out
}
