package systems

import "github.com/decker502/crossroad/pkg/types"

// KeyboardInput 输入协作者
//
// 区分"按住"与"刚按下"两种语义：跳跃检查按住状态，换道只响应刚按下的边沿。
// 每个 tick 内多次查询必须返回相同结果，由宿主在帧边界刷新。
type KeyboardInput interface {
	// IsKeyPressed 按键当前是否处于按下状态
	IsKeyPressed(key types.Key) bool
	// IsKeyJustPressed 按键是否在本 tick 刚刚按下
	IsKeyJustPressed(key types.Key) bool
}

// anyKeyPressed 四个方向键中是否有任意一个按住
func anyKeyPressed(input KeyboardInput) bool {
	for _, k := range types.DirectionalKeys {
		if input.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// anyKeyJustPressed 四个方向键中是否有任意一个刚按下
func anyKeyJustPressed(input KeyboardInput) bool {
	for _, k := range types.DirectionalKeys {
		if input.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
