package systems

import "github.com/decker502/crossroad/pkg/types"

// ScriptedInput 可编程的输入源，用于测试与无界面回放
//
// 用法：
//
//	in.Press(types.KeyUp)   // 本帧刚按下（同时处于按住状态）
//	sim.Update(dt)
//	in.EndFrame()           // 清除"刚按下"标记，按住状态保留
//	in.Release(types.KeyUp)
type ScriptedInput struct {
	held        map[types.Key]bool
	justPressed map[types.Key]bool
	tapped      map[types.Key]bool
}

// NewScriptedInput 创建空输入源（没有任何按键）
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{
		held:        make(map[types.Key]bool),
		justPressed: make(map[types.Key]bool),
		tapped:      make(map[types.Key]bool),
	}
}

// Press 按下按键；已经按住的键不会再次产生刚按下边沿
func (s *ScriptedInput) Press(keys ...types.Key) {
	for _, k := range keys {
		if !s.held[k] {
			s.justPressed[k] = true
		}
		s.held[k] = true
	}
}

// Release 松开按键
func (s *ScriptedInput) Release(keys ...types.Key) {
	for _, k := range keys {
		delete(s.held, k)
		delete(s.justPressed, k)
		delete(s.tapped, k)
	}
}

// Tap 按下按键，并在下一次 EndFrame 时自动松开
// 已经用 Press 按住的键既不产生刚按下边沿，也不会被松开
func (s *ScriptedInput) Tap(keys ...types.Key) {
	for _, k := range keys {
		if !s.held[k] {
			s.tapped[k] = true
		}
	}
	s.Press(keys...)
}

// EndFrame 帧结束：清除刚按下标记，松开 Tap 的按键
func (s *ScriptedInput) EndFrame() {
	for k := range s.justPressed {
		delete(s.justPressed, k)
	}
	for k := range s.tapped {
		delete(s.held, k)
		delete(s.tapped, k)
	}
}

// ReleaseAll 松开所有按键
func (s *ScriptedInput) ReleaseAll() {
	for k := range s.held {
		delete(s.held, k)
	}
	s.EndFrame()
}

// IsKeyPressed 实现 KeyboardInput
func (s *ScriptedInput) IsKeyPressed(key types.Key) bool {
	return s.held[key]
}

// IsKeyJustPressed 实现 KeyboardInput
func (s *ScriptedInput) IsKeyJustPressed(key types.Key) bool {
	return s.justPressed[key]
}
