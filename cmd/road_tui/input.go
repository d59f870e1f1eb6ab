package main

import (
	"time"

	"github.com/decker502/crossroad/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// defaultHoldWindow 终端没有按键松开事件：最后一次按键（含自动重复）之后这么久仍视为按住
const defaultHoldWindow = 180 * time.Millisecond

// terminalInput 基于 tcell 按键事件的输入
//
// 刚按下：本帧收到该方向的按键事件，且之前不处于按住状态（自动重复不会产生新边沿）。
// 按住：距最后一次事件不超过 holdWindow。
type terminalInput struct {
	holdWindow  time.Duration
	lastSeen    map[types.Key]time.Time
	justPressed map[types.Key]bool
	now         func() time.Time
}

func newTerminalInput(holdWindow time.Duration) *terminalInput {
	return &terminalInput{
		holdWindow:  holdWindow,
		lastSeen:    make(map[types.Key]time.Time),
		justPressed: make(map[types.Key]bool),
		now:         time.Now,
	}
}

// directionOf 把 tcell 按键映射为方向（方向键与 WASD）
func directionOf(ev *tcell.EventKey) (types.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.KeyUp, true
	case tcell.KeyDown:
		return types.KeyDown, true
	case tcell.KeyLeft:
		return types.KeyLeft, true
	case tcell.KeyRight:
		return types.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return types.KeyUp, true
		case 's', 'S':
			return types.KeyDown, true
		case 'a', 'A':
			return types.KeyLeft, true
		case 'd', 'D':
			return types.KeyRight, true
		}
	}
	return 0, false
}

// HandleKey 记录一次方向键事件，返回是否消费了该事件
func (in *terminalInput) HandleKey(ev *tcell.EventKey) bool {
	key, ok := directionOf(ev)
	if !ok {
		return false
	}
	if !in.IsKeyPressed(key) {
		in.justPressed[key] = true
	}
	in.lastSeen[key] = in.now()
	return true
}

// EndFrame 清除刚按下标记
func (in *terminalInput) EndFrame() {
	for k := range in.justPressed {
		delete(in.justPressed, k)
	}
}

// IsKeyPressed 实现 systems.KeyboardInput
func (in *terminalInput) IsKeyPressed(key types.Key) bool {
	seen, ok := in.lastSeen[key]
	return ok && in.now().Sub(seen) <= in.holdWindow
}

// IsKeyJustPressed 实现 systems.KeyboardInput
func (in *terminalInput) IsKeyJustPressed(key types.Key) bool {
	return in.justPressed[key]
}
