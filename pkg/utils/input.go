// Package utils 提供宿主程序使用的工具函数
package utils

import (
	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings 每个方向对应的物理按键（方向键与 WASD）
var keyBindings = map[types.Key][]ebiten.Key{
	types.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	types.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	types.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	types.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// EbitenKeyboard 基于 ebiten 的键盘输入（移动端同时接受触屏）
// 实现 systems.KeyboardInput，只能在 ebiten 的 Update 中调用
type EbitenKeyboard struct {
	touchIDs []ebiten.TouchID
}

// NewEbitenKeyboard 创建键盘输入
func NewEbitenKeyboard() *EbitenKeyboard {
	return &EbitenKeyboard{}
}

// TouchDirection 触点位置对应的方向
//
// 屏幕上三分之一为上，下三分之一为下，中间一带按左右半屏区分左右。
// 坐标为逻辑屏幕坐标。
func TouchDirection(x, y, width, height int) types.Key {
	switch {
	case y*3 < height:
		return types.KeyUp
	case y*3 >= height*2:
		return types.KeyDown
	case x*2 < width:
		return types.KeyLeft
	default:
		return types.KeyRight
	}
}

func (k *EbitenKeyboard) touching(key types.Key, ids []ebiten.TouchID) bool {
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		if TouchDirection(x, y, config.GameWindowWidth, config.GameWindowHeight) == key {
			return true
		}
	}
	return false
}

// IsKeyPressed 方向键是否处于按住状态
func (k *EbitenKeyboard) IsKeyPressed(key types.Key) bool {
	for _, ek := range keyBindings[key] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	k.touchIDs = ebiten.AppendTouchIDs(k.touchIDs[:0])
	return k.touching(key, k.touchIDs)
}

// IsKeyJustPressed 方向键是否在本帧刚按下
func (k *EbitenKeyboard) IsKeyJustPressed(key types.Key) bool {
	for _, ek := range keyBindings[key] {
		if inpututil.IsKeyJustPressed(ek) {
			return true
		}
	}
	k.touchIDs = inpututil.AppendJustPressedTouchIDs(k.touchIDs[:0])
	return k.touching(key, k.touchIDs)
}

// BindingsFor 返回方向对应的按键（用于帮助文本）
func BindingsFor(key types.Key) []ebiten.Key {
	return keyBindings[key]
}
