package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可运行的画面（目前只有道路场景）
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为秒
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}
