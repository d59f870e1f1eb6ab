package types

import "strings"

// Key 模拟核心关心的方向键
// 与具体输入后端（ebiten、tcell、脚本）解耦
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// DirectionalKeys 四个方向键，顺序即车道移动的优先级（上 > 下 > 左 > 右）
var DirectionalKeys = [...]Key{KeyUp, KeyDown, KeyLeft, KeyRight}

// String 返回按键名称
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseKey 解析按键简写（U/D/L/R 或完整名称，大小写不敏感）
func ParseKey(s string) (Key, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return KeyUp, true
	case "d", "down":
		return KeyDown, true
	case "l", "left":
		return KeyLeft, true
	case "r", "right":
		return KeyRight, true
	default:
		return 0, false
	}
}
