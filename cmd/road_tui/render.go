package main

import (
	"fmt"
	"math"

	"github.com/decker502/crossroad/pkg/game"
	"github.com/decker502/crossroad/pkg/types"
	"github.com/decker502/crossroad/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// cellWriter tcell.Screen 中渲染用到的部分
type cellWriter interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

var (
	styleBackground = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleDebug      = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleCar        = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
)

const (
	glyphCar      = '#'
	glyphPlayer   = '@'
	glyphAirborne = 'o'
)

// tileCell 路块类别对应的字符与样式
func tileCell(t types.RoadType) (rune, tcell.Style) {
	switch t {
	case types.RoadTypeTraffic:
		return '=', tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorDimGray)
	case types.RoadTypeRiver:
		return '~', tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorNavy)
	default:
		return '"', tcell.StyleDefault.Foreground(tcell.ColorLime).Background(tcell.ColorDarkGreen)
	}
}

// renderer 把快照画到终端字符网格上
type renderer struct {
	projection *utils.Projection
	width      int
	height     int
}

// Resize 更新终端尺寸
func (r *renderer) Resize(width, height int) {
	r.width, r.height = width, height
	r.projection.Width = float64(width)
	r.projection.Height = float64(height)
}

// Draw 绘制一帧：背景、路块、车辆、玩家、状态行
func (r *renderer) Draw(w cellWriter, snap game.Snapshot, status string, debug bool) {
	r.projection.Follow(snap.Camera)

	r.fill(w, 0, 0, r.width, r.height, ' ', styleBackground)

	for _, tile := range snap.Tiles {
		ch, style := tileCell(tile.Type)
		r.box(w, tile.Position, tile.HalfExtents, ch, style)
	}
	for _, car := range snap.Cars {
		half := car.Size.Mul(0.5)
		r.box(w, car.Position, half, glyphCar, styleCar)
	}

	glyph := glyphPlayer
	if !snap.Player.OnGround {
		glyph = glyphAirborne
	}
	r.box(w, snap.Player.Position, snap.Player.HalfExtents, glyph, stylePlayer)

	r.text(w, 0, 0, fmt.Sprintf(" Score %d  Lane %d  %s", snap.Score, snap.Player.Lane, status), styleHUD)
	if debug {
		p := snap.Player
		r.text(w, 0, 1, fmt.Sprintf(" tick=%d t=%.1fs cars=%d pos=(%.2f,%.2f,%.2f) vy=%.2f ground=%v",
			snap.Tick, snap.Elapsed, len(snap.Cars), p.Position.X(), p.Position.Y(), p.Position.Z(),
			p.VerticalVelocity, p.OnGround), styleDebug)
	}
}

// box 填充世界坐标中的矩形，每个物体至少占一个字符
func (r *renderer) box(w cellWriter, center, half types.Vec3, ch rune, style tcell.Style) {
	left, top, bw, bh := r.projection.BoxToScreen(center.X(), center.Z(), half.X(), half.Z())
	if !r.projection.IsVisible(left, top, bw, bh) {
		return
	}
	x0, x1 := cellSpan(left, bw)
	y0, y1 := cellSpan(top, bh)
	r.fill(w, x0, y0, x1, y1, ch, style)
}

// cellSpan 把连续区间 [start, start+size) 四舍五入到字符格 [from, to)
func cellSpan(start, size float64) (from, to int) {
	from = int(math.Round(start))
	to = int(math.Round(start + size))
	if to <= from {
		to = from + 1
	}
	return from, to
}

func (r *renderer) fill(w cellWriter, x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, r.width), min(y1, r.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			w.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *renderer) text(w cellWriter, x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range s {
		if x >= r.width {
			return
		}
		if x >= 0 {
			w.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
