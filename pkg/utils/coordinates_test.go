package utils

import (
	"math"
	"testing"

	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/types"
)

func newTestProjection() *Projection {
	cfg := config.DefaultSimConfig()
	return NewProjection(cfg.Camera, 800, 600, 16, 16)
}

func TestWorldToScreenAtFocus(t *testing.T) {
	p := newTestProjection()

	// 初始焦点为注视点 (0,0,0)
	sx, sy := p.WorldToScreen(0, 0)
	if sx != 400 || sy != 600*config.PlayerScreenAnchorY {
		t.Errorf("focus should map to the anchor, got (%v, %v)", sx, sy)
	}
}

func TestWorldToScreenAxes(t *testing.T) {
	p := newTestProjection()

	tests := []struct {
		name   string
		x, z   float64
		wantDX float64
		wantDY float64
	}{
		{"left (+X) moves left on screen", 3, 0, -48, 0},
		{"right (-X) moves right on screen", -3, 0, 48, 0},
		{"forward (+Z) moves up on screen", 0, 3, 0, -48},
		{"backward (-Z) moves down on screen", 0, -3, 0, 48},
	}

	ox, oy := p.WorldToScreen(0, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := p.WorldToScreen(tt.x, tt.z)
			if sx-ox != tt.wantDX || sy-oy != tt.wantDY {
				t.Errorf("delta = (%v, %v), want (%v, %v)", sx-ox, sy-oy, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestProjectionFollowsCamera(t *testing.T) {
	cfg := config.DefaultSimConfig()
	p := newTestProjection()

	// 镜头随玩家前进一个车道
	cam := cfg.Camera.Start.Vec().Add(types.Vec3{0, 0, 3})
	p.Follow(cam)

	if f := p.Focus(); f.Z() != 3 || f.X() != 0 {
		t.Errorf("focus should follow the camera to z=3, got %+v", f)
	}

	// 玩家（z=3）仍然在锚点
	sx, sy := p.WorldToScreen(0, 3)
	if sx != 400 || sy != 600*config.PlayerScreenAnchorY {
		t.Errorf("player should stay at the anchor, got (%v, %v)", sx, sy)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	p := newTestProjection()
	p.Follow(types.Vec3{-6, 27, 10})

	points := [][2]float64{{0, 0}, {12.5, 9}, {-7.25, -3}}
	for _, pt := range points {
		sx, sy := p.WorldToScreen(pt[0], pt[1])
		x, z := p.ScreenToWorld(sx, sy)
		if math.Abs(x-pt[0]) > 1e-9 || math.Abs(z-pt[1]) > 1e-9 {
			t.Errorf("round trip of %v gave (%v, %v)", pt, x, z)
		}
	}
}

func TestBoxToScreenAndVisibility(t *testing.T) {
	p := newTestProjection()

	left, top, w, h := p.BoxToScreen(0, 0, 12.5, 1.5)
	if w != 400 || h != 48 {
		t.Errorf("unexpected box size %vx%v", w, h)
	}
	if left != 200 || top != 420-24 {
		t.Errorf("unexpected box origin (%v, %v)", left, top)
	}
	if !p.IsVisible(left, top, w, h) {
		t.Error("tile under the player should be visible")
	}

	// 远在前方 100 单位
	left, top, w, h = p.BoxToScreen(0, 100, 12.5, 1.5)
	if p.IsVisible(left, top, w, h) {
		t.Error("tile far ahead should be off screen")
	}
}
