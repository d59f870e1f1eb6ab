package main

import (
	"testing"
	"time"

	"github.com/decker502/crossroad/pkg/systems"
	"github.com/decker502/crossroad/pkg/types"
	"github.com/gdamore/tcell/v2"
)

var _ systems.KeyboardInput = (*terminalInput)(nil)

// fakeClock 可手动推进的时钟
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestInput() (*terminalInput, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	in := newTerminalInput(100 * time.Millisecond)
	in.now = clock.now
	return in, clock
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want types.Key
		ok   bool
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.KeyUp, true},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), types.KeyRight, true},
		{"wasd a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), types.KeyLeft, true},
		{"wasd S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), types.KeyDown, true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := directionOf(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("directionOf = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTerminalInputEdges(t *testing.T) {
	in, clock := newTestInput()
	up := tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)

	in.HandleKey(up)
	if !in.IsKeyJustPressed(types.KeyUp) || !in.IsKeyPressed(types.KeyUp) {
		t.Fatal("first event should be a just-pressed edge")
	}
	in.EndFrame()

	// 自动重复：仍按住，但不产生新边沿
	clock.advance(50 * time.Millisecond)
	in.HandleKey(up)
	if in.IsKeyJustPressed(types.KeyUp) {
		t.Error("autorepeat must not create a new edge")
	}
	if !in.IsKeyPressed(types.KeyUp) {
		t.Error("key should still be held during autorepeat")
	}
	in.EndFrame()

	// 超过保持窗口：视为松开
	clock.advance(150 * time.Millisecond)
	if in.IsKeyPressed(types.KeyUp) {
		t.Error("key should be released after the hold window")
	}

	// 再次按下产生新边沿
	in.HandleKey(up)
	if !in.IsKeyJustPressed(types.KeyUp) {
		t.Error("a press after release should be a new edge")
	}
}

func TestTerminalInputIgnoresOtherKeys(t *testing.T) {
	in, _ := newTestInput()
	if in.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("non-directional keys must not be consumed")
	}
	for _, k := range types.DirectionalKeys {
		if in.IsKeyPressed(k) || in.IsKeyJustPressed(k) {
			t.Errorf("%v should be idle", k)
		}
	}
}
