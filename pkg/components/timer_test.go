package components

import (
	"errors"
	"math"
	"testing"
)

func TestNewTimerRejectsInvalidDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
	}{
		{"zero", 0},
		{"negative", -1.5},
		{"NaN", math.NaN()},
		{"infinite", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer, err := NewTimer(tt.duration, TimerRepeating)
			if !errors.Is(err, ErrInvalidTimerDuration) {
				t.Fatalf("expected ErrInvalidTimerDuration, got %v", err)
			}
			if timer != nil {
				t.Error("expected nil timer on error")
			}
		})
	}
}

func TestRepeatingTimerFiresEveryPeriod(t *testing.T) {
	timer, err := NewTimer(2.0, TimerRepeating)
	if err != nil {
		t.Fatalf("NewTimer: %v", err)
	}

	// 1.0 秒一个 tick，共 5 个 tick：应在 t=2.0 和 t=4.0 到时
	var firedAt []int
	for tick := 1; tick <= 5; tick++ {
		timer.Tick(1.0)
		if timer.JustFinished() {
			firedAt = append(firedAt, tick)
		}
	}

	if len(firedAt) != 2 || firedAt[0] != 2 || firedAt[1] != 4 {
		t.Errorf("expected fires at ticks [2 4], got %v", firedAt)
	}
	if timer.Elapsed() != 1.0 {
		t.Errorf("expected elapsed 1.0 after 5s, got %f", timer.Elapsed())
	}
}

func TestRepeatingTimerLargeDelta(t *testing.T) {
	timer, _ := NewTimer(2.0, TimerRepeating)

	timer.Tick(5.0)

	if !timer.JustFinished() {
		t.Fatal("expected timer to fire")
	}
	if timer.TimesFinishedThisTick() != 2 {
		t.Errorf("expected 2 periods elapsed, got %d", timer.TimesFinishedThisTick())
	}
	if timer.Elapsed() != 1.0 {
		t.Errorf("expected elapsed to wrap to 1.0, got %f", timer.Elapsed())
	}

	timer.Tick(0.5)
	if timer.JustFinished() || timer.Finished() {
		t.Error("JustFinished should reset on the next tick")
	}
}

func TestOnceTimerSaturates(t *testing.T) {
	timer, _ := NewTimer(10.0, TimerOnce)

	for tick := 1; tick <= 9; tick++ {
		timer.Tick(1.0)
		if timer.JustFinished() {
			t.Fatalf("timer fired early at tick %d", tick)
		}
	}

	timer.Tick(1.0)
	if !timer.JustFinished() || !timer.Finished() {
		t.Fatal("expected timer to finish at t=10")
	}

	// 完成后继续推进：保持完成状态但不再触发
	timer.Tick(1.0)
	if timer.JustFinished() {
		t.Error("one-shot timer must fire exactly once")
	}
	if !timer.Finished() {
		t.Error("one-shot timer should stay finished")
	}
	if timer.Elapsed() != timer.Duration() {
		t.Errorf("elapsed should saturate at duration, got %f", timer.Elapsed())
	}
	if timer.Remaining() != 0 {
		t.Errorf("remaining should be 0, got %f", timer.Remaining())
	}
}

func TestTimerIgnoresNonPositiveDelta(t *testing.T) {
	timer, _ := NewTimer(1.0, TimerOnce)

	timer.Tick(0)
	timer.Tick(-3)
	timer.Tick(math.NaN())

	if timer.Elapsed() != 0 {
		t.Errorf("elapsed must never go negative or advance on pause, got %f", timer.Elapsed())
	}
	if timer.Mode() != TimerOnce {
		t.Errorf("unexpected mode %v", timer.Mode())
	}
}
