package components

import (
	"errors"
	"math"
)

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerOnce 一次性计时器：到时后保持完成状态，不再计时
	TimerOnce TimerMode = iota
	// TimerRepeating 循环计时器：到时后从余量继续计时
	TimerRepeating
)

// ErrInvalidTimerDuration 计时器时长非法（必须为有限正数）
var ErrInvalidTimerDuration = errors.New("timer duration must be a positive finite number")

// Timer 倒计时器
//
// 每个 tick 调用 Tick(deltaTime) 推进，JustFinished() 表示本 tick 是否到时。
// 已过时间永远不会为负，一次性计时器在时长处饱和。
// 时长在创建后不可修改。
type Timer struct {
	duration      float64
	elapsed       float64
	mode          TimerMode
	finished      bool
	justFinished  bool
	timesFinished int
}

// NewTimer 创建计时器
//
// 参数:
//   - duration: 时长（秒），必须 > 0
//   - mode: TimerOnce 或 TimerRepeating
//
// 返回:
//   - *Timer: 计时器实例
//   - error: 时长非法时返回 ErrInvalidTimerDuration
func NewTimer(duration float64, mode TimerMode) (*Timer, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return nil, ErrInvalidTimerDuration
	}
	return &Timer{
		duration: duration,
		mode:     mode,
	}, nil
}

// Tick 推进计时器
// deltaTime <= 0（暂停帧）只清除本 tick 的到时标记
func (t *Timer) Tick(deltaTime float64) {
	t.justFinished = false
	t.timesFinished = 0

	if math.IsNaN(deltaTime) || deltaTime <= 0 {
		return
	}

	switch t.mode {
	case TimerRepeating:
		t.elapsed += deltaTime
		if t.elapsed >= t.duration {
			// 一次 tick 可能跨越多个周期
			n := math.Floor(t.elapsed / t.duration)
			t.timesFinished = int(n)
			t.elapsed -= n * t.duration
			if t.elapsed < 0 {
				t.elapsed = 0
			}
			t.justFinished = true
		}
		t.finished = t.justFinished

	default:
		if t.finished {
			return
		}
		t.elapsed += deltaTime
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.justFinished = true
			t.timesFinished = 1
		}
	}
}

// JustFinished 本 tick 是否到时
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished 一次性计时器：是否已完成；循环计时器：等同 JustFinished
func (t *Timer) Finished() bool {
	return t.finished
}

// TimesFinishedThisTick 本 tick 内完成的周期数（循环计时器可能大于 1）
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Duration 计时器时长
func (t *Timer) Duration() float64 {
	return t.duration
}

// Elapsed 当前周期已过时间
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Remaining 当前周期剩余时间
func (t *Timer) Remaining() float64 {
	return t.duration - t.elapsed
}

// Mode 计时器模式
func (t *Timer) Mode() TimerMode {
	return t.mode
}
