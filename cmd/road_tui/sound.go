package main

import (
	"log"
	"math"
	"time"

	"github.com/decker502/crossroad/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// chirper 基于 beep 的提示音播放器
// 初始化失败或被静音时所有调用都是空操作
type chirper struct {
	ready   bool
	enabled bool
	volume  float64
	mixer   *beep.Mixer
}

// newChirper 创建播放器；openDevice 为 false 时不打开音频设备
func newChirper(openDevice, enabled bool, volume float64) *chirper {
	c := &chirper{enabled: enabled, volume: volume, mixer: &beep.Mixer{}}
	if !openDevice {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// 没有音频设备时静默运行
		log.Printf("[Sound] Audio initialization failed: %v", err)
		return c
	}
	speaker.Play(c.mixer)
	c.ready = true
	return c
}

// SetEnabled 开关提示音
func (c *chirper) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Play 播放一组提示音（ID 见 game.CuesFor）
func (c *chirper) Play(soundIDs []string) {
	if !c.ready || !c.enabled {
		return
	}
	for _, id := range soundIDs {
		tone, ok := game.ToneFor(id)
		if !ok {
			continue
		}
		sine, err := generators.SineTone(sampleRate, tone.Freq)
		if err != nil {
			log.Printf("[Sound] SineTone(%v): %v", tone.Freq, err)
			continue
		}
		s := withVolume(beep.Take(sampleRate.N(tone.Duration), sine), c.volume)
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
}

// Close 停止播放并释放设备
func (c *chirper) Close() {
	if !c.ready {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.ready = false
}

// withVolume 线性音量 [0, 1] 转换为以 2 为底的对数增益；0 为静音
func withVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
