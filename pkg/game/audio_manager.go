package game

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 桌面端音频上下文的采样率
const AudioSampleRate = 48000

// 提示音ID
const (
	SoundScoreUp   = "SOUND_SCORE_UP"
	SoundScoreDown = "SOUND_SCORE_DOWN"
	SoundHop       = "SOUND_HOP"
)

// Tone 一个正弦提示音
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// soundTones 提示音ID -> 音调
var soundTones = map[string]Tone{
	SoundScoreUp:   {Freq: 880, Duration: 60 * time.Millisecond},
	SoundScoreDown: {Freq: 330, Duration: 90 * time.Millisecond},
	SoundHop:       {Freq: 620, Duration: 25 * time.Millisecond},
}

// ToneFor 返回提示音ID对应的音调
func ToneFor(soundID string) (Tone, bool) {
	t, ok := soundTones[soundID]
	return t, ok
}

// CuesFor 根据两帧之间分数与跳跃次数的变化决定要播放的提示音
func CuesFor(prevScore, score, prevHops, hops int) []string {
	var cues []string
	switch {
	case score > prevScore:
		cues = append(cues, SoundScoreUp)
	case score < prevScore:
		cues = append(cues, SoundScoreDown)
	}
	if hops > prevHops {
		cues = append(cues, SoundHop)
	}
	return cues
}

// AudioManager 音频管理器
// 职责：
//   - 把提示音合成为 PCM 并缓存播放器
//   - 从 SettingsManager 读取声音开关与音量
//
// audio.Context 每个进程只能创建一次，由调用方传入；为 nil 时所有播放都是空操作。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	soundPlayers    map[string]*audio.Player // 提示音ID -> 播放器
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（可为 nil）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放提示音，返回是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil || am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayCues 依次播放一组提示音
func (am *AudioManager) PlayCues(soundIDs []string) {
	for _, id := range soundIDs {
		am.PlaySound(id)
	}
}

// getSoundPlayer 获取或合成提示音播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	tone, ok := soundTones[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(SynthesizeTone(am.context.SampleRate(), tone))
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

// SynthesizeTone 生成 16 位小端双声道 PCM 正弦波
// 首尾各 5ms 线性淡入淡出，避免爆音
func SynthesizeTone(sampleRate int, tone Tone) []byte {
	n := int(float64(sampleRate) * tone.Duration.Seconds())
	fade := min(sampleRate/200, n/2)

	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := 0.5
		switch {
		case fade > 0 && i < fade:
			amp *= float64(i) / float64(fade)
		case fade > 0 && i >= n-fade:
			amp *= float64(n-1-i) / float64(fade)
		}
		v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*tone.Freq*float64(i)/float64(sampleRate)))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
