package game

import (
	"log"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
)

// MusicChannel 一条可独立控制音量和音调的循环音乐轨
type MusicChannel interface {
	// Play 从头循环播放指定音频
	Play(clipID string)
	Stop()
	SetVolume(volume float64)
	SetPitch(pitch float64)
	Pitch() float64
}

// SFXPlayer 单次音效播放
type SFXPlayer interface {
	PlayOnce(clipID string, volume float64)
}

// AudioManager 音频管理器
//
// 两条音乐轨轮流使用：切歌时在空闲轨上播放新音乐并交叉渐变。
// 渐变状态保存在显式的 Fade 对象里，由 Update(dt) 按帧推进；
// 取消渐变即替换状态对象，已经设置的音量保持不变。
type AudioManager struct {
	channels [2]MusicChannel
	sfx      SFXPlayer
	settings *SettingsManager

	// active 当前主音乐轨下标
	active int
	// levels 两条音乐轨的渐变音量（未乘设置音量）
	levels [2]float64

	crossfade *components.Fade
	pitchFade *components.Fade

	fadeTime      float64
	speedFadeTime float64
	basePitch     float64
	hurryPitch    float64

	currentMusic string
}

// NewAudioManager 创建音频管理器
// 初始音调取自第一条音乐轨
func NewAudioManager(first, second MusicChannel, sfx SFXPlayer, settings *SettingsManager, cfg config.AudioConfig) *AudioManager {
	am := &AudioManager{
		channels:      [2]MusicChannel{first, second},
		sfx:           sfx,
		settings:      settings,
		levels:        [2]float64{1, 0},
		fadeTime:      cfg.MusicFadeTime,
		speedFadeTime: cfg.MusicSpeedFadeTime,
		basePitch:     first.Pitch(),
		hurryPitch:    cfg.HurryUpPitch,
	}
	if am.basePitch <= 0 {
		am.basePitch = 1
	}
	return am
}

// ChangeMusic 交叉渐变到新音乐
// 进行中的交叉渐变被取消，淡出中的音轨保持当前音量
func (am *AudioManager) ChangeMusic(clipID string) {
	incoming := 1 - am.active

	am.channels[incoming].Play(clipID)
	am.crossfade = &components.Fade{
		Kind:     components.FadeCrossfade,
		Duration: am.fadeTime,
		From:     float64(am.active),
		To:       float64(incoming),
	}
	am.active = incoming
	am.currentMusic = clipID

	log.Printf("[AudioManager] Change music to %s (channel %d)", clipID, incoming)
}

// SpeedUpMusic 当前音轨音调渐变到加速音调
func (am *AudioManager) SpeedUpMusic() {
	am.startPitchFade(components.FadePitchUp, am.basePitch, am.hurryPitch)
}

// SlowDownMusic 当前音轨音调渐变回原始音调
func (am *AudioManager) SlowDownMusic() {
	am.startPitchFade(components.FadePitchDown, am.hurryPitch, am.basePitch)
}

// startPitchFade 新的音调渐变只取消上一个音调渐变
func (am *AudioManager) startPitchFade(kind components.FadeKind, from, to float64) {
	am.pitchFade = &components.Fade{
		Kind:     kind,
		Duration: am.speedFadeTime,
		From:     from,
		To:       to,
		Channel:  am.active,
	}
}

// PlaySFX 播放一次音效（音效关闭时忽略）
func (am *AudioManager) PlaySFX(clipID string) {
	if am.sfx == nil || clipID == "" {
		return
	}
	gain := am.settings.SoundGain()
	if gain <= 0 {
		return
	}
	am.sfx.PlayOnce(clipID, gain)
}

// Update 推进渐变
func (am *AudioManager) Update(dt float64) {
	if f := am.crossfade; f != nil {
		from, to := int(f.From), int(f.To)
		if f.Elapsed < f.Duration {
			t := f.Elapsed / f.Duration
			am.setLevel(to, lerp(0, 1, t))
			am.setLevel(from, lerp(1, 0, t))
			f.Elapsed += dt
		} else {
			am.channels[from].Stop()
			am.setLevel(to, 1)
			am.setLevel(from, 0)
			am.crossfade = nil
		}
	}

	if f := am.pitchFade; f != nil {
		channel := am.channels[f.Channel]
		if f.Elapsed < f.Duration {
			channel.SetPitch(lerp(f.From, f.To, f.Elapsed/f.Duration))
			f.Elapsed += dt
		} else {
			channel.SetPitch(f.To)
			am.pitchFade = nil
		}
	}
}

// ApplySettings 设置变化后重新计算两条音轨的实际音量
func (am *AudioManager) ApplySettings() {
	am.setLevel(0, am.levels[0])
	am.setLevel(1, am.levels[1])
}

// setLevel 记录渐变音量并乘以设置音量写入音轨
func (am *AudioManager) setLevel(index int, level float64) {
	am.levels[index] = level
	am.channels[index].SetVolume(level * am.settings.MusicGain())
}

// ActiveChannel 返回当前主音乐轨下标
func (am *AudioManager) ActiveChannel() int {
	return am.active
}

// CurrentMusic 返回最近一次切换的音乐ID
func (am *AudioManager) CurrentMusic() string {
	return am.currentMusic
}

// IsFading 是否有交叉渐变在进行
func (am *AudioManager) IsFading() bool {
	return am.crossfade != nil
}

func lerp(a, b, t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a + (b-a)*t
}
