package audio

import (
	"log"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const resampleQuality = 4

// Channel 一条循环音乐轨，可独立调节音量和音调
// 实现 game.MusicChannel
type Channel struct {
	mixer   *Mixer
	library *Library

	ctrl      *beep.Ctrl
	resampler *beep.Resampler
	volume    *effects.Volume

	gain  float64
	pitch float64
}

// NewChannel 创建音乐轨，初始音量 0、音调 1
func NewChannel(mixer *Mixer, library *Library) *Channel {
	return &Channel{mixer: mixer, library: library, pitch: 1}
}

// Play 从头循环播放音频，替换当前播放的内容
// 音频不存在时该音轨保持静音
func (c *Channel) Play(clipID string) {
	c.Stop()

	buffer, ok := c.library.Clip(clipID)
	if !ok {
		log.Printf("[Audio] Warning: music clip %q not loaded", clipID)
		return
	}

	loop := beep.Loop(-1, buffer.Streamer(0, buffer.Len()))
	volume, silent := gainToVolume(c.gain)

	c.resampler = beep.ResampleRatio(resampleQuality, c.pitch, loop)
	c.volume = &effects.Volume{Streamer: c.resampler, Base: 2, Volume: volume, Silent: silent}
	c.ctrl = &beep.Ctrl{Streamer: c.volume}
	c.mixer.Add(c.ctrl)
}

// Stop 停止播放，混音器在下一次拉取时移除该流
func (c *Channel) Stop() {
	if c.ctrl == nil {
		return
	}
	ctrl := c.ctrl
	c.mixer.update(func() { ctrl.Streamer = nil })
	c.ctrl, c.resampler, c.volume = nil, nil, nil
}

// SetVolume 设置线性音量（0 为静音）
func (c *Channel) SetVolume(gain float64) {
	c.gain = gain
	if c.volume == nil {
		return
	}
	volume, silent := gainToVolume(gain)
	c.mixer.update(func() {
		c.volume.Volume = volume
		c.volume.Silent = silent
	})
}

// Volume 返回最近设置的线性音量
func (c *Channel) Volume() float64 {
	return c.gain
}

// SetPitch 设置播放速率倍数（同时改变音调）
func (c *Channel) SetPitch(pitch float64) {
	if pitch <= 0 {
		return
	}
	c.pitch = pitch
	if c.resampler == nil {
		return
	}
	c.mixer.update(func() { c.resampler.SetRatio(pitch) })
}

// Pitch 返回当前播放速率倍数
func (c *Channel) Pitch() float64 {
	return c.pitch
}

// IsPlaying 是否有音频在播放
func (c *Channel) IsPlaying() bool {
	return c.ctrl != nil
}
