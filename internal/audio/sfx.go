package audio

import (
	"log"

	"github.com/gopxl/beep/effects"
)

// SFXPlayer 单次音效播放，实现 game.SFXPlayer
type SFXPlayer struct {
	mixer   *Mixer
	library *Library
}

// NewSFXPlayer 创建音效播放器
func NewSFXPlayer(mixer *Mixer, library *Library) *SFXPlayer {
	return &SFXPlayer{mixer: mixer, library: library}
}

// PlayOnce 按指定音量播放一次，可与其他音效叠加
func (p *SFXPlayer) PlayOnce(clipID string, gain float64) {
	buffer, ok := p.library.Clip(clipID)
	if !ok {
		log.Printf("[Audio] Warning: sound clip %q not loaded", clipID)
		return
	}
	volume, silent := gainToVolume(gain)
	if silent {
		return
	}
	p.mixer.Add(&effects.Volume{
		Streamer: buffer.Streamer(0, buffer.Len()),
		Base:     2,
		Volume:   volume,
	})
}
