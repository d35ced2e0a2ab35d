package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// StartSpeaker 通过 beep speaker 直接输出混音（终端前端使用）
func StartSpeaker(mixer *Mixer) error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(mixer)
	return nil
}

// CloseSpeaker 关闭音频设备
func CloseSpeaker() {
	speaker.Close()
}

// NewEbitenPlayer 把混音接到 ebiten 音频上下文（窗口前端使用）
// ctx 的采样率必须为 SampleRate
func NewEbitenPlayer(ctx *ebitenaudio.Context, mixer *Mixer) (*ebitenaudio.Player, error) {
	if ctx.SampleRate() != int(SampleRate) {
		return nil, fmt.Errorf("audio context sample rate %d, want %d", ctx.SampleRate(), int(SampleRate))
	}
	player, err := ctx.NewPlayerF32(mixer)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player: %w", err)
	}
	player.SetBufferSize(100 * time.Millisecond)
	player.Play()
	return player, nil
}
