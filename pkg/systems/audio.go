package systems

// SFXPlayer 系统播放音效所需的最小接口
type SFXPlayer interface {
	PlaySFX(clipID string)
}

// MusicController 限时加速需要的音乐控制
type MusicController interface {
	SFXPlayer
	SpeedUpMusic()
	SlowDownMusic()
}

// nopAudio 未注入音频时使用
type nopAudio struct{}

func (nopAudio) PlaySFX(string) {}
func (nopAudio) SpeedUpMusic()  {}
func (nopAudio) SlowDownMusic() {}
