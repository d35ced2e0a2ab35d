package audio

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/gopxl/beep"
)

// SampleRate 混音输出采样率，与 ebiten 音频上下文一致
const SampleRate = beep.SampleRate(48000)

// Mixer 所有音乐轨和音效的混音器
//
// 音频设备在自己的 goroutine 中拉取数据，
// 对流的任何修改都要持有 mu
type Mixer struct {
	mu     sync.Mutex
	mixer  beep.Mixer
	frames [][2]float64
}

// NewMixer 创建混音器
func NewMixer() *Mixer {
	return &Mixer{}
}

// Add 加入一条流，流结束后自动移除
func (m *Mixer) Add(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mixer.Add(s)
}

// Len 返回正在播放的流数量
func (m *Mixer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixer.Len()
}

// Clear 停止所有流
func (m *Mixer) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mixer.Clear()
}

// update 在锁内修改流的参数
func (m *Mixer) update(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn()
}

// Stream 实现 beep.Streamer，没有流时输出静音
func (m *Mixer) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixer.Stream(samples)
}

// Err 实现 beep.Streamer
func (m *Mixer) Err() error { return nil }

// Read 以 32 位浮点小端立体声输出混音结果（ebiten NewPlayerF32 的数据格式）
func (m *Mixer) Read(p []byte) (int, error) {
	const frameSize = 8
	count := len(p) / frameSize
	if count == 0 {
		return 0, nil
	}
	if cap(m.frames) < count {
		m.frames = make([][2]float64, count)
	}
	frames := m.frames[:count]
	m.Stream(frames)

	for i, frame := range frames {
		binary.LittleEndian.PutUint32(p[i*frameSize:], math.Float32bits(float32(frame[0])))
		binary.LittleEndian.PutUint32(p[i*frameSize+4:], math.Float32bits(float32(frame[1])))
	}
	return count * frameSize, nil
}

// gainToVolume 把线性增益写入 effects.Volume（以 2 为底）
func gainToVolume(gain float64) (volume float64, silent bool) {
	if gain <= 0 {
		return 0, true
	}
	return math.Log2(gain), false
}
