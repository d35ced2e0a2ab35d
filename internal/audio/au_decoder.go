package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gopxl/beep"
)

// Sun/NeXT .au 文件头（大端，至少 24 字节）
type auHeader struct {
	Magic      uint32 // ".snd"
	DataOffset uint32
	DataSize   uint32 // 未知时为 0xFFFFFFFF
	Encoding   uint32
	SampleRate uint32
	Channels   uint32
}

const (
	auMagic         = 0x2e736e64
	auEncodingULaw  = 1 // 8-bit μ-law
	auEncodingPCM16 = 3 // 16-bit 线性 PCM（大端）
)

// μ-law 到 16-bit PCM 的查表
var mulawTable = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// auStreamer 已解码的 .au 采样，实现 beep.StreamSeekCloser
type auStreamer struct {
	samples  []int16 // 交错排列
	channels int
	pos      int // 帧下标
}

// decodeAU 解码 .au 音频（μ-law 或 16-bit PCM，单声道或立体声）
func decodeAU(r io.Reader) (beep.StreamSeekCloser, beep.Format, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to read AU data: %w", err)
	}
	if len(data) < 24 {
		return nil, beep.Format{}, fmt.Errorf("AU data too short: %d bytes", len(data))
	}

	var header auHeader
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &header); err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to read AU header: %w", err)
	}
	if header.Magic != auMagic {
		return nil, beep.Format{}, fmt.Errorf("invalid AU magic number: 0x%08x", header.Magic)
	}
	if header.Channels < 1 || header.Channels > 2 {
		return nil, beep.Format{}, fmt.Errorf("unsupported AU channel count: %d", header.Channels)
	}
	offset := int(header.DataOffset)
	if offset < 24 || offset > len(data) {
		return nil, beep.Format{}, fmt.Errorf("invalid AU data offset: %d", offset)
	}
	payload := data[offset:]

	var samples []int16
	switch header.Encoding {
	case auEncodingULaw:
		samples = make([]int16, len(payload))
		for i, b := range payload {
			samples[i] = mulawTable[b]
		}
	case auEncodingPCM16:
		samples = make([]int16, len(payload)/2)
		for i := range samples {
			samples[i] = int16(binary.BigEndian.Uint16(payload[i*2:]))
		}
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported AU encoding: %d", header.Encoding)
	}

	channels := int(header.Channels)
	// 丢弃不完整的尾帧
	samples = samples[:len(samples)/channels*channels]

	format := beep.Format{
		SampleRate:  beep.SampleRate(header.SampleRate),
		NumChannels: channels,
		Precision:   2,
	}
	return &auStreamer{samples: samples, channels: channels}, format, nil
}

func (s *auStreamer) Stream(out [][2]float64) (int, bool) {
	total := s.Len()
	if s.pos >= total {
		return 0, false
	}
	n := 0
	for n < len(out) && s.pos < total {
		left := float64(s.samples[s.pos*s.channels]) / 32768
		right := left
		if s.channels == 2 {
			right = float64(s.samples[s.pos*2+1]) / 32768
		}
		out[n] = [2]float64{left, right}
		n++
		s.pos++
	}
	return n, true
}

func (s *auStreamer) Err() error { return nil }

func (s *auStreamer) Len() int { return len(s.samples) / s.channels }

func (s *auStreamer) Position() int { return s.pos }

func (s *auStreamer) Seek(p int) error {
	if p < 0 || p > s.Len() {
		return fmt.Errorf("AU seek position %d out of range [0, %d]", p, s.Len())
	}
	s.pos = p
	return nil
}

func (s *auStreamer) Close() error { return nil }
