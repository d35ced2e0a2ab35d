package audio

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// Library 已解码到内存的音频资源
// 所有资源统一重采样到 SampleRate
type Library struct {
	clips map[string]*beep.Buffer
}

// NewLibrary 创建空的资源库
func NewLibrary() *Library {
	return &Library{clips: make(map[string]*beep.Buffer)}
}

// LoadLibrary 按 资源ID→文件路径 加载音频
// 单个文件加载失败只记录警告，对应资源保持缺失（播放时静音）
func LoadLibrary(clips map[string]string) *Library {
	lib := NewLibrary()

	ids := make([]string, 0, len(clips))
	for id := range clips {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := lib.LoadFile(id, clips[id]); err != nil {
			log.Printf("[Audio] Warning: %v", err)
			continue
		}
		log.Printf("[Audio] Loaded clip %s from %s", id, clips[id])
	}
	return lib
}

// LoadFile 从磁盘解码一个音频文件
func (l *Library) LoadFile(clipID, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open clip %s: %w", clipID, err)
	}
	defer f.Close()

	if err := l.Load(clipID, filepath.Ext(path), f); err != nil {
		return fmt.Errorf("failed to load clip %s from %s: %w", clipID, path, err)
	}
	return nil
}

// Load 按扩展名（.wav/.ogg/.mp3/.au）解码音频数据
func (l *Library) Load(clipID, ext string, r io.Reader) error {
	streamer, format, err := decode(strings.ToLower(ext), r)
	if err != nil {
		return err
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, SampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(source)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}

	l.clips[clipID] = buffer
	return nil
}

func decode(ext string, r io.Reader) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case ".wav":
		return wav.Decode(r)
	case ".ogg":
		return vorbis.Decode(io.NopCloser(r))
	case ".mp3":
		return mp3.Decode(io.NopCloser(r))
	case ".au":
		return decodeAU(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", ext)
	}
}

// Add 直接登记已解码的音频
func (l *Library) Add(clipID string, buffer *beep.Buffer) {
	l.clips[clipID] = buffer
}

// Clip 查找音频
func (l *Library) Clip(clipID string) (*beep.Buffer, bool) {
	buffer, ok := l.clips[clipID]
	return buffer, ok
}

// Len 返回已加载的音频数量
func (l *Library) Len() int {
	return len(l.clips)
}
