package components

// FadeKind 渐变种类
type FadeKind int

const (
	// FadeCrossfade 两个音乐通道之间的音量交叉渐变
	FadeCrossfade FadeKind = iota
	// FadePitchUp 当前通道音调升高到加速音调
	FadePitchUp
	// FadePitchDown 当前通道音调回落到原始音调
	FadePitchDown
)

// Fade 按帧推进的渐变状态
// 取消渐变即替换为新的状态对象（或置 nil），不做补偿
type Fade struct {
	Kind     FadeKind
	Elapsed  float64 // 已经过时间（秒）
	Duration float64 // 总时长（秒）

	// From, To 渐变起止通道下标（交叉渐变）或音调值（音调渐变）
	From float64
	To   float64

	// Channel 音调渐变作用的音轨（开始时确定）
	Channel int
}
