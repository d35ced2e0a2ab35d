package components

// FlashTextComponent 闪烁文字组件
// 用于 "HURRY UP!" 提示：每隔 Interval 秒切换一次可见性，直到被停止
type FlashTextComponent struct {
	// Name 文字对象名称（展示层据此切换可见性）
	Name string

	// Interval 切换间隔（秒）
	Interval float64

	// Elapsed 距上次切换的时间（秒）
	Elapsed float64

	// Visible 当前可见性
	Visible bool

	// IsActive 是否在闪烁
	IsActive bool
}
