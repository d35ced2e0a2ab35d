package components

import "github.com/decker502/bubblebobble/pkg/types"

// PowerUpComponent 商店强化道具
// 状态：Inactive → Active → Inactive，由倒计时驱动
type PowerUpComponent struct {
	ID    string
	Kind  types.PowerUpKind
	Price int

	// Duration 持续时间（秒）
	Duration float64
	// Timer 已激活时间（秒）
	Timer float64

	IsActive bool

	// TimerFill 计时条填充比例（1 → 0）
	TimerFill float64
	// TimerText 剩余整秒数
	TimerText int

	// ActiveStatus 商店界面上的"已激活"标记
	ActiveStatus bool
}
