package components

import "github.com/decker502/bubblebobble/pkg/types"

// BubbleState 泡泡状态
type BubbleState int

const (
	// BubbleIdle 刚生成，不能戳破，不能移动
	BubbleIdle BubbleState = iota
	// BubbleArmed 可戳破（炸弹泡泡生成即进入，或被爆炸等外部触发）
	BubbleArmed
	// BubbleFloating 进入平台区域：不受重力，水平移动
	BubbleFloating
	// BubblePopped 已戳破（终态）
	BubblePopped
)

// String 返回状态名称（用于日志）
func (s BubbleState) String() string {
	switch s {
	case BubbleIdle:
		return "Idle"
	case BubbleArmed:
		return "Armed"
	case BubbleFloating:
		return "Floating"
	case BubblePopped:
		return "Popped"
	default:
		return "Unknown"
	}
}

// BubbleComponent 泡泡组件
//
// 状态转换：
//   - Idle/Armed → Floating：进入平台触发区（仅 Fire/Bomb/Glitch）
//   - Floating → Idle/Armed：离开平台触发区，恢复重力并反转水平方向
//   - * → Popped：可戳破时与玩家接触
type BubbleComponent struct {
	Type  types.BubbleType
	State BubbleState

	// CanPop 是否可被玩家戳破
	CanPop bool

	// CanMove 是否在水平方向施力移动
	CanMove bool

	// MoveSpeed 水平推力，符号表示方向
	MoveSpeed float64

	// Points 戳破时获得的分数
	Points int

	// OriginalGravityScale 生成时的重力缩放，离开平台区时恢复
	OriginalGravityScale float64
}
