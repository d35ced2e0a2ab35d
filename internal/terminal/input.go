package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/bubblebobble/pkg/systems"
)

// holdFrames 终端没有按键抬起事件，一次按键视为按住这么多帧
const holdFrames = 8

// Action 键盘事件对应的前端操作
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionBuy
	ActionRestart
)

// KeyInput 把 tcell 按键事件转换为玩家操作
// 实现 systems.InputSource
type KeyInput struct {
	horizontal float64
	moveFrames int
	jumpFrames int
	shootFrame int
}

// NewKeyInput 创建键盘输入
func NewKeyInput() *KeyInput {
	return &KeyInput{}
}

// HandleKey 处理一次按键，商店购买时同时返回按钮编号
func (k *KeyInput) HandleKey(ev *tcell.EventKey) (Action, int) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyLeft:
		k.move(-1)
	case tcell.KeyRight:
		k.move(1)
	case tcell.KeyUp:
		k.jumpFrames = holdFrames
	case tcell.KeyRune:
		return k.handleRune(ev.Rune())
	}
	return ActionNone, 0
}

func (k *KeyInput) handleRune(r rune) (Action, int) {
	switch r {
	case 'q':
		return ActionQuit, 0
	case 'r':
		return ActionRestart, 0
	case 'a':
		k.move(-1)
	case 'd':
		k.move(1)
	case 'w', ' ':
		k.jumpFrames = holdFrames
	case 'x', 'j':
		k.shootFrame = 1
	case '1', '2', '3', '4', '5':
		return ActionBuy, int(r - '1')
	}
	return ActionNone, 0
}

func (k *KeyInput) move(direction float64) {
	k.horizontal = direction
	k.moveFrames = holdFrames
}

// PlayerInput 实现 systems.InputSource
func (k *KeyInput) PlayerInput() systems.PlayerInput {
	var in systems.PlayerInput
	if k.moveFrames > 0 {
		in.Horizontal = k.horizontal
	}
	in.Jump = k.jumpFrames > 0
	in.Shoot = k.shootFrame > 0
	return in
}

// Tick 每帧结束时调用，按住时间递减
func (k *KeyInput) Tick() {
	if k.moveFrames > 0 {
		k.moveFrames--
	}
	if k.jumpFrames > 0 {
		k.jumpFrames--
	}
	k.shootFrame = 0
}
