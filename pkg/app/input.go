package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/bubblebobble/pkg/systems"
)

// shopKeys 数字键 1~5 对应商店按钮 0~4
var shopKeys = map[ebiten.Key]int{
	ebiten.Key1: 0,
	ebiten.Key2: 1,
	ebiten.Key3: 2,
	ebiten.Key4: 3,
	ebiten.Key5: 4,
}

// keyboardInput 每帧采样一次键盘状态
type keyboardInput struct {
	current systems.PlayerInput
}

func (k *keyboardInput) poll() {
	var in systems.PlayerInput
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Horizontal--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Horizontal++
	}
	in.Jump = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace)
	in.Shoot = ebiten.IsKeyPressed(ebiten.KeyX) || ebiten.IsKeyPressed(ebiten.KeyJ)
	k.current = in
}

// PlayerInput 实现 systems.InputSource
func (k *keyboardInput) PlayerInput() systems.PlayerInput {
	return k.current
}
