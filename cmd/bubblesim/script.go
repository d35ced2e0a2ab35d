package main

import (
	"math/rand"

	"github.com/decker502/bubblebobble/pkg/systems"
)

// scriptInput 无界面运行时的自动操作：来回走动，随机跳跃和吐泡泡
type scriptInput struct {
	rng       *rand.Rand
	direction float64
	frames    int
	current   systems.PlayerInput
}

const (
	turnFrames = 90
	jumpChance = 0.02
	shootEvery = 20
)

func newScriptInput(rng *rand.Rand) *scriptInput {
	return &scriptInput{rng: rng, direction: 1}
}

// step 每帧调用一次，生成下一帧的操作
func (s *scriptInput) step() {
	s.frames++
	if s.frames%turnFrames == 0 {
		s.direction = -s.direction
	}
	s.current = systems.PlayerInput{
		Horizontal: s.direction,
		Jump:       s.rng.Float64() < jumpChance,
		Shoot:      s.frames%shootEvery == 0,
	}
}

func (s *scriptInput) PlayerInput() systems.PlayerInput {
	return s.current
}
