package systems

import (
	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
)

// PointEffectSystem 飘分特效匀速上升
type PointEffectSystem struct {
	em *ecs.EntityManager
}

// NewPointEffectSystem 创建飘分特效系统
func NewPointEffectSystem(em *ecs.EntityManager) *PointEffectSystem {
	return &PointEffectSystem{em: em}
}

func (s *PointEffectSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PointEffectComponent, *components.PositionComponent](s.em) {
		effect, _ := ecs.GetComponent[*components.PointEffectComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		pos.Y -= effect.RiseSpeed * deltaTime
	}
}
