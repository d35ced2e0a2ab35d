package entities

import (
	"fmt"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/types"
)

// NewRegionEntity 创建触发区域（平台、传送区、地面火焰）
func NewRegionEntity(em *ecs.EntityManager, tag types.Tag, rect config.Rect) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	var c = ColorPlatform
	switch tag {
	case types.TagPlatform:
	case types.TagTeleport:
		c = ColorTeleport
	case types.TagGroundFire:
		c = ColorGroundFire
	default:
		return 0, fmt.Errorf("tag %s is not a region tag", tag)
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: rect.X, Y: rect.Y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:     rect.Width,
		Height:    rect.Height,
		Tag:       tag,
		IsTrigger: true,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Visible: true,
		Width:   rect.Width,
		Height:  rect.Height,
		Color:   c,
	})

	return id, nil
}

// NewGroundFireEntity 创建火焰泡泡留下的限时地面火焰
func NewGroundFireEntity(em *ecs.EntityManager, rect config.Rect, lifetime float64) (ecs.EntityID, error) {
	id, err := NewRegionEntity(em, types.TagGroundFire, rect)
	if err != nil {
		return 0, err
	}
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: lifetime})
	return id, nil
}
