package entities

import (
	"fmt"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/types"
)

const itemSize = 20.0

// NewItemEntity 在生成点创建可拾取道具
func NewItemEntity(em *ecs.EntityManager, cfg *config.GameConfig, itemType types.ItemType, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if itemType == types.ItemUnknown {
		return 0, fmt.Errorf("cannot create item of unknown type")
	}

	points := 0
	if cfg != nil {
		points = cfg.ItemPoints(itemType)
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.ItemComponent{Type: itemType, Points: points})
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:     itemSize,
		Height:    itemSize,
		Tag:       types.TagItem,
		IsTrigger: true,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Visible: true,
		Width:   itemSize,
		Height:  itemSize,
		Color:   ColorItem,
		Label:   itemType.String(),
	})

	return id, nil
}
