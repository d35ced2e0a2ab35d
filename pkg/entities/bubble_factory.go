package entities

import (
	"fmt"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/types"
)

const bubbleSize = 28.0

// NewBubbleEntity 创建泡泡实体
// 炸弹泡泡生成即可戳破（Armed），其它类型从 Idle 开始，需要外部 SetCanPop
func NewBubbleEntity(em *ecs.EntityManager, cfg *config.GameConfig, bubbleType types.BubbleType, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	state := components.BubbleIdle
	canPop := false
	if bubbleType == types.BubbleBomb {
		state = components.BubbleArmed
		canPop = true
	}

	name := bubbleType.String()
	label := ""
	if name != "" {
		label = name[:1]
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.BubbleComponent{
		Type:                 bubbleType,
		State:                state,
		CanPop:               canPop,
		MoveSpeed:            cfg.Bubbles.MoveSpeed,
		Points:               cfg.BubblePoints(bubbleType),
		OriginalGravityScale: config.BubbleRiseGravityScale,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.RigidBodyComponent{
		GravityScale: config.BubbleRiseGravityScale,
		Mass:         1,
		LinearDrag:   1,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  bubbleSize,
		Height: bubbleSize,
		Tag:    types.TagBubble,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Visible: true,
		Width:   bubbleSize,
		Height:  bubbleSize,
		Color:   bubbleColors[name],
		Label:   label,
	})

	return id, nil
}

// NewShotBubble 创建玩家吐出的泡泡
// 吐出的泡泡立即可戳破，并带有朝向方向的初速度
func NewShotBubble(em *ecs.EntityManager, cfg *config.GameConfig, x, y, facing, force float64) (ecs.EntityID, error) {
	id, err := NewBubbleEntity(em, cfg, types.BubbleNormal, x, y)
	if err != nil {
		return 0, err
	}

	bubble, _ := ecs.GetComponent[*components.BubbleComponent](em, id)
	bubble.CanPop = true
	bubble.State = components.BubbleArmed
	bubble.MoveSpeed *= facing

	rb, _ := ecs.GetComponent[*components.RigidBodyComponent](em, id)
	rb.VX = facing * force

	return id, nil
}
