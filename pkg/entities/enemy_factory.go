package entities

import (
	"fmt"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/types"
)

const (
	enemySize        = 24.0
	enemyPatrolSpeed = 60.0

	// UndefeatableName 不死敌人的启用对象名称
	UndefeatableName = "undefeatable"
	// EnemyGroupName 普通敌人组的启用对象名称
	EnemyGroupName = "enemies"
)

// NewEnemyEntity 创建普通巡逻敌人
func NewEnemyEntity(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.EnemyComponent{Speed: enemyPatrolSpeed, Direction: 1})
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.RigidBodyComponent{GravityScale: 1, Mass: 1})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  enemySize,
		Height: enemySize,
		Tag:    types.TagEnemy,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Visible: true,
		Width:   enemySize,
		Height:  enemySize,
		Color:   ColorEnemy,
		Label:   "E",
	})

	return id, nil
}

// NewUndefeatableEntity 创建不死敌人（默认禁用，限时加速第二阶段启用）
func NewUndefeatableEntity(em *ecs.EntityManager, cfg *config.GameConfig, startX, startY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.ActiveComponent{Name: UndefeatableName})
	em.AddComponent(id, &components.UndefeatableComponent{
		Speed:        cfg.Undefeatable.Speed,
		StopInterval: cfg.Undefeatable.StopInterval,
		StopTime:     cfg.Undefeatable.StopTime,
		StartX:       startX,
		StartY:       startY,
	})
	em.AddComponent(id, &components.PositionComponent{X: startX, Y: startY})
	em.AddComponent(id, &components.RigidBodyComponent{Mass: 1, Kinematic: true})
	em.AddComponent(id, &components.CollisionComponent{
		Width:    enemySize,
		Height:   enemySize,
		Tag:      types.TagEnemy,
		Disabled: true,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Width:  enemySize,
		Height: enemySize,
		Color:  ColorUndefeatable,
		Label:  "U",
	})

	return id, nil
}
