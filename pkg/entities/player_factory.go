package entities

import (
	"fmt"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/types"
)

const (
	playerSize      = 24.0
	playerJumpSpeed = 360.0
)

// NewPlayerEntity 创建玩家实体
//
// 玩家拥有三种能力组件，强化道具按能力生效：
//   - ShootComponent：推力加成、连射
//   - MovementComponent：移动加速
//   - HealthComponent：护盾
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PlayerComponent{
		Name:      "player",
		Facing:    1,
		JumpSpeed: playerJumpSpeed,
	})
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.RigidBodyComponent{
		GravityScale: 1,
		Mass:         1,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  playerSize,
		Height: playerSize,
		Tag:    types.TagPlayer,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Visible: true,
		Width:   playerSize,
		Height:  playerSize,
		Color:   ColorPlayer,
		Label:   "P",
	})

	em.AddComponent(id, &components.HealthComponent{
		HurtCooldown: cfg.Player.HurtCooldown,
		RespawnX:     x,
		RespawnY:     y,
	})
	em.AddComponent(id, &components.ShootComponent{
		Force:              cfg.Player.ShootForce,
		ForceBoostMultiple: cfg.Player.ForceBoostMultiple,
		Cooldown:           cfg.Player.ShootCooldown,
		RapidFireMultiple:  cfg.Player.RapidFireMultiple,
	})
	em.AddComponent(id, &components.MovementComponent{
		Speed:              cfg.Player.MoveSpeed,
		SpeedBoostMultiple: cfg.Player.SpeedBoostMultiple,
	})

	return id, nil
}
