package systems

import (
	"log"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/entities"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/types"
)

// PlayerInput 本帧的玩家操作
type PlayerInput struct {
	Horizontal float64 // -1 ~ 1
	Jump       bool
	Shoot      bool
}

// InputSource 玩家操作来源（前端键盘、脚本或测试）
type InputSource interface {
	PlayerInput() PlayerInput
}

// PlayerSystem 玩家移动、吐泡泡、拾取道具和受伤
type PlayerSystem struct {
	em       *ecs.EntityManager
	session  *game.GameSession
	input    InputSource
	contacts ContactSource
	cfg      *config.GameConfig
}

// NewPlayerSystem 创建玩家系统，input 为 nil 时玩家不动
func NewPlayerSystem(em *ecs.EntityManager, session *game.GameSession, input InputSource, contacts ContactSource, cfg *config.GameConfig) *PlayerSystem {
	return &PlayerSystem{
		em:       em,
		session:  session,
		input:    input,
		contacts: contacts,
		cfg:      cfg,
	}
}

// Update 先处理操作，再处理本帧接触（拾取、受伤）
func (s *PlayerSystem) Update(deltaTime float64) {
	id := s.session.PlayerEntity
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	if !ok {
		return
	}

	if player.ShootTimer > 0 {
		player.ShootTimer -= deltaTime
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id); ok && health.HurtTimer > 0 {
		health.HurtTimer -= deltaTime
	}

	if s.input != nil && s.session.Phase() != game.PhaseGameOver {
		s.applyInput(id, player, s.input.PlayerInput())
	}

	for _, c := range s.contacts.Contacts() {
		other, tag, ok := c.Other(id)
		if !ok || c.Phase == ContactExit {
			continue
		}
		switch tag {
		case types.TagItem:
			if c.Phase == ContactEnter {
				s.collect(other)
			}
		case types.TagEnemy:
			s.hurt(id)
		}
	}
}

func (s *PlayerSystem) applyInput(id ecs.EntityID, player *components.PlayerComponent, in PlayerInput) {
	rb, ok := ecs.GetComponent[*components.RigidBodyComponent](s.em, id)
	if !ok {
		return
	}

	speed := 0.0
	if movement, ok := ecs.GetComponent[*components.MovementComponent](s.em, id); ok {
		speed = movement.CurrentSpeed()
	}
	rb.VX = in.Horizontal * speed
	if in.Horizontal > 0 {
		player.Facing = 1
	} else if in.Horizontal < 0 {
		player.Facing = -1
	}

	if in.Jump && rb.Grounded {
		rb.VY = -player.JumpSpeed
		rb.Grounded = false
	}

	if in.Shoot && player.ShootTimer <= 0 {
		s.shoot(id, player)
	}
}

func (s *PlayerSystem) shoot(id ecs.EntityID, player *components.PlayerComponent) {
	shooter, ok := ecs.GetComponent[*components.ShootComponent](s.em, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return
	}

	x := pos.X + player.Facing*24
	if _, err := entities.NewShotBubble(s.em, s.cfg, x, pos.Y, player.Facing, shooter.CurrentForce()); err != nil {
		log.Printf("[PlayerSystem] Failed to shoot bubble: %v", err)
		return
	}
	player.ShootTimer = shooter.CurrentCooldown()
}

func (s *PlayerSystem) collect(itemID ecs.EntityID) {
	if s.em.IsMarkedForDestroy(itemID) {
		return
	}
	item, ok := ecs.GetComponent[*components.ItemComponent](s.em, itemID)
	if !ok {
		return
	}

	s.session.CollectItem(item.Type, item.Points)
	s.em.DestroyEntity(itemID)
	log.Printf("[PlayerSystem] Collected %s (+%d)", item.Type, item.Points)
}

// hurt 与敌人接触掉一条命并回到复活点
// 只在关卡进行中生效，护盾和受伤后的无敌时间内无效
func (s *PlayerSystem) hurt(id ecs.EntityID) {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	if !ok || health.Invulnerable || health.HurtTimer > 0 {
		return
	}
	if !s.session.LevelStarted() || s.session.LostLife() {
		return
	}

	s.session.LoseLife()
	health.HurtTimer = health.HurtCooldown

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id); ok {
		pos.X, pos.Y = health.RespawnX, health.RespawnY
	}
	if rb, ok := ecs.GetComponent[*components.RigidBodyComponent](s.em, id); ok {
		rb.VX, rb.VY = 0, 0
	}
}
