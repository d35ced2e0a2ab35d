package systems

import (
	"math"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/game"
)

// UndefeatableSystem 不死敌人追击
//
// 启用时传送回出生点；之后循环：朝玩家加速 StopInterval 秒，再原地停顿 StopTime 秒
type UndefeatableSystem struct {
	em      *ecs.EntityManager
	session *game.GameSession
}

// NewUndefeatableSystem 创建不死敌人追击系统
func NewUndefeatableSystem(em *ecs.EntityManager, session *game.GameSession) *UndefeatableSystem {
	return &UndefeatableSystem{em: em, session: session}
}

// Update 处理启用/停用边沿，并推进追击与停顿计时
func (s *UndefeatableSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.UndefeatableComponent, *components.PositionComponent, *components.RigidBodyComponent](s.em)

	for _, id := range ids {
		u, _ := ecs.GetComponent[*components.UndefeatableComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		rb, _ := ecs.GetComponent[*components.RigidBodyComponent](s.em, id)

		active := isActive(s.em, id)
		switch {
		case active && !u.WasActive:
			s.enable(id, u, pos, rb)
		case !active && u.WasActive:
			s.disable(id, rb)
		}
		u.WasActive = active

		if !active {
			continue
		}

		u.Timer += deltaTime
		switch {
		case u.Timer < u.StopInterval:
			s.chase(pos, rb, u.Speed*deltaTime)
		case u.Timer < u.StopInterval+u.StopTime:
			rb.VX, rb.VY = 0, 0
		default:
			u.Timer = 0
		}
	}
}

// chase 沿指向玩家的单位向量加速
func (s *UndefeatableSystem) chase(pos *components.PositionComponent, rb *components.RigidBodyComponent, dv float64) {
	target, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.session.PlayerEntity)
	if !ok {
		return
	}
	dx, dy := target.X-pos.X, target.Y-pos.Y
	dist := math.Hypot(dx, dy)
	if dist < 1e-6 {
		return
	}
	rb.VX += dx / dist * dv
	rb.VY += dy / dist * dv
}

func (s *UndefeatableSystem) enable(id ecs.EntityID, u *components.UndefeatableComponent, pos *components.PositionComponent, rb *components.RigidBodyComponent) {
	pos.X, pos.Y = u.StartX, u.StartY
	rb.VX, rb.VY = 0, 0
	u.Timer = 0

	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		col.Disabled = false
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
		sprite.Visible = true
	}
}

func (s *UndefeatableSystem) disable(id ecs.EntityID, rb *components.RigidBodyComponent) {
	rb.VX, rb.VY = 0, 0

	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		col.Disabled = true
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
		sprite.Visible = false
	}
}
