package systems

import (
	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
)

// PhysicsSystem 最小刚体积分器
// 重力、外力和线性阻尼，外加屏幕边界约束（地面、天花板和两侧墙）
type PhysicsSystem struct {
	em            *ecs.EntityManager
	width, height float64
}

// NewPhysicsSystem 创建物理系统，边界为 [0,width] × [0,height]
func NewPhysicsSystem(em *ecs.EntityManager, width, height float64) *PhysicsSystem {
	return &PhysicsSystem{em: em, width: width, height: height}
}

// Update 积分所有刚体
func (s *PhysicsSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.RigidBodyComponent](s.em)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		rb, _ := ecs.GetComponent[*components.RigidBodyComponent](s.em, id)

		mass := rb.Mass
		if mass <= 0 {
			mass = 1
		}

		ax := rb.ForceX / mass
		ay := rb.ForceY/mass + config.Gravity*rb.GravityScale

		rb.VX += ax * deltaTime
		rb.VY += ay * deltaTime

		if rb.LinearDrag > 0 {
			damping := 1 - rb.LinearDrag*deltaTime
			if damping < 0 {
				damping = 0
			}
			rb.VX *= damping
			rb.VY *= damping
		}

		pos.X += rb.VX * deltaTime
		pos.Y += rb.VY * deltaTime

		rb.ForceX, rb.ForceY = 0, 0

		if !rb.Kinematic {
			s.clampToBounds(id, pos, rb)
		}
	}
}

// clampToBounds 将实体限制在屏幕内，并记录是否着地
func (s *PhysicsSystem) clampToBounds(id ecs.EntityID, pos *components.PositionComponent, rb *components.RigidBodyComponent) {
	halfW, halfH := 0.0, 0.0
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		halfW, halfH = col.Width/2, col.Height/2
	}

	if pos.X < halfW {
		pos.X = halfW
		rb.VX = 0
	} else if pos.X > s.width-halfW {
		pos.X = s.width - halfW
		rb.VX = 0
	}

	rb.Grounded = false
	if pos.Y < halfH {
		pos.Y = halfH
		rb.VY = 0
	} else if pos.Y >= s.height-halfH {
		pos.Y = s.height - halfH
		if rb.VY > 0 {
			rb.VY = 0
		}
		rb.Grounded = true
	}
}
