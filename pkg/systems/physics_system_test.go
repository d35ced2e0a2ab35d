package systems

import (
	"math"
	"testing"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestPhysicsGravity(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhysicsSystem(em, config.ScreenWidth, config.ScreenHeight)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 100, Y: 100})
	ecs.AddComponent(em, id, &components.RigidBodyComponent{GravityScale: 1, Mass: 1})

	system.Update(0.1)

	rb, _ := ecs.GetComponent[*components.RigidBodyComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if !almostEqual(rb.VY, config.Gravity*0.1) {
		t.Errorf("VY = %f, want %f", rb.VY, config.Gravity*0.1)
	}
	if !almostEqual(pos.Y, 100+config.Gravity*0.1*0.1) {
		t.Errorf("Y = %f", pos.Y)
	}
}

func TestPhysicsForceIsClearedEachStep(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhysicsSystem(em, config.ScreenWidth, config.ScreenHeight)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 100, Y: 100})
	rb := &components.RigidBodyComponent{Mass: 2}
	ecs.AddComponent(em, id, rb)

	rb.AddForce(40, 0)
	system.Update(0.5)

	if !almostEqual(rb.VX, 10) {
		t.Errorf("VX = %f, want 10 (F/m*dt)", rb.VX)
	}
	if rb.ForceX != 0 || rb.ForceY != 0 {
		t.Errorf("forces should be cleared, got (%f, %f)", rb.ForceX, rb.ForceY)
	}
}

func TestPhysicsGroundClamp(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhysicsSystem(em, config.ScreenWidth, config.ScreenHeight)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 100, Y: config.ScreenHeight - 8})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: 16, Height: 16})
	rb := &components.RigidBodyComponent{GravityScale: 1, Mass: 1}
	ecs.AddComponent(em, id, rb)

	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.Y != config.ScreenHeight-8 {
		t.Errorf("Y = %f, want clamped to %f", pos.Y, float64(config.ScreenHeight-8))
	}
	if !rb.Grounded || rb.VY != 0 {
		t.Errorf("expected grounded with zero VY, got grounded=%v VY=%f", rb.Grounded, rb.VY)
	}
}

func TestPhysicsKinematicIgnoresBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhysicsSystem(em, config.ScreenWidth, config.ScreenHeight)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 10, Y: 5})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: 16, Height: 16})
	ecs.AddComponent(em, id, &components.RigidBodyComponent{VY: -100, Mass: 1, Kinematic: true})

	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if !almostEqual(pos.Y, -5) {
		t.Errorf("kinematic body should leave the screen, Y = %f", pos.Y)
	}
}
