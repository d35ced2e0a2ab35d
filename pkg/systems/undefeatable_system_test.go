package systems

import (
	"testing"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/entities"
)

func TestUndefeatableChaseCycle(t *testing.T) {
	em, session, _, cfg := newTestWorld()
	cfg.Undefeatable.Speed = 96
	cfg.Undefeatable.StopInterval = 2
	cfg.Undefeatable.StopTime = 2

	player, _ := entities.NewPlayerEntity(em, cfg, 200, 100)
	session.PlayerEntity = player
	id, err := entities.NewUndefeatableEntity(em, cfg, 100, 100)
	if err != nil {
		t.Fatalf("NewUndefeatableEntity: %v", err)
	}

	system := NewUndefeatableSystem(em, session)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	rb, _ := ecs.GetComponent[*components.RigidBodyComponent](em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	u, _ := ecs.GetComponent[*components.UndefeatableComponent](em, id)

	system.Update(1)
	if rb.VX != 0 || pos.X != 100 {
		t.Fatal("disabled undefeatable must not move")
	}

	// 启用前被挪走，启用时应回到出生点
	pos.X, pos.Y = 300, 300
	active, _ := ecs.GetComponent[*components.ActiveComponent](em, id)
	active.Active = true

	system.Update(0.5)
	if pos.X != 100 || pos.Y != 100 {
		t.Errorf("enable should teleport to start, got (%f, %f)", pos.X, pos.Y)
	}
	if col.Disabled || !sprite.Visible {
		t.Error("enabled undefeatable should be visible and collidable")
	}
	if !almostEqual(rb.VX, 48) || !almostEqual(rb.VY, 0) {
		t.Errorf("chase velocity = (%f, %f), want (48, 0)", rb.VX, rb.VY)
	}

	system.Update(2)
	if rb.VX != 0 || rb.VY != 0 {
		t.Errorf("should pause after StopInterval, velocity = (%f, %f)", rb.VX, rb.VY)
	}

	system.Update(2)
	if u.Timer != 0 {
		t.Errorf("cycle should restart after StopTime, timer = %f", u.Timer)
	}

	system.Update(0.5)
	if rb.VX <= 0 {
		t.Error("should chase again after the pause")
	}

	active.Active = false
	system.Update(0.1)
	if !col.Disabled || sprite.Visible || rb.VX != 0 {
		t.Error("disabling should hide, stop and disable the collider")
	}
}
