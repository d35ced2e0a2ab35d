package systems

import (
	"testing"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/entities"
	"github.com/decker502/bubblebobble/pkg/game"
)

func TestEnemyPatrol(t *testing.T) {
	em, session, _, _ := newTestWorld()
	group, _ := entities.NewEnemyGroupEntity(em)
	session.EnemyGroupEntity = group
	system := NewEnemySystem(em, session, config.ScreenWidth)

	id, _ := entities.NewEnemyEntity(em, 100, 400)
	rb, _ := ecs.GetComponent[*components.RigidBodyComponent](em, id)
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)

	system.Update(0.016)
	if rb.VX != 0 {
		t.Fatal("enemies wait until the group is enabled")
	}

	active, _ := ecs.GetComponent[*components.ActiveComponent](em, group)
	active.Active = true
	system.Update(0.016)
	if rb.VX != enemy.Speed {
		t.Errorf("VX = %f, want %f", rb.VX, enemy.Speed)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X = config.ScreenWidth - 4
	system.Update(0.016)
	if enemy.Direction != -1 || rb.VX != -enemy.Speed {
		t.Errorf("enemy should turn at the right edge, dir=%f VX=%f", enemy.Direction, rb.VX)
	}
}

func TestLaunchEnemyAtDeath(t *testing.T) {
	em := ecs.NewEntityManager()
	id, _ := entities.NewEnemyEntity(em, 100, 100)

	if !LaunchEnemyAtDeath(em, id) {
		t.Fatal("first launch should succeed")
	}
	if LaunchEnemyAtDeath(em, id) {
		t.Error("second launch should be a no-op")
	}

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	rb, _ := ecs.GetComponent[*components.RigidBodyComponent](em, id)
	if !col.Disabled || rb.VY >= 0 || !rb.Kinematic {
		t.Errorf("launched enemy: disabled=%v VY=%f kinematic=%v", col.Disabled, rb.VY, rb.Kinematic)
	}
	if _, ok := ecs.GetComponent[*components.LifetimeComponent](em, id); !ok {
		t.Error("launched enemy should expire")
	}

	if LaunchEnemyAtDeath(em, em.CreateEntity()) {
		t.Error("entities without EnemyComponent cannot be launched")
	}
}

func TestEnemySystemClearsLevel(t *testing.T) {
	em, session, _, _ := newTestWorld()
	system := NewEnemySystem(em, session, config.ScreenWidth)
	id, _ := entities.NewEnemyEntity(em, 100, 100)

	session.SetPhase(game.PhaseStarted)
	system.Update(0.016)
	if session.Phase() != game.PhaseStarted {
		t.Fatal("level continues while enemies remain")
	}

	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
	system.Update(0.016)
	if session.Phase() != game.PhaseCleared {
		t.Errorf("phase = %s, want Cleared", session.Phase())
	}
}
