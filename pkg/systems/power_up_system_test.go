package systems

import (
	"testing"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/entities"
	"github.com/decker502/bubblebobble/pkg/types"
)

func newPowerUp(em *ecs.EntityManager, kind types.PowerUpKind, duration float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PowerUpComponent{ID: kind.String(), Kind: kind, Duration: duration})
	return id
}

func TestPowerUpActivation(t *testing.T) {
	tests := []struct {
		kind    types.PowerUpKind
		applied func(em *ecs.EntityManager, player ecs.EntityID) bool
	}{
		{types.PowerUpForceBoost, func(em *ecs.EntityManager, p ecs.EntityID) bool {
			c, _ := ecs.GetComponent[*components.ShootComponent](em, p)
			return c.ForceBoostIsActive
		}},
		{types.PowerUpRapidFire, func(em *ecs.EntityManager, p ecs.EntityID) bool {
			c, _ := ecs.GetComponent[*components.ShootComponent](em, p)
			return c.RapidFireIsActive
		}},
		{types.PowerUpSpeedBoost, func(em *ecs.EntityManager, p ecs.EntityID) bool {
			c, _ := ecs.GetComponent[*components.MovementComponent](em, p)
			return c.SpeedBoostIsActive
		}},
		{types.PowerUpShield, func(em *ecs.EntityManager, p ecs.EntityID) bool {
			c, _ := ecs.GetComponent[*components.HealthComponent](em, p)
			return c.Invulnerable
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			em, session, presenter, cfg := newTestWorld()
			player, err := entities.NewPlayerEntity(em, cfg, 100, 100)
			if err != nil {
				t.Fatalf("NewPlayerEntity: %v", err)
			}
			session.PlayerEntity = player

			system := NewPowerUpSystem(em, session)
			id := newPowerUp(em, tt.kind, 10)

			if !system.ActivatePowerUp(id) {
				t.Fatal("activation should succeed")
			}
			pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, id)
			if !pu.IsActive || !pu.ActiveStatus || pu.TimerFill != 1 {
				t.Errorf("unexpected state after activation: %+v", pu)
			}
			if !tt.applied(em, player) {
				t.Error("effect not applied")
			}
			if !presenter.active[PowerUpStatusName(pu.ID)] {
				t.Error("active status should be shown")
			}

			system.Update(2.5)
			if !almostEqual(pu.TimerFill, 0.75) || pu.TimerText != 8 {
				t.Errorf("after 2.5s: fill=%f text=%d, want 0.75 and 8", pu.TimerFill, pu.TimerText)
			}

			system.Update(8)
			if pu.IsActive || pu.ActiveStatus {
				t.Error("power-up should expire")
			}
			if tt.applied(em, player) {
				t.Error("effect should be reverted on expiry")
			}
			if presenter.active[PowerUpStatusName(pu.ID)] {
				t.Error("active status should be hidden")
			}
		})
	}
}

func TestPowerUpMissingCapability(t *testing.T) {
	em, session, _, _ := newTestWorld()
	player := em.CreateEntity()
	ecs.AddComponent(em, player, &components.MovementComponent{Speed: 100, SpeedBoostMultiple: 2})
	session.PlayerEntity = player

	system := NewPowerUpSystem(em, session)
	shield := newPowerUp(em, types.PowerUpShield, 5)

	if system.ActivatePowerUp(shield) {
		t.Error("shield without health capability should fail")
	}
	pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, shield)
	if pu.IsActive {
		t.Error("failed activation must not mark the power-up active")
	}

	system.DeactivatePowerUp(shield)
	system.DeactivatePowerUp(shield)
}

func TestPowerUpReactivationRestartsCountdown(t *testing.T) {
	em, session, _, _ := newTestWorld()
	player, _ := entities.NewPlayerEntity(em, config.DefaultGameConfig(), 0, 0)
	session.PlayerEntity = player

	system := NewPowerUpSystem(em, session)
	id := newPowerUp(em, types.PowerUpSpeedBoost, 4)

	system.ActivatePowerUp(id)
	system.Update(3)
	system.ActivatePowerUp(id)
	system.Update(3)

	pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, id)
	if !pu.IsActive {
		t.Error("reactivated power-up should still be active")
	}
	if !almostEqual(pu.Timer, 3) {
		t.Errorf("timer = %f, want 3", pu.Timer)
	}
}

func TestPowerUpReapplyToNewPlayer(t *testing.T) {
	em, session, _, cfg := newTestWorld()
	first, _ := entities.NewPlayerEntity(em, cfg, 0, 0)
	session.PlayerEntity = first

	system := NewPowerUpSystem(em, session)
	id := newPowerUp(em, types.PowerUpRapidFire, 10)
	system.ActivatePowerUp(id)
	system.Update(4)

	second, _ := entities.NewPlayerEntity(em, cfg, 0, 0)
	session.PlayerEntity = second
	system.Reapply()

	shoot, _ := ecs.GetComponent[*components.ShootComponent](em, second)
	if !shoot.RapidFireIsActive {
		t.Error("active power-up should carry over to the new player")
	}
	pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, id)
	if !almostEqual(pu.Timer, 4) {
		t.Errorf("Reapply must not reset the countdown, timer = %f", pu.Timer)
	}
}
