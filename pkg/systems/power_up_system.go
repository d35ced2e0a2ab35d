package systems

import (
	"log"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/types"
)

// PowerUpStatusName 返回强化道具"已激活"标记的展示对象名称
func PowerUpStatusName(id string) string {
	return "power_up_" + id
}

// powerUpEffect 强化道具对玩家能力组件的作用
// apply 在能力缺失时返回 false
type powerUpEffect func(em *ecs.EntityManager, player ecs.EntityID, on bool) bool

var powerUpEffects = map[types.PowerUpKind]powerUpEffect{
	types.PowerUpForceBoost: func(em *ecs.EntityManager, player ecs.EntityID, on bool) bool {
		shoot, ok := ecs.GetComponent[*components.ShootComponent](em, player)
		if !ok {
			return false
		}
		shoot.ForceBoostIsActive = on
		return true
	},
	types.PowerUpRapidFire: func(em *ecs.EntityManager, player ecs.EntityID, on bool) bool {
		shoot, ok := ecs.GetComponent[*components.ShootComponent](em, player)
		if !ok {
			return false
		}
		shoot.RapidFireIsActive = on
		return true
	},
	types.PowerUpSpeedBoost: func(em *ecs.EntityManager, player ecs.EntityID, on bool) bool {
		movement, ok := ecs.GetComponent[*components.MovementComponent](em, player)
		if !ok {
			return false
		}
		movement.SpeedBoostIsActive = on
		return true
	},
	types.PowerUpShield: func(em *ecs.EntityManager, player ecs.EntityID, on bool) bool {
		health, ok := ecs.GetComponent[*components.HealthComponent](em, player)
		if !ok {
			return false
		}
		health.Invulnerable = on
		return true
	},
}

// PowerUpSystem 强化道具激活协议
//
// 状态：Inactive → Active（激活）→ Inactive（倒计时结束或主动取消）
// 重复激活会重新开始倒计时
type PowerUpSystem struct {
	em      *ecs.EntityManager
	session *game.GameSession
}

// NewPowerUpSystem 创建强化道具系统
func NewPowerUpSystem(em *ecs.EntityManager, session *game.GameSession) *PowerUpSystem {
	return &PowerUpSystem{em: em, session: session}
}

// ActivatePowerUp 激活强化道具
// 玩家缺少对应能力时静默失败并返回 false
func (s *PowerUpSystem) ActivatePowerUp(id ecs.EntityID) bool {
	pu, ok := ecs.GetComponent[*components.PowerUpComponent](s.em, id)
	if !ok {
		return false
	}
	effect, ok := powerUpEffects[pu.Kind]
	if !ok {
		return false
	}
	if !effect(s.em, s.session.PlayerEntity, true) {
		return false
	}

	pu.IsActive = true
	pu.Timer = 0
	pu.TimerFill = 1
	pu.TimerText = int(pu.Duration)
	s.setActiveStatus(pu, true)

	log.Printf("[PowerUpSystem] Activated %s for %.1fs", pu.ID, pu.Duration)
	return true
}

// DeactivatePowerUp 取消强化效果（可重复调用）
func (s *PowerUpSystem) DeactivatePowerUp(id ecs.EntityID) {
	pu, ok := ecs.GetComponent[*components.PowerUpComponent](s.em, id)
	if !ok {
		return
	}
	if effect, ok := powerUpEffects[pu.Kind]; ok {
		effect(s.em, s.session.PlayerEntity, false)
	}

	pu.IsActive = false
	s.setActiveStatus(pu, false)
}

// Reapply 把仍在生效的强化重新作用到当前玩家（换关后玩家实体重建）
// 不影响倒计时
func (s *PowerUpSystem) Reapply() {
	for _, id := range ecs.GetEntitiesWith1[*components.PowerUpComponent](s.em) {
		pu, _ := ecs.GetComponent[*components.PowerUpComponent](s.em, id)
		if !pu.IsActive {
			continue
		}
		if effect, ok := powerUpEffects[pu.Kind]; ok {
			effect(s.em, s.session.PlayerEntity, true)
		}
	}
}

// Update 推进激活中道具的倒计时，到期自动取消
func (s *PowerUpSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.PowerUpComponent](s.em) {
		pu, _ := ecs.GetComponent[*components.PowerUpComponent](s.em, id)
		if !pu.IsActive {
			continue
		}

		pu.Timer += deltaTime
		if pu.Duration > 0 {
			pu.TimerFill -= deltaTime / pu.Duration
		}
		if pu.TimerFill < 0 {
			pu.TimerFill = 0
		}
		pu.TimerText = int(pu.Duration) - int(pu.Timer)

		if pu.Timer >= pu.Duration {
			s.DeactivatePowerUp(id)
		}
	}
}

func (s *PowerUpSystem) setActiveStatus(pu *components.PowerUpComponent, active bool) {
	if pu.ActiveStatus == active {
		return
	}
	pu.ActiveStatus = active
	s.session.Presenter().SetActive(PowerUpStatusName(pu.ID), active)
}
