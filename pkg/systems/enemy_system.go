package systems

import (
	"log"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/game"
)

const (
	launchSpeed    = 320.0
	launchLifetime = 1.5
	patrolMargin   = 16.0
)

// LaunchEnemyAtDeath 弹飞敌人：禁用碰撞盒，向上抛出，一段时间后移除
// 重复调用无副作用
func LaunchEnemyAtDeath(em *ecs.EntityManager, id ecs.EntityID) bool {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !ok || enemy.LaunchedAtDeath {
		return false
	}
	enemy.LaunchedAtDeath = true

	if rb, ok := ecs.GetComponent[*components.RigidBodyComponent](em, id); ok {
		rb.VX = 0
		rb.VY = -launchSpeed
		rb.GravityScale = 1
		rb.Kinematic = true
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		col.Disabled = true
	}
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: launchLifetime})

	log.Printf("[EnemySystem] Enemy %d launched at death", id)
	return true
}

// EnemySystem 普通敌人巡逻，敌人全部消灭后关卡进入 Cleared 阶段
type EnemySystem struct {
	em      *ecs.EntityManager
	session *game.GameSession
	width   float64
}

// NewEnemySystem 创建敌人系统，width 为巡逻边界
func NewEnemySystem(em *ecs.EntityManager, session *game.GameSession, width float64) *EnemySystem {
	return &EnemySystem{em: em, session: session, width: width}
}

// Update 敌人组启用后左右巡逻，碰到边界掉头
func (s *EnemySystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.RigidBodyComponent](s.em)

	if len(ids) == 0 {
		if s.session.LevelStarted() {
			s.session.SetPhase(game.PhaseCleared)
		}
		return
	}

	moving := isActive(s.em, s.session.EnemyGroupEntity)

	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if enemy.LaunchedAtDeath {
			continue
		}
		rb, _ := ecs.GetComponent[*components.RigidBodyComponent](s.em, id)
		if !moving {
			rb.VX = 0
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if pos.X <= patrolMargin {
			enemy.Direction = 1
		} else if pos.X >= s.width-patrolMargin {
			enemy.Direction = -1
		}
		rb.VX = enemy.Speed * enemy.Direction
	}
}
