package systems

import (
	"log"
	"math"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/entities"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/types"
)

// popAction 泡泡戳破时按类型执行的反应
type popAction func(s *BubbleSystem, id ecs.EntityID, bubble *components.BubbleComponent, pos *components.PositionComponent)

// popActions 按泡泡类型分派的戳破反应，未列出的类型使用 defaultPop
var popActions = map[types.BubbleType]popAction{
	types.BubbleFire: firePop,
	types.BubbleBomb: bombPop,
}

const (
	groundFireWidth  = 64.0
	groundFireHeight = 16.0
)

// BubbleSystem 泡泡状态机
//
// 状态转换：
//   - 平台触发区进入（仅 Fire/Bomb/Glitch）：关闭重力、速度归零、开始水平移动 → Floating
//   - 平台触发区离开：恢复重力、停止移动、水平方向反转 → 回到悬浮前的状态
//   - 可戳破时与玩家接触（进入或停留）→ Popped
type BubbleSystem struct {
	em       *ecs.EntityManager
	session  *game.GameSession
	audio    SFXPlayer
	contacts ContactSource
	cfg      *config.GameConfig
}

// NewBubbleSystem 创建泡泡系统
func NewBubbleSystem(em *ecs.EntityManager, session *game.GameSession, audio SFXPlayer, contacts ContactSource, cfg *config.GameConfig) *BubbleSystem {
	if audio == nil {
		audio = nopAudio{}
	}
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	return &BubbleSystem{
		em:       em,
		session:  session,
		audio:    audio,
		contacts: contacts,
		cfg:      cfg,
	}
}

// Update 处理本帧接触事件，然后为悬浮泡泡施加水平推力
func (s *BubbleSystem) Update(deltaTime float64) {
	for _, c := range s.contacts.Contacts() {
		if c.TagA == types.TagBubble {
			s.handleContact(c.A, c.TagB, c.Phase)
		}
		if c.TagB == types.TagBubble {
			s.handleContact(c.B, c.TagA, c.Phase)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BubbleComponent, *components.RigidBodyComponent](s.em) {
		bubble, _ := ecs.GetComponent[*components.BubbleComponent](s.em, id)
		if bubble.State != components.BubbleFloating || !bubble.CanMove {
			continue
		}
		rb, _ := ecs.GetComponent[*components.RigidBodyComponent](s.em, id)
		rb.AddForce(bubble.MoveSpeed, 0)
	}
}

func (s *BubbleSystem) handleContact(id ecs.EntityID, other types.Tag, phase ContactPhase) {
	bubble, ok := ecs.GetComponent[*components.BubbleComponent](s.em, id)
	if !ok || bubble.State == components.BubblePopped {
		return
	}

	switch other {
	case types.TagPlatform:
		switch phase {
		case ContactEnter:
			s.enterPlatform(id, bubble)
		case ContactExit:
			s.exitPlatform(id, bubble)
		}
	case types.TagPlayer:
		if phase == ContactEnter || phase == ContactStay {
			s.Pop(id)
		}
	}
}

func (s *BubbleSystem) enterPlatform(id ecs.EntityID, bubble *components.BubbleComponent) {
	if !bubble.Type.FloatsOnPlatform() || bubble.State == components.BubbleFloating {
		return
	}
	rb, ok := ecs.GetComponent[*components.RigidBodyComponent](s.em, id)
	if !ok {
		return
	}

	rb.GravityScale = 0
	rb.VX, rb.VY = 0, 0
	bubble.CanMove = true
	bubble.State = components.BubbleFloating
}

func (s *BubbleSystem) exitPlatform(id ecs.EntityID, bubble *components.BubbleComponent) {
	if !bubble.Type.FloatsOnPlatform() || bubble.State != components.BubbleFloating {
		return
	}
	rb, ok := ecs.GetComponent[*components.RigidBodyComponent](s.em, id)
	if !ok {
		return
	}

	rb.GravityScale = bubble.OriginalGravityScale
	bubble.CanMove = false
	bubble.MoveSpeed *= -1
	bubble.State = restingState(bubble)
}

// restingState 不悬浮时的状态由 CanPop 决定
func restingState(bubble *components.BubbleComponent) components.BubbleState {
	if bubble.CanPop {
		return components.BubbleArmed
	}
	return components.BubbleIdle
}

// SetCanPop 外部（爆炸等）启用或禁用泡泡的可戳破状态
func (s *BubbleSystem) SetCanPop(id ecs.EntityID, canPop bool) {
	bubble, ok := ecs.GetComponent[*components.BubbleComponent](s.em, id)
	if !ok || bubble.State == components.BubblePopped {
		return
	}
	bubble.CanPop = canPop
	if bubble.State != components.BubbleFloating {
		bubble.State = restingState(bubble)
	}
}

// Pop 戳破泡泡
// 立即隐藏并禁用碰撞盒，执行类型对应的反应，然后加分并显示飘分
// 不可戳破或已戳破的泡泡返回 false
func (s *BubbleSystem) Pop(id ecs.EntityID) bool {
	bubble, ok := ecs.GetComponent[*components.BubbleComponent](s.em, id)
	if !ok || !bubble.CanPop || bubble.State == components.BubblePopped {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return false
	}

	bubble.State = components.BubblePopped
	bubble.CanMove = false
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
		sprite.Visible = false
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		col.Disabled = true
	}

	action, ok := popActions[bubble.Type]
	if !ok {
		action = defaultPop
	}
	action(s, id, bubble, pos)

	s.session.HandleBubblePop(bubble.Points)
	if _, err := entities.NewPointEffectEntity(s.em, pos.X, pos.Y, bubble.Points,
		s.cfg.Bubbles.PointEffectLifetime, s.cfg.Bubbles.PointEffectRiseSpeed); err != nil {
		log.Printf("[BubbleSystem] Failed to create point effect: %v", err)
	}

	return true
}

// defaultPop 播放音效和粒子，上报类型，延迟移除
func defaultPop(s *BubbleSystem, id ecs.EntityID, bubble *components.BubbleComponent, pos *components.PositionComponent) {
	s.audio.PlaySFX(s.cfg.Audio.PopSFX)
	if _, err := entities.NewPopParticles(s.em, pos.X, pos.Y); err != nil {
		log.Printf("[BubbleSystem] Failed to create pop particles: %v", err)
	}
	s.session.BubblePopped(bubble.Type)
	ecs.AddComponent(s.em, id, &components.LifetimeComponent{MaxLifetime: s.cfg.Bubbles.PopRemoveDelay})
}

// firePop 默认反应之外，在泡泡正下方的地面留下火焰
func firePop(s *BubbleSystem, id ecs.EntityID, bubble *components.BubbleComponent, pos *components.PositionComponent) {
	defaultPop(s, id, bubble, pos)

	rect := config.Rect{
		X:      pos.X,
		Y:      config.ScreenHeight - groundFireHeight/2,
		Width:  groundFireWidth,
		Height: groundFireHeight,
	}
	if _, err := entities.NewGroundFireEntity(s.em, rect, s.cfg.Bubbles.GroundFireLifetime); err != nil {
		log.Printf("[BubbleSystem] Failed to create ground fire: %v", err)
	}
}

// bombPop 只上报炸弹类别并立即移除；爆炸范围内的泡泡变为可戳破，敌人被弹飞
func bombPop(s *BubbleSystem, id ecs.EntityID, bubble *components.BubbleComponent, pos *components.PositionComponent) {
	s.session.BubblePopped(types.BubbleBomb)
	s.explode(id, pos.X, pos.Y)
	s.em.DestroyEntity(id)
}

func (s *BubbleSystem) explode(source ecs.EntityID, x, y float64) {
	radius := s.cfg.Bubbles.BlastRadius

	for _, other := range ecs.GetEntitiesWith2[*components.BubbleComponent, *components.PositionComponent](s.em) {
		if other == source {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, other)
		if math.Hypot(pos.X-x, pos.Y-y) <= radius {
			s.SetCanPop(other, true)
		}
	}

	for _, enemy := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, enemy)
		if math.Hypot(pos.X-x, pos.Y-y) <= radius {
			LaunchEnemyAtDeath(s.em, enemy)
		}
	}
}
