package systems

import (
	"sort"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/types"
)

// ContactPhase 接触阶段
type ContactPhase int

const (
	ContactEnter ContactPhase = iota
	ContactStay
	ContactExit
)

// String 返回阶段名称
func (p ContactPhase) String() string {
	switch p {
	case ContactEnter:
		return "Enter"
	case ContactStay:
		return "Stay"
	case ContactExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Contact 一对实体本帧的接触事件（A < B）
type Contact struct {
	A, B       ecs.EntityID
	TagA, TagB types.Tag
	Phase      ContactPhase
	// Trigger 至少一方是触发区域
	Trigger bool
}

// Other 返回事件中 id 的另一方
func (c Contact) Other(id ecs.EntityID) (ecs.EntityID, types.Tag, bool) {
	switch id {
	case c.A:
		return c.B, c.TagB, true
	case c.B:
		return c.A, c.TagA, true
	default:
		return 0, types.TagNone, false
	}
}

// ContactSource 本帧接触事件的来源
type ContactSource interface {
	Contacts() []Contact
}

type contactKey struct {
	a, b ecs.EntityID
}

// ContactSystem 检测实体之间的 AABB 重叠，并与上一帧比较生成进入/停留/离开事件
//
// 两个触发区域之间不产生事件；禁用的碰撞盒视为不存在，
// 因此实体被禁用或销毁的下一帧会收到离开事件。
type ContactSystem struct {
	em       *ecs.EntityManager
	previous map[contactKey]Contact
	events   []Contact
}

// NewContactSystem 创建接触检测系统
func NewContactSystem(em *ecs.EntityManager) *ContactSystem {
	return &ContactSystem{
		em:       em,
		previous: make(map[contactKey]Contact),
	}
}

// Contacts 返回本帧的接触事件（按实体ID排序）
func (s *ContactSystem) Contacts() []Contact {
	return s.events
}

// Reset 清空接触历史（关卡切换时调用）
func (s *ContactSystem) Reset() {
	s.previous = make(map[contactKey]Contact)
	s.events = nil
}

// checkAABBCollision 检查两个碰撞盒是否重叠（碰撞盒中心 = 位置 + 偏移）
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	cx1, cy1 := pos1.X+col1.OffsetX, pos1.Y+col1.OffsetY
	cx2, cy2 := pos2.X+col2.OffsetX, pos2.Y+col2.OffsetY

	left1, right1 := cx1-col1.Width/2, cx1+col1.Width/2
	top1, bottom1 := cy1-col1.Height/2, cy1+col1.Height/2
	left2, right2 := cx2-col2.Width/2, cx2+col2.Width/2
	top2, bottom2 := cy2-col2.Height/2, cy2+col2.Height/2

	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}

// Update 重新计算本帧接触事件
func (s *ContactSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](s.em)

	type body struct {
		id  ecs.EntityID
		pos *components.PositionComponent
		col *components.CollisionComponent
	}
	bodies := make([]body, 0, len(ids))
	for _, id := range ids {
		if s.em.IsMarkedForDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if col.Disabled {
			continue
		}
		bodies = append(bodies, body{id: id, pos: pos, col: col})
	}

	current := make(map[contactKey]Contact)
	events := make([]Contact, 0)

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			if a.col.IsTrigger && b.col.IsTrigger {
				continue
			}
			if !checkAABBCollision(a.pos, a.col, b.pos, b.col) {
				continue
			}

			key := contactKey{a: a.id, b: b.id}
			phase := ContactEnter
			if _, ok := s.previous[key]; ok {
				phase = ContactStay
			}

			c := Contact{
				A: a.id, B: b.id,
				TagA: a.col.Tag, TagB: b.col.Tag,
				Phase:   phase,
				Trigger: a.col.IsTrigger || b.col.IsTrigger,
			}
			current[key] = c
			events = append(events, c)
		}
	}

	exits := make([]Contact, 0)
	for key, c := range s.previous {
		if _, ok := current[key]; ok {
			continue
		}
		c.Phase = ContactExit
		exits = append(exits, c)
	}
	sort.Slice(exits, func(i, j int) bool {
		if exits[i].A != exits[j].A {
			return exits[i].A < exits[j].A
		}
		return exits[i].B < exits[j].B
	})

	s.events = append(events, exits...)
	s.previous = current
}
