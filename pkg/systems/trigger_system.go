package systems

import (
	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/types"
)

// TriggerSystem 处理区域触发：
//   - 传送区：进入的泡泡 Y 坐标对齐到区域
//   - 地面火焰：进入的敌人被弹飞
type TriggerSystem struct {
	em       *ecs.EntityManager
	contacts ContactSource
}

// NewTriggerSystem 创建区域触发系统，contacts 为本帧接触来源
func NewTriggerSystem(em *ecs.EntityManager, contacts ContactSource) *TriggerSystem {
	return &TriggerSystem{em: em, contacts: contacts}
}

func (s *TriggerSystem) Update(deltaTime float64) {
	for _, c := range s.contacts.Contacts() {
		if c.Phase != ContactEnter {
			continue
		}
		s.handle(c.A, c.TagA, c.B, c.TagB)
		s.handle(c.B, c.TagB, c.A, c.TagA)
	}
}

func (s *TriggerSystem) handle(region ecs.EntityID, regionTag types.Tag, other ecs.EntityID, otherTag types.Tag) {
	switch {
	case regionTag == types.TagTeleport && otherTag == types.TagBubble:
		regionPos, ok := ecs.GetComponent[*components.PositionComponent](s.em, region)
		if !ok {
			return
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, other); ok {
			pos.Y = regionPos.Y
		}
	case regionTag == types.TagGroundFire && otherTag == types.TagEnemy:
		LaunchEnemyAtDeath(s.em, other)
	}
}
