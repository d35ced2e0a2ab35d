package systems

import (
	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/game"
)

// LevelCounterSystem 关卡/世界编号
//
// 每过一关编号 +1，跳关后 +2；到达过渡关时显示为 0
type LevelCounterSystem struct {
	em        *ecs.EntityManager
	presenter game.Presenter
	entity    ecs.EntityID
}

// NewLevelCounterSystem 创建关卡计数系统，并立即把当前编号推送给展示层
// 参数:
//   - em: EntityManager 实例
//   - presenter: 展示层，为 nil 时使用 NopPresenter
//   - entity: 持有 LevelCounterComponent 的实体
func NewLevelCounterSystem(em *ecs.EntityManager, presenter game.Presenter, entity ecs.EntityID) *LevelCounterSystem {
	if presenter == nil {
		presenter = game.NopPresenter{}
	}
	s := &LevelCounterSystem{em: em, presenter: presenter, entity: entity}
	if counter, ok := s.counter(); ok {
		presenter.SetNumber(game.TextLevel, counter.LevelNumber)
		presenter.SetNumber(game.TextWorld, counter.WorldNumber)
	}
	return s
}

func (s *LevelCounterSystem) counter() (*components.LevelCounterComponent, bool) {
	return ecs.GetComponent[*components.LevelCounterComponent](s.em, s.entity)
}

// MarkSkipped 拾取雨伞后调用，下一次 AdvanceLevel 跳过一关
func (s *LevelCounterSystem) MarkSkipped() {
	if counter, ok := s.counter(); ok {
		counter.SkippedLevels = true
	}
}

// AdvanceLevel 更新关卡编号并返回新编号
func (s *LevelCounterSystem) AdvanceLevel() int {
	counter, ok := s.counter()
	if !ok {
		return 0
	}

	if counter.SkippedLevels {
		counter.LevelNumber += 2
		counter.SkippedLevels = false
	} else {
		counter.LevelNumber++
	}

	for _, n := range counter.TransitionNumbers {
		if counter.LevelNumber == n {
			counter.LevelNumber = 0
			break
		}
	}

	s.presenter.SetNumber(game.TextLevel, counter.LevelNumber)
	return counter.LevelNumber
}

// AdvanceWorld 进入新世界
func (s *LevelCounterSystem) AdvanceWorld() int {
	counter, ok := s.counter()
	if !ok {
		return 0
	}
	counter.WorldNumber++
	s.presenter.SetNumber(game.TextWorld, counter.WorldNumber)
	return counter.WorldNumber
}

// LevelNumber 当前显示的关卡编号
func (s *LevelCounterSystem) LevelNumber() int {
	if counter, ok := s.counter(); ok {
		return counter.LevelNumber
	}
	return 0
}

// WorldNumber 当前世界编号
func (s *LevelCounterSystem) WorldNumber() int {
	if counter, ok := s.counter(); ok {
		return counter.WorldNumber
	}
	return 0
}
