package systems

import (
	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/game"
)

// setActive 启用/禁用对象，并同步给展示层
// 状态未变化时不重复通知
func setActive(em *ecs.EntityManager, presenter game.Presenter, id ecs.EntityID, active bool) {
	comp, ok := ecs.GetComponent[*components.ActiveComponent](em, id)
	if !ok || comp.Active == active {
		return
	}
	comp.Active = active
	presenter.SetActive(comp.Name, active)
}

// isActive 对象是否启用（没有 ActiveComponent 的实体视为启用）
func isActive(em *ecs.EntityManager, id ecs.EntityID) bool {
	comp, ok := ecs.GetComponent[*components.ActiveComponent](em, id)
	if !ok {
		return true
	}
	return comp.Active
}
