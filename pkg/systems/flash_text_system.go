package systems

import (
	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/game"
)

// FlashTextSystem 闪烁文字：开始时立即切换一次可见性，之后每隔 Interval 秒切换
type FlashTextSystem struct {
	em        *ecs.EntityManager
	presenter game.Presenter
}

// NewFlashTextSystem 创建闪烁文字系统
// 参数:
//   - em: EntityManager 实例
//   - presenter: 展示层，为 nil 时使用 NopPresenter
func NewFlashTextSystem(em *ecs.EntityManager, presenter game.Presenter) *FlashTextSystem {
	if presenter == nil {
		presenter = game.NopPresenter{}
	}
	return &FlashTextSystem{em: em, presenter: presenter}
}

// Start 开始闪烁
func (s *FlashTextSystem) Start(id ecs.EntityID) {
	flash, ok := ecs.GetComponent[*components.FlashTextComponent](s.em, id)
	if !ok || flash.IsActive {
		return
	}
	flash.IsActive = true
	flash.Elapsed = 0
	s.setVisible(flash, !flash.Visible)
}

// Stop 停止闪烁并隐藏
func (s *FlashTextSystem) Stop(id ecs.EntityID) {
	flash, ok := ecs.GetComponent[*components.FlashTextComponent](s.em, id)
	if !ok {
		return
	}
	flash.IsActive = false
	flash.Elapsed = 0
	s.setVisible(flash, false)
}

// Update 累计时间，每到 Interval 切换一次可见性
func (s *FlashTextSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.FlashTextComponent](s.em) {
		flash, _ := ecs.GetComponent[*components.FlashTextComponent](s.em, id)
		if !flash.IsActive || flash.Interval <= 0 {
			continue
		}

		flash.Elapsed += deltaTime
		for flash.Elapsed >= flash.Interval {
			flash.Elapsed -= flash.Interval
			s.setVisible(flash, !flash.Visible)
		}
	}
}

func (s *FlashTextSystem) setVisible(flash *components.FlashTextComponent, visible bool) {
	if flash.Visible == visible {
		return
	}
	flash.Visible = visible
	s.presenter.SetActive(flash.Name, visible)
}
