package systems

import (
	"log"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/types"
)

// ShopSystem 商店交易
//
// 按钮编号：
//   - 0 ~ len(powerUps)-1：强化道具，分数足够且激活成功才扣分
//   - extraLifeIndex：集齐全部贝壳且生命未满时兑换一条命
type ShopSystem struct {
	em             *ecs.EntityManager
	session        *game.GameSession
	powerUps       *PowerUpSystem
	powerUpIDs     []ecs.EntityID
	extraLifeIndex int
	shells         []types.ItemType

	// OnExtraLife 兑换成功后回调（记录进度），可为 nil
	OnExtraLife func()
}

// NewShopSystem 创建商店系统，powerUpIDs 的顺序即按钮编号
func NewShopSystem(em *ecs.EntityManager, session *game.GameSession, powerUps *PowerUpSystem, powerUpIDs []ecs.EntityID, shop *config.ShopConfig) *ShopSystem {
	if shop == nil {
		shop = config.DefaultShopConfig()
	}
	return &ShopSystem{
		em:             em,
		session:        session,
		powerUps:       powerUps,
		powerUpIDs:     powerUpIDs,
		extraLifeIndex: shop.ExtraLifeIndex,
		shells:         shop.RequiredShellTypes(),
	}
}

// Update 每帧刷新价格颜色：买不起显示红色，否则黑色
func (s *ShopSystem) Update(deltaTime float64) {
	presenter := s.session.Presenter()
	points := s.session.Points()

	for index, id := range s.powerUpIDs {
		pu, ok := ecs.GetComponent[*components.PowerUpComponent](s.em, id)
		if !ok {
			continue
		}
		if pu.Price > points {
			presenter.SetPriceColor(index, game.PriceRed)
		} else {
			presenter.SetPriceColor(index, game.PriceBlack)
		}
	}
}

// Buy 购买按钮 index 对应的商品，返回是否成交
func (s *ShopSystem) Buy(index int) bool {
	if index >= 0 && index < len(s.powerUpIDs) {
		return s.buyPowerUp(s.powerUpIDs[index])
	}
	if index == s.extraLifeIndex {
		return s.buyExtraLife()
	}
	return false
}

func (s *ShopSystem) buyPowerUp(id ecs.EntityID) bool {
	pu, ok := ecs.GetComponent[*components.PowerUpComponent](s.em, id)
	if !ok || pu.Price > s.session.Points() {
		return false
	}
	if !s.powerUps.ActivatePowerUp(id) {
		return false
	}
	s.session.SpendPoints(pu.Price)
	log.Printf("[ShopSystem] Bought %s for %d points", pu.ID, pu.Price)
	return true
}

func (s *ShopSystem) buyExtraLife() bool {
	if !s.session.HasItems(s.shells...) || s.session.Lives() >= s.session.MaxLives() {
		return false
	}
	if !s.session.GainLife() {
		return false
	}
	s.session.RemoveItems(s.shells...)
	if s.OnExtraLife != nil {
		s.OnExtraLife()
	}
	log.Printf("[ShopSystem] Traded shells for an extra life (%d/%d)", s.session.Lives(), s.session.MaxLives())
	return true
}
