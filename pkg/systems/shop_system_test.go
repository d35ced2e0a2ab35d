package systems

import (
	"testing"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/entities"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/types"
)

type shopFixture struct {
	em        *ecs.EntityManager
	session   *game.GameSession
	presenter *recordingPresenter
	shop      *ShopSystem
	powerUps  []ecs.EntityID
}

func newShopFixture(t *testing.T, withPlayer bool) *shopFixture {
	t.Helper()
	em, session, presenter, cfg := newTestWorld()
	if withPlayer {
		player, err := entities.NewPlayerEntity(em, cfg, 100, 100)
		if err != nil {
			t.Fatalf("NewPlayerEntity: %v", err)
		}
		session.PlayerEntity = player
	}

	shopCfg := config.DefaultShopConfig()
	ids, err := entities.NewPowerUpEntities(em, shopCfg)
	if err != nil {
		t.Fatalf("NewPowerUpEntities: %v", err)
	}
	shop := NewShopSystem(em, session, NewPowerUpSystem(em, session), ids, shopCfg)
	return &shopFixture{em: em, session: session, presenter: presenter, shop: shop, powerUps: ids}
}

func (f *shopFixture) collectShells() {
	for _, shell := range types.ShellTypes {
		f.session.CollectItem(shell, 0)
	}
}

func TestShopPriceColors(t *testing.T) {
	f := newShopFixture(t, true)
	f.session.AddPoints(600)
	f.shop.Update(0.016)

	// 默认价格：500, 800, 300, 1500
	want := []game.PriceColor{game.PriceBlack, game.PriceRed, game.PriceBlack, game.PriceRed}
	for i, c := range want {
		if f.presenter.prices[i] != c {
			t.Errorf("price %d colour = %v, want %v", i, f.presenter.prices[i], c)
		}
	}
}

func TestShopBuyPowerUp(t *testing.T) {
	tests := []struct {
		name       string
		points     int
		withPlayer bool
		wantBought bool
		wantPoints int
	}{
		{"enough points", 700, true, true, 200},
		{"exact price", 500, true, true, 0},
		{"not enough points", 499, true, false, 499},
		{"activation fails without player", 700, false, false, 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newShopFixture(t, tt.withPlayer)
			f.session.AddPoints(tt.points)

			if got := f.shop.Buy(0); got != tt.wantBought {
				t.Errorf("Buy(0) = %v, want %v", got, tt.wantBought)
			}
			if f.session.Points() != tt.wantPoints {
				t.Errorf("points = %d, want %d", f.session.Points(), tt.wantPoints)
			}

			pu, _ := ecs.GetComponent[*components.PowerUpComponent](f.em, f.powerUps[0])
			if pu.IsActive != tt.wantBought {
				t.Errorf("power-up active = %v, want %v", pu.IsActive, tt.wantBought)
			}
		})
	}
}

func TestShopBuyExtraLife(t *testing.T) {
	tests := []struct {
		name       string
		shells     []types.ItemType
		fullLives  bool
		wantBought bool
	}{
		{"all shells, room for a life", types.ShellTypes[:], false, true},
		{"no shells", nil, false, false},
		{"three of four shells", types.ShellTypes[:3], false, false},
		{"lives already at max", types.ShellTypes[:], true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newShopFixture(t, true)
			for _, shell := range tt.shells {
				f.session.CollectItem(shell, 0)
			}
			if tt.fullLives {
				for f.session.GainLife() {
				}
			}
			lives := f.session.Lives()
			recorded := 0
			f.shop.OnExtraLife = func() { recorded++ }

			if got := f.shop.Buy(4); got != tt.wantBought {
				t.Fatalf("Buy(4) = %v, want %v", got, tt.wantBought)
			}

			if tt.wantBought {
				if f.session.Lives() != lives+1 {
					t.Errorf("lives = %d, want %d", f.session.Lives(), lives+1)
				}
				for _, shell := range types.ShellTypes {
					if f.session.ItemCount(shell) != 0 {
						t.Errorf("%s should be consumed", shell)
					}
				}
				if recorded != 1 {
					t.Errorf("OnExtraLife called %d times, want 1", recorded)
				}
				return
			}

			if f.session.Lives() != lives {
				t.Errorf("lives changed to %d", f.session.Lives())
			}
			// 兑换失败时已收集的贝壳一个都不能少
			for _, shell := range tt.shells {
				if f.session.ItemCount(shell) != 1 {
					t.Errorf("%s count = %d, want 1", shell, f.session.ItemCount(shell))
				}
			}
			if recorded != 0 {
				t.Error("OnExtraLife should not be called on a failed trade")
			}
		})
	}
}

func TestShopExtraLifeCountsRepeatedShells(t *testing.T) {
	em, session, _, cfg := newTestWorld()
	player, err := entities.NewPlayerEntity(em, cfg, 100, 100)
	if err != nil {
		t.Fatalf("NewPlayerEntity: %v", err)
	}
	session.PlayerEntity = player

	shopCfg := config.DefaultShopConfig()
	blue := types.ItemShellBlue.String()
	shopCfg.RequiredShells = []string{blue, blue, blue, blue}
	ids, err := entities.NewPowerUpEntities(em, shopCfg)
	if err != nil {
		t.Fatalf("NewPowerUpEntities: %v", err)
	}
	shop := NewShopSystem(em, session, NewPowerUpSystem(em, session), ids, shopCfg)

	session.CollectItem(types.ItemShellBlue, 0)
	lives := session.Lives()

	if shop.Buy(4) {
		t.Fatal("one shell cannot pay for four")
	}
	if session.ItemCount(types.ItemShellBlue) != 1 {
		t.Errorf("blue shells = %d, want 1", session.ItemCount(types.ItemShellBlue))
	}
	if session.Lives() != lives {
		t.Errorf("lives = %d, want %d", session.Lives(), lives)
	}
}

func TestShopIgnoresUnknownIndex(t *testing.T) {
	f := newShopFixture(t, true)
	f.session.AddPoints(10000)
	f.collectShells()

	for _, index := range []int{-1, 5, 99} {
		if f.shop.Buy(index) {
			t.Errorf("Buy(%d) should be ignored", index)
		}
	}
	if f.session.Points() != 10000 {
		t.Errorf("points changed to %d", f.session.Points())
	}
}
