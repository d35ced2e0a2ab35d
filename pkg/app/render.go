package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/scenes"
)

var (
	backgroundColor = color.RGBA{R: 12, G: 12, B: 36, A: 255}
	priceRed        = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	priceBlack      = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	timerColor      = color.RGBA{R: 80, G: 200, B: 120, A: 255}
)

// drawWorld 按实体的 SpriteComponent 绘制色块
func drawWorld(screen *ebiten.Image, scene *scenes.LevelScene) {
	screen.Fill(backgroundColor)

	em := scene.EntityManager()
	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](em) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		if !sprite.Visible {
			continue
		}
		if active, ok := ecs.GetComponent[*components.ActiveComponent](em, id); ok && !active.Active {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		x := pos.X - sprite.Width/2
		y := pos.Y - sprite.Height/2
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(sprite.Width), float32(sprite.Height), sprite.Color, false)
		if sprite.Label != "" {
			ebitenutil.DebugPrintAt(screen, sprite.Label, int(x), int(y)-config.HUDLineHeight)
		}
	}
}

// drawHUD 左上角状态行，右上角商店
func drawHUD(screen *ebiten.Image, scene *scenes.LevelScene, hud *game.HUD) {
	y := 4
	for _, line := range scene.StatusLines() {
		ebitenutil.DebugPrintAt(screen, line, config.HUDMarginX, y)
		y += config.HUDLineHeight
	}

	const shopX = config.ScreenWidth - 200
	y = 4
	for _, row := range scene.ShopRows() {
		swatch := priceBlack
		if hud.PriceColor(row.Index) == game.PriceRed {
			swatch = priceRed
		}
		vector.DrawFilledRect(screen, shopX-10, float32(y+4), 6, 6, swatch, false)
		ebitenutil.DebugPrintAt(screen, scenes.ShopLine(row), shopX, y)
		if row.Active {
			vector.DrawFilledRect(screen, shopX, float32(y+config.HUDLineHeight-2), float32(150*row.Fill), 2, timerColor, false)
		}
		y += config.HUDLineHeight
	}

	if hud.IsActive(game.TextHurryUp) {
		ebitenutil.DebugPrintAt(screen, "HURRY UP!", config.ScreenWidth/2-27, config.ScreenHeight/3)
	}
	if scene.IsOver() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to restart", config.ScreenWidth/2-90, config.ScreenHeight/2)
	}
}
