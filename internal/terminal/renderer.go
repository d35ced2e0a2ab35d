// Package terminal 在终端里用 tcell 显示关卡和 HUD
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/scenes"
)

// CellSize 一个字符格对应的像素数
const CellSize = 16

const (
	fieldCols = config.ScreenWidth / CellSize
	fieldRows = config.ScreenHeight / CellSize
	hudX      = fieldCols + 3
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	redStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer 把场景画到 tcell 屏幕上
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer 创建渲染器，screen 须已 Init
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw 绘制一帧
func (r *Renderer) Draw(scene *scenes.LevelScene, hud *game.HUD) {
	r.screen.Clear()
	r.drawBorder()
	r.drawWorld(scene.EntityManager())
	r.drawHUD(scene, hud)
	r.screen.Show()
}

func (r *Renderer) drawBorder() {
	for x := 0; x <= fieldCols+1; x++ {
		r.screen.SetContent(x, 0, '─', nil, borderStyle)
		r.screen.SetContent(x, fieldRows+1, '─', nil, borderStyle)
	}
	for y := 1; y <= fieldRows; y++ {
		r.screen.SetContent(0, y, '│', nil, borderStyle)
		r.screen.SetContent(fieldCols+1, y, '│', nil, borderStyle)
	}
}

func (r *Renderer) drawWorld(em *ecs.EntityManager) {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](em)

	// 区域先画，角色覆盖在上面
	for _, id := range ids {
		sprite, pos, ok := visibleSprite(em, id)
		if !ok || glyphFor(em, id) != 0 || sprite.Label != "" {
			continue
		}
		style := tcell.StyleDefault.Foreground(toColor(sprite.Color))
		x0, y0 := toCell(pos.X-sprite.Width/2, pos.Y-sprite.Height/2)
		x1, y1 := toCell(pos.X+sprite.Width/2-1, pos.Y+sprite.Height/2-1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.setField(x, y, '░', style)
			}
		}
	}

	for _, id := range ids {
		sprite, pos, ok := visibleSprite(em, id)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(toColor(sprite.Color))
		x, y := toCell(pos.X, pos.Y)
		if glyph := glyphFor(em, id); glyph != 0 {
			r.setField(x, y, glyph, style)
			continue
		}
		if sprite.Label != "" {
			for i, ch := range sprite.Label {
				r.setField(x+i, y, ch, style)
			}
		}
	}
}

// setField 在场地坐标内写字符
func (r *Renderer) setField(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= fieldCols || y >= fieldRows {
		return
	}
	r.screen.SetContent(x+1, y+1, ch, nil, style)
}

func (r *Renderer) drawHUD(scene *scenes.LevelScene, hud *game.HUD) {
	y := 1
	for _, line := range scene.StatusLines() {
		r.drawText(hudX, y, line, textStyle)
		y++
	}

	y++
	for _, row := range scene.ShopRows() {
		style := textStyle
		if hud.PriceColor(row.Index) == game.PriceRed {
			style = redStyle
		}
		r.drawText(hudX, y, scenes.ShopLine(row), style)
		y++
	}

	y++
	if hud.IsActive(game.TextHurryUp) {
		r.drawText(hudX, y, "HURRY UP!", alertStyle)
	}
	if scene.IsOver() {
		r.drawText(hudX, y+1, "GAME OVER  r: restart  q: quit", alertStyle)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func visibleSprite(em *ecs.EntityManager, id ecs.EntityID) (*components.SpriteComponent, *components.PositionComponent, bool) {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !sprite.Visible {
		return nil, nil, false
	}
	if active, ok := ecs.GetComponent[*components.ActiveComponent](em, id); ok && !active.Active {
		return nil, nil, false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return sprite, pos, true
}

// glyphFor 角色类实体的单字符表示，其他实体返回 0
func glyphFor(em *ecs.EntityManager, id ecs.EntityID) rune {
	switch {
	case ecs.HasComponent[*components.PlayerComponent](em, id):
		return '@'
	case ecs.HasComponent[*components.UndefeatableComponent](em, id):
		return 'U'
	case ecs.HasComponent[*components.EnemyComponent](em, id):
		return 'E'
	case ecs.HasComponent[*components.BubbleComponent](em, id):
		return 'o'
	case ecs.HasComponent[*components.ItemComponent](em, id):
		return '$'
	}
	return 0
}

func toCell(x, y float64) (int, int) {
	return int(x) / CellSize, int(y) / CellSize
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
