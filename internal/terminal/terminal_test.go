package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/scenes"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 40)
	return screen
}

func newTestScene(t *testing.T, hud *game.HUD) *scenes.LevelScene {
	t.Helper()
	level := &config.LevelConfig{
		ID:          "1",
		Name:        "Test",
		SpawnPoints: []config.Point{{X: 256, Y: 96}},
		Player:      config.Point{X: 40, Y: 408},
		Enemies:     []config.Point{{X: 472, Y: 408}},
		Platforms:   []config.Rect{{X: 256, Y: 312, Width: 64, Height: 16}},
	}
	level.ApplyDefaults()

	scene, err := scenes.NewLevelScene(scenes.Options{Levels: []*config.LevelConfig{level}, Presenter: hud})
	if err != nil {
		t.Fatalf("NewLevelScene: %v", err)
	}
	return scene
}

func cellRune(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.SimulationScreen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(cellRune(screen, x, y))
	}
	return b.String()
}

func TestRendererDrawsEntities(t *testing.T) {
	screen := newTestScreen(t)
	hud := game.NewHUD()
	scene := newTestScene(t, hud)

	NewRenderer(screen).Draw(scene, hud)

	tests := []struct {
		name string
		x, y float64
		want rune
	}{
		{"player", 40, 408, '@'},
		{"enemy", 472, 408, 'E'},
		{"platform", 256, 312, '░'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := toCell(tt.x, tt.y)
			if got := cellRune(screen, cx+1, cy+1); got != tt.want {
				t.Errorf("cell (%d,%d) = %q, want %q", cx+1, cy+1, got, tt.want)
			}
		})
	}

	if cellRune(screen, 0, 0) != '─' || cellRune(screen, 0, 1) != '│' {
		t.Error("field border missing")
	}
}

func TestRendererDrawsHUD(t *testing.T) {
	screen := newTestScreen(t)
	hud := game.NewHUD()
	scene := newTestScene(t, hud)
	scene.Update(0.016)

	NewRenderer(screen).Draw(scene, hud)

	if row := rowText(screen, 1); !strings.Contains(row, "SCORE 0") {
		t.Errorf("status row = %q", row)
	}

	// 分数为 0 时所有强化道具都买不起
	shopRow := 1 + len(scene.StatusLines()) + 1
	if row := rowText(screen, shopRow); !strings.Contains(row, "[1] force_boost") {
		t.Errorf("shop row = %q", row)
	}
	_, _, style, _ := screen.GetContent(hudX, shopRow)
	if style != redStyle {
		t.Errorf("unaffordable price should be red, got %v", style)
	}
}

func TestKeyInput(t *testing.T) {
	input := NewKeyInput()

	action, _ := input.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if action != ActionNone {
		t.Errorf("move key action = %v", action)
	}
	input.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	input.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	in := input.PlayerInput()
	if in.Horizontal != 1 || !in.Jump || !in.Shoot {
		t.Errorf("input = %+v", in)
	}

	input.Tick()
	if in := input.PlayerInput(); in.Shoot || in.Horizontal != 1 {
		t.Errorf("shoot lasts one frame, movement is held: %+v", in)
	}

	for i := 0; i < holdFrames; i++ {
		input.Tick()
	}
	if in := input.PlayerInput(); in.Horizontal != 0 || in.Jump {
		t.Errorf("held keys should be released, got %+v", in)
	}
}

func TestKeyInputActions(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		action Action
		index  int
	}{
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit, 0},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit, 0},
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionRestart, 0},
		{"buy first", tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), ActionBuy, 0},
		{"buy extra life", tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), ActionBuy, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, index := NewKeyInput().HandleKey(tt.ev)
			if action != tt.action || index != tt.index {
				t.Errorf("HandleKey() = %v, %d; want %v, %d", action, index, tt.action, tt.index)
			}
		})
	}
}
