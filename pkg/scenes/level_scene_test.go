package scenes

import (
	"testing"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/types"
)

// recordingAudio 记录场景对音频的调用
type recordingAudio struct {
	current   string
	changes   []string
	slowDowns int
}

func (a *recordingAudio) PlaySFX(string) {}
func (a *recordingAudio) SpeedUpMusic()  {}
func (a *recordingAudio) SlowDownMusic() { a.slowDowns++ }
func (a *recordingAudio) ChangeMusic(clipID string) {
	a.current = clipID
	a.changes = append(a.changes, clipID)
}
func (a *recordingAudio) CurrentMusic() string { return a.current }
func (a *recordingAudio) Update(float64)       {}

func testLevel(id string) *config.LevelConfig {
	level := &config.LevelConfig{
		ID:          id,
		Name:        "Level " + id,
		SpawnPoints: []config.Point{{X: 100, Y: 200}, {X: 300, Y: 200}},
		Player:      config.Point{X: 32, Y: 420},
		Enemies:     []config.Point{{X: 480, Y: 420}},
		Platforms:   []config.Rect{{X: 256, Y: 300, Width: 128, Height: 16}},
		Bubbles:     []config.BubbleSpawn{{Type: "fire", X: 256, Y: 200}},
	}
	level.ApplyDefaults()
	return level
}

func newTestScene(t *testing.T, levels ...*config.LevelConfig) (*LevelScene, *recordingAudio) {
	t.Helper()
	if len(levels) == 0 {
		levels = []*config.LevelConfig{testLevel("1"), testLevel("2"), testLevel("3")}
	}
	audio := &recordingAudio{}
	scene, err := NewLevelScene(Options{
		Levels:   levels,
		Audio:    audio,
		Progress: game.NewProgressManager(nil),
	})
	if err != nil {
		t.Fatalf("NewLevelScene: %v", err)
	}
	return scene, audio
}

// killEnemies 直接移除所有普通敌人
func killEnemies(scene *LevelScene) {
	em := scene.EntityManager()
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		em.DestroyEntity(id)
	}
}

// clearLevel 消灭敌人并等待进入下一关
func clearLevel(t *testing.T, scene *LevelScene) {
	t.Helper()
	killEnemies(scene)
	// 标记删除的敌人在帧末才移除，下一帧才判定通关
	scene.Update(0.016)
	scene.Update(0.016)
	if scene.Session().Phase() != game.PhaseCleared {
		t.Fatalf("phase = %s, want Cleared", scene.Session().Phase())
	}
	scene.Update(scene.cfg.Flow.ClearDelay)
}

func startLevel(scene *LevelScene) {
	scene.Update(scene.cfg.Flow.IntroTime)
	scene.Update(0.016)
}

func TestNewLevelSceneRequiresLevels(t *testing.T) {
	if _, err := NewLevelScene(Options{}); err == nil {
		t.Error("expected error without levels")
	}
}

func TestLevelSceneBuildsLevel(t *testing.T) {
	scene, audio := newTestScene(t)
	em := scene.EntityManager()
	session := scene.Session()

	if _, ok := ecs.GetComponent[*components.PlayerComponent](em, session.PlayerEntity); !ok {
		t.Error("player should be created")
	}
	if n := len(ecs.GetEntitiesWith1[*components.EnemyComponent](em)); n != 1 {
		t.Errorf("enemies = %d, want 1", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.BubbleComponent](em)); n != 1 {
		t.Errorf("bubbles = %d, want 1", n)
	}
	if len(scene.PowerUps()) != 4 {
		t.Errorf("power-ups = %d, want 4", len(scene.PowerUps()))
	}

	shells := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ItemComponent](em) {
		item, _ := ecs.GetComponent[*components.ItemComponent](em, id)
		if item.Type.IsShell() {
			shells++
		}
	}
	if shells != 1 {
		t.Errorf("a shell should be placed at level start, got %d", shells)
	}

	if len(audio.changes) != 1 || audio.changes[0] != scene.cfg.Audio.BackgroundMusic {
		t.Errorf("music changes = %v", audio.changes)
	}
}

func TestLevelSceneIntroStartsLevel(t *testing.T) {
	scene, _ := newTestScene(t)

	scene.Update(1.0)
	if scene.Session().Phase() != game.PhaseIntro {
		t.Fatalf("phase = %s, want Intro", scene.Session().Phase())
	}

	scene.Update(0.6)
	if scene.Session().Phase() != game.PhaseStarted {
		t.Errorf("phase = %s, want Started", scene.Session().Phase())
	}
}

func TestLevelSceneAdvancesAfterClear(t *testing.T) {
	scene, _ := newTestScene(t)
	startLevel(scene)

	clearLevel(t, scene)

	if scene.LevelIndex() != 1 || scene.LevelNumber() != 2 {
		t.Errorf("level index=%d number=%d, want 1 and 2", scene.LevelIndex(), scene.LevelNumber())
	}
	if scene.Session().Phase() != game.PhaseIntro {
		t.Errorf("new level should start with the intro, got %s", scene.Session().Phase())
	}
	if n := len(ecs.GetEntitiesWith1[*components.EnemyComponent](scene.EntityManager())); n != 1 {
		t.Errorf("next level should have its own enemies, got %d", n)
	}
	if scene.progress.Data().HighestLevel != 2 {
		t.Errorf("highest level = %d, want 2", scene.progress.Data().HighestLevel)
	}
}

func TestLevelSceneUmbrellaSkipsLevel(t *testing.T) {
	scene, _ := newTestScene(t)
	startLevel(scene)

	scene.Session().CollectItem(types.ItemUmbrella, 0)
	clearLevel(t, scene)

	if scene.LevelIndex() != 2 || scene.LevelNumber() != 3 {
		t.Errorf("level index=%d number=%d, want 2 and 3", scene.LevelIndex(), scene.LevelNumber())
	}
}

func TestLevelSceneNewWorldAndMusic(t *testing.T) {
	second := testLevel("2")
	second.NewWorld = true
	second.Music = "boss_theme"
	scene, audio := newTestScene(t, testLevel("1"), second)
	startLevel(scene)

	clearLevel(t, scene)

	if scene.WorldNumber() != 2 {
		t.Errorf("world = %d, want 2", scene.WorldNumber())
	}
	if audio.current != "boss_theme" {
		t.Errorf("music = %s, want boss_theme", audio.current)
	}

	startLevel(scene)
	clearLevel(t, scene)
	if scene.LevelIndex() != 0 {
		t.Errorf("after the last level the run loops back, index = %d", scene.LevelIndex())
	}
}

func TestLevelScenePowerUpsCarryOver(t *testing.T) {
	scene, _ := newTestScene(t)
	startLevel(scene)

	scene.Session().AddPoints(1000)
	if !scene.Buy(0) {
		t.Fatal("force boost should be affordable")
	}

	clearLevel(t, scene)

	shoot, ok := ecs.GetComponent[*components.ShootComponent](scene.EntityManager(), scene.Session().PlayerEntity)
	if !ok || !shoot.ForceBoostIsActive {
		t.Error("active power-up should apply to the next level's player")
	}
}

func TestLevelSceneGameOver(t *testing.T) {
	scene, _ := newTestScene(t)
	startLevel(scene)

	scene.Session().AddPoints(1234)
	for scene.Session().Lives() > 0 {
		scene.Session().LoseLife()
	}
	scene.Update(0.016)

	if !scene.IsOver() {
		t.Fatal("scene should be over")
	}
	if scene.Buy(0) {
		t.Error("shop is closed after game over")
	}

	data := scene.progress.Data()
	if data.GamesPlayed != 1 || data.HighScore != scene.Session().Points() || data.HighScore < 1234 {
		t.Errorf("progress = %+v", data)
	}

	index := scene.LevelIndex()
	scene.Update(10)
	if scene.LevelIndex() != index {
		t.Error("gameplay should stop after game over")
	}
}

func TestLevelSceneShopRows(t *testing.T) {
	scene, _ := newTestScene(t)
	startLevel(scene)
	scene.Session().AddPoints(1000)
	scene.Buy(2)

	rows := scene.ShopRows()
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	if rows[2].Label != "speed_boost" || !rows[2].Active || rows[2].Remaining != 15 {
		t.Errorf("speed boost row = %+v", rows[2])
	}
	if rows[0].Active || rows[0].Remaining != 0 {
		t.Errorf("inactive row = %+v", rows[0])
	}
	if rows[4].Index != 4 || rows[4].Label != "extra_life" {
		t.Errorf("extra life row = %+v", rows[4])
	}

	tests := []struct {
		row  ShopRow
		want string
	}{
		{rows[0], "[1] force_boost    500"},
		{rows[2], "[3] speed_boost    300  15s"},
		{rows[4], "[5] extra_life"},
	}
	for _, tt := range tests {
		if got := ShopLine(tt.row); got != tt.want {
			t.Errorf("ShopLine() = %q, want %q", got, tt.want)
		}
	}
}

func TestLevelSceneStatusLines(t *testing.T) {
	scene, _ := newTestScene(t)

	lines := scene.StatusLines()
	if len(lines) != 4 {
		t.Fatalf("lines = %v", lines)
	}
	if lines[1] != "LEVEL 1  WORLD 1  Level 1" {
		t.Errorf("level line = %q", lines[1])
	}
	if lines[3] != "INTRO" {
		t.Errorf("phase line = %q", lines[3])
	}
}
