// Package app 提供 ebiten 窗口前端
//
// 该包把关卡场景接到 ebiten 的游戏循环上：键盘输入、调试绘制、
// 音频输出和设置/进度的持久化都在这里组装。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/bubblebobble/internal/audio"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/scenes"
)

// AppName gdata 存储目录名
const AppName = "bubblebobble"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// DataDir 配置目录（嵌入资源以 data 为根）
	DataDir string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Mute 不打开音频设备
	Mute bool
}

// App 实现 ebiten.Game 接口
type App struct {
	cfg    Config
	bundle *config.Bundle

	settings *game.SettingsManager
	progress *game.ProgressManager
	audio    *game.AudioManager
	mixer    *audio.Mixer
	player   *ebitenaudio.Player

	hud   *game.HUD
	input *keyboardInput
	scene *scenes.LevelScene

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	bundle, err := config.LoadBundle(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	// 存档目录不可用时退化为只在内存中记录
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: AppName}); err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v", err)
	} else {
		gdataManager = m
	}

	a := &App{
		cfg:      cfg,
		bundle:   bundle,
		settings: game.NewSettingsManager(gdataManager),
		progress: game.NewProgressManager(gdataManager),
		mixer:    audio.NewMixer(),
		hud:      game.NewHUD(),
		input:    &keyboardInput{},
	}

	library := audio.LoadLibrary(bundle.Game.Audio.Clips)
	a.audio = game.NewAudioManager(
		audio.NewChannel(a.mixer, library),
		audio.NewChannel(a.mixer, library),
		audio.NewSFXPlayer(a.mixer, library),
		a.settings,
		bundle.Game.Audio,
	)
	if !cfg.Mute {
		ctx := ebitenaudio.NewContext(int(audio.SampleRate))
		if a.player, err = audio.NewEbitenPlayer(ctx, a.mixer); err != nil {
			log.Printf("[App] Warning: audio output disabled: %v", err)
		}
	}
	log.Printf("[App] AudioManager initialized with %d clips", library.Len())

	if err := a.newScene(); err != nil {
		return nil, err
	}

	if a.settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

// newScene 开始新的一局
func (a *App) newScene() error {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a.hud = game.NewHUD()
	scene, err := scenes.NewLevelScene(scenes.Options{
		Game:      a.bundle.Game,
		Shop:      a.bundle.Shop,
		Levels:    a.bundle.Levels,
		Presenter: a.hud,
		Audio:     a.audio,
		Input:     a.input,
		Progress:  a.progress,
		Rand:      rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return fmt.Errorf("场景创建失败: %w", err)
	}
	a.scene = scene
	log.Printf("[App] New game started (seed %d)", seed)
	return nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth*2, config.ScreenHeight*2)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.toggleMusic()
	}

	if a.scene.IsOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			if err := a.newScene(); err != nil {
				return err
			}
		}
	} else {
		for key, index := range shopKeys {
			if inpututil.IsKeyJustPressed(key) {
				a.scene.Buy(index)
			}
		}
	}

	a.input.poll()
	a.scene.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}
	a.settings.SetFullscreen(fullscreen)
	a.saveSettings()
}

func (a *App) toggleMusic() {
	a.settings.SetMusicEnabled(!a.settings.GetSettings().MusicEnabled)
	a.audio.ApplySettings()
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	drawWorld(screen, a.scene)
	drawHUD(screen, a.scene, a.hud)
}

// DrawFinalScreen 全屏时用黑边填充并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Close 停止音频输出
func (a *App) Close() {
	if a.player != nil {
		a.player.Close()
	}
	a.mixer.Clear()
}
