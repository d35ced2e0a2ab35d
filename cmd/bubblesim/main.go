// bubblesim 在终端或无界面模式下运行关卡
//
//	bubblesim              终端交互模式（方向键/WASD 移动，x 吐泡泡，1~5 商店，q 退出）
//	bubblesim -headless    自动操作运行指定帧数后输出结果
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/bubblebobble/internal/audio"
	"github.com/decker502/bubblebobble/internal/terminal"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/scenes"
	"github.com/decker502/bubblebobble/pkg/systems"
)

const frameTime = time.Second / 60

type options struct {
	dataDir  string
	headless bool
	frames   int
	seed     int64
	verbose  bool
	sound    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.dataDir, "data", "data", "配置目录")
	flag.BoolVar(&opts.headless, "headless", false, "无界面自动运行")
	flag.IntVar(&opts.frames, "frames", 3600, "无界面模式运行的帧数")
	flag.Int64Var(&opts.seed, "seed", 1, "随机种子")
	flag.BoolVar(&opts.verbose, "verbose", false, "启用详细日志输出")
	flag.BoolVar(&opts.sound, "sound", false, "通过扬声器播放音频（仅终端模式）")
	flag.Parse()

	if !opts.verbose {
		log.SetOutput(io.Discard)
	}

	bundle, err := config.LoadBundle(opts.dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if opts.headless {
		result, err := runHeadless(bundle, opts.frames, opts.seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(result)
		return
	}

	if err := runTerminal(bundle, opts); err != nil {
		fmt.Fprintf(os.Stderr, "terminal mode failed: %v\n", err)
		os.Exit(1)
	}
}

// result 无界面运行的汇总
type result struct {
	Frames int
	Points int
	Lives  int
	Level  int
	World  int
	Phase  game.LevelPhase
	Over   bool
}

func (r result) String() string {
	return fmt.Sprintf("frames=%d points=%d lives=%d level=%d world=%d phase=%s over=%t",
		r.Frames, r.Points, r.Lives, r.Level, r.World, r.Phase, r.Over)
}

// runHeadless 用脚本操作推进固定帧数，游戏结束时提前停止
func runHeadless(bundle *config.Bundle, frames int, seed int64) (result, error) {
	rng := rand.New(rand.NewSource(seed))
	input := newScriptInput(rng)

	scene, err := newScene(bundle, nil, nil, input, game.NewProgressManager(nil), rng)
	if err != nil {
		return result{}, err
	}

	dt := frameTime.Seconds()
	frame := 0
	for ; frame < frames && !scene.IsOver(); frame++ {
		input.step()
		scene.Update(dt)
	}

	session := scene.Session()
	return result{
		Frames: frame,
		Points: session.Points(),
		Lives:  session.Lives(),
		Level:  scene.LevelNumber(),
		World:  scene.WorldNumber(),
		Phase:  session.Phase(),
		Over:   scene.IsOver(),
	}, nil
}

func newScene(bundle *config.Bundle, hud game.Presenter, am scenes.Audio, input systems.InputSource, progress *game.ProgressManager, rng *rand.Rand) (*scenes.LevelScene, error) {
	return scenes.NewLevelScene(scenes.Options{
		Game:      bundle.Game,
		Shop:      bundle.Shop,
		Levels:    bundle.Levels,
		Presenter: hud,
		Audio:     am,
		Input:     input,
		Progress:  progress,
		Rand:      rng,
	})
}

// runTerminal tcell 交互模式：定时器驱动帧，事件在单独的 goroutine 中读取
func runTerminal(bundle *config.Bundle, opts options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "bubblebobble"}); err == nil {
		gdataManager = m
	} else {
		log.Printf("[bubblesim] Warning: gdata unavailable: %v", err)
	}
	settings := game.NewSettingsManager(gdataManager)
	progress := game.NewProgressManager(gdataManager)

	var am scenes.Audio
	if opts.sound {
		mixer := audio.NewMixer()
		library := audio.LoadLibrary(bundle.Game.Audio.Clips)
		if err := audio.StartSpeaker(mixer); err != nil {
			log.Printf("[bubblesim] Warning: audio disabled: %v", err)
		} else {
			defer audio.CloseSpeaker()
			am = game.NewAudioManager(
				audio.NewChannel(mixer, library),
				audio.NewChannel(mixer, library),
				audio.NewSFXPlayer(mixer, library),
				settings,
				bundle.Game.Audio,
			)
		}
	}

	input := terminal.NewKeyInput()
	renderer := terminal.NewRenderer(screen)
	rng := rand.New(rand.NewSource(opts.seed))

	hud := game.NewHUD()
	scene, err := newScene(bundle, hud, am, input, progress, rng)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				if _, resized := ev.(*tcell.EventResize); resized {
					screen.Sync()
				}
				continue
			}
			action, index := input.HandleKey(key)
			switch action {
			case terminal.ActionQuit:
				return nil
			case terminal.ActionBuy:
				scene.Buy(index)
			case terminal.ActionRestart:
				if scene.IsOver() {
					hud = game.NewHUD()
					if scene, err = newScene(bundle, hud, am, input, progress, rng); err != nil {
						return err
					}
				}
			}

		case <-ticker.C:
			scene.Update(frameTime.Seconds())
			input.Tick()
			renderer.Draw(scene, hud)
		}
	}
}

// pollEvents 把终端事件转发到 events
// 屏幕关闭后 PollEvent 返回 nil，此时退出；done 关闭后不再阻塞在发送上
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
