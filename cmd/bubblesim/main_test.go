package main

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/bubblebobble/pkg/config"
)

func loadBundle(t *testing.T) *config.Bundle {
	t.Helper()
	bundle, err := config.LoadBundle("../../data")
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	return bundle
}

func TestRunHeadlessIsDeterministic(t *testing.T) {
	bundle := loadBundle(t)

	first, err := runHeadless(bundle, 600, 7)
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	second, err := runHeadless(loadBundle(t), 600, 7)
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}

	if first != second {
		t.Errorf("same seed should give the same run:\n%v\n%v", first, second)
	}
	if first.Frames > 600 || first.Frames == 0 {
		t.Errorf("frames = %d", first.Frames)
	}
	if first.Level < 1 || first.World < 1 {
		t.Errorf("level=%d world=%d", first.Level, first.World)
	}
	if !strings.Contains(first.String(), "frames=") {
		t.Errorf("String() = %q", first.String())
	}
}

func TestScriptInput(t *testing.T) {
	input := newScriptInput(rand.New(rand.NewSource(1)))

	shots := 0
	for i := 0; i < turnFrames-1; i++ {
		input.step()
		if input.PlayerInput().Horizontal != 1 {
			t.Fatalf("frame %d: should walk right before turning", i+1)
		}
		if input.PlayerInput().Shoot {
			shots++
		}
	}
	if want := (turnFrames - 1) / shootEvery; shots != want {
		t.Errorf("shots = %d, want %d", shots, want)
	}

	input.step()
	if input.PlayerInput().Horizontal != -1 {
		t.Error("should turn around after turnFrames")
	}
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(exited)
	}()

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	// 初始化时可能先收到 resize 事件
	timeout := time.After(time.Second)
	for forwarded := false; !forwarded; {
		select {
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok {
				if key.Rune() != 'q' {
					t.Errorf("forwarded rune %q, want 'q'", key.Rune())
				}
				forwarded = true
			}
		case <-timeout:
			t.Fatal("key was not forwarded")
		}
	}

	// 没有人再读 events 时，关闭 done 后循环必须退出
	close(done)
	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("poll loop did not exit after done was closed")
	}
}
