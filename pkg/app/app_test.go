package app

import (
	"testing"

	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/scenes"
)

func TestNewAppDefaults(t *testing.T) {
	a, err := NewApp(Config{Verbose: true})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	w, h := a.Layout(1920, 1080)
	if w != config.DefaultWindowWidth || h != config.DefaultWindowHeight {
		t.Errorf("expected layout %dx%d, got %dx%d", config.DefaultWindowWidth, config.DefaultWindowHeight, w, h)
	}
	if _, ok := a.GetSceneManager().GetCurrentScene().(*scenes.GameScene); !ok {
		t.Error("current scene should be a GameScene")
	}
	if !a.IsVerbose() {
		t.Error("expected verbose app")
	}
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Enemy.FireChance = 2

	if _, err := NewApp(Config{Verbose: true, Game: cfg}); err == nil {
		t.Error("expected an error for an invalid config")
	}
}

func TestAppRestartCreatesFreshScene(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Seed = 1
	a, err := NewApp(Config{Verbose: true, Game: cfg})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	sm := a.GetSceneManager()
	first := sm.GetCurrentScene().(*scenes.GameScene)
	for i := 0; i < 10; i++ {
		sm.Update(config.TimeStep)
	}
	if first.Steps() != 10 {
		t.Fatalf("expected 10 steps, got %d", first.Steps())
	}

	if !sm.Restart() {
		t.Fatal("restart failed")
	}
	second := sm.GetCurrentScene().(*scenes.GameScene)
	if second == first || second.Steps() != 0 {
		t.Error("restart should create a fresh scene")
	}
}
