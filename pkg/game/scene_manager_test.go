package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updates   int
	drawCalls int
	deltaTime float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updates++
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalls++
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no active scene initially")
	}

	// 没有活动场景时 Update/Draw 不应 panic
	sm.Update(1.0 / 60.0)
	sm.Draw(nil)
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(0.016)
	sm.Draw(nil)

	if mockScene.updates != 1 {
		t.Errorf("Expected 1 update, got %d", mockScene.updates)
	}
	if mockScene.deltaTime != 0.016 {
		t.Errorf("Expected deltaTime 0.016, got %f", mockScene.deltaTime)
	}
	if mockScene.drawCalls != 1 {
		t.Errorf("Expected 1 draw call, got %d", mockScene.drawCalls)
	}
}

func TestSceneManagerRestart(t *testing.T) {
	sm := NewSceneManager()

	if sm.Restart() {
		t.Error("Restart without factory should fail")
	}

	created := 0
	sm.SetSceneFactory(func() Scene {
		created++
		return &MockScene{}
	})

	first := &MockScene{}
	sm.SwitchTo(first)

	if !sm.Restart() {
		t.Fatal("Restart with factory should succeed")
	}
	if created != 1 {
		t.Errorf("Expected factory to be called once, got %d", created)
	}
	if sm.GetCurrentScene() == Scene(first) {
		t.Error("Restart should replace the active scene")
	}
}

func TestSceneManagerRestartNilScene(t *testing.T) {
	sm := NewSceneManager()
	sm.SetSceneFactory(func() Scene { return nil })

	original := &MockScene{}
	sm.SwitchTo(original)

	if sm.Restart() {
		t.Error("Restart should fail when factory returns nil")
	}
	if sm.GetCurrentScene() != Scene(original) {
		t.Error("Active scene should be kept when restart fails")
	}
}
