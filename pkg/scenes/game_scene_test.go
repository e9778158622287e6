package scenes

import (
	"testing"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
)

// holdInput 始终保持同一输入
type holdInput struct {
	horizontal float64
	fire       bool
}

func (in holdInput) Horizontal() float64 { return in.horizontal }
func (in holdInput) FirePressed() bool   { return in.fire }

func newTestScene(t *testing.T, input holdInput) *GameScene {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Seed = 42
	return NewGameScene(cfg, input, false)
}

func TestGameSceneFirstStep(t *testing.T) {
	scene := newTestScene(t, holdInput{})
	scene.Update(config.TimeStep)

	em := scene.EntityManager()
	if n := len(ecs.GetEntitiesWith1[*components.PlayerComponent](em)); n != 1 {
		t.Errorf("player should spawn on the first step, got %d", n)
	}
	if scene.Steps() != 1 {
		t.Errorf("expected 1 step, got %d", scene.Steps())
	}
	if now := scene.State().Clock.Now(); now != config.TimeStep {
		t.Errorf("expected clock at %v, got %v", config.TimeStep, now)
	}
}

// TestGameSceneInvariants 长时间运行后计数与实体保持一致
func TestGameSceneInvariants(t *testing.T) {
	scene := newTestScene(t, holdInput{fire: true})
	cfg := config.DefaultGameConfig()
	em := scene.EntityManager()
	state := scene.State()

	for step := 0; step < 60*30; step++ {
		scene.Update(config.TimeStep)

		enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](em)
		if len(enemies) != state.EnemyCount.Value() {
			t.Fatalf("step %d: EnemyCount=%d but %d enemy entities", step, state.EnemyCount.Value(), len(enemies))
		}
		if len(enemies) > cfg.Enemy.Max {
			t.Fatalf("step %d: %d enemies exceed the cap %d", step, len(enemies), cfg.Enemy.Max)
		}

		players := ecs.GetEntitiesWith1[*components.PlayerComponent](em)
		if len(players) > 1 {
			t.Fatalf("step %d: %d players alive", step, len(players))
		}
		if (len(players) == 1) != state.Player.Alive {
			t.Fatalf("step %d: PlayerState.Alive=%v but %d player entities", step, state.Player.Alive, len(players))
		}

		// 爆炸请求在同一步内被消费
		if n := len(ecs.GetEntitiesWith1[*components.ExplosionRequestComponent](em)); n != 0 {
			t.Fatalf("step %d: %d explosion requests left over", step, n)
		}
	}

	// 激光会离开屏幕被回收，实体数量有界
	if n := em.EntityCount(); n > 400 {
		t.Errorf("entity count grew without bound: %d", n)
	}
}

func TestGameSceneDeterministicWithSeed(t *testing.T) {
	a := newTestScene(t, holdInput{fire: true})
	b := newTestScene(t, holdInput{fire: true})

	for i := 0; i < 600; i++ {
		a.Update(config.TimeStep)
		b.Update(config.TimeStep)
	}

	if a.EntityManager().EntityCount() != b.EntityManager().EntityCount() {
		t.Error("same seed should produce the same entity count")
	}
	if a.State().Kills != b.State().Kills || a.State().Player.Deaths != b.State().Player.Deaths {
		t.Error("same seed should produce the same outcome")
	}
}
