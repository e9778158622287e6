package scenes

import (
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/game"
	"github.com/gonewx/invaders/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 一局游戏
//
// 持有本局的实体管理器、共享状态和全部系统，每个固定步按固定顺序运行系统：
//
//	时钟 → 玩家 → 敌人生成 → 敌人开火 → 移动 → 碰撞 → 爆炸(生成, 动画) → 清理
//
// 碰撞系统创建的爆炸请求在同一步内被爆炸系统消费；
// 所有销毁在步末统一生效，后续系统看到的实体集合在本步内不变。
type GameScene struct {
	entityManager *ecs.EntityManager
	state         *game.GameState
	debug         bool
	steps         int

	playerSystem     *systems.PlayerSystem
	enemySpawnSystem *systems.EnemySpawnSystem
	enemyFireSystem  *systems.EnemyFireSystem
	movementSystem   *systems.MovementSystem
	collisionSystem  *systems.CollisionSystem
	explosionSystem  *systems.ExplosionSystem
	renderSystem     *systems.RenderSystem
}

// NewGameScene 创建一局新游戏
//
// 参数:
//   - cfg: 已验证的游戏配置
//   - input: 玩家输入来源，为 nil 时玩家不响应输入
//   - debug: 是否绘制调试信息
func NewGameScene(cfg *config.GameConfig, input systems.InputSource, debug bool) *GameScene {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	em := ecs.NewEntityManager()
	state := game.NewGameState(float64(cfg.Window.Width), float64(cfg.Window.Height))

	maker := systems.NewFormationMaker(rng, cfg.Enemy.FormationMembersMax)

	s := &GameScene{
		entityManager:    em,
		state:            state,
		debug:            debug,
		playerSystem:     systems.NewPlayerSystem(em, state, input, cfg.Player.RespawnDelay),
		enemySpawnSystem: systems.NewEnemySpawnSystem(em, state, maker, cfg.Enemy.SpawnInterval, cfg.Enemy.Max),
		enemyFireSystem:  systems.NewEnemyFireSystem(em, rng, cfg.Enemy.FireChance),
		movementSystem:   systems.NewMovementSystem(em, state),
		collisionSystem:  systems.NewCollisionSystem(em, state),
		explosionSystem:  systems.NewExplosionSystem(em),
		renderSystem:     systems.NewRenderSystem(em, state),
	}

	log.Printf("[GameScene] 新游戏开始: 窗口 %dx%d, 种子 %d", cfg.Window.Width, cfg.Window.Height, seed)
	return s
}

// Update 推进一个固定步
func (s *GameScene) Update(deltaTime float64) {
	s.state.Clock.Advance(deltaTime)

	s.playerSystem.Update(deltaTime)
	s.enemySpawnSystem.Update(deltaTime)
	s.enemyFireSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.collisionSystem.Update(deltaTime)
	s.explosionSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
	s.steps++
}

// Draw 绘制当前画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	if s.debug {
		s.renderSystem.DrawDebug(screen)
	}
}

// EntityManager 返回本局的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// State 返回本局的共享状态
func (s *GameScene) State() *game.GameState {
	return s.state
}

// Steps 返回已经执行的固定步数
func (s *GameScene) Steps() int {
	return s.steps
}

// LastCollision 返回最近一步的碰撞结果
func (s *GameScene) LastCollision() systems.CollisionStats {
	return s.collisionSystem.LastStats()
}
