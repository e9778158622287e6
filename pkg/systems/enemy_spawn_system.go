package systems

import (
	"log"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
	"github.com/gonewx/invaders/pkg/game"
)

// EnemySpawnSystem 按固定间隔生成敌人
//
// 每隔 spawnInterval 秒尝试一次：存活敌人未达到上限时，
// 从 FormationMaker 取编队参数并在编队起点创建一个敌人。
type EnemySpawnSystem struct {
	entityManager *ecs.EntityManager
	state         *game.GameState
	maker         *FormationMaker
	timer         components.TimerComponent
	enemyMax      int
}

// NewEnemySpawnSystem 创建敌人生成系统
//
// 参数:
//   - em: 实体管理器
//   - state: 共享游戏状态（读取窗口尺寸，递增敌人计数）
//   - maker: 编队生成器，由本系统独占
//   - spawnInterval: 两次生成尝试的间隔（秒）
//   - enemyMax: 同时存活的敌人上限
func NewEnemySpawnSystem(em *ecs.EntityManager, state *game.GameState, maker *FormationMaker, spawnInterval float64, enemyMax int) *EnemySpawnSystem {
	log.Printf("[EnemySpawnSystem] Initialized with interval=%.2fs, max=%d", spawnInterval, enemyMax)
	return &EnemySpawnSystem{
		entityManager: em,
		state:         state,
		maker:         maker,
		timer: components.TimerComponent{
			Name:       "enemy_spawn",
			TargetTime: spawnInterval,
			Repeating:  true,
		},
		enemyMax: enemyMax,
	}
}

// Update 推进生成计时器，到点时尝试生成一个敌人
// 即使一步内计时器完成多次，也只尝试一次
func (s *EnemySpawnSystem) Update(deltaTime float64) {
	if s.timer.Tick(deltaTime) == 0 {
		return
	}
	s.trySpawn()
}

// trySpawn 在未达到上限时生成一个敌人
// 返回是否成功生成
func (s *EnemySpawnSystem) trySpawn() bool {
	if s.state.EnemyCount.Value() >= s.enemyMax {
		return false
	}

	formation := s.maker.Make(s.state.WinSize)
	id, err := entities.NewEnemy(s.entityManager, formation)
	if err != nil {
		log.Printf("[EnemySpawnSystem] 创建敌人失败: %v", err)
		return false
	}

	s.state.EnemyCount.Increment()
	log.Printf("[EnemySpawnSystem] 生成敌人 %d 于 (%.0f, %.0f)，编队成员 %d，存活敌人 %d",
		id, formation.Start.X, formation.Start.Y, s.maker.CurrentMembers(), s.state.EnemyCount.Value())
	return true
}
