package systems

import (
	"log"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
	"github.com/gonewx/invaders/pkg/game"
	"github.com/gonewx/invaders/pkg/utils"
)

// CollisionStats 一个固定步内的碰撞结果
type CollisionStats struct {
	EnemiesDestroyed int // 被玩家激光击毁的敌人数
	PlayerDestroyed  bool
}

// CollisionSystem 处理激光与敌人、激光与玩家之间的碰撞
//
// 每步两轮检测：
//   - A 轮：玩家激光 vs 敌人
//   - B 轮：敌人激光 vs 玩家
//
// 一个实体在一步内最多产生一次销毁后果：A 轮维护显式的 resolved 集合，
// 被处理过的激光或敌人在本轮剩余部分直接跳过；B 轮在玩家第一次被击中后立即结束。
type CollisionSystem struct {
	em    *ecs.EntityManager
	state *game.GameState
	last  CollisionStats
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - state: 共享游戏状态（敌人计数、玩家状态、时钟）
func NewCollisionSystem(em *ecs.EntityManager, state *game.GameState) *CollisionSystem {
	return &CollisionSystem{
		em:    em,
		state: state,
	}
}

// LastStats 返回最近一次 Update 的碰撞结果
func (s *CollisionSystem) LastStats() CollisionStats {
	return s.last
}

// Update 执行一个固定步的碰撞检测
//
// 参数:
//   - deltaTime: 固定步长（秒），本系统不使用
func (s *CollisionSystem) Update(deltaTime float64) {
	s.last = CollisionStats{}

	playerLasers, enemyLasers := s.collectLasers()

	s.last.EnemiesDestroyed = s.playerLasersVsEnemies(playerLasers)
	s.last.PlayerDestroyed = s.enemyLasersVsPlayer(enemyLasers)
}

// collectLasers 按发射方拆分激光，保持实体ID升序
func (s *CollisionSystem) collectLasers() (playerLasers, enemyLasers []ecs.EntityID) {
	lasers := ecs.GetEntitiesWith3[
		*components.ProjectileComponent,
		*components.PositionComponent,
		*components.SpriteSizeComponent,
	](s.em)

	for _, id := range lasers {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		switch proj.Owner {
		case components.OwnerPlayer:
			playerLasers = append(playerLasers, id)
		case components.OwnerEnemy:
			enemyLasers = append(enemyLasers, id)
		}
	}
	return playerLasers, enemyLasers
}

// playerLasersVsEnemies A 轮：玩家激光 vs 敌人
// 返回本轮击毁的敌人数
func (s *CollisionSystem) playerLasersVsEnemies(lasers []ecs.EntityID) int {
	if len(lasers) == 0 {
		return 0
	}

	enemies := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.SpriteSizeComponent,
	](s.em)
	if len(enemies) == 0 {
		return 0
	}

	resolved := make(map[ecs.EntityID]struct{}, len(lasers))
	destroyed := 0

	for _, laserID := range lasers {
		if s.isResolved(resolved, laserID) {
			continue
		}
		laserBox := s.boxOf(laserID)

		for _, enemyID := range enemies {
			if s.isResolved(resolved, enemyID) {
				continue
			}
			if !laserBox.Overlaps(s.boxOf(enemyID)) {
				continue
			}

			// 碰撞发生：敌人和激光都只处理一次
			enemyPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, enemyID)

			s.em.DestroyEntity(enemyID)
			s.em.DestroyEntity(laserID)
			resolved[enemyID] = struct{}{}
			resolved[laserID] = struct{}{}

			s.state.EnemyCount.Decrement()
			s.state.Kills++
			destroyed++

			if _, err := entities.NewExplosionRequest(s.em, enemyPos.X, enemyPos.Y); err != nil {
				log.Printf("[CollisionSystem] 创建爆炸请求失败: %v", err)
			}

			log.Printf("[CollisionSystem] 敌人 %d 被激光 %d 击毁 (剩余敌人: %d)",
				enemyID, laserID, s.state.EnemyCount.Value())

			// 一发激光只能击中一个敌人
			break
		}
	}

	return destroyed
}

// enemyLasersVsPlayer B 轮：敌人激光 vs 玩家
// 玩家不存在（等待复活）是正常状态，直接返回
func (s *CollisionSystem) enemyLasersVsPlayer(lasers []ecs.EntityID) bool {
	if len(lasers) == 0 {
		return false
	}

	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.SpriteSizeComponent,
	](s.em)
	if len(players) == 0 {
		return false
	}

	playerID := players[0]
	if s.em.IsMarkedForDestruction(playerID) {
		return false
	}
	playerBox := s.boxOf(playerID)

	for _, laserID := range lasers {
		if s.em.IsMarkedForDestruction(laserID) {
			continue
		}
		if !playerBox.Overlaps(s.boxOf(laserID)) {
			continue
		}

		playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, playerID)

		s.em.DestroyEntity(playerID)
		s.em.DestroyEntity(laserID)

		now := s.state.Clock.Now()
		s.state.Player.Destroyed(now)

		if _, err := entities.NewExplosionRequest(s.em, playerPos.X, playerPos.Y); err != nil {
			log.Printf("[CollisionSystem] 创建爆炸请求失败: %v", err)
		}

		log.Printf("[CollisionSystem] 玩家被激光 %d 击毁 (t=%.2fs)", laserID, now)

		// 玩家每步最多死亡一次
		return true
	}

	return false
}

// isResolved 检查实体是否已在本轮处理过，或已被其他系统标记删除
func (s *CollisionSystem) isResolved(resolved map[ecs.EntityID]struct{}, id ecs.EntityID) bool {
	if _, ok := resolved[id]; ok {
		return true
	}
	return s.em.IsMarkedForDestruction(id)
}

// boxOf 计算实体当前的碰撞盒
// 碰撞盒尺寸 = 精灵尺寸 × 缩放（没有 ScaleComponent 时按 1 计算）
func (s *CollisionSystem) boxOf(id ecs.EntityID) utils.Box {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
	size, _ := ecs.GetComponent[*components.SpriteSizeComponent](s.em, id)

	dims := size.Size()
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.em, id); ok {
		dims = dims.Mul(scale.Vec())
	}

	return utils.NewBox(pos.Vec(), dims)
}
