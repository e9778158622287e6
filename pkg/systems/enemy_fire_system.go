package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
)

// EnemyFireSystem 控制敌人齐射
//
// 每个固定步以 fireChance 的概率触发一次齐射，触发时所有存活敌人各向下发射一发激光。
type EnemyFireSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	fireChance    float64
}

// NewEnemyFireSystem 创建敌人开火系统
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机数源（测试中传入固定种子）
//   - fireChance: 每步触发齐射的概率 [0, 1]
func NewEnemyFireSystem(em *ecs.EntityManager, rng *rand.Rand, fireChance float64) *EnemyFireSystem {
	return &EnemyFireSystem{
		entityManager: em,
		rng:           rng,
		fireChance:    fireChance,
	}
}

// Update 掷骰决定本步是否齐射
func (s *EnemyFireSystem) Update(deltaTime float64) {
	if s.fireChance <= 0 || s.rng.Float64() >= s.fireChance {
		return
	}
	s.Volley()
}

// Volley 让所有存活敌人各发射一发激光
// 返回发射的激光数量
func (s *EnemyFireSystem) Volley() int {
	enemies := ecs.GetEntitiesWith2[
		*components.EnemyComponent,
		*components.PositionComponent,
	](s.entityManager)

	fired := 0
	for _, id := range enemies {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if _, err := entities.NewLaser(s.entityManager, components.OwnerEnemy, pos.X, pos.Y-config.LaserSpawnOffsetY); err != nil {
			log.Printf("[EnemyFireSystem] 创建激光失败: %v", err)
			continue
		}
		fired++
	}
	return fired
}
