package systems

import (
	"log"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
)

// ExplosionSystem 管理爆炸的生成和帧动画
//
// 生命周期:
//  1. 碰撞系统创建 ExplosionRequest 实体（只有位置）
//  2. SpawnExplosions 把每个请求转换为爆炸实体，并销毁请求
//  3. Animate 按重复计时器推进帧索引，帧索引到达 FrameCount 时销毁爆炸
type ExplosionSystem struct {
	entityManager *ecs.EntityManager
}

// NewExplosionSystem 创建爆炸系统
func NewExplosionSystem(em *ecs.EntityManager) *ExplosionSystem {
	return &ExplosionSystem{
		entityManager: em,
	}
}

// Update 先消费爆炸请求，再推进动画
func (s *ExplosionSystem) Update(deltaTime float64) {
	s.SpawnExplosions()
	s.Animate(deltaTime)
}

// SpawnExplosions 把所有爆炸请求转换为爆炸实体
// 返回本次生成的爆炸数量
func (s *ExplosionSystem) SpawnExplosions() int {
	requests := ecs.GetEntitiesWith2[
		*components.ExplosionRequestComponent,
		*components.PositionComponent,
	](s.entityManager)

	spawned := 0
	for _, id := range requests {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if _, err := entities.NewExplosion(s.entityManager, pos.X, pos.Y); err != nil {
			log.Printf("[ExplosionSystem] 创建爆炸失败: %v", err)
			continue
		}

		s.entityManager.DestroyEntity(id)
		spawned++
	}

	if spawned > 0 {
		log.Printf("[ExplosionSystem] 生成 %d 个爆炸", spawned)
	}
	return spawned
}

// Animate 推进所有爆炸的帧索引
//
// 一个步内计时器完成几次，帧索引就前进几帧；
// 帧索引到达 FrameCount（缺省为 ExplosionFrameCount）时销毁实体，之前的帧照常显示。
func (s *ExplosionSystem) Animate(deltaTime float64) {
	explosions := ecs.GetEntitiesWith2[
		*components.ExplosionComponent,
		*components.TimerComponent,
	](s.entityManager)

	for _, id := range explosions {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}

		explosion, _ := ecs.GetComponent[*components.ExplosionComponent](s.entityManager, id)
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)

		ticks := timer.Tick(deltaTime)
		if ticks == 0 {
			continue
		}

		frameCount := explosion.FrameCount
		if frameCount <= 0 {
			frameCount = config.ExplosionFrameCount
		}

		explosion.Frame += ticks
		if explosion.Frame >= frameCount {
			explosion.Frame = frameCount
			s.entityManager.DestroyEntity(id)
		}
	}
}
