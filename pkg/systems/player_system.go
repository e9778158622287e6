package systems

import (
	"log"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
	"github.com/gonewx/invaders/pkg/game"
)

// InputSource 玩家输入来源
// 桌面端由 app 包基于 ebiten 键盘实现，测试中使用固定脚本
type InputSource interface {
	// Horizontal 返回水平方向输入: -1 向左，0 不动，1 向右
	Horizontal() float64
	// FirePressed 返回开火键是否在本步刚被按下
	FirePressed() bool
}

// PlayerSystem 负责玩家的生成、复活、移动输入和射击
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	state         *game.GameState
	input         InputSource
	respawnDelay  float64
}

// NewPlayerSystem 创建玩家系统
//
// 参数:
//   - em: 实体管理器
//   - state: 共享游戏状态（玩家存活状态、时钟、窗口尺寸）
//   - input: 输入来源，为 nil 时玩家不响应输入
//   - respawnDelay: 玩家被击毁后到复活的延迟（秒）
func NewPlayerSystem(em *ecs.EntityManager, state *game.GameState, input InputSource, respawnDelay float64) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		state:         state,
		input:         input,
		respawnDelay:  respawnDelay,
	}
}

// Update 处理复活，然后把输入应用到玩家实体
func (s *PlayerSystem) Update(deltaTime float64) {
	s.respawn()

	if s.input == nil {
		return
	}
	playerID, ok := s.player()
	if !ok {
		return
	}

	s.steer(playerID, s.input.Horizontal())
	if s.input.FirePressed() {
		s.Fire(playerID)
	}
}

// respawn 玩家不存在且冷却结束时重新生成
func (s *PlayerSystem) respawn() {
	now := s.state.Clock.Now()
	if !s.state.Player.ShouldRespawn(now, s.respawnDelay) {
		return
	}

	id, err := entities.NewPlayer(s.entityManager, s.state.WinSize)
	if err != nil {
		log.Printf("[PlayerSystem] 创建玩家失败: %v", err)
		return
	}
	s.state.Player.Spawned()
	log.Printf("[PlayerSystem] 玩家 %d 生成 (t=%.2fs, 已死亡 %d 次)", id, now, s.state.Player.Deaths)
}

// player 返回当前存活的玩家实体
func (s *PlayerSystem) player() (ecs.EntityID, bool) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range players {
		if !s.entityManager.IsMarkedForDestruction(id) {
			return id, true
		}
	}
	return 0, false
}

// steer 根据水平输入设置玩家速度
// 玩家已贴住屏幕边缘时，朝外的输入被忽略
func (s *PlayerSystem) steer(id ecs.EntityID, direction float64) {
	motion, ok := ecs.GetComponent[*components.MotionComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	switch {
	case direction < 0:
		direction = -1
	case direction > 0:
		direction = 1
	}

	limit := s.state.WinSize.HalfW() - config.PlayerWidth/2*config.SpriteScale
	if (direction < 0 && pos.X <= -limit) || (direction > 0 && pos.X >= limit) {
		direction = 0
	}

	motion.Velocity.X = direction
	motion.Velocity.Y = 0
}

// Fire 从玩家机身两侧各发射一发激光
// 返回发射的激光数量
func (s *PlayerSystem) Fire(id ecs.EntityID) int {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return 0
	}

	offsetX := config.PlayerWidth/2*config.SpriteScale - config.PlayerLaserInset
	y := pos.Y + config.LaserSpawnOffsetY

	fired := 0
	for _, x := range []float64{pos.X - offsetX, pos.X + offsetX} {
		if _, err := entities.NewLaser(s.entityManager, components.OwnerPlayer, x, y); err != nil {
			log.Printf("[PlayerSystem] 创建激光失败: %v", err)
			continue
		}
		fired++
	}
	return fired
}
