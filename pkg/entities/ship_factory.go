package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/game"
)

var (
	playerColor = color.RGBA{R: 90, G: 200, B: 255, A: 255}
	enemyColor  = color.RGBA{R: 240, G: 90, B: 90, A: 255}
)

// NewPlayer 创建玩家实体
// 玩家出生在屏幕底部中央，不自动回收
//
// 参数:
//   - em: 实体管理器
//   - win: 窗口尺寸（用于计算底部位置）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID，失败时返回 0
//   - error: 实体管理器为 nil 时返回错误
func NewPlayer(em *ecs.EntityManager, win game.WinSize) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	bottom := -win.HalfH() + config.PlayerHeight/2*config.SpriteScale + config.PlayerBottomPadding

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: 0, Y: bottom})
	em.AddComponent(entityID, components.NewLinearMotion(0, 0))
	em.AddComponent(entityID, &components.MovableComponent{AutoDespawn: false})
	em.AddComponent(entityID, &components.SpriteSizeComponent{
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
	})
	em.AddComponent(entityID, &components.ScaleComponent{
		ScaleX: config.SpriteScale,
		ScaleY: config.SpriteScale,
	})
	em.AddComponent(entityID, &components.SpriteComponent{Color: playerColor})
	em.AddComponent(entityID, &components.PlayerComponent{})

	return entityID, nil
}

// NewEnemy 创建沿编队飞行的敌人实体
// 敌人出生在 formation.Start，并持有 formation 的独立副本
//
// 参数:
//   - em: 实体管理器
//   - formation: FormationMaker 返回的编队参数
//
// 返回:
//   - ecs.EntityID: 敌人实体ID，失败时返回 0
//   - error: 实体管理器为 nil 时返回错误
func NewEnemy(em *ecs.EntityManager, formation components.Formation) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: formation.Start.X, Y: formation.Start.Y})
	em.AddComponent(entityID, components.NewOrbitalMotion(formation))
	// 编队轨道始终位于回收范围内，敌人只能被击毁
	em.AddComponent(entityID, &components.MovableComponent{AutoDespawn: false})
	em.AddComponent(entityID, &components.SpriteSizeComponent{
		Width:  config.EnemyWidth,
		Height: config.EnemyHeight,
	})
	em.AddComponent(entityID, &components.ScaleComponent{
		ScaleX: config.SpriteScale,
		ScaleY: config.SpriteScale,
	})
	em.AddComponent(entityID, &components.SpriteComponent{Color: enemyColor})
	em.AddComponent(entityID, &components.EnemyComponent{})

	return entityID, nil
}
