package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
)

var (
	playerLaserColor = color.RGBA{R: 120, G: 255, B: 140, A: 255}
	enemyLaserColor  = color.RGBA{R: 255, G: 200, B: 60, A: 255}
)

// NewLaser 创建激光实体
// 玩家激光向上飞行，敌人激光向下飞行，两者都会在离开屏幕后自动回收
//
// 参数:
//   - em: 实体管理器
//   - owner: 发射方，决定尺寸、方向和可以击中的目标
//   - x, y: 激光中心的世界坐标
//
// 返回:
//   - ecs.EntityID: 激光实体ID，失败时返回 0
//   - error: 实体管理器为 nil 时返回错误
func NewLaser(em *ecs.EntityManager, owner components.ProjectileOwner, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	var (
		width, height float64
		vy            float64
		tint          color.RGBA
	)
	switch owner {
	case components.OwnerPlayer:
		width, height = config.PlayerLaserWidth, config.PlayerLaserHeight
		vy = 1
		tint = playerLaserColor
	case components.OwnerEnemy:
		width, height = config.EnemyLaserWidth, config.EnemyLaserHeight
		vy = -1
		tint = enemyLaserColor
	default:
		return 0, fmt.Errorf("unknown projectile owner: %d", owner)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, components.NewLinearMotion(0, vy))
	em.AddComponent(entityID, &components.MovableComponent{AutoDespawn: true})
	em.AddComponent(entityID, &components.SpriteSizeComponent{Width: width, Height: height})
	em.AddComponent(entityID, &components.ScaleComponent{
		ScaleX: config.SpriteScale,
		ScaleY: config.SpriteScale,
	})
	em.AddComponent(entityID, &components.SpriteComponent{Color: tint})
	em.AddComponent(entityID, &components.ProjectileComponent{Owner: owner})

	return entityID, nil
}
