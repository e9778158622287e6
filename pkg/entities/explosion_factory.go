package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
)

var explosionColor = color.RGBA{R: 255, G: 160, B: 40, A: 255}

// NewExplosionRequest 创建爆炸生成请求
// 请求实体只有位置，由 ExplosionSystem 消费
func NewExplosionRequest(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.ExplosionRequestComponent{})

	return entityID, nil
}

// NewExplosion 创建爆炸动画实体
// 帧索引从 0 开始，每隔 ExplosionFrameInterval 秒前进一帧，到达 ExplosionFrameCount 后销毁
func NewExplosion(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.ExplosionComponent{
		Frame:      0,
		FrameCount: config.ExplosionFrameCount,
	})
	em.AddComponent(entityID, &components.TimerComponent{
		Name:       "explosion_frame",
		TargetTime: config.ExplosionFrameInterval,
		Repeating:  true,
	})
	em.AddComponent(entityID, &components.SpriteSizeComponent{
		Width:  config.ExplosionSize,
		Height: config.ExplosionSize,
	})
	em.AddComponent(entityID, &components.SpriteComponent{Color: explosionColor})

	return entityID, nil
}
