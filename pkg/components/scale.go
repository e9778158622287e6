package components

import "github.com/gonewx/invaders/pkg/utils"

// ScaleComponent 存储实体级别的缩放因子
// 同时作用于渲染尺寸和碰撞盒尺寸
//
// 最终碰撞盒尺寸 = SpriteSizeComponent * ScaleComponent
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.5 = 50%）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小，0.5 = 50%）
	ScaleY float64
}

// Vec 以向量形式返回缩放
func (s *ScaleComponent) Vec() utils.Vec2 {
	return utils.Vec2{X: s.ScaleX, Y: s.ScaleY}
}
