package components

import "github.com/gonewx/invaders/pkg/utils"

// SpriteSizeComponent 精灵的基础尺寸（像素，未缩放）
// 出生时设置，之后不再修改；碰撞盒 = 尺寸 × ScaleComponent
type SpriteSizeComponent struct {
	Width  float64
	Height float64
}

// Size 以向量形式返回尺寸
func (s *SpriteSizeComponent) Size() utils.Vec2 {
	return utils.Vec2{X: s.Width, Y: s.Height}
}
