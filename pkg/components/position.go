package components

import "github.com/gonewx/invaders/pkg/utils"

// PositionComponent 存储实体中心的世界坐标
// 世界坐标原点在屏幕中心，Y轴向上
type PositionComponent struct {
	X float64
	Y float64
}

// Vec 以向量形式返回位置
func (p *PositionComponent) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// Set 用向量设置位置
func (p *PositionComponent) Set(v utils.Vec2) {
	p.X = v.X
	p.Y = v.Y
}
