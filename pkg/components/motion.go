package components

import "github.com/gonewx/invaders/pkg/utils"

// MotionKind 实体位置推进方式
type MotionKind int

const (
	// MotionLinear 直线运动：位置 += 速度 * 步长 * 基础速度
	MotionLinear MotionKind = iota
	// MotionOrbital 编队轨道运动：沿 Formation 描述的椭圆飞行
	MotionOrbital
)

// String 返回运动方式名称（用于日志）
func (k MotionKind) String() string {
	switch k {
	case MotionLinear:
		return "linear"
	case MotionOrbital:
		return "orbital"
	default:
		return "unknown"
	}
}

// MotionComponent 描述实体本步如何移动
//
// Kind 为 MotionLinear 时只使用 Velocity；为 MotionOrbital 时只使用 Formation。
// 由 MovementSystem 统一消费，移动系统不区分实体类型。
type MotionComponent struct {
	Kind      MotionKind
	Velocity  utils.Vec2 // 方向速度，单位为 BaseSpeed 的倍数
	Formation Formation  // 该实体独有的编队副本
}

// NewLinearMotion 创建直线运动组件
func NewLinearMotion(vx, vy float64) *MotionComponent {
	return &MotionComponent{
		Kind:     MotionLinear,
		Velocity: utils.Vec2{X: vx, Y: vy},
	}
}

// NewOrbitalMotion 创建编队轨道运动组件
// formation 按值传入，组件持有独立副本
func NewOrbitalMotion(formation Formation) *MotionComponent {
	return &MotionComponent{
		Kind:      MotionOrbital,
		Formation: formation,
	}
}
