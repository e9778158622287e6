package components

import (
	"math"

	"github.com/gonewx/invaders/pkg/utils"
)

// Formation 编队轨道参数
//
// 同一编队（cohort）的敌人共享起点、椭圆和初始角度。
// 每个敌人持有自己的副本，因此推进 Angle 不会影响同编队的其他成员。
type Formation struct {
	Start  utils.Vec2 // 出生点
	Radius utils.Vec2 // 椭圆半径 (x, y)
	Pivot  utils.Vec2 // 椭圆中心
	Speed  float64    // 线速度（与 BaseSpeed 同量纲），整个编队共享
	Angle  float64    // 当前极角（相对 Pivot）
}

// PointAt 返回椭圆上极角为 angle 的点
func (f Formation) PointAt(angle float64) utils.Vec2 {
	return utils.Vec2{
		X: f.Pivot.X + f.Radius.X*math.Cos(angle),
		Y: f.Pivot.Y + f.Radius.Y*math.Sin(angle),
	}
}

// SameOrbit 判断两个编队是否是同一模板（起点、椭圆、初始角度一致）
func (f Formation) SameOrbit(o Formation) bool {
	return f.Start == o.Start && f.Radius == o.Radius && f.Pivot == o.Pivot && f.Angle == o.Angle
}
