package systems

import (
	"math"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/game"
	"github.com/gonewx/invaders/pkg/utils"
)

// orbitSnapDivisor 敌人距离轨道目标点小于 maxDistance*speed/orbitSnapDivisor 时才推进角度
const orbitSnapDivisor = 20.0

// MovementSystem 推进所有可移动实体的位置，并回收离开屏幕的实体
//
// 直线运动和编队运动都由 MotionComponent 描述，移动系统只看运动方式，不看实体类型。
type MovementSystem struct {
	em    *ecs.EntityManager
	state *game.GameState
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, state *game.GameState) *MovementSystem {
	return &MovementSystem{
		em:    em,
		state: state,
	}
}

// Update 推进一个固定步
//
// 参数:
//   - deltaTime: 固定步长（秒）
func (s *MovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.MotionComponent,
		*components.MovableComponent,
	](s.em)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		motion, _ := ecs.GetComponent[*components.MotionComponent](s.em, id)
		movable, _ := ecs.GetComponent[*components.MovableComponent](s.em, id)

		pos.Set(Advance(pos.Vec(), motion, deltaTime))

		if movable.AutoDespawn && s.outOfBounds(pos) {
			s.em.DestroyEntity(id)
		}
	}
}

// outOfBounds 检查位置是否越过屏幕边界外的回收余量（任一轴）
func (s *MovementSystem) outOfBounds(pos *components.PositionComponent) bool {
	maxX := s.state.WinSize.HalfW() + config.DespawnMargin
	maxY := s.state.WinSize.HalfH() + config.DespawnMargin
	return pos.X > maxX || pos.X < -maxX || pos.Y > maxY || pos.Y < -maxY
}

// Advance 计算实体在本步之后的位置
//
// 直线运动: pos + velocity * deltaTime * BaseSpeed
// 编队运动: 见 advanceOrbital；会更新 motion.Formation.Angle
func Advance(pos utils.Vec2, motion *components.MotionComponent, deltaTime float64) utils.Vec2 {
	switch motion.Kind {
	case components.MotionOrbital:
		return advanceOrbital(pos, &motion.Formation, deltaTime)
	default:
		return pos.Add(motion.Velocity.Scale(deltaTime * config.BaseSpeed))
	}
}

// advanceOrbital 让实体沿编队椭圆飞行
//
// 每步先按线速度折算出角度增量，得到椭圆上的目标点；
// 实体朝目标点移动，单步距离不超过 speed*deltaTime，且不越过目标点。
// 只有实体已经贴近轨道时才提交新角度，因此从出生点飞入轨道的过程中角度保持不变。
// 从左侧出发的编队逆时针旋转，从右侧出发的顺时针旋转。
func advanceOrbital(pos utils.Vec2, f *components.Formation, deltaTime float64) utils.Vec2 {
	maxDistance := deltaTime * f.Speed

	dir := -1.0
	if f.Start.X < 0 {
		dir = 1.0
	}

	// 以较小半径的四分之一周长为尺度，把线速度换算成角速度
	angle := f.Angle + dir*f.Speed*deltaTime/(math.Min(f.Radius.X, f.Radius.Y)*math.Pi/2)

	dst := f.PointAt(angle)
	delta := pos.Sub(dst)
	distance := delta.Len()

	ratio := 0.0
	if distance != 0 {
		ratio = maxDistance / distance
	}

	next := pos.Sub(delta.Scale(ratio))
	// 不越过目标点
	if delta.X > 0 {
		next.X = math.Max(next.X, dst.X)
	} else {
		next.X = math.Min(next.X, dst.X)
	}
	if delta.Y > 0 {
		next.Y = math.Max(next.Y, dst.Y)
	} else {
		next.Y = math.Min(next.Y, dst.Y)
	}

	if distance < maxDistance*f.Speed/orbitSnapDivisor {
		f.Angle = angle
	}

	return next
}
