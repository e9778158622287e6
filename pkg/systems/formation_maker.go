package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/game"
	"github.com/gonewx/invaders/pkg/utils"
)

// FormationMaker 生成敌人编队参数
//
// 同一个模板最多分配给 membersMax 个敌人，之后重新生成。
// 同编队的敌人拿到完全相同的起点、椭圆和初始角度，飞出同一条曲线。
// 由 EnemySpawnSystem 持有，不是全局状态。
type FormationMaker struct {
	currentTemplate *components.Formation
	currentMembers  int
	membersMax      int
	rng             *rand.Rand
}

// NewFormationMaker 创建编队生成器
//
// 参数:
//   - rng: 随机数源（测试中传入固定种子）
//   - membersMax: 每个模板的成员上限，<= 0 时使用 config.FormationMembersMax
func NewFormationMaker(rng *rand.Rand, membersMax int) *FormationMaker {
	if membersMax <= 0 {
		membersMax = config.FormationMembersMax
	}
	return &FormationMaker{
		membersMax: membersMax,
		rng:        rng,
	}
}

// Make 为一个新敌人返回编队参数
//
// 当前模板存在且未满员时返回模板副本；否则生成新模板并把成员数重置为 1。
func (fm *FormationMaker) Make(win game.WinSize) components.Formation {
	if fm.currentTemplate != nil && fm.currentMembers < fm.membersMax {
		fm.currentMembers++
		return *fm.currentTemplate
	}

	formation := fm.generate(win)
	fm.currentTemplate = &formation
	fm.currentMembers = 1
	return formation
}

// CurrentMembers 返回当前模板已分配的成员数
func (fm *FormationMaker) CurrentMembers() int {
	return fm.currentMembers
}

// generate 随机生成一个新模板
func (fm *FormationMaker) generate(win game.WinSize) components.Formation {
	// 起点：屏幕水平边界外 100，纵向随机
	wSpan := win.HalfW() + config.FormationSpawnOffset
	hSpan := win.HalfH() + config.FormationSpawnOffset

	// 两个分支相同，起点总在右侧
	x := wSpan
	if fm.rng.Intn(2) == 0 {
		x = wSpan
	}
	y := fm.uniform(-hSpan, hSpan)
	start := utils.Vec2{X: x, Y: y}

	// 椭圆中心偏向游戏区中上部
	pivot := utils.Vec2{
		X: fm.uniform(-win.W/4, win.W/4),
		Y: fm.uniform(0, win.H/3),
	}

	radius := utils.Vec2{
		X: fm.uniform(config.FormationRadiusXMin, config.FormationRadiusXMax),
		Y: config.FormationRadiusY,
	}

	// 初始角度让敌人正好从自己的轨道位置出发
	angle := math.Atan2(start.Y-pivot.Y, start.X-pivot.X)

	return components.Formation{
		Start:  start,
		Radius: radius,
		Pivot:  pivot,
		Speed:  config.BaseSpeed,
		Angle:  angle,
	}
}

// uniform 返回 [lo, hi) 内的均匀随机数
func (fm *FormationMaker) uniform(lo, hi float64) float64 {
	return lo + fm.rng.Float64()*(hi-lo)
}
