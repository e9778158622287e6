package config

// 游戏常量
// 本文件定义了固定步长、基础速度和精灵尺寸等编译期常量
// 可调参数（窗口尺寸、敌人上限、开火概率等）见 game_config.go

// 时间与速度
const (
	// TimeStep 固定时间步长（秒），宿主以 60 TPS 调用每个系统一次
	TimeStep = 1.0 / 60.0

	// BaseSpeed 基础速度常量
	// 直线运动: 位置 += 速度 * TimeStep * BaseSpeed
	// 编队运动: 编队的 Speed 也取该值
	BaseSpeed = 500.0
)

// 窗口
const (
	// DefaultWindowWidth 默认窗口宽度（像素）
	DefaultWindowWidth = 598

	// DefaultWindowHeight 默认窗口高度（像素）
	DefaultWindowHeight = 676

	// WindowTitle 窗口标题
	WindowTitle = "Invaders"
)

// 回收与编队
const (
	// DespawnMargin 屏幕边界外的回收余量（世界单位）
	// 启用自动回收的实体越过 半宽/半高 + DespawnMargin 后被销毁
	DespawnMargin = 200.0

	// FormationMembersMax 每个编队模板最多分配给多少个敌人
	FormationMembersMax = 2

	// FormationSpawnOffset 编队起点位于屏幕边界外的距离
	FormationSpawnOffset = 100.0

	// FormationRadiusXMin / FormationRadiusXMax 椭圆X半径的随机范围
	FormationRadiusXMin = 80.0
	FormationRadiusXMax = 150.0

	// FormationRadiusY 椭圆Y半径（固定）
	FormationRadiusY = 100.0
)

// 爆炸
const (
	// ExplosionFrameCount 爆炸动画帧数，帧索引到达该值时实体被销毁
	ExplosionFrameCount = 16

	// ExplosionFrameInterval 爆炸动画每帧时长（秒）
	ExplosionFrameInterval = 0.05

	// ExplosionSize 爆炸精灵单帧尺寸（像素）
	ExplosionSize = 64.0
)

// 精灵尺寸（像素，未缩放）
const (
	// SpriteScale 所有实体的统一缩放
	SpriteScale = 0.5

	PlayerWidth  = 144.0
	PlayerHeight = 75.0

	PlayerLaserWidth  = 9.0
	PlayerLaserHeight = 54.0

	EnemyWidth  = 93.0
	EnemyHeight = 84.0

	EnemyLaserWidth  = 17.0
	EnemyLaserHeight = 55.0
)

// 射击
const (
	// LaserSpawnOffsetY 激光相对发射者中心的纵向偏移
	LaserSpawnOffsetY = 15.0

	// PlayerLaserInset 玩家双管激光相对机身边缘的内缩距离
	PlayerLaserInset = 5.0

	// PlayerBottomPadding 玩家出生时距离屏幕底部的间距
	PlayerBottomPadding = 5.0
)
