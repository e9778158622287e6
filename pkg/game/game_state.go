package game

// WinSize 窗口逻辑尺寸（像素）
type WinSize struct {
	W float64
	H float64
}

// HalfW 返回半宽
func (w WinSize) HalfW() float64 { return w.W / 2 }

// HalfH 返回半高
func (w WinSize) HalfH() float64 { return w.H / 2 }

// EnemyCount 存活敌人计数
//
// 生成系统在创建敌人时调用 Increment，碰撞系统在每个被击毁的敌人上调用一次 Decrement。
// 计数永远不会小于 0。
type EnemyCount struct {
	value int
}

// Increment 存活敌人 +1
func (c *EnemyCount) Increment() {
	c.value++
}

// Decrement 存活敌人 -1，已为 0 时保持不变
// 返回是否实际发生了递减
func (c *EnemyCount) Decrement() bool {
	if c.value <= 0 {
		return false
	}
	c.value--
	return true
}

// Value 返回当前存活敌人数
func (c *EnemyCount) Value() int {
	return c.value
}

// PlayerState 玩家存活状态
//
// 玩家被击中时 Alive 置为 false 并记录时间戳；
// 复活逻辑根据 LastDestroyed + 复活延迟决定何时重新生成玩家。
type PlayerState struct {
	Alive         bool
	LastDestroyed float64 // 最近一次被击毁的游戏时间（秒），0 表示从未被击毁
	Deaths        int     // 累计被击毁次数
}

// Spawned 标记玩家已生成
func (p *PlayerState) Spawned() {
	p.Alive = true
}

// Destroyed 标记玩家被击毁并记录时间
func (p *PlayerState) Destroyed(now float64) {
	p.Alive = false
	p.LastDestroyed = now
	p.Deaths++
}

// ShouldRespawn 判断玩家是否可以复活
//
// 从未被击毁的玩家立即生成；被击毁过的玩家需等待 delay 秒
func (p *PlayerState) ShouldRespawn(now, delay float64) bool {
	if p.Alive {
		return false
	}
	if p.Deaths == 0 {
		return true
	}
	return now-p.LastDestroyed > delay
}

// Clock 游戏时钟，按固定步长累积
type Clock struct {
	elapsed float64
}

// Advance 推进时钟
func (c *Clock) Advance(deltaTime float64) {
	c.elapsed += deltaTime
}

// Now 返回已经过的游戏时间（秒）
func (c *Clock) Now() float64 {
	return c.elapsed
}

// GameState 一局游戏的共享状态
//
// 每个 GameScene 持有自己的实例，通过构造函数显式传递给各个系统；
// 每项状态只由一个系统在其 Update 中修改：
//   - EnemyCount: 生成系统递增，碰撞系统递减
//   - Player: 碰撞系统记录击毁，玩家系统记录生成
//   - Clock: 场景在每步开始时推进
type GameState struct {
	WinSize    WinSize
	EnemyCount EnemyCount
	Player     PlayerState
	Clock      Clock
	Kills      int // 被玩家击毁的敌人数（仅用于日志）
}

// NewGameState 创建游戏状态
func NewGameState(width, height float64) *GameState {
	return &GameState{
		WinSize: WinSize{W: width, H: height},
	}
}
