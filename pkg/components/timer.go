package components

// TimerComponent 通用计时器组件
// 用于爆炸帧推进、敌人生成间隔等需要时间累积的行为
type TimerComponent struct {
	Name        string  // 计时器名称，如 "explosion_frame"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成（非重复计时器）
	Repeating   bool    // 是否为重复计时器
}

// Tick 推进计时器并返回本次推进中完成的次数
//
// 重复计时器在一次推进中可能完成多次（deltaTime 大于 TargetTime 时），
// 余下的时间保留到下一次推进。非重复计时器最多完成一次，之后保持 IsReady。
func (t *TimerComponent) Tick(deltaTime float64) int {
	if t.TargetTime <= 0 {
		return 0
	}
	if !t.Repeating && t.IsReady {
		return 0
	}

	t.CurrentTime += deltaTime

	if !t.Repeating {
		if t.CurrentTime >= t.TargetTime {
			t.IsReady = true
			return 1
		}
		return 0
	}

	finished := 0
	for t.CurrentTime >= t.TargetTime {
		t.CurrentTime -= t.TargetTime
		finished++
	}
	return finished
}
