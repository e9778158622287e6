package components

// ExplosionRequestComponent 爆炸生成请求
// 请求实体只携带 PositionComponent，由 ExplosionSystem 在同一步或下一步消费后销毁
type ExplosionRequestComponent struct{}

// ExplosionComponent 爆炸动画状态
//
// 状态机: 生成 -> 播放(Frame 0..FrameCount-1) -> 结束
// 配合可重复的 TimerComponent 推进帧索引
type ExplosionComponent struct {
	Frame      int // 当前帧索引
	FrameCount int // 终止帧数，Frame 到达该值时实体被销毁
}
