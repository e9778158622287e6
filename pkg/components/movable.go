package components

// MovableComponent 标记可被移动系统推进的实体
type MovableComponent struct {
	// AutoDespawn 为 true 时，实体越过屏幕边界外的回收余量后被销毁
	AutoDespawn bool
}
