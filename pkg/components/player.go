package components

// PlayerComponent 标记玩家实体（同一时刻最多一个）
type PlayerComponent struct{}
