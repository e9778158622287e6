package components

// EnemyComponent 标记敌人实体
type EnemyComponent struct{}
