package components

// ProjectileOwner 激光的发射方
type ProjectileOwner int

const (
	// OwnerPlayer 玩家发射，只能击中敌人
	OwnerPlayer ProjectileOwner = iota
	// OwnerEnemy 敌人发射，只能击中玩家
	OwnerEnemy
)

// String 返回发射方名称（用于日志）
func (o ProjectileOwner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// ProjectileComponent 标记激光实体及其发射方
type ProjectileComponent struct {
	Owner ProjectileOwner
}
