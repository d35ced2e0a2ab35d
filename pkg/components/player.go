package components

// PlayerComponent 玩家实体
type PlayerComponent struct {
	Name string

	// Facing 朝向（1 向右，-1 向左），决定吐泡泡方向
	Facing float64

	// ShootTimer 距下次可吐泡泡的剩余冷却（秒）
	ShootTimer float64

	// JumpSpeed 起跳速度（像素/秒）
	JumpSpeed float64
}

// HealthComponent 玩家受伤能力
// 生命数跨关卡保存在 GameSession 中，这里只记录本关内的受伤状态
type HealthComponent struct {
	// Invulnerable 护盾期间受伤不掉命
	Invulnerable bool

	// HurtCooldown 受伤后的无敌时间（秒）
	HurtCooldown float64
	// HurtTimer 剩余无敌时间，大于 0 时不会再次受伤
	HurtTimer float64

	// RespawnX, RespawnY 掉命后的复活位置
	RespawnX float64
	RespawnY float64
}

// ShootComponent 吐泡泡能力
type ShootComponent struct {
	Force              float64 // 基础推力
	ForceBoostMultiple float64 // 推力加成倍数
	ForceBoostIsActive bool

	Cooldown          float64 // 基础冷却（秒）
	RapidFireMultiple float64 // 连射时冷却缩放（< 1）
	RapidFireIsActive bool
}

// CurrentForce 返回当前生效的推力
func (s *ShootComponent) CurrentForce() float64 {
	if s.ForceBoostIsActive {
		return s.Force * s.ForceBoostMultiple
	}
	return s.Force
}

// CurrentCooldown 返回当前生效的冷却时间
func (s *ShootComponent) CurrentCooldown() float64 {
	if s.RapidFireIsActive {
		return s.Cooldown * s.RapidFireMultiple
	}
	return s.Cooldown
}

// MovementComponent 移动能力
type MovementComponent struct {
	Speed              float64
	SpeedBoostMultiple float64
	SpeedBoostIsActive bool
}

// CurrentSpeed 返回当前生效的移动速度
func (m *MovementComponent) CurrentSpeed() float64 {
	if m.SpeedBoostIsActive {
		return m.Speed * m.SpeedBoostMultiple
	}
	return m.Speed
}
