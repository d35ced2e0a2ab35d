package types

// PowerUpKind 定义商店道具（强化效果）的种类
type PowerUpKind int

const (
	PowerUpUnknown PowerUpKind = iota
	// PowerUpForceBoost 泡泡推力加成：吐出的泡泡飞得更快更远
	PowerUpForceBoost
	// PowerUpRapidFire 连射：缩短吐泡泡冷却
	PowerUpRapidFire
	// PowerUpSpeedBoost 移动速度加成
	PowerUpSpeedBoost
	// PowerUpShield 护盾：期间受伤不掉命
	PowerUpShield
)

var powerUpKindStringMap = map[PowerUpKind]string{
	PowerUpForceBoost: "force_boost",
	PowerUpRapidFire:  "rapid_fire",
	PowerUpSpeedBoost: "speed_boost",
	PowerUpShield:     "shield",
}

// String 返回强化种类的配置字符串表示
func (k PowerUpKind) String() string {
	if s, ok := powerUpKindStringMap[k]; ok {
		return s
	}
	return "unknown"
}

// PowerUpKindFromString 将配置字符串转换为 PowerUpKind
func PowerUpKindFromString(s string) PowerUpKind {
	for k, v := range powerUpKindStringMap {
		if v == s {
			return k
		}
	}
	return PowerUpUnknown
}
