package types

// BubbleType 定义泡泡的类型
type BubbleType int

const (
	// BubbleNormal 普通泡泡（玩家吐出，困住敌人）
	BubbleNormal BubbleType = iota
	// BubbleFire 火焰泡泡，戳破后在地面留下火焰
	BubbleFire
	// BubbleBomb 炸弹泡泡，生成时即可戳破
	BubbleBomb
	// BubbleGlitch 故障泡泡
	BubbleGlitch
)

// String 返回泡泡类型的字符串表示
func (b BubbleType) String() string {
	switch b {
	case BubbleNormal:
		return "normal"
	case BubbleFire:
		return "fire"
	case BubbleBomb:
		return "bomb"
	case BubbleGlitch:
		return "glitch"
	default:
		return "unknown"
	}
}

// BubbleTypeFromString 将配置字符串转换为 BubbleType
// 未知字符串返回 BubbleNormal 和 false
func BubbleTypeFromString(s string) (BubbleType, bool) {
	switch s {
	case "normal":
		return BubbleNormal, true
	case "fire":
		return BubbleFire, true
	case "bomb":
		return BubbleBomb, true
	case "glitch":
		return BubbleGlitch, true
	default:
		return BubbleNormal, false
	}
}

// FloatsOnPlatform 进入平台触发区后是否悬浮
// 普通泡泡不在此列（原作如此，保持不变）
func (b BubbleType) FloatsOnPlatform() bool {
	switch b {
	case BubbleFire, BubbleBomb, BubbleGlitch:
		return true
	default:
		return false
	}
}
