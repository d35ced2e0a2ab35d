package types

// Tag 接触/触发事件中的对象类别
type Tag int

const (
	TagNone Tag = iota
	TagPlayer
	TagPlatform
	TagEnemy
	TagBubble
	// TagTeleport 泡泡传送区域（进入后 Y 坐标对齐到区域）
	TagTeleport
	// TagGroundFire 火焰泡泡留下的地面火焰
	TagGroundFire
	// TagItem 可拾取道具
	TagItem
)

// String 返回标签名称（用于日志）
func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "Player"
	case TagPlatform:
		return "Platform"
	case TagEnemy:
		return "Enemy"
	case TagBubble:
		return "Bubble"
	case TagTeleport:
		return "Teleport"
	case TagGroundFire:
		return "GroundFire"
	case TagItem:
		return "Item"
	default:
		return "None"
	}
}
