package components

import "github.com/decker502/bubblebobble/pkg/types"

// ItemComponent 关卡内可拾取的道具
type ItemComponent struct {
	Type   types.ItemType
	Points int // 拾取时获得的分数
}

// PointEffectComponent 飘分特效（戳破泡泡后在原位置显示分数）
type PointEffectComponent struct {
	Text      string
	RiseSpeed float64 // 上升速度（像素/秒）
}
