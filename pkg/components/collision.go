package components

import "github.com/decker502/bubblebobble/pkg/types"

// CollisionComponent 定义实体的碰撞检测边界框
// 用于接触系统检测实体之间的接触（泡泡与玩家、泡泡与平台区域等）
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量（像素），正值向下偏移

	// Tag 实体类别，接触事件中传给对方
	Tag types.Tag

	// IsTrigger 是否为触发区域（只产生进入/离开事件，不算实体接触）
	IsTrigger bool

	// Disabled 禁用后不参与检测（泡泡戳破后立即禁用）
	Disabled bool
}
