package config

// 布局配置常量
// 本文件定义了调试前端使用的逻辑屏幕尺寸和 HUD 位置

const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 512

	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 448

	// HUDMarginX HUD 文字左边距
	HUDMarginX = 8

	// HUDLineHeight HUD 文字行高
	HUDLineHeight = 16
)

// 物理常量
const (
	// Gravity 重力加速度（像素/秒²），乘以 RigidBodyComponent.GravityScale
	Gravity = 600.0

	// BubbleRiseGravityScale 泡泡默认重力缩放（负值表示上浮）
	BubbleRiseGravityScale = -0.15
)
