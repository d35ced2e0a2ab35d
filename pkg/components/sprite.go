package components

import "image/color"

// SpriteComponent 实体的可见性与调试绘制信息
// 渲染由前端负责，核心逻辑只切换 Visible
type SpriteComponent struct {
	Visible bool
	Width   float64
	Height  float64
	Color   color.RGBA
	Label   string // 调试绘制时显示的文字，可为空
}

// ActiveComponent 可整体启用/禁用的对象（敌人组、不死敌人、提示文字）
// 对应引擎中的 SetActive
type ActiveComponent struct {
	Name   string
	Active bool
}
