package entities

import "image/color"

// 调试绘制颜色
var (
	ColorPlayer       = color.RGBA{R: 80, G: 200, B: 80, A: 255}
	ColorEnemy        = color.RGBA{R: 200, G: 80, B: 200, A: 255}
	ColorUndefeatable = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorPlatform     = color.RGBA{R: 90, G: 90, B: 140, A: 120}
	ColorTeleport     = color.RGBA{R: 60, G: 160, B: 220, A: 120}
	ColorGroundFire   = color.RGBA{R: 255, G: 110, B: 20, A: 200}
	ColorItem         = color.RGBA{R: 250, G: 220, B: 60, A: 255}
	ColorPointText    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorParticle     = color.RGBA{R: 200, G: 230, B: 255, A: 255}

	bubbleColors = map[string]color.RGBA{
		"normal": {R: 120, G: 200, B: 255, A: 200},
		"fire":   {R: 255, G: 80, B: 40, A: 220},
		"bomb":   {R: 60, G: 60, B: 60, A: 240},
		"glitch": {R: 180, G: 255, B: 120, A: 220},
	}
)
