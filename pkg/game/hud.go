package game

import "sort"

// HUD 记录展示层状态的 Presenter
// 前端每帧从这里读取要显示的内容
type HUD struct {
	active  map[string]bool
	numbers map[string]int
	prices  map[int]PriceColor
}

// NewHUD 创建空的 HUD 状态
func NewHUD() *HUD {
	return &HUD{
		active:  make(map[string]bool),
		numbers: make(map[string]int),
		prices:  make(map[int]PriceColor),
	}
}

func (h *HUD) SetActive(name string, active bool) {
	h.active[name] = active
}

func (h *HUD) SetNumber(name string, value int) {
	h.numbers[name] = value
}

func (h *HUD) SetPriceColor(index int, c PriceColor) {
	h.prices[index] = c
}

// IsActive 对象是否显示，未设置过的对象视为隐藏
func (h *HUD) IsActive(name string) bool {
	return h.active[name]
}

// Number 返回数字文字的当前值
func (h *HUD) Number(name string) int {
	return h.numbers[name]
}

// PriceColor 返回商品价格颜色，未设置时为黑色
func (h *HUD) PriceColor(index int) PriceColor {
	return h.prices[index]
}

// ActiveNames 返回所有显示中的对象名（排序后）
func (h *HUD) ActiveNames() []string {
	names := make([]string, 0, len(h.active))
	for name, active := range h.active {
		if active {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
