// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// ItemType 定义关卡内可拾取道具的类型
type ItemType int

const (
	// ItemUnknown 未知道具类型
	ItemUnknown ItemType = iota

	// ItemPickup 普通拾取物（水果、糖果等，只加分）
	ItemPickup

	// 贝壳（集齐四种可在商店兑换额外生命）
	ItemShellBlue       // 蓝贝壳
	ItemShellPurple     // 紫贝壳
	ItemShellPurpleBlue // 紫蓝贝壳
	ItemShellRed        // 红贝壳

	// ItemUmbrella 雨伞（跳关道具，每关最多出现一次）
	ItemUmbrella
)

// itemTypeStringMap 道具类型到配置字符串的映射
var itemTypeStringMap = map[ItemType]string{
	ItemPickup:          "pickup",
	ItemShellBlue:       "shell_blue",
	ItemShellPurple:     "shell_purple",
	ItemShellPurpleBlue: "shell_purple_blue",
	ItemShellRed:        "shell_red",
	ItemUmbrella:        "umbrella",
}

// stringToItemTypeMap 配置字符串到道具类型的反向映射
var stringToItemTypeMap map[string]ItemType

func init() {
	stringToItemTypeMap = make(map[string]ItemType)
	for it, s := range itemTypeStringMap {
		stringToItemTypeMap[s] = it
	}
}

// ShellTypes 贝壳按关卡开局生成优先级排列
// 开局只生成其中第一个可生成的贝壳
var ShellTypes = [4]ItemType{
	ItemShellBlue,
	ItemShellPurple,
	ItemShellPurpleBlue,
	ItemShellRed,
}

// String 返回道具类型的配置字符串表示
func (i ItemType) String() string {
	if s, ok := itemTypeStringMap[i]; ok {
		return s
	}
	return "unknown"
}

// ItemTypeFromString 将配置字符串转换为 ItemType
func ItemTypeFromString(s string) ItemType {
	if it, ok := stringToItemTypeMap[s]; ok {
		return it
	}
	return ItemUnknown
}

// IsShell 判断是否为贝壳
func (i ItemType) IsShell() bool {
	switch i {
	case ItemShellBlue, ItemShellPurple, ItemShellPurpleBlue, ItemShellRed:
		return true
	default:
		return false
	}
}
