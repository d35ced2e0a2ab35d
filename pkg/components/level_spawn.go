package components

// SpawnPoint 道具生成点
type SpawnPoint struct {
	X float64
	Y float64
}

// LevelSpawnComponent 关卡道具生成状态
// 关卡开始时创建，关卡结束时随关卡实体一起销毁
//
// 不变量：
//   - SpawnedItemCount 不超过 MaxItemCount
//   - 用过的生成点从 SpawnPoints 中移除，本关不再使用
//   - CanSpawnUmbrella 一旦置为 false，本关内不再恢复
type LevelSpawnComponent struct {
	// SpawnPoints 剩余可用的生成点
	SpawnPoints []SpawnPoint

	// SpawnInterval 生成间隔（秒）
	SpawnInterval float64

	// SpawnTimer 距上次生成的累计时间（秒），每次成功生成后归零
	SpawnTimer float64

	// SpawnedItemCount 已生成道具数量（含开局贝壳）
	SpawnedItemCount int

	// MaxItemCount 本关道具数量上限
	MaxItemCount int

	// CanSpawnItem 外部开关（如过关动画期间禁用）
	CanSpawnItem bool

	// CanSpawnUmbrella 本关是否还能生成雨伞
	CanSpawnUmbrella bool
}

// HurryUpComponent 关卡限时加速状态
//
// 计时器达到 HurryUpTime 进入加速（闪字 + 音乐加速），
// 达到 UndefeatableTime 放出不死敌人。
// 加速期间玩家掉命会整体重置。
type HurryUpComponent struct {
	Timer            float64 // 已用时间（秒）
	HurryUpTime      float64 // 进入加速的时间点（秒）
	UndefeatableTime float64 // 放出不死敌人的时间点（秒）

	IsHurryUp           bool
	SpawnedUndefeatable bool
}
