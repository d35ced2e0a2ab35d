package components

// EnemyComponent 普通敌人
type EnemyComponent struct {
	// Speed 巡逻速度（像素/秒）
	Speed float64
	// Direction 巡逻方向（1 向右，-1 向左）
	Direction float64

	// LaunchedAtDeath 被地面火焰或爆炸击中后弹飞死亡
	LaunchedAtDeath bool
}

// UndefeatableComponent 不死敌人（限时加速第二阶段放出）
//
// 行为周期：追击 StopInterval 秒 → 停顿 StopTime 秒 → 重新开始
type UndefeatableComponent struct {
	Speed        float64 // 追击加速度（像素/秒²）
	StopInterval float64 // 追击时长（秒）
	StopTime     float64 // 停顿时长（秒）
	Timer        float64 // 当前周期计时（秒）

	// StartX, StartY 每次启用时的出生位置
	StartX float64
	StartY float64

	// WasActive 上一帧是否处于启用状态（用于检测启用边沿）
	WasActive bool
}
