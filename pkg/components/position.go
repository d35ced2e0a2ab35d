package components

// PositionComponent 实体的世界坐标（碰撞盒中心）
type PositionComponent struct {
	X float64
	Y float64
}

// RigidBodyComponent 简化的 2D 刚体
// 只保存积分所需的数据：速度、重力缩放和本帧累计的力
type RigidBodyComponent struct {
	VX float64 // 水平速度（像素/秒）
	VY float64 // 垂直速度（像素/秒），向下为正

	// GravityScale 重力缩放，0 表示不受重力影响，负值表示上浮
	GravityScale float64

	// ForceX, ForceY 本帧累计的力，物理积分后清零
	ForceX float64
	ForceY float64

	// Mass 质量，<= 0 时按 1 处理
	Mass float64

	// LinearDrag 线性阻尼（每秒衰减比例）
	LinearDrag float64

	// Grounded 本帧是否落在地面上（由物理系统写入）
	Grounded bool

	// Kinematic 不受屏幕边界约束（弹飞死亡的敌人）
	Kinematic bool
}

// AddForce 累加本帧的力
func (rb *RigidBodyComponent) AddForce(fx, fy float64) {
	rb.ForceX += fx
	rb.ForceY += fy
}
