package components

// LevelCounterComponent 关卡/世界编号显示
type LevelCounterComponent struct {
	LevelNumber int
	WorldNumber int

	// SkippedLevels 拾取雨伞跳关后置位，下次更新编号时 +2
	SkippedLevels bool

	// TransitionNumbers 过渡关编号，到达时显示为 0
	TransitionNumbers []int
}
