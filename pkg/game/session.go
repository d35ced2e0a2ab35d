package game

import (
	"log"

	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/types"
)

// LevelPhase 关卡阶段
type LevelPhase int

const (
	// PhaseIntro 关卡开场（计时器不推进）
	PhaseIntro LevelPhase = iota
	// PhaseStarted 关卡进行中
	PhaseStarted
	// PhaseCleared 敌人全部消灭
	PhaseCleared
	// PhaseGameOver 生命耗尽
	PhaseGameOver
)

// String 返回阶段名称（用于日志）
func (p LevelPhase) String() string {
	switch p {
	case PhaseIntro:
		return "Intro"
	case PhaseStarted:
		return "Started"
	case PhaseCleared:
		return "Cleared"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// 展示层文字对象名称
const (
	TextHurryUp = "hurry_up"
	TextScore   = "score"
	TextLives   = "lives"
	TextLevel   = "level"
	TextWorld   = "world"
)

// PriceColor 商店价格文字颜色
type PriceColor int

const (
	// PriceBlack 买得起
	PriceBlack PriceColor = iota
	// PriceRed 分数不足
	PriceRed
)

// Presenter 展示层协作者
// 核心逻辑只通过这三个方法影响画面
type Presenter interface {
	SetActive(name string, active bool)
	SetNumber(name string, value int)
	SetPriceColor(index int, c PriceColor)
}

// NopPresenter 丢弃所有展示调用（无界面运行时使用）
type NopPresenter struct{}

func (NopPresenter) SetActive(string, bool)        {}
func (NopPresenter) SetNumber(string, int)         {}
func (NopPresenter) SetPriceColor(int, PriceColor) {}

// GameSession 一局游戏的全局状态
// 跨关卡保存分数、生命和背包，由场景注入到每个系统中
type GameSession struct {
	presenter Presenter

	points    int
	maxPoints int

	lives    int
	maxLives int
	// lostLife 本帧是否刚掉命，EndFrame 时清除
	lostLife bool

	inventory      map[types.ItemType]int
	spawnableItems []types.ItemType
	popStats       map[types.BubbleType]int

	phase LevelPhase

	// umbrellaCollected 本关拾取了雨伞（过关时跳关）
	umbrellaCollected bool

	// 关卡内实体句柄，关卡切换时由场景重新设置
	PlayerEntity       ecs.EntityID
	HurryUpTextEntity  ecs.EntityID
	UndefeatableEntity ecs.EntityID
	EnemyGroupEntity   ecs.EntityID
}

// NewGameSession 根据玩法配置创建新的一局游戏
func NewGameSession(cfg *config.GameConfig, presenter Presenter) *GameSession {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if presenter == nil {
		presenter = NopPresenter{}
	}

	s := &GameSession{
		presenter:      presenter,
		maxPoints:      cfg.MaxPoints,
		lives:          cfg.Player.StartLives,
		maxLives:       cfg.Player.MaxLives,
		inventory:      make(map[types.ItemType]int),
		spawnableItems: cfg.SpawnableItemTypes(),
		popStats:       make(map[types.BubbleType]int),
		phase:          PhaseIntro,
	}

	presenter.SetNumber(TextScore, 0)
	presenter.SetNumber(TextLives, s.lives)
	return s
}

// Presenter 返回展示层协作者
func (s *GameSession) Presenter() Presenter {
	return s.presenter
}

// Points 返回当前分数
func (s *GameSession) Points() int {
	return s.points
}

// AddPoints 增加分数，带上限检查
func (s *GameSession) AddPoints(amount int) {
	if amount <= 0 {
		return
	}
	s.points += amount
	if s.maxPoints > 0 && s.points > s.maxPoints {
		s.points = s.maxPoints
	}
	s.presenter.SetNumber(TextScore, s.points)
}

// SpendPoints 扣除分数，如果分数不足返回 false
func (s *GameSession) SpendPoints(amount int) bool {
	if s.points < amount {
		return false
	}
	s.points -= amount
	s.presenter.SetNumber(TextScore, s.points)
	return true
}

// HandleBubblePop 泡泡戳破加分
func (s *GameSession) HandleBubblePop(points int) {
	s.AddPoints(points)
}

// BubblePopped 记录戳破泡泡的统计
func (s *GameSession) BubblePopped(bubbleType types.BubbleType) {
	s.popStats[bubbleType]++
}

// PopCount 返回某类泡泡的戳破次数
func (s *GameSession) PopCount(bubbleType types.BubbleType) int {
	return s.popStats[bubbleType]
}

// Lives 返回当前生命数
func (s *GameSession) Lives() int {
	return s.lives
}

// MaxLives 返回生命上限
func (s *GameSession) MaxLives() int {
	return s.maxLives
}

// LostLife 本帧是否刚掉了一条命
func (s *GameSession) LostLife() bool {
	return s.lostLife
}

// LoseLife 扣一条命
// 生命耗尽时进入 GameOver 阶段
func (s *GameSession) LoseLife() {
	if s.lives <= 0 {
		return
	}
	s.lives--
	s.lostLife = true
	s.presenter.SetNumber(TextLives, s.lives)
	log.Printf("[GameSession] Player lost a life, %d remaining", s.lives)

	if s.lives == 0 {
		s.SetPhase(PhaseGameOver)
	}
}

// GainLife 增加一条命，已达上限时返回 false
func (s *GameSession) GainLife() bool {
	if s.lives >= s.maxLives {
		return false
	}
	s.lives++
	s.presenter.SetNumber(TextLives, s.lives)
	return true
}

// EndFrame 帧末清理边沿标志
func (s *GameSession) EndFrame() {
	s.lostLife = false
}

// CollectItem 拾取道具：加分，贝壳放入背包，雨伞记录跳关
func (s *GameSession) CollectItem(itemType types.ItemType, points int) {
	s.AddPoints(points)

	switch {
	case itemType.IsShell():
		s.inventory[itemType]++
	case itemType == types.ItemUmbrella:
		s.umbrellaCollected = true
	}
}

// ItemCount 返回背包中某类道具的数量
func (s *GameSession) ItemCount(itemType types.ItemType) int {
	return s.inventory[itemType]
}

// HasItems 背包中的道具数量是否足够，重复出现的道具按次数计
func (s *GameSession) HasItems(itemTypes ...types.ItemType) bool {
	for it, n := range countItems(itemTypes) {
		if s.inventory[it] < n {
			return false
		}
	}
	return true
}

// countItems 统计列表中每种道具出现的次数
func countItems(itemTypes []types.ItemType) map[types.ItemType]int {
	counts := make(map[types.ItemType]int, len(itemTypes))
	for _, it := range itemTypes {
		counts[it]++
	}
	return counts
}

// RemoveItems 从背包中按列表移除道具，重复出现的道具移除多次
// 任一道具数量不足时不做任何修改并返回 false
func (s *GameSession) RemoveItems(itemTypes ...types.ItemType) bool {
	if !s.HasItems(itemTypes...) {
		return false
	}
	for _, it := range itemTypes {
		s.inventory[it]--
		if s.inventory[it] == 0 {
			delete(s.inventory, it)
		}
	}
	return true
}

// CanSpawnShell 背包里还没有这种贝壳时才能在关卡中生成
func (s *GameSession) CanSpawnShell(shell types.ItemType) bool {
	return shell.IsShell() && s.inventory[shell] == 0
}

// SpawnableItems 返回关卡间隔生成可抽取的道具列表
func (s *GameSession) SpawnableItems() []types.ItemType {
	return s.spawnableItems
}

// SetSpawnableItems 替换可抽取的道具列表
func (s *GameSession) SetSpawnableItems(items []types.ItemType) {
	s.spawnableItems = items
}

// Phase 返回当前关卡阶段
func (s *GameSession) Phase() LevelPhase {
	return s.phase
}

// SetPhase 切换关卡阶段
func (s *GameSession) SetPhase(phase LevelPhase) {
	if s.phase == phase {
		return
	}
	log.Printf("[GameSession] Level phase: %s -> %s", s.phase, phase)
	s.phase = phase
}

// LevelStarted 关卡是否进行中
func (s *GameSession) LevelStarted() bool {
	return s.phase == PhaseStarted
}

// ConsumeUmbrella 读取并清除本关的雨伞标记
func (s *GameSession) ConsumeUmbrella() bool {
	collected := s.umbrellaCollected
	s.umbrellaCollected = false
	return collected
}
