package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/entities"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/types"
)

// LevelSystem 关卡道具生成与限时加速
//
// 关卡进行中：
//   - 每隔 SpawnInterval 秒在随机生成点放置一个随机道具（最多 MaxItemCount 个）
//   - 计时达到 HurryUpTime 时闪烁 "HURRY UP!" 并加速音乐
//   - 计时达到 UndefeatableTime 时放出不死敌人
//   - 加速期间玩家掉命，整体重置
type LevelSystem struct {
	em      *ecs.EntityManager
	session *game.GameSession
	audio   MusicController
	flash   *FlashTextSystem
	cfg     *config.GameConfig
	rng     *rand.Rand

	levelEntity ecs.EntityID
}

// NewLevelSystem 创建关卡系统
// rng 由调用方注入，便于复现；audio 为 nil 时静音
func NewLevelSystem(
	em *ecs.EntityManager,
	session *game.GameSession,
	audio MusicController,
	flash *FlashTextSystem,
	cfg *config.GameConfig,
	rng *rand.Rand,
	levelEntity ecs.EntityID,
) *LevelSystem {
	if audio == nil {
		audio = nopAudio{}
	}
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if flash == nil {
		flash = NewFlashTextSystem(em, session.Presenter())
	}
	return &LevelSystem{
		em:          em,
		session:     session,
		audio:       audio,
		flash:       flash,
		cfg:         cfg,
		rng:         rng,
		levelEntity: levelEntity,
	}
}

func (s *LevelSystem) spawnState() (*components.LevelSpawnComponent, bool) {
	return ecs.GetComponent[*components.LevelSpawnComponent](s.em, s.levelEntity)
}

func (s *LevelSystem) hurryUpState() (*components.HurryUpComponent, bool) {
	return ecs.GetComponent[*components.HurryUpComponent](s.em, s.levelEntity)
}

// IsHurryUpActive 是否处于限时加速
func (s *LevelSystem) IsHurryUpActive() bool {
	hurry, ok := s.hurryUpState()
	return ok && hurry.IsHurryUp
}

// SetCanSpawnItem 外部开关（过关动画期间禁止生成）
func (s *LevelSystem) SetCanSpawnItem(enabled bool) {
	if spawn, ok := s.spawnState(); ok {
		spawn.CanSpawnItem = enabled
	}
}

// Update 每帧推进计时器
func (s *LevelSystem) Update(deltaTime float64) {
	spawn, ok := s.spawnState()
	if !ok {
		return
	}
	hurry, ok := s.hurryUpState()
	if !ok {
		return
	}

	if s.session.LevelStarted() {
		spawn.SpawnTimer += deltaTime
		hurry.Timer += deltaTime
		setActive(s.em, s.session.Presenter(), s.session.EnemyGroupEntity, true)
	}

	if spawn.SpawnTimer > spawn.SpawnInterval {
		if items := s.session.SpawnableItems(); len(items) > 0 {
			s.SpawnItemAtInterval(s.rng.Intn(len(items)))
		}
	}

	if hurry.Timer >= hurry.HurryUpTime && !hurry.IsHurryUp {
		s.hurryUp()
		hurry.IsHurryUp = true
	}

	if hurry.Timer >= hurry.UndefeatableTime && !hurry.SpawnedUndefeatable {
		setActive(s.em, s.session.Presenter(), s.session.UndefeatableEntity, true)
		s.audio.PlaySFX(s.cfg.Audio.BossSFX)
		hurry.SpawnedUndefeatable = true
		log.Printf("[LevelSystem] Undefeatable enemy released at %.1fs", hurry.Timer)
	}

	if hurry.IsHurryUp && s.session.LostLife() {
		s.ResetHurryUp()
	}
}

// SpawnItemAtInterval 放置可生成道具列表中第 index 个道具
//
// 雨伞已禁用时重新抽取；雨伞可用时掷硬币，成功后本关不再生成雨伞。
// 无论是否真的放置，都会消耗一个生成点并计数。
func (s *LevelSystem) SpawnItemAtInterval(index int) {
	spawn, ok := s.spawnState()
	if !ok {
		return
	}
	items := s.session.SpawnableItems()
	if len(spawn.SpawnPoints) == 0 || len(items) == 0 ||
		spawn.SpawnedItemCount >= spawn.MaxItemCount || !spawn.CanSpawnItem {
		return
	}
	if index < 0 || index >= len(items) {
		return
	}

	point := s.rng.Intn(len(spawn.SpawnPoints))

	// 雨伞已用完时重新抽取，直到抽中其他道具
	for items[index] == types.ItemUmbrella && !spawn.CanSpawnUmbrella {
		if !containsNonUmbrella(items) {
			return
		}
		index = s.rng.Intn(len(items))
	}

	itemType := items[index]
	at := spawn.SpawnPoints[point]

	if itemType == types.ItemUmbrella {
		if s.rng.Intn(2) == 1 {
			s.placeItem(itemType, at)
			spawn.CanSpawnUmbrella = false
		}
	} else {
		s.placeItem(itemType, at)
	}

	spawn.SpawnedItemCount++
	spawn.SpawnPoints = append(spawn.SpawnPoints[:point], spawn.SpawnPoints[point+1:]...)
	spawn.SpawnTimer = 0
}

// SpawnInitialShell 关卡开始时按固定顺序尝试生成一个贝壳
// 只占用道具计数，不移除生成点
func (s *LevelSystem) SpawnInitialShell() bool {
	spawn, ok := s.spawnState()
	if !ok || len(spawn.SpawnPoints) == 0 {
		return false
	}

	for _, shell := range types.ShellTypes {
		if !s.session.CanSpawnShell(shell) {
			continue
		}
		at := spawn.SpawnPoints[s.rng.Intn(len(spawn.SpawnPoints))]
		s.placeItem(shell, at)
		spawn.SpawnedItemCount++
		return true
	}
	return false
}

// ResetHurryUp 退出限时加速：音乐减速，计时归零，隐藏提示文字，收回不死敌人
func (s *LevelSystem) ResetHurryUp() {
	s.audio.SlowDownMusic()
	s.ResetHurryUpTimer()

	if hurry, ok := s.hurryUpState(); ok {
		hurry.IsHurryUp = false
		hurry.SpawnedUndefeatable = false
	}

	s.flash.Stop(s.session.HurryUpTextEntity)
	setActive(s.em, s.session.Presenter(), s.session.UndefeatableEntity, false)
	log.Printf("[LevelSystem] Hurry up reset")
}

// ResetHurryUpTimer 只把限时计时器归零
func (s *LevelSystem) ResetHurryUpTimer() {
	if hurry, ok := s.hurryUpState(); ok {
		hurry.Timer = 0
	}
}

func (s *LevelSystem) hurryUp() {
	s.flash.Start(s.session.HurryUpTextEntity)
	s.audio.SpeedUpMusic()
	log.Printf("[LevelSystem] Hurry up!")
}

func (s *LevelSystem) placeItem(itemType types.ItemType, at components.SpawnPoint) {
	if _, err := entities.NewItemEntity(s.em, s.cfg, itemType, at.X, at.Y); err != nil {
		log.Printf("[LevelSystem] Failed to spawn %s: %v", itemType, err)
		return
	}
	log.Printf("[LevelSystem] Spawned %s at (%.0f, %.0f)", itemType, at.X, at.Y)
}

func containsNonUmbrella(items []types.ItemType) bool {
	for _, it := range items {
		if it != types.ItemUmbrella {
			return true
		}
	}
	return false
}
