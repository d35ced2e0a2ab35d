package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/entities"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/systems"
	"github.com/decker502/bubblebobble/pkg/types"
)

// Audio 场景需要的音频能力（game.AudioManager 实现）
type Audio interface {
	systems.MusicController
	ChangeMusic(clipID string)
	CurrentMusic() string
	Update(deltaTime float64)
}

// Options 场景依赖
type Options struct {
	Game   *config.GameConfig
	Shop   *config.ShopConfig
	Levels []*config.LevelConfig

	// 以下均可为 nil
	Presenter game.Presenter
	Audio     Audio
	Input     systems.InputSource
	Progress  *game.ProgressManager
	Rand      *rand.Rand
}

// LevelScene 一局游戏的关卡流程
//
// 阶段：Intro（开场 IntroTime 秒）→ Started → Cleared（等待 ClearDelay 秒后进入下一关）
// 生命耗尽进入 GameOver，记录进度后停止玩法更新。
//
// 关卡计数器和强化道具跨关卡保留，其余实体随关卡重建。
type LevelScene struct {
	cfg      *config.GameConfig
	shopCfg  *config.ShopConfig
	levels   []*config.LevelConfig
	audio    Audio
	input    systems.InputSource
	progress *game.ProgressManager
	rng      *rand.Rand

	em      *ecs.EntityManager
	session *game.GameSession

	// 跨关卡保留的实体和系统
	persistent   map[ecs.EntityID]bool
	powerUpIDs   []ecs.EntityID
	powerUps     *systems.PowerUpSystem
	shop         *systems.ShopSystem
	levelCounter *systems.LevelCounterSystem

	// 每关重建的系统
	contacts     *systems.ContactSystem
	player       *systems.PlayerSystem
	physics      *systems.PhysicsSystem
	bubbles      *systems.BubbleSystem
	triggers     *systems.TriggerSystem
	enemies      *systems.EnemySystem
	level        *systems.LevelSystem
	flash        *systems.FlashTextSystem
	undefeatable *systems.UndefeatableSystem
	pointEffects *systems.PointEffectSystem
	lifetime     *systems.LifetimeSystem

	levelIndex int
	phase      game.LevelPhase
	phaseTimer float64
	over       bool
}

type nopAudio struct{}

func (nopAudio) PlaySFX(string)       {}
func (nopAudio) SpeedUpMusic()        {}
func (nopAudio) SlowDownMusic()       {}
func (nopAudio) ChangeMusic(string)   {}
func (nopAudio) CurrentMusic() string { return "" }
func (nopAudio) Update(float64)       {}

// NewLevelScene 创建场景并加载第一关
func NewLevelScene(opts Options) (*LevelScene, error) {
	if len(opts.Levels) == 0 {
		return nil, fmt.Errorf("at least one level is required")
	}
	if opts.Game == nil {
		opts.Game = config.DefaultGameConfig()
	}
	if opts.Shop == nil {
		opts.Shop = config.DefaultShopConfig()
	}
	if opts.Audio == nil {
		opts.Audio = nopAudio{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}

	s := &LevelScene{
		cfg:        opts.Game,
		shopCfg:    opts.Shop,
		levels:     opts.Levels,
		audio:      opts.Audio,
		input:      opts.Input,
		progress:   opts.Progress,
		rng:        opts.Rand,
		em:         ecs.NewEntityManager(),
		persistent: make(map[ecs.EntityID]bool),
	}
	s.session = game.NewGameSession(s.cfg, opts.Presenter)

	if err := s.createPersistent(); err != nil {
		return nil, err
	}
	if err := s.loadLevel(0); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LevelScene) createPersistent() error {
	counterID, err := entities.NewLevelCounterEntity(s.em, s.cfg.TransitionLevels)
	if err != nil {
		return fmt.Errorf("failed to create level counter: %w", err)
	}
	s.persistent[counterID] = true
	s.levelCounter = systems.NewLevelCounterSystem(s.em, s.session.Presenter(), counterID)

	s.powerUpIDs, err = entities.NewPowerUpEntities(s.em, s.shopCfg)
	if err != nil {
		return fmt.Errorf("failed to create power-ups: %w", err)
	}
	for _, id := range s.powerUpIDs {
		s.persistent[id] = true
	}

	s.powerUps = systems.NewPowerUpSystem(s.em, s.session)
	s.shop = systems.NewShopSystem(s.em, s.session, s.powerUps, s.powerUpIDs, s.shopCfg)
	if s.progress != nil {
		s.shop.OnExtraLife = s.progress.RecordExtraLife
	}
	return nil
}

// loadLevel 清理上一关的实体并按配置搭建新关卡
func (s *LevelScene) loadLevel(index int) error {
	if s.level != nil && s.level.IsHurryUpActive() {
		s.audio.SlowDownMusic()
	}
	s.clearLevel()

	level := s.levels[index]
	s.levelIndex = index
	log.Printf("[LevelScene] Loading level %s (%s)", level.ID, level.Name)

	if err := s.buildLevel(level); err != nil {
		return fmt.Errorf("failed to build level %s: %w", level.ID, err)
	}

	s.session.SetPhase(game.PhaseIntro)
	s.phase = game.PhaseIntro
	s.phaseTimer = 0

	music := level.Music
	if music == "" {
		music = s.cfg.Audio.BackgroundMusic
	}
	if music != "" && music != s.audio.CurrentMusic() {
		s.audio.ChangeMusic(music)
	}

	s.powerUps.Reapply()
	s.level.SpawnInitialShell()
	return nil
}

func (s *LevelScene) clearLevel() {
	for _, id := range s.em.Entities() {
		if !s.persistent[id] {
			s.em.DestroyEntity(id)
		}
	}
	s.em.RemoveMarkedEntities()
	if s.contacts != nil {
		s.contacts.Reset()
	}
}

func (s *LevelScene) buildLevel(level *config.LevelConfig) error {
	em, cfg := s.em, s.cfg

	player, err := entities.NewPlayerEntity(em, cfg, level.Player.X, level.Player.Y)
	if err != nil {
		return err
	}
	group, err := entities.NewEnemyGroupEntity(em)
	if err != nil {
		return err
	}
	text, err := entities.NewFlashTextEntity(em, game.TextHurryUp, level.TextFlashTime)
	if err != nil {
		return err
	}
	undefeatable, err := entities.NewUndefeatableEntity(em, cfg, level.UndefeatableStart.X, level.UndefeatableStart.Y)
	if err != nil {
		return err
	}
	levelEntity, err := entities.NewLevelEntity(em, level)
	if err != nil {
		return err
	}

	s.session.PlayerEntity = player
	s.session.EnemyGroupEntity = group
	s.session.HurryUpTextEntity = text
	s.session.UndefeatableEntity = undefeatable

	regions := []struct {
		tag   types.Tag
		rects []config.Rect
	}{
		{types.TagPlatform, level.Platforms},
		{types.TagTeleport, level.Teleports},
		{types.TagGroundFire, level.GroundFires},
	}
	for _, r := range regions {
		for _, rect := range r.rects {
			if _, err := entities.NewRegionEntity(em, r.tag, rect); err != nil {
				return err
			}
		}
	}

	for _, p := range level.Enemies {
		if _, err := entities.NewEnemyEntity(em, p.X, p.Y); err != nil {
			return err
		}
	}
	for _, b := range level.Bubbles {
		bt, ok := types.BubbleTypeFromString(b.Type)
		if !ok {
			return fmt.Errorf("unknown bubble type %q", b.Type)
		}
		if _, err := entities.NewBubbleEntity(em, cfg, bt, b.X, b.Y); err != nil {
			return err
		}
	}

	presenter := s.session.Presenter()
	presenter.SetActive(game.TextHurryUp, false)
	presenter.SetActive(entities.EnemyGroupName, false)
	presenter.SetActive(entities.UndefeatableName, false)

	if s.contacts == nil {
		s.contacts = systems.NewContactSystem(em)
	}
	s.player = systems.NewPlayerSystem(em, s.session, s.input, s.contacts, cfg)
	s.physics = systems.NewPhysicsSystem(em, config.ScreenWidth, config.ScreenHeight)
	s.bubbles = systems.NewBubbleSystem(em, s.session, s.audio, s.contacts, cfg)
	s.triggers = systems.NewTriggerSystem(em, s.contacts)
	s.enemies = systems.NewEnemySystem(em, s.session, config.ScreenWidth)
	s.flash = systems.NewFlashTextSystem(em, presenter)
	s.level = systems.NewLevelSystem(em, s.session, s.audio, s.flash, cfg, s.rng, levelEntity)
	s.undefeatable = systems.NewUndefeatableSystem(em, s.session)
	s.pointEffects = systems.NewPointEffectSystem(em)
	s.lifetime = systems.NewLifetimeSystem(em)
	return nil
}

// Update 按固定顺序推进一帧
func (s *LevelScene) Update(deltaTime float64) {
	if s.over {
		s.audio.Update(deltaTime)
		return
	}

	s.player.Update(deltaTime)
	s.physics.Update(deltaTime)
	s.contacts.Update(deltaTime)
	s.bubbles.Update(deltaTime)
	s.triggers.Update(deltaTime)
	s.enemies.Update(deltaTime)
	s.powerUps.Update(deltaTime)
	s.shop.Update(deltaTime)
	s.level.Update(deltaTime)
	s.flash.Update(deltaTime)
	s.undefeatable.Update(deltaTime)
	s.pointEffects.Update(deltaTime)
	s.lifetime.Update(deltaTime)
	s.audio.Update(deltaTime)

	s.session.EndFrame()
	s.em.RemoveMarkedEntities()

	s.advancePhase(deltaTime)
}

// advancePhase 处理关卡阶段的时间驱动切换
func (s *LevelScene) advancePhase(deltaTime float64) {
	phase := s.session.Phase()
	if phase != s.phase {
		s.phase = phase
		s.phaseTimer = 0
		s.onPhaseEntered(phase)
		return
	}
	s.phaseTimer += deltaTime

	switch phase {
	case game.PhaseIntro:
		if s.phaseTimer >= s.cfg.Flow.IntroTime {
			s.session.SetPhase(game.PhaseStarted)
			s.phase = game.PhaseStarted
			s.phaseTimer = 0
		}
	case game.PhaseCleared:
		if s.phaseTimer >= s.cfg.Flow.ClearDelay {
			s.nextLevel()
		}
	}
}

func (s *LevelScene) onPhaseEntered(phase game.LevelPhase) {
	switch phase {
	case game.PhaseCleared:
		s.level.SetCanSpawnItem(false)
		log.Printf("[LevelScene] Level %s cleared", s.levels[s.levelIndex].ID)
	case game.PhaseGameOver:
		s.gameOver()
	}
}

// nextLevel 进入下一关；拾取过雨伞则多跳一关，最后一关之后从头循环
func (s *LevelScene) nextLevel() {
	step := 1
	if s.session.ConsumeUmbrella() {
		s.levelCounter.MarkSkipped()
		step = 2
	}
	s.levelCounter.AdvanceLevel()

	next := s.levelIndex
	for i := 0; i < step; i++ {
		next = (next + 1) % len(s.levels)
		if s.levels[next].NewWorld {
			s.levelCounter.AdvanceWorld()
		}
	}

	if s.progress != nil {
		s.progress.RecordLevel(next + 1)
	}

	if err := s.loadLevel(next); err != nil {
		log.Printf("[LevelScene] Failed to load next level: %v", err)
		s.gameOver()
	}
}

func (s *LevelScene) gameOver() {
	if s.over {
		return
	}
	s.over = true
	log.Printf("[LevelScene] Game over with %d points", s.session.Points())

	if s.progress == nil {
		return
	}
	if _, err := s.progress.RecordGameOver(s.session.Points()); err != nil {
		log.Printf("[LevelScene] Warning: failed to save progress: %v", err)
	}
}

// Buy 商店购买（游戏结束后无效）
func (s *LevelScene) Buy(index int) bool {
	if s.over {
		return false
	}
	return s.shop.Buy(index)
}

// EntityManager 返回实体管理器（前端绘制用）
func (s *LevelScene) EntityManager() *ecs.EntityManager {
	return s.em
}

// Session 返回本局状态
func (s *LevelScene) Session() *game.GameSession {
	return s.session
}

// Level 返回当前关卡配置
func (s *LevelScene) Level() *config.LevelConfig {
	return s.levels[s.levelIndex]
}

// LevelIndex 返回当前关卡在列表中的位置
func (s *LevelScene) LevelIndex() int {
	return s.levelIndex
}

// LevelNumber 返回显示用的关卡编号
func (s *LevelScene) LevelNumber() int {
	return s.levelCounter.LevelNumber()
}

// WorldNumber 返回世界编号
func (s *LevelScene) WorldNumber() int {
	return s.levelCounter.WorldNumber()
}

// PowerUps 返回商店强化道具实体（顺序即购买按钮编号）
func (s *LevelScene) PowerUps() []ecs.EntityID {
	return s.powerUpIDs
}

// IsOver 游戏是否已结束
func (s *LevelScene) IsOver() bool {
	return s.over
}
