package config

import (
	"fmt"

	"github.com/decker502/bubblebobble/pkg/types"
)

// GameConfig 全局玩法配置（data/game.yaml）
type GameConfig struct {
	Player       PlayerConfig          `yaml:"player"`
	Bubbles      BubblesConfig         `yaml:"bubbles"`
	Items        map[string]ItemConfig `yaml:"items"`
	Undefeatable UndefeatableConfig    `yaml:"undefeatable"`
	Audio        AudioConfig           `yaml:"audio"`
	Flow         FlowConfig            `yaml:"flow"`

	// SpawnableItems 关卡间隔生成时可抽取的道具列表（可重复，重复即权重）
	SpawnableItems []string `yaml:"spawnableItems"`

	// TransitionLevels 过渡关编号，关卡编号到达时显示为 0
	TransitionLevels []int `yaml:"transitionLevels"`

	// MaxPoints 分数上限
	MaxPoints int `yaml:"maxPoints"`
}

// PlayerConfig 玩家初始属性
type PlayerConfig struct {
	StartLives         int     `yaml:"startLives"`
	MaxLives           int     `yaml:"maxLives"`
	MoveSpeed          float64 `yaml:"moveSpeed"`
	SpeedBoostMultiple float64 `yaml:"speedBoostMultiple"`
	ShootForce         float64 `yaml:"shootForce"`
	ForceBoostMultiple float64 `yaml:"forceBoostMultiple"`
	ShootCooldown      float64 `yaml:"shootCooldown"`
	RapidFireMultiple  float64 `yaml:"rapidFireMultiple"`
	// HurtCooldown 受伤复活后的无敌时间（秒）
	HurtCooldown float64 `yaml:"hurtCooldown"`
}

// BubblesConfig 泡泡相关配置
type BubblesConfig struct {
	// PopRemoveDelay 戳破后移除泡泡实体的延迟（秒）
	PopRemoveDelay float64 `yaml:"popRemoveDelay"`
	// PointEffectLifetime 飘分特效存在时间（秒）
	PointEffectLifetime float64 `yaml:"pointEffectLifetime"`
	// PointEffectRiseSpeed 飘分特效上升速度（像素/秒）
	PointEffectRiseSpeed float64 `yaml:"pointEffectRiseSpeed"`
	// BlastRadius 炸弹泡泡的爆炸半径（像素）
	BlastRadius float64 `yaml:"blastRadius"`
	// GroundFireLifetime 火焰泡泡落地火焰的持续时间（秒）
	GroundFireLifetime float64 `yaml:"groundFireLifetime"`
	// MoveSpeed 悬浮时的水平推力
	MoveSpeed float64 `yaml:"moveSpeed"`
	// Points 各类型泡泡分数，键为 normal/fire/bomb/glitch
	Points map[string]int `yaml:"points"`
}

// ItemConfig 道具配置
type ItemConfig struct {
	Points int `yaml:"points"`
}

// UndefeatableConfig 不死敌人配置
type UndefeatableConfig struct {
	Speed        float64 `yaml:"speed"` // 追击加速度（像素/秒²）
	StopInterval float64 `yaml:"stopInterval"`
	StopTime     float64 `yaml:"stopTime"`
}

// FlowConfig 关卡流程节奏
type FlowConfig struct {
	// IntroTime 关卡开场展示时间（秒），结束后关卡开始计时
	IntroTime float64 `yaml:"introTime"`
	// ClearDelay 敌人全灭后进入下一关前的等待（秒）
	ClearDelay float64 `yaml:"clearDelay"`
}

// AudioConfig 音频配置
type AudioConfig struct {
	// MusicFadeTime 音乐交叉渐变时长（秒）
	MusicFadeTime float64 `yaml:"musicFadeTime"`
	// MusicSpeedFadeTime 音调渐变时长（秒）
	MusicSpeedFadeTime float64 `yaml:"musicSpeedFadeTime"`
	// HurryUpPitch 加速时的音调倍率
	HurryUpPitch float64 `yaml:"hurryUpPitch"`

	BackgroundMusic string `yaml:"backgroundMusic"`
	PopSFX          string `yaml:"popSFX"`
	BossSFX         string `yaml:"bossSFX"`

	// Clips 音频资源ID到文件路径的映射
	Clips map[string]string `yaml:"clips"`
}

// LoadGameConfig 从YAML文件加载全局玩法配置
func LoadGameConfig(path string) (*GameConfig, error) {
	var cfg GameConfig
	if err := loadYAML(path, "game config", &cfg); err != nil {
		return nil, err
	}

	applyGameDefaults(&cfg)

	if err := validateGameConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", path, err)
	}

	return &cfg, nil
}

// DefaultGameConfig 返回全部使用默认值的配置（测试和无配置文件时使用）
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{}
	applyGameDefaults(cfg)
	return cfg
}

// applyGameDefaults 为缺失的可选字段设置默认值
func applyGameDefaults(cfg *GameConfig) {
	if cfg.Player.StartLives == 0 {
		cfg.Player.StartLives = 3
	}
	if cfg.Player.MaxLives == 0 {
		cfg.Player.MaxLives = 5
	}
	if cfg.Player.MoveSpeed == 0 {
		cfg.Player.MoveSpeed = 120
	}
	if cfg.Player.SpeedBoostMultiple == 0 {
		cfg.Player.SpeedBoostMultiple = 1.5
	}
	if cfg.Player.ShootForce == 0 {
		cfg.Player.ShootForce = 300
	}
	if cfg.Player.ForceBoostMultiple == 0 {
		cfg.Player.ForceBoostMultiple = 2
	}
	if cfg.Player.ShootCooldown == 0 {
		cfg.Player.ShootCooldown = 0.4
	}
	if cfg.Player.RapidFireMultiple == 0 {
		cfg.Player.RapidFireMultiple = 0.5
	}
	if cfg.Player.HurtCooldown == 0 {
		cfg.Player.HurtCooldown = 2
	}

	if cfg.Flow.IntroTime == 0 {
		cfg.Flow.IntroTime = 1.5
	}
	if cfg.Flow.ClearDelay == 0 {
		cfg.Flow.ClearDelay = 2
	}

	if cfg.Bubbles.PopRemoveDelay == 0 {
		cfg.Bubbles.PopRemoveDelay = 0.5
	}
	if cfg.Bubbles.PointEffectLifetime == 0 {
		cfg.Bubbles.PointEffectLifetime = 1.2 // 原版：飘分 1.2 秒后销毁
	}
	if cfg.Bubbles.PointEffectRiseSpeed == 0 {
		cfg.Bubbles.PointEffectRiseSpeed = 30
	}
	if cfg.Bubbles.BlastRadius == 0 {
		cfg.Bubbles.BlastRadius = 64
	}
	if cfg.Bubbles.GroundFireLifetime == 0 {
		cfg.Bubbles.GroundFireLifetime = 3
	}
	if cfg.Bubbles.MoveSpeed == 0 {
		cfg.Bubbles.MoveSpeed = 40
	}
	if cfg.Bubbles.Points == nil {
		cfg.Bubbles.Points = map[string]int{}
	}
	for name, points := range map[string]int{"normal": 10, "fire": 50, "bomb": 100, "glitch": 200} {
		if _, ok := cfg.Bubbles.Points[name]; !ok {
			cfg.Bubbles.Points[name] = points
		}
	}

	if cfg.Items == nil {
		cfg.Items = map[string]ItemConfig{}
	}

	if cfg.Undefeatable.Speed == 0 {
		cfg.Undefeatable.Speed = 96 // 3 单位/秒² × 32 像素/单位
	}
	if cfg.Undefeatable.StopInterval == 0 {
		cfg.Undefeatable.StopInterval = 2
	}
	if cfg.Undefeatable.StopTime == 0 {
		cfg.Undefeatable.StopTime = 2
	}

	if cfg.Audio.MusicFadeTime == 0 {
		cfg.Audio.MusicFadeTime = 1
	}
	if cfg.Audio.MusicSpeedFadeTime == 0 {
		cfg.Audio.MusicSpeedFadeTime = 0.5
	}
	if cfg.Audio.HurryUpPitch == 0 {
		cfg.Audio.HurryUpPitch = 1.4
	}
	if cfg.Audio.Clips == nil {
		cfg.Audio.Clips = map[string]string{}
	}

	if len(cfg.SpawnableItems) == 0 {
		cfg.SpawnableItems = []string{"pickup", "pickup", "pickup", "umbrella"}
	}
	if len(cfg.TransitionLevels) == 0 {
		cfg.TransitionLevels = []int{12, 23}
	}
	if cfg.MaxPoints == 0 {
		cfg.MaxPoints = 9999990
	}
}

// validateGameConfig 验证全局配置的合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Player.StartLives < 1 {
		return fmt.Errorf("player.startLives must be at least 1, got %d", cfg.Player.StartLives)
	}
	if cfg.Player.StartLives > cfg.Player.MaxLives {
		return fmt.Errorf("player.startLives (%d) cannot exceed player.maxLives (%d)",
			cfg.Player.StartLives, cfg.Player.MaxLives)
	}
	if cfg.Player.HurtCooldown < 0 {
		return fmt.Errorf("player.hurtCooldown cannot be negative, got %f", cfg.Player.HurtCooldown)
	}

	for name := range cfg.Bubbles.Points {
		if _, ok := types.BubbleTypeFromString(name); !ok {
			return fmt.Errorf("bubbles.points: unknown bubble type %q", name)
		}
	}

	for name := range cfg.Items {
		if types.ItemTypeFromString(name) == types.ItemUnknown {
			return fmt.Errorf("items: unknown item type %q", name)
		}
	}

	for i, name := range cfg.SpawnableItems {
		it := types.ItemTypeFromString(name)
		if it == types.ItemUnknown {
			return fmt.Errorf("spawnableItems[%d]: unknown item type %q", i, name)
		}
		if it.IsShell() {
			return fmt.Errorf("spawnableItems[%d]: shells are placed at level start, not at intervals", i)
		}
	}

	if cfg.Audio.MusicFadeTime < 0 || cfg.Audio.MusicSpeedFadeTime < 0 {
		return fmt.Errorf("audio fade times cannot be negative")
	}
	if cfg.Audio.HurryUpPitch <= 0 {
		return fmt.Errorf("audio.hurryUpPitch must be positive, got %f", cfg.Audio.HurryUpPitch)
	}

	if cfg.Flow.IntroTime < 0 || cfg.Flow.ClearDelay < 0 {
		return fmt.Errorf("flow times cannot be negative")
	}

	if cfg.Undefeatable.StopInterval < 0 || cfg.Undefeatable.StopTime < 0 {
		return fmt.Errorf("undefeatable stop times cannot be negative")
	}

	return nil
}

// SpawnableItemTypes 返回解析后的可生成道具列表
func (c *GameConfig) SpawnableItemTypes() []types.ItemType {
	result := make([]types.ItemType, 0, len(c.SpawnableItems))
	for _, name := range c.SpawnableItems {
		result = append(result, types.ItemTypeFromString(name))
	}
	return result
}

// BubblePoints 返回指定类型泡泡的分数
func (c *GameConfig) BubblePoints(bt types.BubbleType) int {
	return c.Bubbles.Points[bt.String()]
}

// ItemPoints 返回指定道具的分数，未配置时返回 0
func (c *GameConfig) ItemPoints(it types.ItemType) int {
	return c.Items[it.String()].Points
}
