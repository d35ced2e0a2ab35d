package config

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"

	"github.com/decker502/bubblebobble/pkg/embedded"
	"github.com/decker502/bubblebobble/pkg/types"
)

// LevelConfig 关卡配置数据结构
// 定义了关卡的生成点、道具生成节奏、限时加速时间点和场景布局
type LevelConfig struct {
	ID          string `yaml:"id"`          // 关卡ID，如 "1-1"
	Name        string `yaml:"name"`        // 关卡名称
	Description string `yaml:"description"` // 关卡描述（可选）

	// 道具生成
	SpawnPoints      []Point `yaml:"spawnPoints"`      // 道具生成点
	SpawnInterval    float64 `yaml:"spawnInterval"`    // 生成间隔（秒），默认 5
	MaxItemCount     int     `yaml:"maxItemCount"`     // 道具数量上限，默认 3
	CanSpawnUmbrella bool    `yaml:"canSpawnUmbrella"` // 本关是否可能出现雨伞

	// 限时加速
	HurryUpTime      float64 `yaml:"hurryUpTime"`      // 进入加速的时间（秒），默认 30
	UndefeatableTime float64 `yaml:"undefeatableTime"` // 放出不死敌人的时间（秒），默认 35
	TextFlashTime    float64 `yaml:"textFlashTime"`    // "HURRY UP" 闪烁间隔（秒），默认 2

	// 场景布局
	Player            Point         `yaml:"player"`            // 玩家出生点
	UndefeatableStart Point         `yaml:"undefeatableStart"` // 不死敌人出生点
	Platforms         []Rect        `yaml:"platforms"`         // 平台触发区
	Teleports         []Rect        `yaml:"teleports"`         // 泡泡传送区
	GroundFires       []Rect        `yaml:"groundFires"`       // 地面火焰区（敌人接触即弹飞）
	Enemies           []Point       `yaml:"enemies"`           // 普通敌人位置
	Bubbles           []BubbleSpawn `yaml:"bubbles"`           // 开局即存在的泡泡

	// Music 本关背景音乐资源ID，空表示沿用全局背景音乐
	Music string `yaml:"music"`

	// NewWorld 进入本关时世界编号 +1
	NewWorld bool `yaml:"newWorld"`
}

// Point 坐标
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect 以中心点表示的矩形区域
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BubbleSpawn 开局泡泡配置
type BubbleSpawn struct {
	Type string  `yaml:"type"` // normal/fire/bomb/glitch
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// LoadLevelConfig 从YAML文件加载关卡配置
// 参数：
//
//	path - 关卡配置文件的路径（data/ 开头时优先读取嵌入资源）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(path string) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := loadYAML(path, "level config", &levelConfig); err != nil {
		return nil, err
	}

	// 应用默认值（向后兼容性）
	applyDefaults(&levelConfig)

	// 验证必填字段
	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", path, err)
	}

	return &levelConfig, nil
}

// LoadLevelConfigs 加载目录下全部关卡（*.yaml），按文件名中的关卡序号排序
// level-2.yaml 排在 level-10.yaml 之前
func LoadLevelConfigs(dir string) ([]*LevelConfig, error) {
	var files []string
	var err error
	if embedded.IsInitialized() {
		files, err = embedded.Glob(path.Join(filepath.ToSlash(dir), "*.yaml"))
	}
	if len(files) == 0 {
		files, err = filepath.Glob(filepath.Join(dir, "*.yaml"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list levels in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}

	sort.Slice(files, func(i, j int) bool {
		if len(files[i]) != len(files[j]) {
			return len(files[i]) < len(files[j])
		}
		return files[i] < files[j]
	})

	levels := make([]*LevelConfig, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, file := range files {
		level, err := LoadLevelConfig(file)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[level.ID]; ok {
			return nil, fmt.Errorf("duplicate level id %q in %s and %s", level.ID, prev, file)
		}
		seen[level.ID] = file
		levels = append(levels, level)
	}
	return levels, nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.SpawnInterval == 0 {
		config.SpawnInterval = 5
	}
	if config.MaxItemCount == 0 {
		config.MaxItemCount = 3
	}
	if config.HurryUpTime == 0 {
		config.HurryUpTime = 30
	}
	if config.UndefeatableTime == 0 {
		config.UndefeatableTime = 35
	}
	if config.TextFlashTime == 0 {
		config.TextFlashTime = 2
	}
}

// ApplyDefaults 为代码构造的关卡配置补全默认值
func (c *LevelConfig) ApplyDefaults() {
	applyDefaults(c)
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return fmt.Errorf("level ID is required")
	}

	if config.Name == "" {
		return fmt.Errorf("level name is required")
	}

	if len(config.SpawnPoints) == 0 {
		return fmt.Errorf("at least one spawn point is required")
	}

	if config.SpawnInterval < 0 {
		return fmt.Errorf("spawnInterval cannot be negative")
	}

	if config.MaxItemCount < 0 {
		return fmt.Errorf("maxItemCount cannot be negative")
	}

	// 加速必须早于放出不死敌人
	if config.HurryUpTime >= config.UndefeatableTime {
		return fmt.Errorf("hurryUpTime (%.1f) must be less than undefeatableTime (%.1f)",
			config.HurryUpTime, config.UndefeatableTime)
	}

	if config.TextFlashTime <= 0 {
		return fmt.Errorf("textFlashTime must be positive")
	}

	for i, rect := range config.Platforms {
		if rect.Width <= 0 || rect.Height <= 0 {
			return fmt.Errorf("platforms[%d]: width and height must be positive", i)
		}
	}
	for i, rect := range config.Teleports {
		if rect.Width <= 0 || rect.Height <= 0 {
			return fmt.Errorf("teleports[%d]: width and height must be positive", i)
		}
	}

	for i, rect := range config.GroundFires {
		if rect.Width <= 0 || rect.Height <= 0 {
			return fmt.Errorf("groundFires[%d]: width and height must be positive", i)
		}
	}

	for i, bubble := range config.Bubbles {
		if _, ok := types.BubbleTypeFromString(bubble.Type); !ok {
			return fmt.Errorf("bubbles[%d]: unknown bubble type %q", i, bubble.Type)
		}
	}

	return nil
}
