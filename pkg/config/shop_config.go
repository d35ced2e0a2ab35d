package config

import (
	"fmt"

	"github.com/decker502/bubblebobble/pkg/types"
)

// ShopConfig 商店配置（data/shop.yaml）
type ShopConfig struct {
	// PowerUps 商店出售的强化道具，下标即购买按钮编号
	PowerUps []PowerUpConfig `yaml:"powerUps"`

	// ExtraLifeIndex 额外生命按钮编号，默认 4
	ExtraLifeIndex int `yaml:"extraLifeIndex"`

	// RequiredShells 兑换额外生命需要的贝壳
	RequiredShells []string `yaml:"requiredShells"`
}

// PowerUpConfig 单个强化道具配置
type PowerUpConfig struct {
	ID       string  `yaml:"id"`
	Kind     string  `yaml:"kind"`
	Price    int     `yaml:"price"`
	Duration float64 `yaml:"duration"` // 持续时间（秒）
}

// LoadShopConfig 从YAML文件加载商店配置
func LoadShopConfig(path string) (*ShopConfig, error) {
	var cfg ShopConfig
	if err := loadYAML(path, "shop config", &cfg); err != nil {
		return nil, err
	}

	applyShopDefaults(&cfg)

	if err := validateShopConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid shop config in %s: %w", path, err)
	}

	return &cfg, nil
}

// DefaultShopConfig 返回默认商店配置
func DefaultShopConfig() *ShopConfig {
	cfg := &ShopConfig{
		PowerUps: []PowerUpConfig{
			{ID: "force_boost", Kind: "force_boost", Price: 500, Duration: 10},
			{ID: "rapid_fire", Kind: "rapid_fire", Price: 800, Duration: 10},
			{ID: "speed_boost", Kind: "speed_boost", Price: 300, Duration: 15},
			{ID: "shield", Kind: "shield", Price: 1500, Duration: 8},
		},
	}
	applyShopDefaults(cfg)
	return cfg
}

func applyShopDefaults(cfg *ShopConfig) {
	if cfg.ExtraLifeIndex == 0 {
		cfg.ExtraLifeIndex = 4
	}
	if len(cfg.RequiredShells) == 0 {
		for _, shell := range types.ShellTypes {
			cfg.RequiredShells = append(cfg.RequiredShells, shell.String())
		}
	}
	for i := range cfg.PowerUps {
		if cfg.PowerUps[i].ID == "" {
			cfg.PowerUps[i].ID = cfg.PowerUps[i].Kind
		}
	}
}

// validateShopConfig 验证商店配置
func validateShopConfig(cfg *ShopConfig) error {
	if cfg.ExtraLifeIndex < len(cfg.PowerUps) {
		return fmt.Errorf("extraLifeIndex (%d) overlaps power-up indices [0, %d)",
			cfg.ExtraLifeIndex, len(cfg.PowerUps))
	}

	seen := make(map[string]bool)
	for i, pu := range cfg.PowerUps {
		if types.PowerUpKindFromString(pu.Kind) == types.PowerUpUnknown {
			return fmt.Errorf("powerUps[%d]: unknown kind %q", i, pu.Kind)
		}
		if pu.Price < 0 {
			return fmt.Errorf("powerUps[%d]: price cannot be negative", i)
		}
		if pu.Duration <= 0 {
			return fmt.Errorf("powerUps[%d]: duration must be positive", i)
		}
		if seen[pu.ID] {
			return fmt.Errorf("powerUps[%d]: duplicate id %q", i, pu.ID)
		}
		seen[pu.ID] = true
	}

	if len(cfg.RequiredShells) != len(types.ShellTypes) {
		return fmt.Errorf("requiredShells must list exactly %d shells, got %d",
			len(types.ShellTypes), len(cfg.RequiredShells))
	}
	shells := make(map[string]bool)
	for i, name := range cfg.RequiredShells {
		if !types.ItemTypeFromString(name).IsShell() {
			return fmt.Errorf("requiredShells[%d]: %q is not a shell", i, name)
		}
		if shells[name] {
			return fmt.Errorf("requiredShells[%d]: duplicate shell %q", i, name)
		}
		shells[name] = true
	}

	return nil
}

// RequiredShellTypes 返回解析后的贝壳列表
func (c *ShopConfig) RequiredShellTypes() []types.ItemType {
	result := make([]types.ItemType, 0, len(c.RequiredShells))
	for _, name := range c.RequiredShells {
		result = append(result, types.ItemTypeFromString(name))
	}
	return result
}
