package config

import (
	"fmt"
	"os"
	"path"

	"github.com/decker502/bubblebobble/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// readConfigFile 读取配置文件
// 优先从嵌入资源读取（路径以 data/ 开头且 embedded 已初始化），否则读取磁盘文件
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// loadYAML 读取并解析 YAML 配置
func loadYAML(path, what string, out interface{}) error {
	data, err := readConfigFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s file %s: %w", what, path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s YAML from %s: %w", what, path, err)
	}
	return nil
}

// Bundle 一局游戏需要的全部配置
type Bundle struct {
	Game   *GameConfig
	Shop   *ShopConfig
	Levels []*LevelConfig
}

// LoadBundle 从数据目录加载 game.yaml、shop.yaml 和 levels/
func LoadBundle(dataDir string) (*Bundle, error) {
	gameCfg, err := LoadGameConfig(path.Join(dataDir, "game.yaml"))
	if err != nil {
		return nil, err
	}
	shopCfg, err := LoadShopConfig(path.Join(dataDir, "shop.yaml"))
	if err != nil {
		return nil, err
	}
	levels, err := LoadLevelConfigs(path.Join(dataDir, "levels"))
	if err != nil {
		return nil, err
	}
	return &Bundle{Game: gameCfg, Shop: shopCfg, Levels: levels}, nil
}
