package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ProgressData 跨局保存的进度
type ProgressData struct {
	HighScore    int `yaml:"highScore"`    // 历史最高分
	HighestLevel int `yaml:"highestLevel"` // 到达过的最高关卡编号
	GamesPlayed  int `yaml:"gamesPlayed"`  // 已结束的局数
	ExtraLives   int `yaml:"extraLives"`   // 用贝壳兑换的生命总数
}

// ProgressManager 进度管理器
//
// 与 SettingsManager 相同的存储方式：gdata 保存 YAML，
// gdataManager 为 nil 时只在内存中记录
type ProgressManager struct {
	gdataManager *gdata.Manager
	data         *ProgressData
}

const (
	progressObject   = "progress"
	progressProperty = "records"
)

// NewProgressManager 创建进度管理器并尝试加载已有进度
func NewProgressManager(gdataManager *gdata.Manager) *ProgressManager {
	pm := &ProgressManager{
		gdataManager: gdataManager,
		data:         &ProgressData{},
	}

	if err := pm.Load(); err != nil {
		log.Printf("[ProgressManager] Warning: Failed to load progress: %v (starting fresh)", err)
	}

	return pm
}

// Load 从 gdata 加载进度
func (pm *ProgressManager) Load() error {
	pm.data = &ProgressData{}

	if pm.gdataManager == nil {
		return nil
	}
	if !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	raw, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	var loaded ProgressData
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	pm.data = &loaded
	return nil
}

// Save 保存进度到 gdata
func (pm *ProgressManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(pm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, raw); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Data 返回当前进度
func (pm *ProgressManager) Data() ProgressData {
	return *pm.data
}

// RecordLevel 记录到达的关卡编号
func (pm *ProgressManager) RecordLevel(levelNumber int) {
	if levelNumber > pm.data.HighestLevel {
		pm.data.HighestLevel = levelNumber
	}
}

// RecordExtraLife 记录一次贝壳兑换
func (pm *ProgressManager) RecordExtraLife() {
	pm.data.ExtraLives++
}

// RecordGameOver 一局结束：更新最高分并持久化
// 返回是否刷新了最高分
func (pm *ProgressManager) RecordGameOver(points int) (bool, error) {
	pm.data.GamesPlayed++

	newRecord := points > pm.data.HighScore
	if newRecord {
		pm.data.HighScore = points
		log.Printf("[ProgressManager] New high score: %d", points)
	}

	return newRecord, pm.Save()
}
