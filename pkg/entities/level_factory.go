package entities

import (
	"fmt"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/types"
)

// NewLevelEntity 创建关卡状态实体（道具生成 + 限时加速）
// 关卡结束时随关卡一起销毁
func NewLevelEntity(em *ecs.EntityManager, level *config.LevelConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if level == nil {
		return 0, fmt.Errorf("level config cannot be nil")
	}

	points := make([]components.SpawnPoint, 0, len(level.SpawnPoints))
	for _, p := range level.SpawnPoints {
		points = append(points, components.SpawnPoint{X: p.X, Y: p.Y})
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.LevelSpawnComponent{
		SpawnPoints:      points,
		SpawnInterval:    level.SpawnInterval,
		MaxItemCount:     level.MaxItemCount,
		CanSpawnItem:     true,
		CanSpawnUmbrella: level.CanSpawnUmbrella,
	})
	em.AddComponent(id, &components.HurryUpComponent{
		HurryUpTime:      level.HurryUpTime,
		UndefeatableTime: level.UndefeatableTime,
	})

	return id, nil
}

// NewFlashTextEntity 创建闪烁文字（默认不闪烁、不可见）
func NewFlashTextEntity(em *ecs.EntityManager, name string, interval float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if interval <= 0 {
		return 0, fmt.Errorf("flash interval must be positive, got %f", interval)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.FlashTextComponent{Name: name, Interval: interval})
	return id, nil
}

// NewEnemyGroupEntity 创建普通敌人组开关（关卡开始后启用）
func NewEnemyGroupEntity(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.ActiveComponent{Name: EnemyGroupName})
	return id, nil
}

// NewLevelCounterEntity 创建关卡/世界编号计数器（跨关卡保留）
func NewLevelCounterEntity(em *ecs.EntityManager, transitions []int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.LevelCounterComponent{
		LevelNumber:       1,
		WorldNumber:       1,
		TransitionNumbers: append([]int(nil), transitions...),
	})
	return id, nil
}

// NewPowerUpEntities 按商店配置创建强化道具实体，返回顺序与购买按钮编号一致
func NewPowerUpEntities(em *ecs.EntityManager, shop *config.ShopConfig) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if shop == nil {
		return nil, fmt.Errorf("shop config cannot be nil")
	}

	ids := make([]ecs.EntityID, 0, len(shop.PowerUps))
	for _, pu := range shop.PowerUps {
		id := em.CreateEntity()
		em.AddComponent(id, &components.PowerUpComponent{
			ID:       pu.ID,
			Kind:     types.PowerUpKindFromString(pu.Kind),
			Price:    pu.Price,
			Duration: pu.Duration,
		})
		ids = append(ids, id)
	}
	return ids, nil
}
