package entities

import (
	"fmt"
	"math"
	"strconv"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
)

const (
	popParticleCount    = 6
	popParticleSpeed    = 90.0
	popParticleLifetime = 0.4
	popParticleSize     = 4.0
)

// NewPointEffectEntity 创建飘分特效
// 在泡泡戳破位置显示分数，上升一段时间后由 LifetimeSystem 清理
func NewPointEffectEntity(em *ecs.EntityManager, x, y float64, points int, lifetime, riseSpeed float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	text := strconv.Itoa(points)

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.PointEffectComponent{Text: text, RiseSpeed: riseSpeed})
	em.AddComponent(id, &components.SpriteComponent{
		Visible: true,
		Color:   ColorPointText,
		Label:   text,
	})
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: lifetime})

	return id, nil
}

// NewPopParticles 创建泡泡戳破的粒子
// 粒子沿圆周均匀飞散，短时间后消失
func NewPopParticles(em *ecs.EntityManager, x, y float64) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}

	ids := make([]ecs.EntityID, 0, popParticleCount)
	for i := 0; i < popParticleCount; i++ {
		angle := 2 * math.Pi * float64(i) / popParticleCount

		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
		em.AddComponent(id, &components.RigidBodyComponent{
			VX:        math.Cos(angle) * popParticleSpeed,
			VY:        math.Sin(angle) * popParticleSpeed,
			Mass:      1,
			Kinematic: true,
		})
		em.AddComponent(id, &components.SpriteComponent{
			Visible: true,
			Width:   popParticleSize,
			Height:  popParticleSize,
			Color:   ColorParticle,
		})
		em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: popParticleLifetime})
		ids = append(ids, id)
	}

	return ids, nil
}
