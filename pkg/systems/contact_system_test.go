package systems

import (
	"testing"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/types"
)

func addBody(em *ecs.EntityManager, x, y, size float64, tag types.Tag, trigger bool) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: size, Height: size, Tag: tag, IsTrigger: trigger})
	return id
}

func TestContactSystemPhases(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewContactSystem(em)

	bubble := addBody(em, 100, 100, 20, types.TagBubble, false)
	platform := addBody(em, 105, 100, 40, types.TagPlatform, true)

	system.Update(0.016)
	events := system.Contacts()
	if len(events) != 1 || events[0].Phase != ContactEnter {
		t.Fatalf("first frame: expected one Enter, got %+v", events)
	}
	if events[0].A != bubble || events[0].B != platform || !events[0].Trigger {
		t.Errorf("unexpected contact %+v", events[0])
	}

	system.Update(0.016)
	if events := system.Contacts(); len(events) != 1 || events[0].Phase != ContactStay {
		t.Fatalf("second frame: expected one Stay, got %+v", events)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, bubble)
	pos.X = 400

	system.Update(0.016)
	if events := system.Contacts(); len(events) != 1 || events[0].Phase != ContactExit {
		t.Fatalf("after separation: expected one Exit, got %+v", events)
	}

	system.Update(0.016)
	if events := system.Contacts(); len(events) != 0 {
		t.Errorf("expected no events once apart, got %+v", events)
	}
}

func TestContactSystemSkipsTriggerPairs(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewContactSystem(em)

	addBody(em, 100, 100, 40, types.TagPlatform, true)
	addBody(em, 100, 100, 40, types.TagTeleport, true)

	system.Update(0.016)
	if events := system.Contacts(); len(events) != 0 {
		t.Errorf("two triggers should not contact, got %+v", events)
	}
}

func TestContactSystemDisabledColliderExits(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewContactSystem(em)

	player := addBody(em, 100, 100, 20, types.TagPlayer, false)
	bubble := addBody(em, 100, 100, 20, types.TagBubble, false)

	system.Update(0.016)

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, bubble)
	col.Disabled = true

	system.Update(0.016)
	events := system.Contacts()
	if len(events) != 1 || events[0].Phase != ContactExit {
		t.Fatalf("expected Exit after disabling, got %+v", events)
	}

	other, tag, ok := events[0].Other(player)
	if !ok || other != bubble || tag != types.TagBubble {
		t.Errorf("Other(player) = %d, %s, %v", other, tag, ok)
	}
}

func TestCheckAABBCollision(t *testing.T) {
	tests := []struct {
		name string
		x2   float64
		off  float64
		want bool
	}{
		{"overlap", 15, 0, true},
		{"touching edges", 20, 0, true},
		{"apart", 21, 0, false},
		{"offset brings together", 30, -10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1 := &components.PositionComponent{X: 0, Y: 0}
			c1 := &components.CollisionComponent{Width: 20, Height: 20}
			p2 := &components.PositionComponent{X: tt.x2, Y: 0}
			c2 := &components.CollisionComponent{Width: 20, Height: 20, OffsetX: tt.off}

			if got := checkAABBCollision(p1, c1, p2, c2); got != tt.want {
				t.Errorf("checkAABBCollision() = %v, want %v", got, tt.want)
			}
		})
	}
}
