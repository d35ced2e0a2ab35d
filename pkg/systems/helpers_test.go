package systems

import (
	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/config"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/game"
	"github.com/decker502/bubblebobble/pkg/types"
)

// recordingPresenter 记录展示层调用
type recordingPresenter struct {
	active  map[string]bool
	numbers map[string]int
	prices  map[int]game.PriceColor
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{
		active:  make(map[string]bool),
		numbers: make(map[string]int),
		prices:  make(map[int]game.PriceColor),
	}
}

func (p *recordingPresenter) SetActive(name string, active bool)         { p.active[name] = active }
func (p *recordingPresenter) SetNumber(name string, value int)           { p.numbers[name] = value }
func (p *recordingPresenter) SetPriceColor(index int, c game.PriceColor) { p.prices[index] = c }

// fakeAudio 记录音效和音乐变速请求
type fakeAudio struct {
	sfx       []string
	speedUps  int
	slowDowns int
}

func (a *fakeAudio) PlaySFX(clipID string) { a.sfx = append(a.sfx, clipID) }
func (a *fakeAudio) SpeedUpMusic()         { a.speedUps++ }
func (a *fakeAudio) SlowDownMusic()        { a.slowDowns++ }

// fakeContacts 直接给出本帧接触事件
type fakeContacts struct {
	events []Contact
}

func (c *fakeContacts) Contacts() []Contact { return c.events }

// newTestWorld 创建实体管理器和一局新游戏
func newTestWorld() (*ecs.EntityManager, *game.GameSession, *recordingPresenter, *config.GameConfig) {
	cfg := config.DefaultGameConfig()
	presenter := newRecordingPresenter()
	return ecs.NewEntityManager(), game.NewGameSession(cfg, presenter), presenter, cfg
}

func contactBetween(a ecs.EntityID, tagA types.Tag, b ecs.EntityID, tagB types.Tag, phase ContactPhase) Contact {
	return Contact{A: a, B: b, TagA: tagA, TagB: tagB, Phase: phase}
}

// countTagged 统计带某个碰撞标签的实体数
func countTagged(em *ecs.EntityManager, tag types.Tag) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.CollisionComponent](em) {
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		if col.Tag == tag && !em.IsMarkedForDestroy(id) {
			n++
		}
	}
	return n
}

// itemsOfType 返回某类道具实体
func itemsOfType(em *ecs.EntityManager, itemType types.ItemType) []ecs.EntityID {
	result := make([]ecs.EntityID, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.ItemComponent](em) {
		item, _ := ecs.GetComponent[*components.ItemComponent](em, id)
		if item.Type == itemType {
			result = append(result, id)
		}
	}
	return result
}
