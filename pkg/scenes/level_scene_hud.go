package scenes

import (
	"fmt"
	"strings"

	"github.com/decker502/bubblebobble/pkg/components"
	"github.com/decker502/bubblebobble/pkg/ecs"
	"github.com/decker502/bubblebobble/pkg/types"
)

// ShopRow 商店一行的显示内容
type ShopRow struct {
	Index     int
	Label     string
	Price     int
	Active    bool
	Remaining int     // 剩余秒数，未激活时为 0
	Fill      float64 // 计时条
}

// ShopRows 返回强化道具和额外生命的商店行，顺序与购买编号一致
func (s *LevelScene) ShopRows() []ShopRow {
	rows := make([]ShopRow, 0, len(s.powerUpIDs)+1)
	for i, id := range s.powerUpIDs {
		powerUp, ok := ecs.GetComponent[*components.PowerUpComponent](s.em, id)
		if !ok {
			continue
		}
		row := ShopRow{Index: i, Label: powerUp.ID, Price: powerUp.Price, Active: powerUp.IsActive}
		if powerUp.IsActive {
			row.Remaining = powerUp.TimerText
			row.Fill = powerUp.TimerFill
		}
		rows = append(rows, row)
	}
	rows = append(rows, ShopRow{Index: s.shopCfg.ExtraLifeIndex, Label: "extra_life"})
	return rows
}

// StatusLines 返回文字 HUD 的状态行
func (s *LevelScene) StatusLines() []string {
	session := s.session
	lines := []string{
		fmt.Sprintf("SCORE %d  LIVES %d/%d", session.Points(), session.Lives(), session.MaxLives()),
		fmt.Sprintf("LEVEL %d  WORLD %d  %s", s.LevelNumber(), s.WorldNumber(), s.Level().Name),
	}

	shells := make([]string, 0, len(types.ShellTypes))
	for _, shell := range types.ShellTypes {
		shells = append(shells, fmt.Sprintf("%s:%d", shell, session.ItemCount(shell)))
	}
	lines = append(lines, "SHELLS "+strings.Join(shells, " "))

	switch {
	case s.over:
		lines = append(lines, "GAME OVER")
	case s.level.IsHurryUpActive():
		lines = append(lines, "HURRY UP!")
	default:
		lines = append(lines, strings.ToUpper(session.Phase().String()))
	}
	return lines
}

// ShopLine 格式化一行商店文字，按键编号从 1 开始
func ShopLine(row ShopRow) string {
	switch {
	case row.Active:
		return fmt.Sprintf("[%d] %-12s %5d  %2ds", row.Index+1, row.Label, row.Price, row.Remaining)
	case row.Price > 0:
		return fmt.Sprintf("[%d] %-12s %5d", row.Index+1, row.Label, row.Price)
	default:
		return fmt.Sprintf("[%d] %s", row.Index+1, row.Label)
	}
}
