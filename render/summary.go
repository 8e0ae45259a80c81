package render

import (
	"fmt"

	"github.com/battlesnakeio/mamba/rules"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	gridStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	statStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Summary is a styled text report of the game for headless runs: the HUD,
// the occupancy map and the cumulative stats of each player.
func Summary(g *rules.Game) string {
	hud := HUD(g)
	lines := []string{titleStyle.Render(hud[0])}
	for _, l := range hud[1:] {
		lines = append(lines, l)
	}
	lines = append(lines, gridStyle.Render(g.Grid.String()))
	for _, p := range g.Players {
		lines = append(lines, statStyle.Render(fmt.Sprintf("P%d deaths %d  kills %d  high %d", p.ID+1, p.Stats.Deaths, p.Stats.Kills, p.Stats.HighScore)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
