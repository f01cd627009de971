package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	todayBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	faintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const statsBarWidth = 30

type StatsCmd struct {
	Days int `short:"d" help:"Number of days to chart." default:"7"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	routines, err := s.Routines.All()
	if err != nil {
		return err
	}

	rows := s.Recorder.LastNDays(c.Days, routines)
	fmt.Printf("Completion, last %d days\n\n", c.Days)
	for _, row := range rows {
		filled := row.Percentage * statsBarWidth / 100
		bar := strings.Repeat("█", filled) + strings.Repeat("░", statsBarWidth-filled)
		style := barStyle
		label := row.DayName
		if row.IsToday {
			style = todayBarStyle
			label = "Hoy"
		}
		fmt.Printf("%-4s %s %3d%%  %s\n",
			label,
			style.Render(bar),
			row.Percentage,
			faintStyle.Render(fmt.Sprintf("%d/%d", row.Completed, row.Total)))
	}
	return nil
}
