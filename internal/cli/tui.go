package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joeldevian/myday-rutinas/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	deps := tui.Deps{
		Routines: s.Routines,
		Goals:    s.Goals,
		Missions: s.Missions,
		Recorder: s.Recorder,
		Runner:   s.Runner,
		Clock:    ctx.Clock,
	}
	p := tea.NewProgram(tui.NewModel(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
