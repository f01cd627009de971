package cli

import (
	"fmt"

	"github.com/joeldevian/myday-rutinas/internal/reset"
)

// ResetNowCmd applies a period reset on demand instead of waiting for the
// boundary. The day variant records today's completion snapshot first, so
// manually resetting does not erase the day from the history chart.
type ResetNowCmd struct {
	Period string `arg:"" optional:"" default:"day" help:"Which reset to apply: day|week" enum:"day,week"`
	Yes    bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetNowCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	now := ctx.Clock.Now()
	switch c.Period {
	case "day":
		if !c.Yes && !confirm("Reset all routines for a fresh day?") {
			fmt.Println("Aborted")
			return nil
		}
		routines, err := s.Routines.All()
		if err != nil {
			return err
		}
		s.Recorder.CommitToday(routines)
		if err := s.Routines.ResetAll(reset.DayIdentifier(now)); err != nil {
			return err
		}
		fmt.Println("Routines reset")
	case "week":
		if !c.Yes && !confirm("Clear this week's checkboxes on every goal?") {
			fmt.Println("Aborted")
			return nil
		}
		if err := s.Goals.ResetAllProgress(reset.WeekIdentifier(now)); err != nil {
			return err
		}
		fmt.Println("Weekly goals reset")
	}
	return nil
}
