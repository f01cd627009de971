package cli

import (
	"fmt"

	"github.com/joeldevian/myday-rutinas/internal/storage"
)

// ClearCmd wipes stored collections. "all" removes every key for the user,
// including reset markers and the merit tally, so it asks twice.
type ClearCmd struct {
	Target string `arg:"" help:"What to clear: routines|stats|events|goals|missions|all" enum:"routines,stats,events,goals,missions,all"`
	Yes    bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	if !c.Yes && !confirm(fmt.Sprintf("Clear %s?", c.Target)) {
		fmt.Println("Aborted")
		return nil
	}

	var bases []string
	switch c.Target {
	case "routines":
		bases = []string{storage.KeyRoutines}
	case "stats":
		bases = []string{storage.KeyStatsHistory}
	case "events":
		bases = []string{storage.KeyEvents}
	case "goals":
		bases = []string{storage.KeyWeeklyGoals}
	case "missions":
		bases = []string{storage.KeyMissions}
	case "all":
		if !c.Yes && !confirm("This also removes reset markers and the merit tally. Really clear everything?") {
			fmt.Println("Aborted")
			return nil
		}
		bases = storage.BaseKeys()
	}

	for _, base := range bases {
		if err := ctx.Store.Delete(storage.UserKey(base, s.User.UserID)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", base, err)
		}
	}
	fmt.Printf("Cleared %s\n", c.Target)
	return nil
}
