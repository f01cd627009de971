package cli

import (
	"fmt"

	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/repo"
	"github.com/joeldevian/myday-rutinas/internal/timer"
)

type RoutineAddCmd struct {
	Title string `arg:"" help:"Routine title."`
	Start string `short:"s" help:"Start time (HH:MM)." required:""`
	End   string `short:"e" help:"End time (HH:MM)." default:""`
	Icon  string `short:"i" help:"Icon tag." default:"Circle"`
}

func (c *RoutineAddCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	routine, err := s.Routines.Create(repo.RoutineInput{
		Title:     c.Title,
		StartTime: c.Start,
		EndTime:   c.End,
		Icon:      models.Icon(c.Icon),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added routine: %s (ID: %s)\n", routine.Title, routine.ID)
	return nil
}

type RoutineListCmd struct {
	Period string `short:"p" help:"Filter by period (morning|afternoon|night)." default:""`
}

func (c *RoutineListCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	routines, err := s.Routines.All()
	if err != nil {
		return err
	}
	if c.Period != "" {
		routines = models.FilterByTimeOfDay(routines, models.TimeOfDay(c.Period))
	}
	if len(routines) == 0 {
		fmt.Println("No routines")
		return nil
	}

	now := ctx.Clock.Now()
	for _, r := range routines {
		mark := " "
		if r.Completed {
			mark = "x"
		}
		badge := ""
		if r.IsActiveAt(now) {
			badge = "  << now"
		} else if !r.Completed && r.IsPast(now) {
			badge = "  (missed)"
		}
		window := r.StartTime
		if r.EndTime != "" {
			window += "–" + r.EndTime
		}
		fmt.Printf("[%s] %-12s %-30s %-10s %s%s\n", mark, window, r.Title, r.TimeOfDay, r.ID[:8], badge)
		if secs := r.Timer.Elapsed(now); secs > 0 || r.Timer.IsRunning {
			state := "paused"
			if r.Timer.IsRunning {
				state = "running"
			}
			fmt.Printf("    tracked: %s (%s)\n", timer.FormatClock(secs), state)
		}
	}
	return nil
}

type RoutineEditCmd struct {
	ID    string  `arg:"" help:"Routine id (or unique prefix)."`
	Title *string `short:"t" help:"New title."`
	Start *string `short:"s" help:"New start time (HH:MM)."`
	End   *string `short:"e" help:"New end time (HH:MM)."`
	Icon  *string `short:"i" help:"New icon tag."`
}

func (c *RoutineEditCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	id, err := resolveRoutineID(s, c.ID)
	if err != nil {
		return err
	}

	patch := repo.RoutinePatch{Title: c.Title, StartTime: c.Start, EndTime: c.End}
	if c.Icon != nil {
		icon := models.Icon(*c.Icon)
		patch.Icon = &icon
	}
	routine, matched, err := s.Routines.Update(id, patch)
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Routine not found")
		return nil
	}
	fmt.Printf("Updated routine: %s\n", routine.Title)
	return nil
}

type RoutineDeleteCmd struct {
	ID string `arg:"" help:"Routine id (or unique prefix)."`
}

func (c *RoutineDeleteCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	id, err := resolveRoutineID(s, c.ID)
	if err != nil {
		return err
	}
	matched, err := s.Routines.Delete(id)
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Routine not found")
		return nil
	}
	fmt.Println("Deleted routine")
	return nil
}

// RoutineDoneCmd toggles completion; completing also commits a fresh stats
// snapshot so the chart's today bar is durable immediately.
type RoutineDoneCmd struct {
	ID string `arg:"" help:"Routine id (or unique prefix)."`
}

func (c *RoutineDoneCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	id, err := resolveRoutineID(s, c.ID)
	if err != nil {
		return err
	}
	routine, matched, err := s.Routines.ToggleComplete(id)
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Routine not found")
		return nil
	}

	routines, err := s.Routines.All()
	if err == nil {
		s.Recorder.CommitToday(routines)
	}

	if routine.Completed {
		fmt.Printf("Completed: %s\n", routine.Title)
	} else {
		fmt.Printf("Reopened: %s\n", routine.Title)
	}
	return nil
}

type RoutineTimerCmd struct {
	ID     string `arg:"" help:"Routine id (or unique prefix)."`
	Action string `arg:"" help:"start|pause|reset" enum:"start,pause,reset"`
}

func (c *RoutineTimerCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	id, err := resolveRoutineID(s, c.ID)
	if err != nil {
		return err
	}

	var (
		routine models.Routine
		matched bool
	)
	switch c.Action {
	case "start":
		routine, matched, err = s.Routines.StartTimer(id)
	case "pause":
		routine, matched, err = s.Routines.PauseTimer(id)
	case "reset":
		routine, matched, err = s.Routines.ResetTimer(id)
	}
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Routine not found")
		return nil
	}
	fmt.Printf("%s: %s tracked\n", routine.Title, timer.FormatClock(routine.Timer.Elapsed(ctx.Clock.Now())))
	return nil
}

// resolveRoutineID accepts a full id or a unique prefix.
func resolveRoutineID(s *Session, ref string) (string, error) {
	routines, err := s.Routines.All()
	if err != nil {
		return "", err
	}
	var match string
	for _, r := range routines {
		if r.ID == ref {
			return ref, nil
		}
		if len(ref) >= 4 && len(r.ID) >= len(ref) && r.ID[:len(ref)] == ref {
			if match != "" {
				return "", fmt.Errorf("ambiguous routine id prefix: %s", ref)
			}
			match = r.ID
		}
	}
	if match == "" {
		return ref, nil // let the repository report the silent no-op
	}
	return match, nil
}
