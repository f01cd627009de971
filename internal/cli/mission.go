package cli

import "fmt"

type MissionAddCmd struct {
	Title string `arg:"" help:"Mission title."`
}

func (c *MissionAddCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	mission, err := s.Missions.Create(c.Title)
	if err != nil {
		return err
	}
	fmt.Printf("Added mission: %s (ID: %s)\n", mission.Title, mission.ID)
	return nil
}

type MissionListCmd struct{}

func (c *MissionListCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	missions, err := s.Missions.All()
	if err != nil {
		return err
	}
	ms, err := s.Missions.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Missions for %s %d\n", ms.MonthName, ms.Year)
	if len(missions) == 0 {
		fmt.Println("No missions this month")
		return nil
	}
	for _, m := range missions {
		mark := " "
		if m.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %s  %s\n", mark, m.ID[:8], m.Title)
	}
	fmt.Printf("\n%d/%d completed (%d%%)\n", ms.Completed, ms.Total, ms.Percentage)
	return nil
}

type MissionRenameCmd struct {
	ID    string `arg:"" help:"Mission id."`
	Title string `arg:"" help:"New title."`
}

func (c *MissionRenameCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	mission, matched, err := s.Missions.Rename(c.ID, c.Title)
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Mission not found")
		return nil
	}
	fmt.Printf("Renamed mission: %s\n", mission.Title)
	return nil
}

type MissionDeleteCmd struct {
	ID string `arg:"" help:"Mission id."`
}

func (c *MissionDeleteCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	matched, err := s.Missions.Delete(c.ID)
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Mission not found")
		return nil
	}
	fmt.Println("Deleted mission")
	return nil
}

type MissionDoneCmd struct {
	ID string `arg:"" help:"Mission id."`
}

func (c *MissionDoneCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	mission, matched, err := s.Missions.Toggle(c.ID)
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Mission not found")
		return nil
	}
	if mission.Completed {
		fmt.Printf("Completed: %s\n", mission.Title)
	} else {
		fmt.Printf("Reopened: %s\n", mission.Title)
	}
	return nil
}

// MeritCmd shows the lifetime merit tally earned from monthly evaluations.
type MeritCmd struct{}

func (c *MeritCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	tally := s.Runner.Tally()
	fmt.Println("Merit tally")
	fmt.Printf("  Leyenda: %d\n", tally.Leyenda)
	fmt.Printf("  Elite:   %d\n", tally.Elite)
	fmt.Printf("  Novato:  %d\n", tally.Novato)
	fmt.Printf("  Total:   %d\n", tally.Total())
	return nil
}
