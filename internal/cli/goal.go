package cli

import (
	"fmt"
	"strings"
)

var dayLetters = [7]string{"D", "L", "M", "X", "J", "V", "S"}

type GoalAddCmd struct {
	Title string `arg:"" help:"Goal title."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	goal, err := s.Goals.Create(c.Title)
	if err != nil {
		return err
	}
	fmt.Printf("Added weekly goal: %s (ID: %s)\n", goal.Title, goal.ID)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	goals, err := s.Goals.All()
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		fmt.Println("No weekly goals")
		return nil
	}
	for _, g := range goals {
		var week strings.Builder
		for i, done := range g.DaysCompleted {
			if done {
				week.WriteString(dayLetters[i])
			} else {
				week.WriteString("·")
			}
		}
		fmt.Printf("%s  %s  %d/7  %s\n", g.ID[:8], week.String(), g.CompletedDays(), g.Title)
	}

	ws, err := s.Goals.Stats()
	if err != nil {
		return err
	}
	fmt.Printf("\nWeek progress: %d/%d checkboxes (%d%%)\n", ws.CompletedCheckboxes, ws.TotalCheckboxes, ws.Percentage)
	return nil
}

type GoalRenameCmd struct {
	ID    string `arg:"" help:"Goal id."`
	Title string `arg:"" help:"New title."`
}

func (c *GoalRenameCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	goal, matched, err := s.Goals.Rename(c.ID, c.Title)
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Goal not found")
		return nil
	}
	fmt.Printf("Renamed goal: %s\n", goal.Title)
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal id."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	matched, err := s.Goals.Delete(c.ID)
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Goal not found")
		return nil
	}
	fmt.Println("Deleted goal")
	return nil
}

type GoalCheckCmd struct {
	ID  string `arg:"" help:"Goal id."`
	Day int    `arg:"" help:"Day index, 0=Sunday .. 6=Saturday."`
}

func (c *GoalCheckCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	goal, matched, err := s.Goals.ToggleDay(c.ID, c.Day)
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Goal not found")
		return nil
	}
	state := "unchecked"
	if goal.DaysCompleted[c.Day] {
		state = "checked"
	}
	fmt.Printf("%s: day %d %s (%d/7)\n", goal.Title, c.Day, state, goal.CompletedDays())
	return nil
}
