package cli

import (
	"fmt"
	"sort"

	"github.com/joeldevian/myday-rutinas/internal/constants"
)

type EventAddCmd struct {
	Title string `arg:"" help:"Event title."`
	Date  string `short:"d" help:"Date (YYYY-MM-DD), defaults to today." default:""`
}

func (c *EventAddCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	date := c.Date
	if date == "" {
		date = ctx.Clock.Now().Format(constants.DateFormat)
	}
	event, err := s.Events.Add(date, c.Title)
	if err != nil {
		return err
	}
	fmt.Printf("Added event on %s: %s (ID: %s)\n", date, event.Title, event.ID)
	return nil
}

type EventListCmd struct {
	Date string `short:"d" help:"Only show events on this date (YYYY-MM-DD)." default:""`
}

func (c *EventListCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	if c.Date != "" {
		events, err := s.Events.ForDate(c.Date)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Printf("No events on %s\n", c.Date)
			return nil
		}
		for _, ev := range events {
			fmt.Printf("  %s  %s\n", ev.ID[:8], ev.Title)
		}
		return nil
	}

	all, err := s.Events.All()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No events")
		return nil
	}
	dates := make([]string, 0, len(all))
	for date := range all {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		fmt.Println(date)
		for _, ev := range all[date] {
			fmt.Printf("  %s  %s\n", ev.ID[:8], ev.Title)
		}
	}
	return nil
}

type EventEditCmd struct {
	Date  string `arg:"" help:"Event date (YYYY-MM-DD)."`
	ID    string `arg:"" help:"Event id."`
	Title string `arg:"" help:"New title."`
}

func (c *EventEditCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	event, matched, err := s.Events.Update(c.Date, c.ID, c.Title)
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Event not found")
		return nil
	}
	fmt.Printf("Updated event: %s\n", event.Title)
	return nil
}

type EventDeleteCmd struct {
	Date string `arg:"" help:"Event date (YYYY-MM-DD)."`
	ID   string `arg:"" help:"Event id."`
}

func (c *EventDeleteCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	matched, err := s.Events.Delete(c.Date, c.ID)
	if err != nil {
		return err
	}
	if !matched {
		fmt.Println("Event not found")
		return nil
	}
	fmt.Println("Deleted event")
	return nil
}
