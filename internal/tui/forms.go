package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/validation"
)

type RoutineFormModel struct {
	Title string
	Start string
	End   string
	Icon  models.Icon
}

type TitleFormModel struct {
	Title string
}

type CountdownFormModel struct {
	Hours   string
	Minutes string
	Seconds string
}

func validClock(s string) error {
	if !validation.ValidClock(s) {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

// NewRoutineForm builds the add/edit form for a routine.
func NewRoutineForm(fm *RoutineFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start (HH:MM)").
				Value(&fm.Start).
				Validate(validClock),
			huh.NewInput().
				Title("End (HH:MM)").
				Description("Leave empty for one hour after start").
				Value(&fm.End).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return validClock(s)
				}),
			huh.NewSelect[models.Icon]().
				Title("Icon").
				Options(
					huh.NewOption("Circle", models.IconCircle),
					huh.NewOption("Sun", models.IconSun),
					huh.NewOption("Moon", models.IconMoon),
					huh.NewOption("Coffee", models.IconCoffee),
					huh.NewOption("Book", models.IconBook),
					huh.NewOption("Dumbbell", models.IconDumbbell),
					huh.NewOption("Briefcase", models.IconBriefcase),
					huh.NewOption("Heart", models.IconHeart),
					huh.NewOption("Star", models.IconStar),
					huh.NewOption("Music", models.IconMusic),
				).
				Value(&fm.Icon),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewTitleForm builds a single-input form for goals and missions.
func NewTitleForm(label string, fm *TitleFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(label).
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func boundedInt(lo, hi int) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		if i < lo || i > hi {
			return fmt.Errorf("must be %d-%d", lo, hi)
		}
		return nil
	}
}

// NewCountdownForm builds the countdown budget form.
func NewCountdownForm(fm *CountdownFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hours").
				Value(&fm.Hours).
				Validate(boundedInt(0, 23)),
			huh.NewInput().
				Title("Minutes").
				Value(&fm.Minutes).
				Validate(boundedInt(0, 59)),
			huh.NewInput().
				Title("Seconds").
				Value(&fm.Seconds).
				Validate(boundedInt(0, 59)),
		),
	).WithTheme(huh.ThemeDracula())
}

func atoiOrZero(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}
