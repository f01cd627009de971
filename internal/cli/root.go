package cli

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/identity"
	"github.com/joeldevian/myday-rutinas/internal/repo"
	"github.com/joeldevian/myday-rutinas/internal/reset"
	"github.com/joeldevian/myday-rutinas/internal/stats"
	"github.com/joeldevian/myday-rutinas/internal/storage"
)

// Context carries the shared dependencies into every command.
type Context struct {
	Store     storage.Provider
	Clock     clockwork.Clock
	Identity  *identity.Manager
	ConfigDir string
	Debug     bool
}

// Session is an opened per-user working set: store loaded, repositories bound
// to the signed-in user, and the reset runner already ticked once so any
// boundary crossed while the app was closed is processed before the command
// sees the data.
type Session struct {
	User     identity.Profile
	Routines *repo.Routines
	Events   *repo.Events
	Goals    *repo.Goals
	Missions *repo.Missions
	Recorder *stats.Recorder
	Runner   *reset.Runner
}

// OpenSession loads storage, resolves the signed-in user, and runs the
// on-load reset evaluation.
func (c *Context) OpenSession() (*Session, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	user, err := c.Identity.Current()
	if err != nil {
		return nil, err
	}

	s := &Session{
		User:     user,
		Routines: repo.NewRoutines(c.Store, user.UserID, c.Clock),
		Events:   repo.NewEvents(c.Store, user.UserID, c.Clock),
		Goals:    repo.NewGoals(c.Store, user.UserID, c.Clock),
		Missions: repo.NewMissions(c.Store, user.UserID, c.Clock),
		Recorder: stats.NewRecorder(c.Store, user.UserID, c.Clock),
		Runner:   reset.NewRunner(c.Store, user.UserID, c.Clock),
	}
	s.Runner.Tick()
	return s, nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y" || answer == "yes"
}
