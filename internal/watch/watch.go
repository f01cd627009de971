// Package watch runs the reset poll as a background job while the process is
// alive, so boundary crossings are caught even with no UI open.
package watch

import (
	"fmt"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/constants"
	"github.com/joeldevian/myday-rutinas/internal/logger"
	"github.com/joeldevian/myday-rutinas/internal/reset"
)

// Start schedules the periodic reset tick and runs one immediately, covering
// the "process was not running at the boundary" case. The returned scheduler
// must be shut down by the caller when the session ends.
func Start(runner *reset.Runner, clock clockwork.Clock) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(constants.ResetPollInterval),
		gocron.NewTask(runner.Tick),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule reset poll: %w", err)
	}

	s.Start()
	logger.Info("reset poll started", "interval", constants.ResetPollInterval)
	return s, nil
}
