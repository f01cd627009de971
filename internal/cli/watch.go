package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joeldevian/myday-rutinas/internal/watch"
)

// WatchCmd runs the reset scheduler in the foreground until interrupted.
// Boundaries are still caught when nothing is watching; the next session's
// on-load evaluation handles them. Watching just makes resets land on time.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	scheduler, err := watch.Start(s.Runner, ctx.Clock)
	if err != nil {
		return err
	}
	defer func() { _ = scheduler.Shutdown() }()

	fmt.Println("Watching for period boundaries (Ctrl-C to stop)")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("\nStopped")
	return nil
}
