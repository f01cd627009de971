package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/joeldevian/myday-rutinas/internal/constants"
	"github.com/joeldevian/myday-rutinas/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK (%s)\n", ctx.Store.Path())
		storeReachable = true
	}

	// Check 2: identity resolvable (warning only; most commands need it)
	user, err := ctx.Identity.Current()
	if err != nil {
		fmt.Printf("⚠ Identity: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Identity: OK (%s)\n", user.UserID)
	}

	// Check 3: reset markers parse as period identifiers
	if storeReachable && user.UserID != "" {
		if err := checkMarkers(ctx, user.UserID); err != nil {
			fmt.Printf("❌ Reset markers: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Reset markers: OK\n")
		}
	} else {
		fmt.Printf("⊘ Reset markers: SKIPPED\n")
	}

	// Check 4: clock sanity
	if err := checkClock(ctx); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	// Check 5: duplicate watch processes (warning only)
	if n, err := countOwnProcesses(); err != nil {
		fmt.Printf("⊘ Process check: SKIPPED (%v)\n", err)
	} else if n > 1 {
		fmt.Printf("⚠ Process check: WARNING\n")
		fmt.Printf("   %d %s processes running; concurrent writers can race on the store\n", n, constants.AppName)
	} else {
		fmt.Printf("✓ Process check: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkMarkers(ctx *Context, userID string) error {
	checks := []struct {
		base   string
		layout string
	}{
		{storage.KeyLastReset, constants.DateFormat},
		{storage.KeyLastMonth, constants.MonthFormat},
	}
	for _, c := range checks {
		var marker string
		found, err := ctx.Store.Get(storage.UserKey(c.base, userID), &marker)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", c.base, err)
		}
		if !found || marker == "" {
			continue // first run, marker set on next reset pass
		}
		if _, err := time.Parse(c.layout, marker); err != nil {
			return fmt.Errorf("marker %s holds %q, want layout %s", c.base, marker, c.layout)
		}
	}
	return nil
}

func checkClock(ctx *Context) error {
	now := ctx.Clock.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func countOwnProcesses() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	self := os.Getpid()
	n := 1
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			n++
		}
	}
	return n, nil
}
