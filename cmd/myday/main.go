package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/cli"
	"github.com/joeldevian/myday-rutinas/internal/constants"
	"github.com/joeldevian/myday-rutinas/internal/errors"
	"github.com/joeldevian/myday-rutinas/internal/identity"
	"github.com/joeldevian/myday-rutinas/internal/logger"
	"github.com/joeldevian/myday-rutinas/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the JSON backend; anything else uses SQLite." default:"${config_path}" env:"MYDAY_CONFIG"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize myday storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Login    cli.LoginCmd    `cmd:"" help:"Sign in with an identity-provider user id."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Sign out."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the signed-in user."`
	Watch    cli.WatchCmd    `cmd:"" help:"Run the reset scheduler in the foreground."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show the completion chart."`
	Merit    cli.MeritCmd    `cmd:"" help:"Show the merit tally."`
	Export   cli.ExportCmd   `cmd:"" help:"Export routines, stats, and events to a JSON backup."`
	Import   cli.ImportCmd   `cmd:"" help:"Import a JSON backup."`
	Clear    cli.ClearCmd    `cmd:"" help:"Clear stored collections."`
	ResetNow cli.ResetNowCmd `cmd:"" name:"reset-now" help:"Apply the daily or weekly reset immediately."`
	Routine struct {
		Add    cli.RoutineAddCmd    `cmd:"" help:"Add a routine."`
		List   cli.RoutineListCmd   `cmd:"" help:"List routines." default:"1"`
		Edit   cli.RoutineEditCmd   `cmd:"" help:"Edit a routine."`
		Delete cli.RoutineDeleteCmd `cmd:"" help:"Delete a routine."`
		Done   cli.RoutineDoneCmd   `cmd:"" help:"Toggle a routine's completion."`
		Timer  cli.RoutineTimerCmd  `cmd:"" help:"Control a routine's stopwatch."`
	} `cmd:"" help:"Manage daily routines."`
	Event struct {
		Add    cli.EventAddCmd    `cmd:"" help:"Add a calendar event."`
		List   cli.EventListCmd   `cmd:"" help:"List calendar events." default:"1"`
		Edit   cli.EventEditCmd   `cmd:"" help:"Edit a calendar event."`
		Delete cli.EventDeleteCmd `cmd:"" help:"Delete a calendar event."`
	} `cmd:"" help:"Manage calendar events."`
	Goal struct {
		Add    cli.GoalAddCmd    `cmd:"" help:"Add a weekly goal."`
		List   cli.GoalListCmd   `cmd:"" help:"List weekly goals." default:"1"`
		Rename cli.GoalRenameCmd `cmd:"" help:"Rename a weekly goal."`
		Delete cli.GoalDeleteCmd `cmd:"" help:"Delete a weekly goal."`
		Check  cli.GoalCheckCmd  `cmd:"" help:"Toggle a goal's day checkbox."`
	} `cmd:"" help:"Manage weekly goals."`
	Mission struct {
		Add    cli.MissionAddCmd    `cmd:"" help:"Add a monthly mission."`
		List   cli.MissionListCmd   `cmd:"" help:"List monthly missions." default:"1"`
		Rename cli.MissionRenameCmd `cmd:"" help:"Rename a monthly mission."`
		Delete cli.MissionDeleteCmd `cmd:"" help:"Delete a monthly mission."`
		Done   cli.MissionDoneCmd   `cmd:"" help:"Toggle a mission's completion."`
	} `cmd:"" help:"Manage monthly missions."`
}

func main() {
	_ = godotenv.Load() // MYDAY_CONFIG overrides, nothing secret

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal daily routine tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := expandHome(CLI.Config)
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}
	defer func() { _ = store.Close() }()

	appCtx := &cli.Context{
		Store:     store,
		Clock:     clockwork.NewRealClock(),
		Identity:  identity.NewManager(configDir),
		ConfigDir: configDir,
		Debug:     CLI.Debug,
	}

	errors.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
