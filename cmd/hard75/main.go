package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/kpeters/hard75/internal/app"
	"github.com/kpeters/hard75/internal/cli"
	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/engine"
	"github.com/kpeters/hard75/internal/errors"
	"github.com/kpeters/hard75/internal/logger"
	"github.com/kpeters/hard75/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize hard75 storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Status   cli.StatusCmd   `cmd:"" help:"Show today's checklist."`
	Start    cli.StartCmd    `cmd:"" help:"Start the challenge at day 1."`
	Done     cli.DoneCmd     `cmd:"" help:"Finalize today once all tasks are complete."`
	Water    cli.WaterCmd    `cmd:"" help:"Log water intake."`
	Read     cli.ReadCmd     `cmd:"" help:"Log pages read."`
	Workout  cli.WorkoutCmd  `cmd:"" help:"Log a workout."`
	Diet     cli.DietCmd     `cmd:"" help:"Mark the diet as followed."`
	Photo    cli.PhotoCmd    `cmd:"" help:"Record the progress photo."`
	Notes    cli.NotesCmd    `cmd:"" help:"Attach notes to today."`
	SetDay   cli.SetDayCmd   `cmd:"" name:"set-day" help:"Jump to a specific challenge day."`
	Reset    cli.ResetCmd    `cmd:"" help:"Reset the challenge and archive the current run."`
	Settings cli.SettingsCmd `cmd:"" help:"View or change settings."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show challenge statistics."`
	History  cli.HistoryCmd  `cmd:"" help:"Show past days and attempts."`
	Export   cli.ExportCmd   `cmd:"" help:"Export state as a JSON snapshot."`
	Import   cli.ImportCmd   `cmd:"" help:"Import a JSON snapshot."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage store backups."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks on the store and state."`
	DebugCmd cli.DebugCmd    `cmd:"" name:"debug" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("75 Hard challenge tracker"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
			"types":       cli.WorkoutTypeList(),
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		App:   app.New(store, engine.New()),
		Debug: CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
