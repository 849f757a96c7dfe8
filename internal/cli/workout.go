package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/dateutil"
	"github.com/kpeters/hard75/internal/engine"
	"github.com/kpeters/hard75/internal/models"
	"github.com/kpeters/hard75/internal/rules"
)

type WorkoutCmd struct {
	Num      int    `arg:"" help:"Workout number (1 or 2)."`
	Start    bool   `short:"s" help:"Record the workout start time (now)."`
	Done     bool   `short:"d" help:"Mark the workout complete (records end time)."`
	Duration int    `help:"Duration in minutes (with --done; defaults to elapsed time or the 45-min minimum)."`
	Outdoor  bool   `short:"o" help:"Mark this workout as outdoors."`
	Type     string `short:"t" help:"Workout type (e.g. ${types})."`
}

func (c *WorkoutCmd) Validate() error {
	if c.Num != 1 && c.Num != 2 {
		return fmt.Errorf("workout number must be 1 or 2")
	}
	if !c.Start && !c.Done && !c.Outdoor && c.Type == "" {
		return fmt.Errorf("nothing to record, pass --start, --done, --outdoor, or --type")
	}
	return nil
}

func (c *WorkoutCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}
	day, err := ctx.requireToday()
	if err != nil {
		return err
	}

	now := time.Now()

	// The gap rule gates the second workout; warn but let the user decide,
	// the completion predicate enforces it anyway.
	if c.Num == 2 && c.Start {
		gap := rules.WorkoutGapInfoFor(day, now)
		if !gap.CanStartSecond {
			fmt.Printf("Warning: %dm left until the 3-hour gap is met, this workout will not count yet.\n", gap.MinutesRemaining)
		}
	}

	patch := engine.WorkoutPatch{}
	if c.Outdoor {
		outdoor := true
		patch.IsOutdoor = &outdoor
	}
	if c.Type != "" {
		t := c.Type
		patch.Type = &t
	}
	if c.Start {
		ts := dateutil.FormatTimestamp(now)
		patch.StartTime = &ts
	}
	if c.Done {
		completed := true
		ts := dateutil.FormatTimestamp(now)
		duration := c.Duration
		if duration == 0 {
			duration = elapsedMinutes(workoutEntry(day, c.Num).StartTime, now)
		}
		if duration < constants.WorkoutDurationMinutes {
			// A bare "mark done" counts as exactly the required length.
			duration = constants.WorkoutDurationMinutes
		}
		patch.Completed = &completed
		patch.EndTime = &ts
		patch.Duration = &duration
	}

	state := ctx.App.Dispatch(engine.UpdateWorkout{Num: c.Num, Patch: patch})

	entry := workoutEntry(state.TodayProgress, c.Num)
	switch {
	case c.Done:
		fmt.Printf("Workout %d complete: %dm%s\n", c.Num, entry.Duration, outdoorSuffix(entry.IsOutdoor))
	case c.Start:
		fmt.Printf("Workout %d started at %s.\n", c.Num, now.Format("15:04"))
	default:
		fmt.Printf("Workout %d updated.\n", c.Num)
	}
	return nil
}

// WorkoutTypeList is interpolated into the --type help text.
func WorkoutTypeList() string {
	return strings.Join(constants.WorkoutTypes, ", ")
}

func workoutEntry(day *models.DayProgress, num int) models.WorkoutEntry {
	if num == 1 {
		return day.Workout1
	}
	return day.Workout2
}

func elapsedMinutes(start *string, now time.Time) int {
	if start == nil {
		return 0
	}
	t, err := dateutil.ParseTimestamp(*start)
	if err != nil {
		return 0
	}
	return int(now.Sub(t).Minutes())
}

func outdoorSuffix(outdoor bool) string {
	if outdoor {
		return " (outdoors)"
	}
	return ""
}
