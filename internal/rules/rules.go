// Package rules holds the pure predicates that decide task and day
// completion for the challenge. The engine and the presentation layer both
// derive everything from these; nothing here mutates state.
package rules

import (
	"math"
	"time"

	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/dateutil"
	"github.com/kpeters/hard75/internal/models"
)

const workoutGap = constants.WorkoutGapHours * time.Hour

// WorkoutsComplete reports whether a day's two workouts satisfy the
// challenge: both completed, at least one outdoors, both at least the
// minimum duration, and at least the minimum gap apart. The gap is only
// enforced when workout1's end and workout2's start are both recorded;
// with either timestamp missing there is not enough data to evaluate it,
// so it is treated as satisfied.
func WorkoutsComplete(day models.DayProgress) bool {
	w1 := day.Workout1
	w2 := day.Workout2

	if !w1.Completed || !w2.Completed {
		return false
	}

	if !w1.IsOutdoor && !w2.IsOutdoor {
		return false
	}

	// The duration check stays authoritative even though Completed may have
	// been set by a plain "mark done" tap.
	if w1.Duration < constants.WorkoutDurationMinutes || w2.Duration < constants.WorkoutDurationMinutes {
		return false
	}

	if w1.EndTime != nil && w2.StartTime != nil {
		w1End, err1 := dateutil.ParseTimestamp(*w1.EndTime)
		w2Start, err2 := dateutil.ParseTimestamp(*w2.StartTime)
		if err1 == nil && err2 == nil && w2Start.Sub(w1End) < workoutGap {
			return false
		}
	}

	return true
}

// DayComplete reports whether all five daily tasks are done.
func DayComplete(day models.DayProgress) bool {
	return day.DietFollowed &&
		WorkoutsComplete(day) &&
		day.WaterOz >= constants.WaterGoalOz &&
		day.PagesRead >= constants.ReadingGoalPages &&
		day.PhotoURI != nil
}

// TaskCompletion is the per-task breakdown used for partial-progress display.
type TaskCompletion struct {
	Diet     bool
	Workouts bool
	Water    bool
	Reading  bool
	Photo    bool
}

// TaskCompletionFor computes the five-way breakdown for a day. A nil day
// yields all-false.
func TaskCompletionFor(day *models.DayProgress) TaskCompletion {
	if day == nil {
		return TaskCompletion{}
	}
	return TaskCompletion{
		Diet:     day.DietFollowed,
		Workouts: WorkoutsComplete(*day),
		Water:    day.WaterOz >= constants.WaterGoalOz,
		Reading:  day.PagesRead >= constants.ReadingGoalPages,
		Photo:    day.PhotoURI != nil,
	}
}

// GapInfo describes whether the second workout may be started.
// MinutesRemaining is meaningful only when CanStartSecond is false.
type GapInfo struct {
	CanStartSecond   bool
	MinutesRemaining int
}

// WorkoutGapInfoFor computes the second-workout gate as of the given time.
// With no recorded end for workout1 the second workout is always startable.
func WorkoutGapInfoFor(day *models.DayProgress, now time.Time) GapInfo {
	if day == nil || day.Workout1.EndTime == nil {
		return GapInfo{CanStartSecond: true}
	}

	w1End, err := dateutil.ParseTimestamp(*day.Workout1.EndTime)
	if err != nil {
		return GapInfo{CanStartSecond: true}
	}

	elapsed := now.Sub(w1End)
	if elapsed >= workoutGap {
		return GapInfo{CanStartSecond: true}
	}

	remaining := workoutGap - elapsed
	return GapInfo{
		MinutesRemaining: int(math.Ceil(remaining.Minutes())),
	}
}
