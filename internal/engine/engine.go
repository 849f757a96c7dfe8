// Package engine implements the challenge state machine. Reduce is a pure
// function from (state, action) to the next state; it never mutates its
// input and never fails. Invalid input for an action yields the unchanged
// state.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/kpeters/hard75/internal/constants"
	"github.com/kpeters/hard75/internal/dateutil"
	"github.com/kpeters/hard75/internal/models"
	"github.com/kpeters/hard75/internal/rules"
)

// Engine reduces actions against the challenge aggregate. The clock is
// injected so day boundaries are controllable in tests.
type Engine struct {
	now func() time.Time
}

// New returns an engine on the system clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock returns an engine using the given clock.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Reduce maps the current state and an action to the next state. Unknown
// actions and unmet preconditions leave the state unchanged.
func (e *Engine) Reduce(state models.ChallengeState, action Action) models.ChallengeState {
	switch a := action.(type) {
	case Load:
		return a.State.Clone()

	case CompleteOnboarding:
		next := state.Clone()
		next.HasCompletedOnboarding = true
		return next

	case StartChallenge:
		return e.startFresh(state.Clone())

	case ResetChallenge:
		today := dateutil.Date(e.now())
		next := state.Clone()

		reason := a.Reason
		if reason == "" {
			reason = "Task incomplete"
		}
		startDate := today
		if next.StartDate != nil {
			startDate = *next.StartDate
		}
		next.Attempts = append(next.Attempts, models.ChallengeAttempt{
			ID:            uuid.New().String(),
			StartDate:     startDate,
			EndDate:       today,
			DaysCompleted: next.CurrentDay - 1,
			Reason:        reason,
			History:       next.History,
		})
		return e.startFresh(next)

	case UpdateToday:
		return e.updateToday(state, a.Patch)

	case UpdateWorkout:
		if state.TodayProgress == nil {
			return state
		}
		var merged models.WorkoutEntry
		switch a.Num {
		case 1:
			merged = state.TodayProgress.Workout1.Clone()
		case 2:
			merged = state.TodayProgress.Workout2.Clone()
		default:
			return state
		}
		applyWorkoutPatch(&merged, a.Patch)
		if a.Num == 1 {
			return e.updateToday(state, DayPatch{Workout1: &merged})
		}
		return e.updateToday(state, DayPatch{Workout2: &merged})

	case AddWater:
		if state.TodayProgress == nil {
			return state
		}
		oz := state.TodayProgress.WaterOz + a.Oz
		if oz < 0 {
			oz = 0
		}
		return e.updateToday(state, DayPatch{WaterOz: &oz})

	case AddPages:
		if state.TodayProgress == nil {
			return state
		}
		pages := state.TodayProgress.PagesRead + a.Pages
		if pages < 0 {
			pages = 0
		}
		return e.updateToday(state, DayPatch{PagesRead: &pages})

	case SetPhoto:
		if state.TodayProgress == nil {
			return state
		}
		uri := a.URI
		ts := dateutil.FormatTimestamp(e.now())
		return e.updateToday(state, DayPatch{PhotoURI: &uri, PhotoTimestamp: &ts})

	case CompleteDay:
		if state.TodayProgress == nil || !state.TodayProgress.Completed {
			return state
		}
		next := state.Clone()
		day := next.TodayProgress
		next.Streak++
		next.TotalPagesRead += day.PagesRead
		next.TotalWaterOz += day.WaterOz
		next.TotalWorkouts += 2
		return next

	case CheckDayTransition:
		return e.checkDayTransition(state)

	case SetDay:
		return e.setDay(state, a.Day)

	case UpdateSettings:
		next := state.Clone()
		if a.Patch.WaterBottleSize != nil {
			next.UserSettings.WaterBottleSize = *a.Patch.WaterBottleSize
		}
		if a.Patch.Notifications != nil {
			next.UserSettings.Notifications = *a.Patch.Notifications
		}
		return next

	case ImportData:
		// Settings defaulting for omitted fields happens at parse time;
		// whatever the snapshot carries is taken as-is.
		return a.State.Clone()

	default:
		// Unknown actions are identity transitions, not errors.
		return state
	}
}

// startFresh points the (already cloned) state at a new day-1 run.
func (e *Engine) startFresh(next models.ChallengeState) models.ChallengeState {
	today := dateutil.Date(e.now())
	day := models.NewEmptyDay(today)

	next.CurrentDay = 1
	next.StartDate = &today
	next.Streak = 0
	next.History = []models.DayProgress{day}
	next.TodayProgress = &day
	return next
}

// updateToday merges a patch into today's record, recomputes the cached
// completion flag, and writes the result back into both views of the
// record (todayProgress and its history slot).
func (e *Engine) updateToday(state models.ChallengeState, patch DayPatch) models.ChallengeState {
	if state.TodayProgress == nil {
		return state
	}

	next := state.Clone()
	day := next.TodayProgress.Clone()
	applyDayPatch(&day, patch)
	day.Completed = rules.DayComplete(day)

	for i := range next.History {
		if next.History[i].Date == day.Date {
			next.History[i] = day.Clone()
			break
		}
	}
	next.TodayProgress = &day
	return next
}

func (e *Engine) checkDayTransition(state models.ChallengeState) models.ChallengeState {
	if state.StartDate == nil {
		return state
	}

	now := e.now()
	today := dateutil.Date(now)
	yesterday := dateutil.Yesterday(now)

	// Same-day re-entry: today already exists, just point at it.
	for i := range state.History {
		if state.History[i].Date == today {
			next := state.Clone()
			day := next.History[i].Clone()
			next.TodayProgress = &day
			return next
		}
	}

	// A missed or incomplete yesterday is left for the user to act on;
	// no automatic reset.
	var yesterdayDone bool
	for i := range state.History {
		if state.History[i].Date == yesterday {
			yesterdayDone = state.History[i].Completed
			break
		}
	}
	if !yesterdayDone {
		return state
	}

	newDay, err := dateutil.ChallengeDay(*state.StartDate, now)
	if err != nil {
		return state
	}
	if newDay > constants.ChallengeDays {
		// Challenge complete; no further day is created.
		return state
	}

	next := state.Clone()
	day := models.NewEmptyDay(today)
	next.CurrentDay = newDay
	next.History = append(next.History, day)
	next.TodayProgress = &day
	return next
}

// setDay is a reconstructive override: it recomputes the start date so
// that today is day n, backfills days 1..n-1 as completed placeholders
// (preserving any existing same-date records), and rebuilds streak and
// totals from the new history rather than layering onto them.
func (e *Engine) setDay(state models.ChallengeState, day int) models.ChallengeState {
	if day < 1 {
		day = 1
	}
	if day > constants.ChallengeDays {
		day = constants.ChallengeDays
	}

	now := e.now()
	today := dateutil.Date(now)
	startDate := dateutil.Date(now.AddDate(0, 0, -(day - 1)))

	next := state.Clone()

	byDate := make(map[string]models.DayProgress, len(next.History))
	for _, d := range next.History {
		byDate[d.Date] = d
	}

	history := make([]models.DayProgress, 0, day)
	for d := 1; d < day; d++ {
		dayDate := models.DateForDay(startDate, d)
		if existing, ok := byDate[dayDate]; ok {
			existing.Completed = true
			history = append(history, existing)
		} else {
			history = append(history, models.NewCompletedDay(dayDate))
		}
	}

	todayRecord, ok := byDate[today]
	if !ok {
		todayRecord = models.NewEmptyDay(today)
	}
	history = append(history, todayRecord)

	var totalPages, totalWater, completedCount int
	for _, d := range history {
		if !d.Completed {
			continue
		}
		completedCount++
		totalPages += d.PagesRead
		totalWater += d.WaterOz
	}

	todayView := todayRecord.Clone()
	next.CurrentDay = day
	next.StartDate = &startDate
	next.History = history
	next.TodayProgress = &todayView
	next.Streak = day - 1
	next.TotalPagesRead = totalPages
	next.TotalWaterOz = totalWater
	next.TotalWorkouts = completedCount * 2
	return next
}

func applyDayPatch(day *models.DayProgress, patch DayPatch) {
	if patch.Workout1 != nil {
		day.Workout1 = patch.Workout1.Clone()
	}
	if patch.Workout2 != nil {
		day.Workout2 = patch.Workout2.Clone()
	}
	if patch.WaterOz != nil {
		day.WaterOz = *patch.WaterOz
	}
	if patch.PagesRead != nil {
		day.PagesRead = *patch.PagesRead
	}
	if patch.BookTitle != nil {
		day.BookTitle = *patch.BookTitle
	}
	if patch.DietFollowed != nil {
		day.DietFollowed = *patch.DietFollowed
	}
	if patch.PhotoURI != nil {
		uri := *patch.PhotoURI
		day.PhotoURI = &uri
	}
	if patch.PhotoTimestamp != nil {
		ts := *patch.PhotoTimestamp
		day.PhotoTimestamp = &ts
	}
	if patch.Notes != nil {
		day.Notes = *patch.Notes
	}
}

func applyWorkoutPatch(w *models.WorkoutEntry, patch WorkoutPatch) {
	if patch.Completed != nil {
		w.Completed = *patch.Completed
	}
	if patch.IsOutdoor != nil {
		w.IsOutdoor = *patch.IsOutdoor
	}
	if patch.Type != nil {
		w.Type = *patch.Type
	}
	if patch.StartTime != nil {
		ts := *patch.StartTime
		w.StartTime = &ts
	}
	if patch.EndTime != nil {
		ts := *patch.EndTime
		w.EndTime = &ts
	}
	if patch.Duration != nil {
		w.Duration = *patch.Duration
	}
}
