package models

import (
	"time"

	"github.com/kpeters/hard75/internal/constants"
)

// WorkoutEntry is one workout attempt within a day.
type WorkoutEntry struct {
	Completed bool    `json:"completed"`
	IsOutdoor bool    `json:"isOutdoor"`
	Type      string  `json:"type"`      // e.g. "Walk", "Run", "Lift"
	StartTime *string `json:"startTime"` // timestamp, nil until started
	EndTime   *string `json:"endTime"`   // timestamp, nil until ended
	Duration  int     `json:"duration"`  // minutes
}

// DayProgress is one calendar day's record.
type DayProgress struct {
	Date           string       `json:"date"` // YYYY-MM-DD
	Workout1       WorkoutEntry `json:"workout1"`
	Workout2       WorkoutEntry `json:"workout2"`
	WaterOz        int          `json:"waterOz"`
	PagesRead      int          `json:"pagesRead"`
	BookTitle      string       `json:"bookTitle"`
	DietFollowed   bool         `json:"dietFollowed"`
	PhotoURI       *string      `json:"photoUri"`
	PhotoTimestamp *string      `json:"photoTimestamp"`
	Notes          string       `json:"notes"`

	// Completed caches the day-completion predicate. It is recomputed on
	// every mutation; it is never an independent source of truth.
	Completed bool `json:"completed"`
}

// ChallengeAttempt is an archived run that ended before completion.
// Immutable once created.
type ChallengeAttempt struct {
	ID            string        `json:"id"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	DaysCompleted int           `json:"daysCompleted"`
	Reason        string        `json:"reason,omitempty"`
	History       []DayProgress `json:"history"`
}

// UserSettings survive challenge resets.
type UserSettings struct {
	WaterBottleSize int  `json:"waterBottleSize"` // ounces
	Notifications   bool `json:"notifications"`
}

// ChallengeState is the aggregate root. There is exactly one live instance
// per running session; all mutation flows through the engine.
type ChallengeState struct {
	CurrentDay    int           `json:"currentDay"` // 0 = not started
	StartDate     *string       `json:"startDate"`  // date of day 1
	Streak        int           `json:"streak"`
	TodayProgress *DayProgress  `json:"todayProgress"`
	History       []DayProgress `json:"history"`

	Attempts []ChallengeAttempt `json:"attempts"`

	HasCompletedOnboarding bool         `json:"hasCompletedOnboarding"`
	UserSettings           UserSettings `json:"userSettings"`

	TotalPagesRead int `json:"totalPagesRead"`
	TotalWaterOz   int `json:"totalWaterOz"`
	TotalWorkouts  int `json:"totalWorkouts"`
}

// DefaultSettings returns the settings applied before the user changes anything.
func DefaultSettings() UserSettings {
	return UserSettings{
		WaterBottleSize: constants.DefaultWaterBottleOz,
		Notifications:   true,
	}
}

// NewState returns the pre-onboarding initial state.
func NewState() ChallengeState {
	return ChallengeState{
		History:      []DayProgress{},
		Attempts:     []ChallengeAttempt{},
		UserSettings: DefaultSettings(),
	}
}

// NewEmptyWorkout returns a workout entry with nothing logged yet.
func NewEmptyWorkout() WorkoutEntry {
	return WorkoutEntry{}
}

// NewEmptyDay returns a fresh DayProgress for the given date.
func NewEmptyDay(date string) DayProgress {
	return DayProgress{
		Date:     date,
		Workout1: NewEmptyWorkout(),
		Workout2: NewEmptyWorkout(),
	}
}

// NewCompletedDay returns a fully-completed placeholder DayProgress for the
// given date, used when backfilling history on a manual day override.
func NewCompletedDay(date string) DayProgress {
	w1Start := date + "T08:00:00"
	w1End := date + "T08:45:00"
	w2Start := date + "T14:00:00"
	w2End := date + "T14:45:00"
	photoTS := date + "T20:00:00"
	photo := "completed"

	return DayProgress{
		Date: date,
		Workout1: WorkoutEntry{
			Completed: true,
			IsOutdoor: true,
			Type:      "Completed",
			StartTime: &w1Start,
			EndTime:   &w1End,
			Duration:  constants.WorkoutDurationMinutes,
		},
		Workout2: WorkoutEntry{
			Completed: true,
			Type:      "Completed",
			StartTime: &w2Start,
			EndTime:   &w2End,
			Duration:  constants.WorkoutDurationMinutes,
		},
		WaterOz:        constants.WaterGoalOz,
		PagesRead:      constants.ReadingGoalPages,
		DietFollowed:   true,
		PhotoURI:       &photo,
		PhotoTimestamp: &photoTS,
		Completed:      true,
	}
}

// DateForDay returns the calendar date of day n (1-based) for a challenge
// that started on startDate. Invalid start dates yield startDate unchanged.
func DateForDay(startDate string, n int) string {
	start, err := time.Parse(constants.DateFormat, startDate)
	if err != nil {
		return startDate
	}
	return start.AddDate(0, 0, n-1).Format(constants.DateFormat)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Clone returns a deep copy of the workout entry.
func (w WorkoutEntry) Clone() WorkoutEntry {
	w.StartTime = cloneString(w.StartTime)
	w.EndTime = cloneString(w.EndTime)
	return w
}

// Clone returns a deep copy of the day record.
func (d DayProgress) Clone() DayProgress {
	d.Workout1 = d.Workout1.Clone()
	d.Workout2 = d.Workout2.Clone()
	d.PhotoURI = cloneString(d.PhotoURI)
	d.PhotoTimestamp = cloneString(d.PhotoTimestamp)
	return d
}

// Clone returns a deep copy of the attempt.
func (a ChallengeAttempt) Clone() ChallengeAttempt {
	history := make([]DayProgress, len(a.History))
	for i, d := range a.History {
		history[i] = d.Clone()
	}
	a.History = history
	return a
}

// Clone returns a deep copy of the aggregate. The engine clones before
// every merge so callers never observe a mutated input.
func (s ChallengeState) Clone() ChallengeState {
	s.StartDate = cloneString(s.StartDate)

	if s.TodayProgress != nil {
		today := s.TodayProgress.Clone()
		s.TodayProgress = &today
	}

	history := make([]DayProgress, len(s.History))
	for i, d := range s.History {
		history[i] = d.Clone()
	}
	s.History = history

	attempts := make([]ChallengeAttempt, len(s.Attempts))
	for i, a := range s.Attempts {
		attempts[i] = a.Clone()
	}
	s.Attempts = attempts

	return s
}
