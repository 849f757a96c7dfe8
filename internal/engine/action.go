package engine

import "github.com/kpeters/hard75/internal/models"

// Action is the closed set of state transitions. Every mutation of the
// aggregate flows through Engine.Reduce with one of these; anything else
// is an identity transition.
type Action interface {
	isAction()
}

// Load replaces the entire state with a previously persisted snapshot.
type Load struct {
	State models.ChallengeState
}

// CompleteOnboarding marks the onboarding flow as finished.
type CompleteOnboarding struct{}

// StartChallenge begins a fresh run with today as day 1.
type StartChallenge struct{}

// ResetChallenge archives the current run as an attempt and starts over.
type ResetChallenge struct {
	Reason string
}

// DayPatch is a partial update of today's record. Nil fields are left
// unchanged.
type DayPatch struct {
	Workout1       *models.WorkoutEntry
	Workout2       *models.WorkoutEntry
	WaterOz        *int
	PagesRead      *int
	BookTitle      *string
	DietFollowed   *bool
	PhotoURI       *string
	PhotoTimestamp *string
	Notes          *string
}

// UpdateToday merges a partial update into today's record.
type UpdateToday struct {
	Patch DayPatch
}

// WorkoutPatch is a partial update of a single workout entry. Nil fields
// are left unchanged.
type WorkoutPatch struct {
	Completed *bool
	IsOutdoor *bool
	Type      *string
	StartTime *string
	EndTime   *string
	Duration  *int
}

// UpdateWorkout merges a partial update into workout 1 or 2 of today's
// record.
type UpdateWorkout struct {
	Num   int // 1 or 2
	Patch WorkoutPatch
}

// AddWater adjusts today's water intake by a signed number of ounces,
// clamped at zero.
type AddWater struct {
	Oz int
}

// AddPages adjusts today's pages read by a signed count, clamped at zero.
type AddPages struct {
	Pages int
}

// SetPhoto records today's progress photo reference.
type SetPhoto struct {
	URI string
}

// CompleteDay finalizes a completed day: it increments the streak and the
// cumulative totals. It is a no-op unless today's record is complete.
type CompleteDay struct{}

// CheckDayTransition runs the day-rollover policy. Dispatched once per
// session, immediately after Load.
type CheckDayTransition struct{}

// SetDay jumps directly to day n, reconstructing start date, history and
// derived counters from scratch.
type SetDay struct {
	Day int
}

// SettingsPatch is a partial update of user settings.
type SettingsPatch struct {
	WaterBottleSize *int
	Notifications   *bool
}

// UpdateSettings merges a partial update into the user settings.
type UpdateSettings struct {
	Patch SettingsPatch
}

// ImportData replaces the state wholesale with an imported snapshot.
type ImportData struct {
	State models.ChallengeState
}

func (Load) isAction()               {}
func (CompleteOnboarding) isAction() {}
func (StartChallenge) isAction()     {}
func (ResetChallenge) isAction()     {}
func (UpdateToday) isAction()        {}
func (UpdateWorkout) isAction()      {}
func (AddWater) isAction()           {}
func (AddPages) isAction()           {}
func (SetPhoto) isAction()           {}
func (CompleteDay) isAction()        {}
func (CheckDayTransition) isAction() {}
func (SetDay) isAction()             {}
func (UpdateSettings) isAction()     {}
func (ImportData) isAction()         {}
