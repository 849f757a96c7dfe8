package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/kpeters/hard75/internal/models"
)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func startedState(eng *Engine) models.ChallengeState {
	state := eng.Reduce(models.NewState(), CompleteOnboarding{})
	return eng.Reduce(state, StartChallenge{})
}

// fillToday drives today's record to full completion through the public
// actions so the cached flag is recomputed along the way.
func fillToday(eng *Engine, state models.ChallengeState) models.ChallengeState {
	outdoor := true
	completed := true
	duration := 45
	w1End := state.TodayProgress.Date + "T08:45:00"
	w2Start := state.TodayProgress.Date + "T14:00:00"

	state = eng.Reduce(state, UpdateWorkout{Num: 1, Patch: WorkoutPatch{
		Completed: &completed,
		IsOutdoor: &outdoor,
		Duration:  &duration,
		EndTime:   &w1End,
	}})
	state = eng.Reduce(state, UpdateWorkout{Num: 2, Patch: WorkoutPatch{
		Completed: &completed,
		Duration:  &duration,
		StartTime: &w2Start,
	}})
	state = eng.Reduce(state, AddWater{Oz: 128})
	state = eng.Reduce(state, AddPages{Pages: 10})
	followed := true
	state = eng.Reduce(state, UpdateToday{Patch: DayPatch{DietFollowed: &followed}})
	return eng.Reduce(state, SetPhoto{URI: "photo"})
}

func TestStartChallenge_BeginsAtDayOne(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	eng := NewWithClock(clockAt(now))

	state := startedState(eng)

	if state.CurrentDay != 1 {
		t.Fatalf("expected day 1, got %d", state.CurrentDay)
	}
	if state.StartDate == nil || *state.StartDate != "2026-01-05" {
		t.Fatalf("expected start date 2026-01-05, got %v", state.StartDate)
	}
	if len(state.History) != 1 || state.History[0].Date != "2026-01-05" {
		t.Fatalf("expected a single history entry for today, got %+v", state.History)
	}
	if state.TodayProgress == nil || state.TodayProgress.Date != "2026-01-05" {
		t.Fatal("expected todayProgress to point at today's record")
	}
}

func TestAddWater_ClampsAtZero(t *testing.T) {
	eng := NewWithClock(clockAt(time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)))
	state := startedState(eng)

	state = eng.Reduce(state, AddWater{Oz: 16})
	state = eng.Reduce(state, AddWater{Oz: -40})

	if state.TodayProgress.WaterOz != 0 {
		t.Fatalf("expected water clamped to 0, got %d", state.TodayProgress.WaterOz)
	}

	state = eng.Reduce(state, AddPages{Pages: 3})
	state = eng.Reduce(state, AddPages{Pages: -10})
	if state.TodayProgress.PagesRead != 0 {
		t.Fatalf("expected pages clamped to 0, got %d", state.TodayProgress.PagesRead)
	}
}

func TestAddWater_NoActiveDayIsIdentity(t *testing.T) {
	eng := New()
	state := models.NewState()

	next := eng.Reduce(state, AddWater{Oz: 16})
	if !reflect.DeepEqual(state, next) {
		t.Fatal("expected identity transition when no day is active")
	}
}

func TestUpdateToday_RecomputesCompletedFlag(t *testing.T) {
	eng := NewWithClock(clockAt(time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)))
	state := fillToday(eng, startedState(eng))

	if !state.TodayProgress.Completed {
		t.Fatal("expected today to be flagged complete after all tasks")
	}
	if !state.History[0].Completed {
		t.Fatal("expected the history slot to carry the recomputed flag")
	}

	// Dropping a task must clear the stale flag.
	followed := false
	state = eng.Reduce(state, UpdateToday{Patch: DayPatch{DietFollowed: &followed}})
	if state.TodayProgress.Completed {
		t.Fatal("expected completed flag to clear when diet is unset")
	}
	if state.History[0].Completed {
		t.Fatal("expected history slot flag to clear as well")
	}
}

func TestUpdateToday_CompletionOrderIndependent(t *testing.T) {
	eng := NewWithClock(clockAt(time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)))

	outdoor := true
	completed := true
	duration := 45
	followed := true
	w1End := "2026-01-05T08:45:00"
	w2Start := "2026-01-05T14:00:00"

	actions := []Action{
		AddWater{Oz: 128},
		AddPages{Pages: 10},
		UpdateToday{Patch: DayPatch{DietFollowed: &followed}},
		UpdateWorkout{Num: 1, Patch: WorkoutPatch{
			Completed: &completed, IsOutdoor: &outdoor, Duration: &duration, EndTime: &w1End,
		}},
		UpdateWorkout{Num: 2, Patch: WorkoutPatch{
			Completed: &completed, Duration: &duration, StartTime: &w2Start,
		}},
		SetPhoto{URI: "photo"},
	}
	orders := [][]int{
		{0, 1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1, 0},
		{3, 0, 5, 1, 4, 2},
	}

	var results []models.ChallengeState
	for _, order := range orders {
		state := startedState(eng)
		for _, i := range order {
			state = eng.Reduce(state, actions[i])
		}
		if !state.TodayProgress.Completed {
			t.Fatalf("order %v did not reach a complete day", order)
		}
		results = append(results, state)
	}

	for i := 1; i < len(results); i++ {
		if !reflect.DeepEqual(results[0], results[i]) {
			t.Fatalf("order %v produced a different final state than %v", orders[i], orders[0])
		}
	}
}

func TestCompleteDay_AccumulatesTotals(t *testing.T) {
	eng := NewWithClock(clockAt(time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)))
	state := fillToday(eng, startedState(eng))

	state = eng.Reduce(state, CompleteDay{})

	if state.Streak != 1 {
		t.Errorf("expected streak 1, got %d", state.Streak)
	}
	if state.TotalWaterOz != 128 || state.TotalPagesRead != 10 || state.TotalWorkouts != 2 {
		t.Errorf("unexpected totals: water=%d pages=%d workouts=%d",
			state.TotalWaterOz, state.TotalPagesRead, state.TotalWorkouts)
	}
}

func TestCompleteDay_RefusedWhileIncomplete(t *testing.T) {
	eng := NewWithClock(clockAt(time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)))
	state := startedState(eng)

	next := eng.Reduce(state, CompleteDay{})
	if !reflect.DeepEqual(state, next) {
		t.Fatal("expected identity transition while today is incomplete")
	}
}

func TestResetChallenge_ArchivesRunAndRestarts(t *testing.T) {
	eng := NewWithClock(clockAt(time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)))
	state := startedState(eng)
	state = eng.Reduce(state, SetDay{Day: 10})

	state = eng.Reduce(state, ResetChallenge{Reason: "Missed workout"})

	if len(state.Attempts) != 1 {
		t.Fatalf("expected one archived attempt, got %d", len(state.Attempts))
	}
	attempt := state.Attempts[0]
	if attempt.ID == "" {
		t.Error("expected archived attempt to carry an id")
	}
	if attempt.DaysCompleted != 9 {
		t.Errorf("expected 9 days completed in the archive, got %d", attempt.DaysCompleted)
	}
	if attempt.Reason != "Missed workout" {
		t.Errorf("unexpected reason: %q", attempt.Reason)
	}
	if len(attempt.History) != 10 {
		t.Errorf("expected the archived history to hold 10 days, got %d", len(attempt.History))
	}

	if state.CurrentDay != 1 || state.Streak != 0 {
		t.Errorf("expected fresh day-1 run after reset, got day=%d streak=%d", state.CurrentDay, state.Streak)
	}
	if len(state.History) != 1 {
		t.Errorf("expected fresh history after reset, got %d entries", len(state.History))
	}
}

func TestResetChallenge_DefaultReason(t *testing.T) {
	eng := NewWithClock(clockAt(time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)))
	state := startedState(eng)

	state = eng.Reduce(state, ResetChallenge{})
	if got := state.Attempts[0].Reason; got != "Task incomplete" {
		t.Fatalf("expected default reason, got %q", got)
	}
}

func TestCheckDayTransition_AdvancesAfterCompletedDay(t *testing.T) {
	day1 := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	eng := NewWithClock(clockAt(day1))
	state := fillToday(eng, startedState(eng))
	state = eng.Reduce(state, CompleteDay{})

	// Next morning.
	eng = NewWithClock(clockAt(day1.AddDate(0, 0, 1)))
	state = eng.Reduce(state, CheckDayTransition{})

	if state.CurrentDay != 2 {
		t.Fatalf("expected day 2 after rollover, got %d", state.CurrentDay)
	}
	if len(state.History) != 2 {
		t.Fatalf("expected two history entries, got %d", len(state.History))
	}
	if state.TodayProgress.Date != "2026-01-06" {
		t.Fatalf("expected today to be 2026-01-06, got %s", state.TodayProgress.Date)
	}
}

func TestCheckDayTransition_SameDayReentryIsStable(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	eng := NewWithClock(clockAt(now))
	state := startedState(eng)
	state = eng.Reduce(state, AddWater{Oz: 32})

	next := eng.Reduce(state, CheckDayTransition{})
	if !reflect.DeepEqual(state, next) {
		t.Fatal("expected same-day re-entry to leave the state unchanged")
	}

	again := eng.Reduce(next, CheckDayTransition{})
	if !reflect.DeepEqual(next, again) {
		t.Fatal("expected rollover to be idempotent")
	}
}

func TestCheckDayTransition_NoNewDayAfterIncompleteYesterday(t *testing.T) {
	day1 := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	eng := NewWithClock(clockAt(day1))
	state := startedState(eng)
	state = eng.Reduce(state, AddWater{Oz: 64}) // partial progress only

	eng = NewWithClock(clockAt(day1.AddDate(0, 0, 1)))
	next := eng.Reduce(state, CheckDayTransition{})

	if !reflect.DeepEqual(state, next) {
		t.Fatal("expected no new day while yesterday is incomplete")
	}
}

func TestCheckDayTransition_NoNewDayAfterMissedDay(t *testing.T) {
	day1 := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	eng := NewWithClock(clockAt(day1))
	state := fillToday(eng, startedState(eng))
	state = eng.Reduce(state, CompleteDay{})

	// Two days later: yesterday (Jan 6) has no record at all.
	eng = NewWithClock(clockAt(day1.AddDate(0, 0, 2)))
	next := eng.Reduce(state, CheckDayTransition{})

	if !reflect.DeepEqual(state, next) {
		t.Fatal("expected no new day after a missed day")
	}
}

func TestCheckDayTransition_NotStartedIsIdentity(t *testing.T) {
	eng := New()
	state := models.NewState()

	next := eng.Reduce(state, CheckDayTransition{})
	if !reflect.DeepEqual(state, next) {
		t.Fatal("expected identity transition before the challenge starts")
	}
}

func TestSetDay_ReconstructsHistoryAndTotals(t *testing.T) {
	now := time.Date(2026, 1, 14, 9, 0, 0, 0, time.Local)
	eng := NewWithClock(clockAt(now))
	state := startedState(eng)

	state = eng.Reduce(state, SetDay{Day: 10})

	if state.CurrentDay != 10 {
		t.Fatalf("expected day 10, got %d", state.CurrentDay)
	}
	if state.StartDate == nil || *state.StartDate != "2026-01-05" {
		t.Fatalf("expected start date 2026-01-05, got %v", state.StartDate)
	}
	if len(state.History) != 10 {
		t.Fatalf("expected 10 history entries, got %d", len(state.History))
	}
	for i := 0; i < 9; i++ {
		if !state.History[i].Completed {
			t.Fatalf("expected backfilled day %d to be completed", i+1)
		}
	}
	if state.History[9].Completed {
		t.Fatal("expected today's record to start incomplete")
	}
	if state.Streak != 9 {
		t.Errorf("expected streak 9, got %d", state.Streak)
	}
	if state.TotalWaterOz != 9*128 || state.TotalPagesRead != 9*10 || state.TotalWorkouts != 18 {
		t.Errorf("unexpected totals: water=%d pages=%d workouts=%d",
			state.TotalWaterOz, state.TotalPagesRead, state.TotalWorkouts)
	}
}

func TestSetDay_PreservesTodayProgress(t *testing.T) {
	now := time.Date(2026, 1, 14, 9, 0, 0, 0, time.Local)
	eng := NewWithClock(clockAt(now))
	state := startedState(eng)
	state = eng.Reduce(state, AddWater{Oz: 48})

	state = eng.Reduce(state, SetDay{Day: 5})

	if state.TodayProgress.WaterOz != 48 {
		t.Fatalf("expected today's water to survive the override, got %d", state.TodayProgress.WaterOz)
	}
}

func TestSetDay_ClampsRange(t *testing.T) {
	eng := NewWithClock(clockAt(time.Date(2026, 1, 14, 9, 0, 0, 0, time.Local)))
	state := startedState(eng)

	low := eng.Reduce(state, SetDay{Day: 0})
	if low.CurrentDay != 1 {
		t.Errorf("expected day clamped to 1, got %d", low.CurrentDay)
	}

	high := eng.Reduce(state, SetDay{Day: 200})
	if high.CurrentDay != 75 {
		t.Errorf("expected day clamped to 75, got %d", high.CurrentDay)
	}
}

func TestImportData_KeepsExplicitZeroValueSettings(t *testing.T) {
	eng := New()

	imported := models.NewState()
	imported.UserSettings = models.UserSettings{WaterBottleSize: 0, Notifications: false}
	state := eng.Reduce(models.NewState(), ImportData{State: imported})

	if state.UserSettings != imported.UserSettings {
		t.Fatalf("explicit settings were replaced: got %+v", state.UserSettings)
	}
}

func TestUpdateSettings_PatchesOnlyGivenFields(t *testing.T) {
	eng := New()
	state := models.NewState()

	size := 24
	state = eng.Reduce(state, UpdateSettings{Patch: SettingsPatch{WaterBottleSize: &size}})
	if state.UserSettings.WaterBottleSize != 24 {
		t.Errorf("expected bottle size 24, got %d", state.UserSettings.WaterBottleSize)
	}
	if !state.UserSettings.Notifications {
		t.Error("expected notifications to keep their default")
	}
}

func TestReduce_NeverMutatesInput(t *testing.T) {
	eng := NewWithClock(clockAt(time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)))
	state := startedState(eng)
	before := state.Clone()

	eng.Reduce(state, AddWater{Oz: 16})
	eng.Reduce(state, SetDay{Day: 30})
	eng.Reduce(state, ResetChallenge{})

	if !reflect.DeepEqual(before, state) {
		t.Fatal("Reduce mutated its input state")
	}
}
