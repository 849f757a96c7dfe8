// Package app owns the single live challenge aggregate for a session and
// the load-at-startup / save-on-change lifecycle around it. It is the
// explicit context object handed to every command; there is no hidden
// global state.
package app

import (
	"github.com/kpeters/hard75/internal/engine"
	"github.com/kpeters/hard75/internal/logger"
	"github.com/kpeters/hard75/internal/models"
	"github.com/kpeters/hard75/internal/storage"
)

// App binds the store and the engine to one in-memory aggregate.
// Single-writer: transitions apply strictly one at a time.
type App struct {
	Store  storage.Provider
	Engine *engine.Engine

	state  models.ChallengeState
	loaded bool
}

func New(store storage.Provider, eng *engine.Engine) *App {
	return &App{
		Store:  store,
		Engine: eng,
		state:  models.NewState(),
	}
}

// Load pulls the persisted snapshot into memory and runs the day-rollover
// policy once. A load failure is treated as "no prior state": the session
// falls through to onboarding instead of aborting.
func (a *App) Load() error {
	snapshot, err := a.Store.Load()
	if err != nil {
		logger.Warn("failed to load saved state, starting fresh", "error", err)
		a.state = models.NewState()
		a.loaded = true
		return nil
	}
	if snapshot == nil {
		a.state = models.NewState()
		a.loaded = true
		return nil
	}

	a.state = a.Engine.Reduce(a.state, engine.Load{State: *snapshot})
	a.loaded = true

	// Rollover runs once per session, immediately after load.
	a.Dispatch(engine.CheckDayTransition{})
	return nil
}

// Dispatch applies an action and persists the result. The in-memory state
// is authoritative immediately; a save failure is logged, never rolled
// back, and the next successful save re-persists the latest state anyway.
func (a *App) Dispatch(action engine.Action) models.ChallengeState {
	a.state = a.Engine.Reduce(a.state, action)
	if err := a.Store.Save(a.state); err != nil {
		logger.Error("failed to persist state", "error", err)
	}
	return a.state
}

// State returns the current aggregate value.
func (a *App) State() models.ChallengeState {
	return a.state
}

// Loaded reports whether Load has completed for this session.
func (a *App) Loaded() bool {
	return a.loaded
}
