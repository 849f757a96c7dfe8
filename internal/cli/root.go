package cli

import (
	"fmt"

	"github.com/kpeters/hard75/internal/app"
	"github.com/kpeters/hard75/internal/models"
)

type Context struct {
	App   *app.App
	Debug bool
}

// load pulls persisted state into the session and runs the rollover
// policy. Commands call this before touching state.
func (c *Context) load() error {
	if c.App.Loaded() {
		return nil
	}
	return c.App.Load()
}

// requireToday returns today's record or an error directing the user to
// start the challenge first.
func (c *Context) requireToday() (*models.DayProgress, error) {
	state := c.App.State()
	if state.TodayProgress == nil {
		return nil, fmt.Errorf("no active day, run 'hard75 start' to begin the challenge")
	}
	return state.TodayProgress, nil
}

func mark(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}
