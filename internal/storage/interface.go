package storage

import "github.com/kpeters/hard75/internal/models"

// Provider is the persistence boundary for the challenge aggregate. The
// core only needs blob-level load/save with JSON semantics; both backends
// store one snapshot of the full ChallengeState.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Snapshot
	Load() (*models.ChallengeState, error) // (nil, nil) when no prior state exists
	Save(models.ChallengeState) error
	Clear() error
	Exists() bool

	// Utils
	GetConfigPath() string
}
