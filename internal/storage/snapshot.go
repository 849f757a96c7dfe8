package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kpeters/hard75/internal/models"
)

// ExportSnapshot renders the full challenge state as a pretty-printed JSON
// document, the format accepted by ParseSnapshot.
func ExportSnapshot(state models.ChallengeState) ([]byte, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return data, nil
}

// ParseSnapshot parses an exported snapshot. It fails closed: a document
// that is not valid JSON, carries unknown fields, or mismatches the
// schema is rejected whole, so a failed import never leaves partial
// state behind. User settings default only when the document omits the
// field entirely.
func ParseSnapshot(data []byte) (*models.ChallengeState, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var state models.ChallengeState
	if err := dec.Decode(&state); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	if _, ok := probe["userSettings"]; !ok {
		state.UserSettings = models.DefaultSettings()
	}

	normalize(&state)
	return &state, nil
}

// normalize ensures slices are non-nil so downstream code never
// distinguishes a missing list from an empty one.
func normalize(state *models.ChallengeState) {
	if state.History == nil {
		state.History = []models.DayProgress{}
	}
	if state.Attempts == nil {
		state.Attempts = []models.ChallengeAttempt{}
	}
}
