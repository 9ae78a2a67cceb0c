// Package save validates, normalizes and serializes exported game
// state. The format is a flat record; nested blobs (players, config,
// the active event) are passed through untouched.
package save

import (
	"encoding/json"
	"fmt"
	"time"
)

// DraftState is the sub-record describing where a loadout draft stands.
type DraftState struct {
	Round     int   `json:"round"`
	Pick      int   `json:"pick"`
	Order     []int `json:"order"`
	Completed bool  `json:"completed"`
}

// State is the exported save record. Required fields are pointers so a
// missing field is distinguishable from a zero value.
type State struct {
	Phase             *string          `json:"phase"`
	GameConfig        map[string]any   `json:"gameConfig"`
	CurrentDiff       *int             `json:"currentDiff"`
	Requisition       *int             `json:"requisition"`
	Samples           *int             `json:"samples"`
	BurnedCards       []string         `json:"burnedCards"`
	Players           []map[string]any `json:"players"`
	DraftState        *DraftState      `json:"draftState"`
	EventsEnabled     *bool            `json:"eventsEnabled"`
	CurrentEvent      map[string]any   `json:"currentEvent"`
	EventPlayerChoice *int             `json:"eventPlayerChoice"`
	SeenEvents        []string         `json:"seenEvents"`
	CustomSetup       map[string]any   `json:"customSetup"`
	SelectedPlayer    *int             `json:"selectedPlayer"`
	ExportedAt        *time.Time       `json:"exportedAt"`
}

// Validate checks the required top-level fields. Callers must not
// normalize a record that fails validation.
func Validate(s *State) error {
	if s == nil {
		return fmt.Errorf("save data is null or undefined")
	}
	if s.Phase == nil {
		return fmt.Errorf("save data is missing required field: phase")
	}
	if s.GameConfig == nil {
		return fmt.Errorf("save data is missing required field: gameConfig")
	}
	if s.Players == nil {
		return fmt.Errorf("save data is missing required field: players")
	}
	return nil
}

// Normalize fills defaults for every optional field and returns a copy.
// The input must already be validated.
func Normalize(s State) State {
	if s.CurrentDiff == nil {
		d := 1
		s.CurrentDiff = &d
	}
	if s.Requisition == nil {
		r := 0
		s.Requisition = &r
	}
	if s.Samples == nil {
		n := 0
		s.Samples = &n
	}
	if s.BurnedCards == nil {
		s.BurnedCards = []string{}
	}
	if s.SeenEvents == nil {
		s.SeenEvents = []string{}
	}
	if s.EventsEnabled == nil {
		e := true
		s.EventsEnabled = &e
	}
	if s.DraftState == nil {
		s.DraftState = defaultDraftState()
	}
	return s
}

func defaultDraftState() *DraftState {
	return &DraftState{Round: 1, Pick: 0, Order: []int{}, Completed: false}
}

// Parse decodes an exported save file.
func Parse(data []byte) (*State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid save data, file may be corrupted: %w", err)
	}
	return &s, nil
}

// Export stamps the export time and serializes the record.
func Export(s State, now time.Time) ([]byte, error) {
	s.ExportedAt = &now
	return json.Marshal(s)
}
