package types

import "github.com/helldraft/event-backend/internal/engine"

// ClientMessage is the client-to-server envelope. Type selects which of
// the payload fields matter.
type ClientMessage struct {
	Type string `json:"type"`

	EventID string `json:"event_id,omitempty"`

	PlayerID   string `json:"player_id,omitempty"`
	PlayerName string `json:"player_name,omitempty"`
	PlayerSlot int    `json:"player_slot,omitempty"`

	PlayerIndex *int `json:"player_index,omitempty"`
	ChoiceIndex *int `json:"choice_index,omitempty"`

	DecisionType  string  `json:"decision_type,omitempty"`
	SelectedItem  *string `json:"selected_item,omitempty"`
	StratagemSlot *int    `json:"stratagem_slot,omitempty"`
	Confirmed     bool    `json:"confirmed,omitempty"`

	SourcePlayerIndex *int                 `json:"source_player_index,omitempty"`
	TargetPlayerIndex *int                 `json:"target_player_index,omitempty"`
	SourceStratagem   *engine.StratagemRef `json:"source_stratagem,omitempty"`
	TargetStratagem   *engine.StratagemRef `json:"target_stratagem,omitempty"`

	BoosterPool []string `json:"booster_pool,omitempty"`
	Booster     string   `json:"booster,omitempty"`

	WaitingPlayers []int `json:"waiting_players,omitempty"`

	DraftType  string   `json:"draft_type,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
	Seats      int      `json:"seats,omitempty"`
	Item       string   `json:"item,omitempty"`

	Faction    string `json:"faction,omitempty"`
	Subfaction string `json:"subfaction,omitempty"`

	Message string `json:"message,omitempty"`
}

// ServerMessage is the server-to-client envelope.
type ServerMessage struct {
	Type    string             `json:"type"` // "StateSnapshot" | "Error"
	Version int                `json:"version,omitempty"`
	State   *engine.EventState `json:"state,omitempty"`
	Error   string             `json:"error,omitempty"`
}
