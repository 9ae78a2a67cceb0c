package engine

import "time"

// Step is a position in the fixed resolution sequence of an event.
type Step string

const (
	StepOverview         Step = "OVERVIEW"
	StepPlayerSelection  Step = "PLAYER_SELECTION"
	StepChoiceSelection  Step = "CHOICE_SELECTION"
	StepSelectionDetails Step = "SELECTION_DETAILS"
	StepPlayerDecisions  Step = "PLAYER_DECISIONS"
	StepConfirmation     Step = "CONFIRMATION"
	StepApplying         Step = "APPLYING"
	StepComplete         Step = "COMPLETE"
)

// DecisionType classifies a per-player decision submitted during
// PLAYER_DECISIONS.
type DecisionType string

const (
	DecisionItemSelection      DecisionType = "ITEM_SELECTION"
	DecisionStratagemSelection DecisionType = "STRATAGEM_SELECTION"
	DecisionBoosterSelection   DecisionType = "BOOSTER_SELECTION"
	DecisionConfirmation       DecisionType = "CONFIRMATION"
)

// PlayerVote records one player's preference among the event's choices.
type PlayerVote struct {
	PlayerID    string    `json:"playerId"`
	PlayerName  string    `json:"playerName"`
	PlayerSlot  int       `json:"playerSlot"`
	ChoiceIndex int       `json:"choiceIndex"`
	Timestamp   time.Time `json:"timestamp"`
}

// PlayerDecision records one player's submitted decision.
type PlayerDecision struct {
	PlayerID      string       `json:"playerId"`
	PlayerSlot    int          `json:"playerSlot"`
	DecisionType  DecisionType `json:"decisionType"`
	SelectedItem  *string      `json:"selectedItem"`
	StratagemSlot *int         `json:"stratagemSlot"`
	Confirmed     bool         `json:"confirmed"`
	Timestamp     time.Time    `json:"timestamp"`
}

// StratagemRef identifies a stratagem within a player's loadout.
type StratagemRef struct {
	Name string `json:"name"`
	Slot int    `json:"slot"`
}

// SelectionDetails holds the substate for outcomes that need extra
// targeting before confirmation (swaps, duplicates, booster drafts).
// All fields are nil until the resolved choice requires them.
type SelectionDetails struct {
	SourcePlayerIndex *int          `json:"sourcePlayerIndex"`
	TargetPlayerIndex *int          `json:"targetPlayerIndex"`
	SourceStratagem   *StratagemRef `json:"sourceStratagem"`
	TargetStratagem   *StratagemRef `json:"targetStratagem"`
	BoosterPool       []string      `json:"boosterPool"`
	ChosenBooster     *string       `json:"chosenBooster"`
}

// SpecialDraft is the nested sub-draft spawned by some events. Seats is
// how many picks are expected; the draft completes when Selections
// covers them all.
type SpecialDraft struct {
	DraftType  string         `json:"draftType"`
	Candidates []string       `json:"candidates"`
	Seats      int            `json:"seats"`
	Selections map[int]string `json:"selections"`
	Complete   bool           `json:"complete"`
}

// EventState is the live progress record for one active event. It is
// owned by a single session actor; everything here is plain data so a
// snapshot can be marshalled whole. Nullable fields are pointers so the
// wire form carries explicit nulls.
type EventState struct {
	EventID string    `json:"eventId"`
	Event   GameEvent `json:"event"`
	HostID  string    `json:"hostId"`

	CurrentStep Step   `json:"currentStep"`
	StepHistory []Step `json:"stepHistory"`
	CanGoBack   bool   `json:"canGoBack"`

	SelectedPlayerIndex   *int `json:"selectedPlayerIndex"`
	HostHasSelectedPlayer bool `json:"hostHasSelectedPlayer"`

	SelectedChoiceIndex   *int         `json:"selectedChoiceIndex"`
	SelectedChoice        *EventChoice `json:"selectedChoice"`
	HostHasSelectedChoice bool         `json:"hostHasSelectedChoice"`

	Votes         []PlayerVote `json:"votes"`
	VotingEnabled bool         `json:"votingEnabled"`

	Details SelectionDetails `json:"selectionDetails"`

	Decisions         []PlayerDecision `json:"playerDecisions"`
	WaitingForPlayers []int            `json:"waitingForPlayers"`
	AllDecisionsMade  bool             `json:"allDecisionsMade"`

	Draft *SpecialDraft `json:"specialDraft"`

	PendingFaction    *string `json:"pendingFaction"`
	PendingSubfaction *string `json:"pendingSubfaction"`

	OutcomePreview string  `json:"outcomePreview"`
	ErrorMessage   *string `json:"errorMessage"`

	StartedAt     time.Time  `json:"startedAt"`
	LastUpdatedAt time.Time  `json:"lastUpdatedAt"`
	LastUpdatedBy string     `json:"lastUpdatedBy"`
	CompletedAt   *time.Time `json:"completedAt"`

	IsComplete bool `json:"isComplete"`
}

// NewEventState builds the initial record for an event. Single-target
// events open on player selection; everything else opens on the
// overview.
func NewEventState(eventID string, ev GameEvent, hostID string, now time.Time) EventState {
	first := StepOverview
	if ev.TargetPlayer == TargetSingle {
		first = StepPlayerSelection
	}
	return EventState{
		EventID:           eventID,
		Event:             ev,
		HostID:            hostID,
		CurrentStep:       first,
		StepHistory:       []Step{},
		Votes:             []PlayerVote{},
		VotingEnabled:     true,
		Decisions:         []PlayerDecision{},
		WaitingForPlayers: []int{},
		AllDecisionsMade:  true, // nobody is waiting yet
		StartedAt:         now,
		LastUpdatedAt:     now,
		LastUpdatedBy:     hostID,
	}
}
