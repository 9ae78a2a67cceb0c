package engine

import (
	"errors"
	"slices"
	"time"
)

var ErrNoActiveEvent = errors.New("no active event")
var ErrNotHost = errors.New("only the host can do that")
var ErrWrongStep = errors.New("command not valid at current step")
var ErrInvalidChoice = errors.New("choice index out of range")
var ErrInvalidPlayer = errors.New("player index out of range")
var ErrVotingDisabled = errors.New("voting is disabled")
var ErrEventLocked = errors.New("event is already resolving")
var ErrCannotGoBack = errors.New("cannot navigate back")
var ErrUnsupportedCommand = errors.New("unsupported command")

type CommandType string

const (
	CmdSelectPlayer      CommandType = "SelectPlayer"
	CmdSelectChoice      CommandType = "SelectChoice"
	CmdCastVote          CommandType = "CastVote"
	CmdRemoveVote        CommandType = "RemoveVote"
	CmdSetDetails        CommandType = "SetDetails"
	CmdChooseBooster     CommandType = "ChooseBooster"
	CmdSubmitDecision    CommandType = "SubmitDecision"
	CmdSetWaitingPlayers CommandType = "SetWaitingPlayers"
	CmdStartDraft        CommandType = "StartDraft"
	CmdPickDraftItem     CommandType = "PickDraftItem"
	CmdSetPendingFaction CommandType = "SetPendingFaction"
	CmdAdvanceStep       CommandType = "AdvanceStep"
	CmdGoBack            CommandType = "GoBack"
	CmdCompleteEvent     CommandType = "CompleteEvent"
	CmdSetError          CommandType = "SetError"
	CmdClearError        CommandType = "ClearError"
)

// Command is one mutation request against the active event. ClientID is
// the issuing client; only the payload fields the command type needs
// are read.
type Command struct {
	Type     CommandType
	ClientID string

	PlayerID   string
	PlayerName string
	PlayerSlot int

	PlayerIndex int
	ChoiceIndex int

	DecisionType  DecisionType
	SelectedItem  *string
	StratagemSlot *int
	Confirmed     bool

	SourcePlayerIndex *int
	TargetPlayerIndex *int
	SourceStratagem   *StratagemRef
	TargetStratagem   *StratagemRef

	BoosterPool []string
	Booster     string

	WaitingPlayers []int

	DraftType  string
	Candidates []string
	Seats      int
	Item       string

	Faction    string
	Subfaction string

	Message string
}

// hostOnly lists the commands reserved for the session host. Votes and
// decisions stay open to every participant.
func hostOnly(t CommandType) bool {
	switch t {
	case CmdSelectPlayer, CmdSelectChoice, CmdSetWaitingPlayers, CmdStartDraft,
		CmdSetPendingFaction, CmdAdvanceStep, CmdGoBack, CmdCompleteEvent:
		return true
	}
	return false
}

// Apply runs one command against a state copy and returns the new
// state. The input is never mutated; slices touched by the command are
// cloned first. now is injected so the engine stays deterministic under
// test.
func Apply(s EventState, cmd Command, now time.Time) (EventState, error) {
	if hostOnly(cmd.Type) && cmd.ClientID != s.HostID {
		return s, ErrNotHost
	}

	// Past CONFIRMATION the record is frozen except for completion
	// bookkeeping, and a completed event is frozen entirely.
	if s.CurrentStep == StepApplying || s.CurrentStep == StepComplete {
		if s.IsComplete {
			return s, ErrEventLocked
		}
		switch cmd.Type {
		case CmdAdvanceStep, CmdCompleteEvent:
		default:
			return s, ErrEventLocked
		}
	}

	next := s
	switch cmd.Type {
	case CmdSelectPlayer:
		if s.CurrentStep != StepPlayerSelection {
			return s, ErrWrongStep
		}
		idx := cmd.PlayerIndex
		if idx < 0 {
			return s, ErrInvalidPlayer
		}
		next.SelectedPlayerIndex = &idx
		next.HostHasSelectedPlayer = true

	case CmdSelectChoice:
		if s.CurrentStep != StepChoiceSelection {
			return s, ErrWrongStep
		}
		if cmd.ChoiceIndex < 0 || cmd.ChoiceIndex >= len(s.Event.Choices) {
			return s, ErrInvalidChoice
		}
		idx := cmd.ChoiceIndex
		choice := s.Event.Choices[idx]
		next.SelectedChoiceIndex = &idx
		next.SelectedChoice = &choice
		next.HostHasSelectedChoice = true

	case CmdCastVote:
		if !s.VotingEnabled {
			return s, ErrVotingDisabled
		}
		if s.CurrentStep != StepChoiceSelection {
			return s, ErrWrongStep
		}
		if cmd.ChoiceIndex < 0 || cmd.ChoiceIndex >= len(s.Event.Choices) {
			return s, ErrInvalidChoice
		}
		// One vote per player: a re-cast replaces the earlier vote.
		votes := make([]PlayerVote, 0, len(s.Votes)+1)
		for _, v := range s.Votes {
			if v.PlayerID != cmd.PlayerID {
				votes = append(votes, v)
			}
		}
		votes = append(votes, PlayerVote{
			PlayerID:    cmd.PlayerID,
			PlayerName:  cmd.PlayerName,
			PlayerSlot:  cmd.PlayerSlot,
			ChoiceIndex: cmd.ChoiceIndex,
			Timestamp:   now,
		})
		next.Votes = votes

	case CmdRemoveVote:
		votes := make([]PlayerVote, 0, len(s.Votes))
		for _, v := range s.Votes {
			if v.PlayerID != cmd.PlayerID {
				votes = append(votes, v)
			}
		}
		next.Votes = votes

	case CmdSetDetails:
		if s.CurrentStep != StepSelectionDetails {
			return s, ErrWrongStep
		}
		d := s.Details
		if cmd.SourcePlayerIndex != nil {
			d.SourcePlayerIndex = cmd.SourcePlayerIndex
		}
		if cmd.TargetPlayerIndex != nil {
			d.TargetPlayerIndex = cmd.TargetPlayerIndex
		}
		if cmd.SourceStratagem != nil {
			d.SourceStratagem = cmd.SourceStratagem
		}
		if cmd.TargetStratagem != nil {
			d.TargetStratagem = cmd.TargetStratagem
		}
		if cmd.BoosterPool != nil {
			d.BoosterPool = slices.Clone(cmd.BoosterPool)
		}
		next.Details = d

	case CmdChooseBooster:
		if s.CurrentStep != StepSelectionDetails {
			return s, ErrWrongStep
		}
		booster := cmd.Booster
		next.Details.ChosenBooster = &booster

	case CmdSubmitDecision:
		if s.CurrentStep != StepPlayerDecisions {
			return s, ErrWrongStep
		}
		decisions := make([]PlayerDecision, 0, len(s.Decisions)+1)
		for _, d := range s.Decisions {
			if d.PlayerID != cmd.PlayerID {
				decisions = append(decisions, d)
			}
		}
		decisions = append(decisions, PlayerDecision{
			PlayerID:      cmd.PlayerID,
			PlayerSlot:    cmd.PlayerSlot,
			DecisionType:  cmd.DecisionType,
			SelectedItem:  cmd.SelectedItem,
			StratagemSlot: cmd.StratagemSlot,
			Confirmed:     cmd.Confirmed,
			Timestamp:     now,
		})
		next.Decisions = decisions

		waiting := make([]int, 0, len(s.WaitingForPlayers))
		for _, slot := range s.WaitingForPlayers {
			if slot != cmd.PlayerSlot {
				waiting = append(waiting, slot)
			}
		}
		next.WaitingForPlayers = waiting
		next.AllDecisionsMade = len(waiting) == 0

	case CmdSetWaitingPlayers:
		next.WaitingForPlayers = slices.Clone(cmd.WaitingPlayers)
		next.AllDecisionsMade = len(next.WaitingForPlayers) == 0

	case CmdStartDraft:
		next.Draft = &SpecialDraft{
			DraftType:  cmd.DraftType,
			Candidates: slices.Clone(cmd.Candidates),
			Seats:      cmd.Seats,
			Selections: map[int]string{},
		}

	case CmdPickDraftItem:
		if s.Draft == nil {
			return s, ErrWrongStep
		}
		if s.Draft.Complete {
			return s, ErrEventLocked
		}
		draft := *s.Draft
		selections := make(map[int]string, len(draft.Selections)+1)
		for slot, item := range draft.Selections {
			selections[slot] = item
		}
		selections[cmd.PlayerSlot] = cmd.Item
		draft.Selections = selections
		draft.Complete = len(selections) >= draft.Seats
		next.Draft = &draft

	case CmdSetPendingFaction:
		if cmd.Faction != "" {
			f := cmd.Faction
			next.PendingFaction = &f
		}
		if cmd.Subfaction != "" {
			sf := cmd.Subfaction
			next.PendingSubfaction = &sf
		}

	case CmdAdvanceStep:
		to := GetNextStep(s)
		next.StepHistory = slices.Clone(s.StepHistory)
		// APPLYING and COMPLETE are never valid back-targets.
		if s.CurrentStep != StepApplying && s.CurrentStep != StepComplete {
			next.StepHistory = append(next.StepHistory, s.CurrentStep)
		}
		next.CurrentStep = to
		next = enterStep(next, to, now)

	case CmdGoBack:
		if !CanNavigateBack(s) {
			return s, ErrCannotGoBack
		}
		prev := s.StepHistory[len(s.StepHistory)-1]
		next.StepHistory = slices.Clone(s.StepHistory[:len(s.StepHistory)-1])
		next.CurrentStep = prev
		next = reenterStep(next, prev)

	case CmdCompleteEvent:
		next.CurrentStep = StepComplete
		next.IsComplete = true
		completed := now
		next.CompletedAt = &completed

	case CmdSetError:
		msg := cmd.Message
		next.ErrorMessage = &msg

	case CmdClearError:
		next.ErrorMessage = nil

	default:
		return s, ErrUnsupportedCommand
	}

	next.CanGoBack = CanNavigateBack(next)
	next.LastUpdatedAt = now
	next.LastUpdatedBy = cmd.ClientID
	return next, nil
}

// enterStep applies the side effects of landing on a step while
// advancing.
func enterStep(s EventState, to Step, now time.Time) EventState {
	switch to {
	case StepConfirmation:
		s.OutcomePreview = GeneratePreview(s)
	case StepComplete:
		s.IsComplete = true
		completed := now
		s.CompletedAt = &completed
	}
	return s
}

// reenterStep clears the substate that belongs to steps ahead of the
// one a back navigation lands on.
func reenterStep(s EventState, to Step) EventState {
	switch to {
	case StepOverview, StepPlayerSelection:
		s.SelectedChoiceIndex = nil
		s.SelectedChoice = nil
		s.HostHasSelectedChoice = false
		s.Details = SelectionDetails{}
		s.OutcomePreview = ""
	case StepChoiceSelection:
		s.Details = SelectionDetails{}
		s.OutcomePreview = ""
	case StepSelectionDetails, StepPlayerDecisions:
		s.OutcomePreview = ""
	}
	return s
}
