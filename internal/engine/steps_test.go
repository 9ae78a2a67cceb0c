package engine

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func choiceEvent(choices ...EventChoice) GameEvent {
	return GameEvent{
		ID:           "test-event",
		Type:         EventChoiceType,
		TargetPlayer: TargetAll,
		Choices:      choices,
	}
}

func stateAt(ev GameEvent, step Step) EventState {
	s := NewEventState(ev.ID, ev, "host", testNow)
	s.CurrentStep = step
	return s
}

func TestGetNextStep(t *testing.T) {
	swapChoice := EventChoice{
		Text:     "swap",
		Outcomes: []EventOutcome{{Kind: OutcomeSwapStratagem, TargetPlayer: TargetChoose}},
	}
	rpChoice := EventChoice{
		Text:     "cash",
		Outcomes: []EventOutcome{{Kind: OutcomeAddRequisition, Value: 10}},
	}
	boosterChoice := EventChoice{
		Text:     "booster",
		Outcomes: []EventOutcome{{Kind: OutcomeGainBooster, TargetPlayer: TargetChoose}},
	}
	decisionChoice := EventChoice{
		Text:     "purge",
		Outcomes: []EventOutcome{{Kind: OutcomeRemoveItem, TargetPlayer: TargetChoose}},
	}

	cases := []struct {
		name  string
		setup func() EventState
		want  Step
	}{
		{
			name:  "overview of a choice event goes to choice selection",
			setup: func() EventState { return stateAt(choiceEvent(rpChoice), StepOverview) },
			want:  StepChoiceSelection,
		},
		{
			name: "overview of a choice event with no choices goes to confirmation",
			setup: func() EventState {
				ev := choiceEvent()
				return stateAt(ev, StepOverview)
			},
			want: StepConfirmation,
		},
		{
			name: "overview of a non-choice event goes to confirmation",
			setup: func() EventState {
				ev := GameEvent{Type: EventBeneficial, TargetPlayer: TargetAll}
				return stateAt(ev, StepOverview)
			},
			want: StepConfirmation,
		},
		{
			name:  "player selection always returns to overview",
			setup: func() EventState { return stateAt(choiceEvent(rpChoice), StepPlayerSelection) },
			want:  StepOverview,
		},
		{
			name: "swap choice routes through selection details",
			setup: func() EventState {
				s := stateAt(choiceEvent(swapChoice), StepChoiceSelection)
				s.SelectedChoice = &swapChoice
				return s
			},
			want: StepSelectionDetails,
		},
		{
			name: "chosen booster routes through selection details",
			setup: func() EventState {
				s := stateAt(choiceEvent(boosterChoice), StepChoiceSelection)
				s.SelectedChoice = &boosterChoice
				return s
			},
			want: StepSelectionDetails,
		},
		{
			name: "remove-item choice routes through player decisions",
			setup: func() EventState {
				s := stateAt(choiceEvent(decisionChoice), StepChoiceSelection)
				s.SelectedChoice = &decisionChoice
				return s
			},
			want: StepPlayerDecisions,
		},
		{
			name: "plain requisition choice goes straight to confirmation",
			setup: func() EventState {
				s := stateAt(choiceEvent(rpChoice), StepChoiceSelection)
				s.SelectedChoice = &rpChoice
				return s
			},
			want: StepConfirmation,
		},
		{
			name: "selection details to player decisions when decision needed",
			setup: func() EventState {
				s := stateAt(choiceEvent(decisionChoice), StepSelectionDetails)
				s.SelectedChoice = &decisionChoice
				return s
			},
			want: StepPlayerDecisions,
		},
		{
			name: "selection details to confirmation otherwise",
			setup: func() EventState {
				s := stateAt(choiceEvent(swapChoice), StepSelectionDetails)
				s.SelectedChoice = &swapChoice
				return s
			},
			want: StepConfirmation,
		},
		{
			name:  "player decisions always go to confirmation",
			setup: func() EventState { return stateAt(choiceEvent(rpChoice), StepPlayerDecisions) },
			want:  StepConfirmation,
		},
		{
			name:  "confirmation goes to applying",
			setup: func() EventState { return stateAt(choiceEvent(rpChoice), StepConfirmation) },
			want:  StepApplying,
		},
		{
			name:  "applying goes to complete",
			setup: func() EventState { return stateAt(choiceEvent(rpChoice), StepApplying) },
			want:  StepComplete,
		},
		{
			name:  "unrecognized step falls through to complete",
			setup: func() EventState { return stateAt(choiceEvent(rpChoice), Step("WAT")) },
			want:  StepComplete,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetNextStep(tc.setup()); got != tc.want {
				t.Fatalf("GetNextStep = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPredicatesNilChoice(t *testing.T) {
	if RequiresDetailedSelection(nil) {
		t.Fatal("RequiresDetailedSelection(nil) = true")
	}
	if RequiresBoosterSelection(nil) {
		t.Fatal("RequiresBoosterSelection(nil) = true")
	}
	if RequiresPlayerDecision(nil) {
		t.Fatal("RequiresPlayerDecision(nil) = true")
	}
}

func TestRequiresDetailedSelection(t *testing.T) {
	cases := []struct {
		name    string
		outcome EventOutcome
		want    bool
	}{
		{"swap stratagem", EventOutcome{Kind: OutcomeSwapStratagem}, true},
		{"duplicate stratagem", EventOutcome{Kind: OutcomeDuplicateStratagem}, true},
		{"duplicate to all", EventOutcome{Kind: OutcomeDuplicateToAll}, true},
		{"weapon restrict with chosen target", EventOutcome{Kind: OutcomeSingleWeaponRestrict, TargetPlayer: TargetChoose}, true},
		{"weapon restrict on everyone", EventOutcome{Kind: OutcomeSingleWeaponRestrict, TargetPlayer: TargetAll}, false},
		{"plain requisition", EventOutcome{Kind: OutcomeAddRequisition, Value: 5}, false},
		{"unknown kind", EventOutcome{Kind: OutcomeKind("mystery")}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			choice := &EventChoice{Outcomes: []EventOutcome{tc.outcome}}
			if got := RequiresDetailedSelection(choice); got != tc.want {
				t.Fatalf("RequiresDetailedSelection = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanNavigateBack(t *testing.T) {
	ev := choiceEvent()

	s := stateAt(ev, StepChoiceSelection)
	if CanNavigateBack(s) {
		t.Fatal("empty history should not allow back")
	}

	s.StepHistory = []Step{StepOverview}
	if !CanNavigateBack(s) {
		t.Fatal("non-empty history at a normal step should allow back")
	}

	// Terminal steps block back regardless of history.
	for _, step := range []Step{StepApplying, StepComplete} {
		s.CurrentStep = step
		if CanNavigateBack(s) {
			t.Fatalf("back allowed at %s", step)
		}
	}
}

func TestGetPreviousStep(t *testing.T) {
	ev := choiceEvent()
	s := stateAt(ev, StepChoiceSelection)

	if prev := GetPreviousStep(s); prev != nil {
		t.Fatalf("empty history: want nil, got %v", *prev)
	}

	s.StepHistory = []Step{StepOverview, StepChoiceSelection}
	prev := GetPreviousStep(s)
	if prev == nil || *prev != StepChoiceSelection {
		t.Fatalf("want stack top CHOICE_SELECTION, got %v", prev)
	}
}
