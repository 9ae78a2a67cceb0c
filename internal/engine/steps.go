package engine

// RequiresDetailedSelection reports whether resolving choice needs the
// SELECTION_DETAILS step for extra targeting. Nil choices never do.
func RequiresDetailedSelection(choice *EventChoice) bool {
	if choice == nil {
		return false
	}
	for _, o := range choice.Outcomes {
		switch o.Kind {
		case OutcomeSwapStratagem, OutcomeDuplicateStratagem, OutcomeDuplicateToAll:
			return true
		case OutcomeSingleWeaponRestrict:
			if o.TargetPlayer == TargetChoose {
				return true
			}
		}
	}
	return false
}

// RequiresBoosterSelection reports whether the choice hands out a
// booster the players get to pick themselves.
func RequiresBoosterSelection(choice *EventChoice) bool {
	if choice == nil {
		return false
	}
	for _, o := range choice.Outcomes {
		if o.Kind == OutcomeGainBooster && o.TargetPlayer == TargetChoose {
			return true
		}
	}
	return false
}

// RequiresPlayerDecision reports whether each affected player has to
// submit an individual decision before confirmation.
func RequiresPlayerDecision(choice *EventChoice) bool {
	if choice == nil {
		return false
	}
	for _, o := range choice.Outcomes {
		switch o.Kind {
		case OutcomeRemoveItem, OutcomeTransformLoadout, OutcomeRedraft:
			if o.TargetPlayer == TargetChoose {
				return true
			}
		}
	}
	return false
}

// GetNextStep computes the step that follows the current one. It is
// total: an unrecognized step falls through to COMPLETE rather than
// erroring.
func GetNextStep(s EventState) Step {
	switch s.CurrentStep {
	case StepPlayerSelection:
		return StepOverview

	case StepOverview:
		if s.Event.Type == EventChoiceType && len(s.Event.Choices) > 0 {
			return StepChoiceSelection
		}
		return StepConfirmation

	case StepChoiceSelection:
		if RequiresDetailedSelection(s.SelectedChoice) || RequiresBoosterSelection(s.SelectedChoice) {
			return StepSelectionDetails
		}
		if RequiresPlayerDecision(s.SelectedChoice) {
			return StepPlayerDecisions
		}
		return StepConfirmation

	case StepSelectionDetails:
		if RequiresPlayerDecision(s.SelectedChoice) {
			return StepPlayerDecisions
		}
		return StepConfirmation

	case StepPlayerDecisions:
		return StepConfirmation

	case StepConfirmation:
		return StepApplying

	case StepApplying:
		return StepComplete

	default:
		return StepComplete
	}
}

// CanNavigateBack reports whether a back navigation is allowed from the
// current position. APPLYING and COMPLETE are terminal for back
// purposes regardless of what the history holds.
func CanNavigateBack(s EventState) bool {
	if s.CurrentStep == StepApplying || s.CurrentStep == StepComplete {
		return false
	}
	return len(s.StepHistory) > 0
}

// GetPreviousStep returns the step a back navigation would land on, or
// nil when there is nowhere to go. Advancing pushes the departed step
// onto StepHistory; going back pops it.
func GetPreviousStep(s EventState) *Step {
	if len(s.StepHistory) == 0 {
		return nil
	}
	prev := s.StepHistory[len(s.StepHistory)-1]
	return &prev
}
