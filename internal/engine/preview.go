package engine

import (
	"fmt"
	"strings"
)

const selectChoicePrompt = "Select a choice to see the outcome"

// GeneratePreview renders the one-line summary shown before an event's
// effects are committed. Unknown outcome kinds contribute nothing.
func GeneratePreview(s EventState) string {
	outcomes := s.Event.Outcomes
	if s.SelectedChoice != nil {
		outcomes = s.SelectedChoice.Outcomes
	} else if len(outcomes) == 0 {
		return selectChoicePrompt
	}

	parts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if desc := describeOutcome(o); desc != "" {
			parts = append(parts, desc)
		}
	}
	text := strings.Join(parts, ", ")

	// 1-based display numbering for single-target events.
	if s.Event.TargetPlayer == TargetSingle && s.SelectedPlayerIndex != nil {
		text = fmt.Sprintf("HELLDIVER %d: %s", *s.SelectedPlayerIndex+1, text)
	}
	return text
}

func describeOutcome(o EventOutcome) string {
	switch o.Kind {
	case OutcomeAddRequisition:
		return fmt.Sprintf("+%d Requisition", o.Value)
	case OutcomeLoseRequisition:
		return fmt.Sprintf("-%d Requisition", o.Value)
	case OutcomeAddSamples:
		return fmt.Sprintf("+%d Samples", o.Value)
	case OutcomeLoseSamples:
		return fmt.Sprintf("-%d Samples", o.Value)
	case OutcomeGainBooster:
		return "Gain a tactical booster"
	case OutcomeLoseBooster:
		return "Lose your booster"
	case OutcomeGainStratagem:
		return "Gain a stratagem"
	case OutcomeLoseStratagem:
		return "Lose a stratagem"
	case OutcomeSwapStratagem:
		return "Swap a stratagem with another Helldiver"
	case OutcomeDuplicateStratagem:
		return "Copy one of your stratagems to another Helldiver"
	case OutcomeDuplicateToAll:
		return "Copy one stratagem to the whole squad"
	case OutcomeSingleWeaponRestrict:
		return "Restricted to a single weapon"
	case OutcomeGainWeapon:
		return "Gain a weapon"
	case OutcomeLoseWeapon:
		return "Lose a weapon"
	case OutcomeRemoveItem:
		return "Remove an item from a loadout"
	case OutcomeTransformLoadout:
		return "Transform a loadout"
	case OutcomeRedraft:
		return "Redraft a loadout"
	case OutcomeSpecialDraft:
		return "Start a special draft"
	case OutcomeChangeFaction:
		return "The enemy faction changes"
	case OutcomeChangeSubfaction:
		return "The enemy subfaction shifts"
	case OutcomeRandom:
		return "A random outcome is applied"
	case OutcomeNothing:
		return "Nothing happens"
	default:
		return ""
	}
}
