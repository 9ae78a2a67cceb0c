package engine

// Events is the built-in event table, keyed by event id. Definitions
// are static; sessions embed a copy into their EventState and never
// write back.
var Events = map[string]GameEvent{
	"supply-cache": {
		ID:           "supply-cache",
		Title:        "Abandoned Supply Cache",
		Description:  "A Super Earth supply cache sits unguarded. Mostly.",
		Type:         EventChoiceType,
		TargetPlayer: TargetAll,
		Choices: []EventChoice{
			{
				Text: "Crack it open",
				Outcomes: []EventOutcome{
					{Kind: OutcomeAddRequisition, TargetPlayer: TargetAll, Value: 10},
				},
			},
			{
				Text: "Strip it for parts",
				Outcomes: []EventOutcome{
					{Kind: OutcomeAddSamples, TargetPlayer: TargetAll, Value: 3},
					{Kind: OutcomeLoseRequisition, TargetPlayer: TargetAll, Value: 5},
				},
			},
			{
				Text: "Leave it alone",
				Outcomes: []EventOutcome{
					{Kind: OutcomeNothing},
				},
			},
		},
	},
	"field-requisition": {
		ID:           "field-requisition",
		Title:        "Field Requisition",
		Description:  "Command offers one diver a gear shuffle.",
		Type:         EventChoiceType,
		TargetPlayer: TargetSingle,
		Choices: []EventChoice{
			{
				Text: "Trade stratagems with a squadmate",
				Outcomes: []EventOutcome{
					{Kind: OutcomeSwapStratagem, TargetPlayer: TargetChoose},
				},
			},
			{
				Text:   "Requisition a booster",
				CostRP: 15,
				Outcomes: []EventOutcome{
					{Kind: OutcomeGainBooster, TargetPlayer: TargetChoose},
				},
			},
		},
	},
	"equipment-purge": {
		ID:           "equipment-purge",
		Title:        "Equipment Purge",
		Description:  "A saboteur forces the squad to shed weight.",
		Type:         EventChoiceType,
		TargetPlayer: TargetAll,
		Choices: []EventChoice{
			{
				Text: "Everyone drops something",
				Outcomes: []EventOutcome{
					{Kind: OutcomeRemoveItem, TargetPlayer: TargetChoose},
				},
			},
			{
				Text: "Pay the saboteur off",
				Outcomes: []EventOutcome{
					{Kind: OutcomeLoseRequisition, TargetPlayer: TargetAll, Value: 20},
				},
			},
		},
	},
	"morale-boost": {
		ID:           "morale-boost",
		Title:        "Morale Boost",
		Description:  "Word from home. Everyone fights a little harder.",
		Type:         EventBeneficial,
		TargetPlayer: TargetAll,
		Outcomes: []EventOutcome{
			{Kind: OutcomeAddRequisition, TargetPlayer: TargetAll, Value: 5},
			{Kind: OutcomeGainBooster, TargetPlayer: TargetRandom},
		},
	},
	"shifting-front": {
		ID:           "shifting-front",
		Title:        "Shifting Front",
		Description:  "The war map redraws itself overnight.",
		Type:         EventNeutral,
		TargetPlayer: TargetAll,
		Outcomes: []EventOutcome{
			{Kind: OutcomeChangeFaction},
		},
	},
}

// LookupEvent fetches a static definition by id.
func LookupEvent(id string) (GameEvent, bool) {
	ev, ok := Events[id]
	return ev, ok
}
