package engine

// EventType classifies an event's overall shape.
type EventType string

const (
	EventChoiceType EventType = "choice"
	EventBeneficial EventType = "beneficial"
	EventDetriment  EventType = "detrimental"
	EventNeutral    EventType = "neutral"
)

// TargetPlayer says who an event or outcome lands on.
type TargetPlayer string

const (
	TargetSingle TargetPlayer = "single"
	TargetAll    TargetPlayer = "all"
	TargetChoose TargetPlayer = "choose"
	TargetRandom TargetPlayer = "random"
)

// OutcomeKind is the closed set of atomic effects an event can apply.
// Unknown kinds must stay neutral: they format to "" and trigger no
// transition branch.
type OutcomeKind string

const (
	OutcomeAddRequisition       OutcomeKind = "add_requisition"
	OutcomeLoseRequisition      OutcomeKind = "lose_requisition"
	OutcomeAddSamples           OutcomeKind = "add_samples"
	OutcomeLoseSamples          OutcomeKind = "lose_samples"
	OutcomeGainBooster          OutcomeKind = "gain_booster"
	OutcomeLoseBooster          OutcomeKind = "lose_booster"
	OutcomeGainStratagem        OutcomeKind = "gain_stratagem"
	OutcomeLoseStratagem        OutcomeKind = "lose_stratagem"
	OutcomeSwapStratagem        OutcomeKind = "swap_stratagem_with_player"
	OutcomeDuplicateStratagem   OutcomeKind = "duplicate_stratagem_to_another_helldiver"
	OutcomeDuplicateToAll       OutcomeKind = "duplicate_stratagem_to_all"
	OutcomeSingleWeaponRestrict OutcomeKind = "restrict_to_single_weapon"
	OutcomeGainWeapon           OutcomeKind = "gain_weapon"
	OutcomeLoseWeapon           OutcomeKind = "lose_weapon"
	OutcomeRemoveItem           OutcomeKind = "remove_item"
	OutcomeTransformLoadout     OutcomeKind = "transform_loadout"
	OutcomeRedraft              OutcomeKind = "redraft"
	OutcomeSpecialDraft         OutcomeKind = "special_draft"
	OutcomeChangeFaction        OutcomeKind = "change_faction"
	OutcomeChangeSubfaction     OutcomeKind = "change_subfaction"
	OutcomeRandom               OutcomeKind = "random_outcome"
	OutcomeNothing              OutcomeKind = "nothing"
)

// GameEvent is the static definition of one narrative event. The engine
// never mutates these; EventState embeds a copy at creation time.
type GameEvent struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Type         EventType      `json:"type"`
	TargetPlayer TargetPlayer   `json:"targetPlayer"`
	Choices      []EventChoice  `json:"choices,omitempty"`
	Outcomes     []EventOutcome `json:"outcomes,omitempty"`
}

// EventChoice is one selectable branch of a choice-type event.
type EventChoice struct {
	Text     string         `json:"text"`
	CostRP   int            `json:"costRp,omitempty"` // requisition gate; 0 = free
	Outcomes []EventOutcome `json:"outcomes"`
}

// EventOutcome is one tagged effect inside a choice (or an unconditional
// event). Value is only meaningful for the resource kinds.
type EventOutcome struct {
	Kind         OutcomeKind  `json:"kind"`
	TargetPlayer TargetPlayer `json:"targetPlayer,omitempty"`
	Value        int          `json:"value,omitempty"`
}
