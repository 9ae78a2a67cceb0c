package types

// Client -> Server
// StartEvent (host):
//   event_id: string
//
// ClearEvent (host): {} // only after the snapshot shows isComplete
//
// SelectPlayer (host):
//   player_index: number
//
// SelectChoice (host):
//   choice_index: number
//
// CastVote:
//   player_id: string
//   player_name: string
//   player_slot: number
//   choice_index: number
//
// RemoveVote:
//   player_id: string
//
// SetDetails:
//   source_player_index?: number
//   target_player_index?: number
//   source_stratagem?: { name, slot }
//   target_stratagem?: { name, slot }
//   booster_pool?: string[]
//
// ChooseBooster:
//   booster: string
//
// SubmitDecision:
//   player_id: string
//   player_slot: number
//   decision_type: "ITEM_SELECTION" | "STRATAGEM_SELECTION" | "BOOSTER_SELECTION" | "CONFIRMATION"
//   selected_item?: string
//   stratagem_slot?: number
//   confirmed: boolean
//
// SetWaitingPlayers (host):
//   waiting_players: number[]
//
// StartDraft (host):
//   draft_type: string
//   candidates: string[]
//   seats: number
//
// PickDraftItem:
//   player_slot: number
//   item: string
//
// SetPendingFaction (host):
//   faction?: string
//   subfaction?: string
//
// AdvanceStep (host): {}
// GoBack (host): {}
// CompleteEvent (host): {}
//
// SetError:
//   message: string
// ClearError: {}

// Server -> Client
// StateSnapshot:
//   version: number
//   state: EventState | null // null after ClearEvent
//
// Error:
//   error: string
