package types

// EventState (snapshot payload):
//   eventId: string
//   event: GameEvent // immutable copy of the static definition
//   hostId: string
//   currentStep: "OVERVIEW" | "PLAYER_SELECTION" | "CHOICE_SELECTION" |
//                "SELECTION_DETAILS" | "PLAYER_DECISIONS" | "CONFIRMATION" |
//                "APPLYING" | "COMPLETE"
//   stepHistory: Step[] // back-navigation stack, never holds APPLYING/COMPLETE
//   canGoBack: boolean
//   selectedPlayerIndex: number | null
//   hostHasSelectedPlayer: boolean
//   selectedChoiceIndex: number | null
//   selectedChoice: EventChoice | null
//   hostHasSelectedChoice: boolean
//   votes: { playerId, playerName, playerSlot, choiceIndex, timestamp }[]
//   votingEnabled: boolean
//   selectionDetails: { sourcePlayerIndex, targetPlayerIndex,
//                       sourceStratagem, targetStratagem,
//                       boosterPool, chosenBooster } // all nullable
//   playerDecisions: { playerId, playerSlot, decisionType,
//                      selectedItem, stratagemSlot, confirmed, timestamp }[]
//   waitingForPlayers: number[] // player slots still deciding
//   allDecisionsMade: boolean
//   specialDraft: { draftType, candidates, seats, selections, complete } | null
//   pendingFaction: string | null
//   pendingSubfaction: string | null
//   outcomePreview: string
//   errorMessage: string | null
//   startedAt, lastUpdatedAt: timestamp
//   lastUpdatedBy: string // client id of the last writer
//   completedAt: timestamp | null
//   isComplete: boolean
