package events

// ============================================================================
// Event Message Types
// Payloads carried in Event.Data, one per event type.
// ============================================================================

// CardSwipedEvent is the payload for card:swiped events.
// Sent when the top card is dismissed, before it leaves the active list.
type CardSwipedEvent struct {
	CardID    string `json:"cardId"`
	Name      string `json:"name"`
	Direction string `json:"direction"` // "left" or "right"
	Decisions int    `json:"decisions"` // history length including this one
}

// CardRemovedEvent is the payload for card:removed events.
type CardRemovedEvent struct {
	CardID    string `json:"cardId"`
	Remaining int    `json:"remaining"`
}

// DeckResetEvent is the payload for deck:reset events.
type DeckResetEvent struct {
	Cards int `json:"cards"` // size of the restored list
}

// DeckReloadedEvent is the payload for deck:reloaded events.
// Sent when a new seed deck replaces the current one.
type DeckReloadedEvent struct {
	Cards  int    `json:"cards"`
	Source string `json:"source,omitempty"` // seed file path, if any
}

// DeckEmptyEvent is the payload for deck:empty events.
type DeckEmptyEvent struct {
	Likes int `json:"likes"`
	Nopes int `json:"nopes"`
}
