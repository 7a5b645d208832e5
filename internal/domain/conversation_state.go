package domain

// ConversationState is the tagged state of one conversation. Every variant carries exactly
// the fields that are known in that state, so nothing can be read before it is set.
type ConversationState interface {
	// Name returns a stable identifier for logging
	Name() string
	isConversationState()
}

// StateIdle - no pending prompt
type StateIdle struct{}

// StateAwaitingDisambiguation - the user must choose between the typed and the suggested title
type StateAwaitingDisambiguation struct {
	Pending PendingDisambiguation
}

// StateAwaitingStoreFilter - the user must choose a store filter
type StateAwaitingStoreFilter struct {
	Pending PendingStoreFilter
}

// StateAwaitingName - add-game form, waiting for the title
type StateAwaitingName struct{}

// StateAwaitingGenre - add-game form, waiting for the genre
type StateAwaitingGenre struct {
	Name string
}

// StateAwaitingSteamLink - add-game form, waiting for the Steam link
type StateAwaitingSteamLink struct {
	Name  string
	Genre string
}

// StateAwaitingGOGLink - add-game form, waiting for the GOG link
type StateAwaitingGOGLink struct {
	Name      string
	Genre     string
	SteamLink *string
}

// StateAwaitingEpicLink - add-game form, waiting for the Epic link
type StateAwaitingEpicLink struct {
	Name      string
	Genre     string
	SteamLink *string
	GOGLink   *string
}

func (StateIdle) Name() string                   { return "idle" }
func (StateAwaitingDisambiguation) Name() string { return "awaiting_disambiguation" }
func (StateAwaitingStoreFilter) Name() string    { return "awaiting_store_filter" }
func (StateAwaitingName) Name() string           { return "awaiting_name" }
func (StateAwaitingGenre) Name() string          { return "awaiting_genre" }
func (StateAwaitingSteamLink) Name() string      { return "awaiting_steam_link" }
func (StateAwaitingGOGLink) Name() string        { return "awaiting_gog_link" }
func (StateAwaitingEpicLink) Name() string       { return "awaiting_epic_link" }

func (StateIdle) isConversationState()                   {}
func (StateAwaitingDisambiguation) isConversationState() {}
func (StateAwaitingStoreFilter) isConversationState()    {}
func (StateAwaitingName) isConversationState()           {}
func (StateAwaitingGenre) isConversationState()          {}
func (StateAwaitingSteamLink) isConversationState()      {}
func (StateAwaitingGOGLink) isConversationState()        {}
func (StateAwaitingEpicLink) isConversationState()       {}

// IsAddGameForm reports whether state belongs to the add-game form
func IsAddGameForm(state ConversationState) bool {
	switch state.(type) {
	case StateAwaitingName, StateAwaitingGenre, StateAwaitingSteamLink, StateAwaitingGOGLink, StateAwaitingEpicLink:
		return true
	default:
		return false
	}
}
