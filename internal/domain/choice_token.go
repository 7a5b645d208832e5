package domain

import (
	"fmt"
	"net/url"
	"strconv"
)

// ChoiceTokenVersion is the only token version this build understands
const ChoiceTokenVersion = 1

// MaxChoiceTokenLength is the LINE postback data limit
const MaxChoiceTokenLength = 300

// ChoiceKind identifies what a button press means
type ChoiceKind string

const (
	// ChoicePick - user picked the typed or the suggested title during disambiguation
	ChoicePick ChoiceKind = "pick"
	// ChoiceStore - user picked a store filter
	ChoiceStore ChoiceKind = "store"
	// ChoiceGenres - user paged the genre list
	ChoiceGenres ChoiceKind = "genres"
	// ChoiceGenre - user opened (or paged) the games of a genre
	ChoiceGenre ChoiceKind = "genre"
	// ChoiceGame - user opened the curated links of a game
	ChoiceGame ChoiceKind = "game"
)

// ChoiceToken is the typed payload carried by a choice button.
//
//	pick:   Query (cache key), Game (chosen title)
//	store:  Query (cache key), Game (resolved title), Store ("" means any)
//	genres: Page
//	genre:  Genre, Page
//	game:   GameID
type ChoiceToken struct {
	Kind   ChoiceKind
	Query  string
	Game   string
	Store  Store
	Genre  string
	Page   int
	GameID string
}

// Format encodes the token. It fails when the encoding does not fit a postback.
func (t ChoiceToken) Format() (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}
	v := url.Values{}
	v.Set("v", strconv.Itoa(ChoiceTokenVersion))
	v.Set("k", string(t.Kind))
	switch t.Kind {
	case ChoicePick:
		v.Set("q", t.Query)
		v.Set("n", t.Game)
	case ChoiceStore:
		v.Set("q", t.Query)
		v.Set("n", t.Game)
		v.Set("s", storeParam(t.Store))
	case ChoiceGenres:
		v.Set("p", strconv.Itoa(t.Page))
	case ChoiceGenre:
		v.Set("g", t.Genre)
		v.Set("p", strconv.Itoa(t.Page))
	case ChoiceGame:
		v.Set("id", t.GameID)
	}
	encoded := v.Encode()
	if len(encoded) > MaxChoiceTokenLength {
		return "", fmt.Errorf("%w: token is %d bytes, limit %d", ErrProtocol, len(encoded), MaxChoiceTokenLength)
	}
	return encoded, nil
}

// ParseChoiceToken decodes a token. Anything unexpected fails closed with ErrProtocol.
func ParseChoiceToken(data string) (ChoiceToken, error) {
	var t ChoiceToken
	if len(data) > MaxChoiceTokenLength {
		return t, fmt.Errorf("%w: token too long", ErrProtocol)
	}
	v, err := url.ParseQuery(data)
	if err != nil {
		return t, fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	if v.Get("v") != strconv.Itoa(ChoiceTokenVersion) {
		return t, fmt.Errorf("%w: unsupported version %q", ErrProtocol, v.Get("v"))
	}
	t.Kind = ChoiceKind(v.Get("k"))
	switch t.Kind {
	case ChoicePick:
		t.Query = v.Get("q")
		t.Game = v.Get("n")
	case ChoiceStore:
		t.Query = v.Get("q")
		t.Game = v.Get("n")
		store, ok := ParseStore(v.Get("s"))
		if !ok || !v.Has("s") {
			return t, fmt.Errorf("%w: unknown store %q", ErrProtocol, v.Get("s"))
		}
		t.Store = store
	case ChoiceGenres:
		if t.Page, err = parsePage(v); err != nil {
			return t, err
		}
	case ChoiceGenre:
		t.Genre = v.Get("g")
		if t.Page, err = parsePage(v); err != nil {
			return t, err
		}
	case ChoiceGame:
		t.GameID = v.Get("id")
	default:
		return t, fmt.Errorf("%w: unknown kind %q", ErrProtocol, t.Kind)
	}
	if err := t.validate(); err != nil {
		return ChoiceToken{}, err
	}
	return t, nil
}

func (t ChoiceToken) validate() error {
	switch t.Kind {
	case ChoicePick, ChoiceStore:
		if t.Query == "" || t.Game == "" {
			return fmt.Errorf("%w: %s token needs query and game", ErrProtocol, t.Kind)
		}
	case ChoiceGenres:
		if t.Page < 0 {
			return fmt.Errorf("%w: negative page", ErrProtocol)
		}
	case ChoiceGenre:
		if t.Genre == "" || t.Page < 0 {
			return fmt.Errorf("%w: genre token needs genre and page", ErrProtocol)
		}
	case ChoiceGame:
		if t.GameID == "" {
			return fmt.Errorf("%w: game token needs id", ErrProtocol)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrProtocol, t.Kind)
	}
	return nil
}

func parsePage(v url.Values) (int, error) {
	page, err := strconv.Atoi(v.Get("p"))
	if err != nil {
		return 0, fmt.Errorf("%w: bad page %q", ErrProtocol, v.Get("p"))
	}
	return page, nil
}

func storeParam(s Store) string {
	if s == StoreUnknown {
		return "any"
	}
	return string(s)
}
