package domain

import "strings"

// Store identifies a digital storefront
type Store string

const (
	// StoreUnknown - URL does not belong to a supported storefront
	StoreUnknown Store = ""
	// StoreSteam - Steam
	StoreSteam Store = "steam"
	// StoreGOG - GOG
	StoreGOG Store = "gog"
	// StoreEpic - Epic Games Store
	StoreEpic Store = "epic"
)

// Stores lists the supported storefronts in classification order
var Stores = []Store{StoreSteam, StoreGOG, StoreEpic}

// DisplayName returns the human readable storefront name
func (s Store) DisplayName() string {
	switch s {
	case StoreSteam:
		return "Steam"
	case StoreGOG:
		return "GOG"
	case StoreEpic:
		return "Epic Games Store"
	default:
		return "Unknown"
	}
}

// ParseStore maps a store identifier to a Store. "any" and "" map to StoreUnknown with ok=true,
// meaning no filter.
func ParseStore(s string) (Store, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return StoreUnknown, true
	case string(StoreSteam):
		return StoreSteam, true
	case string(StoreGOG):
		return StoreGOG, true
	case string(StoreEpic):
		return StoreEpic, true
	default:
		return StoreUnknown, false
	}
}

// ClassifyLink decides which storefront a URL belongs to.
// Steam is checked before GOG and GOG before Epic; the first match wins.
func ClassifyLink(url string) Store {
	link := strings.ToLower(url)
	switch {
	case strings.Contains(link, "steam"):
		return StoreSteam
	case strings.Contains(link, "gog"):
		return StoreGOG
	case strings.Contains(link, "epicgames"), strings.Contains(link, "epic"):
		return StoreEpic
	default:
		return StoreUnknown
	}
}

// Matches reports whether url carries the store's marker, ignoring the other stores
func (s Store) Matches(url string) bool {
	link := strings.ToLower(url)
	switch s {
	case StoreSteam:
		return strings.Contains(link, "steam")
	case StoreGOG:
		return strings.Contains(link, "gog")
	case StoreEpic:
		return strings.Contains(link, "epicgames") || strings.Contains(link, "epic")
	default:
		return false
	}
}

// MaxLinksPerBucket bounds every per-store bucket
const MaxLinksPerBucket = 5

// StoreLinkBucket groups links per storefront, each bucket capped at MaxLinksPerBucket
type StoreLinkBucket struct {
	Steam []string
	GOG   []string
	Epic  []string
}

// Add appends url to the bucket of its storefront. It reports false when the URL is
// unclassified or the bucket is already full.
func (b *StoreLinkBucket) Add(url string) bool {
	return b.AddTo(ClassifyLink(url), url)
}

// AddTo appends url to the bucket of store
func (b *StoreLinkBucket) AddTo(store Store, url string) bool {
	var bucket *[]string
	switch store {
	case StoreSteam:
		bucket = &b.Steam
	case StoreGOG:
		bucket = &b.GOG
	case StoreEpic:
		bucket = &b.Epic
	default:
		return false
	}
	if len(*bucket) >= MaxLinksPerBucket {
		return false
	}
	*bucket = append(*bucket, url)
	return true
}

// Links returns the bucket of the given store
func (b StoreLinkBucket) Links(store Store) []string {
	switch store {
	case StoreSteam:
		return b.Steam
	case StoreGOG:
		return b.GOG
	case StoreEpic:
		return b.Epic
	default:
		return nil
	}
}

// IsEmpty reports whether no bucket holds a link
func (b StoreLinkBucket) IsEmpty() bool {
	return len(b.Steam) == 0 && len(b.GOG) == 0 && len(b.Epic) == 0
}
