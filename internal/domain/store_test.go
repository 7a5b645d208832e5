package domain

import (
	"fmt"
	"testing"
)

func TestClassifyLink(t *testing.T) {
	tests := []struct {
		url  string
		want Store
	}{
		{"https://store.steampowered.com/app/367520/Hollow_Knight/", StoreSteam},
		{"HTTPS://STORE.STEAMPOWERED.COM/APP/1", StoreSteam},
		{"https://www.gog.com/en/game/hollow_knight", StoreGOG},
		{"https://store.epicgames.com/en-US/p/hollow-knight", StoreEpic},
		{"https://epic.example.com/game", StoreEpic},
		{"https://en.wikipedia.org/wiki/Hollow_Knight", StoreUnknown},
		{"", StoreUnknown},
		// Steam wins over GOG, GOG wins over Epic
		{"https://www.gog.com/game/steamworld_dig", StoreSteam},
		{"https://gog.epicgames.com/x", StoreGOG},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := ClassifyLink(tt.url); got != tt.want {
				t.Errorf("ClassifyLink(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestParseStore(t *testing.T) {
	tests := []struct {
		in     string
		want   Store
		wantOK bool
	}{
		{"any", StoreUnknown, true},
		{"", StoreUnknown, true},
		{"Steam", StoreSteam, true},
		{"gog", StoreGOG, true},
		{"epic", StoreEpic, true},
		{"origin", StoreUnknown, false},
	}

	for _, tt := range tests {
		got, ok := ParseStore(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseStore(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestStoreLinkBucketCapsEachStore(t *testing.T) {
	var bucket StoreLinkBucket

	for i := 0; i < 8; i++ {
		bucket.Add(fmt.Sprintf("https://store.steampowered.com/app/%d", i))
	}
	bucket.Add("https://www.gog.com/game/a")

	if len(bucket.Steam) != MaxLinksPerBucket {
		t.Errorf("expected steam bucket capped at %d, got %d", MaxLinksPerBucket, len(bucket.Steam))
	}
	if len(bucket.GOG) != 1 {
		t.Errorf("expected 1 gog link, got %d", len(bucket.GOG))
	}
	if bucket.Add("https://example.com") {
		t.Error("expected unclassified link to be rejected")
	}
	if bucket.IsEmpty() {
		t.Error("expected bucket to be non-empty")
	}
}

func TestGameStoreLinks(t *testing.T) {
	steam := "https://store.steampowered.com/app/367520"
	gog := "https://www.gog.com/game/steamworld_dig"
	epic := "https://example.com/not-a-store"

	game := Game{Name: "SteamWorld Dig", SteamLink: &steam, GOGLink: &gog, EpicLink: &epic}
	bucket := game.StoreLinks()

	if len(bucket.Steam) != 1 || bucket.Steam[0] != steam {
		t.Errorf("expected steam link kept, got %v", bucket.Steam)
	}
	// stored under GOG and carries the GOG marker, so it stays in the GOG bucket
	if len(bucket.GOG) != 1 || bucket.GOG[0] != gog {
		t.Errorf("expected gog link kept, got %v", bucket.GOG)
	}
	if len(bucket.Epic) != 0 {
		t.Errorf("expected epic link without marker to be dropped, got %v", bucket.Epic)
	}
}
