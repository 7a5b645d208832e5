package main

import (
	"strings"
	"testing"
)

func TestLoadSeed(t *testing.T) {
	input := `
games:
  - name: Hollow Knight
    genre: Metroidvania
    steam: https://store.steampowered.com/app/367520
    gog: https://www.gog.com/game/hollow_knight
  - name: Hades
    genre: Roguelike
`
	requests, err := loadSeed(strings.NewReader(input))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("expected 2 games, got %d", len(requests))
	}

	hk := requests[0]
	if hk.Name != "Hollow Knight" || hk.Genre != "Metroidvania" {
		t.Errorf("unexpected first game %+v", hk)
	}
	if hk.SteamLink == nil || *hk.SteamLink != "https://store.steampowered.com/app/367520" {
		t.Errorf("unexpected steam link %v", hk.SteamLink)
	}
	if hk.EpicLink != nil {
		t.Errorf("expected no epic link, got %q", *hk.EpicLink)
	}
	if requests[1].SteamLink != nil || requests[1].GOGLink != nil {
		t.Errorf("expected Hades to have no links, got %+v", requests[1])
	}
}

func TestLoadSeed_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing name", "games:\n  - genre: Puzzle\n"},
		{"not yaml", "games: [unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadSeed(strings.NewReader(tt.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadSeed_EmptyFile(t *testing.T) {
	requests, err := loadSeed(strings.NewReader(""))
	if err != nil || len(requests) != 0 {
		t.Errorf("expected nothing, got %v %v", requests, err)
	}
}
