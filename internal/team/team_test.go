package team

import (
	"encoding/json"
	"testing"
)

func TestDecodeWithFeed(t *testing.T) {
	doc := `{
		"_id": "team1",
		"Abbreviation": "SHK",
		"Active": true,
		"Color": "1a6b8f",
		"Emoji": "🦈",
		"Location": "Reef City",
		"FullLocation": "Reef City, Atlantis",
		"League": "Lesser",
		"Name": "Sea Sharks",
		"Players": [
			{"Emoji": "🦈", "FirstName": "Mina", "LastName": "Park", "Number": 7, "PlayerID": "p1", "Position": "P"}
		],
		"Feed": [
			{"emoji": "🦈", "season": 2, "day": 14, "status": "regular", "text": "Released by the Sea Sharks.", "ts": "2025-06-01T12:00:00Z", "type": "release", "links": []}
		]
	}`
	var tm Team
	if err := json.Unmarshal([]byte(doc), &tm); err != nil {
		t.Fatal(err)
	}
	if got := tm.EmojiTeam().String(); got != "🦈 Sea Sharks" {
		t.Errorf("EmojiTeam() = %q", got)
	}
	if got := tm.Players[0].Name(); got != "Mina Park" {
		t.Errorf("player name = %q", got)
	}
	if !tm.Feed.Present() {
		t.Fatal("feed not marked present")
	}
	entries := tm.FeedEntries()
	if len(entries) != 1 || entries[0].Type != "release" {
		t.Errorf("feed entries = %+v", entries)
	}
}

func TestDecodeWithoutFeed(t *testing.T) {
	// Teams archived before feed tracking have no Feed key at all. That
	// is an empty history, not an error.
	doc := `{"Abbreviation": "SHK", "Emoji": "🦈", "Name": "Sea Sharks", "Players": []}`
	var tm Team
	if err := json.Unmarshal([]byte(doc), &tm); err != nil {
		t.Fatal(err)
	}
	if tm.Feed.Present() {
		t.Error("feed marked present on a legacy document")
	}
	if entries := tm.FeedEntries(); len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
