package player

import (
	"encoding/json"
	"testing"

	"github.com/moonball-archive/scorebook/internal/schema"
)

func TestDecode(t *testing.T) {
	doc := `{
		"_id": "p1",
		"FirstName": "Mina",
		"LastName": "Park",
		"Number": 7,
		"Birthseason": 1,
		"Home": "Reef City",
		"Position": "P",
		"TeamID": "team1",
		"Feed": [
			{"emoji": "🦈", "season": 2, "day": "Superstar Break", "status": "regular", "text": "Mina Park gained +5 Aiming.", "ts": "2025-06-01T12:00:00Z", "type": "augment", "links": []}
		]
	}`
	var p Player
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatal(err)
	}
	if p.Name() != "Mina Park" {
		t.Errorf("Name() = %q", p.Name())
	}
	pos := p.PositionKind()
	if !pos.Known() || pos.Value() != schema.Pitcher {
		t.Errorf("position = %+v", pos)
	}
	entries := p.FeedEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Day.String() != "Superstar Break" {
		t.Errorf("day = %q", entries[0].Day)
	}
}

func TestDecodeLegacy(t *testing.T) {
	doc := `{"FirstName": "Mina", "LastName": "Park", "Position": "Quokka Whisperer"}`
	var p Player
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatal(err)
	}
	if pos := p.PositionKind(); pos.Known() {
		t.Errorf("unknown position recognized: %+v", pos)
	} else if pos.Raw() != "Quokka Whisperer" {
		t.Errorf("raw position = %q", pos.Raw())
	}
	if entries := p.FeedEntries(); len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
