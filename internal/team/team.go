// Package team models the subset of the sim's team documents that
// classification needs: identity, roster, and the feed history.
package team

import (
	"github.com/moonball-archive/scorebook/internal/feed"
	"github.com/moonball-archive/scorebook/internal/schema"
)

// Team is a raw team document. Keys are PascalCase upstream; fields the
// classifier never reads are dropped on decode.
type Team struct {
	ID            string `json:"_id,omitempty"`
	Abbreviation  string `json:"Abbreviation"`
	Active        bool   `json:"Active"`
	Augments      int    `json:"Augments"`
	Championships int    `json:"Championships"`
	Color         string `json:"Color"`
	Emoji         string `json:"Emoji"`

	Location     string `json:"Location"`
	FullLocation string `json:"FullLocation"`
	League       string `json:"League"`
	Name         string `json:"Name"`

	OwnerID string `json:"OwnerID,omitempty"`

	Players []Player `json:"Players"`

	// Feed is absent on documents captured before feed tracking existed.
	Feed schema.Versioned[[]feed.Entry] `json:"Feed"`
}

// Player is one roster entry on a team document.
type Player struct {
	Emoji     string `json:"Emoji"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Number    int    `json:"Number"`
	PlayerID  string `json:"PlayerID"`
	Position  string `json:"Position"`
	Slot      string `json:"Slot,omitempty"`
}

func (p Player) Name() string {
	return p.FirstName + " " + p.LastName
}

// EmojiTeam returns the identity used to resolve this team in game-log
// text.
func (t *Team) EmojiTeam() schema.EmojiTeam {
	return schema.EmojiTeam{Emoji: t.Emoji, Name: t.Name}
}

// FeedEntries returns the feed, or an empty list on documents that
// predate feed tracking. Never an error; an old team simply has no
// recorded history.
func (t *Team) FeedEntries() []feed.Entry {
	return t.Feed.Or(nil)
}
