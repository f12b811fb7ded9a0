// Package player models the subset of the sim's player documents that
// classification needs: identity, position, and the feed history.
package player

import (
	"github.com/moonball-archive/scorebook/internal/feed"
	"github.com/moonball-archive/scorebook/internal/schema"
)

// Player is a raw player document. Keys are PascalCase upstream; fields
// the classifier never reads are dropped on decode.
type Player struct {
	ID        string `json:"_id,omitempty"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Number    int    `json:"Number"`

	Birthseason int    `json:"Birthseason"`
	Home        string `json:"Home"`

	// Position is kept raw; names may post-date the compiled vocabulary.
	Position string `json:"Position"`

	// TeamID is empty for players not on a roster.
	TeamID string `json:"TeamID,omitempty"`

	// Feed is absent on documents captured before feed tracking existed.
	Feed schema.Versioned[[]feed.Entry] `json:"Feed"`
}

func (p *Player) Name() string {
	return p.FirstName + " " + p.LastName
}

// PositionKind classifies the raw position against the compiled
// vocabulary, preserving unknown names.
func (p *Player) PositionKind() schema.Recognized[schema.Position] {
	return schema.Recognize(p.Position, schema.ParsePosition)
}

// FeedEntries returns the feed, or an empty list on documents that
// predate feed tracking.
func (p *Player) FeedEntries() []feed.Entry {
	return p.Feed.Or(nil)
}
