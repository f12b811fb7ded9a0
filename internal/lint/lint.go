// Package lint measures classification quality: it collects the inputs
// the grammars could not classify and replays classified feed entries
// back into text to catch templates that extract the wrong fields.
package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/moonball-archive/scorebook/internal/feed"
	"github.com/moonball-archive/scorebook/internal/gamelog"
	"github.com/moonball-archive/scorebook/internal/schema"
)

// Item is one input that fell back to its unrecognized variant.
type Item struct {
	Index     int    `json:"index"`
	EventType string `json:"event_type,omitempty"`
	Text      string `json:"text"`
	Ambiguous bool   `json:"ambiguous,omitempty"`
}

// GameReport summarizes one game's classification quality.
type GameReport struct {
	GameID       string `json:"game_id"`
	Events       int    `json:"events"`
	Unrecognized []Item `json:"unrecognized,omitempty"`
}

// Clean reports whether every event classified.
func (r GameReport) Clean() bool { return len(r.Unrecognized) == 0 }

// LintGame collects the events that fell back to Unrecognized.
func LintGame(gameID string, events []gamelog.ParsedEvent) GameReport {
	report := GameReport{GameID: gameID, Events: len(events)}
	for _, ev := range events {
		if u, ok := ev.Message.(schema.Unrecognized); ok {
			report.Unrecognized = append(report.Unrecognized, Item{
				Index:     ev.Index,
				EventType: u.EventType,
				Text:      u.Text,
				Ambiguous: u.Ambiguous,
			})
		}
	}
	return report
}

// Group is a cluster of findings sharing an event type and a normalized
// text shape. A new upstream phrasing forms one group no matter how many
// documents it appears in, which is what makes sweep output reviewable.
type Group struct {
	EventType string `json:"event_type,omitempty"`
	Shape     string `json:"shape"`
	Count     int    `json:"count"`
	Example   string `json:"example"`
}

// Aggregate groups findings by event type and shape, most frequent
// first. Ties order by shape for stable output.
func Aggregate(items []Item) []Group {
	byKey := map[string]*Group{}
	for _, it := range items {
		shape := normalizeShape(it.Text)
		key := it.EventType + "\x00" + shape
		g, ok := byKey[key]
		if !ok {
			g = &Group{EventType: it.EventType, Shape: shape, Example: it.Text}
			byKey[key] = g
		}
		g.Count++
	}
	out := make([]Group, 0, len(byKey))
	for _, g := range byKey {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Shape < out[j].Shape
	})
	return out
}

// normalizeShape masks digit runs so texts differing only in scores,
// counts, or speeds share a shape.
func normalizeShape(text string) string {
	var sb strings.Builder
	inDigits := false
	for _, r := range text {
		if r >= '0' && r <= '9' {
			if !inDigits {
				sb.WriteByte('#')
				inDigits = true
			}
			continue
		}
		inDigits = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// Drift is a classified feed entry whose reconstruction does not
// reproduce the original text. The template matched but extracted or
// reassembled fields wrongly, which is the kind of bug a match/no-match
// count never shows.
type Drift struct {
	Index int    `json:"index"`
	Want  string `json:"want"`
	Got   string `json:"got"`
}

// FeedReport summarizes one entity feed's classification quality.
type FeedReport struct {
	EntityType string  `json:"entity_type"`
	EntityID   string  `json:"entity_id"`
	Entries    int     `json:"entries"`
	Verbatim   []Item  `json:"verbatim,omitempty"`
	Drift      []Drift `json:"drift,omitempty"`
}

func (r FeedReport) Clean() bool {
	return len(r.Verbatim) == 0 && len(r.Drift) == 0
}

// LintFeed checks one entity's classified feed against its raw entries.
// Entries whose tag is absent or unknown are not findings; the schema
// simply has no template for them yet. Entries in a historical spelling
// reconstruct to the current one and surface as drift, which is useful
// when deciding whether a feed needs reclassification. msgs must align
// 1:1 with entries.
func LintFeed(entityType, entityID string, entries []feed.Entry, msgs []schema.FeedMessage) (FeedReport, error) {
	if len(entries) != len(msgs) {
		return FeedReport{}, fmt.Errorf("feed misaligned: %d entries, %d messages", len(entries), len(msgs))
	}
	report := FeedReport{EntityType: entityType, EntityID: entityID, Entries: len(entries)}
	for i, m := range msgs {
		if v, ok := m.(schema.Verbatim); ok {
			if v.Tag == "" {
				continue
			}
			if _, known := schema.ParseFeedEventType(v.Tag); !known {
				continue
			}
			report.Verbatim = append(report.Verbatim, Item{
				Index:     i,
				EventType: v.Tag,
				Text:      v.Text,
			})
			continue
		}
		if got := schema.UnparseFeed(m); got != entries[i].Text {
			report.Drift = append(report.Drift, Drift{Index: i, Want: entries[i].Text, Got: got})
		}
	}
	return report, nil
}
