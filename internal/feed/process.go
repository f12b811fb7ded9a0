package feed

import (
	"fmt"
	"log/slog"

	"github.com/moonball-archive/scorebook/internal/schema"
)

// OnUnparsable selects what batch classification does when a known
// tag's templates do not match an entry's text.
type OnUnparsable int

const (
	// Recover keeps the Verbatim fallback and moves on. This is the
	// default: older entries routinely predate the current templates.
	Recover OnUnparsable = iota
	// FailFast aborts the batch at the first known-tag entry whose text
	// no template covers. Entries with an absent or unknown tag still
	// recover even here; those are schema gaps, not grammar drift.
	FailFast
)

type Options struct {
	OnUnparsable OnUnparsable
	Logger       *slog.Logger
}

// UnparsableError reports a feed entry whose tag is known but whose
// text matched none of the tag's templates, in fail-fast mode.
type UnparsableError struct {
	Index int
	Tag   string
	Text  string
}

func (e *UnparsableError) Error() string {
	return fmt.Sprintf("feed entry %d (%s): no template matched %q", e.Index, e.Tag, e.Text)
}

// ClassifyFeed classifies a whole feed. The result is aligned 1:1 with
// the input; an empty feed yields an empty result.
func ClassifyFeed(entries []Entry, opts Options) ([]schema.FeedMessage, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	out := make([]schema.FeedMessage, 0, len(entries))
	for i, e := range entries {
		msg := ClassifyFeedEvent(e)
		if v, ok := msg.(schema.Verbatim); ok && v.Tag != "" {
			if _, known := schema.ParseFeedEventType(v.Tag); known {
				if opts.OnUnparsable == FailFast {
					return nil, &UnparsableError{Index: i, Tag: v.Tag, Text: v.Text}
				}
				log.Warn("feed entry did not match its tag's templates",
					"index", i, "tag", v.Tag)
			}
		}
		out = append(out, msg)
	}
	return out, nil
}
