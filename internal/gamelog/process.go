package gamelog

import "github.com/moonball-archive/scorebook/internal/schema"

// ParsedEvent pairs a classified message with the raw event it came
// from. Index is the event's position in the game's log.
type ParsedEvent struct {
	Index   int                 `json:"index"`
	Kind    schema.EventKind    `json:"kind"`
	Message schema.EventMessage `json:"message"`
	Raw     *Event              `json:"-"`
}

// ProcessGame classifies a whole game's event log in order. The result
// aligns one to one with the input log: every raw event yields exactly
// one parsed event, with unmatched text surfacing as Unrecognized rather
// than being dropped. In fail-fast mode the first unparsable event
// aborts with an UnparsableError.
func ProcessGame(g *Game, opts Options) ([]ParsedEvent, error) {
	classifier := NewClassifier(NewContext(g), opts)
	out := make([]ParsedEvent, 0, len(g.EventLog))
	for i := range g.EventLog {
		ev := &g.EventLog[i]
		msg, err := classifier.ClassifyEvent(i, ev)
		if err != nil {
			return nil, err
		}
		out = append(out, ParsedEvent{
			Index:   i,
			Kind:    msg.Kind(),
			Message: msg,
			Raw:     ev,
		})
	}
	return out, nil
}
