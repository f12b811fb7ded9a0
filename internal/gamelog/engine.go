package gamelog

import (
	"fmt"
	"log/slog"

	"github.com/moonball-archive/scorebook/internal/schema"
)

// OnUnparsable selects what classification does with text no grammar
// matches.
type OnUnparsable int

const (
	// Recover emits an Unrecognized variant carrying the raw text and
	// keeps going. This is the default: unparsable input is data, not an
	// error.
	Recover OnUnparsable = iota
	// FailFast aborts the game at the first unparsable event. Identity
	// mismatches (the ambiguous case) still recover even here, because
	// they are a known property of archived games, not grammar drift.
	FailFast
)

type Options struct {
	OnUnparsable OnUnparsable
	Logger       *slog.Logger
}

// Classifier turns raw events into structured messages, threading a
// game's context through the log in order.
type Classifier struct {
	ctx  *Context
	opts Options
	log  *slog.Logger
}

func NewClassifier(ctx *Context, opts Options) *Classifier {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Classifier{ctx: ctx, opts: opts, log: log}
}

// Context returns the live context, which callers may seed with
// additional known names before classification.
func (c *Classifier) Context() *Context { return c.ctx }

// UnparsableError reports an event no grammar matched, in fail-fast
// mode.
type UnparsableError struct {
	Index     int
	EventType string
	Message   string
}

func (e *UnparsableError) Error() string {
	return fmt.Sprintf("event %d (%s): no grammar matched %q", e.Index, e.EventType, e.Message)
}

// ClassifyEvent classifies one event and folds the result back into the
// context. index is the event's position in the log, used for error
// reporting.
func (c *Classifier) ClassifyEvent(index int, ev *Event) (schema.EventMessage, error) {
	c.ctx.Observe(ev)

	p := newParser(ev.Message, c.ctx)
	msg, ok := c.dispatch(p, ev)

	if !ok {
		if p.ambiguous {
			// An identity failed to resolve against the context. This is
			// recoverable by definition; the archived document and the
			// live text disagree about a name.
			c.log.Debug("ambiguous identity in event",
				"index", index, "event_type", ev.Event)
			return schema.Unrecognized{EventType: ev.Event, Text: ev.Message, Ambiguous: true}, nil
		}
		if c.opts.OnUnparsable == FailFast {
			return nil, &UnparsableError{Index: index, EventType: ev.Event, Message: ev.Message}
		}
		c.log.Warn("unparsable event",
			"index", index, "event_type", ev.Event, "message", ev.Message)
		return schema.Unrecognized{EventType: ev.Event, Text: ev.Message}, nil
	}

	c.ctx.Advance(msg)
	return msg, nil
}

func (c *Classifier) dispatch(p *parser, ev *Event) (schema.EventMessage, bool) {
	typ, known := schema.ParseGameEventType(ev.Event)
	if !known {
		return nil, false
	}
	switch typ {
	case schema.EventLiveNow:
		return p.liveNow()
	case schema.EventPitchingMatchup:
		return p.pitchingMatchup()
	case schema.EventAwayLineup:
		return p.lineup(schema.Away)
	case schema.EventHomeLineup:
		return p.lineup(schema.Home)
	case schema.EventPlayBall:
		return p.playBall()
	case schema.EventInningStart:
		return p.inningStart()
	case schema.EventNowBatting:
		return p.nowBatting()
	case schema.EventPitch:
		return p.pitch()
	case schema.EventField:
		return p.field()
	case schema.EventInningEnd:
		return p.inningEnd()
	case schema.EventMoundVisit:
		return p.moundVisit(c.pitchingEmoji(ev))
	case schema.EventGameOver:
		return p.gameOver()
	case schema.EventRecordkeeping:
		return p.recordkeeping()
	case schema.EventWeatherDelivery:
		return p.weatherDelivery()
	case schema.EventWeatherShipment:
		return p.weatherShipment()
	case schema.EventWeatherSpecialDelivery:
		return p.weatherSpecialDelivery()
	case schema.EventFallingStar:
		return p.fallingStar()
	case schema.EventWeather:
		return p.fallingStarOutcome()
	case schema.EventBalk:
		return p.balk()
	case schema.EventWeatherProsperity:
		return p.weatherProsperity()
	case schema.EventPhotoContest:
		return p.photoContest()
	case schema.EventParty:
		return p.party()
	case schema.EventWeatherReflection:
		return p.weatherReflection()
	}
	return nil, false
}

// pitchingEmoji resolves the emoji of the team currently pitching, used
// by the mound-visit grammar. Empty outside a live half-inning.
func (c *Classifier) pitchingEmoji(ev *Event) string {
	side, ok := ev.Side()
	if !ok {
		return ""
	}
	return c.ctx.TeamBySide(side.BattingSide().Flip()).Emoji
}
