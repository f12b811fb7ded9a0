// Package gamelog classifies raw play-by-play logs into structured
// events. Classification runs chronologically over a game's event log,
// carrying context (teams, the evolving set of known player names, the
// count) that later grammars resolve names against.
package gamelog

import (
	"strconv"
	"strings"

	"github.com/moonball-archive/scorebook/internal/schema"
)

// Game is a raw game document as served by the sim's archive API. Top
// level keys are PascalCase; event keys are snake_case.
type Game struct {
	AwaySP               string `json:"AwaySP"`
	AwayTeamAbbreviation string `json:"AwayTeamAbbreviation"`
	AwayTeamColor        string `json:"AwayTeamColor"`
	AwayTeamEmoji        string `json:"AwayTeamEmoji"`
	AwayTeamID           string `json:"AwayTeamID"`
	AwayTeamName         string `json:"AwayTeamName"`

	HomeSP               string `json:"HomeSP"`
	HomeTeamAbbreviation string `json:"HomeTeamAbbreviation"`
	HomeTeamColor        string `json:"HomeTeamColor"`
	HomeTeamEmoji        string `json:"HomeTeamEmoji"`
	HomeTeamID           string `json:"HomeTeamID"`
	HomeTeamName         string `json:"HomeTeamName"`

	Season int    `json:"Season"`
	Day    int    `json:"Day"`
	State  string `json:"State"`

	Weather Weather `json:"Weather"`

	EventLog []Event `json:"EventLog"`
}

type Weather struct {
	Emoji   string `json:"Emoji"`
	Name    string `json:"Name"`
	Tooltip string `json:"Tooltip"`
}

// Event is one raw entry of a game's event log.
type Event struct {
	// Inning is 0 before the game has started.
	Inning int `json:"inning"`
	// InningSide is 0 for the top, 1 for the bottom, 2 once the game is
	// over.
	InningSide int `json:"inning_side"`

	AwayScore int `json:"away_score"`
	HomeScore int `json:"home_score"`

	Balls   *int `json:"balls"`
	Strikes *int `json:"strikes"`
	Outs    *int `json:"outs"`

	On1B bool `json:"on_1b"`
	On2B bool `json:"on_2b"`
	On3B bool `json:"on_3b"`

	// OnDeck and Batter are empty before the game starts.
	OnDeck *string `json:"on_deck"`
	Batter *string `json:"batter"`

	// PitchInfo is empty when the event carries no pitch.
	PitchInfo string `json:"pitch_info"`

	Event   string `json:"event"`
	Message string `json:"message"`
}

// PitchInfo is the decoded form of an event's pitch annotation, e.g.
// "99.2 MPH Fastball". The pitch name is kept recognized-or-raw so a
// pitch type added upstream does not fail the whole event.
type PitchInfo struct {
	SpeedMPH float64
	Type     schema.Recognized[schema.PitchType]
}

// Pitch decodes the event's pitch annotation, if present.
func (e *Event) Pitch() (PitchInfo, bool) {
	speed, name, found := strings.Cut(e.PitchInfo, " MPH ")
	if !found {
		return PitchInfo{}, false
	}
	mph, err := strconv.ParseFloat(speed, 64)
	if err != nil {
		return PitchInfo{}, false
	}
	return PitchInfo{
		SpeedMPH: mph,
		Type:     schema.Recognize(name, schema.ParsePitchType),
	}, true
}

// Side reports which half of the inning the event belongs to. The
// second return is false for pre-game and post-game events.
func (e *Event) Side() (schema.TopBottom, bool) {
	switch e.InningSide {
	case 0:
		return schema.Top, true
	case 1:
		return schema.Bottom, true
	}
	return "", false
}
