package gamelog

import (
	"strings"

	"github.com/moonball-archive/scorebook/internal/schema"
	"github.com/moonball-archive/scorebook/internal/textparse"
)

// parser is one classification attempt over one event message. Rules
// backtrack by copying the scanner value; the ambiguous flag survives
// backtracking on purpose, because it records that some branch matched
// the text's shape but could not resolve an identity against the
// context.
type parser struct {
	s         textparse.Scanner
	ctx       *Context
	ambiguous bool
}

func newParser(text string, ctx *Context) *parser {
	return &parser{s: textparse.New(text), ctx: ctx}
}

// knownName consumes the longest context-known player name at the
// cursor that is followed by one of stops.
func (p *parser) knownName(stops ...string) (string, bool) {
	return p.s.AnyOfNames(p.ctx.Names(), stops...)
}

// nameUntil consumes a free-form player name terminated by stop. Because
// names themselves may contain the stop text ("Bob E. Quiros" against
// stop ". "), candidates are extended occurrence by occurrence until one
// passes name validation.
func (p *parser) nameUntil(stop string) (string, bool) {
	rest := p.s.Rest()
	from := 0
	for {
		i := strings.Index(rest[from:], stop)
		if i < 0 {
			return "", false
		}
		cand := rest[:from+i]
		if validName(cand) {
			p.s.Skip(from + i + len(stop))
			return cand, true
		}
		from += i + len(stop)
	}
}

// nameToEnd consumes the remainder as a name.
func (p *parser) nameToEnd() (string, bool) {
	if !validName(p.s.Rest()) {
		return "", false
	}
	return p.s.TakeRest(), true
}

func validName(s string) bool { return textparse.ValidName(s) }

// emojiTeamExact matches seg against the two context teams. A segment
// that starts with a known team emoji but does not complete into that
// team's name is the identity-mismatch case (a team renamed after the
// game document was written); it fails the grammar and flags the event
// ambiguous rather than guessing.
func (p *parser) emojiTeamExact(seg string) (schema.EmojiTeam, bool) {
	for _, t := range []schema.EmojiTeam{p.ctx.Away, p.ctx.Home} {
		if seg == t.Emoji+" "+t.Name {
			return t, true
		}
		if strings.HasPrefix(seg, t.Emoji+" ") {
			p.ambiguous = true
		}
	}
	return schema.EmojiTeam{}, false
}

// placedPlayerExact decodes a "POS Name" segment. A recognized position
// followed by an implausible name is flagged ambiguous, mirroring the
// team case: the position committed us to this reading.
func (p *parser) placedPlayerExact(seg string) (schema.PlacedPlayer, bool) {
	posStr, name, found := strings.Cut(seg, " ")
	if !found {
		return schema.PlacedPlayer{}, false
	}
	pos, ok := schema.ParsePosition(posStr)
	if !ok {
		return schema.PlacedPlayer{}, false
	}
	if !validName(name) {
		p.ambiguous = true
		return schema.PlacedPlayer{}, false
	}
	return schema.PlacedPlayer{Position: pos, Name: name}, true
}

// placedPlayerUntil consumes a "POS Name" run terminated by stop,
// extending across stop occurrences inside the name the same way
// nameUntil does.
func (p *parser) placedPlayerUntil(stop string) (schema.PlacedPlayer, bool) {
	rest := p.s.Rest()
	from := 0
	for {
		i := strings.Index(rest[from:], stop)
		if i < 0 {
			return schema.PlacedPlayer{}, false
		}
		save := p.ambiguous
		pl, ok := p.placedPlayerExact(rest[:from+i])
		if ok {
			p.s.Skip(from + i + len(stop))
			return pl, true
		}
		p.ambiguous = save
		from += i + len(stop)
	}
}

// fieldersUntil consumes a "POS Name to POS Name ..." chain terminated
// by stop. An optional trailing "unassisted" marker is absorbed.
func (p *parser) fieldersUntil(stop string) ([]schema.PlacedPlayer, bool) {
	rest := p.s.Rest()
	from := 0
	for {
		i := strings.Index(rest[from:], stop)
		if i < 0 {
			return nil, false
		}
		seg := strings.TrimSuffix(rest[:from+i], " unassisted")
		if fielders, ok := p.splitFielders(seg); ok {
			p.s.Skip(from + i + len(stop))
			return fielders, true
		}
		from += i + len(stop)
	}
}

func (p *parser) splitFielders(seg string) ([]schema.PlacedPlayer, bool) {
	parts := strings.Split(seg, " to ")
	fielders := make([]schema.PlacedPlayer, 0, len(parts))
	save := p.ambiguous
	for _, part := range parts {
		pl, ok := p.placedPlayerExact(part)
		if !ok {
			p.ambiguous = save
			return nil, false
		}
		fielders = append(fielders, pl)
	}
	return fielders, true
}

// runnerOut consumes one "{runner} out at {base}." sentence, preserving
// the base spelling the sim used.
func (p *parser) runnerOut() (schema.RunnerOut, bool) {
	save := p.s
	runner, ok := p.knownName(" out at ")
	if !ok {
		return schema.RunnerOut{}, false
	}
	p.s.Tag(" out at ")
	spellingRaw, ok := p.s.Until(".")
	if !ok {
		p.s = save
		return schema.RunnerOut{}, false
	}
	base, spelling, ok := schema.ParseBaseVariant(spellingRaw)
	if !ok {
		p.s = save
		return schema.RunnerOut{}, false
	}
	return schema.RunnerOut{Runner: runner, Base: base, BaseSpelling: spelling}, true
}

// scoresAndAdvances consumes the trailing run of scoring and advancing
// sentences: zero or more "<strong>{runner} scores!</strong>" then
// "{runner} to {base} base." entries, in any interleaving.
func (p *parser) scoresAndAdvances() (scores []string, advances []schema.RunnerAdvance) {
	for {
		save := p.s
		if !p.s.Tag(" ") {
			return
		}
		if p.s.Tag("<strong>") {
			runner, ok := p.knownName(" scores!</strong>")
			if ok && p.s.Tag(" scores!</strong>") {
				scores = append(scores, runner)
				continue
			}
			p.s = save
			return
		}
		runner, ok := p.knownName(" to ")
		if !ok {
			p.s = save
			return
		}
		p.s.Tag(" to ")
		spelling, ok := p.s.Until(" base.")
		if !ok {
			p.s = save
			return
		}
		base, _, ok := schema.ParseBaseVariant(spelling)
		if !ok {
			p.s = save
			return
		}
		advances = append(advances, schema.RunnerAdvance{Runner: runner, Base: base})
	}
}

// scoreSentences consumes only scoring sentences, for the home-run tail
// where advances cannot occur.
func (p *parser) scoreSentences() []string {
	var scores []string
	for {
		save := p.s
		if !p.s.Tag(" <strong>") {
			return scores
		}
		runner, ok := p.knownName(" scores!</strong>")
		if !ok || !p.s.Tag(" scores!</strong>") {
			p.s = save
			return scores
		}
		scores = append(scores, runner)
	}
}

// steals consumes the trailing run of base-steal sentences. A steal of
// home is rendered bold by the sim.
func (p *parser) steals() []schema.BaseSteal {
	var out []schema.BaseSteal
	for {
		save := p.s
		if !p.s.Tag(" ") {
			return out
		}
		bold := p.s.Tag("<strong>")

		if runner, ok := p.knownName(" steals "); ok {
			p.s.Tag(" steals ")
			end := "!"
			if bold {
				end = "!</strong>"
			}
			spelling, ok := p.s.Until(end)
			if ok {
				if base, _, ok := schema.ParseBaseVariant(spelling); ok {
					out = append(out, schema.BaseSteal{Runner: runner, Base: base, Success: true})
					continue
				}
			}
			p.s = save
			return out
		}

		if runner, ok := p.knownName(" is caught stealing "); !bold && ok {
			p.s.Tag(" is caught stealing ")
			spelling, ok := p.s.Until(".")
			if ok {
				if base, _, ok := schema.ParseBaseVariant(spelling); ok {
					out = append(out, schema.BaseSteal{Runner: runner, Base: base, Success: false})
					continue
				}
			}
		}
		p.s = save
		return out
	}
}

// count consumes a "{balls}-{strikes}." pitch count.
func (p *parser) count() (balls, strikes int, ok bool) {
	save := p.s
	balls, ok = p.s.Int()
	if !ok || !p.s.Tag("-") {
		p.s = save
		return 0, 0, false
	}
	strikes, ok = p.s.Int()
	if !ok || !p.s.Tag(".") {
		p.s = save
		return 0, 0, false
	}
	return balls, strikes, true
}

// fairBallWords consumes a contact type spelled out in words, which may
// be one word ("popup") or two ("ground ball").
func (p *parser) fairBallWords(stop string) (schema.FairBallType, bool) {
	save := p.s
	seg, ok := p.s.Until(stop)
	if !ok {
		return "", false
	}
	typ, ok := schema.ParseFairBallType(seg)
	if !ok {
		p.s = save
		return "", false
	}
	return typ, true
}

// item consumes an item reference: emoji, optional prefix, a known base
// name, optional suffix, terminated by stop.
func (p *parser) item(stop string) (schema.Item, bool) {
	save := p.s
	seg, ok := p.s.Until(stop)
	if !ok {
		return schema.Item{}, false
	}
	emoji, rest, found := strings.Cut(seg, " ")
	if !found {
		p.s = save
		return schema.Item{}, false
	}
	item, ok := schema.ParseEmojilessItem(rest)
	if !ok {
		p.s = save
		return schema.Item{}, false
	}
	return schema.Item{Emoji: emoji, Prefix: item.Prefix, Name: item.Name, Suffix: item.Suffix}, true
}

// delivery consumes one "{player} received a {item} {label}." sentence
// with an optional discard tail.
func (p *parser) delivery(label string) (schema.Delivery, bool) {
	save := p.s
	player, ok := p.nameUntil(" received a ")
	if !ok {
		return schema.Delivery{}, false
	}
	item, ok := p.item(" " + label + ".")
	if !ok {
		p.s = save
		return schema.Delivery{}, false
	}
	d := schema.Delivery{Player: player, Item: item}

	discard := p.s
	if p.s.Tag(" They discarded their ") {
		if dropped, ok := p.item("."); ok {
			d.Discarded = &dropped
		} else {
			p.s = discard
		}
	}
	return d, true
}

// ejectionTail consumes the optional ROBO-UMP sentence a pitch or
// fielding outcome may carry. It returns nil without advancing when no
// well-formed tail is present; callers then fail on the Done check if
// trailing text remains.
func (p *parser) ejectionTail() *schema.Ejection {
	save := p.s
	if !p.s.Tag(" 🤖 ROBO-UMP ") {
		return nil
	}

	if p.s.Tag("attempted an ejection, but ") {
		if n1, ok := p.nameUntil(", "); ok {
			if n2, ok := p.nameUntil(" would not budge."); ok {
				return &schema.Ejection{Failed: true, FailedPlayers: []string{n1, n2}}
			}
		}
		p.s = save
		return nil
	}

	if !p.s.Tag("ejected ") {
		p.s = save
		return nil
	}
	var team schema.EmojiTeam
	switch {
	case p.s.Tag(p.ctx.Away.Emoji + " " + p.ctx.Away.Name + " "):
		team = p.ctx.Away
	case p.s.Tag(p.ctx.Home.Emoji + " " + p.ctx.Home.Name + " "):
		team = p.ctx.Home
	default:
		for _, t := range []schema.EmojiTeam{p.ctx.Away, p.ctx.Home} {
			if strings.HasPrefix(p.s.Rest(), t.Emoji+" ") {
				p.ambiguous = true
			}
		}
		p.s = save
		return nil
	}
	player, ok := p.placedPlayerUntil(" for a ")
	if !ok {
		p.s = save
		return nil
	}
	word, ok := p.s.Until(" Violation (")
	if !ok {
		p.s = save
		return nil
	}
	violation, ok := schema.ParseViolationType(word)
	if !ok {
		p.s = save
		return nil
	}
	reason, ok := p.s.Until("). ")
	if !ok {
		p.s = save
		return nil
	}
	ej := &schema.Ejection{Team: team, Player: player, Violation: violation, Reason: reason}

	if p.s.Tag("Bench Player ") {
		if name, ok := p.nameUntil(" takes their place."); ok {
			ej.BenchReplacement = name
			return ej
		}
		p.s = save
		return nil
	}
	if p.s.Tag(team.Emoji + " ") {
		if repl, ok := p.placedPlayerUntil(" takes the mound."); ok {
			ej.RosterReplacement = &repl
			return ej
		}
	}
	p.s = save
	return nil
}

// nowBattingStats decodes the parenthesized summary on a batter intro:
// "1st PA of game", or a comma-separated stat list like
// "2 for 3, 1 HR, 2 RBI".
func parseNowBattingStats(seg string) (schema.NowBattingStats, bool) {
	if seg == "1st PA of game" {
		return schema.NowBattingStats{FirstPA: true}, true
	}
	var stats []schema.BatterStat
	for _, part := range strings.Split(seg, ", ") {
		s := textparse.New(part)
		count, ok := s.Int()
		if !ok {
			return schema.NowBattingStats{}, false
		}
		if s.Tag(" for ") {
			atBats, ok := s.Int()
			if !ok || !s.Done() {
				return schema.NowBattingStats{}, false
			}
			stats = append(stats, schema.BatterStat{Count: count, AtBats: atBats})
			continue
		}
		if !s.Tag(" ") {
			return schema.NowBattingStats{}, false
		}
		label := s.TakeRest()
		if label == "" {
			return schema.NowBattingStats{}, false
		}
		stats = append(stats, schema.BatterStat{Label: label, Count: count})
	}
	return schema.NowBattingStats{Stats: stats}, true
}
