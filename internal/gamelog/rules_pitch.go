package gamelog

import "github.com/moonball-archive/scorebook/internal/schema"

// Rules for the Pitch event type. Alternatives are tried most specific
// first; each consumes the whole message or leaves the parser reset.

func (p *parser) pitch() (schema.EventMessage, bool) {
	rules := []func() (schema.EventMessage, bool){
		p.strikeOut,
		p.walk,
		p.ball,
		p.strike,
		p.foul,
		p.fairBall,
		p.hitByPitch,
	}
	for _, rule := range rules {
		save := p.s
		if msg, ok := rule(); ok {
			return msg, true
		}
		p.s = save
	}
	return nil, false
}

// strikeOutText matches both tenses the sim has used for strike three.
func (p *parser) strikeOutText() (string, bool) {
	if p.ctx.Season < 1 {
		return p.nameUntil(" struck out ")
	}
	return p.nameUntil(" strikes out ")
}

func (p *parser) strikeOut() (schema.EventMessage, bool) {
	var foul *schema.FoulType
	save := p.s
	if p.s.Tag("Foul ") {
		if word, ok := p.s.OneOf("tip", "ball"); ok && p.s.Tag(". ") {
			f, _ := schema.ParseFoulType(word)
			foul = &f
		} else {
			p.s = save
		}
	}

	batter, ok := p.strikeOutText()
	if !ok {
		return nil, false
	}
	word, ok := p.s.OneOf("looking", "swinging")
	if !ok || !p.s.Tag(".") {
		return nil, false
	}
	strike, _ := schema.ParseStrikeType(word)
	steals := p.steals()
	ej := p.ejectionTail()
	if !p.s.Done() {
		return nil, false
	}
	return schema.StrikeOut{Foul: foul, Batter: batter, Strike: strike, Steals: steals, Ejection: ej}, true
}

func (p *parser) walk() (schema.EventMessage, bool) {
	if !p.s.Tag("Ball 4. ") {
		return nil, false
	}
	batter, ok := p.nameUntil(" walks.")
	if !ok {
		return nil, false
	}
	scores, advances := p.scoresAndAdvances()
	ej := p.ejectionTail()
	if !p.s.Done() {
		return nil, false
	}
	return schema.Walk{Batter: batter, Scores: scores, Advances: advances, Ejection: ej}, true
}

func (p *parser) ball() (schema.EventMessage, bool) {
	if !p.s.Tag("Ball. ") {
		return nil, false
	}
	balls, strikes, ok := p.count()
	if !ok {
		return nil, false
	}
	steals := p.steals()
	ej := p.ejectionTail()
	if !p.s.Done() {
		return nil, false
	}
	return schema.Ball{Balls: balls, Strikes: strikes, Steals: steals, Ejection: ej}, true
}

func (p *parser) strike() (schema.EventMessage, bool) {
	if !p.s.Tag("Strike, ") {
		return nil, false
	}
	word, ok := p.s.OneOf("looking", "swinging")
	if !ok || !p.s.Tag(". ") {
		return nil, false
	}
	strike, _ := schema.ParseStrikeType(word)
	balls, strikes, ok := p.count()
	if !ok {
		return nil, false
	}
	steals := p.steals()
	ej := p.ejectionTail()
	if !p.s.Done() {
		return nil, false
	}
	return schema.Strike{Strike: strike, Balls: balls, Strikes: strikes, Steals: steals, Ejection: ej}, true
}

func (p *parser) foul() (schema.EventMessage, bool) {
	if !p.s.Tag("Foul ") {
		return nil, false
	}
	word, ok := p.s.OneOf("tip", "ball")
	if !ok || !p.s.Tag(". ") {
		return nil, false
	}
	foul, _ := schema.ParseFoulType(word)
	balls, strikes, ok := p.count()
	if !ok {
		return nil, false
	}
	steals := p.steals()
	if !p.s.Done() {
		return nil, false
	}
	return schema.Foul{Foul: foul, Balls: balls, Strikes: strikes, Steals: steals}, true
}

func (p *parser) fairBall() (schema.EventMessage, bool) {
	batter, ok := p.nameUntil(" hits a ")
	if !ok {
		return nil, false
	}
	typ, ok := p.fairBallWords(" to ")
	if !ok {
		return nil, false
	}
	seg, ok := p.s.Until(".")
	if !ok || !p.s.Done() {
		return nil, false
	}
	dest, ok := schema.ParseFairBallDestination(seg)
	if !ok {
		return nil, false
	}
	return schema.FairBall{Batter: batter, Type: typ, Destination: dest}, true
}

func (p *parser) hitByPitch() (schema.EventMessage, bool) {
	// Both tenses have appeared across seasons.
	batter, ok := p.nameUntil(" was hit by the pitch and advances to first base.")
	if !ok {
		batter, ok = p.nameUntil(" is hit by the pitch and advances to first base.")
	}
	if !ok {
		return nil, false
	}
	scores, advances := p.scoresAndAdvances()
	ej := p.ejectionTail()
	if !p.s.Done() {
		return nil, false
	}
	return schema.HitByPitch{Batter: batter, Scores: scores, Advances: advances, Ejection: ej}, true
}
