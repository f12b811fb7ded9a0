package gamelog

import "github.com/moonball-archive/scorebook/internal/schema"

// Rules for the Field event type: every way a ball in play resolves.

func (p *parser) field() (schema.EventMessage, bool) {
	rules := []func() (schema.EventMessage, bool){
		p.batterToBase,
		p.homeRun,
		p.grandSlam,
		p.groundedOut,
		p.caughtOut,
		p.forceOut,
		p.fieldersChoiceOut,
		p.fieldersChoiceError,
		p.reachOnError,
		p.doublePlayGrounded,
		p.doublePlayCaught,
		p.firstBasemanGhost,
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

func (p *parser) batterToBase() (schema.EventMessage, bool) {
	for _, verb := range []string{"singles", "doubles", "triples"} {
		save := p.s
		batter, ok := p.nameUntil(" " + verb + " on a ")
		if !ok {
			p.s = save
			continue
		}
		distance, _ := schema.ParseDistance(verb)
		typ, ok := p.fairBallWords(" to ")
		if !ok {
			p.s = save
			continue
		}
		fielder, ok := p.placedPlayerUntil(".")
		if !ok {
			p.s = save
			continue
		}
		scores, advances := p.scoresAndAdvances()
		ej := p.ejectionTail()
		if !p.s.Done() {
			p.s = save
			continue
		}
		return schema.BatterToBase{
			Batter:   batter,
			Distance: distance,
			Type:     typ,
			Fielder:  fielder,
			Scores:   scores,
			Advances: advances,
			Ejection: ej,
		}, true
	}
	return nil, false
}

func (p *parser) homeRun() (schema.EventMessage, bool) {
	return p.homeRunText(" homers on a ", false)
}

func (p *parser) grandSlam() (schema.EventMessage, bool) {
	return p.homeRunText(" hits a grand slam on a ", true)
}

func (p *parser) homeRunText(verb string, grandSlam bool) (schema.EventMessage, bool) {
	if !p.s.Tag("<strong>") {
		return nil, false
	}
	batter, ok := p.nameUntil(verb)
	if !ok {
		return nil, false
	}
	typ, ok := p.fairBallWords(" to ")
	if !ok {
		return nil, false
	}
	seg, ok := p.s.Until("!</strong>")
	if !ok {
		return nil, false
	}
	dest, ok := schema.ParseFairBallDestination(seg)
	if !ok {
		return nil, false
	}
	scores := p.scoreSentences()
	ej := p.ejectionTail()
	if !p.s.Done() {
		return nil, false
	}
	return schema.HomeRun{
		Batter:      batter,
		Type:        typ,
		Destination: dest,
		Scores:      scores,
		GrandSlam:   grandSlam,
		Ejection:    ej,
	}, true
}

func (p *parser) groundedOut() (schema.EventMessage, bool) {
	batter, ok := p.nameUntil(" grounds out")
	if !ok {
		return nil, false
	}
	var fielders []schema.PlacedPlayer
	if p.s.Tag(" to ") {
		fielder, ok := p.placedPlayerUntil(".")
		if !ok {
			return nil, false
		}
		fielders = []schema.PlacedPlayer{fielder}
	} else if p.s.Tag(", ") {
		fielders, ok = p.fieldersUntil(".")
		if !ok {
			return nil, false
		}
	} else {
		return nil, false
	}
	scores, advances := p.scoresAndAdvances()
	ej := p.ejectionTail()
	amazing := p.amazingThrow()
	if !p.s.Done() {
		return nil, false
	}
	return schema.GroundedOut{
		Batter:   batter,
		Fielders: fielders,
		Amazing:  amazing,
		Scores:   scores,
		Advances: advances,
		Ejection: ej,
	}, true
}

// amazingThrow consumes the bold flourish appended to a standout
// grounder. The wording changed from "Perfect catch" in season 5.
func (p *parser) amazingThrow() bool {
	save := p.s
	marker := " <strong>Amazing throw!</strong>"
	if p.ctx.Season < 5 {
		marker = " <strong>Perfect catch!</strong>"
	}
	if p.s.Tag(marker) {
		return true
	}
	p.s = save
	return false
}

func (p *parser) caughtOut() (schema.EventMessage, bool) {
	for _, verb := range []string{"flies", "lines", "pops"} {
		save := p.s
		batter, ok := p.nameUntil(" " + verb + " out ")
		if !ok {
			p.s = save
			continue
		}
		typ, _ := schema.ParseFairBallVerb(verb)
		sacrifice := p.s.Tag("on a sacrifice fly ")
		if !p.s.Tag("to ") {
			p.s = save
			continue
		}
		caughtBy, ok := p.placedPlayerUntil(".")
		if !ok {
			p.s = save
			continue
		}
		scores, advances := p.scoresAndAdvances()
		perfect := p.s.Tag(" <strong>Perfect catch!</strong>")
		ej := p.ejectionTail()
		if !p.s.Done() {
			p.s = save
			continue
		}
		return schema.CaughtOut{
			Batter:    batter,
			Type:      typ,
			CaughtBy:  caughtBy,
			Sacrifice: sacrifice,
			Perfect:   perfect,
			Scores:    scores,
			Advances:  advances,
			Ejection:  ej,
		}, true
	}
	return nil, false
}

func (p *parser) forceOut() (schema.EventMessage, bool) {
	for _, verb := range []string{"grounds", "grounded", "flies", "lines", "pops"} {
		save := p.s
		batter, ok := p.nameUntil(" " + verb + " into a force out, ")
		if !ok {
			p.s = save
			continue
		}
		typ, _ := schema.ParseFairBallVerb(verb)
		fielders, ok := p.fieldersUntil(". ")
		if !ok {
			p.s = save
			continue
		}
		out, ok := p.runnerOut()
		if !ok {
			p.s = save
			continue
		}
		scores, advances := p.scoresAndAdvances()
		ej := p.ejectionTail()
		if !p.s.Done() {
			p.s = save
			continue
		}
		return schema.ForceOut{
			Batter:   batter,
			Type:     typ,
			Fielders: fielders,
			Out:      out,
			Scores:   scores,
			Advances: advances,
			Ejection: ej,
		}, true
	}
	return nil, false
}

func (p *parser) fieldersChoiceOut() (schema.EventMessage, bool) {
	batter, ok := p.nameUntil(" reaches on a fielder's choice out, ")
	if !ok {
		return nil, false
	}
	fielders, ok := p.fieldersUntil(". ")
	if !ok {
		return nil, false
	}
	out, ok := p.runnerOut()
	if !ok {
		return nil, false
	}
	scores, advances := p.scoresAndAdvances()
	ej := p.ejectionTail()
	if !p.s.Done() {
		return nil, false
	}
	return schema.ReachOnFieldersChoice{
		Batter:   batter,
		Fielders: fielders,
		Result:   schema.FieldingAttempt{Out: &out},
		Scores:   scores,
		Advances: advances,
		Ejection: ej,
	}, true
}

func (p *parser) fieldersChoiceError() (schema.EventMessage, bool) {
	batter, ok := p.nameUntil(" reaches on a fielder's choice, fielded by ")
	if !ok {
		return nil, false
	}
	fielder, ok := p.placedPlayerUntil(".")
	if !ok {
		return nil, false
	}
	scores, advances := p.scoresAndAdvances()
	if !p.s.Tag(" ") {
		return nil, false
	}
	errWord, ok := p.s.Until(" error by ")
	if !ok {
		return nil, false
	}
	errType, ok := schema.ParseFieldingErrorType(errWord)
	if !ok {
		return nil, false
	}
	errFielder, ok := p.nameUntil(".")
	if !ok {
		return nil, false
	}
	ej := p.ejectionTail()
	if !p.s.Done() {
		return nil, false
	}
	return schema.ReachOnFieldersChoice{
		Batter:   batter,
		Fielders: []schema.PlacedPlayer{fielder},
		Result: schema.FieldingAttempt{
			Error:        &errType,
			ErrorFielder: errFielder,
		},
		Scores:   scores,
		Advances: advances,
		Ejection: ej,
	}, true
}

func (p *parser) reachOnError() (schema.EventMessage, bool) {
	batter, ok := p.nameUntil(" reaches on a ")
	if !ok {
		return nil, false
	}
	errWord, ok := p.s.Until(" error by ")
	if !ok {
		return nil, false
	}
	errType, ok := schema.ParseFieldingErrorType(errWord)
	if !ok {
		return nil, false
	}
	fielder, ok := p.placedPlayerUntil(".")
	if !ok {
		return nil, false
	}
	scores, advances := p.scoresAndAdvances()
	ej := p.ejectionTail()
	if !p.s.Done() {
		return nil, false
	}
	return schema.ReachOnFieldingError{
		Batter:   batter,
		Fielder:  fielder,
		Error:    errType,
		Scores:   scores,
		Advances: advances,
		Ejection: ej,
	}, true
}

func (p *parser) doublePlayGrounded() (schema.EventMessage, bool) {
	for _, verb := range []string{"grounds", "grounded"} {
		save := p.s
		batter, ok := p.nameUntil(" " + verb + " into a ")
		if !ok {
			p.s = save
			continue
		}
		sacrifice := p.s.Tag("sacrifice ")
		if !p.s.Tag("double play, ") {
			p.s = save
			continue
		}
		fielders, ok := p.fieldersUntil(". ")
		if !ok {
			p.s = save
			continue
		}
		outOne, ok := p.runnerOut()
		if !ok || !p.s.Tag(" ") {
			p.s = save
			continue
		}
		outTwo, ok := p.runnerOut()
		if !ok {
			p.s = save
			continue
		}
		scores, advances := p.scoresAndAdvances()
		ej := p.ejectionTail()
		if !p.s.Done() {
			p.s = save
			continue
		}
		return schema.DoublePlayGrounded{
			Batter:    batter,
			Fielders:  fielders,
			OutOne:    outOne,
			OutTwo:    outTwo,
			Sacrifice: sacrifice,
			Scores:    scores,
			Advances:  advances,
			Ejection:  ej,
		}, true
	}
	return nil, false
}

// firstBasemanGhost matches the truncated fielder's choice document the
// sim emits when the first baseman throws to a vacated base: the text
// stops dead at the fielder's name, with no out or advance sentences.
func (p *parser) firstBasemanGhost() (schema.EventMessage, bool) {
	batter, ok := p.nameUntil(" reaches on a fielder's choice out, 1B ")
	if !ok {
		return nil, false
	}
	firstBaseman, ok := p.nameToEnd()
	if !ok {
		return nil, false
	}
	return schema.KnownBug{
		Bug:          schema.BugFirstBasemanChoosesAGhost,
		Batter:       batter,
		FirstBaseman: firstBaseman,
	}, true
}

func (p *parser) doublePlayCaught() (schema.EventMessage, bool) {
	for _, verb := range []string{"flies", "lines", "pops", "grounds"} {
		save := p.s
		batter, ok := p.nameUntil(" " + verb + " into a double play, ")
		if !ok {
			p.s = save
			continue
		}
		typ, _ := schema.ParseFairBallVerb(verb)
		fielders, ok := p.fieldersUntil(". ")
		if !ok {
			p.s = save
			continue
		}
		outTwo, ok := p.runnerOut()
		if !ok {
			p.s = save
			continue
		}
		scores, advances := p.scoresAndAdvances()
		ej := p.ejectionTail()
		if !p.s.Done() {
			p.s = save
			continue
		}
		return schema.DoublePlayCaught{
			Batter:   batter,
			Type:     typ,
			Fielders: fielders,
			OutTwo:   outTwo,
			Scores:   scores,
			Advances: advances,
			Ejection: ej,
		}, true
	}
	return nil, false
}
