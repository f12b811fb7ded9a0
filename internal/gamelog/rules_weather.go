package gamelog

import "github.com/moonball-archive/scorebook/internal/schema"

// Rules for weather and celestial event types, plus the balk.

func (p *parser) weatherDelivery() (schema.EventMessage, bool) {
	d, ok := p.delivery("Delivery")
	if !ok || !p.s.Done() {
		return nil, false
	}
	return schema.WeatherDelivery{Delivery: d}, true
}

func (p *parser) weatherShipment() (schema.EventMessage, bool) {
	var deliveries []schema.Delivery
	for {
		d, ok := p.delivery("Shipment")
		if !ok {
			break
		}
		deliveries = append(deliveries, d)
		if !p.s.Tag(" ") {
			break
		}
	}
	if len(deliveries) == 0 || !p.s.Done() {
		return nil, false
	}
	return schema.WeatherShipment{Deliveries: deliveries}, true
}

func (p *parser) weatherSpecialDelivery() (schema.EventMessage, bool) {
	d, ok := p.delivery("Special Delivery")
	if !ok || !p.s.Done() {
		return nil, false
	}
	return schema.WeatherSpecialDelivery{Delivery: d}, true
}

func (p *parser) fallingStar() (schema.EventMessage, bool) {
	if !p.s.Tag("<strong>🌠 ") {
		return nil, false
	}
	name, ok := p.nameUntil(" is hit by a Falling Star!</strong>")
	if !ok || !p.s.Done() {
		return nil, false
	}
	return schema.FallingStar{PlayerName: name}, true
}

// fallingStarOutcome handles the follow-up event after a falling star
// hit. The raw message starts with a space. An optional deflection
// sentence names an intermediate player; when present, the player it
// reports striking must match the outcome's player.
func (p *parser) fallingStarOutcome() (schema.EventMessage, bool) {
	if !p.s.Tag(" ") {
		return nil, false
	}

	var deflectedOff string
	save := p.s
	if p.s.Tag("<strong>It deflected off ") {
		off, ok := p.nameUntil(" and struck ")
		if ok {
			struck, ok := p.s.Until("!</strong> ")
			if ok && validName(struck) {
				deflectedOff = off
				if msg, ok := p.starOutcome(deflectedOff); ok {
					out := msg.(schema.FallingStarOutcome)
					if out.PlayerName == struck {
						return out, true
					}
				}
			}
		}
		p.s = save
		deflectedOff = ""
	}
	return p.starOutcome("")
}

func (p *parser) starOutcome(deflectedOff string) (schema.EventMessage, bool) {
	if !p.s.Tag("<strong>") {
		return nil, false
	}
	out := schema.FallingStarOutcome{DeflectedOff: deflectedOff}

	type tailRule struct {
		stop    string
		outcome schema.FallingStarOutcomeKind
		tier    schema.CelestialEnergyTier
	}
	tails := []tailRule{
		{stop: " was injured by the extreme force of the impact!</strong>", outcome: schema.StarInjury},
		{stop: " was infused with a glimmer of celestial energy!</strong>", outcome: schema.StarInfusion, tier: schema.Glimmer},
		{stop: " began to glow brightly with celestial energy!</strong>", outcome: schema.StarInfusion, tier: schema.Glow},
		{stop: " was fully charged with an abundance of celestial energy!</strong>", outcome: schema.StarInfusion, tier: schema.FullyCharged},
	}
	for _, tail := range tails {
		save := p.s
		if name, ok := p.nameUntil(tail.stop); ok && p.s.Done() {
			out.PlayerName = name
			out.Outcome = tail.outcome
			out.InfusionTier = tail.tier
			return out, true
		}
		p.s = save
	}

	save := p.s
	if p.s.Tag("It deflected off ") {
		if name, ok := p.nameUntil(" harmlessly.</strong>"); ok && p.s.Done() {
			out.PlayerName = name
			out.Outcome = schema.StarDeflected
			return out, true
		}
	}
	p.s = save

	if p.s.Tag("😇 ") {
		name, ok := p.nameUntil(" retired from Moonball!")
		if !ok {
			return nil, false
		}
		out.PlayerName = name
		out.Outcome = schema.StarRetired
		if p.s.Tag(" ") {
			repl, ok := p.nameUntil(" was called up to take their place.")
			if !ok {
				return nil, false
			}
			out.Replacement = repl
		}
		if !p.s.Tag("</strong>") || !p.s.Done() {
			return nil, false
		}
		return out, true
	}
	return nil, false
}

func (p *parser) balk() (schema.EventMessage, bool) {
	if !p.s.Tag("Balk. ") {
		return nil, false
	}
	pitcher, ok := p.nameUntil(" dropped the ball.")
	if !ok {
		return nil, false
	}
	scores, advances := p.scoresAndAdvances()
	if !p.s.Done() {
		return nil, false
	}
	return schema.Balk{Pitcher: pitcher, Scores: scores, Advances: advances}, true
}
