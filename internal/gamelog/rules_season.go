package gamelog

import (
	"strings"

	"github.com/moonball-archive/scorebook/internal/schema"
)

// Rules for end-of-game settlements and mid-game celebrations.

// weatherProsperity decodes the Prosperity payout, one clause per
// earning side in either order. The sim emits an empty message when
// nobody earned anything; that shape is a known bug, not a grammar
// miss.
func (p *parser) weatherProsperity() (schema.EventMessage, bool) {
	if p.s.Done() {
		return schema.KnownBug{Bug: schema.BugNoOneProspers}, true
	}
	var msg schema.WeatherProsperity
	seenHome, seenAway := false, false
	for {
		if n, ok := p.prosperityIncome(p.ctx.Home); ok && !seenHome {
			msg.HomeIncome = n
			seenHome = true
		} else if n, ok := p.prosperityIncome(p.ctx.Away); ok && !seenAway {
			msg.AwayIncome = n
			seenAway = true
		} else {
			return nil, false
		}
		if p.s.Done() {
			return msg, true
		}
		if !p.s.Tag(" ") {
			return nil, false
		}
	}
}

// prosperityIncome consumes one team's payout clause. Both tenses of
// "earn" appear in archived games.
func (p *parser) prosperityIncome(t schema.EmojiTeam) (int, bool) {
	save := p.s
	if !p.s.Tag(t.Emoji + " " + t.Name + " are Prosperous! They ") {
		return 0, false
	}
	if !p.s.Tag("earned ") && !p.s.Tag("earn ") {
		p.s = save
		return 0, false
	}
	n, ok := p.s.Int()
	if !ok || !p.s.Tag(" 🪙.") {
		p.s = save
		return 0, false
	}
	return n, true
}

// photoContest decodes a Photo Contest settling: both token clauses,
// then the top photo from each side. The first clause names the
// winner, and the first photo must belong to the winning team.
func (p *parser) photoContest() (schema.EventMessage, bool) {
	winTeam, winTokens, ok := p.contestEarnings()
	if !ok || !p.s.Tag(" ") {
		return nil, false
	}
	loseTeam, loseTokens, ok := p.contestEarnings()
	if !ok || loseTeam.Emoji == winTeam.Emoji {
		return nil, false
	}
	if !p.s.Tag("<br>Top scoring Photos:<br>") {
		return nil, false
	}
	winPlayer, winScore, ok := p.contestPhoto(winTeam.Emoji)
	if !ok || !p.s.Tag(" ") {
		return nil, false
	}
	losePlayer, loseScore, ok := p.contestPhoto(loseTeam.Emoji)
	if !ok || !p.s.Done() {
		return nil, false
	}
	return schema.PhotoContest{
		WinningTeam:   winTeam,
		WinningTokens: winTokens,
		WinningPlayer: winPlayer,
		WinningScore:  winScore,
		LosingTeam:    loseTeam,
		LosingTokens:  loseTokens,
		LosingPlayer:  losePlayer,
		LosingScore:   loseScore,
	}, true
}

func (p *parser) contestEarnings() (schema.EmojiTeam, int, bool) {
	for _, t := range []schema.EmojiTeam{p.ctx.Away, p.ctx.Home} {
		save := p.s
		if !p.s.Tag(t.Emoji + " " + t.Name + " ") {
			continue
		}
		if !p.s.Tag("earned ") && !p.s.Tag("earn ") {
			p.s = save
			continue
		}
		n, ok := p.s.Int()
		if ok && p.s.Tag(" 🪙.") {
			return t, n, true
		}
		p.s = save
	}
	return schema.EmojiTeam{}, 0, false
}

// contestPhoto consumes one "{emoji} {player} - {score}" entry.
func (p *parser) contestPhoto(emoji string) (string, int, bool) {
	save := p.s
	if !p.s.Tag(emoji + " ") {
		return "", 0, false
	}
	player, ok := p.nameUntil(" - ")
	if !ok {
		p.s = save
		return "", 0, false
	}
	score, ok := p.s.Int()
	if !ok {
		p.s = save
		return "", 0, false
	}
	return player, score, true
}

// party decodes the partying pitcher and batter. The header's names
// must match the gain sentences that follow it.
func (p *parser) party() (schema.EventMessage, bool) {
	if !p.s.Tag("<strong>🥳 ") {
		return nil, false
	}
	pitcher, ok := p.nameUntil(" and ")
	if !ok {
		return nil, false
	}
	batter, ok := p.nameUntil(" are Partying!</strong> ")
	if !ok {
		return nil, false
	}
	pitcherAmount, pitcherAttr, ok := p.partyGain(pitcher)
	if !ok {
		return nil, false
	}
	batterAmount, batterAttr, ok := p.partyGain(batter)
	if !ok {
		return nil, false
	}
	loss, ok := p.partyDurability(pitcher, batter)
	if !ok || !p.s.Done() {
		return nil, false
	}
	return schema.Party{
		Pitcher:          pitcher,
		PitcherAmount:    pitcherAmount,
		PitcherAttribute: pitcherAttr,
		Batter:           batter,
		BatterAmount:     batterAmount,
		BatterAttribute:  batterAttr,
		DurabilityLoss:   loss,
	}, true
}

// partyGain consumes one "{name} gained +{n} {attribute}. " sentence
// for the named partier.
func (p *parser) partyGain(name string) (int, schema.Attribute, bool) {
	save := p.s
	if !p.s.Tag(name + " gained +") {
		return 0, "", false
	}
	n, ok := p.s.Int()
	if !ok || !p.s.Tag(" ") {
		p.s = save
		return 0, "", false
	}
	word, ok := p.s.Until(". ")
	if !ok {
		p.s = save
		return 0, "", false
	}
	attr, ok := schema.ParseAttribute(word)
	if !ok {
		p.s = save
		return 0, "", false
	}
	return n, attr, true
}

// partyDurability consumes the closing Durability sentence: either both
// partiers pay, or a Prolific Greater Boon shields one of them.
func (p *parser) partyDurability(pitcher, batter string) (schema.PartyDurabilityLoss, bool) {
	save := p.s
	if p.s.Tag("Both players lose ") {
		n, ok := p.s.Int()
		if ok && p.s.Tag(" Durability.") {
			return schema.PartyDurabilityLoss{Loss: n}, true
		}
		p.s = save
		return schema.PartyDurabilityLoss{}, false
	}
	for _, pair := range [][2]string{{pitcher, batter}, {batter, pitcher}} {
		unprotected, protected := pair[0], pair[1]
		if !p.s.Tag(unprotected + " loses ") {
			continue
		}
		n, ok := p.s.Int()
		if ok && p.s.Tag(" Durability, but "+protected+"'s Prolific Greater Boon protects them from harm.") {
			return schema.PartyDurabilityLoss{Loss: n, Protected: protected, Unprotected: unprotected}, true
		}
		p.s = save
	}
	return schema.PartyDurabilityLoss{}, false
}

// weatherReflection reads the receiving team generically rather than
// against the context; the mirror names whoever it pleases.
func (p *parser) weatherReflection() (schema.EventMessage, bool) {
	if !p.s.Tag("🪞 The reflection shatters. ") {
		return nil, false
	}
	seg, ok := p.s.Until(" received a Fragment of Reflection.")
	if !ok || !p.s.Done() {
		return nil, false
	}
	emoji, name, found := strings.Cut(seg, " ")
	if !found || !validName(name) {
		return nil, false
	}
	return schema.WeatherReflection{Team: schema.EmojiTeam{Emoji: emoji, Name: name}}, true
}
