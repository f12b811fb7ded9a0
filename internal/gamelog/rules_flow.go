package gamelog

import (
	"strings"

	"github.com/moonball-archive/scorebook/internal/schema"
)

// Rules for the game-flow event types: the pre-game announcements,
// inning boundaries, batter intros, mound visits, and the game-end
// bookkeeping. Each rule either consumes the whole message or fails.

func (p *parser) liveNow() (schema.EventMessage, bool) {
	// Newer seasons append the stadium: "{away} vs {home} @ {stadium}".
	save := p.s
	if seg, ok := p.s.Until(" vs "); ok {
		if away, ok := p.emojiTeamExact(seg); ok {
			if seg, ok := p.s.Until(" @ "); ok {
				if home, ok := p.emojiTeamExact(seg); ok {
					stadium := p.s.TakeRest()
					if stadium != "" {
						return schema.LiveNow{
							AwayTeam: away,
							HomeTeam: home,
							Stadium:  schema.VersionedOf(stadium),
						}, true
					}
				}
			}
		}
	}
	p.s = save

	seg, ok := p.s.Until(" @ ")
	if !ok {
		return nil, false
	}
	away, ok := p.emojiTeamExact(seg)
	if !ok {
		return nil, false
	}
	home, ok := p.emojiTeamExact(p.s.TakeRest())
	if !ok {
		return nil, false
	}
	return schema.LiveNow{AwayTeam: away, HomeTeam: home}, true
}

func (p *parser) pitchingMatchup() (schema.EventMessage, bool) {
	seg, ok := p.s.Until(" vs. ")
	if !ok {
		return nil, false
	}
	awayPitcher, ok := p.teamPitcher(seg, p.ctx.Away)
	if !ok {
		return nil, false
	}
	homePitcher, ok := p.teamPitcher(p.s.TakeRest(), p.ctx.Home)
	if !ok {
		return nil, false
	}
	return schema.PitchingMatchup{
		AwayTeam:    p.ctx.Away,
		HomeTeam:    p.ctx.Home,
		AwayPitcher: awayPitcher,
		HomePitcher: homePitcher,
	}, true
}

// teamPitcher strips the matchup segment's "EMOJI Name " team prefix and
// returns the pitcher. A segment opening with the team's emoji but not
// its name is the identity-mismatch case, flagged ambiguous the same way
// emojiTeamExact flags it.
func (p *parser) teamPitcher(seg string, t schema.EmojiTeam) (string, bool) {
	pitcher, ok := strings.CutPrefix(seg, t.Emoji+" "+t.Name+" ")
	if !ok || !validName(pitcher) {
		if strings.HasPrefix(seg, t.Emoji+" ") {
			p.ambiguous = true
		}
		return "", false
	}
	return pitcher, true
}

func (p *parser) lineup(side schema.HomeAway) (schema.EventMessage, bool) {
	var players []schema.PlacedPlayer
	for !p.s.Done() {
		if _, ok := p.s.Int(); !ok {
			return nil, false
		}
		if !p.s.Tag(". ") {
			return nil, false
		}
		seg, ok := p.s.Until("<br>")
		if !ok {
			return nil, false
		}
		pl, ok := p.placedPlayerExact(seg)
		if !ok {
			return nil, false
		}
		players = append(players, pl)
	}
	if len(players) == 0 {
		return nil, false
	}
	return schema.Lineup{Side: side, Players: players}, true
}

func (p *parser) playBall() (schema.EventMessage, bool) {
	if !p.s.Tag(`"PLAY BALL."`) || !p.s.Done() {
		return nil, false
	}
	return schema.PlayBall{}, true
}

func (p *parser) inningStart() (schema.EventMessage, bool) {
	if !p.s.Tag("Start of the ") {
		return nil, false
	}
	sideWord, ok := p.s.OneOf("top", "bottom")
	if !ok {
		return nil, false
	}
	side, _ := schema.ParseTopBottom(sideWord)
	if !p.s.Tag(" of the ") {
		return nil, false
	}
	number, ok := p.s.Ordinal()
	if !ok || !p.s.Tag(". ") {
		return nil, false
	}
	seg, ok := p.s.Until(" batting.")
	if !ok {
		return nil, false
	}
	battingTeam, ok := p.emojiTeamExact(seg)
	if !ok {
		return nil, false
	}

	msg := schema.InningStart{Number: number, Side: side, BattingTeam: battingTeam}

	save := p.s
	if p.s.Tag(" ") {
		if runner, ok := p.nameUntil(" starts the inning on second base."); ok {
			msg.AutomaticRunner = schema.VersionedOf(runner)
		} else {
			p.s = save
		}
	} else {
		p.s = save
	}

	pitchingEmoji := p.ctx.TeamBySide(side.BattingSide().Flip()).Emoji
	if status, ok := p.inningPitcherStatus(pitchingEmoji); ok {
		msg.PitcherStatus = status
	}
	if !p.s.Done() {
		return nil, false
	}
	return msg, true
}

// inningPitcherStatus consumes the optional pitcher announcement at the
// start of an inning: "{emoji} {name} pitching." for an unchanged
// pitcher, or a leave/take-the-mound sentence pair for a swap.
func (p *parser) inningPitcherStatus(pitchingEmoji string) (*schema.StartOfInningPitcher, bool) {
	save := p.s
	if p.s.Tag(" " + pitchingEmoji + " ") {
		if name, ok := p.nameUntil(" pitching."); ok {
			same := &struct {
				Emoji string `json:"emoji"`
				Name  string `json:"name"`
			}{Emoji: pitchingEmoji, Name: name}
			return &schema.StartOfInningPitcher{Same: same}, true
		}
		p.s = save
	}

	if !p.s.Tag(" ") {
		p.s = save
		return nil, false
	}
	swap, ok := p.pitcherSwapSentences(pitchingEmoji)
	if !ok {
		p.s = save
		return nil, false
	}
	return &schema.StartOfInningPitcher{Swap: swap}, true
}

// pitcherSwapSentences consumes "{PLACED} is leaving the game.
// {arriving} takes the mound.", each name optionally preceded by the
// pitching team's emoji, the arriving pitcher optionally placed.
func (p *parser) pitcherSwapSentences(pitchingEmoji string) (*schema.PitcherSwap, bool) {
	save := p.s
	swap := &schema.PitcherSwap{}

	if pitchingEmoji != "" && p.s.Tag(pitchingEmoji+" ") {
		swap.LeavingEmoji = pitchingEmoji
	}
	leaving, ok := p.placedPlayerUntil(" is leaving the game. ")
	if !ok {
		p.s = save
		return nil, false
	}
	swap.LeavingPitcher = leaving

	if pitchingEmoji != "" && p.s.Tag(pitchingEmoji+" ") {
		swap.ArrivingEmoji = pitchingEmoji
	}
	// The arriving pitcher's place was dropped from the text mid season
	// 2, so both forms stay recognized.
	arrSave := p.s
	if arriving, ok := p.placedPlayerUntil(" takes the mound."); ok {
		pos := arriving.Position
		swap.ArrivingPlace = &pos
		swap.ArrivingPitcher = arriving.Name
		return swap, true
	}
	p.s = arrSave
	name, ok := p.nameUntil(" takes the mound.")
	if !ok {
		p.s = save
		return nil, false
	}
	swap.ArrivingPitcher = name
	return swap, true
}

func (p *parser) nowBatting() (schema.EventMessage, bool) {
	if !p.s.Tag("Now batting: ") {
		return nil, false
	}
	save := p.s
	if batter, ok := p.nameUntil(" ("); ok {
		seg, ok := p.s.Until(")")
		if ok && p.s.Done() {
			if stats, ok := parseNowBattingStats(seg); ok {
				return schema.NowBatting{Batter: batter, Stats: stats}, true
			}
		}
		p.s = save
	}
	batter, ok := p.nameToEnd()
	if !ok {
		return nil, false
	}
	return schema.NowBatting{Batter: batter}, true
}

func (p *parser) inningEnd() (schema.EventMessage, bool) {
	if !p.s.Tag("End of the ") {
		return nil, false
	}
	sideWord, ok := p.s.OneOf("top", "bottom")
	if !ok {
		return nil, false
	}
	side, _ := schema.ParseTopBottom(sideWord)
	if !p.s.Tag(" of the ") {
		return nil, false
	}
	number, ok := p.s.Ordinal()
	if !ok || !p.s.Tag(".") || !p.s.Done() {
		return nil, false
	}
	return schema.InningEnd{Number: number, Side: side}, true
}

func (p *parser) moundVisit(pitchingEmoji string) (schema.EventMessage, bool) {
	save := p.s
	if p.s.Tag("The ") {
		if seg, ok := p.s.Until(" manager is making a mound visit."); ok && p.s.Done() {
			if team, ok := p.emojiTeamExact(seg); ok {
				return schema.MoundVisit{Team: team, Type: schema.PlainMoundVisit}, true
			}
		}
		p.s = save
		p.s.Tag("The ")
		if seg, ok := p.s.Until(" manager is making a pitching change."); ok && p.s.Done() {
			if team, ok := p.emojiTeamExact(seg); ok {
				return schema.MoundVisit{Team: team, Type: schema.PitchingChange}, true
			}
		}
		p.s = save
	}

	if swap, ok := p.pitcherSwapSentences(pitchingEmoji); ok && p.s.Done() {
		return *swap, true
	}
	p.s = save

	remaining, ok := p.placedPlayerUntil(" remains in the game.")
	if !ok || !p.s.Done() {
		return nil, false
	}
	return schema.PitcherRemains{RemainingPitcher: remaining}, true
}

func (p *parser) gameOver() (schema.EventMessage, bool) {
	msg, ok := schema.ParseGameOverMessage(p.s.TakeRest())
	if !ok {
		return nil, false
	}
	return schema.GameOver{Message: msg}, true
}

func (p *parser) recordkeeping() (schema.EventMessage, bool) {
	seg, ok := p.s.Until(" defeated ")
	if !ok {
		return nil, false
	}
	winner, ok := p.emojiTeamExact(seg)
	if !ok {
		return nil, false
	}
	seg, ok = p.s.Until(". Final score: ")
	if !ok {
		return nil, false
	}
	loser, ok := p.emojiTeamExact(seg)
	if !ok {
		return nil, false
	}
	winScore, ok := p.s.Int()
	if !ok || !p.s.Tag("-") {
		return nil, false
	}
	loseScore, ok := p.s.Int()
	if !ok || !p.s.Done() {
		return nil, false
	}
	return schema.Recordkeeping{
		WinningTeam:  winner,
		LosingTeam:   loser,
		WinningScore: winScore,
		LosingScore:  loseScore,
	}, true
}
