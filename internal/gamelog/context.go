package gamelog

import "github.com/moonball-archive/scorebook/internal/schema"

// Context carries the per-game state classification threads through the
// event log: the two team identities, the season and day (grammar texts
// changed between seasons), and the set of player names seen so far.
// Runner and fielder slots in event text resolve only against these
// known names; a name the context has never seen fails the grammar
// instead of being guessed at.
type Context struct {
	Home schema.EmojiTeam
	Away schema.EmojiTeam

	Season int
	Day    int

	names   []string
	nameSet map[string]struct{}
}

// NewContext seeds a context from a raw game document. The two starting
// pitchers are the only player names known up front; the rest accrue as
// lineups, batter announcements, and substitutions are classified.
func NewContext(g *Game) *Context {
	c := &Context{
		Home:    schema.EmojiTeam{Emoji: g.HomeTeamEmoji, Name: g.HomeTeamName},
		Away:    schema.EmojiTeam{Emoji: g.AwayTeamEmoji, Name: g.AwayTeamName},
		Season:  g.Season,
		Day:     g.Day,
		nameSet: make(map[string]struct{}),
	}
	c.AddName(g.AwaySP)
	c.AddName(g.HomeSP)
	return c
}

// AddName registers a player name as known. Empty names and duplicates
// are ignored.
func (c *Context) AddName(name string) {
	if name == "" {
		return
	}
	if _, ok := c.nameSet[name]; ok {
		return
	}
	c.nameSet[name] = struct{}{}
	c.names = append(c.names, name)
}

// Names returns the known player names. The slice is shared, not copied;
// callers must not mutate it.
func (c *Context) Names() []string { return c.names }

// TeamBySide returns the context team for a side.
func (c *Context) TeamBySide(side schema.HomeAway) schema.EmojiTeam {
	if side == schema.Home {
		return c.Home
	}
	return c.Away
}

// Observe feeds the raw per-event fields into the name set before the
// event's message is classified. The sim annotates most events with the
// current batter and on-deck player, which is how mid-game call-ups
// become resolvable.
func (c *Context) Observe(e *Event) {
	if e.Batter != nil {
		c.AddName(*e.Batter)
	}
	if e.OnDeck != nil {
		c.AddName(*e.OnDeck)
	}
}

// Advance folds a classified message back into the context. The switch
// enumerates every variant; silence on a variant is a deliberate
// statement that it introduces no identities.
func (c *Context) Advance(msg schema.EventMessage) {
	switch m := msg.(type) {
	case schema.Lineup:
		for _, p := range m.Players {
			c.AddName(p.Name)
		}
	case schema.PitchingMatchup:
		c.AddName(m.AwayPitcher)
		c.AddName(m.HomePitcher)
	case schema.NowBatting:
		c.AddName(m.Batter)
	case schema.InningStart:
		c.AddName(m.AutomaticRunner.Or(""))
		if m.PitcherStatus != nil {
			if m.PitcherStatus.Same != nil {
				c.AddName(m.PitcherStatus.Same.Name)
			}
			if m.PitcherStatus.Swap != nil {
				c.AddName(m.PitcherStatus.Swap.LeavingPitcher.Name)
				c.AddName(m.PitcherStatus.Swap.ArrivingPitcher)
			}
		}
	case schema.PitcherSwap:
		c.AddName(m.LeavingPitcher.Name)
		c.AddName(m.ArrivingPitcher)
	case schema.PitcherRemains:
		c.AddName(m.RemainingPitcher.Name)
	case schema.FallingStar:
		c.AddName(m.PlayerName)
	case schema.FallingStarOutcome:
		c.AddName(m.PlayerName)
		c.AddName(m.Replacement)
	case schema.WeatherDelivery:
		c.AddName(m.Delivery.Player)
	case schema.WeatherShipment:
		for _, d := range m.Deliveries {
			c.AddName(d.Player)
		}
	case schema.WeatherSpecialDelivery:
		c.AddName(m.Delivery.Player)
	case schema.Ball:
		c.addEjection(m.Ejection)
	case schema.Strike:
		c.addEjection(m.Ejection)
	case schema.Walk:
		c.addEjection(m.Ejection)
	case schema.HitByPitch:
		c.addEjection(m.Ejection)
	case schema.StrikeOut:
		c.addEjection(m.Ejection)
	case schema.BatterToBase:
		c.addEjection(m.Ejection)
	case schema.HomeRun:
		c.addEjection(m.Ejection)
	case schema.CaughtOut:
		c.addEjection(m.Ejection)
	case schema.GroundedOut:
		c.addEjection(m.Ejection)
	case schema.ForceOut:
		c.addEjection(m.Ejection)
	case schema.ReachOnFieldersChoice:
		c.addEjection(m.Ejection)
	case schema.DoublePlayGrounded:
		c.addEjection(m.Ejection)
	case schema.DoublePlayCaught:
		c.addEjection(m.Ejection)
	case schema.ReachOnFieldingError:
		c.addEjection(m.Ejection)
	case schema.Unrecognized, schema.LiveNow, schema.PlayBall,
		schema.GameOver, schema.Recordkeeping, schema.InningEnd,
		schema.MoundVisit, schema.Foul, schema.FairBall, schema.Balk,
		schema.WeatherProsperity, schema.PhotoContest, schema.Party,
		schema.WeatherReflection, schema.KnownBug:
		_ = m
	}
}

// addEjection registers an ejection's replacement player, who may run
// or field for the rest of the game.
func (c *Context) addEjection(e *schema.Ejection) {
	if e == nil {
		return
	}
	c.AddName(e.BenchReplacement)
	if e.RosterReplacement != nil {
		c.AddName(e.RosterReplacement.Name)
	}
}
