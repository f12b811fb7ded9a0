package schema

// EventKind names one variant of the game-log classification result.
type EventKind string

const (
	KindUnrecognized           EventKind = "Unrecognized"
	KindLiveNow                EventKind = "LiveNow"
	KindPitchingMatchup        EventKind = "PitchingMatchup"
	KindLineup                 EventKind = "Lineup"
	KindPlayBall               EventKind = "PlayBall"
	KindGameOver               EventKind = "GameOver"
	KindRecordkeeping          EventKind = "Recordkeeping"
	KindInningStart            EventKind = "InningStart"
	KindNowBatting             EventKind = "NowBatting"
	KindInningEnd              EventKind = "InningEnd"
	KindMoundVisit             EventKind = "MoundVisit"
	KindPitcherRemains         EventKind = "PitcherRemains"
	KindPitcherSwap            EventKind = "PitcherSwap"
	KindBall                   EventKind = "Ball"
	KindStrike                 EventKind = "Strike"
	KindFoul                   EventKind = "Foul"
	KindWalk                   EventKind = "Walk"
	KindHitByPitch             EventKind = "HitByPitch"
	KindFairBall               EventKind = "FairBall"
	KindStrikeOut              EventKind = "StrikeOut"
	KindBatterToBase           EventKind = "BatterToBase"
	KindHomeRun                EventKind = "HomeRun"
	KindCaughtOut              EventKind = "CaughtOut"
	KindGroundedOut            EventKind = "GroundedOut"
	KindForceOut               EventKind = "ForceOut"
	KindReachOnFieldersChoice  EventKind = "ReachOnFieldersChoice"
	KindDoublePlayGrounded     EventKind = "DoublePlayGrounded"
	KindDoublePlayCaught       EventKind = "DoublePlayCaught"
	KindReachOnFieldingError   EventKind = "ReachOnFieldingError"
	KindBalk                   EventKind = "Balk"
	KindWeatherDelivery        EventKind = "WeatherDelivery"
	KindWeatherShipment        EventKind = "WeatherShipment"
	KindWeatherSpecialDelivery EventKind = "WeatherSpecialDelivery"
	KindFallingStar            EventKind = "FallingStar"
	KindFallingStarOutcome     EventKind = "FallingStarOutcome"
	KindWeatherProsperity      EventKind = "WeatherProsperity"
	KindPhotoContest           EventKind = "PhotoContest"
	KindParty                  EventKind = "Party"
	KindWeatherReflection      EventKind = "WeatherReflection"
	KindKnownBug               EventKind = "KnownBug"
)

// AllEventKinds lists every declared game-log variant. Dispatch
// exhaustiveness tests iterate this list.
var AllEventKinds = []EventKind{
	KindUnrecognized, KindLiveNow, KindPitchingMatchup, KindLineup,
	KindPlayBall, KindGameOver, KindRecordkeeping, KindInningStart,
	KindNowBatting, KindInningEnd, KindMoundVisit, KindPitcherRemains,
	KindPitcherSwap, KindBall, KindStrike, KindFoul, KindWalk,
	KindHitByPitch, KindFairBall, KindStrikeOut, KindBatterToBase,
	KindHomeRun, KindCaughtOut, KindGroundedOut, KindForceOut,
	KindReachOnFieldersChoice, KindDoublePlayGrounded, KindDoublePlayCaught,
	KindReachOnFieldingError, KindBalk, KindWeatherDelivery,
	KindWeatherShipment, KindWeatherSpecialDelivery, KindFallingStar,
	KindFallingStarOutcome, KindWeatherProsperity, KindPhotoContest,
	KindParty, KindWeatherReflection, KindKnownBug,
}

// EventMessage is the closed tagged union over all recognized game-log
// event shapes. Exactly one EventMessage is produced per raw event. The
// interface is sealed; only the variants in this package implement it.
type EventMessage interface {
	Kind() EventKind
	sealedEvent()
}

// EmojiTeam is a team reference as it appears in event text: an emoji
// token followed by the team's display name.
type EmojiTeam struct {
	Emoji string `json:"emoji"`
	Name  string `json:"name"`
}

func (t EmojiTeam) String() string { return t.Emoji + " " + t.Name }

// PlacedPlayer is a position acronym plus a player name, e.g. "SS Ellen Updog".
type PlacedPlayer struct {
	Position Position `json:"position"`
	Name     string   `json:"name"`
}

func (p PlacedPlayer) String() string { return string(p.Position) + " " + p.Name }

// RunnerAdvance records a runner moving up on a play.
type RunnerAdvance struct {
	Runner string `json:"runner"`
	Base   Base   `json:"base"`
}

// RunnerOut records a runner retired at a base. BaseSpelling preserves the
// exact phrasing ("second base" versus "2B") the sim used.
type RunnerOut struct {
	Runner       string `json:"runner"`
	Base         Base   `json:"base"`
	BaseSpelling string `json:"base_spelling"`
}

// BaseSteal is a steal attempt resolved during a pitch event.
type BaseSteal struct {
	Runner  string `json:"runner"`
	Base    Base   `json:"base"`
	Success bool   `json:"success"`
}

// FieldingAttempt is the resolution of a fielder's-choice play: either a
// runner is retired or the fielder commits an error.
type FieldingAttempt struct {
	Out   *RunnerOut         `json:"out,omitempty"`
	Error *FieldingErrorType `json:"error,omitempty"`
	// ErrorFielder names the fielder charged when Error is set.
	ErrorFielder string `json:"error_fielder,omitempty"`
}

// Ejection is the ROBO-UMP tail a pitch or fielding event may carry.
// On a successful ejection exactly one of BenchReplacement and
// RosterReplacement is set. Failed marks the attempted ejection nobody
// budged for; FailedPlayers then holds the two confronted names and the
// other fields are empty.
type Ejection struct {
	Team      EmojiTeam     `json:"team"`
	Player    PlacedPlayer  `json:"player"`
	Violation ViolationType `json:"violation,omitempty"`
	// Reason preserves the parenthesized infraction verbatim; the sim
	// invents new ones faster than any vocabulary could track.
	Reason            string        `json:"reason,omitempty"`
	BenchReplacement  string        `json:"bench_replacement,omitempty"`
	RosterReplacement *PlacedPlayer `json:"roster_replacement,omitempty"`
	Failed            bool          `json:"failed,omitempty"`
	FailedPlayers     []string      `json:"failed_players,omitempty"`
}

// Item is a full item reference: emoji token, optional prefix, base name,
// optional suffix.
type Item struct {
	Emoji  string      `json:"emoji"`
	Prefix *ItemPrefix `json:"prefix,omitempty"`
	Name   ItemName    `json:"name"`
	Suffix *ItemSuffix `json:"suffix,omitempty"`
}

func (i Item) String() string {
	s := i.Emoji + " "
	if i.Prefix != nil {
		s += string(*i.Prefix) + " "
	}
	s += string(i.Name)
	if i.Suffix != nil {
		s += " " + string(*i.Suffix)
	}
	return s
}

// Delivery is one item delivered by weather: the receiving player, the
// item, and optionally the item discarded to make room.
type Delivery struct {
	Player    string `json:"player"`
	Item      Item   `json:"item"`
	Discarded *Item  `json:"discarded,omitempty"`
}

// BatterStat is one entry of a batter's intro line, e.g. "2 HR" or "1 for 3".
type BatterStat struct {
	// Label is the stat abbreviation ("HR", "SO", ...); empty for the
	// hits-for-at-bats form.
	Label  string `json:"label,omitempty"`
	Count  int    `json:"count"`
	AtBats int    `json:"at_bats,omitempty"`
}

// NowBattingStats is the parenthesized summary on a NowBatting line. At
// most one of FirstPA or Stats is meaningful; both empty means the sim
// printed no summary at all.
type NowBattingStats struct {
	FirstPA bool         `json:"first_pa,omitempty"`
	Stats   []BatterStat `json:"stats,omitempty"`
}

// StartOfInningPitcher is the pitcher status appended to an inning start:
// either the same pitcher stays in or a swap is announced.
type StartOfInningPitcher struct {
	Same *struct {
		Emoji string `json:"emoji"`
		Name  string `json:"name"`
	} `json:"same,omitempty"`
	Swap *PitcherSwap `json:"swap,omitempty"`
}

// Unrecognized wraps input no grammar matched. Ambiguous marks the
// identity-resolution failure case (a name token that did not resolve
// against the context's known identities), which strict mode never
// promotes to a hard failure.
type Unrecognized struct {
	EventType string `json:"event_type"`
	Text      string `json:"text"`
	Ambiguous bool   `json:"ambiguous,omitempty"`
}

type LiveNow struct {
	AwayTeam EmojiTeam `json:"away_team"`
	HomeTeam EmojiTeam `json:"home_team"`
	// Stadium was introduced in season 3; older events carry none.
	Stadium Versioned[string] `json:"stadium"`
}

type PitchingMatchup struct {
	AwayTeam    EmojiTeam `json:"away_team"`
	HomeTeam    EmojiTeam `json:"home_team"`
	AwayPitcher string    `json:"away_pitcher"`
	HomePitcher string    `json:"home_pitcher"`
}

type Lineup struct {
	Side    HomeAway       `json:"side"`
	Players []PlacedPlayer `json:"players"`
}

type PlayBall struct{}

type GameOver struct {
	Message GameOverMessage `json:"message"`
}

type Recordkeeping struct {
	WinningTeam  EmojiTeam `json:"winning_team"`
	LosingTeam   EmojiTeam `json:"losing_team"`
	WinningScore int       `json:"winning_score"`
	LosingScore  int       `json:"losing_score"`
}

type InningStart struct {
	Number      int       `json:"number"`
	Side        TopBottom `json:"side"`
	BattingTeam EmojiTeam `json:"batting_team"`
	// AutomaticRunner was announced only from mid season 0 onward.
	AutomaticRunner Versioned[string]     `json:"automatic_runner"`
	PitcherStatus   *StartOfInningPitcher `json:"pitcher_status,omitempty"`
}

type NowBatting struct {
	Batter string          `json:"batter"`
	Stats  NowBattingStats `json:"stats"`
}

type InningEnd struct {
	Number int       `json:"number"`
	Side   TopBottom `json:"side"`
}

type MoundVisit struct {
	Team EmojiTeam      `json:"team"`
	Type MoundVisitType `json:"type"`
}

type PitcherRemains struct {
	RemainingPitcher PlacedPlayer `json:"remaining_pitcher"`
}

type PitcherSwap struct {
	LeavingEmoji    string       `json:"leaving_emoji,omitempty"`
	LeavingPitcher  PlacedPlayer `json:"leaving_pitcher"`
	ArrivingEmoji   string       `json:"arriving_emoji,omitempty"`
	ArrivingPlace   *Position    `json:"arriving_place,omitempty"`
	ArrivingPitcher string       `json:"arriving_pitcher"`
}

type Ball struct {
	Balls    int         `json:"balls"`
	Strikes  int         `json:"strikes"`
	Steals   []BaseSteal `json:"steals,omitempty"`
	Ejection *Ejection   `json:"ejection,omitempty"`
}

type Strike struct {
	Strike   StrikeType  `json:"strike"`
	Balls    int         `json:"balls"`
	Strikes  int         `json:"strikes"`
	Steals   []BaseSteal `json:"steals,omitempty"`
	Ejection *Ejection   `json:"ejection,omitempty"`
}

type Foul struct {
	Foul    FoulType    `json:"foul"`
	Balls   int         `json:"balls"`
	Strikes int         `json:"strikes"`
	Steals  []BaseSteal `json:"steals,omitempty"`
}

type Walk struct {
	Batter   string          `json:"batter"`
	Scores   []string        `json:"scores,omitempty"`
	Advances []RunnerAdvance `json:"advances,omitempty"`
	Ejection *Ejection       `json:"ejection,omitempty"`
}

type HitByPitch struct {
	Batter   string          `json:"batter"`
	Scores   []string        `json:"scores,omitempty"`
	Advances []RunnerAdvance `json:"advances,omitempty"`
	Ejection *Ejection       `json:"ejection,omitempty"`
}

type FairBall struct {
	Batter      string              `json:"batter"`
	Type        FairBallType        `json:"type"`
	Destination FairBallDestination `json:"destination"`
}

type StrikeOut struct {
	Foul     *FoulType   `json:"foul,omitempty"`
	Batter   string      `json:"batter"`
	Strike   StrikeType  `json:"strike"`
	Steals   []BaseSteal `json:"steals,omitempty"`
	Ejection *Ejection   `json:"ejection,omitempty"`
}

type BatterToBase struct {
	Batter   string          `json:"batter"`
	Distance Distance        `json:"distance"`
	Type     FairBallType    `json:"type"`
	Fielder  PlacedPlayer    `json:"fielder"`
	Scores   []string        `json:"scores,omitempty"`
	Advances []RunnerAdvance `json:"advances,omitempty"`
	Ejection *Ejection       `json:"ejection,omitempty"`
}

type HomeRun struct {
	Batter      string              `json:"batter"`
	Type        FairBallType        `json:"type"`
	Destination FairBallDestination `json:"destination"`
	Scores      []string            `json:"scores,omitempty"`
	GrandSlam   bool                `json:"grand_slam,omitempty"`
	Ejection    *Ejection           `json:"ejection,omitempty"`
}

type CaughtOut struct {
	Batter    string          `json:"batter"`
	Type      FairBallType    `json:"type"`
	CaughtBy  PlacedPlayer    `json:"caught_by"`
	Sacrifice bool            `json:"sacrifice,omitempty"`
	Perfect   bool            `json:"perfect,omitempty"`
	Scores    []string        `json:"scores,omitempty"`
	Advances  []RunnerAdvance `json:"advances,omitempty"`
	Ejection  *Ejection       `json:"ejection,omitempty"`
}

type GroundedOut struct {
	Batter   string          `json:"batter"`
	Fielders []PlacedPlayer  `json:"fielders"`
	Amazing  bool            `json:"amazing,omitempty"`
	Scores   []string        `json:"scores,omitempty"`
	Advances []RunnerAdvance `json:"advances,omitempty"`
	Ejection *Ejection       `json:"ejection,omitempty"`
}

type ForceOut struct {
	Batter   string          `json:"batter"`
	Type     FairBallType    `json:"type"`
	Fielders []PlacedPlayer  `json:"fielders"`
	Out      RunnerOut       `json:"out"`
	Scores   []string        `json:"scores,omitempty"`
	Advances []RunnerAdvance `json:"advances,omitempty"`
	Ejection *Ejection       `json:"ejection,omitempty"`
}

type ReachOnFieldersChoice struct {
	Batter   string          `json:"batter"`
	Fielders []PlacedPlayer  `json:"fielders"`
	Result   FieldingAttempt `json:"result"`
	Scores   []string        `json:"scores,omitempty"`
	Advances []RunnerAdvance `json:"advances,omitempty"`
	Ejection *Ejection       `json:"ejection,omitempty"`
}

type DoublePlayGrounded struct {
	Batter    string          `json:"batter"`
	Fielders  []PlacedPlayer  `json:"fielders"`
	OutOne    RunnerOut       `json:"out_one"`
	OutTwo    RunnerOut       `json:"out_two"`
	Sacrifice bool            `json:"sacrifice,omitempty"`
	Scores    []string        `json:"scores,omitempty"`
	Advances  []RunnerAdvance `json:"advances,omitempty"`
	Ejection  *Ejection       `json:"ejection,omitempty"`
}

type DoublePlayCaught struct {
	Batter   string          `json:"batter"`
	Type     FairBallType    `json:"type"`
	Fielders []PlacedPlayer  `json:"fielders"`
	OutTwo   RunnerOut       `json:"out_two"`
	Scores   []string        `json:"scores,omitempty"`
	Advances []RunnerAdvance `json:"advances,omitempty"`
	Ejection *Ejection       `json:"ejection,omitempty"`
}

type ReachOnFieldingError struct {
	Batter   string            `json:"batter"`
	Fielder  PlacedPlayer      `json:"fielder"`
	Error    FieldingErrorType `json:"error"`
	Scores   []string          `json:"scores,omitempty"`
	Advances []RunnerAdvance   `json:"advances,omitempty"`
	Ejection *Ejection         `json:"ejection,omitempty"`
}

type Balk struct {
	Pitcher  string          `json:"pitcher"`
	Scores   []string        `json:"scores,omitempty"`
	Advances []RunnerAdvance `json:"advances,omitempty"`
}

type WeatherDelivery struct {
	Delivery Delivery `json:"delivery"`
}

type WeatherShipment struct {
	Deliveries []Delivery `json:"deliveries"`
}

type WeatherSpecialDelivery struct {
	Delivery Delivery `json:"delivery"`
}

type FallingStar struct {
	PlayerName string `json:"player_name"`
}

// FallingStarOutcomeKind enumerates how a falling-star hit resolves.
type FallingStarOutcomeKind string

const (
	StarInjury    FallingStarOutcomeKind = "Injury"
	StarInfusion  FallingStarOutcomeKind = "Infusion"
	StarRetired   FallingStarOutcomeKind = "Retired"
	StarDeflected FallingStarOutcomeKind = "DeflectedHarmlessly"
)

type FallingStarOutcome struct {
	// DeflectedOff names a player the star bounced off before striking
	// PlayerName, when the text reports one.
	DeflectedOff string                 `json:"deflected_off,omitempty"`
	PlayerName   string                 `json:"player_name"`
	Outcome      FallingStarOutcomeKind `json:"outcome"`
	InfusionTier CelestialEnergyTier    `json:"infusion_tier,omitempty"`
	// Replacement names the called-up player on a retirement outcome.
	Replacement string `json:"replacement,omitempty"`
}

// WeatherProsperity records the end-of-game token payouts under
// Prosperity weather. A side that earned nothing stays zero.
type WeatherProsperity struct {
	HomeIncome int `json:"home_income,omitempty"`
	AwayIncome int `json:"away_income,omitempty"`
}

// PhotoContest records a Photo Contest settling at the end of a game:
// both teams' token hauls plus the top-scoring photo from each side.
type PhotoContest struct {
	WinningTeam   EmojiTeam `json:"winning_team"`
	WinningTokens int       `json:"winning_tokens"`
	WinningPlayer string    `json:"winning_player"`
	WinningScore  int       `json:"winning_score"`
	LosingTeam    EmojiTeam `json:"losing_team"`
	LosingTokens  int       `json:"losing_tokens"`
	LosingPlayer  string    `json:"losing_player"`
	LosingScore   int       `json:"losing_score"`
}

// PartyDurabilityLoss is the Durability toll a Party exacts. When a
// Prolific Greater Boon shields one partier, Protected and Unprotected
// name them; otherwise both are empty and both players take the loss.
type PartyDurabilityLoss struct {
	Loss        int    `json:"loss"`
	Protected   string `json:"protected,omitempty"`
	Unprotected string `json:"unprotected,omitempty"`
}

// Party is the pitcher and batter celebrating mid-game, each gaining
// an attribute boost and paying for it in Durability.
type Party struct {
	Pitcher          string              `json:"pitcher"`
	PitcherAmount    int                 `json:"pitcher_amount"`
	PitcherAttribute Attribute           `json:"pitcher_attribute"`
	Batter           string              `json:"batter"`
	BatterAmount     int                 `json:"batter_amount"`
	BatterAttribute  Attribute           `json:"batter_attribute"`
	DurabilityLoss   PartyDurabilityLoss `json:"durability_loss"`
}

// WeatherReflection is the mirror shattering and handing a team a
// Fragment of Reflection.
type WeatherReflection struct {
	Team EmojiTeam `json:"team"`
}

// KnownBug marks a document the sim emits in a recognizably broken
// shape. Batter and FirstBaseman are set only for the ghost form.
type KnownBug struct {
	Bug          KnownBugKind `json:"bug"`
	Batter       string       `json:"batter,omitempty"`
	FirstBaseman string       `json:"first_baseman,omitempty"`
}

func (Unrecognized) Kind() EventKind           { return KindUnrecognized }
func (LiveNow) Kind() EventKind                { return KindLiveNow }
func (PitchingMatchup) Kind() EventKind        { return KindPitchingMatchup }
func (Lineup) Kind() EventKind                 { return KindLineup }
func (PlayBall) Kind() EventKind               { return KindPlayBall }
func (GameOver) Kind() EventKind               { return KindGameOver }
func (Recordkeeping) Kind() EventKind          { return KindRecordkeeping }
func (InningStart) Kind() EventKind            { return KindInningStart }
func (NowBatting) Kind() EventKind             { return KindNowBatting }
func (InningEnd) Kind() EventKind              { return KindInningEnd }
func (MoundVisit) Kind() EventKind             { return KindMoundVisit }
func (PitcherRemains) Kind() EventKind         { return KindPitcherRemains }
func (PitcherSwap) Kind() EventKind            { return KindPitcherSwap }
func (Ball) Kind() EventKind                   { return KindBall }
func (Strike) Kind() EventKind                 { return KindStrike }
func (Foul) Kind() EventKind                   { return KindFoul }
func (Walk) Kind() EventKind                   { return KindWalk }
func (HitByPitch) Kind() EventKind             { return KindHitByPitch }
func (FairBall) Kind() EventKind               { return KindFairBall }
func (StrikeOut) Kind() EventKind              { return KindStrikeOut }
func (BatterToBase) Kind() EventKind           { return KindBatterToBase }
func (HomeRun) Kind() EventKind                { return KindHomeRun }
func (CaughtOut) Kind() EventKind              { return KindCaughtOut }
func (GroundedOut) Kind() EventKind            { return KindGroundedOut }
func (ForceOut) Kind() EventKind               { return KindForceOut }
func (ReachOnFieldersChoice) Kind() EventKind  { return KindReachOnFieldersChoice }
func (DoublePlayGrounded) Kind() EventKind     { return KindDoublePlayGrounded }
func (DoublePlayCaught) Kind() EventKind       { return KindDoublePlayCaught }
func (ReachOnFieldingError) Kind() EventKind   { return KindReachOnFieldingError }
func (Balk) Kind() EventKind                   { return KindBalk }
func (WeatherDelivery) Kind() EventKind        { return KindWeatherDelivery }
func (WeatherShipment) Kind() EventKind        { return KindWeatherShipment }
func (WeatherSpecialDelivery) Kind() EventKind { return KindWeatherSpecialDelivery }
func (FallingStar) Kind() EventKind            { return KindFallingStar }
func (FallingStarOutcome) Kind() EventKind     { return KindFallingStarOutcome }
func (WeatherProsperity) Kind() EventKind      { return KindWeatherProsperity }
func (PhotoContest) Kind() EventKind           { return KindPhotoContest }
func (Party) Kind() EventKind                  { return KindParty }
func (WeatherReflection) Kind() EventKind      { return KindWeatherReflection }
func (KnownBug) Kind() EventKind               { return KindKnownBug }

func (Unrecognized) sealedEvent()           {}
func (LiveNow) sealedEvent()                {}
func (PitchingMatchup) sealedEvent()        {}
func (Lineup) sealedEvent()                 {}
func (PlayBall) sealedEvent()               {}
func (GameOver) sealedEvent()               {}
func (Recordkeeping) sealedEvent()          {}
func (InningStart) sealedEvent()            {}
func (NowBatting) sealedEvent()             {}
func (InningEnd) sealedEvent()              {}
func (MoundVisit) sealedEvent()             {}
func (PitcherRemains) sealedEvent()         {}
func (PitcherSwap) sealedEvent()            {}
func (Ball) sealedEvent()                   {}
func (Strike) sealedEvent()                 {}
func (Foul) sealedEvent()                   {}
func (Walk) sealedEvent()                   {}
func (HitByPitch) sealedEvent()             {}
func (FairBall) sealedEvent()               {}
func (StrikeOut) sealedEvent()              {}
func (BatterToBase) sealedEvent()           {}
func (HomeRun) sealedEvent()                {}
func (CaughtOut) sealedEvent()              {}
func (GroundedOut) sealedEvent()            {}
func (ForceOut) sealedEvent()               {}
func (ReachOnFieldersChoice) sealedEvent()  {}
func (DoublePlayGrounded) sealedEvent()     {}
func (DoublePlayCaught) sealedEvent()       {}
func (ReachOnFieldingError) sealedEvent()   {}
func (Balk) sealedEvent()                   {}
func (WeatherDelivery) sealedEvent()        {}
func (WeatherShipment) sealedEvent()        {}
func (WeatherSpecialDelivery) sealedEvent() {}
func (FallingStar) sealedEvent()            {}
func (FallingStarOutcome) sealedEvent()     {}
func (WeatherProsperity) sealedEvent()      {}
func (PhotoContest) sealedEvent()           {}
func (Party) sealedEvent()                  {}
func (WeatherReflection) sealedEvent()      {}
func (KnownBug) sealedEvent()               {}
