// Package schema defines the closed vocabulary shared by the game-log and
// feed grammars: event kind tags, payload enumerations, and the tagged
// unions classification results conform to.
//
// The variant sets are growth-only. Adding an upstream kind means adding a
// constant here, extending the matching All* list, and revisiting every
// dispatch site; the exhaustiveness tests fail until all of them handle
// the addition. No dispatch site may carry a default branch that could
// silently absorb a new kind.
package schema

// GameEventType is the kind tag the sim attaches to each game-log entry.
type GameEventType string

const (
	EventLiveNow                GameEventType = "LiveNow"
	EventPitchingMatchup        GameEventType = "PitchingMatchup"
	EventHomeLineup             GameEventType = "HomeLineup"
	EventAwayLineup             GameEventType = "AwayLineup"
	EventPlayBall               GameEventType = "PlayBall"
	EventInningStart            GameEventType = "InningStart"
	EventNowBatting             GameEventType = "NowBatting"
	EventPitch                  GameEventType = "Pitch"
	EventField                  GameEventType = "Field"
	EventInningEnd              GameEventType = "InningEnd"
	EventMoundVisit             GameEventType = "MoundVisit"
	EventGameOver               GameEventType = "GameOver"
	EventRecordkeeping          GameEventType = "Recordkeeping"
	EventWeatherDelivery        GameEventType = "WeatherDelivery"
	EventWeatherShipment        GameEventType = "WeatherShipment"
	EventWeatherSpecialDelivery GameEventType = "WeatherSpecialDelivery"
	EventFallingStar            GameEventType = "FallingStar"
	EventWeather                GameEventType = "Weather"
	EventBalk                   GameEventType = "Balk"
	EventWeatherProsperity      GameEventType = "WeatherProsperity"
	EventPhotoContest           GameEventType = "PhotoContest"
	EventParty                  GameEventType = "Party"
	EventWeatherReflection      GameEventType = "WeatherReflection"
)

// AllGameEventTypes lists every recognized game-log kind tag, in the order
// the sim introduced them.
var AllGameEventTypes = []GameEventType{
	EventLiveNow,
	EventPitchingMatchup,
	EventHomeLineup,
	EventAwayLineup,
	EventPlayBall,
	EventInningStart,
	EventNowBatting,
	EventPitch,
	EventField,
	EventInningEnd,
	EventMoundVisit,
	EventGameOver,
	EventRecordkeeping,
	EventWeatherDelivery,
	EventWeatherShipment,
	EventWeatherSpecialDelivery,
	EventFallingStar,
	EventWeather,
	EventBalk,
	EventWeatherProsperity,
	EventPhotoContest,
	EventParty,
	EventWeatherReflection,
}

// ParseGameEventType maps an upstream tag string onto the compiled schema.
func ParseGameEventType(s string) (GameEventType, bool) {
	for _, t := range AllGameEventTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// FeedEventType is the kind tag on a team or player feed entry. Entries
// written before the sim introduced tags carry none.
type FeedEventType string

const (
	FeedGame        FeedEventType = "game"
	FeedAugment     FeedEventType = "augment"
	FeedRelease     FeedEventType = "release"
	FeedSeason      FeedEventType = "season"
	FeedLottery     FeedEventType = "lottery"
	FeedRoster      FeedEventType = "roster"
	FeedMaintenance FeedEventType = "maintenance"
)

var AllFeedEventTypes = []FeedEventType{
	FeedGame, FeedAugment, FeedRelease, FeedSeason, FeedLottery, FeedRoster,
	FeedMaintenance,
}

func ParseFeedEventType(s string) (FeedEventType, bool) {
	for _, t := range AllFeedEventTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// TopBottom is the half of an inning.
type TopBottom string

const (
	Top    TopBottom = "top"
	Bottom TopBottom = "bottom"
)

func ParseTopBottom(s string) (TopBottom, bool) {
	switch s {
	case "top":
		return Top, true
	case "bottom":
		return Bottom, true
	}
	return "", false
}

// Flip returns the other half.
func (t TopBottom) Flip() TopBottom {
	if t == Top {
		return Bottom
	}
	return Top
}

// BattingSide maps the half-inning onto the side at bat.
func (t TopBottom) BattingSide() HomeAway {
	if t == Top {
		return Away
	}
	return Home
}

// HomeAway identifies one of the two teams in a game.
type HomeAway string

const (
	Home HomeAway = "Home"
	Away HomeAway = "Away"
)

func (h HomeAway) Flip() HomeAway {
	if h == Home {
		return Away
	}
	return Home
}

// Base is a normalized base identity.
type Base string

const (
	HomePlate  Base = "home"
	FirstBase  Base = "first"
	SecondBase Base = "second"
	ThirdBase  Base = "third"
)

// ParseBaseVariant recognizes every spelling the sim uses for a base:
// "first", "first base", "1B", and so on. The normalized Base is returned
// alongside the variant that actually appeared, so round trips preserve
// the exact source spelling.
func ParseBaseVariant(s string) (Base, string, bool) {
	switch s {
	case "home":
		return HomePlate, s, true
	case "first", "first base", "1B":
		return FirstBase, s, true
	case "second", "second base", "2B":
		return SecondBase, s, true
	case "third", "third base", "3B":
		return ThirdBase, s, true
	}
	return "", "", false
}

// Distance is how far a batter advances on a clean hit, recognized from
// the verb the commentary uses.
type Distance string

const (
	Single Distance = "singles"
	Double Distance = "doubles"
	Triple Distance = "triples"
)

func ParseDistance(s string) (Distance, bool) {
	switch s {
	case "singles":
		return Single, true
	case "doubles":
		return Double, true
	case "triples":
		return Triple, true
	}
	return "", false
}

// Position is a fielding or roster position acronym.
type Position string

const (
	Pitcher          Position = "P"
	Catcher          Position = "C"
	FirstBaseman     Position = "1B"
	SecondBaseman    Position = "2B"
	ThirdBaseman     Position = "3B"
	ShortStop        Position = "SS"
	LeftField        Position = "LF"
	CenterField      Position = "CF"
	RightField       Position = "RF"
	StartingPitcher  Position = "SP"
	ReliefPitcher    Position = "RP"
	Closer           Position = "CL"
	DesignatedHitter Position = "DH"
)

var AllPositions = []Position{
	Pitcher, Catcher, FirstBaseman, SecondBaseman, ThirdBaseman, ShortStop,
	LeftField, CenterField, RightField, StartingPitcher, ReliefPitcher,
	Closer, DesignatedHitter,
}

func ParsePosition(s string) (Position, bool) {
	for _, p := range AllPositions {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// FairBallType is the contact classification on a ball put in play.
type FairBallType string

const (
	GroundBall FairBallType = "ground ball"
	FlyBall    FairBallType = "fly ball"
	LineDrive  FairBallType = "line drive"
	Popup      FairBallType = "popup"
)

func ParseFairBallType(s string) (FairBallType, bool) {
	switch s {
	case "ground ball":
		return GroundBall, true
	case "fly ball":
		return FlyBall, true
	case "line drive":
		return LineDrive, true
	case "popup":
		return Popup, true
	}
	return "", false
}

// ParseFairBallVerb recognizes the verb form, e.g. "flies" for a fly ball.
// "grounded" appears in older seasons' double-play phrasing.
func ParseFairBallVerb(s string) (FairBallType, bool) {
	switch s {
	case "grounds", "grounded":
		return GroundBall, true
	case "flies":
		return FlyBall, true
	case "lines":
		return LineDrive, true
	case "pops":
		return Popup, true
	}
	return "", false
}

// FairBallDestination is where a fair ball is hit, as phrased by the sim.
type FairBallDestination string

const (
	ToPitcher     FairBallDestination = "the pitcher"
	ToCatcher     FairBallDestination = "the catcher"
	ToShortStop   FairBallDestination = "the shortstop"
	ToFirstBase   FairBallDestination = "first base"
	ToSecondBase  FairBallDestination = "second base"
	ToThirdBase   FairBallDestination = "third base"
	ToLeftField   FairBallDestination = "left field"
	ToCenterField FairBallDestination = "center field"
	ToRightField  FairBallDestination = "right field"
)

var AllFairBallDestinations = []FairBallDestination{
	ToPitcher, ToCatcher, ToShortStop, ToFirstBase, ToSecondBase,
	ToThirdBase, ToLeftField, ToCenterField, ToRightField,
}

func ParseFairBallDestination(s string) (FairBallDestination, bool) {
	for _, d := range AllFairBallDestinations {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// StrikeType distinguishes a called strike from a swing and miss.
type StrikeType string

const (
	Looking  StrikeType = "looking"
	Swinging StrikeType = "swinging"
)

func ParseStrikeType(s string) (StrikeType, bool) {
	switch s {
	case "looking":
		return Looking, true
	case "swinging":
		return Swinging, true
	}
	return "", false
}

// FoulType distinguishes a foul tip from a foul ball.
type FoulType string

const (
	FoulTip  FoulType = "tip"
	FoulBall FoulType = "ball"
)

func ParseFoulType(s string) (FoulType, bool) {
	switch s {
	case "tip":
		return FoulTip, true
	case "ball":
		return FoulBall, true
	}
	return "", false
}

// FieldingErrorType is the error classification on a misplay. The sim
// capitalizes it inconsistently across seasons, so parsing folds case.
type FieldingErrorType string

const (
	ThrowingError FieldingErrorType = "throwing"
	FieldingError FieldingErrorType = "fielding"
)

func ParseFieldingErrorType(s string) (FieldingErrorType, bool) {
	switch s {
	case "throwing", "Throwing":
		return ThrowingError, true
	case "fielding", "Fielding":
		return FieldingError, true
	}
	return "", false
}

// MoundVisitType distinguishes a plain visit from a pitching change.
type MoundVisitType string

const (
	PlainMoundVisit MoundVisitType = "MoundVisit"
	PitchingChange  MoundVisitType = "PitchingChange"
)

// GameOverMessage is the closed set of sign-off lines the sim uses.
type GameOverMessage string

const (
	GameOverDot   GameOverMessage = "Game Over."
	GameOverQuote GameOverMessage = `"GAME OVER."`
)

func ParseGameOverMessage(s string) (GameOverMessage, bool) {
	switch s {
	case string(GameOverDot):
		return GameOverDot, true
	case string(GameOverQuote):
		return GameOverQuote, true
	}
	return "", false
}

// PitchType is the sim's pitch repertoire.
type PitchType string

const (
	Fastball     PitchType = "Fastball"
	Sinker       PitchType = "Sinker"
	Slider       PitchType = "Slider"
	Changeup     PitchType = "Changeup"
	Curveball    PitchType = "Curveball"
	Cutter       PitchType = "Cutter"
	Sweeper      PitchType = "Sweeper"
	KnuckleCurve PitchType = "Knuckle Curve"
	Splitter     PitchType = "Splitter"
)

var AllPitchTypes = []PitchType{
	Fastball, Sinker, Slider, Changeup, Curveball, Cutter, Sweeper,
	KnuckleCurve, Splitter,
}

func ParsePitchType(s string) (PitchType, bool) {
	for _, p := range AllPitchTypes {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// Attribute is a named player attribute that augments and enchantments
// modify. The list grows with the sim; additions go at the end.
type Attribute string

const (
	Aiming        Attribute = "Aiming"
	Contact       Attribute = "Contact"
	Cunning       Attribute = "Cunning"
	Discipline    Attribute = "Discipline"
	Insight       Attribute = "Insight"
	Intimidation  Attribute = "Intimidation"
	Lift          Attribute = "Lift"
	Muscle        Attribute = "Muscle"
	Selflessness  Attribute = "Selflessness"
	Vision        Attribute = "Vision"
	Determination Attribute = "Determination"
	Wisdom        Attribute = "Wisdom"
	Accuracy      Attribute = "Accuracy"
	Control       Attribute = "Control"
	Defiance      Attribute = "Defiance"
	Guts          Attribute = "Guts"
	Persuasion    Attribute = "Persuasion"
	Presence      Attribute = "Presence"
	Rotation      Attribute = "Rotation"
	Stamina       Attribute = "Stamina"
	Stuff         Attribute = "Stuff"
	Velocity      Attribute = "Velocity"
	Acrobatics    Attribute = "Acrobatics"
	Agility       Attribute = "Agility"
	Arm           Attribute = "Arm"
	Awareness     Attribute = "Awareness"
	Composure     Attribute = "Composure"
	Dexterity     Attribute = "Dexterity"
	Patience      Attribute = "Patience"
	Reaction      Attribute = "Reaction"
	Greed         Attribute = "Greed"
	Performance   Attribute = "Performance"
	Speed         Attribute = "Speed"
	Stealth       Attribute = "Stealth"
	Luck          Attribute = "Luck"
)

var AllAttributes = []Attribute{
	Aiming, Contact, Cunning, Discipline, Insight, Intimidation, Lift,
	Muscle, Selflessness, Vision, Determination, Wisdom, Accuracy, Control,
	Defiance, Guts, Persuasion, Presence, Rotation, Stamina, Stuff,
	Velocity, Acrobatics, Agility, Arm, Awareness, Composure, Dexterity,
	Patience, Reaction, Greed, Performance, Speed, Stealth, Luck,
}

func ParseAttribute(s string) (Attribute, bool) {
	for _, a := range AllAttributes {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// ItemName is the base name of an equippable item.
type ItemName string

const (
	ItemBat        ItemName = "Bat"
	ItemGlove      ItemName = "Glove"
	ItemMitt       ItemName = "Mitt"
	ItemCap        ItemName = "Cap"
	ItemHelmet     ItemName = "Helmet"
	ItemCleats     ItemName = "Cleats"
	ItemSunglasses ItemName = "Sunglasses"
	ItemNecklace   ItemName = "Necklace"
	ItemRing       ItemName = "Ring"
)

var AllItemNames = []ItemName{
	ItemBat, ItemGlove, ItemMitt, ItemCap, ItemHelmet, ItemCleats,
	ItemSunglasses, ItemNecklace, ItemRing,
}

func ParseItemName(s string) (ItemName, bool) {
	for _, n := range AllItemNames {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

// ItemPrefix is an optional quality prefix on an item name.
type ItemPrefix string

const (
	PrefixBlazing ItemPrefix = "Blazing"
	PrefixSturdy  ItemPrefix = "Sturdy"
	PrefixLucky   ItemPrefix = "Lucky"
	PrefixShiny   ItemPrefix = "Shiny"
	PrefixGolden  ItemPrefix = "Golden"
	PrefixCursed  ItemPrefix = "Cursed"
)

var AllItemPrefixes = []ItemPrefix{
	PrefixBlazing, PrefixSturdy, PrefixLucky, PrefixShiny, PrefixGolden,
	PrefixCursed,
}

func ParseItemPrefix(s string) (ItemPrefix, bool) {
	for _, p := range AllItemPrefixes {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// ItemSuffix is an optional "of ..." suffix on an item name.
type ItemSuffix string

const (
	SuffixOfPower   ItemSuffix = "of Power"
	SuffixOfSpeed   ItemSuffix = "of Speed"
	SuffixOfFortune ItemSuffix = "of Fortune"
	SuffixOfVision  ItemSuffix = "of Vision"
	SuffixOfTheArm  ItemSuffix = "of the Arm"
)

var AllItemSuffixes = []ItemSuffix{
	SuffixOfPower, SuffixOfSpeed, SuffixOfFortune, SuffixOfVision,
	SuffixOfTheArm,
}

func ParseItemSuffix(s string) (ItemSuffix, bool) {
	for _, x := range AllItemSuffixes {
		if string(x) == s {
			return x, true
		}
	}
	return "", false
}

// ViolationType is the category the ROBO-UMP cites when ejecting a
// player. The infraction inside the parentheses is free text; only the
// category is a closed set.
type ViolationType string

const (
	SportsmanshipViolation ViolationType = "Sportsmanship"
	UniformViolation       ViolationType = "Uniform"
	CommunicationViolation ViolationType = "Communication"
)

var AllViolationTypes = []ViolationType{
	SportsmanshipViolation, UniformViolation, CommunicationViolation,
}

func ParseViolationType(s string) (ViolationType, bool) {
	for _, v := range AllViolationTypes {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// KnownBugKind names a sim bug whose broken output is stable enough to
// classify. These are kept distinct from Unrecognized: the text is
// malformed upstream, not unmatched by us.
type KnownBugKind string

const (
	// BugFirstBasemanChoosesAGhost is a fielder's choice where the out
	// sentence never arrives; the message ends at the first baseman.
	BugFirstBasemanChoosesAGhost KnownBugKind = "FirstBasemanChoosesAGhost"
	// BugNoOneProspers is a prosperity event with an empty message: both
	// incomes were zero and the sim printed nothing.
	BugNoOneProspers KnownBugKind = "NoOneProspers"
)

// CelestialEnergyTier grades a falling-star infusion.
type CelestialEnergyTier string

const (
	Glimmer      CelestialEnergyTier = "Glimmer"
	Glow         CelestialEnergyTier = "Glow"
	FullyCharged CelestialEnergyTier = "FullyCharged"
)

var AllCelestialEnergyTiers = []CelestialEnergyTier{Glimmer, Glow, FullyCharged}
