package schema

import (
	"fmt"
	"strings"
)

// FeedKind names one variant of the feed classification result.
type FeedKind string

const (
	FeedKindVerbatim           FeedKind = "Verbatim"
	FeedKindGameResult         FeedKind = "GameResult"
	FeedKindDelivery           FeedKind = "Delivery"
	FeedKindShipment           FeedKind = "Shipment"
	FeedKindSpecialDelivery    FeedKind = "SpecialDelivery"
	FeedKindAttributeChanges   FeedKind = "AttributeChanges"
	FeedKindAttributeEquals    FeedKind = "AttributeEquals"
	FeedKindEnchantment        FeedKind = "Enchantment"
	FeedKindModification       FeedKind = "Modification"
	FeedKindRecomposed         FeedKind = "Recomposed"
	FeedKindRetirement         FeedKind = "Retirement"
	FeedKindFallingStarOutcome FeedKind = "FallingStarOutcome"
	FeedKindTakeTheMound       FeedKind = "TakeTheMound"
	FeedKindTakeThePlate       FeedKind = "TakeThePlate"
	FeedKindSwapPlaces         FeedKind = "SwapPlaces"
	FeedKindReleased           FeedKind = "Released"
	FeedKindProsperous         FeedKind = "Prosperous"
	FeedKindPhotoContest       FeedKind = "PhotoContest"
	FeedKindMassAttributeEqual FeedKind = "MassAttributeEquals"
	FeedKindLotteryDonation    FeedKind = "LotteryDonation"
	FeedKindLotteryWin         FeedKind = "LotteryWin"
	FeedKindPlayerMoved        FeedKind = "PlayerMoved"
	FeedKindPlayerRelegated    FeedKind = "PlayerRelegated"
	FeedKindNameReset          FeedKind = "NameReset"
)

// AllFeedKinds lists every declared feed variant.
var AllFeedKinds = []FeedKind{
	FeedKindVerbatim, FeedKindGameResult, FeedKindDelivery,
	FeedKindShipment, FeedKindSpecialDelivery, FeedKindAttributeChanges,
	FeedKindAttributeEquals, FeedKindEnchantment, FeedKindModification,
	FeedKindRecomposed, FeedKindRetirement, FeedKindFallingStarOutcome,
	FeedKindTakeTheMound, FeedKindTakeThePlate, FeedKindSwapPlaces,
	FeedKindReleased, FeedKindProsperous, FeedKindPhotoContest,
	FeedKindMassAttributeEqual, FeedKindLotteryDonation, FeedKindLotteryWin,
	FeedKindPlayerMoved, FeedKindPlayerRelegated, FeedKindNameReset,
}

// FeedMessage is the closed tagged union over recognized feed entry
// shapes. A FeedMessage is a pure function of the entry's (tag, text);
// classification never consults game context or other entries.
type FeedMessage interface {
	FeedKind() FeedKind
	sealedFeed()
}

// Verbatim preserves an entry whose tag is absent, unknown, or whose text
// did not match the tag's template.
type Verbatim struct {
	// Tag is the raw tag string; empty when the entry predates tags.
	Tag  string `json:"tag,omitempty"`
	Text string `json:"text"`
}

type GameResult struct {
	HomeTeam  EmojiTeam `json:"home_team"`
	AwayTeam  EmojiTeam `json:"away_team"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
}

type FeedDelivery struct {
	Delivery Delivery `json:"delivery"`
}

type FeedShipment struct {
	Delivery Delivery `json:"delivery"`
}

type FeedSpecialDelivery struct {
	Delivery Delivery `json:"delivery"`
}

// AttributeChange is one "<player> gained +N <attribute>." clause.
type AttributeChange struct {
	Player    string    `json:"player"`
	Amount    int       `json:"amount"`
	Attribute Attribute `json:"attribute"`
}

type AttributeChanges struct {
	Changes []AttributeChange `json:"changes"`
}

type AttributeEquals struct {
	Player            string    `json:"player"`
	ChangingAttribute Attribute `json:"changing_attribute"`
	ValueAttribute    Attribute `json:"value_attribute"`
}

// EmojilessItem is an item reference without its emoji token, as feed
// enchantment text renders it.
type EmojilessItem struct {
	Prefix *ItemPrefix `json:"prefix,omitempty"`
	Name   ItemName    `json:"name"`
	Suffix *ItemSuffix `json:"suffix,omitempty"`
}

func (i EmojilessItem) String() string {
	s := ""
	if i.Prefix != nil {
		s = string(*i.Prefix) + " "
	}
	s += string(i.Name)
	if i.Suffix != nil {
		s += " " + string(*i.Suffix)
	}
	return s
}

// ParseEmojilessItem decodes "[prefix ]name[ suffix]" item text against
// the known prefix, base-name, and suffix vocabularies.
func ParseEmojilessItem(s string) (EmojilessItem, bool) {
	var out EmojilessItem
	for _, pre := range AllItemPrefixes {
		if rest, ok := strings.CutPrefix(s, string(pre)+" "); ok {
			p := pre
			out.Prefix = &p
			s = rest
			break
		}
	}
	for _, suf := range AllItemSuffixes {
		if rest, ok := strings.CutSuffix(s, " "+string(suf)); ok {
			x := suf
			out.Suffix = &x
			s = rest
			break
		}
	}
	name, ok := ParseItemName(s)
	if !ok {
		return EmojilessItem{}, false
	}
	out.Name = name
	return out, true
}

type Enchantment struct {
	Player    string        `json:"player"`
	Item      EmojilessItem `json:"item"`
	Amount    int           `json:"amount"`
	Attribute Attribute     `json:"attribute"`
	// SecondAmount/SecondAttribute carry the optional second bonus of the
	// two-part phrasing introduced in season 2.
	SecondAmount    int        `json:"second_amount,omitempty"`
	SecondAttribute *Attribute `json:"second_attribute,omitempty"`
	Compensatory    bool       `json:"compensatory,omitempty"`
}

type Modification struct {
	Player string `json:"player"`
	Gained string `json:"gained"`
	// Lost is set when the text reports a modification replaced.
	Lost string `json:"lost,omitempty"`
}

type Recomposed struct {
	Previous string `json:"previous"`
	New      string `json:"new"`
}

type Retirement struct {
	Previous string `json:"previous"`
	// Replacement is empty when no call-up is announced.
	Replacement string `json:"replacement,omitempty"`
}

type FeedFallingStarOutcome struct {
	Player       string                 `json:"player"`
	Outcome      FallingStarOutcomeKind `json:"outcome"`
	InfusionTier CelestialEnergyTier    `json:"infusion_tier,omitempty"`
}

type TakeTheMound struct {
	ToMound  string `json:"to_mound"`
	ToLineup string `json:"to_lineup"`
}

type TakeThePlate struct {
	ToPlate    string `json:"to_plate"`
	FromLineup string `json:"from_lineup"`
}

type SwapPlaces struct {
	PlayerOne string `json:"player_one"`
	PlayerTwo string `json:"player_two"`
}

type Released struct {
	Team string `json:"team"`
}

type Prosperous struct {
	Team   EmojiTeam `json:"team"`
	Income int       `json:"income"`
}

// EmojiPlayer is a player reference preceded by an emoji token, as the
// photo contest feed renders the winner.
type EmojiPlayer struct {
	Emoji string `json:"emoji"`
	Name  string `json:"name"`
}

// FeedPhotoContest is a team's photo contest haul. Player is set only
// by the phrasing that credits a single photographer.
type FeedPhotoContest struct {
	Player *EmojiPlayer `json:"player,omitempty"`
	Tokens int          `json:"tokens"`
}

// LineupSpot is one entry of a mass attribute reset's lineup listing.
// Slot is empty for entries from the older clause-per-player phrasing,
// which never printed positions.
type LineupSpot struct {
	Slot   Position `json:"slot,omitempty"`
	Player string   `json:"player"`
}

type MassAttributeEquals struct {
	Players           []LineupSpot `json:"players"`
	ChangingAttribute Attribute    `json:"changing_attribute"`
	ValueAttribute    Attribute    `json:"value_attribute"`
}

type LotteryDonation struct {
	Team   string `json:"team"`
	Amount int    `json:"amount"`
	League string `json:"league"`
}

type LotteryWin struct {
	Amount int    `json:"amount"`
	League string `json:"league"`
}

// PlayerMoved records a roster demotion to the bench. The emoji is kept
// raw; archived entries disagree on whose emoji it is.
type PlayerMoved struct {
	Emoji  string `json:"emoji"`
	Player string `json:"player"`
}

type PlayerRelegated struct {
	Emoji  string `json:"emoji"`
	Player string `json:"player"`
}

// NameReset is the fixed-text maintenance notice for a moderated team
// name.
type NameReset struct{}

func (Verbatim) FeedKind() FeedKind               { return FeedKindVerbatim }
func (GameResult) FeedKind() FeedKind             { return FeedKindGameResult }
func (FeedDelivery) FeedKind() FeedKind           { return FeedKindDelivery }
func (FeedShipment) FeedKind() FeedKind           { return FeedKindShipment }
func (FeedSpecialDelivery) FeedKind() FeedKind    { return FeedKindSpecialDelivery }
func (AttributeChanges) FeedKind() FeedKind       { return FeedKindAttributeChanges }
func (AttributeEquals) FeedKind() FeedKind        { return FeedKindAttributeEquals }
func (Enchantment) FeedKind() FeedKind            { return FeedKindEnchantment }
func (Modification) FeedKind() FeedKind           { return FeedKindModification }
func (Recomposed) FeedKind() FeedKind             { return FeedKindRecomposed }
func (Retirement) FeedKind() FeedKind             { return FeedKindRetirement }
func (FeedFallingStarOutcome) FeedKind() FeedKind { return FeedKindFallingStarOutcome }
func (TakeTheMound) FeedKind() FeedKind           { return FeedKindTakeTheMound }
func (TakeThePlate) FeedKind() FeedKind           { return FeedKindTakeThePlate }
func (SwapPlaces) FeedKind() FeedKind             { return FeedKindSwapPlaces }
func (Released) FeedKind() FeedKind               { return FeedKindReleased }
func (Prosperous) FeedKind() FeedKind             { return FeedKindProsperous }
func (FeedPhotoContest) FeedKind() FeedKind       { return FeedKindPhotoContest }
func (MassAttributeEquals) FeedKind() FeedKind    { return FeedKindMassAttributeEqual }
func (LotteryDonation) FeedKind() FeedKind        { return FeedKindLotteryDonation }
func (LotteryWin) FeedKind() FeedKind             { return FeedKindLotteryWin }
func (PlayerMoved) FeedKind() FeedKind            { return FeedKindPlayerMoved }
func (PlayerRelegated) FeedKind() FeedKind        { return FeedKindPlayerRelegated }
func (NameReset) FeedKind() FeedKind              { return FeedKindNameReset }

func (Verbatim) sealedFeed()               {}
func (GameResult) sealedFeed()             {}
func (FeedDelivery) sealedFeed()           {}
func (FeedShipment) sealedFeed()           {}
func (FeedSpecialDelivery) sealedFeed()    {}
func (AttributeChanges) sealedFeed()       {}
func (AttributeEquals) sealedFeed()        {}
func (Enchantment) sealedFeed()            {}
func (Modification) sealedFeed()           {}
func (Recomposed) sealedFeed()             {}
func (Retirement) sealedFeed()             {}
func (FeedFallingStarOutcome) sealedFeed() {}
func (TakeTheMound) sealedFeed()           {}
func (TakeThePlate) sealedFeed()           {}
func (SwapPlaces) sealedFeed()             {}
func (Released) sealedFeed()               {}
func (Prosperous) sealedFeed()             {}
func (FeedPhotoContest) sealedFeed()       {}
func (MassAttributeEquals) sealedFeed()    {}
func (LotteryDonation) sealedFeed()        {}
func (LotteryWin) sealedFeed()             {}
func (PlayerMoved) sealedFeed()            {}
func (PlayerRelegated) sealedFeed()        {}
func (NameReset) sealedFeed()              {}

// UnparseFeed reconstructs the original entry text for a classified feed
// record. The linter round-trips entries through this to detect grammar
// drift. Verbatim returns the preserved text unchanged.
func UnparseFeed(m FeedMessage) string {
	switch v := m.(type) {
	case Verbatim:
		return v.Text
	case GameResult:
		return fmt.Sprintf("%s vs. %s - FINAL %d-%d",
			v.AwayTeam, v.HomeTeam, v.AwayScore, v.HomeScore)
	case FeedDelivery:
		return unparseDelivery(v.Delivery, "Delivery")
	case FeedShipment:
		return unparseDelivery(v.Delivery, "Shipment")
	case FeedSpecialDelivery:
		return unparseDelivery(v.Delivery, "Special Delivery")
	case AttributeChanges:
		s := ""
		for i, c := range v.Changes {
			if i > 0 {
				s += " "
			}
			s += fmt.Sprintf("%s gained +%d %s.", c.Player, c.Amount, c.Attribute)
		}
		return s
	case AttributeEquals:
		return fmt.Sprintf("%s's %s was set to their %s.",
			v.Player, v.ChangingAttribute, v.ValueAttribute)
	case Enchantment:
		kind := "Item"
		if v.Compensatory {
			kind = "Compensatory"
		}
		if v.SecondAttribute != nil {
			return fmt.Sprintf("The %s Enchantment was a success! %s's %s was enchanted with +%d %s and +%d %s.",
				kind, v.Player, v.Item, v.Amount, v.Attribute, v.SecondAmount, *v.SecondAttribute)
		}
		return fmt.Sprintf("The %s Enchantment was a success! %s's %s gained a +%d %s bonus.",
			kind, v.Player, v.Item, v.Amount, v.Attribute)
	case Modification:
		if v.Lost != "" {
			return fmt.Sprintf("%s lost the %s Modification. %s gained the %s Modification.",
				v.Player, v.Lost, v.Player, v.Gained)
		}
		return fmt.Sprintf("%s gained the %s Modification.", v.Player, v.Gained)
	case Recomposed:
		return fmt.Sprintf("%s was Recomposed into %s.", v.Previous, v.New)
	case Retirement:
		s := fmt.Sprintf("😇 %s retired from Moonball!", v.Previous)
		if v.Replacement != "" {
			s += fmt.Sprintf(" %s was called up to take their place.", v.Replacement)
		}
		return s
	case FeedFallingStarOutcome:
		switch v.Outcome {
		case StarInjury:
			return v.Player + " was injured by the extreme force of the impact!"
		case StarInfusion:
			return v.Player + infusionPhrase(v.InfusionTier)
		case StarDeflected:
			return "It deflected off " + v.Player + " harmlessly."
		case StarRetired:
			return "😇 " + v.Player + " retired from Moonball!"
		}
		return v.Player
	case TakeTheMound:
		return fmt.Sprintf("%s was moved to the mound. %s was sent to the lineup.",
			v.ToMound, v.ToLineup)
	case TakeThePlate:
		return fmt.Sprintf("%s was sent to the plate. %s was pulled from the lineup.",
			v.ToPlate, v.FromLineup)
	case SwapPlaces:
		return fmt.Sprintf("%s swapped places with %s.", v.PlayerOne, v.PlayerTwo)
	case Released:
		return fmt.Sprintf("Released by the %s.", v.Team)
	case Prosperous:
		return fmt.Sprintf("%s are Prosperous! They earned %d 🪙.", v.Team, v.Income)
	case FeedPhotoContest:
		if v.Player != nil {
			return fmt.Sprintf("%s %s won %d 🪙 in a Photo Contest.",
				v.Player.Emoji, v.Player.Name, v.Tokens)
		}
		return fmt.Sprintf("Earned %d 🪙 in the Photo Contest.", v.Tokens)
	case MassAttributeEquals:
		if len(v.Players) > 0 && v.Players[0].Slot != "" {
			s := fmt.Sprintf("Batters' %s was set to their %s. Lineup:",
				v.ChangingAttribute, v.ValueAttribute)
			for i, p := range v.Players {
				if i > 0 {
					s += ","
				}
				s += fmt.Sprintf(" %d. %s %s", i+1, p.Slot, p.Player)
			}
			return s
		}
		s := ""
		for i, p := range v.Players {
			if i > 0 {
				s += " "
			}
			s += fmt.Sprintf("%s's %s became equal to their base %s.",
				p.Player, v.ChangingAttribute, v.ValueAttribute)
		}
		return s
	case LotteryDonation:
		return fmt.Sprintf("The %s donated %d 🪙 to the %s Lottery.",
			v.Team, v.Amount, v.League)
	case LotteryWin:
		return fmt.Sprintf("Won %d 🪙 from the %s Lottery!", v.Amount, v.League)
	case PlayerMoved:
		return fmt.Sprintf("%s %s was moved to the Bench.", v.Emoji, v.Player)
	case PlayerRelegated:
		return fmt.Sprintf("%s %s was relegated to the Even Lesser League.", v.Emoji, v.Player)
	case NameReset:
		return "The team's name was reset in accordance with site policy."
	}
	return ""
}

func unparseDelivery(d Delivery, label string) string {
	s := fmt.Sprintf("%s received a %s %s.", d.Player, d.Item, label)
	if d.Discarded != nil {
		s += fmt.Sprintf(" They discarded their %s.", *d.Discarded)
	}
	return s
}

func infusionPhrase(tier CelestialEnergyTier) string {
	switch tier {
	case Glimmer:
		return " was infused with a glimmer of celestial energy!"
	case Glow:
		return " began to glow brightly with celestial energy!"
	case FullyCharged:
		return " was fully charged with an abundance of celestial energy!"
	}
	return ""
}
