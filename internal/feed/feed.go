// Package feed classifies team and player feed entries into structured
// records. Unlike the game log, a feed entry carries its kind as an
// explicit tag, so classification selects the one template set for that
// tag and never searches across tags. Entries are independent of each
// other and of any game context; classification is a pure function of
// (tag, text) and is safe to run concurrently.
package feed

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/moonball-archive/scorebook/internal/schema"
	"github.com/moonball-archive/scorebook/internal/textparse"
)

// Entry is one raw feed record from a team or player document.
type Entry struct {
	Emoji  string `json:"emoji"`
	Season int    `json:"season"`
	Day    Day    `json:"day"`
	Status string `json:"status"`
	Text   string `json:"text"`

	Timestamp time.Time `json:"ts"`

	// Type is the raw tag; empty on entries that predate tagging.
	Type string `json:"type,omitempty"`

	Links []Link `json:"links"`
}

// Link is a cross-reference from a feed entry's text to another
// document (a game, team, or player page).
type Link struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Index *int   `json:"index,omitempty"`
	Match string `json:"match"`
}

// Day is a season-day reference. Ordinary days are numeric; special
// days arrive as strings ("Superstar Break", "Election").
type Day struct {
	Number  int
	Special string
}

func (d Day) String() string {
	if d.Special != "" {
		return d.Special
	}
	return strconv.Itoa(d.Number)
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.Special != "" {
		return json.Marshal(d.Special)
	}
	return json.Marshal(d.Number)
}

func (d *Day) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &d.Special)
	}
	return json.Unmarshal(b, &d.Number)
}

// ClassifyFeedEvent classifies one feed entry. An absent or unknown tag
// yields Verbatim without attempting any template, as does text the
// tag's templates do not cover.
func ClassifyFeedEvent(e Entry) schema.FeedMessage {
	if e.Type == "" {
		return schema.Verbatim{Text: e.Text}
	}
	tag, ok := schema.ParseFeedEventType(e.Type)
	if !ok {
		return schema.Verbatim{Tag: e.Type, Text: e.Text}
	}

	var templates []template
	switch tag {
	case schema.FeedGame:
		templates = gameTemplates
	case schema.FeedAugment:
		templates = augmentTemplates
	case schema.FeedRelease:
		templates = releaseTemplates
	case schema.FeedSeason:
		templates = seasonTemplates
	case schema.FeedLottery:
		templates = lotteryTemplates
	case schema.FeedRoster:
		templates = rosterTemplates
	case schema.FeedMaintenance:
		templates = maintenanceTemplates
	}
	for _, tpl := range templates {
		s := textparse.New(e.Text)
		if msg, ok := tpl(&s); ok && s.Done() {
			return msg
		}
	}
	return schema.Verbatim{Tag: e.Type, Text: e.Text}
}

// template decodes one known text shape. A template must consume the
// whole entry for its result to count; leftover text means the shape
// did not really match.
type template func(*textparse.Scanner) (schema.FeedMessage, bool)

var gameTemplates = []template{
	gameResult,
	deliveryTemplate("Delivery"),
	deliveryTemplate("Shipment"),
	deliveryTemplate("Special Delivery"),
	starInjury,
	starInfusion,
	starDeflected,
	retirementTemplate(true),
	prosperous,
	photoContestEarned,
	photoContestWon,
}

var augmentTemplates = []template{
	attributeChanges,
	modification,
	enchantmentPlain,
	enchantmentAnnounced,
	enchantmentTwoPart,
	enchantmentCompensatory,
	attributeEquals,
	massAttributeLineup,
	massAttributeClauses,
	recomposed,
	takeTheMound,
	takeThePlate,
	swapPlaces,
}

var releaseTemplates = []template{released}

var seasonTemplates = []template{retirementTemplate(false)}

var lotteryTemplates = []template{donatedToLottery, wonLottery}

var rosterTemplates = []template{playerMoved, playerRelegated}

var maintenanceTemplates = []template{nameReset}

// nameUntil consumes a free-form name terminated by stop, extending
// across stop occurrences embedded in the name ("Bob E. Quiros" against
// stop ". ") until a candidate passes name validation.
func nameUntil(s *textparse.Scanner, stop string) (string, bool) {
	rest := s.Rest()
	from := 0
	for {
		i := strings.Index(rest[from:], stop)
		if i < 0 {
			return "", false
		}
		cand := rest[:from+i]
		if textparse.ValidName(cand) {
			s.Skip(from + i + len(stop))
			return cand, true
		}
		from += i + len(stop)
	}
}

// emojiTeamUntil consumes an "EMOJI Name" team reference terminated by
// stop.
func emojiTeamUntil(s *textparse.Scanner, stop string) (schema.EmojiTeam, bool) {
	save := *s
	seg, ok := s.Until(stop)
	if !ok {
		return schema.EmojiTeam{}, false
	}
	emoji, name, found := strings.Cut(seg, " ")
	if !found || emoji == "" || !textparse.ValidName(name) {
		*s = save
		return schema.EmojiTeam{}, false
	}
	return schema.EmojiTeam{Emoji: emoji, Name: name}, true
}

// itemUntil consumes an "EMOJI [prefix ]name[ suffix]" item reference
// terminated by stop.
func itemUntil(s *textparse.Scanner, stop string) (schema.Item, bool) {
	save := *s
	seg, ok := s.Until(stop)
	if !ok {
		return schema.Item{}, false
	}
	emoji, rest, found := strings.Cut(seg, " ")
	if !found {
		*s = save
		return schema.Item{}, false
	}
	item, ok := schema.ParseEmojilessItem(rest)
	if !ok {
		*s = save
		return schema.Item{}, false
	}
	return schema.Item{Emoji: emoji, Prefix: item.Prefix, Name: item.Name, Suffix: item.Suffix}, true
}

func emojilessItemUntil(s *textparse.Scanner, stop string) (schema.EmojilessItem, bool) {
	save := *s
	seg, ok := s.Until(stop)
	if !ok {
		return schema.EmojilessItem{}, false
	}
	item, ok := schema.ParseEmojilessItem(seg)
	if !ok {
		*s = save
		return schema.EmojilessItem{}, false
	}
	return item, true
}

func attributeUntil(s *textparse.Scanner, stop string) (schema.Attribute, bool) {
	save := *s
	seg, ok := s.Until(stop)
	if !ok {
		return "", false
	}
	attr, ok := schema.ParseAttribute(seg)
	if !ok {
		*s = save
		return "", false
	}
	return attr, true
}

// signedInt consumes an integer with an optional leading minus. Feed
// text spells attribute losses as "gained +-2".
func signedInt(s *textparse.Scanner) (int, bool) {
	save := *s
	neg := s.Tag("-")
	n, ok := s.Int()
	if !ok {
		*s = save
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// gameResult decodes "{away} vs. {home} - FINAL {away_score}-{home_score}".
func gameResult(s *textparse.Scanner) (schema.FeedMessage, bool) {
	away, ok := emojiTeamUntil(s, " vs. ")
	if !ok {
		return nil, false
	}
	home, ok := emojiTeamUntil(s, " - FINAL ")
	if !ok {
		return nil, false
	}
	awayScore, ok := s.Int()
	if !ok || !s.Tag("-") {
		return nil, false
	}
	homeScore, ok := s.Int()
	if !ok {
		return nil, false
	}
	return schema.GameResult{
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: homeScore,
		AwayScore: awayScore,
	}, true
}

// deliveryTemplate decodes "{player} received a {item} {label}." with an
// optional "They discarded their {item}." tail, one template per label.
func deliveryTemplate(label string) template {
	return func(s *textparse.Scanner) (schema.FeedMessage, bool) {
		player, ok := nameUntil(s, " received a ")
		if !ok {
			return nil, false
		}
		item, ok := itemUntil(s, " "+label+".")
		if !ok {
			return nil, false
		}
		d := schema.Delivery{Player: player, Item: item}

		save := *s
		if s.Tag(" They discarded their ") {
			if dropped, ok := itemUntil(s, "."); ok {
				d.Discarded = &dropped
			} else {
				*s = save
			}
		}
		switch label {
		case "Shipment":
			return schema.FeedShipment{Delivery: d}, true
		case "Special Delivery":
			return schema.FeedSpecialDelivery{Delivery: d}, true
		}
		return schema.FeedDelivery{Delivery: d}, true
	}
}

// starInjury covers both spellings the sim has used for a falling-star
// injury.
func starInjury(s *textparse.Scanner) (schema.FeedMessage, bool) {
	for _, tail := range []string{
		" was injured by the extreme force of the impact!",
		" was hit by a Falling Star!",
	} {
		save := *s
		if player, ok := nameUntil(s, tail); ok && s.Done() {
			return schema.FeedFallingStarOutcome{Player: player, Outcome: schema.StarInjury}, true
		}
		*s = save
	}
	return nil, false
}

var infusionTails = []struct {
	tail string
	tier schema.CelestialEnergyTier
}{
	{" was infused with a glimmer of celestial energy!", schema.Glimmer},
	{" began to glow brightly with celestial energy!", schema.Glow},
	{" was fully charged with an abundance of celestial energy!", schema.FullyCharged},
}

func starInfusion(s *textparse.Scanner) (schema.FeedMessage, bool) {
	for _, v := range infusionTails {
		save := *s
		if player, ok := nameUntil(s, v.tail); ok && s.Done() {
			return schema.FeedFallingStarOutcome{
				Player:       player,
				Outcome:      schema.StarInfusion,
				InfusionTier: v.tier,
			}, true
		}
		*s = save
	}
	return nil, false
}

func starDeflected(s *textparse.Scanner) (schema.FeedMessage, bool) {
	if !s.Tag("It deflected off ") {
		return nil, false
	}
	player, ok := nameUntil(s, " harmlessly.")
	if !ok {
		return nil, false
	}
	return schema.FeedFallingStarOutcome{Player: player, Outcome: schema.StarDeflected}, true
}

// retirementTemplate decodes a retirement notice with an optional
// call-up tail. Game-tagged feeds prefix the halo emoji; season-recap
// feeds do not.
func retirementTemplate(emoji bool) template {
	return func(s *textparse.Scanner) (schema.FeedMessage, bool) {
		if emoji && !s.Tag("😇 ") {
			return nil, false
		}
		previous, ok := nameUntil(s, " retired from Moonball!")
		if !ok {
			return nil, false
		}
		ret := schema.Retirement{Previous: previous}

		save := *s
		if s.Tag(" ") {
			if repl, ok := nameUntil(s, " was called up to take their place."); ok {
				ret.Replacement = repl
			} else {
				*s = save
			}
		}
		return ret, true
	}
}

// attributeChanges decodes one or more "{player} gained +{n} {attr}."
// clauses. Team augments report a whole lineup in one entry.
func attributeChanges(s *textparse.Scanner) (schema.FeedMessage, bool) {
	var changes []schema.AttributeChange
	for {
		save := *s
		if len(changes) > 0 && !s.Tag(" ") {
			break
		}
		if len(changes) == 0 {
			// Some entries carry a stray leading space.
			s.Tag(" ")
		}
		player, ok := nameUntil(s, " gained +")
		if !ok {
			*s = save
			break
		}
		amount, ok := signedInt(s)
		if !ok || !s.Tag(" ") {
			*s = save
			break
		}
		attr, ok := attributeUntil(s, ".")
		if !ok {
			*s = save
			break
		}
		changes = append(changes, schema.AttributeChange{Player: player, Amount: amount, Attribute: attr})
	}
	if len(changes) == 0 {
		return nil, false
	}
	return schema.AttributeChanges{Changes: changes}, true
}

// modification decodes a gained modification, with an optional lost
// modification first. The replacement form repeats the player name and
// both sentences must agree on it.
func modification(s *textparse.Scanner) (schema.FeedMessage, bool) {
	save := *s
	if player, ok := nameUntil(s, " lost the "); ok {
		if lost, ok := s.Until(" Modification. "); ok {
			if s.Tag(player+" gained the ") {
				if gained, ok := s.Until(" Modification."); ok {
					return schema.Modification{Player: player, Gained: gained, Lost: lost}, true
				}
			}
		}
	}
	*s = save

	// Name validation alone would let the fallback swallow a mismatched
	// replacement notice whole; a loss sentence inside the candidate means
	// this is not a plain gain.
	player, ok := nameUntil(s, " gained the ")
	if !ok || strings.Contains(player, " lost the ") {
		return nil, false
	}
	gained, ok := s.Until(" Modification.")
	if !ok {
		return nil, false
	}
	return schema.Modification{Player: player, Gained: gained}, true
}

// enchantmentPlain decodes "{p}'s {item} was enchanted with +{n} to
// {attr}.", the earliest enchantment phrasing.
func enchantmentPlain(s *textparse.Scanner) (schema.FeedMessage, bool) {
	player, ok := s.Until("'s ")
	if !ok {
		return nil, false
	}
	item, ok := emojilessItemUntil(s, " was enchanted with +")
	if !ok {
		return nil, false
	}
	amount, ok := s.Int()
	if !ok || !s.Tag(" to ") {
		return nil, false
	}
	attr, ok := attributeUntil(s, ".")
	if !ok {
		return nil, false
	}
	return schema.Enchantment{Player: player, Item: item, Amount: amount, Attribute: attr}, true
}

// enchantmentAnnounced decodes "The Item Enchantment was a success!
// {p}'s {item} gained a +{n} {attr} bonus."
func enchantmentAnnounced(s *textparse.Scanner) (schema.FeedMessage, bool) {
	if !s.Tag("The Item Enchantment was a success! ") {
		return nil, false
	}
	player, ok := s.Until("'s ")
	if !ok {
		return nil, false
	}
	item, ok := emojilessItemUntil(s, " gained a +")
	if !ok {
		return nil, false
	}
	amount, ok := s.Int()
	if !ok || !s.Tag(" ") {
		return nil, false
	}
	attr, ok := attributeUntil(s, " bonus.")
	if !ok {
		return nil, false
	}
	return schema.Enchantment{Player: player, Item: item, Amount: amount, Attribute: attr}, true
}

// enchantmentTwoPart decodes "The Item Enchantment was a success! {p}'s
// {item} was enchanted with [a ]+{n} {attr} and +{m} {attr}."
func enchantmentTwoPart(s *textparse.Scanner) (schema.FeedMessage, bool) {
	if !s.Tag("The Item Enchantment was a success! ") {
		return nil, false
	}
	player, ok := s.Until("'s ")
	if !ok {
		return nil, false
	}
	item, ok := emojilessItemUntil(s, " was enchanted with ")
	if !ok {
		return nil, false
	}
	msg, ok := enchantmentBonusPair(s, player, item)
	if !ok {
		return nil, false
	}
	return msg, true
}

// enchantmentCompensatory decodes the "Compensatory Enchantment"
// announcement, which uses either body form.
func enchantmentCompensatory(s *textparse.Scanner) (schema.FeedMessage, bool) {
	if !s.Tag("The Compensatory Enchantment was a success! ") {
		return nil, false
	}
	player, ok := s.Until("'s ")
	if !ok {
		return nil, false
	}

	save := *s
	if item, ok := emojilessItemUntil(s, " was enchanted with "); ok {
		if msg, ok := enchantmentBonusPair(s, player, item); ok {
			msg.Compensatory = true
			return msg, true
		}
	}
	*s = save

	item, ok := emojilessItemUntil(s, " gained a +")
	if !ok {
		return nil, false
	}
	amount, ok := s.Int()
	if !ok || !s.Tag(" ") {
		return nil, false
	}
	attr, ok := attributeUntil(s, " bonus.")
	if !ok {
		return nil, false
	}
	return schema.Enchantment{Player: player, Item: item, Amount: amount, Attribute: attr, Compensatory: true}, true
}

func enchantmentBonusPair(s *textparse.Scanner, player string, item schema.EmojilessItem) (schema.Enchantment, bool) {
	s.Tag("a ")
	if !s.Tag("+") {
		return schema.Enchantment{}, false
	}
	amount, ok := s.Int()
	if !ok || !s.Tag(" ") {
		return schema.Enchantment{}, false
	}
	attr, ok := attributeUntil(s, " and +")
	if !ok {
		return schema.Enchantment{}, false
	}
	second, ok := s.Int()
	if !ok || !s.Tag(" ") {
		return schema.Enchantment{}, false
	}
	secondAttr, ok := attributeUntil(s, ".")
	if !ok {
		return schema.Enchantment{}, false
	}
	return schema.Enchantment{
		Player:          player,
		Item:            item,
		Amount:          amount,
		Attribute:       attr,
		SecondAmount:    second,
		SecondAttribute: &secondAttr,
	}, true
}

// attributeEquals covers the three connector spellings this notice has
// gone through.
func attributeEquals(s *textparse.Scanner) (schema.FeedMessage, bool) {
	player, ok := s.Until("'s ")
	if !ok {
		return nil, false
	}
	for _, conn := range []string{
		" was set to their ",
		" became equal to their current base ",
		" became equal to their base ",
	} {
		save := *s
		changing, ok := attributeUntil(s, conn)
		if !ok {
			continue
		}
		value, ok := attributeUntil(s, ".")
		if !ok {
			*s = save
			continue
		}
		return schema.AttributeEquals{Player: player, ChangingAttribute: changing, ValueAttribute: value}, true
	}
	return nil, false
}

// recomposed covers both connector spellings.
func recomposed(s *textparse.Scanner) (schema.FeedMessage, bool) {
	for _, conn := range []string{" was Recomposed into ", " was Recomposed using "} {
		save := *s
		previous, ok := nameUntil(s, conn)
		if !ok {
			*s = save
			continue
		}
		next, ok := nameUntil(s, ".")
		if !ok || !s.Done() {
			*s = save
			continue
		}
		return schema.Recomposed{Previous: previous, New: next}, true
	}
	return nil, false
}

func takeTheMound(s *textparse.Scanner) (schema.FeedMessage, bool) {
	toMound, ok := nameUntil(s, " was moved to the mound. ")
	if !ok {
		return nil, false
	}
	toLineup, ok := nameUntil(s, " was sent to the lineup.")
	if !ok {
		return nil, false
	}
	return schema.TakeTheMound{ToMound: toMound, ToLineup: toLineup}, true
}

func takeThePlate(s *textparse.Scanner) (schema.FeedMessage, bool) {
	toPlate, ok := nameUntil(s, " was sent to the plate. ")
	if !ok {
		return nil, false
	}
	fromLineup, ok := nameUntil(s, " was pulled from the lineup.")
	if !ok {
		return nil, false
	}
	return schema.TakeThePlate{ToPlate: toPlate, FromLineup: fromLineup}, true
}

func swapPlaces(s *textparse.Scanner) (schema.FeedMessage, bool) {
	one, ok := nameUntil(s, " swapped places with ")
	if !ok {
		return nil, false
	}
	two, ok := nameUntil(s, ".")
	if !ok {
		return nil, false
	}
	return schema.SwapPlaces{PlayerOne: one, PlayerTwo: two}, true
}

// massAttributeLineup decodes the season 3+ mass reset, which lists the
// whole lineup after a single header sentence.
func massAttributeLineup(s *textparse.Scanner) (schema.FeedMessage, bool) {
	if !s.Tag("Batters' ") {
		return nil, false
	}
	changing, ok := attributeUntil(s, " was set to their ")
	if !ok {
		return nil, false
	}
	value, ok := attributeUntil(s, ". Lineup:")
	if !ok {
		return nil, false
	}
	var players []schema.LineupSpot
	for {
		if len(players) > 0 && !s.Tag(",") {
			break
		}
		if !s.Tag(" ") {
			return nil, false
		}
		if _, ok := s.Int(); !ok || !s.Tag(". ") {
			return nil, false
		}
		slotWord, ok := s.Until(" ")
		if !ok {
			return nil, false
		}
		slot, ok := schema.ParsePosition(slotWord)
		if !ok {
			return nil, false
		}
		name := s.Rest()
		if i := strings.Index(name, ","); i >= 0 {
			name = name[:i]
		}
		if !textparse.ValidName(name) {
			return nil, false
		}
		s.Skip(len(name))
		players = append(players, schema.LineupSpot{Slot: slot, Player: name})
	}
	if len(players) == 0 {
		return nil, false
	}
	return schema.MassAttributeEquals{
		Players:           players,
		ChangingAttribute: changing,
		ValueAttribute:    value,
	}, true
}

// massAttributeClauses decodes the older mass reset, one clause per
// batter joined by spaces. All clauses must agree on the attribute
// pair. A lone clause is an ordinary AttributeEquals, not a mass reset.
func massAttributeClauses(s *textparse.Scanner) (schema.FeedMessage, bool) {
	var players []schema.LineupSpot
	var changing, value schema.Attribute
	for {
		save := *s
		if len(players) > 0 && !s.Tag(" ") {
			break
		}
		player, ok := s.Until("'s ")
		if !ok {
			*s = save
			break
		}
		var ch, val schema.Attribute
		matched := false
		for _, conn := range []string{
			" became equal to their current base ",
			" became equal to their base ",
		} {
			clause := *s
			c, ok := attributeUntil(s, conn)
			if !ok {
				continue
			}
			v, ok := attributeUntil(s, ".")
			if !ok {
				*s = clause
				continue
			}
			ch, val, matched = c, v, true
			break
		}
		if !matched {
			*s = save
			break
		}
		if len(players) == 0 {
			changing, value = ch, val
		} else if ch != changing || val != value {
			*s = save
			break
		}
		players = append(players, schema.LineupSpot{Player: player})
	}
	if len(players) < 2 {
		return nil, false
	}
	return schema.MassAttributeEquals{
		Players:           players,
		ChangingAttribute: changing,
		ValueAttribute:    value,
	}, true
}

// prosperous covers both tenses of the Prosperity payout notice.
func prosperous(s *textparse.Scanner) (schema.FeedMessage, bool) {
	team, ok := emojiTeamUntil(s, " are Prosperous! They ")
	if !ok {
		return nil, false
	}
	if !s.Tag("earned ") && !s.Tag("earn ") {
		return nil, false
	}
	income, ok := s.Int()
	if !ok || !s.Tag(" 🪙.") {
		return nil, false
	}
	return schema.Prosperous{Team: team, Income: income}, true
}

func photoContestEarned(s *textparse.Scanner) (schema.FeedMessage, bool) {
	if !s.Tag("Earned ") {
		return nil, false
	}
	tokens, ok := s.Int()
	if !ok || !s.Tag(" 🪙 in the Photo Contest.") {
		return nil, false
	}
	return schema.FeedPhotoContest{Tokens: tokens}, true
}

func photoContestWon(s *textparse.Scanner) (schema.FeedMessage, bool) {
	emoji, ok := s.Emoji()
	if !ok {
		return nil, false
	}
	name, ok := nameUntil(s, " won ")
	if !ok {
		return nil, false
	}
	tokens, ok := s.Int()
	if !ok || !s.Tag(" 🪙 in a Photo Contest.") {
		return nil, false
	}
	return schema.FeedPhotoContest{
		Player: &schema.EmojiPlayer{Emoji: emoji, Name: name},
		Tokens: tokens,
	}, true
}

func donatedToLottery(s *textparse.Scanner) (schema.FeedMessage, bool) {
	if !s.Tag("The ") {
		return nil, false
	}
	team, ok := nameUntil(s, " donated ")
	if !ok {
		return nil, false
	}
	amount, ok := s.Int()
	if !ok || !s.Tag(" 🪙 to the ") {
		return nil, false
	}
	league, ok := nameUntil(s, " Lottery.")
	if !ok {
		return nil, false
	}
	return schema.LotteryDonation{Team: team, Amount: amount, League: league}, true
}

func wonLottery(s *textparse.Scanner) (schema.FeedMessage, bool) {
	if !s.Tag("Won ") {
		return nil, false
	}
	amount, ok := s.Int()
	if !ok || !s.Tag(" 🪙 from the ") {
		return nil, false
	}
	league, ok := nameUntil(s, " Lottery!")
	if !ok {
		return nil, false
	}
	return schema.LotteryWin{Amount: amount, League: league}, true
}

// playerMoved keeps the leading emoji raw; archived entries disagree on
// whose emoji it is.
func playerMoved(s *textparse.Scanner) (schema.FeedMessage, bool) {
	emoji, ok := s.Emoji()
	if !ok {
		return nil, false
	}
	player, ok := nameUntil(s, " was moved to the Bench.")
	if !ok {
		return nil, false
	}
	return schema.PlayerMoved{Emoji: emoji, Player: player}, true
}

func playerRelegated(s *textparse.Scanner) (schema.FeedMessage, bool) {
	emoji, ok := s.Emoji()
	if !ok {
		return nil, false
	}
	player, ok := nameUntil(s, " was relegated to the Even Lesser League.")
	if !ok {
		return nil, false
	}
	return schema.PlayerRelegated{Emoji: emoji, Player: player}, true
}

func nameReset(s *textparse.Scanner) (schema.FeedMessage, bool) {
	if !s.Tag("The team's name was reset in accordance with site policy.") {
		return nil, false
	}
	return schema.NameReset{}, true
}

func released(s *textparse.Scanner) (schema.FeedMessage, bool) {
	if !s.Tag("Released by the ") {
		return nil, false
	}
	team, ok := nameUntil(s, ".")
	if !ok {
		return nil, false
	}
	return schema.Released{Team: team}, true
}
