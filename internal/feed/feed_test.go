package feed

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/moonball-archive/scorebook/internal/schema"
)

func entry(tag, text string) Entry {
	return Entry{Emoji: "🦈", Season: 3, Day: Day{Number: 40}, Text: text, Type: tag}
}

func TestGameResult(t *testing.T) {
	msg := ClassifyFeedEvent(entry("game", "🦈 Sea Sharks vs. 🦩 Flamingos - FINAL 3-7"))
	got, ok := msg.(schema.GameResult)
	if !ok {
		t.Fatalf("got %T, want GameResult", msg)
	}
	want := schema.GameResult{
		HomeTeam:  schema.EmojiTeam{Emoji: "🦩", Name: "Flamingos"},
		AwayTeam:  schema.EmojiTeam{Emoji: "🦈", Name: "Sea Sharks"},
		HomeScore: 7,
		AwayScore: 3,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDeliveryVariants(t *testing.T) {
	lucky := schema.PrefixLucky
	fortune := schema.SuffixOfFortune

	tests := []struct {
		name string
		text string
		want schema.FeedMessage
	}{
		{
			name: "plain delivery",
			text: "Mina Park received a 🧢 Cap Delivery.",
			want: schema.FeedDelivery{Delivery: schema.Delivery{
				Player: "Mina Park",
				Item:   schema.Item{Emoji: "🧢", Name: schema.ItemCap},
			}},
		},
		{
			name: "shipment with prefix and suffix",
			text: "Lee Novak received a 🧢 Lucky Cap of Fortune Shipment.",
			want: schema.FeedShipment{Delivery: schema.Delivery{
				Player: "Lee Novak",
				Item:   schema.Item{Emoji: "🧢", Prefix: &lucky, Name: schema.ItemCap, Suffix: &fortune},
			}},
		},
		{
			name: "special delivery with discard",
			text: "Mina Park received a 🏏 Bat Special Delivery. They discarded their 🧤 Glove.",
			want: schema.FeedSpecialDelivery{Delivery: schema.Delivery{
				Player:    "Mina Park",
				Item:      schema.Item{Emoji: "🏏", Name: schema.ItemBat},
				Discarded: &schema.Item{Emoji: "🧤", Name: schema.ItemGlove},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFeedEvent(entry("game", tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAttributeChanges(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []schema.AttributeChange
	}{
		{
			name: "single",
			text: "Mina Park gained +5 Aiming.",
			want: []schema.AttributeChange{{Player: "Mina Park", Amount: 5, Attribute: schema.Aiming}},
		},
		{
			name: "leading space",
			text: " Mina Park gained +5 Aiming.",
			want: []schema.AttributeChange{{Player: "Mina Park", Amount: 5, Attribute: schema.Aiming}},
		},
		{
			name: "whole lineup",
			text: "Mina Park gained +2 Muscle. Lee Novak gained +2 Muscle. Bob E. Quiros gained +2 Muscle.",
			want: []schema.AttributeChange{
				{Player: "Mina Park", Amount: 2, Attribute: schema.Muscle},
				{Player: "Lee Novak", Amount: 2, Attribute: schema.Muscle},
				{Player: "Bob E. Quiros", Amount: 2, Attribute: schema.Muscle},
			},
		},
		{
			name: "negative gain",
			text: "Mina Park gained +-3 Greed.",
			want: []schema.AttributeChange{{Player: "Mina Park", Amount: -3, Attribute: schema.Greed}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ClassifyFeedEvent(entry("augment", tt.text))
			got, ok := msg.(schema.AttributeChanges)
			if !ok {
				t.Fatalf("got %T, want AttributeChanges", msg)
			}
			if !reflect.DeepEqual(got.Changes, tt.want) {
				t.Errorf("got %+v, want %+v", got.Changes, tt.want)
			}
		})
	}
}

func TestAttributeEqualsSpellings(t *testing.T) {
	want := schema.AttributeEquals{
		Player:            "Mina Park",
		ChangingAttribute: schema.Contact,
		ValueAttribute:    schema.Vision,
	}
	for _, text := range []string{
		"Mina Park's Contact was set to their Vision.",
		"Mina Park's Contact became equal to their current base Vision.",
		"Mina Park's Contact became equal to their base Vision.",
	} {
		got := ClassifyFeedEvent(entry("augment", text))
		if got != want {
			t.Errorf("%q: got %+v, want %+v", text, got, want)
		}
	}
}

func TestEnchantmentForms(t *testing.T) {
	vision := schema.Vision

	tests := []struct {
		name string
		text string
		want schema.Enchantment
	}{
		{
			name: "plain",
			text: "Mina Park's Cap was enchanted with +2 to Aiming.",
			want: schema.Enchantment{
				Player: "Mina Park", Item: schema.EmojilessItem{Name: schema.ItemCap},
				Amount: 2, Attribute: schema.Aiming,
			},
		},
		{
			name: "announced bonus",
			text: "The Item Enchantment was a success! Mina Park's Cap gained a +3 Aiming bonus.",
			want: schema.Enchantment{
				Player: "Mina Park", Item: schema.EmojilessItem{Name: schema.ItemCap},
				Amount: 3, Attribute: schema.Aiming,
			},
		},
		{
			name: "two part",
			text: "The Item Enchantment was a success! Mina Park's Cap was enchanted with a +3 Aiming and +2 Vision.",
			want: schema.Enchantment{
				Player: "Mina Park", Item: schema.EmojilessItem{Name: schema.ItemCap},
				Amount: 3, Attribute: schema.Aiming,
				SecondAmount: 2, SecondAttribute: &vision,
			},
		},
		{
			name: "compensatory two part",
			text: "The Compensatory Enchantment was a success! Mina Park's Cap was enchanted with +3 Aiming and +2 Vision.",
			want: schema.Enchantment{
				Player: "Mina Park", Item: schema.EmojilessItem{Name: schema.ItemCap},
				Amount: 3, Attribute: schema.Aiming,
				SecondAmount: 2, SecondAttribute: &vision,
				Compensatory: true,
			},
		},
		{
			name: "compensatory single bonus",
			text: "The Compensatory Enchantment was a success! Mina Park's Cap gained a +4 Aiming bonus.",
			want: schema.Enchantment{
				Player: "Mina Park", Item: schema.EmojilessItem{Name: schema.ItemCap},
				Amount: 4, Attribute: schema.Aiming,
				Compensatory: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFeedEvent(entry("augment", tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestModification(t *testing.T) {
	got := ClassifyFeedEvent(entry("augment", "Mina Park gained the ROBO Modification."))
	want := schema.FeedMessage(schema.Modification{Player: "Mina Park", Gained: "ROBO"})
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	got = ClassifyFeedEvent(entry("augment",
		"Mina Park lost the Slippery Modification. Mina Park gained the ROBO Modification."))
	want = schema.Modification{Player: "Mina Park", Gained: "ROBO", Lost: "Slippery"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// The replacement form repeats the player name; a mismatch is not a
	// modification notice.
	got = ClassifyFeedEvent(entry("augment",
		"Mina Park lost the Slippery Modification. Lee Novak gained the ROBO Modification."))
	if _, ok := got.(schema.Verbatim); !ok {
		t.Errorf("mismatched names: got %T, want Verbatim", got)
	}
}

func TestRecomposed(t *testing.T) {
	for _, text := range []string{
		"Mina Park was Recomposed into Bob E. Quiros.",
		"Mina Park was Recomposed using Bob E. Quiros.",
	} {
		got := ClassifyFeedEvent(entry("augment", text))
		want := schema.FeedMessage(schema.Recomposed{Previous: "Mina Park", New: "Bob E. Quiros"})
		if got != want {
			t.Errorf("%q: got %+v, want %+v", text, got, want)
		}
	}
}

func TestRetirement(t *testing.T) {
	got := ClassifyFeedEvent(entry("game",
		"😇 Mina Park retired from Moonball! Lee Novak was called up to take their place."))
	want := schema.FeedMessage(schema.Retirement{Previous: "Mina Park", Replacement: "Lee Novak"})
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// Season recaps drop the emoji and may omit the call-up.
	got = ClassifyFeedEvent(entry("season", "Mina Park retired from Moonball!"))
	want = schema.Retirement{Previous: "Mina Park"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFallingStarFeed(t *testing.T) {
	tests := []struct {
		text string
		want schema.FeedFallingStarOutcome
	}{
		{
			text: "Mina Park was injured by the extreme force of the impact!",
			want: schema.FeedFallingStarOutcome{Player: "Mina Park", Outcome: schema.StarInjury},
		},
		{
			text: "Mina Park was hit by a Falling Star!",
			want: schema.FeedFallingStarOutcome{Player: "Mina Park", Outcome: schema.StarInjury},
		},
		{
			text: "Mina Park was fully charged with an abundance of celestial energy!",
			want: schema.FeedFallingStarOutcome{
				Player: "Mina Park", Outcome: schema.StarInfusion, InfusionTier: schema.FullyCharged,
			},
		},
		{
			text: "It deflected off Mina Park harmlessly.",
			want: schema.FeedFallingStarOutcome{Player: "Mina Park", Outcome: schema.StarDeflected},
		},
	}
	for _, tt := range tests {
		got := ClassifyFeedEvent(entry("game", tt.text))
		if got != schema.FeedMessage(tt.want) {
			t.Errorf("%q: got %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestRosterMoves(t *testing.T) {
	tests := []struct {
		text string
		want schema.FeedMessage
	}{
		{
			text: "Mina Park was moved to the mound. Lee Novak was sent to the lineup.",
			want: schema.TakeTheMound{ToMound: "Mina Park", ToLineup: "Lee Novak"},
		},
		{
			text: "Mina Park was sent to the plate. Lee Novak was pulled from the lineup.",
			want: schema.TakeThePlate{ToPlate: "Mina Park", FromLineup: "Lee Novak"},
		},
		{
			text: "Mina Park swapped places with Lee Novak.",
			want: schema.SwapPlaces{PlayerOne: "Mina Park", PlayerTwo: "Lee Novak"},
		},
	}
	for _, tt := range tests {
		got := ClassifyFeedEvent(entry("augment", tt.text))
		if got != tt.want {
			t.Errorf("%q: got %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestReleased(t *testing.T) {
	got := ClassifyFeedEvent(entry("release", "Released by the Sea Sharks."))
	want := schema.FeedMessage(schema.Released{Team: "Sea Sharks"})
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestProsperousFeed(t *testing.T) {
	want := schema.FeedMessage(schema.Prosperous{
		Team:   schema.EmojiTeam{Emoji: "🦈", Name: "Sea Sharks"},
		Income: 35,
	})
	// Both tenses appear in archived entries.
	for _, text := range []string{
		"🦈 Sea Sharks are Prosperous! They earned 35 🪙.",
		"🦈 Sea Sharks are Prosperous! They earn 35 🪙.",
	} {
		got := ClassifyFeedEvent(entry("game", text))
		if got != want {
			t.Errorf("%q: got %+v, want %+v", text, got, want)
		}
	}
}

func TestPhotoContestFeed(t *testing.T) {
	got := ClassifyFeedEvent(entry("game", "Earned 20 🪙 in the Photo Contest."))
	want := schema.FeedMessage(schema.FeedPhotoContest{Tokens: 20})
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	got = ClassifyFeedEvent(entry("game", "🦈 Mina Park won 25 🪙 in a Photo Contest."))
	wantPlayer := schema.FeedPhotoContest{
		Player: &schema.EmojiPlayer{Emoji: "🦈", Name: "Mina Park"},
		Tokens: 25,
	}
	if !reflect.DeepEqual(got, schema.FeedMessage(wantPlayer)) {
		t.Errorf("got %+v, want %+v", got, wantPlayer)
	}
}

func TestMassAttributeEquals(t *testing.T) {
	msg := ClassifyFeedEvent(entry("augment",
		"Batters' Contact was set to their Vision. Lineup: 1. C Mina Park, 2. 1B Lee Novak"))
	got, ok := msg.(schema.MassAttributeEquals)
	if !ok {
		t.Fatalf("got %T, want MassAttributeEquals", msg)
	}
	want := schema.MassAttributeEquals{
		Players: []schema.LineupSpot{
			{Slot: schema.Catcher, Player: "Mina Park"},
			{Slot: schema.FirstBaseman, Player: "Lee Novak"},
		},
		ChangingAttribute: schema.Contact,
		ValueAttribute:    schema.Vision,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// The older era spells one clause per batter with no lineup slots.
	msg = ClassifyFeedEvent(entry("augment",
		"Mina Park's Contact became equal to their base Vision. Lee Novak's Contact became equal to their base Vision."))
	got, ok = msg.(schema.MassAttributeEquals)
	if !ok {
		t.Fatalf("got %T, want MassAttributeEquals", msg)
	}
	want = schema.MassAttributeEquals{
		Players: []schema.LineupSpot{
			{Player: "Mina Park"},
			{Player: "Lee Novak"},
		},
		ChangingAttribute: schema.Contact,
		ValueAttribute:    schema.Vision,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// A lone clause stays a single-player reset.
	msg = ClassifyFeedEvent(entry("augment",
		"Mina Park's Contact became equal to their base Vision."))
	if _, ok := msg.(schema.AttributeEquals); !ok {
		t.Errorf("single clause: got %T, want AttributeEquals", msg)
	}

	// Clauses disagreeing on the attribute pair are not one mass reset.
	msg = ClassifyFeedEvent(entry("augment",
		"Mina Park's Contact became equal to their base Vision. Lee Novak's Muscle became equal to their base Vision."))
	if _, ok := msg.(schema.Verbatim); !ok {
		t.Errorf("mixed attributes: got %T, want Verbatim", msg)
	}
}

func TestLotteryFeed(t *testing.T) {
	got := ClassifyFeedEvent(entry("lottery", "The Sea Sharks donated 100 🪙 to the Clam League Lottery."))
	want := schema.FeedMessage(schema.LotteryDonation{Team: "Sea Sharks", Amount: 100, League: "Clam League"})
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	got = ClassifyFeedEvent(entry("lottery", "Won 500 🪙 from the Clam League Lottery!"))
	want = schema.LotteryWin{Amount: 500, League: "Clam League"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRosterFeedTag(t *testing.T) {
	got := ClassifyFeedEvent(entry("roster", "🐵 Mina Park was moved to the Bench."))
	want := schema.FeedMessage(schema.PlayerMoved{Emoji: "🐵", Player: "Mina Park"})
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	got = ClassifyFeedEvent(entry("roster", "🧳 Lee Novak was relegated to the Even Lesser League."))
	want = schema.PlayerRelegated{Emoji: "🧳", Player: "Lee Novak"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNameReset(t *testing.T) {
	got := ClassifyFeedEvent(entry("maintenance",
		"The team's name was reset in accordance with site policy."))
	if got != schema.FeedMessage(schema.NameReset{}) {
		t.Errorf("got %+v, want NameReset", got)
	}
}

func TestVerbatimFallbacks(t *testing.T) {
	// Legacy entry with no tag: preserved, no template attempted.
	got := ClassifyFeedEvent(Entry{Text: "some ancient text"})
	if got != schema.FeedMessage(schema.Verbatim{Text: "some ancient text"}) {
		t.Errorf("absent tag: got %+v", got)
	}

	// Tag the compiled vocabulary does not know.
	got = ClassifyFeedEvent(entry("election", "Won 50 tokens."))
	if got != schema.FeedMessage(schema.Verbatim{Tag: "election", Text: "Won 50 tokens."}) {
		t.Errorf("unknown tag: got %+v", got)
	}

	// Known tag, text outside its templates.
	got = ClassifyFeedEvent(entry("game", "a brand new game notice"))
	if got != schema.FeedMessage(schema.Verbatim{Tag: "game", Text: "a brand new game notice"}) {
		t.Errorf("unmatched text: got %+v", got)
	}

	// Templates never match across tags: a release notice under the
	// augment tag stays verbatim.
	got = ClassifyFeedEvent(entry("augment", "Released by the Sea Sharks."))
	if _, ok := got.(schema.Verbatim); !ok {
		t.Errorf("cross-tag text: got %T, want Verbatim", got)
	}
}

func TestClassificationIsDeterministic(t *testing.T) {
	e := entry("game", "🦈 Sea Sharks vs. 🦩 Flamingos - FINAL 3-7")
	first := ClassifyFeedEvent(e)
	second := ClassifyFeedEvent(e)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input classified differently: %+v vs %+v", first, second)
	}
}

func TestClassifyFeedFailFast(t *testing.T) {
	entries := []Entry{
		entry("game", "🦈 Sea Sharks vs. 🦩 Flamingos - FINAL 3-7"),
		entry("game", "gibberish the templates do not know"),
	}
	_, err := ClassifyFeed(entries, Options{OnUnparsable: FailFast})
	var uerr *UnparsableError
	if !errors.As(err, &uerr) {
		t.Fatalf("want UnparsableError, got %v", err)
	}
	if uerr.Index != 1 || uerr.Tag != "game" {
		t.Errorf("got index=%d tag=%q", uerr.Index, uerr.Tag)
	}

	// Unknown tags are schema gaps, not grammar drift; they recover even
	// in fail-fast mode.
	msgs, err := ClassifyFeed([]Entry{entry("election", "Won 50 tokens.")}, Options{OnUnparsable: FailFast})
	if err != nil {
		t.Fatalf("unknown tag errored: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}

	msgs, err = ClassifyFeed(entries, Options{})
	if err != nil {
		t.Fatalf("recover mode errored: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if _, ok := msgs[1].(schema.Verbatim); !ok {
		t.Errorf("got %T, want Verbatim", msgs[1])
	}
}

func TestUnparseRoundTrip(t *testing.T) {
	// The linter replays classified entries back into text; these shapes
	// must reproduce their input exactly.
	for _, tt := range []struct{ tag, text string }{
		{"game", "🦈 Sea Sharks vs. 🦩 Flamingos - FINAL 3-7"},
		{"game", "Mina Park received a 🧢 Lucky Cap of Fortune Delivery."},
		{"game", "😇 Mina Park retired from Moonball! Lee Novak was called up to take their place."},
		{"augment", "Mina Park gained +2 Muscle. Lee Novak gained +2 Muscle."},
		{"augment", "Mina Park's Contact was set to their Vision."},
		{"augment", "Mina Park gained the ROBO Modification."},
		{"augment", "Mina Park swapped places with Lee Novak."},
		{"augment", "Batters' Contact was set to their Vision. Lineup: 1. C Mina Park, 2. 1B Lee Novak"},
		{"release", "Released by the Sea Sharks."},
		{"game", "🦈 Sea Sharks are Prosperous! They earned 35 🪙."},
		{"game", "Earned 20 🪙 in the Photo Contest."},
		{"game", "🦈 Mina Park won 25 🪙 in a Photo Contest."},
		{"lottery", "The Sea Sharks donated 100 🪙 to the Clam League Lottery."},
		{"lottery", "Won 500 🪙 from the Clam League Lottery!"},
		{"roster", "🐵 Mina Park was moved to the Bench."},
		{"maintenance", "The team's name was reset in accordance with site policy."},
	} {
		msg := ClassifyFeedEvent(entry(tt.tag, tt.text))
		if _, ok := msg.(schema.Verbatim); ok {
			t.Errorf("%q did not classify", tt.text)
			continue
		}
		if got := schema.UnparseFeed(msg); got != tt.text {
			t.Errorf("round trip of %q produced %q", tt.text, got)
		}
	}
}

func TestDayJSON(t *testing.T) {
	var d Day
	if err := json.Unmarshal([]byte(`17`), &d); err != nil {
		t.Fatal(err)
	}
	if d.Number != 17 || d.Special != "" {
		t.Errorf("got %+v", d)
	}

	if err := json.Unmarshal([]byte(`"Superstar Break"`), &d); err != nil {
		t.Fatal(err)
	}
	if d.Special != "Superstar Break" {
		t.Errorf("got %+v", d)
	}
	if d.String() != "Superstar Break" {
		t.Errorf("String() = %q", d.String())
	}

	b, err := json.Marshal(Day{Number: 17})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "17" {
		t.Errorf("marshal = %s", b)
	}
}
