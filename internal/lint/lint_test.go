package lint

import (
	"testing"

	"github.com/moonball-archive/scorebook/internal/feed"
	"github.com/moonball-archive/scorebook/internal/gamelog"
	"github.com/moonball-archive/scorebook/internal/schema"
)

func TestLintGame(t *testing.T) {
	events := []gamelog.ParsedEvent{
		{Index: 0, Kind: schema.KindPlayBall, Message: schema.PlayBall{}},
		{Index: 1, Kind: schema.KindUnrecognized, Message: schema.Unrecognized{
			EventType: "pitch", Text: "a sentence no grammar knows",
		}},
		{Index: 2, Kind: schema.KindUnrecognized, Message: schema.Unrecognized{
			EventType: "pitch", Text: "🦈 Renamed Team batting.", Ambiguous: true,
		}},
	}

	report := LintGame("g1", events)
	if report.Clean() {
		t.Fatal("report should not be clean")
	}
	if report.Events != 3 || len(report.Unrecognized) != 2 {
		t.Fatalf("report = %+v", report)
	}
	if report.Unrecognized[0].Index != 1 || report.Unrecognized[0].Ambiguous {
		t.Errorf("first finding = %+v", report.Unrecognized[0])
	}
	if !report.Unrecognized[1].Ambiguous {
		t.Errorf("second finding = %+v", report.Unrecognized[1])
	}

	clean := LintGame("g2", []gamelog.ParsedEvent{
		{Index: 0, Kind: schema.KindPlayBall, Message: schema.PlayBall{}},
	})
	if !clean.Clean() {
		t.Errorf("clean game reported findings: %+v", clean)
	}
}

func feedEntry(tag, text string) feed.Entry {
	return feed.Entry{Text: text, Type: tag}
}

func TestLintFeed(t *testing.T) {
	entries := []feed.Entry{
		feedEntry("release", "Released by the Sea Sharks."),
		feedEntry("game", "text the game templates do not know"),
		feedEntry("election", "Won 50 tokens."),
		feedEntry("", "legacy untagged entry"),
	}
	msgs := make([]schema.FeedMessage, len(entries))
	for i, e := range entries {
		msgs[i] = feed.ClassifyFeedEvent(e)
	}

	report, err := LintFeed("team", "t1", entries, msgs)
	if err != nil {
		t.Fatal(err)
	}
	// Only the known-tag fallback counts; unknown and absent tags are
	// schema gaps, not findings.
	if len(report.Verbatim) != 1 || report.Verbatim[0].Index != 1 {
		t.Fatalf("verbatim findings = %+v", report.Verbatim)
	}
	if len(report.Drift) != 0 {
		t.Fatalf("drift findings = %+v", report.Drift)
	}
}

func TestLintFeedDrift(t *testing.T) {
	// A historical spelling classifies fine but reconstructs to the
	// current one.
	entries := []feed.Entry{
		feedEntry("augment", "Mina Park's Contact became equal to their base Vision."),
	}
	msgs := []schema.FeedMessage{feed.ClassifyFeedEvent(entries[0])}

	report, err := LintFeed("player", "p1", entries, msgs)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Drift) != 1 {
		t.Fatalf("drift findings = %+v", report.Drift)
	}
	if report.Drift[0].Got != "Mina Park's Contact was set to their Vision." {
		t.Errorf("reconstruction = %q", report.Drift[0].Got)
	}
}

func TestLintFeedMisaligned(t *testing.T) {
	_, err := LintFeed("team", "t1", []feed.Entry{feedEntry("game", "x")}, nil)
	if err == nil {
		t.Fatal("expected error on misaligned input")
	}
}

func TestAggregate(t *testing.T) {
	items := []Item{
		{EventType: "Pitch", Text: "Warped. 91.4 MPH."},
		{EventType: "Pitch", Text: "Warped. 88.0 MPH."},
		{EventType: "Pitch", Text: "Warped. 102.7 MPH."},
		{EventType: "Field", Text: "The ball vanished entirely."},
		{EventType: "Pitch", Text: "The ball vanished entirely."},
	}

	groups := Aggregate(items)
	if len(groups) != 3 {
		t.Fatalf("groups = %+v", groups)
	}
	if groups[0].EventType != "Pitch" || groups[0].Shape != "Warped. #.# MPH." || groups[0].Count != 3 {
		t.Errorf("top group = %+v", groups[0])
	}
	if groups[0].Example != "Warped. 91.4 MPH." {
		t.Errorf("example = %q", groups[0].Example)
	}
	// Same text under different event types stays separate.
	if groups[1].EventType == groups[2].EventType {
		t.Errorf("expected distinct event types, got %+v and %+v", groups[1], groups[2])
	}
}

func TestAggregateEmpty(t *testing.T) {
	if groups := Aggregate(nil); len(groups) != 0 {
		t.Errorf("groups = %+v", groups)
	}
}
