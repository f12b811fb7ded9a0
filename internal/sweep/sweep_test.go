package sweep

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/moonball-archive/scorebook/internal/feed"
	"github.com/moonball-archive/scorebook/internal/gamelog"
	"github.com/moonball-archive/scorebook/internal/league"
	"github.com/moonball-archive/scorebook/internal/publish"
	"github.com/moonball-archive/scorebook/internal/schema"
	"github.com/moonball-archive/scorebook/internal/store"
	"github.com/moonball-archive/scorebook/internal/team"
)

type fakeArchive struct {
	pages map[string]*league.GamesPage
	games map[string]*gamelog.Game
	teams map[string]*team.Team
}

func (a *fakeArchive) Games(_ context.Context, _ int, page string) (*league.GamesPage, error) {
	p, ok := a.pages[page]
	if !ok {
		return nil, fmt.Errorf("no such page %q", page)
	}
	return p, nil
}

func (a *fakeArchive) Game(_ context.Context, id string) (*gamelog.Game, error) {
	g, ok := a.games[id]
	if !ok {
		return nil, fmt.Errorf("no such game %q", id)
	}
	return g, nil
}

func (a *fakeArchive) Teams(_ context.Context) ([]league.TeamRef, error) {
	var refs []league.TeamRef
	for id, t := range a.teams {
		refs = append(refs, league.TeamRef{TeamID: id, Name: t.Name})
	}
	return refs, nil
}

func (a *fakeArchive) Team(_ context.Context, id string) (*team.Team, error) {
	t, ok := a.teams[id]
	if !ok {
		return nil, fmt.Errorf("no such team %q", id)
	}
	return t, nil
}

type fakeStore struct {
	mu       sync.Mutex
	rawGames    map[string]json.RawMessage
	rawEntities map[string]json.RawMessage
	parsed      map[string][]gamelog.ParsedEvent
	feeds       map[string][]schema.FeedMessage
	findings    []store.Finding
	runKind  string
	finished bool
	docs     int
	unrec    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rawGames:    map[string]json.RawMessage{},
		rawEntities: map[string]json.RawMessage{},
		parsed:      map[string][]gamelog.ParsedEvent{},
		feeds:       map[string][]schema.FeedMessage{},
	}
}

func (s *fakeStore) SaveRawGame(_ context.Context, gameID string, _, _ int, doc json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawGames[gameID] = doc
	return nil
}

func (s *fakeStore) SaveParsedEvents(_ context.Context, gameID string, events []gamelog.ParsedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parsed[gameID] = events
	return nil
}

func (s *fakeStore) SaveRawEntity(_ context.Context, entityType, entityID string, doc json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawEntities[entityType+"/"+entityID] = doc
	return nil
}

func (s *fakeStore) SaveFeedRecords(_ context.Context, entityType, entityID string, msgs []schema.FeedMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeds[entityType+"/"+entityID] = msgs
	return nil
}

func (s *fakeStore) RecordFinding(_ context.Context, f store.Finding) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findings = append(s.findings, f)
	return uuid.New(), nil
}

func (s *fakeStore) StartSweepRun(_ context.Context, kind string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runKind = kind
	return uuid.New(), nil
}

func (s *fakeStore) FinishSweepRun(_ context.Context, _ uuid.UUID, docs, unrecognized int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finished = true
	s.docs = docs
	s.unrec = unrecognized
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	summaries []publish.GameParsed
	errors    []publish.ParseError
}

func (p *fakePublisher) PublishGameParsed(summary publish.GameParsed) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.summaries = append(p.summaries, summary)
	return nil
}

func (p *fakePublisher) PublishParseError(e publish.ParseError) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errors = append(p.errors, e)
	return nil
}

func cleanGame() *gamelog.Game {
	return &gamelog.Game{
		AwaySP:        "Mina Park",
		AwayTeamEmoji: "🦈",
		AwayTeamName:  "Sharks",
		HomeSP:        "Lee Novak",
		HomeTeamEmoji: "🦩",
		HomeTeamName:  "Flamingos",
		Season:        5,
		Day:           12,
		EventLog: []gamelog.Event{
			{Event: "PlayBall", Message: `"PLAY BALL."`},
			{Event: "InningStart", Message: "Start of the top of the 1st. 🦈 Sharks batting. 🦩 Lee Novak pitching."},
			{Event: "Pitch", Message: "Ball. 1-0."},
			{Event: "InningEnd", Message: "End of the top of the 1st."},
		},
	}
}

func messyGame() *gamelog.Game {
	g := cleanGame()
	g.Day = 13
	g.EventLog[2].Message = "Total gibberish."
	return g
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestRunGames(t *testing.T) {
	arc := &fakeArchive{
		pages: map[string]*league.GamesPage{
			"": {Items: []league.GameRef{{GameID: "g1", Season: 5, Day: 12}}, NextPage: "p2"},
			"p2": {Items: []league.GameRef{{GameID: "g2", Season: 5, Day: 13}}},
		},
		games: map[string]*gamelog.Game{"g1": cleanGame(), "g2": messyGame()},
	}
	st := newFakeStore()
	pub := &fakePublisher{}
	r := NewRunner(Config{Season: 5, Workers: 2}, arc, st, pub, quietLogger())

	res, err := r.RunGames(context.Background())
	if err != nil {
		t.Fatalf("RunGames: %v", err)
	}
	if res.Docs != 2 || res.Unrecognized != 1 || res.Errors != 0 {
		t.Fatalf("result = %+v", res)
	}
	if res.RunID == uuid.Nil {
		t.Error("run id not assigned")
	}

	if len(st.rawGames) != 2 {
		t.Errorf("raw games saved = %d, want 2", len(st.rawGames))
	}
	if got := len(st.parsed["g1"]); got != 4 {
		t.Errorf("g1 parsed events = %d, want 4", got)
	}
	if len(st.findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(st.findings))
	}
	f := st.findings[0]
	if f.DocID != "g2" || f.Source != "game" || f.Text != "Total gibberish." {
		t.Errorf("finding = %+v", f)
	}
	if !st.finished || st.docs != 2 || st.unrec != 1 {
		t.Errorf("run bookkeeping: finished=%v docs=%d unrec=%d", st.finished, st.docs, st.unrec)
	}
	if st.runKind != "games" {
		t.Errorf("run kind = %q", st.runKind)
	}

	if len(pub.summaries) != 2 {
		t.Errorf("summaries published = %d, want 2", len(pub.summaries))
	}
	if len(pub.errors) != 1 || pub.errors[0].DocID != "g2" {
		t.Errorf("parse errors published = %+v", pub.errors)
	}
}

func TestRunGamesDryRun(t *testing.T) {
	arc := &fakeArchive{
		pages: map[string]*league.GamesPage{"": {Items: []league.GameRef{{GameID: "g1"}}}},
		games: map[string]*gamelog.Game{"g1": messyGame()},
	}
	st := newFakeStore()
	pub := &fakePublisher{}
	r := NewRunner(Config{Season: 5, Workers: 1, DryRun: true}, arc, st, pub, quietLogger())

	res, err := r.RunGames(context.Background())
	if err != nil {
		t.Fatalf("RunGames: %v", err)
	}
	if res.Docs != 1 || res.Unrecognized != 1 {
		t.Fatalf("result = %+v", res)
	}
	if len(st.rawGames) != 0 || len(st.findings) != 0 || st.finished {
		t.Error("dry run wrote to the store")
	}
	if len(pub.summaries) != 0 || len(pub.errors) != 0 {
		t.Error("dry run published")
	}
}

func TestRunGamesFetchErrorContinues(t *testing.T) {
	arc := &fakeArchive{
		pages: map[string]*league.GamesPage{
			"": {Items: []league.GameRef{{GameID: "missing"}, {GameID: "g1"}}},
		},
		games: map[string]*gamelog.Game{"g1": cleanGame()},
	}
	st := newFakeStore()
	r := NewRunner(Config{Season: 5, Workers: 1}, arc, st, &fakePublisher{}, quietLogger())

	res, err := r.RunGames(context.Background())
	if err != nil {
		t.Fatalf("RunGames: %v", err)
	}
	if res.Docs != 1 || res.Errors != 1 {
		t.Fatalf("result = %+v", res)
	}
}

func TestRunGamesCanceled(t *testing.T) {
	arc := &fakeArchive{
		pages: map[string]*league.GamesPage{"": {Items: []league.GameRef{{GameID: "g1"}}}},
		games: map[string]*gamelog.Game{"g1": cleanGame()},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(Config{Season: 5, Workers: 1}, arc, newFakeStore(), &fakePublisher{}, quietLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := r.RunGames(ctx); err != context.Canceled {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunGames did not return after cancellation")
	}
}

func TestRunTeamFeeds(t *testing.T) {
	tm := &team.Team{
		Name:  "Sharks",
		Emoji: "🦈",
		Feed: schema.VersionedOf([]feed.Entry{
			{Type: "release", Text: "Released by the Sharks."},
			{Type: "game", Text: "Something the grammars have never seen."},
			{Text: "Welcome to Moonball!"},
		}),
	}
	arc := &fakeArchive{teams: map[string]*team.Team{"t1": tm}}
	st := newFakeStore()
	r := NewRunner(Config{Workers: 1}, arc, st, &fakePublisher{}, quietLogger())

	res, err := r.RunTeamFeeds(context.Background(), []string{"t1", "missing"})
	if err != nil {
		t.Fatalf("RunTeamFeeds: %v", err)
	}
	if res.Docs != 1 || res.Unrecognized != 1 || res.Errors != 1 {
		t.Fatalf("result = %+v", res)
	}
	if st.runKind != "feeds" {
		t.Errorf("run kind = %q", st.runKind)
	}

	if _, ok := st.rawEntities["team/t1"]; !ok {
		t.Error("raw team not cached")
	}
	msgs := st.feeds["team/t1"]
	if len(msgs) != 3 {
		t.Fatalf("feed records saved = %d, want 3", len(msgs))
	}
	if _, ok := msgs[0].(schema.Released); !ok {
		t.Errorf("msgs[0] = %T, want Released", msgs[0])
	}

	if len(st.findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(st.findings))
	}
	if st.findings[0].EventType != "game" || st.findings[0].Source != "team" {
		t.Errorf("finding = %+v", st.findings[0])
	}
}

func TestRunTeamFeedsListsAllWhenUnspecified(t *testing.T) {
	arc := &fakeArchive{teams: map[string]*team.Team{
		"t1": {Name: "Sharks", Emoji: "🦈"},
		"t2": {Name: "Flamingos", Emoji: "🦩"},
	}}
	st := newFakeStore()
	r := NewRunner(Config{Workers: 1}, arc, st, &fakePublisher{}, quietLogger())

	res, err := r.RunTeamFeeds(context.Background(), nil)
	if err != nil {
		t.Fatalf("RunTeamFeeds: %v", err)
	}
	if res.Docs != 2 || res.Errors != 0 {
		t.Fatalf("result = %+v", res)
	}
}
