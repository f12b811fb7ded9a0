// Package sweep runs batch classification over the archive: every
// completed game of a season, or the feeds of a set of tracked
// entities. Games are independent, so a sweep fans out across a bounded
// pool of workers.
package sweep

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/moonball-archive/scorebook/internal/feed"
	"github.com/moonball-archive/scorebook/internal/gamelog"
	"github.com/moonball-archive/scorebook/internal/league"
	"github.com/moonball-archive/scorebook/internal/lint"
	"github.com/moonball-archive/scorebook/internal/publish"
	"github.com/moonball-archive/scorebook/internal/schema"
	"github.com/moonball-archive/scorebook/internal/store"
	"github.com/moonball-archive/scorebook/internal/team"
)

// Archive is the slice of the league client a sweep needs.
type Archive interface {
	Games(ctx context.Context, season int, page string) (*league.GamesPage, error)
	Game(ctx context.Context, id string) (*gamelog.Game, error)
	Teams(ctx context.Context) ([]league.TeamRef, error)
	Team(ctx context.Context, id string) (*team.Team, error)
}

// Saver is the slice of the store a sweep needs.
type Saver interface {
	SaveRawGame(ctx context.Context, gameID string, season, day int, doc json.RawMessage) error
	SaveParsedEvents(ctx context.Context, gameID string, events []gamelog.ParsedEvent) error
	SaveRawEntity(ctx context.Context, entityType, entityID string, doc json.RawMessage) error
	SaveFeedRecords(ctx context.Context, entityType, entityID string, msgs []schema.FeedMessage) error
	RecordFinding(ctx context.Context, f store.Finding) (uuid.UUID, error)
	StartSweepRun(ctx context.Context, kind string) (uuid.UUID, error)
	FinishSweepRun(ctx context.Context, id uuid.UUID, docs, unrecognized int) error
}

// Publisher is the slice of the NATS client a sweep needs.
type Publisher interface {
	PublishGameParsed(summary publish.GameParsed) error
	PublishParseError(e publish.ParseError) error
}

// Config holds the sweep configuration.
type Config struct {
	Season       int
	Workers      int
	OnUnparsable gamelog.OnUnparsable
	// DryRun classifies and lints without writing or publishing.
	DryRun bool
}

// Runner orchestrates one sweep.
type Runner struct {
	cfg    Config
	arc    Archive
	store  Saver
	pub    Publisher
	logger *slog.Logger
}

func NewRunner(cfg Config, arc Archive, s Saver, pub Publisher, logger *slog.Logger) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Runner{cfg: cfg, arc: arc, store: s, pub: pub, logger: logger}
}

// Result is the totals of one sweep.
type Result struct {
	RunID        uuid.UUID
	Docs         int
	Unrecognized int
	Errors       int
}

// RunGames classifies every completed game of the configured season.
func (r *Runner) RunGames(ctx context.Context) (Result, error) {
	refs, err := r.listGames(ctx)
	if err != nil {
		return Result{}, err
	}
	r.logger.Info("sweep starting", "season", r.cfg.Season, "games", len(refs), "workers", r.cfg.Workers)

	var res Result
	if !r.cfg.DryRun {
		res.RunID, err = r.store.StartSweepRun(ctx, "games")
		if err != nil {
			return Result{}, fmt.Errorf("start sweep run: %w", err)
		}
	}

	jobs := make(chan league.GameRef)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := 0; i < r.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ref := range jobs {
				if ctx.Err() != nil {
					continue
				}
				unrec, err := r.processGame(ctx, res.RunID, ref)
				mu.Lock()
				if err != nil {
					r.logger.Error("game sweep failed", "game_id", ref.GameID, "error", err)
					res.Errors++
				} else {
					res.Docs++
					res.Unrecognized += unrec
				}
				mu.Unlock()
			}
		}()
	}

	for _, ref := range refs {
		if ctx.Err() != nil {
			break
		}
		jobs <- ref
	}
	close(jobs)
	wg.Wait()

	if ctx.Err() != nil {
		return res, ctx.Err()
	}
	if !r.cfg.DryRun {
		if err := r.store.FinishSweepRun(ctx, res.RunID, res.Docs, res.Unrecognized); err != nil {
			return res, fmt.Errorf("finish sweep run: %w", err)
		}
	}

	r.logger.Info("sweep complete",
		"games", res.Docs,
		"unrecognized", res.Unrecognized,
		"errors", res.Errors,
		"dry_run", r.cfg.DryRun,
	)
	return res, nil
}

func (r *Runner) listGames(ctx context.Context) ([]league.GameRef, error) {
	var refs []league.GameRef
	page := ""
	for {
		p, err := r.arc.Games(ctx, r.cfg.Season, page)
		if err != nil {
			return nil, fmt.Errorf("list games: %w", err)
		}
		refs = append(refs, p.Items...)
		if p.NextPage == "" {
			return refs, nil
		}
		page = p.NextPage
	}
}

// ProcessGame classifies and persists one game outside a sweep, as when
// the sim announces a freshly completed game.
func (r *Runner) ProcessGame(ctx context.Context, ref league.GameRef) error {
	_, err := r.processGame(ctx, uuid.Nil, ref)
	return err
}

func (r *Runner) processGame(ctx context.Context, runID uuid.UUID, ref league.GameRef) (int, error) {
	g, err := r.arc.Game(ctx, ref.GameID)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}

	events, err := gamelog.ProcessGame(g, gamelog.Options{
		OnUnparsable: r.cfg.OnUnparsable,
		Logger:       r.logger,
	})
	if err != nil {
		return 0, fmt.Errorf("classify: %w", err)
	}

	report := lint.LintGame(ref.GameID, events)

	if r.cfg.DryRun {
		return len(report.Unrecognized), nil
	}

	doc, err := json.Marshal(g)
	if err != nil {
		return 0, fmt.Errorf("marshal raw game: %w", err)
	}
	if err := r.store.SaveRawGame(ctx, ref.GameID, g.Season, g.Day, doc); err != nil {
		return 0, err
	}
	if err := r.store.SaveParsedEvents(ctx, ref.GameID, events); err != nil {
		return 0, err
	}

	for _, item := range report.Unrecognized {
		_, err := r.store.RecordFinding(ctx, store.Finding{
			RunID:     runID,
			Source:    "game",
			DocID:     ref.GameID,
			Index:     item.Index,
			EventType: item.EventType,
			Text:      item.Text,
			Ambiguous: item.Ambiguous,
		})
		if err != nil {
			return 0, err
		}
		if err := r.pub.PublishParseError(publish.ParseError{
			Source:    "game",
			DocID:     ref.GameID,
			Index:     item.Index,
			EventType: item.EventType,
			Text:      item.Text,
			Ambiguous: item.Ambiguous,
		}); err != nil {
			r.logger.Warn("publish parse error failed", "game_id", ref.GameID, "error", err)
		}
	}

	if err := r.pub.PublishGameParsed(publish.GameParsed{
		GameID:       ref.GameID,
		Season:       g.Season,
		Day:          g.Day,
		Events:       len(events),
		Unrecognized: len(report.Unrecognized),
		RunID:        runID.String(),
	}); err != nil {
		r.logger.Warn("publish summary failed", "game_id", ref.GameID, "error", err)
	}

	return len(report.Unrecognized), nil
}

// RunTeamFeeds classifies the feeds of the given teams. An empty list
// sweeps every tracked team.
func (r *Runner) RunTeamFeeds(ctx context.Context, teamIDs []string) (Result, error) {
	if len(teamIDs) == 0 {
		refs, err := r.arc.Teams(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("list teams: %w", err)
		}
		for _, ref := range refs {
			teamIDs = append(teamIDs, ref.TeamID)
		}
	}

	var res Result
	var err error
	if !r.cfg.DryRun {
		res.RunID, err = r.store.StartSweepRun(ctx, "feeds")
		if err != nil {
			return Result{}, fmt.Errorf("start sweep run: %w", err)
		}
	}

	for _, id := range teamIDs {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		unrec, err := r.processTeamFeed(ctx, res.RunID, id)
		if err != nil {
			r.logger.Error("feed sweep failed", "team_id", id, "error", err)
			res.Errors++
			continue
		}
		res.Docs++
		res.Unrecognized += unrec
	}

	if !r.cfg.DryRun {
		if err := r.store.FinishSweepRun(ctx, res.RunID, res.Docs, res.Unrecognized); err != nil {
			return res, fmt.Errorf("finish sweep run: %w", err)
		}
	}
	return res, nil
}

func (r *Runner) processTeamFeed(ctx context.Context, runID uuid.UUID, teamID string) (int, error) {
	tm, err := r.arc.Team(ctx, teamID)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}
	entries := tm.FeedEntries()

	mode := feed.Recover
	if r.cfg.OnUnparsable == gamelog.FailFast {
		mode = feed.FailFast
	}
	msgs, err := feed.ClassifyFeed(entries, feed.Options{OnUnparsable: mode, Logger: r.logger})
	if err != nil {
		return 0, fmt.Errorf("classify: %w", err)
	}

	report, err := lint.LintFeed("team", teamID, entries, msgs)
	if err != nil {
		return 0, err
	}

	if r.cfg.DryRun {
		return len(report.Verbatim), nil
	}

	doc, err := json.Marshal(tm)
	if err != nil {
		return 0, fmt.Errorf("marshal raw team: %w", err)
	}
	if err := r.store.SaveRawEntity(ctx, "team", teamID, doc); err != nil {
		return 0, err
	}
	if err := r.store.SaveFeedRecords(ctx, "team", teamID, msgs); err != nil {
		return 0, err
	}
	for _, item := range report.Verbatim {
		_, err := r.store.RecordFinding(ctx, store.Finding{
			RunID:     runID,
			Source:    "team",
			DocID:     teamID,
			Index:     item.Index,
			EventType: item.EventType,
			Text:      item.Text,
		})
		if err != nil {
			return 0, err
		}
	}
	return len(report.Verbatim), nil
}
