package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/moonball-archive/scorebook/internal/api"
	"github.com/moonball-archive/scorebook/internal/config"
	"github.com/moonball-archive/scorebook/internal/gamelog"
	"github.com/moonball-archive/scorebook/internal/league"
	"github.com/moonball-archive/scorebook/internal/publish"
	"github.com/moonball-archive/scorebook/internal/slack"
	"github.com/moonball-archive/scorebook/internal/store"
	"github.com/moonball-archive/scorebook/internal/sweep"
)

func main() {
	sweepSeason := flag.Int("sweep", -1, "classify every completed game of the given season, then exit")
	dryRun := flag.Bool("dry-run", false, "with -sweep, classify and lint without writing or publishing")
	flag.Parse()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("scorebook starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connected")

	// League archive
	arc := league.NewClient(cfg.LeagueURL)
	slog.Info("league client ready", "url", cfg.LeagueURL)

	// NATS
	pub, err := publish.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
	if err != nil {
		slog.Error("failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer pub.Close()
	slog.Info("NATS connected", "url", cfg.NatsURL)

	mode := gamelog.Recover
	if cfg.OnUnparsable == "failfast" {
		mode = gamelog.FailFast
	}
	runner := sweep.NewRunner(sweep.Config{
		Season:       *sweepSeason,
		Workers:      cfg.SweepWorkers,
		OnUnparsable: mode,
		DryRun:       *dryRun,
	}, arc, db, pub, slog.Default())

	// Slack poster (optional; sweeps work without it, just no review post)
	var slackPoster *slack.Poster
	if cfg.SlackBotToken != "" && cfg.SlackChannel != "" {
		slackPoster = slack.NewPoster(cfg.SlackBotToken, cfg.SlackChannel, slog.Default())
		slog.Info("slack poster ready", "channel", cfg.SlackChannel)
	}

	// One-shot sweep mode
	if *sweepSeason >= 0 {
		res, err := runner.RunGames(ctx)
		if err != nil {
			slog.Error("sweep failed", "error", err)
			os.Exit(1)
		}
		slog.Info("sweep finished",
			"run_id", res.RunID,
			"games", res.Docs,
			"unrecognized", res.Unrecognized,
			"errors", res.Errors,
		)
		if slackPoster != nil && !*dryRun {
			findings, err := db.ListFindings(ctx, res.RunID)
			if err != nil {
				slog.Warn("failed to load findings for summary", "error", err)
			} else if _, err := slackPoster.PostSweepSummary(ctx, res, findings); err != nil {
				slog.Warn("failed to post sweep summary", "error", err)
			}
		}
		return
	}

	// Classify games as the sim completes them
	err = pub.SubscribeGameCompleted(func(ev publish.GameCompleted) {
		ref := league.GameRef{GameID: ev.GameID, Season: ev.Season, Day: ev.Day}
		if err := runner.ProcessGame(ctx, ref); err != nil {
			slog.Error("failed to classify completed game", "game_id", ev.GameID, "error", err)
		}
	})
	if err != nil {
		slog.Error("failed to subscribe to completed games", "error", err)
		os.Exit(1)
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, db, arc, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("scorebook ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("scorebook stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
