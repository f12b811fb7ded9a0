package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         int
	NatsURL      string
	NatsToken    string
	DatabaseURL  string
	LogLevel     string
	LeagueURL    string
	APIToken     string
	SweepWorkers int
	OnUnparsable string

	SlackBotToken string
	SlackChannel  string
}

func Load() Config {
	return Config{
		Port:         envInt("SCOREBOOK_PORT", 8720),
		NatsURL:      envStr("NATS_URL", "nats://hermes:4222"),
		NatsToken:    envStr("NATS_TOKEN", ""),
		DatabaseURL:  envStr("DATABASE_URL", ""),
		LogLevel:     envStr("LOG_LEVEL", "info"),
		LeagueURL:    envStr("LEAGUE_URL", "https://api.moonball.wiki"),
		APIToken:     envStr("SCOREBOOK_API_TOKEN", ""),
		SweepWorkers: envInt("SCOREBOOK_SWEEP_WORKERS", 4),
		OnUnparsable: envStr("SCOREBOOK_ON_UNPARSABLE", "recover"),

		SlackBotToken: envStr("SLACK_BOT_TOKEN", ""),
		SlackChannel:  envStr("SLACK_CHANNEL", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
