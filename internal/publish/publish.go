// Package publish carries scorebook's NATS traffic: per-game
// classification summaries going out, completed-game announcements
// coming in.
package publish

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	// SubjectGameParsed announces a finished game classification.
	SubjectGameParsed = "moonball.scorebook.game.parsed"
	// SubjectParseError announces an input the grammars could not
	// classify, for regression triage.
	SubjectParseError = "moonball.scorebook.parse.error"
	// SubjectGameCompleted is the archive's announcement that a game
	// finished and can be fetched.
	SubjectGameCompleted = "moonball.archive.game.completed"
)

// GameParsed is the summary published after classifying one game.
type GameParsed struct {
	GameID       string `json:"game_id"`
	Season       int    `json:"season"`
	Day          int    `json:"day"`
	Events       int    `json:"events"`
	Unrecognized int    `json:"unrecognized"`
	RunID        string `json:"run_id,omitempty"`
}

// ParseError is published for each unrecognized input.
type ParseError struct {
	Source    string `json:"source"` // "game", "team", or "player"
	DocID     string `json:"doc_id"`
	Index     int    `json:"index"`
	EventType string `json:"event_type,omitempty"`
	Text      string `json:"text"`
	Ambiguous bool   `json:"ambiguous,omitempty"`
}

// GameCompleted is the payload of SubjectGameCompleted.
type GameCompleted struct {
	GameID string `json:"game_id"`
	Season int    `json:"season"`
	Day    int    `json:"day"`
}

type Client struct {
	conn   *nats.Conn
	subs   []*nats.Subscription
	logger *slog.Logger
}

func NewClient(url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

// PublishGameParsed announces a finished classification.
func (c *Client) PublishGameParsed(summary GameParsed) error {
	return c.Publish(SubjectGameParsed, summary)
}

// PublishParseError announces one unrecognized input.
func (c *Client) PublishParseError(e ParseError) error {
	return c.Publish(SubjectParseError, e)
}

// SubscribeGameCompleted invokes handler for every completed-game
// announcement. Malformed payloads are logged and dropped.
func (c *Client) SubscribeGameCompleted(handler func(GameCompleted)) error {
	return c.Subscribe(SubjectGameCompleted, func(subject string, data []byte) {
		var ev GameCompleted
		if err := json.Unmarshal(data, &ev); err != nil {
			c.logger.Warn("bad game.completed payload", "error", err)
			return
		}
		handler(ev)
	})
}

func (c *Client) Subscribe(subject string, handler func(subject string, data []byte)) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.subs = append(c.subs, sub)
	c.logger.Info("subscribed", "subject", subject)
	return nil
}

func (c *Client) Close() {
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	c.conn.Close()
}
