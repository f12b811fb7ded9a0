// Package slack posts sweep summaries to a Slack channel so a human can
// review new unrecognized texts.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/moonball-archive/scorebook/internal/store"
	"github.com/moonball-archive/scorebook/internal/sweep"
)

const defaultPostMessageURL = "https://slack.com/api/chat.postMessage"

// maxFindingsShown caps the finding list in a summary; the rest is a count.
const maxFindingsShown = 10

type Poster struct {
	token   string
	channel string
	client  *http.Client
	logger  *slog.Logger
	apiURL  string
}

func NewPoster(token, channel string, logger *slog.Logger) *Poster {
	return &Poster{
		token:   token,
		channel: channel,
		client:  &http.Client{Timeout: 10 * time.Second},
		apiURL:  defaultPostMessageURL,
		logger:  logger,
	}
}

// PostSweepSummary posts a sweep's totals and its lint findings.
// Returns the message timestamp (ts), usable for threaded followups.
func (p *Poster) PostSweepSummary(ctx context.Context, res sweep.Result, findings []store.Finding) (string, error) {
	text := formatSweepMessage(res, findings)

	body, err := json.Marshal(map[string]any{
		"channel": p.channel,
		"text":    text,
		"blocks": []map[string]any{
			{
				"type": "section",
				"text": map[string]any{
					"type": "mrkdwn",
					"text": text,
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("slack post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var slackResp struct {
		OK    bool   `json:"ok"`
		TS    string `json:"ts"`
		Error string `json:"error,omitempty"`
	}
	if err := json.Unmarshal(respBody, &slackResp); err != nil {
		return "", fmt.Errorf("parse slack response: %w", err)
	}
	if !slackResp.OK {
		return "", fmt.Errorf("slack error: %s", slackResp.Error)
	}

	p.logger.Info("posted sweep summary to slack", "ts", slackResp.TS, "run_id", res.RunID)
	return slackResp.TS, nil
}

// PostThread posts a threaded reply to a message.
func (p *Poster) PostThread(ctx context.Context, threadTS, text string) error {
	body, err := json.Marshal(map[string]any{
		"channel":   p.channel,
		"thread_ts": threadTS,
		"text":      text,
	})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func formatSweepMessage(res sweep.Result, findings []store.Finding) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*Sweep %s finished*\n", res.RunID)
	fmt.Fprintf(&sb, "Documents: %d | Unrecognized: %d | Errors: %d\n", res.Docs, res.Unrecognized, res.Errors)

	if len(findings) == 0 {
		sb.WriteString("\n_Every event classified. Nothing to review._")
		return sb.String()
	}

	fmt.Fprintf(&sb, "\n*Findings: %d*\n", len(findings))
	shown := findings
	if len(shown) > maxFindingsShown {
		shown = shown[:maxFindingsShown]
	}
	for i, f := range shown {
		fmt.Fprintf(&sb, "%d. [%s %s] %s\n", i+1, f.Source, f.DocID, f.Text)
		if f.EventType != "" {
			fmt.Fprintf(&sb, "   Event type: %s\n", f.EventType)
		}
	}
	if rest := len(findings) - len(shown); rest > 0 {
		fmt.Fprintf(&sb, "_...and %d more._\n", rest)
	}

	return sb.String()
}
