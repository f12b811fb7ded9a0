package slack

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/moonball-archive/scorebook/internal/store"
	"github.com/moonball-archive/scorebook/internal/sweep"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFormatSweepMessage_WithFindings(t *testing.T) {
	res := sweep.Result{
		RunID:        uuid.MustParse("9f6ed519-0000-0000-0000-000000000000"),
		Docs:         120,
		Unrecognized: 2,
		Errors:       1,
	}
	findings := []store.Finding{
		{Source: "game", DocID: "g42", EventType: "Pitch", Text: "The ball vanished entirely."},
		{Source: "team", DocID: "t7", EventType: "augment", Text: "Something new happened."},
	}

	msg := formatSweepMessage(res, findings)

	checks := []string{
		"9f6ed519",
		"Documents: 120",
		"Unrecognized: 2",
		"Errors: 1",
		"Findings: 2",
		"game g42",
		"The ball vanished entirely.",
		"Event type: Pitch",
		"team t7",
	}
	for _, check := range checks {
		if !strings.Contains(msg, check) {
			t.Errorf("expected message to contain %q", check)
		}
	}
}

func TestFormatSweepMessage_Clean(t *testing.T) {
	res := sweep.Result{RunID: uuid.New(), Docs: 10}

	msg := formatSweepMessage(res, nil)

	if !strings.Contains(msg, "Nothing to review") {
		t.Errorf("expected clean message, got %q", msg)
	}
}

func TestFormatSweepMessage_Truncates(t *testing.T) {
	findings := make([]store.Finding, maxFindingsShown+5)
	for i := range findings {
		findings[i] = store.Finding{Source: "game", DocID: "g1", Text: "???"}
	}

	msg := formatSweepMessage(sweep.Result{RunID: uuid.New()}, findings)

	if !strings.Contains(msg, "and 5 more") {
		t.Errorf("expected truncation note, got %q", msg)
	}
}

func TestPostSweepSummary_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer xoxb-test" {
			t.Errorf("expected Bearer xoxb-test, got %q", r.Header.Get("Authorization"))
		}

		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		json.Unmarshal(body, &payload)

		if payload["channel"] != "C123" {
			t.Errorf("expected channel C123, got %v", payload["channel"])
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
			"ts": "1234567890.123456",
		})
	}))
	defer server.Close()

	p := NewPoster("xoxb-test", "C123", discardLogger())
	p.apiURL = server.URL

	res := sweep.Result{RunID: uuid.New(), Docs: 3, Unrecognized: 1}
	findings := []store.Finding{{Source: "game", DocID: "g1", Text: "???"}}

	ts, err := p.PostSweepSummary(context.Background(), res, findings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts != "1234567890.123456" {
		t.Errorf("expected ts 1234567890.123456, got %q", ts)
	}
}

func TestPostSweepSummary_SlackError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"ok":    false,
			"error": "channel_not_found",
		})
	}))
	defer server.Close()

	p := NewPoster("xoxb-test", "C123", discardLogger())
	p.apiURL = server.URL

	_, err := p.PostSweepSummary(context.Background(), sweep.Result{RunID: uuid.New()}, nil)
	if err == nil {
		t.Fatal("expected error for slack error response")
	}
}
