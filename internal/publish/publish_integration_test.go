//go:build integration

package publish

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

func skipWithoutNATS(t *testing.T) string {
	t.Helper()
	url := os.Getenv("SCOREBOOK_TEST_NATS_URL")
	if url == "" {
		t.Skip("SCOREBOOK_TEST_NATS_URL not set, skipping integration test")
	}
	return url
}

func TestIntegration_GameCompletedRoundTrip(t *testing.T) {
	natsURL := skipWithoutNATS(t)
	logger := slog.Default()

	client, err := NewClient(natsURL, "", logger)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer client.Close()

	received := make(chan GameCompleted, 1)
	if err := client.SubscribeGameCompleted(func(ev GameCompleted) {
		received <- ev
	}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	// Give subscription time to propagate
	time.Sleep(100 * time.Millisecond)

	want := GameCompleted{GameID: "g1", Season: 5, Day: 12}
	if err := client.Publish(SubjectGameCompleted, want); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case got := <-received:
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for game.completed")
	}
}

func TestIntegration_PublishSummary(t *testing.T) {
	natsURL := skipWithoutNATS(t)

	client, err := NewClient(natsURL, "", slog.Default())
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer client.Close()

	err = client.PublishGameParsed(GameParsed{
		GameID: "g1", Season: 5, Day: 12, Events: 300, Unrecognized: 2,
	})
	if err != nil {
		t.Fatalf("publish summary failed: %v", err)
	}
}
