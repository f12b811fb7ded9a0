// Package league is the HTTP client for the sim's public archive API,
// which serves game, team, and player documents.
package league

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/moonball-archive/scorebook/internal/gamelog"
	"github.com/moonball-archive/scorebook/internal/player"
	"github.com/moonball-archive/scorebook/internal/team"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// GameRef is one row of the completed-games listing.
type GameRef struct {
	GameID string `json:"game_id"`
	Season int    `json:"season"`
	Day    int    `json:"day"`
	State  string `json:"state"`
}

// GamesPage is one page of the completed-games listing. NextPage is
// empty on the last page.
type GamesPage struct {
	Items    []GameRef `json:"items"`
	NextPage string    `json:"next_page"`
}

// Games lists completed games for a season, one page at a time. Pass
// the previous page's NextPage token to continue; empty starts over.
func (c *Client) Games(ctx context.Context, season int, page string) (*GamesPage, error) {
	q := url.Values{}
	q.Set("season", fmt.Sprint(season))
	if page != "" {
		q.Set("page", page)
	}
	var out GamesPage
	if err := c.getJSON(ctx, "/games", q, &out); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return &out, nil
}

// TeamRef is one row of the tracked-teams listing.
type TeamRef struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
}

// Teams lists every tracked team.
func (c *Client) Teams(ctx context.Context) ([]TeamRef, error) {
	var out struct {
		Items []TeamRef `json:"items"`
	}
	if err := c.getJSON(ctx, "/teams", nil, &out); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return out.Items, nil
}

// Game fetches one game document with its full event log.
func (c *Client) Game(ctx context.Context, id string) (*gamelog.Game, error) {
	var out gamelog.Game
	if err := c.getJSON(ctx, "/game/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("fetch game %s: %w", id, err)
	}
	return &out, nil
}

// Team fetches one team document.
func (c *Client) Team(ctx context.Context, id string) (*team.Team, error) {
	var out team.Team
	if err := c.getJSON(ctx, "/team/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("fetch team %s: %w", id, err)
	}
	return &out, nil
}

// Player fetches one player document.
func (c *Client) Player(ctx context.Context, id string) (*player.Player, error) {
	var out player.Player
	if err := c.getJSON(ctx, "/player/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("fetch player %s: %w", id, err)
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api error %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
