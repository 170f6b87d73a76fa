package league

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/teams"
	"github.com/gridironsim/playsim/internal/providers"
)

// Config controls how the league client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	MaxPages   int
}

// Client fetches teams and rosters from the league data API and maps them to
// domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	maxPages   int
}

// NewClient constructs a league client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// FetchTeams retrieves all teams from the upstream API.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	page := 1
	all := make([]teams.Team, 0)

	for {
		var payload teamsResponse
		if err := c.getPage(ctx, "/teams", page, &payload); err != nil {
			return nil, err
		}

		for _, t := range payload.Data {
			all = append(all, mapTeam(t))
		}

		if done := c.pageDone(page, payload.Meta.TotalPages, len(payload.Data)); done {
			break
		}
		page++
	}

	return all, nil
}

// FetchRoster retrieves the depth chart for one team.
func (c *Client) FetchRoster(ctx context.Context, teamID string) ([]*players.Player, error) {
	page := 1
	var data []playerResponse

	for {
		var payload rosterResponse
		path := fmt.Sprintf("/teams/%s/roster", teamID)
		if err := c.getPage(ctx, path, page, &payload); err != nil {
			return nil, err
		}

		data = append(data, payload.Data...)

		if done := c.pageDone(page, payload.Meta.TotalPages, len(payload.Data)); done {
			break
		}
		page++
	}

	return mapRoster(teamID, data), nil
}

func (c *Client) pageDone(page, totalPages, got int) bool {
	if totalPages > 0 {
		if page >= totalPages {
			return true
		}
	} else if got == 0 || got < defaultPerPage {
		return true
	}
	return page >= c.maxPages
}

func (c *Client) getPage(ctx context.Context, path string, page int, out any) error {
	req, err := c.buildRequest(ctx, path, page)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "league API rate limited",
		}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("league: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) buildRequest(ctx context.Context, path string, page int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("per_page", strconv.Itoa(defaultPerPage))
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if when, err := http.ParseTime(raw); err == nil {
		if d := time.Until(when); d > 0 {
			return d
		}
	}
	return 0
}
