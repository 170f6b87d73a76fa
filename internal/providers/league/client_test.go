package league

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gridironsim/playsim/internal/providers"
)

func TestFetchTeamsMapsPayload(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/teams" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 1, "abbreviation": "dal", "city": "Dallas", "conference": "South", "division": "West", "full_name": "Dallas Drifters", "name": "Drifters", "venue": "Lone Star Dome", "dome": true}
			],
			"meta": {"total_pages": 1}
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	teams, err := c.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(teams))
	}
	team := teams[0]
	if team.ID != "DAL" || team.Abbreviation != "DAL" {
		t.Fatalf("expected uppercased abbreviation ID, got %+v", team)
	}
	if !team.DomeStadium || team.Venue != "Lone Star Dome" {
		t.Fatalf("expected venue fields mapped, got %+v", team)
	}
}

func TestFetchTeamsPaginates(t *testing.T) {
	pages := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		page := r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")
		if page == "1" {
			_, _ = w.Write([]byte(`{"data": [{"id": 1, "abbreviation": "DAL"}], "meta": {"total_pages": 2}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data": [{"id": 2, "abbreviation": "PHI"}], "meta": {"total_pages": 2}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	teams, err := c.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pages != 2 {
		t.Fatalf("expected 2 page fetches, got %d", pages)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
}

func TestFetchRosterOrdersByDepth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams/DAL/roster" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 11, "first_name": "Backup", "last_name": "Quarterback", "position": "QB", "depth": 2, "ratings": {"overall": 60}},
				{"id": 10, "first_name": "Starting", "last_name": "Quarterback", "position": "QB", "depth": 1, "ratings": {"overall": 85}}
			],
			"meta": {"total_pages": 1}
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	roster, err := c.FetchRoster(context.Background(), "DAL")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(roster) != 2 {
		t.Fatalf("expected 2 players, got %d", len(roster))
	}
	if roster[0].Name != "Starting Quarterback" {
		t.Fatalf("expected starter first, got %s", roster[0].Name)
	}
	if roster[0].Team != "DAL" {
		t.Fatalf("expected team DAL, got %s", roster[0].Team)
	}
	if roster[0].Ratings["overall"] != 85 {
		t.Fatalf("expected ratings carried over, got %v", roster[0].Ratings)
	}
}

func TestFetchRosterRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.FetchRoster(context.Background(), "DAL")
	if err == nil {
		t.Fatal("expected error")
	}

	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rl.StatusCode)
	}
	if rl.RetryAfter != 30*time.Second {
		t.Fatalf("expected retry-after 30s, got %s", rl.RetryAfter)
	}
}

func TestFetchTeamsUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	if _, err := c.FetchTeams(context.Background()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
