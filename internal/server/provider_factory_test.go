package server

import (
	"context"
	"testing"

	"github.com/gridironsim/playsim/internal/config"
	"github.com/gridironsim/playsim/internal/providers/fixture"
)

func TestProviderFactoryBuildsFixture(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: "fixture"})
	if prov == nil {
		t.Fatalf("expected provider")
	}

	teams, err := prov.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error fetching teams: %v", err)
	}
	if len(teams) == 0 {
		t.Fatalf("expected fixture teams")
	}

	roster, err := prov.FetchRoster(context.Background(), teams[0].ID)
	if err != nil {
		t.Fatalf("unexpected error fetching roster: %v", err)
	}
	if len(roster) == 0 {
		t.Fatalf("expected fixture roster")
	}
}

func TestProviderFactoryRateLimitsLeagueOnly(t *testing.T) {
	factory := newProviderFactory(nil, nil)

	fixtureProv := factory.build(config.Config{Provider: "fixture"}).(dataProvider)
	if fixtureProv.closer != nil {
		t.Fatalf("expected no rate limiter for fixture provider")
	}

	leagueProv := factory.build(config.Config{Provider: "league"}).(dataProvider)
	if leagueProv.closer == nil {
		t.Fatalf("expected rate limiter for league provider")
	}
	leagueProv.Close()
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("League", nil); got != "league" {
		t.Fatalf("expected lowercased name, got %q", got)
	}
	if got := normalizeProviderName("", fixture.New()); got == "" || got == "provider" {
		t.Fatalf("expected type-derived name, got %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %q", got)
	}
}
