package fixture

import (
	"context"
	"testing"

	"github.com/gridironsim/playsim/internal/domain/players"
)

func TestFetchTeamsReturnsLeague(t *testing.T) {
	p := New()

	teams, err := p.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(teams) != 8 {
		t.Fatalf("expected 8 teams, got %d", len(teams))
	}

	seen := make(map[string]bool)
	for _, team := range teams {
		if team.ID == "" || team.Name == "" || team.Abbreviation == "" {
			t.Fatalf("incomplete team: %+v", team)
		}
		if seen[team.ID] {
			t.Fatalf("duplicate team ID %s", team.ID)
		}
		seen[team.ID] = true
	}
}

func TestFetchRosterIsDeterministic(t *testing.T) {
	p := New()

	first, err := p.FetchRoster(context.Background(), "DAL")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := p.FetchRoster(context.Background(), "DAL")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("expected matching roster sizes, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Name != second[i].Name {
			t.Fatalf("roster diverged at %d: %+v vs %+v", i, first[i], second[i])
		}
		if first[i].Ratings[players.RatingOverall] != second[i].Ratings[players.RatingOverall] {
			t.Fatalf("ratings diverged at %d", i)
		}
	}
}

func TestFetchRosterDiffersByTeam(t *testing.T) {
	p := New()

	dal, _ := p.FetchRoster(context.Background(), "DAL")
	phi, _ := p.FetchRoster(context.Background(), "PHI")

	if dal[0].Name == phi[0].Name && dal[1].Name == phi[1].Name {
		t.Fatalf("expected different rosters for different teams")
	}
}

func TestFetchRosterCoversEveryUnit(t *testing.T) {
	p := New()

	roster, err := p.FetchRoster(context.Background(), "SEA")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	required := []players.Position{
		players.QB, players.RB, players.WR, players.TE,
		players.LT, players.LG, players.C, players.RG, players.RT,
		players.DE, players.DT, players.MLB, players.OLB,
		players.CB, players.FS, players.SS,
		players.K, players.P,
	}
	for _, pos := range required {
		if len(players.ByPosition(roster, pos)) == 0 {
			t.Fatalf("expected at least one player filling %s", pos)
		}
	}

	for _, pl := range roster {
		if pl.Team != "SEA" {
			t.Fatalf("expected team SEA on player %s, got %s", pl.ID, pl.Team)
		}
		if len(pl.Ratings) == 0 {
			t.Fatalf("expected ratings on player %s", pl.ID)
		}
	}
}

func TestStartersOutrateBackups(t *testing.T) {
	p := New()
	roster, _ := p.FetchRoster(context.Background(), "CHI")

	qbs := players.ByPosition(roster, players.QB)
	if len(qbs) < 2 {
		t.Fatalf("expected at least 2 quarterbacks, got %d", len(qbs))
	}
	// Depth-1 ratings are drawn from a strictly higher band, so the backup
	// ceiling can never exceed the starter floor by construction bounds.
	for _, name := range []string{players.RatingAccuracy, players.RatingComposure} {
		if qbs[1].Ratings[name] > 90 {
			t.Fatalf("backup rating %s out of band: %d", name, qbs[1].Ratings[name])
		}
	}
}
