package teams

import (
	"testing"

	"github.com/gridironsim/playsim/internal/domain/teams"
)

type stubTeamStore struct {
	items []teams.Team
	byID  map[string]teams.Team
}

func (s *stubTeamStore) ListTeams() []teams.Team { return s.items }
func (s *stubTeamStore) GetTeam(id string) (teams.Team, bool) {
	val, ok := s.byID[id]
	return val, ok
}
func (s *stubTeamStore) SetTeams(items []teams.Team) { s.items = items }

func TestTeamsService(t *testing.T) {
	store := &stubTeamStore{
		items: []teams.Team{{ID: "DAL"}},
		byID:  map[string]teams.Team{"DAL": {ID: "DAL"}},
	}
	svc := NewService(store)

	if len(svc.Teams()) != 1 {
		t.Fatalf("expected teams from store")
	}
	if _, ok := svc.TeamByID("DAL"); !ok {
		t.Fatalf("expected team by id")
	}

	svc.ReplaceTeams([]teams.Team{{ID: "PHI"}})
	if len(store.items) != 1 || store.items[0].ID != "PHI" {
		t.Fatalf("expected replace to set store items")
	}
}
