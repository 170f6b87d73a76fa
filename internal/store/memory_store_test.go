package store

import (
	"testing"

	domaingames "github.com/gridironsim/playsim/internal/domain/games"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/teams"
)

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()

	games := []domaingames.Game{
		{ID: "1", Provider: "fixture"},
		{ID: "2", Provider: "fixture"},
	}

	s.SetGames(games)

	if got := len(s.ListGames()); got != 2 {
		t.Fatalf("expected 2 games, got %d", got)
	}

	game, ok := s.GetGame("1")
	if !ok {
		t.Fatalf("expected to find game with id 1")
	}
	if game.Provider != "fixture" {
		t.Fatalf("unexpected provider %s", game.Provider)
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.GetGame("missing"); ok {
		t.Fatalf("expected missing id to return false")
	}
}

func TestMemoryStoreSetReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domaingames.Game{{ID: "old"}})

	s.SetGames([]domaingames.Game{{ID: "new"}})

	if _, ok := s.GetGame("old"); ok {
		t.Fatalf("expected old game to be removed after replace")
	}
	if _, ok := s.GetGame("new"); !ok {
		t.Fatalf("expected new game to be present")
	}
}

func TestMemoryStoreSaveGameUpserts(t *testing.T) {
	s := NewMemoryStore()
	s.SaveGame(domaingames.Game{ID: "g1", Status: domaingames.StatusScheduled})

	s.SaveGame(domaingames.Game{ID: "g1", Status: domaingames.StatusFinal})

	game, ok := s.GetGame("g1")
	if !ok {
		t.Fatalf("expected to find saved game")
	}
	if game.Status != domaingames.StatusFinal {
		t.Fatalf("expected status %s, got %s", domaingames.StatusFinal, game.Status)
	}
	if got := len(s.ListGames()); got != 1 {
		t.Fatalf("expected 1 game after upsert, got %d", got)
	}
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domaingames.Game{{ID: "copy", Provider: "fixture"}})

	list := s.ListGames()
	if len(list) != 1 {
		t.Fatalf("expected 1 game, got %d", len(list))
	}

	list[0].Provider = "mutated"

	game, ok := s.GetGame("copy")
	if !ok {
		t.Fatalf("expected to find game")
	}
	if game.Provider != "fixture" {
		t.Fatalf("expected store to remain unchanged, got %s", game.Provider)
	}
}

func TestMemoryStoreListGamesOrderedByID(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domaingames.Game{{ID: "b"}, {ID: "a"}, {ID: "c"}})

	list := s.ListGames()
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("expected game %d to be %s, got %s", i, id, list[i].ID)
		}
	}
}

func TestMemoryStoreTeams(t *testing.T) {
	s := NewMemoryStore()
	s.SetTeams([]teams.Team{
		{ID: "DAL", Name: "Cowboys"},
		{ID: "PHI", Name: "Eagles"},
	})

	if got := len(s.ListTeams()); got != 2 {
		t.Fatalf("expected 2 teams, got %d", got)
	}

	team, ok := s.GetTeam("PHI")
	if !ok {
		t.Fatalf("expected to find team PHI")
	}
	if team.Name != "Eagles" {
		t.Fatalf("unexpected team name %s", team.Name)
	}

	if _, ok := s.GetTeam("NYG"); ok {
		t.Fatalf("expected missing team to return false")
	}
}

func TestMemoryStoreRosters(t *testing.T) {
	s := NewMemoryStore()
	s.SetRoster("DAL", []*players.Player{
		{ID: "p1", Name: "Quarterback One", Team: "DAL"},
		{ID: "p2", Name: "Runner Two", Team: "DAL"},
	})
	s.SetRoster("PHI", []*players.Player{
		{ID: "p3", Name: "Receiver Three", Team: "PHI"},
	})

	roster, ok := s.Roster("DAL")
	if !ok {
		t.Fatalf("expected DAL roster")
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 players, got %d", len(roster))
	}

	if _, ok := s.Roster("NYG"); ok {
		t.Fatalf("expected missing roster to return false")
	}

	all := s.ListPlayers()
	if len(all) != 3 {
		t.Fatalf("expected 3 players total, got %d", len(all))
	}
	if all[0].Team != "DAL" || all[2].Team != "PHI" {
		t.Fatalf("expected players grouped by team ID order, got %s..%s", all[0].Team, all[2].Team)
	}

	p, ok := s.GetPlayer("p3")
	if !ok {
		t.Fatalf("expected to find player p3")
	}
	if p.Name != "Receiver Three" {
		t.Fatalf("unexpected player name %s", p.Name)
	}

	if _, ok := s.GetPlayer("nope"); ok {
		t.Fatalf("expected missing player to return false")
	}
}
