package teststubs

import (
	"context"
	"errors"
	"testing"

	domaingames "github.com/gridironsim/playsim/internal/domain/games"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/teams"
)

func TestStubRosterProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubRosterProvider{Roster: []*players.Player{{ID: "p1"}}, Err: err}
	if _, got := p.FetchRoster(context.Background(), "DAL"); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubTeamProviderTracksCalls(t *testing.T) {
	p := &StubTeamProvider{Teams: []teams.Team{{ID: "DAL"}}}
	got, err := p.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "DAL" {
		t.Fatalf("expected configured teams, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubSnapshotStore(t *testing.T) {
	date := "2025-11-02"
	s := &StubSnapshotStore{
		Games: map[string]domaingames.TodayResponse{
			date: domaingames.NewTodayResponse(date, []domaingames.Game{{ID: "g1"}}),
		},
	}

	resp, err := s.LoadGames(date)
	if err != nil || resp.Date != date {
		t.Fatalf("expected loaded games, got %v err %v", resp, err)
	}

	game, ok := s.FindGameByID(date, "g1")
	if !ok || game.ID != "g1" {
		t.Fatalf("expected game found, got %v ok=%v", game, ok)
	}

	_, ok = s.FindGameByID(date, "missing")
	if ok {
		t.Fatalf("expected game not found")
	}
}

func TestStubSnapshotWriter(t *testing.T) {
	date := "2025-11-02"
	w := &StubSnapshotWriter{}
	err := w.WriteGamesSnapshot(date, domaingames.NewTodayResponse(date, []domaingames.Game{{ID: "g1"}}))
	if err != nil {
		t.Fatalf("expected write success, got %v", err)
	}
	if len(w.Written) != 1 {
		t.Fatalf("expected one written entry, got %d", len(w.Written))
	}

	w.Err = errors.New("write error")
	err = w.WriteGamesSnapshot("2025-11-03", domaingames.NewTodayResponse("2025-11-03", []domaingames.Game{{ID: "g2"}}))
	if err == nil {
		t.Fatalf("expected write error")
	}
}
