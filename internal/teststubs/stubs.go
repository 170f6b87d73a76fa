package teststubs

import (
	"context"
	"errors"
	"sync/atomic"

	domaingames "github.com/gridironsim/playsim/internal/domain/games"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/teams"
)

// StubRosterProvider is a test double for providers.RosterProvider.
type StubRosterProvider struct {
	Roster []*players.Player
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchRoster returns the configured roster and error while tracking calls.
func (s *StubRosterProvider) FetchRoster(ctx context.Context, teamID string) ([]*players.Player, error) {
	_ = ctx
	_ = teamID
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Roster, s.Err
}

// StubTeamProvider is a test double for providers.TeamProvider.
type StubTeamProvider struct {
	Teams []teams.Team
	Err   error
	Calls atomic.Int32
}

// FetchTeams returns the configured teams and error while tracking calls.
func (s *StubTeamProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Teams, s.Err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Games    map[string]domaingames.TodayResponse // keyed by date
	LoadErr  error
	FindGame *domaingames.Game
}

// LoadGames returns games for the given date if present in the Games map.
func (s *StubSnapshotStore) LoadGames(date string) (domaingames.TodayResponse, error) {
	if s.LoadErr != nil {
		return domaingames.TodayResponse{}, s.LoadErr
	}
	if s.Games == nil {
		return domaingames.TodayResponse{}, errors.New("snapshot not found")
	}
	resp, ok := s.Games[date]
	if !ok {
		return domaingames.TodayResponse{}, errors.New("snapshot not found")
	}
	return resp, nil
}

// FindGameByID searches the snapshot for the given date and returns the game if found.
func (s *StubSnapshotStore) FindGameByID(date, id string) (domaingames.Game, bool) {
	if s.FindGame != nil && s.FindGame.ID == id {
		return *s.FindGame, true
	}
	if s.Games == nil {
		return domaingames.Game{}, false
	}
	resp, ok := s.Games[date]
	if !ok {
		return domaingames.Game{}, false
	}
	for _, g := range resp.Games {
		if g.ID == id {
			return g, true
		}
	}
	return domaingames.Game{}, false
}

// StubSnapshotWriter is a test double for games.SnapshotWriter.
type StubSnapshotWriter struct {
	Written map[string]domaingames.TodayResponse // keyed by date
	Err     error
}

// WriteGamesSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteGamesSnapshot(date string, snapshot domaingames.TodayResponse) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string]domaingames.TodayResponse)
	}
	w.Written[date] = snapshot
	return nil
}
