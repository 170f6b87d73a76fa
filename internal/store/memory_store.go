package store

import (
	"sort"
	"sync"

	domaingames "github.com/gridironsim/playsim/internal/domain/games"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/teams"
)

// MemoryStore keeps a thread-safe snapshot of games, teams, and rosters in
// memory.
type MemoryStore struct {
	mu      sync.RWMutex
	games   map[string]domaingames.Game
	teams   map[string]teams.Team
	rosters map[string][]*players.Player // keyed by team ID
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games:   make(map[string]domaingames.Game),
		teams:   make(map[string]teams.Team),
		rosters: make(map[string][]*players.Player),
	}
}

// ListGames returns a copy of the current games, ordered by ID for stable
// output.
func (s *MemoryStore) ListGames() []domaingames.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domaingames.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// SaveGame inserts or replaces a single game.
func (s *MemoryStore) SaveGame(game domaingames.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games[game.ID] = game
}

// SetGames replaces the existing games with a new snapshot.
func (s *MemoryStore) SetGames(games []domaingames.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domaingames.Game, len(games))
	for _, g := range games {
		s.games[g.ID] = g
	}
}

// ListTeams returns a copy of the registered teams, ordered by ID.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetTeam retrieves a team by ID.
func (s *MemoryStore) GetTeam(id string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

// SetTeams replaces the registered teams.
func (s *MemoryStore) SetTeams(items []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[string]teams.Team, len(items))
	for _, t := range items {
		s.teams[t.ID] = t
	}
}

// Roster returns the depth chart for a team in stored order.
func (s *MemoryStore) Roster(teamID string) ([]*players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roster, ok := s.rosters[teamID]
	return roster, ok
}

// SetRoster replaces the depth chart for a team.
func (s *MemoryStore) SetRoster(teamID string, roster []*players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rosters[teamID] = roster
}

// ListPlayers returns every rostered player, grouped by team in team-ID
// order.
func (s *MemoryStore) ListPlayers() []*players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teamIDs := make([]string, 0, len(s.rosters))
	for id := range s.rosters {
		teamIDs = append(teamIDs, id)
	}
	sort.Strings(teamIDs)

	var result []*players.Player
	for _, id := range teamIDs {
		result = append(result, s.rosters[id]...)
	}
	return result
}

// GetPlayer retrieves a player by ID across all rosters.
func (s *MemoryStore) GetPlayer(id string) (*players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, roster := range s.rosters {
		for _, p := range roster {
			if p.ID == id {
				return p, true
			}
		}
	}
	return nil, false
}
