package players

import "github.com/gridironsim/playsim/internal/domain/players"

// Store defines the contract for persisting and retrieving rostered players.
type Store interface {
	ListPlayers() []*players.Player
	GetPlayer(id string) (*players.Player, bool)
	Roster(teamID string) ([]*players.Player, bool)
	SetRoster(teamID string, roster []*players.Player)
}

// Service coordinates player operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns every rostered player.
func (s *Service) Players() []*players.Player {
	return s.store.ListPlayers()
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id string) (*players.Player, bool) {
	return s.store.GetPlayer(id)
}

// Roster returns one team's depth chart.
func (s *Service) Roster(teamID string) ([]*players.Player, bool) {
	return s.store.Roster(teamID)
}

// ReplaceRoster swaps a team's depth chart.
func (s *Service) ReplaceRoster(teamID string, roster []*players.Player) {
	s.store.SetRoster(teamID, roster)
}
