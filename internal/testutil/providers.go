package testutil

import (
	"context"

	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/providers"
)

// GoodRosterProvider returns the provided roster with no error.
type GoodRosterProvider struct {
	Roster []*players.Player
}

func (p GoodRosterProvider) FetchRoster(ctx context.Context, teamID string) ([]*players.Player, error) {
	_ = ctx
	_ = teamID
	return p.Roster, nil
}

// ErrRosterProvider always returns the provided error.
type ErrRosterProvider struct {
	Err error
}

func (p ErrRosterProvider) FetchRoster(ctx context.Context, teamID string) ([]*players.Player, error) {
	return nil, p.Err
}

// EmptyRosterProvider returns no players, no error.
type EmptyRosterProvider struct{}

func (EmptyRosterProvider) FetchRoster(ctx context.Context, teamID string) ([]*players.Player, error) {
	return []*players.Player{}, nil
}

// UnavailableRosterProvider returns ErrProviderUnavailable.
type UnavailableRosterProvider struct{}

func (UnavailableRosterProvider) FetchRoster(ctx context.Context, teamID string) ([]*players.Player, error) {
	return nil, providers.ErrProviderUnavailable
}
