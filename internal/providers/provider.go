package providers

import (
	"context"

	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/teams"
)

// TeamProvider fetches normalized teams.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
}

// RosterProvider fetches the normalized depth chart for one team. The
// returned slice is ordered by depth: index 0 at a position is the starter.
type RosterProvider interface {
	FetchRoster(ctx context.Context, teamID string) ([]*players.Player, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	RosterProvider
}
