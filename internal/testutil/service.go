package testutil

import (
	"github.com/gridironsim/playsim/internal/app/games"
	"github.com/gridironsim/playsim/internal/balance"
	domaingames "github.com/gridironsim/playsim/internal/domain/games"
	"github.com/gridironsim/playsim/internal/providers/fixture"
	"github.com/gridironsim/playsim/internal/sim"
	"github.com/gridironsim/playsim/internal/store"
)

// NewServiceWithGames builds a games service backed by an in-memory store
// preloaded with games, the default balance tables, and fixture rosters.
func NewServiceWithGames(g []domaingames.Game) *games.Service {
	ms := store.NewMemoryStore()
	if len(g) > 0 {
		ms.SetGames(g)
	}
	engine := sim.New(balance.Default(), nil)
	return games.NewService(ms, engine, fixture.New(), games.Options{})
}
