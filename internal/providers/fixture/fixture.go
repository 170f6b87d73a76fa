package fixture

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/teams"
)

// Provider serves a static league of teams with generated rosters, useful for
// local runs and bootstrapping without an upstream API. Rosters are derived
// from the team ID, so the same team always gets the same depth chart.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchTeams returns a deterministic set of teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return []teams.Team{
		{ID: "ATL", Name: "Aviators", FullName: "Atlanta Aviators", Abbreviation: "ATL", City: "Atlanta", Conference: "South", Division: "East", Venue: "Peachtree Dome", DomeStadium: true},
		{ID: "BUF", Name: "Blizzard", FullName: "Buffalo Blizzard", Abbreviation: "BUF", City: "Buffalo", Conference: "North", Division: "East", Venue: "Lakeside Field"},
		{ID: "CHI", Name: "Cyclones", FullName: "Chicago Cyclones", Abbreviation: "CHI", City: "Chicago", Conference: "North", Division: "West", Venue: "Gale Stadium"},
		{ID: "DAL", Name: "Drifters", FullName: "Dallas Drifters", Abbreviation: "DAL", City: "Dallas", Conference: "South", Division: "West", Venue: "Lone Star Dome", DomeStadium: true},
		{ID: "DEN", Name: "Summit", FullName: "Denver Summit", Abbreviation: "DEN", City: "Denver", Conference: "West", Division: "North", Venue: "Mile High Grounds"},
		{ID: "MIA", Name: "Marlins", FullName: "Miami Marlins", Abbreviation: "MIA", City: "Miami", Conference: "South", Division: "East", Venue: "Biscayne Bowl"},
		{ID: "SEA", Name: "Squalls", FullName: "Seattle Squalls", Abbreviation: "SEA", City: "Seattle", Conference: "West", Division: "North", Venue: "Sound Stadium"},
		{ID: "PHI", Name: "Founders", FullName: "Philadelphia Founders", Abbreviation: "PHI", City: "Philadelphia", Conference: "North", Division: "East", Venue: "Liberty Field"},
	}, nil
}

// rosterSlot describes how many players to generate at a position and which
// ratings matter for them.
type rosterSlot struct {
	pos     players.Position
	count   int
	ratings []string
}

var rosterTemplate = []rosterSlot{
	{players.QB, 2, []string{players.RatingAccuracy, players.RatingComposure, players.RatingMobility}},
	{players.RB, 3, []string{players.RatingSpeed, players.RatingAgility, players.RatingCarrying, players.RatingVision}},
	{players.FB, 1, []string{players.RatingRunBlocking, players.RatingCarrying}},
	{players.WR, 5, []string{players.RatingSpeed, players.RatingHands, players.RatingRouteRunning}},
	{players.TE, 3, []string{players.RatingHands, players.RatingRouteRunning, players.RatingRunBlocking}},
	{players.LT, 2, []string{players.RatingPassProtection, players.RatingRunBlocking}},
	{players.LG, 2, []string{players.RatingPassProtection, players.RatingRunBlocking}},
	{players.C, 2, []string{players.RatingPassProtection, players.RatingRunBlocking}},
	{players.RG, 2, []string{players.RatingPassProtection, players.RatingRunBlocking}},
	{players.RT, 2, []string{players.RatingPassProtection, players.RatingRunBlocking}},
	{players.DE, 3, []string{players.RatingPassRush, players.RatingTackle}},
	{players.DT, 3, []string{players.RatingPassRush, players.RatingTackle}},
	{players.MLB, 2, []string{players.RatingTackle, players.RatingCoverage, players.RatingDiscipline}},
	{players.OLB, 3, []string{players.RatingTackle, players.RatingPassRush, players.RatingCoverage}},
	{players.CB, 4, []string{players.RatingCoverage, players.RatingSpeed, players.RatingAgility}},
	{players.FS, 2, []string{players.RatingCoverage, players.RatingTackle, players.RatingSpeed}},
	{players.SS, 2, []string{players.RatingCoverage, players.RatingTackle}},
	{players.K, 1, []string{players.RatingKickPower, players.RatingKickAccuracy}},
	{players.P, 1, []string{players.RatingKickPower}},
}

var surnames = []string{
	"Abbott", "Barnes", "Caldwell", "Dalton", "Emerson", "Fletcher", "Grimes",
	"Holloway", "Irving", "Jacobs", "Keller", "Lawson", "Mercer", "Norwood",
	"Osborne", "Pratt", "Quinn", "Rowan", "Sutton", "Thatcher", "Underwood",
	"Vaughn", "Whitaker", "York", "Zimmer",
}

var firstNames = []string{
	"Aaron", "Blake", "Cole", "Dante", "Elias", "Felix", "Gavin", "Hunter",
	"Isaiah", "Jordan", "Kendall", "Lamar", "Marcus", "Nolan", "Omar",
	"Preston", "Quentin", "Reggie", "Silas", "Trent", "Victor", "Wes",
}

// FetchRoster generates a full deterministic depth chart for the team. Depth
// order matters: the first player generated at a position is the starter and
// carries the best ratings.
func (p *Provider) FetchRoster(ctx context.Context, teamID string) ([]*players.Player, error) {
	_ = ctx

	rng := rand.New(rand.NewSource(rosterSeed(teamID)))
	var roster []*players.Player
	jersey := 1

	for _, slot := range rosterTemplate {
		for depth := 0; depth < slot.count; depth++ {
			ratings := make(map[string]int, len(slot.ratings)+1)
			// Starters sit in the 70-90 band, each step down the depth
			// chart drops the ceiling.
			ceiling := 90 - depth*8
			floor := 60 - depth*5
			for _, name := range slot.ratings {
				ratings[name] = floor + rng.Intn(ceiling-floor+1)
			}
			ratings[players.RatingOverall] = floor + rng.Intn(ceiling-floor+1)

			roster = append(roster, &players.Player{
				ID:       fmt.Sprintf("%s-%s-%d", teamID, slot.pos, depth+1),
				Name:     fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], surnames[rng.Intn(len(surnames))]),
				Jersey:   jersey,
				Position: slot.pos,
				Team:     teamID,
				Ratings:  ratings,
			})
			jersey++
		}
	}

	return roster, nil
}

// rosterSeed hashes a team ID into a stable RNG seed.
func rosterSeed(teamID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(teamID))
	return int64(h.Sum64())
}
