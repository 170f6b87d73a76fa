package league

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/teams"
)

func mapTeam(t teamResponse) teams.Team {
	id := strings.ToUpper(t.Abbreviation)
	if id == "" {
		id = fmt.Sprintf("team-%d", t.ID)
	}
	return teams.Team{
		ID:           id,
		Name:         t.Name,
		FullName:     t.FullName,
		Abbreviation: strings.ToUpper(t.Abbreviation),
		City:         t.City,
		Conference:   t.Conference,
		Division:     t.Division,
		Venue:        t.Venue,
		DomeStadium:  t.Dome,
	}
}

// mapRoster normalizes upstream players and restores depth-chart order; the
// API does not guarantee ordering across pages.
func mapRoster(teamID string, data []playerResponse) []*players.Player {
	sorted := make([]playerResponse, len(data))
	copy(sorted, data)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].Depth < sorted[j].Depth
	})

	roster := make([]*players.Player, 0, len(sorted))
	for _, p := range sorted {
		roster = append(roster, mapPlayer(teamID, p))
	}
	return roster
}

func mapPlayer(teamID string, p playerResponse) *players.Player {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	return &players.Player{
		ID:       fmt.Sprintf("%s-%d", providerName, p.ID),
		Name:     name,
		Jersey:   p.Jersey,
		Position: players.Position(strings.ToUpper(p.Position)),
		Team:     teamID,
		Ratings:  p.Ratings,
	}
}
