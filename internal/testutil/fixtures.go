package testutil

import (
	domaingames "github.com/gridironsim/playsim/internal/domain/games"
	"github.com/gridironsim/playsim/internal/domain/teams"
)

// SampleTeam returns a minimal team fixture with the provided id.
func SampleTeam(id string) teams.Team {
	return teams.Team{
		ID:           id,
		Name:         "Sample",
		FullName:     "Sample " + id,
		Abbreviation: id,
		City:         "Sampleville",
		Conference:   "North",
		Division:     "East",
	}
}

// SampleGame returns a minimal game fixture with the provided id.
func SampleGame(id string) domaingames.Game {
	return domaingames.Game{
		ID:       id,
		Provider: "test",
		HomeTeam: SampleTeam("home"),
		AwayTeam: SampleTeam("away"),
		Status:   domaingames.StatusScheduled,
		Score:    domaingames.Score{Home: 0, Away: 0},
		Meta:     domaingames.GameMeta{Season: "2026", Week: 1},
	}
}

// SampleTodayResponse builds a TodayResponse with a single sample game and date.
func SampleTodayResponse(date string, id string) domaingames.TodayResponse {
	return domaingames.TodayResponse{
		Date:  date,
		Games: []domaingames.Game{SampleGame(id)},
	}
}
