package games

import (
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/domain/teams"
)

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusCanceled   GameStatus = "CANCELED"
)

// Score captures home and away points.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// GameMeta stores schedule metadata for a game.
type GameMeta struct {
	Season     string `json:"season"`
	Week       int    `json:"week,omitempty"`
	Postseason bool   `json:"postseason,omitempty"`
	Seed       uint64 `json:"seed,omitempty"` // rerun with the same seed for an identical game
}

// Game is the canonical game shape exposed by the service.
type Game struct {
	ID        string     `json:"id"`
	Provider  string     `json:"provider"`
	HomeTeam  teams.Team `json:"homeTeam"`
	AwayTeam  teams.Team `json:"awayTeam"`
	StartTime string     `json:"startTime"`
	Status    GameStatus `json:"status"`
	Score     Score      `json:"score"`
	Quarter   int        `json:"quarter,omitempty"`
	Clock     int        `json:"clock,omitempty"` // seconds remaining in the quarter
	Meta      GameMeta   `json:"meta"`

	BoxScore *BoxScore       `json:"boxScore,omitempty"`
	PlayLog  []*plays.Result `json:"playLog,omitempty"`
}

// BoxScore accumulates per-player stat lines for both sides across a game.
type BoxScore struct {
	Home []*plays.StatLine `json:"home"`
	Away []*plays.StatLine `json:"away"`
}

// Add folds one play's stat lines into the box score, routing each line by
// its team tag and merging repeat players in place.
func (b *BoxScore) Add(homeTeam, awayTeam string, lines []*plays.StatLine) {
	for _, line := range lines {
		switch line.Team {
		case homeTeam:
			b.Home = mergeLine(b.Home, line)
		case awayTeam:
			b.Away = mergeLine(b.Away, line)
		}
	}
}

func mergeLine(side []*plays.StatLine, line *plays.StatLine) []*plays.StatLine {
	for _, existing := range side {
		if existing.PlayerID == line.PlayerID {
			existing.Merge(line)
			return side
		}
	}
	clone := *line
	return append(side, &clone)
}

// TodayResponse is the payload returned by /games?date=YYYY-MM-DD.
type TodayResponse struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// NewTodayResponse builds a TodayResponse payload.
func NewTodayResponse(date string, games []Game) TodayResponse {
	return TodayResponse{
		Date:  date,
		Games: games,
	}
}
