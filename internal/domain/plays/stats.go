package plays

// StatLine accumulates every countable statistic for one player on one play.
// Fields start at zero and are only ever incremented through the engine's
// attribution path; outside this core, game and season totals are built by
// field-wise addition (LongFieldGoal folds with max).
type StatLine struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`

	// Passing.
	PassAttempts    int `json:"passAttempts,omitempty"`
	PassCompletions int `json:"passCompletions,omitempty"`
	PassYards       int `json:"passYards,omitempty"`
	PassTouchdowns  int `json:"passTouchdowns,omitempty"`
	InterceptionsThrown int `json:"interceptionsThrown,omitempty"`
	TimesSacked     int `json:"timesSacked,omitempty"`
	SackYardsLost   int `json:"sackYardsLost,omitempty"`

	// Rushing.
	RushAttempts   int `json:"rushAttempts,omitempty"`
	RushYards      int `json:"rushYards,omitempty"`
	RushTouchdowns int `json:"rushTouchdowns,omitempty"`

	// Receiving.
	Targets         int `json:"targets,omitempty"`
	Receptions      int `json:"receptions,omitempty"`
	ReceivingYards  int `json:"receivingYards,omitempty"`
	ReceivingTouchdowns int `json:"receivingTouchdowns,omitempty"`
	Drops           int `json:"drops,omitempty"`

	// Defense. Sacks are fractional so a shared sack splits evenly.
	Tackles         int     `json:"tackles,omitempty"`
	TackleAssists   int     `json:"tackleAssists,omitempty"`
	Sacks           float64 `json:"sacks,omitempty"`
	Interceptions   int     `json:"interceptions,omitempty"`
	PassDeflections int     `json:"passDeflections,omitempty"`
	Pressures       int     `json:"pressures,omitempty"`
	CoverageTargets int     `json:"coverageTargets,omitempty"`

	// Kicking game.
	FieldGoalAttempts int `json:"fieldGoalAttempts,omitempty"`
	FieldGoalsMade    int `json:"fieldGoalsMade,omitempty"`
	LongFieldGoal     int `json:"longFieldGoal,omitempty"` // folds with max, not addition
	ExtraPointAttempts int `json:"extraPointAttempts,omitempty"`
	ExtraPointsMade    int `json:"extraPointsMade,omitempty"`
	KickoffYards       int `json:"kickoffYards,omitempty"`
	KickReturns        int `json:"kickReturns,omitempty"`
	KickReturnYards    int `json:"kickReturnYards,omitempty"`

	// Discipline.
	Penalties    int `json:"penalties,omitempty"`
	PenaltyYards int `json:"penaltyYards,omitempty"`

	// Participation.
	OffensiveSnaps int `json:"offensiveSnaps,omitempty"`
	DefensiveSnaps int `json:"defensiveSnaps,omitempty"`
}

// Empty reports whether the line recorded nothing at all, snaps included.
func (s *StatLine) Empty() bool {
	return s.PassAttempts == 0 && s.PassCompletions == 0 && s.PassYards == 0 &&
		s.PassTouchdowns == 0 && s.InterceptionsThrown == 0 && s.TimesSacked == 0 &&
		s.SackYardsLost == 0 &&
		s.RushAttempts == 0 && s.RushYards == 0 && s.RushTouchdowns == 0 &&
		s.Targets == 0 && s.Receptions == 0 && s.ReceivingYards == 0 &&
		s.ReceivingTouchdowns == 0 && s.Drops == 0 &&
		s.Tackles == 0 && s.TackleAssists == 0 && s.Sacks == 0 &&
		s.Interceptions == 0 && s.PassDeflections == 0 && s.Pressures == 0 &&
		s.CoverageTargets == 0 &&
		s.FieldGoalAttempts == 0 && s.FieldGoalsMade == 0 && s.LongFieldGoal == 0 &&
		s.ExtraPointAttempts == 0 && s.ExtraPointsMade == 0 &&
		s.KickoffYards == 0 && s.KickReturns == 0 && s.KickReturnYards == 0 &&
		s.Penalties == 0 && s.PenaltyYards == 0 &&
		s.OffensiveSnaps == 0 && s.DefensiveSnaps == 0
}

// Merge adds other's counts into s. LongFieldGoal keeps the maximum.
func (s *StatLine) Merge(other *StatLine) {
	if other == nil {
		return
	}
	s.PassAttempts += other.PassAttempts
	s.PassCompletions += other.PassCompletions
	s.PassYards += other.PassYards
	s.PassTouchdowns += other.PassTouchdowns
	s.InterceptionsThrown += other.InterceptionsThrown
	s.TimesSacked += other.TimesSacked
	s.SackYardsLost += other.SackYardsLost
	s.RushAttempts += other.RushAttempts
	s.RushYards += other.RushYards
	s.RushTouchdowns += other.RushTouchdowns
	s.Targets += other.Targets
	s.Receptions += other.Receptions
	s.ReceivingYards += other.ReceivingYards
	s.ReceivingTouchdowns += other.ReceivingTouchdowns
	s.Drops += other.Drops
	s.Tackles += other.Tackles
	s.TackleAssists += other.TackleAssists
	s.Sacks += other.Sacks
	s.Interceptions += other.Interceptions
	s.PassDeflections += other.PassDeflections
	s.Pressures += other.Pressures
	s.CoverageTargets += other.CoverageTargets
	s.FieldGoalAttempts += other.FieldGoalAttempts
	s.FieldGoalsMade += other.FieldGoalsMade
	if other.LongFieldGoal > s.LongFieldGoal {
		s.LongFieldGoal = other.LongFieldGoal
	}
	s.ExtraPointAttempts += other.ExtraPointAttempts
	s.ExtraPointsMade += other.ExtraPointsMade
	s.KickoffYards += other.KickoffYards
	s.KickReturns += other.KickReturns
	s.KickReturnYards += other.KickReturnYards
	s.Penalties += other.Penalties
	s.PenaltyYards += other.PenaltyYards
	s.OffensiveSnaps += other.OffensiveSnaps
	s.DefensiveSnaps += other.DefensiveSnaps
}
