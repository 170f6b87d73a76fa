package plays

// PlayType is a closed enumeration of the snap types the engine can resolve.
// The single dispatch point in the simulator switches over it exhaustively.
type PlayType int

const (
	Pass PlayType = iota
	Run
	FieldGoal
	ExtraPoint
	Kickoff
)

// String returns the canonical lowercase name for the play type.
func (t PlayType) String() string {
	switch t {
	case Pass:
		return "pass"
	case Run:
		return "run"
	case FieldGoal:
		return "field_goal"
	case ExtraPoint:
		return "extra_point"
	case Kickoff:
		return "kickoff"
	}
	return "unknown"
}

// ParsePlayType maps a wire name back onto a PlayType.
func ParsePlayType(s string) (PlayType, bool) {
	switch s {
	case "pass":
		return Pass, true
	case "run":
		return Run, true
	case "field_goal":
		return FieldGoal, true
	case "extra_point":
		return ExtraPoint, true
	case "kickoff":
		return Kickoff, true
	}
	return 0, false
}

// Weather describes the game-time conditions affecting the modifier pipeline.
type Weather string

const (
	WeatherClear Weather = "clear"
	WeatherRain  Weather = "rain"
	WeatherSnow  Weather = "snow"
	WeatherWind  Weather = "wind"
)

// Coverage scheme families recognized by the coverage assigner.
const (
	SchemeMan     = "man"
	SchemeZone    = "zone"
	SchemeBlitz   = "blitz"
	SchemePrevent = "prevent"
)

// Context is the immutable situational snapshot for a single snap. Built
// fresh by the caller for every play and never mutated afterwards.
type Context struct {
	Quarter       int      `json:"quarter"`
	Clock         int      `json:"clock"` // seconds remaining in the quarter
	Down          int      `json:"down"`
	Distance      int      `json:"distance"`
	FieldPosition int      `json:"fieldPosition"` // 0-100, offense's own goal line = 0
	ScoreDiff     int      `json:"scoreDiff"`     // offense score minus defense score
	HomeOffense   bool     `json:"homeOffense"`
	Type          PlayType `json:"type"`

	OffFormation string `json:"offFormation"`
	DefFormation string `json:"defFormation"`

	CoverageScheme string `json:"coverageScheme"`
	BlitzPackage   string `json:"blitzPackage"`

	Weather    Weather `json:"weather"`
	CrowdNoise float64 `json:"crowdNoise"` // 0-1 intensity at the venue
	Momentum   float64 `json:"momentum"`   // team multiplier, 1.0 neutral
	Clutch     float64 `json:"clutch"`     // 0-1 urgency factor
	Primetime  bool    `json:"primetime"`
}

// YardsToGoal returns the distance from the current spot to the end zone.
func (c *Context) YardsToGoal() int {
	return 100 - c.FieldPosition
}

// PenaltyPhase marks when in the snap a penalty occurred.
type PenaltyPhase string

const (
	PhasePreSnap    PenaltyPhase = "pre_snap"
	PhaseDuringPlay PenaltyPhase = "during_play"
	PhasePostPlay   PenaltyPhase = "post_play"
)

// Penalty records a single infraction and its game effects. Created only by
// the penalty engine and immutable afterwards; a play carries at most one.
type Penalty struct {
	Type          string       `json:"type"`
	PlayerID      string       `json:"playerId"`
	PlayerName    string       `json:"playerName"`
	Position      string       `json:"position"`
	OnDefense     bool         `json:"onDefense"`
	Yards         int          `json:"yards"`
	AutoFirstDown bool         `json:"autoFirstDown"`
	NegatesPlay   bool         `json:"negatesPlay"`
	Phase         PenaltyPhase `json:"phase"`

	// Situation at the moment the flag was thrown.
	Down          int `json:"down"`
	Distance      int `json:"distance"`
	FieldPosition int `json:"fieldPosition"`
}

// Result is the fully attributed outcome of one snap. Ownership passes to
// the caller; the engine keeps no reference once returned.
type Result struct {
	ID          string      `json:"id"`
	Type        PlayType    `json:"type"`
	Outcome     string      `json:"outcome"`
	Yards       int         `json:"yards"`
	TimeElapsed int         `json:"timeElapsed"` // seconds off the clock
	Points      int         `json:"points"`
	Touchdown   bool        `json:"touchdown"`
	Turnover    bool        `json:"turnover"`
	Penalty     *Penalty    `json:"penalty,omitempty"`
	Stats       []*StatLine `json:"stats"`
}

// Outcome labels reported on Result.Outcome.
const (
	OutcomeComplete     = "complete"
	OutcomeIncomplete   = "incomplete"
	OutcomeDrop         = "drop"
	OutcomeInterception = "interception"
	OutcomeDeflection   = "deflection"
	OutcomeSack         = "sack"
	OutcomeScramble     = "scramble"
	OutcomeRush         = "rush"
	OutcomeFieldGoal    = "field_goal"
	OutcomeMissedKick   = "missed_kick"
	OutcomeExtraPoint   = "extra_point"
	OutcomeKickoff      = "kickoff"
	OutcomeTouchback    = "touchback"
	OutcomePenalty      = "penalty"
)
