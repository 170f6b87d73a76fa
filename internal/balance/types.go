package balance

// RateTable holds the tunable base rates and yardage means for one
// formation pairing. Rate fields are probabilities; yardage fields are
// Gaussian means/spreads and may legitimately go negative after the
// execution-variance stage (busted plays).
type RateTable struct {
	CompletionRate   float64 `yaml:"completion_rate"`
	SackRate         float64 `yaml:"sack_rate"`
	PressureRate     float64 `yaml:"pressure_rate"`
	InterceptionRate float64 `yaml:"interception_rate"`
	DeflectionRate   float64 `yaml:"deflection_rate"`
	DropRate         float64 `yaml:"drop_rate"`

	AirYardsMean   float64 `yaml:"air_yards_mean"`
	AirYardsStdDev float64 `yaml:"air_yards_stddev"`
	YACMean        float64 `yaml:"yac_mean"`
	YACStdDev      float64 `yaml:"yac_stddev"`

	RushYardsMean         float64 `yaml:"rush_yards_mean"`
	RushYardsStdDev       float64 `yaml:"rush_yards_stddev"`
	YardsAfterContactMean float64 `yaml:"yards_after_contact_mean"`
}

// PenaltySpec registers one penalty type. Specs roll independently in
// registration order; the first to trigger is the play's only penalty.
type PenaltySpec struct {
	Name          string   `yaml:"name"`
	Side          string   `yaml:"side"`  // "offense" or "defense"
	Phase         string   `yaml:"phase"` // pre_snap, during_play, post_play
	Yards         int      `yaml:"yards"`
	BaseRate      float64  `yaml:"base_rate"`
	NegatesPlay   bool     `yaml:"negates_play"`
	AutoFirstDown bool     `yaml:"auto_first_down"`
	Positions     []string `yaml:"positions,omitempty"`  // preferred committing positions
	PlayTypes     []string `yaml:"play_types,omitempty"` // empty = any play type
}

// AppliesTo reports whether this penalty can fire on the given play type.
func (p PenaltySpec) AppliesTo(playType string) bool {
	if len(p.PlayTypes) == 0 {
		return true
	}
	for _, t := range p.PlayTypes {
		if t == playType {
			return true
		}
	}
	return false
}

// YardRange bounds a uniform integer draw, inclusive on both ends.
type YardRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Config is the immutable balance handle constructed once at startup and
// passed by reference into every component that needs it. Nothing mutates
// it after Load returns.
type Config struct {
	Version int `yaml:"version"`

	// BaseRates is keyed "offFormation|defFormation"; lookups fall back to
	// "off|*", "*|def", then "*|*". A config registering no applicable key
	// fails the lookup loudly.
	BaseRates map[string]RateTable `yaml:"base_rates"`

	// Personnel maps formation name to required count per position slot.
	Personnel struct {
		Offense map[string]map[string]int `yaml:"offense"`
		Defense map[string]map[string]int `yaml:"defense"`
	} `yaml:"personnel"`

	// Blitz maps package name to the defensive position slots that rush.
	// Everyone else on the field covers.
	Blitz map[string][]string `yaml:"blitz"`

	Penalties []PenaltySpec `yaml:"penalties"`

	// Thresholds are engine tuning points looked up by name, fail-loud.
	Thresholds map[string]float64 `yaml:"thresholds"`

	// Modifiers: category -> entry -> rate parameter -> multiplier.
	// An entry absent from a registered category is neutral (1.0); an
	// absent category is a configuration error.
	Modifiers map[string]map[string]map[string]float64 `yaml:"modifiers"`

	SackYards YardRange `yaml:"sack_yards"`
}

// Threshold names used by the engine.
const (
	ThresholdClutch                  = "clutch"
	ThresholdDesignedScrambleMobility = "designed_scramble_mobility"
	ThresholdComposureNeutralLow     = "composure_neutral_low"
	ThresholdComposureNeutralHigh    = "composure_neutral_high"
	ThresholdScrambleCeiling         = "scramble_ceiling"
	ThresholdDesignedScrambleRate    = "designed_scramble_rate"
)

// Modifier categories used by the engine.
const (
	CategoryWeather = "weather"
	CategoryScheme  = "scheme"
	CategoryDown    = "down"
	CategoryCrowd   = "crowd"
	CategoryPenalty = "penalty_situation"
)
