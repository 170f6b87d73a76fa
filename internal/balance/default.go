package balance

// Default returns the built-in balance tables. Used when no config file is
// supplied and by tests; a file loaded through Load replaces it wholesale.
func Default() *Config {
	cfg := &Config{
		Version: 1,
		BaseRates: map[string]RateTable{
			PairKey("*", "*"): {
				CompletionRate:   0.62,
				SackRate:         0.065,
				PressureRate:     0.24,
				InterceptionRate: 0.025,
				DeflectionRate:   0.055,
				DropRate:         0.045,

				AirYardsMean:   8.5,
				AirYardsStdDev: 6.0,
				YACMean:        4.5,
				YACStdDev:      3.5,

				RushYardsMean:         4.2,
				RushYardsStdDev:       3.2,
				YardsAfterContactMean: 1.8,
			},
			PairKey("shotgun", "nickel"): {
				CompletionRate:   0.64,
				SackRate:         0.06,
				PressureRate:     0.23,
				InterceptionRate: 0.024,
				DeflectionRate:   0.06,
				DropRate:         0.045,

				AirYardsMean:   9.0,
				AirYardsStdDev: 6.5,
				YACMean:        4.8,
				YACStdDev:      3.6,

				RushYardsMean:         4.6,
				RushYardsStdDev:       3.4,
				YardsAfterContactMean: 1.9,
			},
			PairKey("shotgun", "dime"): {
				CompletionRate:   0.66,
				SackRate:         0.055,
				PressureRate:     0.22,
				InterceptionRate: 0.022,
				DeflectionRate:   0.065,
				DropRate:         0.045,

				AirYardsMean:   9.5,
				AirYardsStdDev: 7.0,
				YACMean:        5.0,
				YACStdDev:      3.8,

				RushYardsMean:         5.2,
				RushYardsStdDev:       3.6,
				YardsAfterContactMean: 2.0,
			},
			PairKey("i_form", "4-3"): {
				CompletionRate:   0.60,
				SackRate:         0.07,
				PressureRate:     0.25,
				InterceptionRate: 0.026,
				DeflectionRate:   0.05,
				DropRate:         0.045,

				AirYardsMean:   8.0,
				AirYardsStdDev: 5.5,
				YACMean:        4.2,
				YACStdDev:      3.3,

				RushYardsMean:         4.0,
				RushYardsStdDev:       3.0,
				YardsAfterContactMean: 1.9,
			},
			PairKey("goal_line", "goal_line_d"): {
				CompletionRate:   0.55,
				SackRate:         0.08,
				PressureRate:     0.28,
				InterceptionRate: 0.03,
				DeflectionRate:   0.05,
				DropRate:         0.05,

				AirYardsMean:   4.0,
				AirYardsStdDev: 3.0,
				YACMean:        2.0,
				YACStdDev:      2.0,

				RushYardsMean:         2.2,
				RushYardsStdDev:       2.2,
				YardsAfterContactMean: 1.2,
			},
		},
		Blitz: map[string][]string{
			"standard":     {"DE", "DE", "DT", "DT"},
			"mike_blitz":   {"DE", "DE", "DT", "DT", "MLB"},
			"double_a_gap": {"DE", "DE", "DT", "MLB", "OLB"},
			"corner_blitz": {"DE", "DE", "DT", "DT", "CB"},
			"safety_blitz": {"DE", "DE", "DT", "DT", "SS"},
			"zero_blitz":   {"DE", "DE", "DT", "DT", "MLB", "OLB", "SS"},
		},
		Penalties: []PenaltySpec{
			{Name: "false_start", Side: "offense", Phase: "pre_snap", Yards: 5, BaseRate: 0.020, NegatesPlay: true, Positions: []string{"LT", "LG", "C", "RG", "RT", "OL", "TE"}},
			{Name: "offside", Side: "defense", Phase: "pre_snap", Yards: 5, BaseRate: 0.014, NegatesPlay: true, Positions: []string{"DE", "DT", "DL"}},
			{Name: "offensive_holding", Side: "offense", Phase: "during_play", Yards: 10, BaseRate: 0.025, NegatesPlay: true, Positions: []string{"LT", "LG", "C", "RG", "RT", "OL", "TE"}},
			{Name: "defensive_holding", Side: "defense", Phase: "during_play", Yards: 5, BaseRate: 0.012, AutoFirstDown: true, Positions: []string{"CB", "FS", "SS", "S", "OLB"}, PlayTypes: []string{"pass"}},
			{Name: "pass_interference", Side: "defense", Phase: "during_play", Yards: 15, BaseRate: 0.010, AutoFirstDown: true, NegatesPlay: true, Positions: []string{"CB", "FS", "SS", "S"}, PlayTypes: []string{"pass"}},
			{Name: "face_mask", Side: "defense", Phase: "during_play", Yards: 15, BaseRate: 0.004, AutoFirstDown: true, Positions: []string{"MLB", "OLB", "LB", "DE", "DT"}},
			{Name: "unnecessary_roughness", Side: "defense", Phase: "post_play", Yards: 15, BaseRate: 0.004, AutoFirstDown: true},
			{Name: "delay_of_game", Side: "offense", Phase: "pre_snap", Yards: 5, BaseRate: 0.006, NegatesPlay: true, Positions: []string{"QB"}},
			{Name: "illegal_formation", Side: "offense", Phase: "pre_snap", Yards: 5, BaseRate: 0.004, NegatesPlay: true},
		},
		Thresholds: map[string]float64{
			ThresholdClutch:                   0.7,
			ThresholdDesignedScrambleMobility: 85,
			ThresholdComposureNeutralLow:      45,
			ThresholdComposureNeutralHigh:     65,
			ThresholdScrambleCeiling:          0.75,
			ThresholdDesignedScrambleRate:     0.04,
		},
		Modifiers: map[string]map[string]map[string]float64{
			CategoryWeather: {
				"rain": {
					"completion_rate": 0.92,
					"drop_rate":       1.25,
					"air_yards_mean":  0.90,
					"rush_yards_mean": 0.95,
				},
				"snow": {
					"completion_rate": 0.85,
					"drop_rate":       1.40,
					"air_yards_mean":  0.80,
					"rush_yards_mean": 0.90,
				},
				"wind": {
					"completion_rate":   0.95,
					"air_yards_mean":    0.85,
					"interception_rate": 1.15,
				},
			},
			CategoryScheme: {
				"prevent": {
					"completion_rate":   1.10,
					"sack_rate":         0.60,
					"pressure_rate":     0.70,
					"air_yards_mean":    0.75,
					"interception_rate": 0.85,
				},
				"blitz": {
					"sack_rate":         1.45,
					"pressure_rate":     1.40,
					"completion_rate":   0.95,
					"interception_rate": 1.10,
					"yac_mean":          1.20,
				},
				"man": {
					"completion_rate": 0.97,
					"yac_mean":        0.95,
				},
				"zone": {
					"completion_rate":   1.03,
					"interception_rate": 1.08,
					"yac_mean":          1.05,
				},
			},
			CategoryDown: {
				"3": {
					"pressure_rate":   1.20,
					"sack_rate":       1.10,
					"completion_rate": 0.95,
				},
				"4": {
					"pressure_rate":   1.25,
					"sack_rate":       1.15,
					"completion_rate": 0.93,
				},
			},
			CategoryCrowd: {
				"loud": {
					"completion_rate": 0.96,
					"sack_rate":       1.12,
				},
			},
			CategoryPenalty: {
				"red_zone": {
					"rate": 1.15,
				},
				"two_minute": {
					"rate": 1.10,
				},
			},
		},
		SackYards: YardRange{Min: 4, Max: 10},
	}

	cfg.Personnel.Offense = map[string]map[string]int{
		"i_form":     {"QB": 1, "RB": 1, "FB": 1, "WR": 2, "TE": 1, "LT": 1, "LG": 1, "C": 1, "RG": 1, "RT": 1},
		"singleback": {"QB": 1, "RB": 1, "WR": 3, "TE": 1, "LT": 1, "LG": 1, "C": 1, "RG": 1, "RT": 1},
		"shotgun":    {"QB": 1, "RB": 1, "WR": 3, "TE": 1, "LT": 1, "LG": 1, "C": 1, "RG": 1, "RT": 1},
		"goal_line":  {"QB": 1, "RB": 1, "FB": 1, "WR": 1, "TE": 2, "LT": 1, "LG": 1, "C": 1, "RG": 1, "RT": 1},
		"field_goal": {"K": 1, "QB": 1, "RB": 1, "WR": 1, "TE": 2, "LT": 1, "LG": 1, "C": 1, "RG": 1, "RT": 1},
		"kickoff":    {"K": 1, "WR": 4, "TE": 2, "RB": 4},
	}
	cfg.Personnel.Defense = map[string]map[string]int{
		"4-3":         {"DE": 2, "DT": 2, "OLB": 2, "MLB": 1, "CB": 2, "FS": 1, "SS": 1},
		"3-4":         {"DE": 2, "DT": 1, "OLB": 2, "MLB": 2, "CB": 2, "FS": 1, "SS": 1},
		"nickel":      {"DE": 2, "DT": 2, "OLB": 1, "MLB": 1, "CB": 3, "FS": 1, "SS": 1},
		"dime":        {"DE": 2, "DT": 1, "OLB": 1, "MLB": 1, "CB": 4, "FS": 1, "SS": 1},
		"goal_line_d": {"DE": 2, "DT": 3, "OLB": 2, "MLB": 2, "CB": 1, "SS": 1},
		"kick_return": {"CB": 3, "FS": 1, "SS": 1, "OLB": 2, "MLB": 1, "DE": 2, "DT": 1},
		"fg_block":    {"DE": 2, "DT": 3, "OLB": 2, "MLB": 1, "CB": 2, "FS": 1},
	}

	return cfg
}
