package balance

import (
	"fmt"
	"strings"
)

// Validate checks the semantic constraints of a Config. Problems are
// collected and reported together so one load surfaces every issue.
func Validate(cfg *Config) error {
	var errs []string

	if len(cfg.BaseRates) == 0 {
		errs = append(errs, "base_rates must register at least one formation pairing")
	}
	for key, table := range cfg.BaseRates {
		for param, v := range map[string]float64{
			"completion_rate":   table.CompletionRate,
			"sack_rate":         table.SackRate,
			"pressure_rate":     table.PressureRate,
			"interception_rate": table.InterceptionRate,
			"deflection_rate":   table.DeflectionRate,
			"drop_rate":         table.DropRate,
		} {
			if v < 0 || v > 1 {
				errs = append(errs, fmt.Sprintf("base_rates[%s].%s must be in [0,1]", key, param))
			}
		}
		if table.AirYardsStdDev < 0 || table.YACStdDev < 0 || table.RushYardsStdDev < 0 {
			errs = append(errs, fmt.Sprintf("base_rates[%s] standard deviations must be >= 0", key))
		}
	}

	if len(cfg.Personnel.Offense) == 0 {
		errs = append(errs, "personnel.offense must register at least one formation")
	}
	if len(cfg.Personnel.Defense) == 0 {
		errs = append(errs, "personnel.defense must register at least one formation")
	}
	for name, table := range cfg.Personnel.Offense {
		if n := personnelTotal(table); n != 11 {
			errs = append(errs, fmt.Sprintf("personnel.offense[%s] must total 11 players, has %d", name, n))
		}
	}
	for name, table := range cfg.Personnel.Defense {
		if n := personnelTotal(table); n != 11 {
			errs = append(errs, fmt.Sprintf("personnel.defense[%s] must total 11 players, has %d", name, n))
		}
	}

	for i, p := range cfg.Penalties {
		if p.Name == "" {
			errs = append(errs, fmt.Sprintf("penalties[%d] missing name", i))
		}
		if p.Side != "offense" && p.Side != "defense" {
			errs = append(errs, fmt.Sprintf("penalties[%d] side must be offense or defense", i))
		}
		switch p.Phase {
		case "pre_snap", "during_play", "post_play":
		default:
			errs = append(errs, fmt.Sprintf("penalties[%d] phase must be pre_snap, during_play, or post_play", i))
		}
		if p.BaseRate < 0 || p.BaseRate > 1 {
			errs = append(errs, fmt.Sprintf("penalties[%d] base_rate must be in [0,1]", i))
		}
		if p.Yards <= 0 {
			errs = append(errs, fmt.Sprintf("penalties[%d] yards must be positive", i))
		}
	}

	for _, name := range []string{
		ThresholdClutch,
		ThresholdDesignedScrambleMobility,
		ThresholdComposureNeutralLow,
		ThresholdComposureNeutralHigh,
		ThresholdScrambleCeiling,
		ThresholdDesignedScrambleRate,
	} {
		if _, ok := cfg.Thresholds[name]; !ok {
			errs = append(errs, fmt.Sprintf("thresholds missing required %q", name))
		}
	}

	for _, category := range []string{CategoryWeather, CategoryScheme, CategoryDown} {
		if _, ok := cfg.Modifiers[category]; !ok {
			errs = append(errs, fmt.Sprintf("modifiers missing required category %q", category))
		}
	}
	for category, entries := range cfg.Modifiers {
		for entry, mods := range entries {
			for param, m := range mods {
				if m < 0 {
					errs = append(errs, fmt.Sprintf("modifiers[%s][%s][%s] must be >= 0", category, entry, param))
				}
			}
		}
	}

	if cfg.SackYards.Min <= 0 || cfg.SackYards.Max < cfg.SackYards.Min {
		errs = append(errs, "sack_yards must define a positive min <= max range")
	}

	if len(errs) > 0 {
		return &ConfigurationError{
			Section: "validate",
			Message: strings.Join(errs, "; "),
		}
	}
	return nil
}

func personnelTotal(table map[string]int) int {
	total := 0
	for _, n := range table {
		total += n
	}
	return total
}
