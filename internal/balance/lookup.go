package balance

import "fmt"

// PairKey builds a base-rate key for an offensive/defensive formation pair.
func PairKey(off, def string) string {
	return off + "|" + def
}

// Rates resolves the base-rate table for a formation pairing, trying the
// exact pair, then each side with a wildcard, then the global wildcard.
func (c *Config) Rates(off, def string) (RateTable, error) {
	for _, key := range []string{PairKey(off, def), PairKey(off, "*"), PairKey("*", def), PairKey("*", "*")} {
		if table, ok := c.BaseRates[key]; ok {
			return table, nil
		}
	}
	return RateTable{}, missing("base_rates", PairKey(off, def))
}

// OffensivePersonnel returns the position->count table for an offensive
// formation, or a ConfigurationError if the formation is not registered.
func (c *Config) OffensivePersonnel(formation string) (map[string]int, error) {
	table, ok := c.Personnel.Offense[formation]
	if !ok || len(table) == 0 {
		return nil, missing("personnel.offense", formation)
	}
	return table, nil
}

// DefensivePersonnel returns the position->count table for a defensive
// formation, or a ConfigurationError if the formation is not registered.
func (c *Config) DefensivePersonnel(formation string) (map[string]int, error) {
	table, ok := c.Personnel.Defense[formation]
	if !ok || len(table) == 0 {
		return nil, missing("personnel.defense", formation)
	}
	return table, nil
}

// BlitzPackage returns the rushing position slots for a named package.
// Unknown package names fall back to the standard four-man rush so a play
// can always be resolved once formations validated.
func (c *Config) BlitzPackage(name string) []string {
	if slots, ok := c.Blitz[name]; ok && len(slots) > 0 {
		return slots
	}
	if slots, ok := c.Blitz["standard"]; ok && len(slots) > 0 {
		return slots
	}
	return []string{"DE", "DE", "DT", "DT"}
}

// Threshold resolves a named tuning point, fail-loud.
func (c *Config) Threshold(name string) (float64, error) {
	v, ok := c.Thresholds[name]
	if !ok {
		return 0, missing("thresholds", name)
	}
	return v, nil
}

// MustThreshold is for call sites running after Validate has guaranteed the
// name exists; it panics on a missing name rather than silently defaulting.
func (c *Config) MustThreshold(name string) float64 {
	v, err := c.Threshold(name)
	if err != nil {
		panic(fmt.Sprintf("threshold %q validated absent: %v", name, err))
	}
	return v
}

// Modifier returns the multiplier for a rate parameter under a category
// entry. Entries absent from a registered category are neutral.
func (c *Config) Modifier(category, entry, param string) (float64, error) {
	cat, ok := c.Modifiers[category]
	if !ok {
		return 0, missing("modifiers", category)
	}
	mods, ok := cat[entry]
	if !ok {
		return 1.0, nil
	}
	if m, ok := mods[param]; ok {
		return m, nil
	}
	return 1.0, nil
}
