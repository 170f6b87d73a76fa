package players

// Rating names understood by the simulation engine. A player may carry any
// subset; lookups fall back through RatingChain.
const (
	RatingOverall        = "overall"
	RatingAccuracy       = "accuracy"
	RatingComposure      = "composure"
	RatingMobility       = "mobility"
	RatingSpeed          = "speed"
	RatingAgility        = "agility"
	RatingHands          = "hands"
	RatingRouteRunning   = "route_running"
	RatingPassProtection = "pass_protection"
	RatingRunBlocking    = "run_blocking"
	RatingCoverage       = "coverage"
	RatingPassRush       = "pass_rush"
	RatingTackle         = "tackle"
	RatingDiscipline     = "discipline"
	RatingKickPower      = "kick_power"
	RatingKickAccuracy   = "kick_accuracy"
	RatingCarrying       = "carrying"
	RatingVision         = "vision"
)

// DefaultRating is the final fallback when a player carries neither the
// requested rating nor an overall rating.
const DefaultRating = 50

// Player is a read-only view of one roster entry. The simulation never
// mutates a Player.
type Player struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Jersey   int            `json:"jersey"`
	Position Position       `json:"position"`
	Team     string         `json:"team"`
	Ratings  map[string]int `json:"ratings"`
}

// Rating returns the named rating if the player carries it.
func (p *Player) Rating(name string) (int, bool) {
	if p == nil || p.Ratings == nil {
		return 0, false
	}
	v, ok := p.Ratings[name]
	return v, ok
}

// Overall returns the player's overall rating, or DefaultRating when absent.
func (p *Player) Overall() int {
	if v, ok := p.Rating(RatingOverall); ok {
		return v
	}
	return DefaultRating
}

// RatingChain resolves the first rating present in names, falling back to
// the overall rating and finally to def. This is the one documented fallback
// chain; call sites never re-derive it.
func RatingChain(p *Player, def int, names ...string) int {
	if p == nil {
		return def
	}
	for _, name := range names {
		if v, ok := p.Rating(name); ok {
			return v
		}
	}
	if v, ok := p.Rating(RatingOverall); ok {
		return v
	}
	return def
}

// RatingScale maps a 0-100 rating onto a multiplier centered on 1.0, where
// rating 50 is neutral and spread controls how far elite or poor ratings
// bend the multiplier.
func RatingScale(rating int, spread float64) float64 {
	return 1.0 + (float64(rating)-50.0)/50.0*spread
}

// ByPosition filters the given players down to those whose listed position
// satisfies Fills for slot, preserving depth order.
func ByPosition(list []*Player, slot Position) []*Player {
	var out []*Player
	for _, p := range list {
		if Fills(p.Position, slot) {
			out = append(out, p)
		}
	}
	return out
}
