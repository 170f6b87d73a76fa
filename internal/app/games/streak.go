package games

// streakTracker maintains one team's hot/cold multiplier across a game.
// Successful plays heat the offense up, stalled drives cool it down; the
// multiplier feeds the engine's streak stage and resets every game.
type streakTracker struct {
	value float64
}

const (
	streakNeutral = 1.0
	streakStep    = 0.03
	streakFloor   = 0.85
	streakCeiling = 1.15
)

func newStreakTracker() *streakTracker {
	return &streakTracker{value: streakNeutral}
}

// Multiplier returns the current hot/cold factor.
func (t *streakTracker) Multiplier() float64 {
	if t == nil {
		return streakNeutral
	}
	return t.value
}

// RecordSuccess nudges the team hotter.
func (t *streakTracker) RecordSuccess() {
	t.value += streakStep
	if t.value > streakCeiling {
		t.value = streakCeiling
	}
}

// RecordFailure nudges the team colder.
func (t *streakTracker) RecordFailure() {
	t.value -= streakStep
	if t.value < streakFloor {
		t.value = streakFloor
	}
}

// tackleLedger counts tackles per defender within one game so the engine's
// tackle draw can apply diminishing returns: the more tackles a player has
// already made, the less extra weight their rating advantage carries.
type tackleLedger struct {
	counts map[string]int
}

const tackleDampening = 0.15

func newTackleLedger() *tackleLedger {
	return &tackleLedger{counts: make(map[string]int)}
}

// Adjust implements attrib.WeightAdjuster.
func (l *tackleLedger) Adjust(playerID string) float64 {
	if l == nil {
		return 1.0
	}
	return 1.0 / (1.0 + tackleDampening*float64(l.counts[playerID]))
}

// Record folds a play's tackle counts into the ledger.
func (l *tackleLedger) Record(playerID string, tackles int) {
	if l == nil || tackles <= 0 {
		return
	}
	l.counts[playerID] += tackles
}
