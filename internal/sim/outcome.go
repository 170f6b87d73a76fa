package sim

import "github.com/gridironsim/playsim/internal/domain/plays"

// Assembly is the final yardage and scoring verdict for a play.
type Assembly struct {
	Yards     int
	Points    int
	Touchdown bool
}

// assembleOutcome combines pre-penalty yards, penalty-adjusted yards, and
// the negation flag into the final result. A touchdown scored on the
// original play stands even when a penalty is assessed alongside it (the
// flag carries to the try or kickoff); otherwise the touchdown question is
// decided by the penalty-adjusted yardage. Yardage is clipped so the
// resulting spot never leaves the field.
func assembleOutcome(ctx *plays.Context, preYards, finalYards int, negated bool) Assembly {
	toGoal := ctx.YardsToGoal()

	if preYards >= toGoal && !negated {
		return Assembly{Yards: toGoal, Points: 6, Touchdown: true}
	}

	if finalYards >= toGoal {
		return Assembly{Yards: toGoal, Points: 6, Touchdown: true}
	}

	// Never push the offense back out of its own end zone.
	if finalYards < -ctx.FieldPosition {
		finalYards = -ctx.FieldPosition
	}
	return Assembly{Yards: finalYards}
}
