package kicking

import (
	"testing"

	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/sim/rng"
)

func kicker(accuracy, power int) *players.Player {
	return &players.Player{
		ID:       "k1",
		Position: players.K,
		Ratings: map[string]int{
			players.RatingKickAccuracy: accuracy,
			players.RatingKickPower:    power,
		},
	}
}

func TestMakeProbabilityDropsWithDistance(t *testing.T) {
	k := kicker(75, 75)

	chip := MakeProbability(k, 25, plays.WeatherClear)
	long := MakeProbability(k, 55, plays.WeatherClear)
	bomb := MakeProbability(k, 62, plays.WeatherClear)

	if !(chip > long && long > bomb) {
		t.Fatalf("expected monotone decline with distance: %f, %f, %f", chip, long, bomb)
	}
}

func TestMakeProbabilityWindPenalty(t *testing.T) {
	k := kicker(75, 75)

	calm := MakeProbability(k, 45, plays.WeatherClear)
	windy := MakeProbability(k, 45, plays.WeatherWind)
	if windy >= calm {
		t.Fatalf("expected wind to reduce make probability: %f vs %f", windy, calm)
	}
}

func TestFieldGoalDistanceFromSpot(t *testing.T) {
	ctx := &plays.Context{FieldPosition: 70, Weather: plays.WeatherClear}
	res := ResolveFieldGoal(kicker(80, 80), ctx, rng.New(5))

	if res.Distance != 47 {
		t.Fatalf("expected 47-yard attempt from the 70, got %d", res.Distance)
	}
}

func TestExtraPointNearlyAutomatic(t *testing.T) {
	ctx := &plays.Context{Weather: plays.WeatherClear}
	src := rng.New(12)

	made := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if ResolveExtraPoint(kicker(80, 80), ctx, src) {
			made++
		}
	}

	ratio := float64(made) / trials
	if ratio < 0.90 {
		t.Fatalf("expected XP conversion above 0.90, got %f", ratio)
	}
}

func TestKickoffTouchbackHasNoReturner(t *testing.T) {
	receiving := []*players.Player{
		{ID: "cb1", Position: players.CB, Ratings: map[string]int{players.RatingSpeed: 90}},
		{ID: "ss1", Position: players.SS, Ratings: map[string]int{players.RatingSpeed: 70}},
	}

	sawTouchback := false
	sawReturn := false
	src := rng.New(77)
	for i := 0; i < 2000; i++ {
		res := ResolveKickoff(kicker(70, 95), receiving, src)
		if res.Touchback {
			sawTouchback = true
			if res.Returner != nil || res.ReturnYards != 0 {
				t.Fatalf("expected no return on touchback, got %+v", res)
			}
		} else {
			sawReturn = true
			if res.Returner == nil {
				t.Fatalf("expected a returner on a live kick")
			}
			if res.ReturnYards < 0 {
				t.Fatalf("expected non-negative return yards, got %d", res.ReturnYards)
			}
		}
	}

	if !sawTouchback || !sawReturn {
		t.Fatalf("expected a mix of touchbacks and returns, touchback=%v return=%v", sawTouchback, sawReturn)
	}
}

func TestSelectReturnerPrefersSpeed(t *testing.T) {
	receiving := []*players.Player{
		{ID: "fast", Position: players.CB, Ratings: map[string]int{players.RatingSpeed: 99}},
		{ID: "slow", Position: players.DT, Ratings: map[string]int{players.RatingSpeed: 25}},
	}

	src := rng.New(3)
	counts := map[string]int{}
	for i := 0; i < 5000; i++ {
		counts[SelectReturner(receiving, src).ID]++
	}
	if counts["fast"] <= counts["slow"] {
		t.Fatalf("expected the fast corner to field most kicks: %+v", counts)
	}
}
