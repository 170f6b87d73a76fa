package ground

import (
	"testing"

	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/sim/rng"
)

func TestSelectCarrierFavorsLeadBack(t *testing.T) {
	offense := []*players.Player{
		{ID: "qb1", Position: players.QB},
		{ID: "rb1", Position: players.RB, Ratings: map[string]int{players.RatingCarrying: 80}},
		{ID: "rb2", Position: players.RB, Ratings: map[string]int{players.RatingCarrying: 80}},
		{ID: "fb1", Position: players.FB, Ratings: map[string]int{players.RatingCarrying: 60}},
	}

	src := rng.New(19)
	counts := map[string]int{}
	const trials = 20000
	for i := 0; i < trials; i++ {
		counts[SelectCarrier(offense, src).ID]++
	}

	if counts["rb1"] <= counts["rb2"] {
		t.Fatalf("expected lead back to carry most: %+v", counts)
	}
	if counts["fb1"] == 0 {
		t.Fatalf("expected occasional fullback carries: %+v", counts)
	}
	if counts["qb1"] != 0 {
		t.Fatalf("expected no QB carries with backs available: %+v", counts)
	}
}

func TestSelectCarrierFallsBackToQuarterback(t *testing.T) {
	offense := []*players.Player{
		{ID: "qb1", Position: players.QB},
		{ID: "wr1", Position: players.WR},
	}

	if got := SelectCarrier(offense, rng.New(2)); got.ID != "qb1" {
		t.Fatalf("expected QB fallback, got %s", got.ID)
	}
}

func TestResolveBoundsLoss(t *testing.T) {
	rates := balance.RateTable{RushYardsMean: -4, RushYardsStdDev: 3, YardsAfterContactMean: 0}
	carrier := &players.Player{ID: "rb1", Position: players.RB}

	for seed := uint64(0); seed < 500; seed++ {
		res := Resolve(carrier, rates, rng.New(seed))
		if res.Yards < -6 {
			t.Fatalf("expected loss capped at -6, got %d", res.Yards)
		}
	}
}

func TestFastBackBreaksLongerRuns(t *testing.T) {
	rates := balance.RateTable{RushYardsMean: 4, RushYardsStdDev: 2, YardsAfterContactMean: 1.5}

	total := func(speed int) int {
		carrier := &players.Player{ID: "rb1", Position: players.RB, Ratings: map[string]int{players.RatingSpeed: speed, players.RatingVision: 70}}
		src := rng.New(91)
		sum := 0
		for i := 0; i < 10000; i++ {
			sum += Resolve(carrier, rates, src).Yards
		}
		return sum
	}

	if fast, slow := total(99), total(20); fast <= slow {
		t.Fatalf("expected fast back to out-gain slow back: %d vs %d", fast, slow)
	}
}
