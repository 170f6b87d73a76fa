package store

import (
	"testing"

	domaingames "github.com/gridironsim/playsim/internal/domain/games"
)

func TestTTLForStatus(t *testing.T) {
	if got := ttlForStatus(domaingames.StatusFinal); got != FinalGameTTL {
		t.Fatalf("expected final TTL %v, got %v", FinalGameTTL, got)
	}
	if got := ttlForStatus(domaingames.StatusInProgress); got != LiveGameTTL {
		t.Fatalf("expected live TTL %v, got %v", LiveGameTTL, got)
	}
	if got := ttlForStatus(domaingames.StatusScheduled); got != LiveGameTTL {
		t.Fatalf("expected default TTL %v, got %v", LiveGameTTL, got)
	}
}
