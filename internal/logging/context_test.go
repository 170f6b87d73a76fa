package logging

import (
	"context"
	"testing"
)

func TestFromContextReturnsStoredLogger(t *testing.T) {
	base := NewLogger(Config{})
	ctx := WithLogger(context.Background(), base)

	if got := FromContext(ctx, nil); got != base {
		t.Fatalf("expected the stored logger back")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	fallback := NewLogger(Config{})

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected the fallback logger")
	}
	if got := FromContext(nil, fallback); got != fallback {
		t.Fatalf("expected the fallback logger for a nil context")
	}
}
