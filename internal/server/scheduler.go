package server

import (
	"context"

	"github.com/gridironsim/playsim/internal/scheduler"
)

// Scheduler defines the minimal background-scheduler behavior needed by the server.
type Scheduler interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() scheduler.Status
}
