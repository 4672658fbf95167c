package launcher

import (
	"context"

	"github.com/SierraSoftworks/bislib/pkg/types"
)

// Observer receives the final outcome of an asynchronous launch, exactly once
type Observer func(types.LaunchOutcome)

// LaunchAsync runs the identical launch state machine on a new goroutine and
// returns immediately. The observer is invoked exactly once with the final
// outcome, on the worker goroutine. There is no cancellation, progress
// reporting or timeout beyond what the supplied context carries: a hung game
// process hangs the worker.
//
// The returned channel also delivers the outcome once and is then closed,
// for callers that prefer selecting over a channel to registering a callback.
// Concurrent launches are independent; the launcher shares no mutable state
// between them.
func (l *Launcher) LaunchAsync(ctx context.Context, cfg types.LaunchConfiguration, observer Observer) <-chan types.LaunchOutcome {
	done := make(chan types.LaunchOutcome, 1)

	go func() {
		outcome := l.launch(ctx, cfg)
		if observer != nil {
			observer(outcome)
		}
		done <- outcome
		close(done)
	}()

	return done
}
