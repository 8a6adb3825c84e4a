package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/saptohadi/wicara/domain"
)

// StatusFunc reports the current remote state of an uploaded artifact.
type StatusFunc func(ctx context.Context) (genai.FileState, error)

// Waiter polls an uploaded artifact until it becomes active, expressed as
// a bounded-retry loop independent of any particular SDK call site. Sleep
// is injectable so tests can drive the loop with a fake status sequence
// and no real clock.
type Waiter struct {
	Interval time.Duration
	Timeout  time.Duration
	Sleep    func(time.Duration)
}

// WaitActive re-checks the artifact state at a fixed interval until it is
// active, the service reports failure (domain.ErrUploadRejected), or the
// overall timeout elapses (domain.ErrUploadTimeout).
func (w Waiter) WaitActive(ctx context.Context, status StatusFunc) error {
	sleep := w.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var elapsed time.Duration
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrUploadTimeout, err)
		}

		state, err := status(ctx)
		if err != nil {
			return fmt.Errorf("%w: status check failed: %v", domain.ErrProvider, err)
		}

		switch state {
		case genai.FileStateActive:
			return nil
		case genai.FileStateFailed:
			return domain.ErrUploadRejected
		}

		elapsed += w.Interval
		if elapsed >= w.Timeout {
			return domain.ErrUploadTimeout
		}
		sleep(w.Interval)
	}
}
