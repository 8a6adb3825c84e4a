package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/saptohadi/wicara/domain"
)

// sequenceStatus returns states from a fixed sequence, holding the last
// one forever.
func sequenceStatus(states ...genai.FileState) StatusFunc {
	i := 0
	return func(ctx context.Context) (genai.FileState, error) {
		state := states[len(states)-1]
		if i < len(states) {
			state = states[i]
			i++
		}
		return state, nil
	}
}

func noSleep(time.Duration) {}

func TestWaitActiveBecomesActive(t *testing.T) {
	w := Waiter{Interval: 2 * time.Second, Timeout: 60 * time.Second, Sleep: noSleep}

	err := w.WaitActive(context.Background(), sequenceStatus(
		genai.FileStateProcessing,
		genai.FileStateProcessing,
		genai.FileStateActive,
	))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestWaitActiveImmediatelyActive(t *testing.T) {
	w := Waiter{Interval: 2 * time.Second, Timeout: 60 * time.Second, Sleep: noSleep}

	if err := w.WaitActive(context.Background(), sequenceStatus(genai.FileStateActive)); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestWaitActiveRejected(t *testing.T) {
	w := Waiter{Interval: 2 * time.Second, Timeout: 60 * time.Second, Sleep: noSleep}

	err := w.WaitActive(context.Background(), sequenceStatus(
		genai.FileStateProcessing,
		genai.FileStateFailed,
	))
	if !errors.Is(err, domain.ErrUploadRejected) {
		t.Fatalf("expected ErrUploadRejected, got %v", err)
	}
}

func TestWaitActiveTimesOut(t *testing.T) {
	slept := 0
	w := Waiter{
		Interval: 2 * time.Second,
		Timeout:  6 * time.Second,
		Sleep:    func(time.Duration) { slept++ },
	}

	err := w.WaitActive(context.Background(), sequenceStatus(genai.FileStateProcessing))
	if !errors.Is(err, domain.ErrUploadTimeout) {
		t.Fatalf("expected ErrUploadTimeout, got %v", err)
	}
	// 6s budget at a 2s interval allows exactly two sleeps before the
	// third check is abandoned.
	if slept != 2 {
		t.Errorf("expected 2 sleeps, got %d", slept)
	}
}

func TestWaitActiveStatusError(t *testing.T) {
	w := Waiter{Interval: 2 * time.Second, Timeout: 60 * time.Second, Sleep: noSleep}

	boom := errors.New("boom")
	err := w.WaitActive(context.Background(), func(ctx context.Context) (genai.FileState, error) {
		return genai.FileStateUnspecified, boom
	})
	if !errors.Is(err, domain.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
}

func TestWaitActiveCancelledContext(t *testing.T) {
	w := Waiter{Interval: 2 * time.Second, Timeout: 60 * time.Second, Sleep: noSleep}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.WaitActive(ctx, sequenceStatus(genai.FileStateProcessing))
	if !errors.Is(err, domain.ErrUploadTimeout) {
		t.Fatalf("expected ErrUploadTimeout on cancelled context, got %v", err)
	}
}
