package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDo_StopsAfterBudget(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 4, time.Millisecond, func() error {
		calls++
		return errors.New("still down")
	})
	if err == nil {
		t.Fatal("expected an error after the budget is spent")
	}
	if calls != 4 {
		t.Errorf("expected 4 attempts, got %d", calls)
	}
}

func TestDo_ReturnsNilOnSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 10, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestDo_HonorsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, 100, 10*time.Millisecond, func() error {
		calls++
		if calls == 2 {
			cancel()
		}
		return errors.New("still down")
	})
	if err == nil {
		t.Fatal("expected an error after cancellation")
	}
	if calls >= 100 {
		t.Errorf("cancellation should stop retries early, got %d attempts", calls)
	}
}

func TestDo_ZeroAttemptsStillRunsOnce(t *testing.T) {
	calls := 0
	_ = Do(context.Background(), 0, time.Millisecond, func() error {
		calls++
		return nil
	})
	if calls != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", calls)
	}
}
