package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wellnecity/edm/internal/errs"
)

func testPolicy(attempts uint) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, MaxElapsed: 10 * time.Second}
}

func transientTxnError() error {
	return mongo.CommandError{
		Code:    251,
		Message: "transaction aborted",
		Labels:  []string{"TransientTransactionError"},
	}
}

func TestRetryStopsOnNonRetryableDomainError(t *testing.T) {
	calls := 0
	structural := errs.Structural("coverage", "status", "enum", "unknown status")
	err := withRetry(context.Background(), testPolicy(4), "coverage", func() error {
		calls++
		return structural
	})
	if calls != 1 {
		t.Fatalf("structural violation retried: %d attempts", calls)
	}
	var de *errs.Error
	if !errors.As(err, &de) || de.Kind != errs.KindStructural {
		t.Fatalf("expected the structural violation back, got %v", err)
	}
}

func TestRetryRepeatsRetryableDomainError(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), testPolicy(2), "accumulator", func() error {
		calls++
		return errs.Conflict("accumulator", "event applied concurrently")
	})
	if calls != 2 {
		t.Fatalf("expected the full retry budget, got %d attempts", calls)
	}
	if errs.KindOf(err) != errs.KindConflict {
		t.Fatalf("expected a conflict after exhaustion, got %v", err)
	}
}

func TestRetryRecoversFromTransientTransactionError(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), testPolicy(4), "plan_member", func() error {
		calls++
		if calls == 1 {
			return transientTxnError()
		}
		return nil
	})
	if err != nil {
		t.Fatalf("recovered attempt must succeed, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected one retry, got %d attempts", calls)
	}
}

func TestRetryTransientExhaustionBecomesConflict(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), testPolicy(2), "plan_member", func() error {
		calls++
		return transientTxnError()
	})
	if calls != 2 {
		t.Fatalf("expected the full retry budget, got %d attempts", calls)
	}
	var de *errs.Error
	if !errors.As(err, &de) || de.Kind != errs.KindConflict || de.Collection != "plan_member" {
		t.Fatalf("expected a ConcurrencyConflict on the scope, got %v", err)
	}
}

func TestRetryUnknownErrorIsPermanentUnavailable(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), testPolicy(4), "org", func() error {
		calls++
		return errors.New("socket closed")
	})
	if calls != 1 {
		t.Fatalf("unknown error retried: %d attempts", calls)
	}
	if errs.KindOf(err) != errs.KindUnavailable {
		t.Fatalf("expected StoreUnavailable, got %v", err)
	}
}
