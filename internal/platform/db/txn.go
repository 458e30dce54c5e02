package db

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wellnecity/edm/internal/errs"
)

// RetryPolicy bounds how long a transient transaction failure is retried
// before it surfaces as a ConcurrencyConflict.
type RetryPolicy struct {
	MaxAttempts uint
	MaxElapsed  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 4, MaxElapsed: 5 * time.Second}
}

// InTransaction runs fn inside a multi-document transaction. Transient
// transaction errors and unknown commit results are retried per policy;
// once the budget is spent the caller gets a ConcurrencyConflict. Domain
// errors returned by fn abort the transaction and pass through unchanged.
func InTransaction(ctx context.Context, client *mongo.Client, policy RetryPolicy, scope string, fn func(ctx context.Context) error) error {
	return withRetry(ctx, policy, scope, func() error {
		sess, err := client.StartSession()
		if err != nil {
			return errs.Unavailable(err)
		}
		defer sess.EndSession(ctx)

		_, err = sess.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
			return nil, fn(ctx)
		})
		return err
	})
}

// withRetry classifies each attempt's outcome: retryable domain errors and
// transient transaction errors retry with backoff, everything else is
// permanent. Unrecognized errors surface as Unavailable.
func withRetry(ctx context.Context, policy RetryPolicy, scope string, attempt func() error) error {
	op := func() (struct{}, error) {
		err := attempt()
		if err == nil {
			return struct{}{}, nil
		}

		var de *errs.Error
		if errors.As(err, &de) {
			if !errs.Retryable(de) {
				return struct{}{}, backoff.Permanent(err)
			}
			log.Debug().Err(err).Str("scope", scope).Msg("retryable domain error, retrying")
			return struct{}{}, err
		}
		if isTransientTxn(err) {
			log.Debug().Err(err).Str("scope", scope).Msg("transient transaction error, retrying")
			return struct{}{}, err
		}
		return struct{}{}, backoff.Permanent(errs.Unavailable(err))
	}

	_, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(policy.MaxAttempts),
		backoff.WithMaxElapsedTime(policy.MaxElapsed),
	)
	if err == nil {
		return nil
	}
	if isTransientTxn(err) {
		return errs.Conflict(scope, "transaction aborted by concurrent writer after %d attempts", policy.MaxAttempts)
	}
	return err
}

func isTransientTxn(err error) bool {
	var se mongo.ServerError
	if !errors.As(err, &se) {
		return false
	}
	return se.HasErrorLabel("TransientTransactionError") ||
		se.HasErrorLabel("UnknownTransactionCommitResult")
}
