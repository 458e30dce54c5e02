package db

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Transactor runs a function inside one atomic invariant scope. Services
// depend on this interface so in-memory stores can run the same logic
// without a server.
type Transactor interface {
	InTransaction(ctx context.Context, scope string, fn func(ctx context.Context) error) error
}

type mongoTransactor struct {
	client *mongo.Client
	policy RetryPolicy
}

func NewTransactor(client *mongo.Client, policy RetryPolicy) Transactor {
	return &mongoTransactor{client: client, policy: policy}
}

func (t *mongoTransactor) InTransaction(ctx context.Context, scope string, fn func(ctx context.Context) error) error {
	return InTransaction(ctx, t.client, t.policy, scope, fn)
}

// NopTransactor runs fn directly. In-memory repositories are synchronized
// internally, so tests get the same call shape with no session machinery.
type NopTransactor struct{}

func (NopTransactor) InTransaction(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// SerialTransactor runs each fn under a process-local lock. In-memory
// stores synchronize individual operations but not read-then-write
// sequences; this gives them the isolation a server-side transaction
// provides, so concurrent invariant writers serialize instead of
// interleaving.
type SerialTransactor struct {
	mu sync.Mutex
}

func (t *SerialTransactor) InTransaction(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}
