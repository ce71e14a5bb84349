package service

import "context"

// Persister writes the full dataset out after a successful mutation. The
// storage manager implements it; the write completes before the operation
// returns.
type Persister interface {
	Persist(ctx context.Context) error
}
