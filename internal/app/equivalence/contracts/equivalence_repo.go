package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
)

// EquivalenceRepository defines the interface for the undirected,
// deduplicated relation between product ids.
//
// Precondition on every method taking a pair: the caller passes the pair
// already normalized (a < b). The store performs direct-order lookups only
// and never checks the swapped order; normalization is the service's
// responsibility, enforced once. See domain.NormalizePair.
type EquivalenceRepository interface {
	// Exists reports whether the pair (a, b) is already recorded.
	Exists(ctx context.Context, a, b int64) (bool, error)

	// Insert writes the pair (a, b) as given, together with any event
	// mutations, in one transaction.
	// Returns domain.ErrNothingInserted when the write affects zero rows.
	Insert(ctx context.Context, a, b int64, events []*spanner.Mutation) error
}
