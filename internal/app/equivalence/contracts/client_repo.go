package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
)

// EventMuts builds the outbox mutations for a freshly inserted row. The
// callback receives the id allocated inside the insert transaction, so the
// event and the row it describes always commit together.
type EventMuts func(id int64) []*spanner.Mutation

// ClientRepository defines the interface for client persistence.
type ClientRepository interface {
	// GetByCode resolves a client by its unique external code.
	// Exact match only; callers pass pre-trimmed input.
	// Returns domain.ErrClientNotFound when absent.
	GetByCode(ctx context.Context, code string) (*domain.Client, error)

	// GetByID resolves a client by id.
	// Returns domain.ErrClientNotFound when absent.
	GetByID(ctx context.Context, id int64) (*domain.Client, error)

	// Insert writes a new client and returns the assigned id. The events
	// callback, if non-nil, is invoked with that id and its mutations are
	// committed in the same transaction.
	// Returns domain.ErrNothingInserted when the write affects zero rows.
	Insert(ctx context.Context, client *domain.Client, events EventMuts) (int64, error)
}
