package contracts

import (
	"context"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
)

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	// GetByID resolves a product by id.
	// Returns domain.ErrProductNotFound when absent.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// GetByClientAndName resolves a product by owning client and exact name.
	// If duplicate (client, name) rows exist the first by id is returned.
	// Returns domain.ErrProductNotFound when absent.
	GetByClientAndName(ctx context.Context, clientID int64, name string) (*domain.Product, error)

	// Insert writes a new product and returns the assigned id. No duplicate
	// (client, name) check is performed; registering the same pair twice
	// produces two rows. The events callback, if non-nil, is invoked with
	// the new id and its mutations are committed in the same transaction.
	// Returns domain.ErrNothingInserted when the write affects zero rows.
	Insert(ctx context.Context, product *domain.Product, events EventMuts) (int64, error)
}
