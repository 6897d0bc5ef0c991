package contracts

import (
	"context"
	"time"
)

// ClientDTO is a data transfer object for client listings.
type ClientDTO struct {
	ClientID  int64
	Code      string
	Name      string
	CreatedAt time.Time
}

// ProductDTO is a data transfer object for product listings, candidate
// discovery and equivalent retrieval.
type ProductDTO struct {
	ProductID int64
	ClientID  int64
	Name      string
	CreatedAt time.Time
}

// ReadModel defines the interface for listing and discovery queries.
// Read models bypass the domain layer and return DTOs directly.
type ReadModel interface {
	// ListClients returns all clients ordered by id ascending.
	ListClients(ctx context.Context) ([]*ClientDTO, error)

	// ListProducts returns all products ordered by (client_id, product_id).
	ListProducts(ctx context.Context) ([]*ProductDTO, error)

	// ListProductsByClient returns one client's products ordered by id.
	ListProductsByClient(ctx context.Context, clientID int64) ([]*ProductDTO, error)

	// ListEquivalents returns every product recorded as equivalent to the
	// given product, matching either orientation of the stored pair.
	ListEquivalents(ctx context.Context, productID int64) ([]*ProductDTO, error)

	// FindCandidates returns every product with exactly the given name owned
	// by a different client, ordered by (client_id, product_id). It is a pure
	// name scan: pairs that already have a confirmed equivalence are not
	// filtered out.
	FindCandidates(ctx context.Context, clientID int64, name string) ([]*ProductDTO, error)
}
