package list_products

import (
	"context"
	"errors"
	"strings"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
)

// Request carries the optional client filter. A blank code lists the whole
// catalog.
type Request struct {
	ClientCode string
}

// Query handles the list products query use case.
type Query struct {
	clients   contracts.ClientRepository
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(clients contracts.ClientRepository, readModel contracts.ReadModel) *Query {
	return &Query{
		clients:   clients,
		readModel: readModel,
	}
}

// Execute lists products, optionally restricted to one client's catalog.
// An unresolvable client code degrades to an empty result, matching the
// other read paths.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDTO, error) {
	code := strings.TrimSpace(req.ClientCode)
	if code == "" {
		return q.readModel.ListProducts(ctx)
	}

	client, err := q.clients.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return q.readModel.ListProductsByClient(ctx, client.ID())
}
