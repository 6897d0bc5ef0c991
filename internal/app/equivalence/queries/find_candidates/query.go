package find_candidates

import (
	"context"
	"errors"
	"strings"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
)

// Request identifies the product to find candidates for.
type Request struct {
	ClientCode  string
	ProductName string
}

// Query handles the find candidates query use case.
type Query struct {
	clients   contracts.ClientRepository
	products  contracts.ProductRepository
	readModel contracts.ReadModel
}

// NewQuery creates a new find candidates query.
func NewQuery(
	clients contracts.ClientRepository,
	products contracts.ProductRepository,
	readModel contracts.ReadModel,
) *Query {
	return &Query{
		clients:   clients,
		products:  products,
		readModel: readModel,
	}
}

// Execute returns unconfirmed same-name matches in other clients' catalogs.
// The scan matches the resolved product's stored name and never consults
// the equivalences table, so already-linked products still appear. Any
// resolution failure degrades to an empty result; storage errors propagate.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDTO, error) {
	code := strings.TrimSpace(req.ClientCode)
	name := strings.TrimSpace(req.ProductName)
	if code == "" || name == "" {
		return nil, nil
	}

	client, err := q.clients.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, nil
		}
		return nil, err
	}

	product, err := q.products.GetByClientAndName(ctx, client.ID(), name)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return q.readModel.FindCandidates(ctx, client.ID(), product.Name())
}
