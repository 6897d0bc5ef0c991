package list_clients

import (
	"context"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
)

// Query handles the list clients query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list clients query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves all clients ordered by id.
func (q *Query) Execute(ctx context.Context) ([]*contracts.ClientDTO, error) {
	return q.readModel.ListClients(ctx)
}
