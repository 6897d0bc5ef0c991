package register_product

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
	"github.com/light-bringer/equiv-service/internal/pkg/clock"
)

// Request contains the data needed to register a product.
type Request struct {
	ClientCode  string
	ProductName string
}

// Interactor handles the register product use case.
type Interactor struct {
	clients    contracts.ClientRepository
	products   contracts.ProductRepository
	outboxRepo contracts.OutboxRepository
	clock      clock.Clock
}

// NewInteractor creates a new register product interactor.
func NewInteractor(
	clients contracts.ClientRepository,
	products contracts.ProductRepository,
	outboxRepo contracts.OutboxRepository,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		clients:    clients,
		products:   products,
		outboxRepo: outboxRepo,
		clock:      clock,
	}
}

// Execute registers a product under the client identified by code and
// returns the assigned product id. No duplicate-name check is performed:
// registering the same (client, name) twice produces two independent rows.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int64, error) {
	code := strings.TrimSpace(req.ClientCode)
	if code == "" {
		return 0, domain.ErrMissingClientCode
	}
	if strings.TrimSpace(req.ProductName) == "" {
		return 0, domain.ErrMissingProductName
	}

	client, err := i.clients.GetByCode(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("client %q: %w", code, err)
	}

	product, err := domain.NewProduct(client.ID(), req.ProductName)
	if err != nil {
		return 0, err
	}

	return i.products.Insert(ctx, product, i.eventMuts(product))
}

// eventMuts builds the outbox mutations for the registration event once the
// product id has been allocated inside the insert transaction.
func (i *Interactor) eventMuts(product *domain.Product) contracts.EventMuts {
	return func(id int64) []*spanner.Mutation {
		event := &domain.ProductRegisteredEvent{
			ProductID:    id,
			ClientID:     product.ClientID(),
			Name:         product.Name(),
			RegisteredAt: i.clock.Now(),
		}

		outboxEvent := i.outboxRepo.EnrichEvent(event, serializeEvent(event))
		return []*spanner.Mutation{i.outboxRepo.InsertMut(outboxEvent)}
	}
}

// serializeEvent converts a domain event to its JSON payload. The events are
// plain value structs, so marshalling cannot fail.
func serializeEvent(event domain.DomainEvent) string {
	data, _ := json.Marshal(event)
	return string(data)
}
