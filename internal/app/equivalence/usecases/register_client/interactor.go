package register_client

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
	"github.com/light-bringer/equiv-service/internal/pkg/clock"
)

// Request contains the data needed to register a client.
type Request struct {
	Code string
	Name string
}

// Interactor handles the register client use case.
type Interactor struct {
	clients    contracts.ClientRepository
	outboxRepo contracts.OutboxRepository
	clock      clock.Clock
}

// NewInteractor creates a new register client interactor.
func NewInteractor(
	clients contracts.ClientRepository,
	outboxRepo contracts.OutboxRepository,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		clients:    clients,
		outboxRepo: outboxRepo,
		clock:      clock,
	}
}

// Execute registers a new client and returns its assigned id. No duplicate
// check is performed on the code; avoiding duplicate codes is the caller's
// responsibility.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int64, error) {
	client, err := domain.NewClient(req.Code, req.Name)
	if err != nil {
		return 0, err
	}

	return i.clients.Insert(ctx, client, i.eventMuts(client))
}

// eventMuts builds the outbox mutations for the registration event once the
// client id has been allocated inside the insert transaction.
func (i *Interactor) eventMuts(client *domain.Client) contracts.EventMuts {
	return func(id int64) []*spanner.Mutation {
		event := &domain.ClientRegisteredEvent{
			ClientID:     id,
			Code:         client.Code(),
			Name:         client.Name(),
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
