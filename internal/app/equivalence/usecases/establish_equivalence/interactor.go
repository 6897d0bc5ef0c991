package establish_equivalence

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

// Request identifies the two products to link, each by owning client code
// and exact product name.
type Request struct {
	ClientCodeA  string
	ProductNameA string
	ClientCodeB  string
	ProductNameB string
}

// Result reports the outcome of establishing an equivalence. The pair is
// returned in canonical orientation (ProductIDA < ProductIDB) regardless of
// the order the products were supplied in. AlreadyExists marks the
// idempotent outcome: the pair was recorded by an earlier call and no row
// was written.
type Result struct {
	ProductIDA    int64
	ProductIDB    int64
	AlreadyExists bool
}

// Interactor handles the establish equivalence use case. It is the sole
// writer of the equivalences table; its min/max normalization is the entire
// mechanism preventing duplicate inverse pairs.
type Interactor struct {
	clients      contracts.ClientRepository
	products     contracts.ProductRepository
	equivalences contracts.EquivalenceRepository
	outboxRepo   contracts.OutboxRepository
	clock        clock.Clock
}

// NewInteractor creates a new establish equivalence interactor.
func NewInteractor(
	clients contracts.ClientRepository,
	products contracts.ProductRepository,
	equivalences contracts.EquivalenceRepository,
	outboxRepo contracts.OutboxRepository,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		clients:      clients,
		products:     products,
		equivalences: equivalences,
		outboxRepo:   outboxRepo,
		clock:        clock,
	}
}

// Execute establishes an equivalence between two products of different
// clients. Side A is resolved before side B, so when both sides fail the
// error names side A.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	codeA := strings.TrimSpace(req.ClientCodeA)
	nameA := strings.TrimSpace(req.ProductNameA)
	codeB := strings.TrimSpace(req.ClientCodeB)
	nameB := strings.TrimSpace(req.ProductNameB)

	if codeA == "" || codeB == "" {
		return nil, domain.ErrMissingClientCode
	}
	if nameA == "" || nameB == "" {
		return nil, domain.ErrMissingProductName
	}

	clientA, err := i.clients.GetByCode(ctx, codeA)
	if err != nil {
		return nil, fmt.Errorf("client A %q: %w", codeA, err)
	}

	clientB, err := i.clients.GetByCode(ctx, codeB)
	if err != nil {
		return nil, fmt.Errorf("client B %q: %w", codeB, err)
	}

	if clientA.ID() == clientB.ID() {
		return nil, domain.ErrSameClient
	}

	productA, err := i.products.GetByClientAndName(ctx, clientA.ID(), nameA)
	if err != nil {
		return nil, fmt.Errorf("product A %q: %w", nameA, err)
	}

	productB, err := i.products.GetByClientAndName(ctx, clientB.ID(), nameB)
	if err != nil {
		return nil, fmt.Errorf("product B %q: %w", nameB, err)
	}

	lo, hi := domain.NormalizePair(productA.ID(), productB.ID())

	found, err := i.equivalences.Exists(ctx, lo, hi)
	if err != nil {
		return nil, err
	}
	if found {
		return &Result{ProductIDA: lo, ProductIDB: hi, AlreadyExists: true}, nil
	}

	if err := i.equivalences.Insert(ctx, lo, hi, i.eventMuts(lo, hi)); err != nil {
		return nil, err
	}

	return &Result{ProductIDA: lo, ProductIDB: hi}, nil
}

// eventMuts builds the outbox mutations recorded in the same transaction as
// the equivalence row.
func (i *Interactor) eventMuts(lo, hi int64) []*spanner.Mutation {
	event := &domain.EquivalenceEstablishedEvent{
		ProductIDA:    lo,
		ProductIDB:    hi,
		EstablishedAt: i.clock.Now(),
	}

	outboxEvent := i.outboxRepo.EnrichEvent(event, serializeEvent(event))
	return []*spanner.Mutation{i.outboxRepo.InsertMut(outboxEvent)}
}

// serializeEvent converts a domain event to its JSON payload. The events are
// plain value structs, so marshalling cannot fail.
func serializeEvent(event domain.DomainEvent) string {
	data, _ := json.Marshal(event)
	return string(data)
}
