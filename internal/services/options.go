package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/find_candidates"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/list_clients"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/list_equivalents"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/list_products"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/repo"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/establish_equivalence"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/register_client"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/register_product"
	"github.com/light-bringer/equiv-service/internal/pkg/clock"
	"github.com/light-bringer/equiv-service/internal/pkg/committer"
	httphandler "github.com/light-bringer/equiv-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	APIHandler    *httphandler.Handler

	RegisterClient       *register_client.Interactor
	RegisterProduct      *register_product.Interactor
	EstablishEquivalence *establish_equivalence.Interactor
	ListEquivalents      *list_equivalents.Query
	FindCandidates       *find_candidates.Query
	ListClients          *list_clients.Query
	ListProducts         *list_products.Query
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories
	clientRepo := repo.NewClientRepo(spannerClient, comm)
	productRepo := repo.NewProductRepo(spannerClient, comm)
	equivalenceRepo := repo.NewEquivalenceRepo(spannerClient, comm)
	outboxRepo := repo.NewOutboxRepo(spannerClient)
	readModel := repo.NewReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	registerClientUseCase := register_client.NewInteractor(clientRepo, outboxRepo, clk)
	registerProductUseCase := register_product.NewInteractor(clientRepo, productRepo, outboxRepo, clk)
	establishEquivalenceUseCase := establish_equivalence.NewInteractor(clientRepo, productRepo, equivalenceRepo, outboxRepo, clk)

	// 5. Create query use cases (read operations)
	listEquivalentsQuery := list_equivalents.NewQuery(clientRepo, productRepo, readModel)
	findCandidatesQuery := find_candidates.NewQuery(clientRepo, productRepo, readModel)
	listClientsQuery := list_clients.NewQuery(readModel)
	listProductsQuery := list_products.NewQuery(clientRepo, readModel)

	// 6. Create the API handler
	apiHandler := httphandler.NewHandler(
		registerClientUseCase,
		registerProductUseCase,
		establishEquivalenceUseCase,
		listEquivalentsQuery,
		findCandidatesQuery,
		listClientsQuery,
		listProductsQuery,
	)

	return &ServiceOptions{
		SpannerClient:        spannerClient,
		APIHandler:           apiHandler,
		RegisterClient:       registerClientUseCase,
		RegisterProduct:      registerProductUseCase,
		EstablishEquivalence: establishEquivalenceUseCase,
		ListEquivalents:      listEquivalentsQuery,
		FindCandidates:       findCandidatesQuery,
		ListClients:          listClientsQuery,
		ListProducts:         listProductsQuery,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
