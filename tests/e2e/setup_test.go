//go:build e2e

package e2e

import (
	"testing"

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
	"github.com/light-bringer/equiv-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	RegisterClient       *register_client.Interactor
	RegisterProduct      *register_product.Interactor
	EstablishEquivalence *establish_equivalence.Interactor

	// Queries
	ListEquivalents *list_equivalents.Query
	FindCandidates  *find_candidates.Query
	ListClients     *list_clients.Query
	ListProducts    *list_products.Query
}

// setupServices wires the full dependency graph against the emulator.
func setupServices(t *testing.T) (*Services, *spanner.Client, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)

	clientRepo := repo.NewClientRepo(client, comm)
	productRepo := repo.NewProductRepo(client, comm)
	equivalenceRepo := repo.NewEquivalenceRepo(client, comm)
	outboxRepo := repo.NewOutboxRepo(client)
	readModel := repo.NewReadModel(client)

	services := &Services{
		RegisterClient:       register_client.NewInteractor(clientRepo, outboxRepo, clk),
		RegisterProduct:      register_product.NewInteractor(clientRepo, productRepo, outboxRepo, clk),
		EstablishEquivalence: establish_equivalence.NewInteractor(clientRepo, productRepo, equivalenceRepo, outboxRepo, clk),
		ListEquivalents:      list_equivalents.NewQuery(clientRepo, productRepo, readModel),
		FindCandidates:       find_candidates.NewQuery(clientRepo, productRepo, readModel),
		ListClients:          list_clients.NewQuery(readModel),
		ListProducts:         list_products.NewQuery(clientRepo, readModel),
	}

	return services, client, cleanup
}
