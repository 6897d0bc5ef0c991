package testutil

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
	"github.com/light-bringer/equiv-service/internal/models/m_outbox"
)

// FakeStore is an in-memory implementation of the persistence contracts
// (ClientRepository, ProductRepository, EquivalenceRepository, ReadModel)
// for use case and transport tests. It mirrors the store semantics: ids
// allocated sequentially, exact-match lookups, direct-order-only pair
// existence checks.
//
// Not safe for concurrent use; tests drive it from one goroutine.
type FakeStore struct {
	clients  []*domain.Client
	products []*domain.Product
	pairs    map[[2]int64]bool

	nextClientID  int64
	nextProductID int64

	// Injectable failures
	ClientInsertErr      error
	ProductInsertErr     error
	EquivalenceInsertErr error

	// BufferedMuts collects every event mutation passed to an insert, in
	// call order.
	BufferedMuts []*spanner.Mutation
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		pairs:         make(map[[2]int64]bool),
		nextClientID:  1,
		nextProductID: 1,
	}
}

// SeedClient inserts a client directly, bypassing validation.
func (f *FakeStore) SeedClient(code, name string) *domain.Client {
	id := f.nextClientID
	f.nextClientID++

	client := domain.ReconstructClient(id, code, name, time.Now())
	f.clients = append(f.clients, client)
	return client
}

// SeedProduct inserts a product directly, bypassing validation.
func (f *FakeStore) SeedProduct(clientID int64, name string) *domain.Product {
	id := f.nextProductID
	f.nextProductID++

	product := domain.ReconstructProduct(id, clientID, name, time.Now())
	f.products = append(f.products, product)
	return product
}

// SeedPair records an equivalence pair as given (no normalization).
func (f *FakeStore) SeedPair(a, b int64) {
	f.pairs[[2]int64{a, b}] = true
}

// Pairs returns a copy of the recorded pairs.
func (f *FakeStore) Pairs() [][2]int64 {
	var out [][2]int64
	for pair := range f.pairs {
		out = append(out, pair)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// --- ClientRepository ---

func (f *FakeStore) GetByCode(ctx context.Context, code string) (*domain.Client, error) {
	for _, c := range f.clients {
		if c.Code() == code {
			return c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (f *FakeStore) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	for _, c := range f.clients {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (f *FakeStore) Insert(ctx context.Context, client *domain.Client, events contracts.EventMuts) (int64, error) {
	if f.ClientInsertErr != nil {
		return 0, f.ClientInsertErr
	}

	id := f.nextClientID
	f.nextClientID++

	f.clients = append(f.clients, domain.ReconstructClient(id, client.Code(), client.Name(), time.Now()))
	if events != nil {
		f.BufferedMuts = append(f.BufferedMuts, events(id)...)
	}
	return id, nil
}

// --- ProductRepository ---

func (f *FakeStore) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (f *FakeStore) GetByClientAndName(ctx context.Context, clientID int64, name string) (*domain.Product, error) {
	// Products are held in id order, so the first match wins like the
	// LIMIT 1 scan does.
	for _, p := range f.products {
		if p.ClientID() == clientID && p.Name() == name {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (f *FakeStore) InsertProduct(ctx context.Context, product *domain.Product, events contracts.EventMuts) (int64, error) {
	if f.ProductInsertErr != nil {
		return 0, f.ProductInsertErr
	}

	id := f.nextProductID
	f.nextProductID++

	f.products = append(f.products, domain.ReconstructProduct(id, product.ClientID(), product.Name(), time.Now()))
	if events != nil {
		f.BufferedMuts = append(f.BufferedMuts, events(id)...)
	}
	return id, nil
}

// --- EquivalenceRepository ---

func (f *FakeStore) Exists(ctx context.Context, a, b int64) (bool, error) {
	// Direct order only, matching the store contract.
	return f.pairs[[2]int64{a, b}], nil
}

func (f *FakeStore) InsertPair(ctx context.Context, a, b int64, events []*spanner.Mutation) error {
	if f.EquivalenceInsertErr != nil {
		return f.EquivalenceInsertErr
	}

	f.pairs[[2]int64{a, b}] = true
	f.BufferedMuts = append(f.BufferedMuts, events...)
	return nil
}

// --- ReadModel ---

func (f *FakeStore) ListClients(ctx context.Context) ([]*contracts.ClientDTO, error) {
	var out []*contracts.ClientDTO
	for _, c := range f.clients {
		out = append(out, &contracts.ClientDTO{
			ClientID:  c.ID(),
			Code:      c.Code(),
			Name:      c.Name(),
			CreatedAt: c.CreatedAt(),
		})
	}
	return out, nil
}

func (f *FakeStore) ListProducts(ctx context.Context) ([]*contracts.ProductDTO, error) {
	out := f.productDTOs(func(p *domain.Product) bool { return true })
	sort.Slice(out, func(i, j int) bool {
		if out[i].ClientID != out[j].ClientID {
			return out[i].ClientID < out[j].ClientID
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out, nil
}

func (f *FakeStore) ListProductsByClient(ctx context.Context, clientID int64) ([]*contracts.ProductDTO, error) {
	return f.productDTOs(func(p *domain.Product) bool { return p.ClientID() == clientID }), nil
}

func (f *FakeStore) ListEquivalents(ctx context.Context, productID int64) ([]*contracts.ProductDTO, error) {
	others := make(map[int64]bool)
	for pair := range f.pairs {
		if pair[0] == productID {
			others[pair[1]] = true
		}
		if pair[1] == productID {
			others[pair[0]] = true
		}
	}

	out := f.productDTOs(func(p *domain.Product) bool { return others[p.ID()] })
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (f *FakeStore) FindCandidates(ctx context.Context, clientID int64, name string) ([]*contracts.ProductDTO, error) {
	out := f.productDTOs(func(p *domain.Product) bool {
		return p.Name() == name && p.ClientID() != clientID
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].ClientID != out[j].ClientID {
			return out[i].ClientID < out[j].ClientID
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out, nil
}

func (f *FakeStore) productDTOs(keep func(*domain.Product) bool) []*contracts.ProductDTO {
	var out []*contracts.ProductDTO
	for _, p := range f.products {
		if keep(p) {
			out = append(out, &contracts.ProductDTO{
				ProductID: p.ID(),
				ClientID:  p.ClientID(),
				Name:      p.Name(),
				CreatedAt: p.CreatedAt(),
			})
		}
	}
	return out
}

// clientRepoView, productRepoView and equivalenceRepoView adapt FakeStore to
// the repository interfaces, resolving the Insert name collisions.
type clientRepoView struct{ *FakeStore }

func (v clientRepoView) Insert(ctx context.Context, client *domain.Client, events contracts.EventMuts) (int64, error) {
	return v.FakeStore.Insert(ctx, client, events)
}

type productRepoView struct{ *FakeStore }

func (v productRepoView) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return v.FakeStore.GetProductByID(ctx, id)
}

func (v productRepoView) Insert(ctx context.Context, product *domain.Product, events contracts.EventMuts) (int64, error) {
	return v.FakeStore.InsertProduct(ctx, product, events)
}

type equivalenceRepoView struct{ *FakeStore }

func (v equivalenceRepoView) Insert(ctx context.Context, a, b int64, events []*spanner.Mutation) error {
	return v.FakeStore.InsertPair(ctx, a, b, events)
}

// Clients exposes the store as a ClientRepository.
func (f *FakeStore) Clients() contracts.ClientRepository { return clientRepoView{f} }

// Products exposes the store as a ProductRepository.
func (f *FakeStore) Products() contracts.ProductRepository { return productRepoView{f} }

// Equivalences exposes the store as an EquivalenceRepository.
func (f *FakeStore) Equivalences() contracts.EquivalenceRepository { return equivalenceRepoView{f} }

// ReadModel exposes the store as a ReadModel.
func (f *FakeStore) ReadModel() contracts.ReadModel { return f }

// FakeOutbox is an in-memory OutboxRepository that records every enriched
// event while still producing real mutations.
type FakeOutbox struct {
	model  *m_outbox.Model
	Events []*contracts.OutboxEvent
}

// NewFakeOutbox creates an empty FakeOutbox.
func NewFakeOutbox() *FakeOutbox {
	return &FakeOutbox{model: m_outbox.NewModel()}
}

func (f *FakeOutbox) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}

func (f *FakeOutbox) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	f.Events = append(f.Events, event)

	return f.model.InsertMut(&m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     spanner.NullJSON{Value: event.Payload, Valid: event.Payload != ""},
		Status:      event.Status,
	})
}
