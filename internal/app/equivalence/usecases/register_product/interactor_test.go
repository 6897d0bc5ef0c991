package register_product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
	"github.com/light-bringer/equiv-service/internal/pkg/clock"
	"github.com/light-bringer/equiv-service/tests/testutil"
)

func newInteractor(store *testutil.FakeStore, outbox *testutil.FakeOutbox) *Interactor {
	mockClock := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewInteractor(store.Clients(), store.Products(), outbox, mockClock)
}

func TestRegisterProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("registers product under resolved client", func(t *testing.T) {
		store := testutil.NewFakeStore()
		client := store.SeedClient("C001", "Client A")
		outbox := testutil.NewFakeOutbox()
		interactor := newInteractor(store, outbox)

		id, err := interactor.Execute(ctx, &Request{ClientCode: "C001", ProductName: "Widget"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)

		product, err := store.Products().GetByClientAndName(ctx, client.ID(), "Widget")
		require.NoError(t, err)
		assert.Equal(t, "Widget", product.Name())
	})

	t.Run("trims code and name before resolution", func(t *testing.T) {
		store := testutil.NewFakeStore()
		client := store.SeedClient("C001", "Client A")
		outbox := testutil.NewFakeOutbox()
		interactor := newInteractor(store, outbox)

		_, err := interactor.Execute(ctx, &Request{ClientCode: " C001 ", ProductName: " Widget "})
		require.NoError(t, err)

		_, err = store.Products().GetByClientAndName(ctx, client.ID(), "Widget")
		assert.NoError(t, err)
	})

	t.Run("rejects blank client code", func(t *testing.T) {
		store := testutil.NewFakeStore()
		outbox := testutil.NewFakeOutbox()
		interactor := newInteractor(store, outbox)

		_, err := interactor.Execute(ctx, &Request{ClientCode: "  ", ProductName: "Widget"})
		assert.ErrorIs(t, err, domain.ErrMissingClientCode)
	})

	t.Run("rejects blank product name", func(t *testing.T) {
		store := testutil.NewFakeStore()
		store.SeedClient("C001", "Client A")
		outbox := testutil.NewFakeOutbox()
		interactor := newInteractor(store, outbox)

		_, err := interactor.Execute(ctx, &Request{ClientCode: "C001", ProductName: "   "})
		assert.ErrorIs(t, err, domain.ErrMissingProductName)
	})

	t.Run("fails when client code does not resolve", func(t *testing.T) {
		store := testutil.NewFakeStore()
		outbox := testutil.NewFakeOutbox()
		interactor := newInteractor(store, outbox)

		_, err := interactor.Execute(ctx, &Request{ClientCode: "C999", ProductName: "Widget"})
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
		assert.Contains(t, err.Error(), "C999")
	})

	t.Run("permits duplicate name under one client", func(t *testing.T) {
		store := testutil.NewFakeStore()
		store.SeedClient("C001", "Client A")
		outbox := testutil.NewFakeOutbox()
		interactor := newInteractor(store, outbox)

		first, err := interactor.Execute(ctx, &Request{ClientCode: "C001", ProductName: "Widget"})
		require.NoError(t, err)

		second, err := interactor.Execute(ctx, &Request{ClientCode: "C001", ProductName: "Widget"})
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("records a registration event", func(t *testing.T) {
		store := testutil.NewFakeStore()
		store.SeedClient("C001", "Client A")
		outbox := testutil.NewFakeOutbox()
		interactor := newInteractor(store, outbox)

		_, err := interactor.Execute(ctx, &Request{ClientCode: "C001", ProductName: "Widget"})
		require.NoError(t, err)

		require.Len(t, outbox.Events, 1)
		assert.Equal(t, "product.registered", outbox.Events[0].EventType)
		assert.Equal(t, "1", outbox.Events[0].AggregateID)
	})

	t.Run("propagates insert failure", func(t *testing.T) {
		store := testutil.NewFakeStore()
		store.SeedClient("C001", "Client A")
		store.ProductInsertErr = domain.ErrNothingInserted
		outbox := testutil.NewFakeOutbox()
		interactor := newInteractor(store, outbox)

		_, err := interactor.Execute(ctx, &Request{ClientCode: "C001", ProductName: "Widget"})
		assert.ErrorIs(t, err, domain.ErrNothingInserted)
	})
}
