package list_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/equiv-service/tests/testutil"
)

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("lists the whole catalog ordered by client then id", func(t *testing.T) {
		store := testutil.NewFakeStore()
		a := store.SeedClient("C001", "Client A")
		b := store.SeedClient("C002", "Client B")
		store.SeedProduct(b.ID(), "Widget")
		store.SeedProduct(a.ID(), "Gadget")
		store.SeedProduct(a.ID(), "Widget")

		query := NewQuery(store.Clients(), store.ReadModel())

		result, err := query.Execute(ctx, &Request{})
		require.NoError(t, err)

		require.Len(t, result, 3)
		assert.Equal(t, a.ID(), result[0].ClientID)
		assert.Equal(t, a.ID(), result[1].ClientID)
		assert.Equal(t, b.ID(), result[2].ClientID)
		assert.Less(t, result[0].ProductID, result[1].ProductID)
	})

	t.Run("filters by client code", func(t *testing.T) {
		store := testutil.NewFakeStore()
		a := store.SeedClient("C001", "Client A")
		b := store.SeedClient("C002", "Client B")
		store.SeedProduct(a.ID(), "Widget")
		store.SeedProduct(b.ID(), "Widget")

		query := NewQuery(store.Clients(), store.ReadModel())

		result, err := query.Execute(ctx, &Request{ClientCode: "C002"})
		require.NoError(t, err)

		require.Len(t, result, 1)
		assert.Equal(t, b.ID(), result[0].ClientID)
	})

	t.Run("unknown client code degrades to empty", func(t *testing.T) {
		store := testutil.NewFakeStore()
		a := store.SeedClient("C001", "Client A")
		store.SeedProduct(a.ID(), "Widget")

		query := NewQuery(store.Clients(), store.ReadModel())

		result, err := query.Execute(ctx, &Request{ClientCode: "C999"})
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
