package list_clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/equiv-service/tests/testutil"
)

func TestListClients(t *testing.T) {
	ctx := context.Background()

	t.Run("returns clients ordered by id", func(t *testing.T) {
		store := testutil.NewFakeStore()
		store.SeedClient("C002", "Client B")
		store.SeedClient("C001", "Client A")

		query := NewQuery(store.ReadModel())

		result, err := query.Execute(ctx)
		require.NoError(t, err)

		require.Len(t, result, 2)
		assert.Equal(t, "C002", result[0].Code)
		assert.Equal(t, "C001", result[1].Code)
		assert.Less(t, result[0].ClientID, result[1].ClientID)
	})

	t.Run("returns empty for empty directory", func(t *testing.T) {
		store := testutil.NewFakeStore()
		query := NewQuery(store.ReadModel())

		result, err := query.Execute(ctx)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
