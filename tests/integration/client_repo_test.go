//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/repo"
	"github.com/light-bringer/equiv-service/internal/pkg/committer"
	"github.com/light-bringer/equiv-service/tests/testutil"
)

func TestClientRepo_Insert(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	comm := committer.NewCommitter(client)
	repository := repo.NewClientRepo(client, comm)

	newClient, err := domain.NewClient("C001", "Client A")
	require.NoError(t, err)

	id, err := repository.Insert(ctx, newClient, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	testutil.AssertRowCount(t, client, "clients", 1)

	// Ids are allocated sequentially
	second, err := domain.NewClient("C002", "Client B")
	require.NoError(t, err)

	id2, err := repository.Insert(ctx, second, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)
}

func TestClientRepo_GetByCode(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	comm := committer.NewCommitter(client)
	repository := repo.NewClientRepo(client, comm)

	testutil.CreateTestClient(t, client, 1, "C001", "Client A")

	t.Run("exact match resolves", func(t *testing.T) {
		found, err := repository.GetByCode(ctx, "C001")
		require.NoError(t, err)
		assert.Equal(t, int64(1), found.ID())
		assert.Equal(t, "Client A", found.Name())
	})

	t.Run("no case folding", func(t *testing.T) {
		_, err := repository.GetByCode(ctx, "c001")
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := repository.GetByCode(ctx, "C999")
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})
}

func TestClientRepo_GetByID(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	comm := committer.NewCommitter(client)
	repository := repo.NewClientRepo(client, comm)

	testutil.CreateTestClient(t, client, 7, "C007", "Client G")

	found, err := repository.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "C007", found.Code())

	_, err = repository.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}
