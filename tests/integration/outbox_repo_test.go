//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/repo"
	"github.com/light-bringer/equiv-service/internal/models/m_outbox"
	"github.com/light-bringer/equiv-service/tests/testutil"
)

func TestOutboxRepo_EnrichEvent(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	repository := repo.NewOutboxRepo(client)

	event := &domain.EquivalenceEstablishedEvent{
		ProductIDA:    1,
		ProductIDB:    2,
		EstablishedAt: time.Now(),
	}

	enriched := repository.EnrichEvent(event, `{"pair":"1:2"}`)

	assert.Equal(t, "equivalence.established", enriched.EventType)
	assert.Equal(t, "1:2", enriched.AggregateID)
	assert.Equal(t, m_outbox.StatusPending, enriched.Status)

	// Event ids are valid UUIDs
	_, err := uuid.Parse(enriched.EventID)
	assert.NoError(t, err)
}

func TestOutboxRepo_InsertMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewOutboxRepo(client)

	event := &domain.ClientRegisteredEvent{
		ClientID:     1,
		Code:         "C001",
		Name:         "Client A",
		RegisteredAt: time.Now(),
	}
	enriched := repository.EnrichEvent(event, `{"client_id":1}`)

	_, err := client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(enriched)})
	require.NoError(t, err)

	testutil.AssertOutboxEvent(t, client, "client.registered")
	testutil.AssertOutboxEventCount(t, client, 1)
}
