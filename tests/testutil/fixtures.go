package testutil

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/equiv-service/internal/models/m_client"
	"github.com/light-bringer/equiv-service/internal/models/m_equivalence"
	"github.com/light-bringer/equiv-service/internal/models/m_outbox"
	"github.com/light-bringer/equiv-service/internal/models/m_product"
)

// CreateTestClient creates a client row directly in the database.
func CreateTestClient(t *testing.T, client *spanner.Client, id int64, code, name string) int64 {
	t.Helper()

	ctx := context.Background()
	model := m_client.NewModel()

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(id, code, name)})
	require.NoError(t, err, "failed to create test client")

	return id
}

// CreateTestProduct creates a product row directly in the database.
func CreateTestProduct(t *testing.T, client *spanner.Client, id, clientID int64, name string) int64 {
	t.Helper()

	ctx := context.Background()
	model := m_product.NewModel()

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(id, clientID, name)})
	require.NoError(t, err, "failed to create test product")

	return id
}

// CreateTestEquivalence creates an equivalence row directly in the database.
// The pair must be pre-normalized (a < b) or the schema CHECK rejects it.
func CreateTestEquivalence(t *testing.T, client *spanner.Client, a, b int64) {
	t.Helper()

	ctx := context.Background()
	model := m_equivalence.NewModel()

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(a, b)})
	require.NoError(t, err, "failed to create test equivalence")
}

// CreateTestOutboxEvent creates a test outbox event.
func CreateTestOutboxEvent(t *testing.T, client *spanner.Client, eventType string, aggregateID string) string {
	t.Helper()

	ctx := context.Background()
	eventID := uuid.New().String()

	model := m_outbox.NewModel()
	data := &m_outbox.Data{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     spanner.NullJSON{Value: `{"test": "data"}`, Valid: true},
		Status:      m_outbox.StatusPending,
		RetryCount:  0,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test outbox event")

	return eventID
}

// AssertOutboxEvent verifies an outbox event exists with the given event type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}

// AssertOutboxEventCount verifies the count of outbox events.
func AssertOutboxEventCount(t *testing.T, client *spanner.Client, expectedCount int) {
	t.Helper()

	AssertRowCount(t, client, m_outbox.TableName, expectedCount)
}

// GetProductByID retrieves a product from the database for verification.
func GetProductByID(t *testing.T, client *spanner.Client, productID int64) *m_product.Data {
	t.Helper()

	ctx := context.Background()
	model := m_product.NewModel()

	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, model.Columns())
	require.NoError(t, err, "failed to get product by id")

	var data m_product.Data
	err = row.ToStruct(&data)
	require.NoError(t, err, "failed to parse product data")

	return &data
}
