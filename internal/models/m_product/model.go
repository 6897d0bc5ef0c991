package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertDML builds the DML statement for inserting a product with a known id.
// The row count of the executed statement tells the caller whether anything
// was written.
func (m *Model) InsertDML(id, clientID int64, name string) spanner.Statement {
	return spanner.Statement{
		SQL: "INSERT INTO " + TableName + " (" +
			ProductID + ", " + ClientID + ", " + Name + ", " + CreatedAt +
			") VALUES (@id, @clientId, @name, PENDING_COMMIT_TIMESTAMP())",
		Params: map[string]interface{}{
			"id":       id,
			"clientId": clientID,
			"name":     name,
		},
	}
}

// InsertMut creates a Spanner mutation for inserting a product row with an
// explicit commit timestamp column.
func (m *Model) InsertMut(id, clientID int64, name string) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{ProductID, ClientID, Name, CreatedAt},
		[]interface{}{id, clientID, name, spanner.CommitTimestamp},
	)
}

// Columns returns the full column list in Data field order.
func (m *Model) Columns() []string {
	return []string{ProductID, ClientID, Name, CreatedAt}
}

// DeleteMut creates a Spanner mutation for deleting a product (hard delete).
func (m *Model) DeleteMut(id int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{id})
}
