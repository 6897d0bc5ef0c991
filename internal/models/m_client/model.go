package m_client

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the clients table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertDML builds the DML statement for inserting a client with a known id.
// The row count of the executed statement tells the caller whether anything
// was written.
func (m *Model) InsertDML(id int64, code, name string) spanner.Statement {
	return spanner.Statement{
		SQL: "INSERT INTO " + TableName + " (" +
			ClientID + ", " + Code + ", " + Name + ", " + CreatedAt +
			") VALUES (@id, @code, @name, PENDING_COMMIT_TIMESTAMP())",
		Params: map[string]interface{}{
			"id":   id,
			"code": code,
			"name": name,
		},
	}
}

// InsertMut creates a Spanner mutation for inserting a client row with an
// explicit commit timestamp column.
func (m *Model) InsertMut(id int64, code, name string) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{ClientID, Code, Name, CreatedAt},
		[]interface{}{id, code, name, spanner.CommitTimestamp},
	)
}

// Columns returns the full column list in Data field order.
func (m *Model) Columns() []string {
	return []string{ClientID, Code, Name, CreatedAt}
}

// DeleteMut creates a Spanner mutation for deleting a client (hard delete).
func (m *Model) DeleteMut(id int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{id})
}
