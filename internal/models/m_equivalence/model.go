package m_equivalence

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the equivalences table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertDML builds the DML statement for inserting an equivalence pair.
// Callers must pass the pair pre-normalized (a < b); the CHECK constraint
// rejects anything else.
func (m *Model) InsertDML(a, b int64) spanner.Statement {
	return spanner.Statement{
		SQL: "INSERT INTO " + TableName + " (" +
			ProductIDA + ", " + ProductIDB + ", " + CreatedAt +
			") VALUES (@a, @b, PENDING_COMMIT_TIMESTAMP())",
		Params: map[string]interface{}{
			"a": a,
			"b": b,
		},
	}
}

// InsertMut creates a Spanner mutation for inserting a pre-normalized pair
// with an explicit commit timestamp column.
func (m *Model) InsertMut(a, b int64) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{ProductIDA, ProductIDB, CreatedAt},
		[]interface{}{a, b, spanner.CommitTimestamp},
	)
}

// DeleteMut creates a Spanner mutation for deleting an equivalence pair.
func (m *Model) DeleteMut(a, b int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{a, b})
}
