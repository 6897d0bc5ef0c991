package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// nextID allocates the next synthetic id for a table by reading the current
// maximum inside the caller's read-write transaction. The read and the
// subsequent insert share the transaction, so the allocation stays correct
// under Spanner's serializable isolation even with concurrent writers.
func nextID(ctx context.Context, txn *spanner.ReadWriteTransaction, table, column string) (int64, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s", column, table),
	}

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id for %s: %w", table, err)
	}

	var id int64
	if err := row.Columns(&id); err != nil {
		return 0, fmt.Errorf("failed to parse allocated id: %w", err)
	}

	return id, nil
}
