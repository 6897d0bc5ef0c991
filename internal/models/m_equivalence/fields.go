package m_equivalence

// Field name constants for the equivalences table.
//
// The pair is stored in canonical orientation: ProductIDA always holds the
// smaller id. The schema enforces this with a CHECK constraint.
const (
	TableName = "equivalences"

	ProductIDA = "product_id_a"
	ProductIDB = "product_id_b"
	CreatedAt  = "created_at"
)
