package m_equivalence

import "time"

// Data represents the database model for the equivalences table.
type Data struct {
	ProductIDA int64     `spanner:"product_id_a"`
	ProductIDB int64     `spanner:"product_id_b"`
	CreatedAt  time.Time `spanner:"created_at"`
}
