package m_product

import "time"

// Data represents the database model for the products table.
type Data struct {
	ProductID int64     `spanner:"product_id"`
	ClientID  int64     `spanner:"client_id"`
	Name      string    `spanner:"name"`
	CreatedAt time.Time `spanner:"created_at"`
}
