package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID = "product_id"
	ClientID  = "client_id"
	Name      = "name"
	CreatedAt = "created_at"
)
