package m_client

// Field name constants for the clients table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "clients"

	ClientID  = "client_id"
	Code      = "code"
	Name      = "name"
	CreatedAt = "created_at"
)
