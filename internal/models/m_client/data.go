package m_client

import "time"

// Data represents the database model for the clients table.
type Data struct {
	ClientID  int64     `spanner:"client_id"`
	Code      string    `spanner:"code"`
	Name      string    `spanner:"name"`
	CreatedAt time.Time `spanner:"created_at"`
}
