package domain

import (
	"strings"
	"time"
)

// Product is a named item scoped to one owning client. Products are looked
// up by (client, name) and referenced everywhere else by id. Immutable after
// creation.
//
// The same name may exist under different clients; that is what makes
// candidate discovery meaningful. Within one client the pair (client, name)
// is treated as unique by every resolution path, but the store does not
// enforce it: registering the same name twice produces two independent rows
// and lookups return the first match.
type Product struct {
	id        int64
	clientID  int64
	name      string
	createdAt time.Time
}

// NewProduct validates and creates a Product ready for registration under
// the given owning client. The name is trimmed and must be non-blank.
func NewProduct(clientID int64, name string) (*Product, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, ErrMissingProductName
	}

	return &Product{
		clientID: clientID,
		name:     name,
	}, nil
}

// ReconstructProduct reconstitutes a Product from the database.
func ReconstructProduct(id, clientID int64, name string, createdAt time.Time) *Product {
	return &Product{
		id:        id,
		clientID:  clientID,
		name:      name,
		createdAt: createdAt,
	}
}

func (p *Product) ID() int64            { return p.id }
func (p *Product) ClientID() int64      { return p.clientID }
func (p *Product) Name() string         { return p.name }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
