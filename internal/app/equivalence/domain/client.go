package domain

import (
	"strings"
	"time"
)

// Client is the owner of a product catalog. Clients are resolved externally
// by their unique code and internally by id. Immutable after creation.
type Client struct {
	id        int64
	code      string
	name      string
	createdAt time.Time
}

// NewClient validates and creates a Client ready for registration.
// Code and name are trimmed; both must be non-blank. The id is assigned by
// the store on insert.
func NewClient(code, name string) (*Client, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)

	if code == "" {
		return nil, ErrMissingClientCode
	}
	if name == "" {
		return nil, ErrMissingClientName
	}

	return &Client{
		code: code,
		name: name,
	}, nil
}

// ReconstructClient reconstitutes a Client from the database.
func ReconstructClient(id int64, code, name string, createdAt time.Time) *Client {
	return &Client{
		id:        id,
		code:      code,
		name:      name,
		createdAt: createdAt,
	}
}

func (c *Client) ID() int64            { return c.id }
func (c *Client) Code() string         { return c.code }
func (c *Client) Name() string         { return c.name }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
