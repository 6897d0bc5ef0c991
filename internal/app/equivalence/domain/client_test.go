package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("valid client", func(t *testing.T) {
		c, err := NewClient("C001", "Client A")
		require.NoError(t, err)
		assert.Equal(t, "C001", c.Code())
		assert.Equal(t, "Client A", c.Name())
		assert.Zero(t, c.ID())
	})

	t.Run("code and name are trimmed", func(t *testing.T) {
		c, err := NewClient("  C001  ", "  Client A  ")
		require.NoError(t, err)
		assert.Equal(t, "C001", c.Code())
		assert.Equal(t, "Client A", c.Name())
	})

	t.Run("blank code returns error", func(t *testing.T) {
		_, err := NewClient("   ", "Client A")
		assert.ErrorIs(t, err, ErrMissingClientCode)
	})

	t.Run("blank name returns error", func(t *testing.T) {
		_, err := NewClient("C001", "")
		assert.ErrorIs(t, err, ErrMissingClientName)
	})
}

func TestReconstructClient(t *testing.T) {
	createdAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	c := ReconstructClient(4, "C004", "Client D", createdAt)

	assert.Equal(t, int64(4), c.ID())
	assert.Equal(t, "C004", c.Code())
	assert.Equal(t, "Client D", c.Name())
	assert.Equal(t, createdAt, c.CreatedAt())
}
