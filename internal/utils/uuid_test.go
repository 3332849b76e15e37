package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GenerateV7(t *testing.T) {
	g := NewUUIDGenerator()

	id, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		id := g.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
