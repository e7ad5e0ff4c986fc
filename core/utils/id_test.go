package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	require.Len(t, id, 7)

	for _, r := range id {
		assert.Contains(t, "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", string(r))
	}

	assert.NotEqual(t, id, GenerateID())
}

func TestGenerateTicketID(t *testing.T) {
	id := GenerateTicketID()

	assert.True(t, strings.HasPrefix(id, "TKT-"))
	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 7)
}
