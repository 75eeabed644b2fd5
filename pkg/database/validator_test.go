package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidID(t *testing.T) {
	assert.True(t, ValidID(uuid.NewString()))
	assert.True(t, ValidID("6f1c2a9e-51b4-4bc1-9a53-0f8b1b7d2c11"))

	for _, id := range []string{
		"",
		"123",
		"6f1c2a9e51b44bc19a530f8b1b7d2c11",
		"{6f1c2a9e-51b4-4bc1-9a53-0f8b1b7d2c11}",
		"urn:uuid:6f1c2a9e-51b4-4bc1-9a53-0f8b1b7d2c11",
		"6f1c2a9e-51b4-4bc1-9a53-0f8b1b7d2cZZ",
	} {
		assert.False(t, ValidID(id), id)
	}
}
