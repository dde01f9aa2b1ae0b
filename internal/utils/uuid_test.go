package utils

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUID(t *testing.T) {
	id := GenerateUUID()

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, GenerateUUID())
}

func TestGenerateRunID(t *testing.T) {
	id := GenerateRunID()

	assert.Regexp(t, regexp.MustCompile(`^run-[0-9a-f]{12}$`), id)
	assert.NotEqual(t, id, GenerateRunID())
}
