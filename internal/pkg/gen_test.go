package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateGameID(t *testing.T) {
	// When: two identifiers are generated
	first, second := GenerateGameID(), GenerateGameID()

	// Then: both are valid and distinct
	assert.True(t, IsGameID(first))
	assert.True(t, IsGameID(second))
	assert.NotEqual(t, first, second)
	assert.False(t, IsGameID("123"))
}
