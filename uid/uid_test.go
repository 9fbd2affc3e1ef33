package uid

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestNewIsUnique(t *testing.T) {
	seen := make(map[ID]struct{})
	for i := 0; i < 1000; i++ {
		id := New()
		_, exists := seen[id]
		assert.Assert(t, !exists, "duplicate ID %v", id)
		seen[id] = struct{}{}
	}
}

func TestIDRoundTripsThroughText(t *testing.T) {
	id := New()

	text, err := id.MarshalText()
	assert.NilError(t, err)

	parsed, err := Parse(text)
	assert.NilError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("not/base58/0OIl"))
	assert.ErrorContains(t, err, "invalid")
}
