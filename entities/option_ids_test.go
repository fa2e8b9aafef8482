package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionIDs(t *testing.T) {
	assert.Equal(t, "[]", EncodeOptionIDs(nil))
	assert.Equal(t, `["a","b"]`, EncodeOptionIDs([]string{"a", "b"}))

	assert.Equal(t, []string{"a", "b"}, DecodeOptionIDs(`["a","b"]`))
	assert.Equal(t, []string{}, DecodeOptionIDs(""))
	assert.Equal(t, []string{}, DecodeOptionIDs("not json"))
}
