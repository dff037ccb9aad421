package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedSet(t *testing.T) {
	s := NewOrderedSet[string]()
	assert.Empty(t, s.Items())
	assert.NotNil(t, s.Items())

	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("b"))
	assert.True(t, s.Add("B"))

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
	assert.Equal(t, []string{"b", "a", "B"}, s.Items())

	// Items hands out a copy.
	items := s.Items()
	items[0] = "changed"
	assert.Equal(t, "b", s.Items()[0])
}
