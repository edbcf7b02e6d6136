package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionSetAddIgnoresEmptyAndDuplicates(t *testing.T) {
	s := NewExclusionSet()

	assert.True(t, s.Add("lego set"))
	assert.False(t, s.Add("lego set"))
	assert.False(t, s.Add(""))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has("lego set"))
	assert.False(t, s.Has("chess set"))
}

func TestExclusionSetSampleKeepsInsertionOrder(t *testing.T) {
	s := NewExclusionSet()
	s.Add("a")
	s.Add("b")
	s.Add("c")

	assert.Equal(t, []string{"a", "b"}, s.Sample(2))
	assert.Equal(t, []string{"a", "b", "c"}, s.Sample(10))
	assert.Nil(t, s.Sample(0))
}
