package madfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-madfa/madfa"
)

func TestFinishIsIdempotent(t *testing.T) {
	b := madfa.NewBuilder()
	require.NoError(t, b.Add("a"))

	a1, err := b.Finish()
	require.NoError(t, err)

	a2, err := b.Finish()
	require.NoError(t, err)

	assert.Same(t, a1, a2)
}

func TestUnsortedInputErrorMentionsWords(t *testing.T) {
	b := madfa.NewBuilder()
	require.NoError(t, b.Add("mango"))
	err := b.Add("apple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apple")
	assert.Contains(t, err.Error(), "mango")
}

func TestSliceSourceExhausts(t *testing.T) {
	src := madfa.NewSliceSource([]string{"one", "two"})

	w, ok := src.Next()
	require.True(t, ok)
	require.NotNil(t, w)
	assert.Equal(t, "one", *w)

	w, ok = src.Next()
	require.True(t, ok)
	assert.Equal(t, "two", *w)

	_, ok = src.Next()
	assert.False(t, ok)
}

func TestBuildFromStreamedSource(t *testing.T) {
	words := []string{"alpha", "beta", "gamma"}
	a, err := madfa.Build(madfa.NewSliceSource(words))
	require.NoError(t, err)
	assert.Equal(t, len(words), a.Count())
}
