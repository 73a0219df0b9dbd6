package madfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-madfa/madfa"
)

func TestIndexOf(t *testing.T) {
	words := []string{"blip", "cat", "catnip", "cats"}
	a := mustBuild(t, words)

	for i, w := range words {
		assert.Equal(t, i, a.IndexOf(w), "IndexOf(%q)", w)
	}
	assert.Equal(t, -1, a.IndexOf("dog"))
	assert.Equal(t, -1, a.IndexOf(""))
}

func TestFindAllPrefixesOf(t *testing.T) {
	words := []string{"", "blip", "cat", "catnip", "cats"}
	a := mustBuild(t, words)

	got := a.FindAllPrefixesOf("catsup")
	want := []madfa.PrefixMatch{
		{Word: "", Index: 0},
		{Word: "cat", Index: 2},
		{Word: "cats", Index: 4},
	}
	assert.Equal(t, want, got)
}

func TestFindAllPrefixesOfNoMatch(t *testing.T) {
	a := mustBuild(t, []string{"dog", "doghouse"})
	assert.Empty(t, a.FindAllPrefixesOf("cat"))
}

func TestFindAllPrefixesOfEmptyAutomaton(t *testing.T) {
	a := mustBuild(t, nil)
	assert.Empty(t, a.FindAllPrefixesOf("anything"))
	assert.Equal(t, -1, a.IndexOf("anything"))
}

func TestBuilderCanAdd(t *testing.T) {
	b := madfa.NewBuilder()
	require.True(t, b.CanAdd("a"))
	require.NoError(t, b.Add("a"))

	assert.True(t, b.CanAdd("a"), "duplicates are allowed")
	assert.True(t, b.CanAdd("b"))
	assert.False(t, b.CanAdd(""))

	_, err := b.Finish()
	require.NoError(t, err)

	assert.False(t, b.CanAdd("z"), "finished builder cannot accept more words")
	assert.ErrorIs(t, b.Add("z"), madfa.ErrFinished)
}
