package madfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEquivalenceByShape(t *testing.T) {
	a := &Automaton{initial: noState}
	reg := newRegister(a)

	leaf1 := a.newState()
	a.states[leaf1].final = true

	leaf2 := a.newState()
	a.states[leaf2].final = true

	reg.insert(leaf1)
	canonical, ok := reg.lookup(leaf2)
	require.True(t, ok, "two final, edge-less states must be equivalent")
	assert.Equal(t, leaf1, canonical)
}

func TestRegisterDistinguishesFinality(t *testing.T) {
	a := &Automaton{initial: noState}
	reg := newRegister(a)

	final := a.newState()
	a.states[final].final = true

	nonFinal := a.newState()

	reg.insert(final)
	_, ok := reg.lookup(nonFinal)
	assert.False(t, ok, "finality differs, states must not be equivalent")
}

func TestRegisterDistinguishesEdgeOrder(t *testing.T) {
	a := &Automaton{initial: noState}
	reg := newRegister(a)

	child := a.newState()

	s1 := a.newState()
	a.addEdge(s1, 'a', child)
	a.addEdge(s1, 'b', child)

	s2 := a.newState()
	a.addEdge(s2, 'b', child)
	a.addEdge(s2, 'a', child)

	reg.insert(s1)
	_, ok := reg.lookup(s2)
	assert.False(t, ok, "edge order is load-bearing for equivalence")
}

func TestRegisterDistinguishesTargetIdentity(t *testing.T) {
	a := &Automaton{initial: noState}
	reg := newRegister(a)

	childA := a.newState()
	a.states[childA].final = true
	childB := a.newState()
	a.states[childB].final = true

	s1 := a.newState()
	a.addEdge(s1, 'x', childA)

	s2 := a.newState()
	a.addEdge(s2, 'x', childB)

	reg.insert(s1)
	_, ok := reg.lookup(s2)
	assert.False(t, ok, "distinct child identities, even if structurally similar, are not equivalent")
}

func TestAutomatonEdgeOperations(t *testing.T) {
	a := &Automaton{initial: noState}
	a.initial = a.newState()
	child := a.newState()

	a.addEdge(a.initial, 'x', child)

	target, ok := a.transition(a.initial, 'x')
	require.True(t, ok)
	assert.Equal(t, child, target)

	_, ok = a.transition(a.initial, 'y')
	assert.False(t, ok)

	last, ok := a.lastChild(a.initial)
	require.True(t, ok)
	assert.Equal(t, 'x', last.Label)
	assert.Equal(t, child, last.Target)

	replacement := a.newState()
	a.replaceLastChildTarget(a.initial, replacement)
	target, ok = a.transition(a.initial, 'x')
	require.True(t, ok)
	assert.Equal(t, replacement, target)
}
