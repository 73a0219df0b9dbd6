package madfa

// enumeratorStatus tracks an Enumerator's position: Unstarted before the
// first Advance, Yielding while Current holds a valid string, Exhausted
// once Advance has returned false.
type enumeratorStatus int

const (
	statusUnstarted enumeratorStatus = iota
	statusYielding
	statusExhausted
)

// pendingEdge accompanies a pushed state and describes the edge that led
// to it: append label to the buffer after truncating it back to depth.
// has is false only for the initial push of the root state, which has no
// leading edge.
type pendingEdge struct {
	label rune
	depth int
	has   bool
}

// Enumerator produces the automaton's strings in strictly ascending
// lexicographic order via an explicit, restartable depth-first traversal.
// It is not safe for concurrent use; distinct Enumerators over the same
// Automaton are fully independent.
type Enumerator struct {
	automaton *Automaton

	buffer []rune
	states []int
	edges  []pendingEdge

	current string
	status  enumeratorStatus
}

// Iterate returns a fresh Enumerator positioned before the first string.
func (a *Automaton) Iterate() *Enumerator {
	e := &Enumerator{automaton: a}
	e.Reset()
	return e
}

// Reset returns the enumerator to its initial, unstarted position. Two
// enumerations separated by Reset yield identical sequences.
func (e *Enumerator) Reset() {
	e.buffer = e.buffer[:0]
	e.states = e.states[:0]
	e.edges = e.edges[:0]
	e.current = ""
	e.status = statusUnstarted

	if e.automaton != nil && e.automaton.initial != noState {
		e.states = append(e.states, e.automaton.initial)
		e.edges = append(e.edges, pendingEdge{})
	}
}

// Advance moves to the next string in lexicographic order and reports
// whether one was found. Each call does work proportional only to the
// depth of automaton walked since the previous result.
func (e *Enumerator) Advance() bool {
	for len(e.states) > 0 {
		n := len(e.states) - 1
		idx := e.states[n]
		rec := e.edges[n]
		e.states = e.states[:n]
		e.edges = e.edges[:n]

		if rec.has {
			e.buffer = append(e.buffer[:rec.depth], rec.label)
		}

		st := &e.automaton.states[idx]
		depth := len(e.buffer)
		for i := len(st.edges) - 1; i >= 0; i-- {
			edge := st.edges[i]
			e.states = append(e.states, edge.Target)
			e.edges = append(e.edges, pendingEdge{label: edge.Label, depth: depth, has: true})
		}

		if st.final {
			e.current = string(e.buffer)
			e.status = statusYielding
			return true
		}
	}

	e.status = statusExhausted
	e.current = ""
	return false
}

// Current returns the string at the enumerator's current position. It is
// only valid immediately after Advance has returned true.
func (e *Enumerator) Current() string {
	return e.current
}

// WalkResult tells WalkPrefixes whether to continue descending, skip the
// current branch, or stop the walk entirely.
type WalkResult int

const (
	// WalkContinue keeps enumerating words below the current prefix.
	WalkContinue WalkResult = iota
	// WalkSkip abandons the current branch but continues the overall walk.
	WalkSkip
	// WalkStop halts the walk immediately.
	WalkStop
)

// WalkFunc is called once per prefix visited by WalkPrefixes (a state
// shared by several prefixes is visited once for each), with the prefix,
// whether the state it reaches is final, and its insertion rank if it is.
type WalkFunc func(prefix string, final bool, index int) WalkResult

// WalkPrefixes performs a recursive depth-first walk of the automaton,
// visiting every prefix (not just complete words) in lexicographic order.
// It complements Enumerator: where Enumerator is the mandatory, pausable,
// restartable string iterator, WalkPrefixes trades restartability for the
// ability to prune a branch outright via WalkSkip.
func (a *Automaton) WalkPrefixes(fn WalkFunc) {
	if a == nil || a.initial == noState {
		return
	}
	a.walk(a.initial, nil, 0, fn)
}

func (a *Automaton) walk(idx int, prefix []rune, index int, fn WalkFunc) WalkResult {
	st := &a.states[idx]
	result := fn(string(prefix), st.final, index)
	if result != WalkContinue {
		return result
	}

	prefix = append(prefix, 0)
	for _, e := range st.edges {
		prefix[len(prefix)-1] = e.Label
		result = a.walk(e.Target, prefix, index+e.count, fn)
		if result == WalkStop {
			return WalkStop
		}
	}

	return WalkContinue
}
