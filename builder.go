package madfa

import (
	"github.com/rs/zerolog/log"
)

// Source streams words for Build in non-decreasing lexicographic order.
// Next returns ok=false once the sequence is exhausted. A nil *string
// returned with ok=true represents an absent element and causes Build to
// fail with ErrInvalidElement; a nil Source itself is ErrMissingCollection.
type Source interface {
	Next() (*string, bool)
}

type sliceSource struct {
	words []string
	pos   int
}

// NewSliceSource adapts a plain []string to Source. Since Go strings are
// never nil, every element is well-formed; use NewPointerSliceSource to
// exercise ErrInvalidElement.
func NewSliceSource(words []string) Source {
	return &sliceSource{words: words}
}

func (s *sliceSource) Next() (*string, bool) {
	if s.pos >= len(s.words) {
		return nil, false
	}
	w := s.words[s.pos]
	s.pos++
	return &w, true
}

type pointerSliceSource struct {
	words []*string
	pos   int
}

// NewPointerSliceSource adapts a []*string to Source, preserving nil
// elements as absent words.
func NewPointerSliceSource(words []*string) Source {
	return &pointerSliceSource{words: words}
}

func (s *pointerSliceSource) Next() (*string, bool) {
	if s.pos >= len(s.words) {
		return nil, false
	}
	w := s.words[s.pos]
	s.pos++
	return w, true
}

// rightmostEdge is one link of the rightmost path: the chain of edges
// corresponding to the word currently being added. It is the only mutable
// part of the automaton between calls to Add.
type rightmostEdge struct {
	parent int
	label  rune
	child  int
}

// Builder incrementally constructs a minimal automaton, following Daciuk,
// Mihov, Watson & Watson: each word is grafted onto the rightmost path,
// and the portion of the previous word's path that has diverged is frozen
// into the register as soon as it is known no future word can change it.
//
// A Builder is not safe for concurrent use; it is exclusively owned by a
// single goroutine for the duration of construction.
type Builder struct {
	automaton *Automaton
	reg       *register
	rightmost []rightmostEdge
	lastWord  []rune
	hasWord   bool
	finished  bool
}

// NewBuilder returns an empty Builder ready to accept words.
func NewBuilder() *Builder {
	a := &Automaton{initial: noState}
	return &Builder{
		automaton: a,
		reg:       newRegister(a),
	}
}

// CanAdd reports whether word could be passed to Add right now: the
// builder must not have finished, and word must not sort strictly before
// the previous word (duplicates are allowed; see Add for how they are
// resolved).
func (b *Builder) CanAdd(word string) bool {
	if b.finished {
		return false
	}
	if !b.hasWord {
		return true
	}
	return word >= string(b.lastWord)
}

// Add adds word to the automaton under construction. Words must arrive in
// non-decreasing lexicographic order; a word that sorts before the
// previous one is rejected with ErrUnsortedInput. Consecutive duplicate
// words are accepted and collapsed: the second and later occurrences do
// not grow Count.
func (b *Builder) Add(word string) error {
	if b.finished {
		return ErrFinished
	}

	if b.hasWord {
		switch {
		case word < string(b.lastWord):
			return wrapUnsortedInput(b.automaton.count, word, string(b.lastWord))
		case word == string(b.lastWord):
			log.Debug().Str("word", word).Msg("madfa: collapsing duplicate word")
			return nil
		}
	}

	runes := []rune(word)

	commonPrefix := 0
	limit := len(runes)
	if len(b.lastWord) < limit {
		limit = len(b.lastWord)
	}
	for commonPrefix < limit && runes[commonPrefix] == b.lastWord[commonPrefix] {
		commonPrefix++
	}

	if b.automaton.initial == noState {
		b.automaton.initial = b.automaton.newState()
	}

	b.freeze(commonPrefix)

	node := b.automaton.initial
	if len(b.rightmost) > 0 {
		node = b.rightmost[len(b.rightmost)-1].child
	}

	for _, r := range runes[commonPrefix:] {
		next := b.automaton.newState()
		b.automaton.addEdge(node, r, next)
		b.rightmost = append(b.rightmost, rightmostEdge{parent: node, label: r, child: next})
		node = next
	}

	b.automaton.states[node].final = true

	b.lastWord = runes
	b.hasWord = true
	b.automaton.count++

	log.Debug().Str("word", word).Int("common_prefix", commonPrefix).Int("count", b.automaton.count).
		Msg("madfa: added word")

	return nil
}

// freeze canonicalizes the children of rightmost[downTo:], from the tail
// back to index downTo inclusive, then truncates the rightmost path to
// downTo edges. The state at depth downTo stays mutable. Because input is
// sorted, every state deeper than downTo can no longer be extended by any
// future word: it is fixed forever and can be minimized via the register.
func (b *Builder) freeze(downTo int) {
	for i := len(b.rightmost) - 1; i >= downTo; i-- {
		edge := b.rightmost[i]
		if canonical, ok := b.reg.lookup(edge.child); ok {
			b.automaton.replaceLastChildTarget(edge.parent, canonical)
			log.Debug().Int("child", edge.child).Int("canonical", canonical).
				Msg("madfa: replaced child with canonical register entry")
		} else {
			b.reg.insert(edge.child)
		}
	}
	b.rightmost = b.rightmost[:downTo]
}

// Finish freezes the last word's path, fills in the rank counts backing
// IndexOf and FindAllPrefixesOf, and returns the completed, immutable
// Automaton. The Builder must not be used afterward.
func (b *Builder) Finish() (*Automaton, error) {
	if b.finished {
		return b.automaton, nil
	}

	b.freeze(0)
	b.finished = true

	if b.automaton.initial != noState {
		cache := make(map[int]int)
		computeRanks(b.automaton, cache, b.automaton.initial)
	}

	log.Debug().Int("count", b.automaton.count).Int("states", b.automaton.CountStates()).
		Msg("madfa: build finished")

	return b.automaton, nil
}

// Build is the top-level construction operation: it consumes src in full
// and returns the minimal automaton recognizing exactly the words it
// yielded. A nil src fails with ErrMissingCollection; a nil element fails
// with ErrInvalidElement and no automaton is produced.
func Build(src Source) (*Automaton, error) {
	if src == nil {
		return nil, ErrMissingCollection
	}

	b := NewBuilder()
	for index := 0; ; index++ {
		word, ok := src.Next()
		if !ok {
			break
		}
		if word == nil {
			return nil, wrapInvalidElement(index)
		}
		if err := b.Add(*word); err != nil {
			return nil, err
		}
	}

	return b.Finish()
}

// computeRanks fills in Edge.count for every edge reachable from idx: one
// if the parent is final, plus the number of final states reachable
// through earlier sibling edges of the same parent. It returns the number
// of final states reachable from idx, idx included, memoizing by state
// index since the frozen graph shares nodes between many parents.
func computeRanks(a *Automaton, cache map[int]int, idx int) int {
	if n, ok := cache[idx]; ok {
		return n
	}

	st := &a.states[idx]
	reachable := 0
	if st.final {
		reachable++
	}

	for i := range st.edges {
		a.states[idx].edges[i].count = reachable
		reachable += computeRanks(a, cache, st.edges[i].Target)
	}

	cache[idx] = reachable
	return reachable
}
