package madfa

// Contains reports whether word was one of the strings the automaton was
// built from. An automaton built from an empty input (or a nil
// *Automaton) returns false for every word; Contains never allocates and
// never fails.
func (a *Automaton) Contains(word string) bool {
	if a == nil || a.initial == noState {
		return false
	}

	node := a.initial
	for _, r := range word {
		next, ok := a.transition(node, r)
		if !ok {
			return false
		}
		node = next
	}

	return a.states[node].final
}

// IndexOf returns word's 0-based position in insertion order, or -1 if
// word was never added. It requires no extra traversal beyond the word's
// length: the rank count of each edge was precomputed once, in Finish.
func (a *Automaton) IndexOf(word string) int {
	if a == nil || a.initial == noState {
		return -1
	}

	node := a.initial
	skipped := 0
	for _, r := range word {
		target, count, ok := a.rankedTransition(node, r)
		if !ok {
			return -1
		}
		skipped += count
		node = target
	}

	if a.states[node].final {
		return skipped
	}
	return -1
}

func (a *Automaton) rankedTransition(idx int, label rune) (target int, count int, ok bool) {
	for _, e := range a.states[idx].edges {
		if e.Label == label {
			return e.Target, e.count, true
		}
	}
	return 0, 0, false
}

// PrefixMatch is one result of FindAllPrefixesOf: a stored word that is a
// prefix of the queried input, together with its insertion rank.
type PrefixMatch struct {
	Word  string
	Index int
}

// FindAllPrefixesOf returns every string stored in the automaton that is a
// prefix of input, including input itself if it was stored, in increasing
// length order.
func (a *Automaton) FindAllPrefixesOf(input string) []PrefixMatch {
	if a == nil || a.initial == noState {
		return nil
	}

	var results []PrefixMatch
	skipped := 0
	node := a.initial
	final := a.states[node].final

	for pos, r := range input {
		if final {
			results = append(results, PrefixMatch{Word: input[:pos], Index: skipped})
		}

		target, count, ok := a.rankedTransition(node, r)
		if !ok {
			return results
		}

		node = target
		skipped += count
		final = a.states[node].final
	}

	if final {
		results = append(results, PrefixMatch{Word: input, Index: skipped})
	}

	return results
}
