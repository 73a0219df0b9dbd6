/*
Package madfa builds and queries a Minimal Acyclic Deterministic
Finite-State Automaton (MADFA), a compact representation of an immutable
set of strings.

Given a sequence of strings in non-decreasing lexicographic order, Build
(or a Builder used directly) constructs the unique minimal DFA that
recognizes exactly that set, using the incremental algorithm of Daciuk,
Mihov, Watson & Watson: as each word arrives, the longest common prefix
with the automaton built so far is found, the diverged tail of the
previous word is frozen into a canonical register, and the new word's
suffix is grafted on as a fresh, still-mutable chain. After every word,
everything outside that latest chain is minimal, not only at the end;
Finish freezes the last chain as well.

Once built, an Automaton is immutable and safe to share across goroutines.
Contains answers O(|w|) membership queries. Iterate returns a restartable
Enumerator that yields every stored string in ascending lexicographic
order. IndexOf and FindAllPrefixesOf expose each word's insertion rank,
useful when the automaton is used as a compact ordered dictionary rather
than a plain set.

This package does not read input, sort it, or persist the built automaton
to disk — those are the caller's concerns. See cmd/madfa for a small CLI
that supplies them.
*/
package madfa
