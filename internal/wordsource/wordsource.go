// Package wordsource is the "input acquisition" collaborator kept outside
// the automaton core: reading a newline-delimited word file and adapting
// it to madfa.Source. It performs no sorting and no
// deduplication of its own: sorting remains the caller's job, madfa.Builder
// collapses consecutive duplicates, and any ordering violation is still
// reported by madfa.Builder itself, since it is the one authority on the
// precondition.
package wordsource

import (
	"bufio"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/go-madfa/madfa"
)

// Reader adapts a stream of newline-delimited words to madfa.Source. Each
// line, including a blank one, becomes one word; a blank line yields the
// empty string, not an absent element.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	err     error
}

// New wraps r as a madfa.Source, reading one word per line.
func New(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next implements madfa.Source.
func (r *Reader) Next() (*string, bool) {
	if r.err != nil {
		return nil, false
	}
	if !r.scanner.Scan() {
		r.err = r.scanner.Err()
		return nil, false
	}
	r.line++
	word := r.scanner.Text()
	log.Debug().Str("word", word).Int("line", r.line).Msg("wordsource: read word")
	return &word, true
}

// Err returns the first I/O error encountered while scanning, if any. It
// must be checked after a Build using this Reader returns: Source.Next
// alone cannot distinguish a clean end of input from a failed read.
func (r *Reader) Err() error {
	return r.err
}

var _ madfa.Source = (*Reader)(nil)
