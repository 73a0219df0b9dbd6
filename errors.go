package madfa

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Build and Builder.Add. Callers should use
// errors.Is to test for them: ErrInvalidElement and ErrUnsortedInput are
// wrapped with context about the offending element, while
// ErrMissingCollection and ErrFinished are returned as they are.
var (
	// ErrMissingCollection is returned when the input sequence itself is nil.
	ErrMissingCollection = errors.New("madfa: input sequence is missing")

	// ErrInvalidElement is returned when an element of the input sequence is
	// absent (a nil word).
	ErrInvalidElement = errors.New("madfa: input sequence contains a missing element")

	// ErrUnsortedInput is returned when an element compares less than the
	// previously added word, rather than leaving the resulting automaton
	// undefined.
	ErrUnsortedInput = errors.New("madfa: input sequence is not in non-decreasing order")

	// ErrFinished is returned by Add once Finish has already been called on
	// the Builder.
	ErrFinished = errors.New("madfa: builder has already finished")
)

func wrapInvalidElement(index int) error {
	return fmt.Errorf("%w: element at index %d", ErrInvalidElement, index)
}

func wrapUnsortedInput(distinct int, word, previous string) error {
	return fmt.Errorf("%w: %q (after %d distinct words) precedes previous word %q", ErrUnsortedInput, word, distinct, previous)
}
