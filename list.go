// Package errorvec tracks multiple errors gathered while processing a
// sequence of fallible operations.
//
// Propagating the first error aborts a batch as soon as anything fails.
// For user-facing work such as validating many files or compiling many
// source units it is usually better to keep going and report every
// failure at once. List accumulates errors in the order they occur, and
// Drain reduces a whole sequence of outcomes to a single pass/fail
// result without stopping early.
package errorvec

import (
	"iter"
	"strconv"
	"strings"
	"unicode"
)

// List collects multiple errors in insertion order. Duplicates are kept
// and nothing is ever reordered or dropped; an empty list is the sole
// signal that no failures occurred. The zero value is an empty list
// ready to use.
//
// List is not safe for concurrent use.
type List[E error] struct {
	errs []E
}

// New creates an empty list.
func New[E error]() *List[E] {
	return &List[E]{}
}

// From wraps an existing slice of errors verbatim, preserving its
// order. The list adopts the slice; the caller should not use it
// afterwards.
func From[E error](errs []E) *List[E] {
	return &List[E]{errs: errs}
}

// Collect drains a sequence of errors into a new list, preserving
// encounter order.
func Collect[E error](seq iter.Seq[E]) *List[E] {
	list := New[E]()
	for err := range seq {
		list.Add(err)
	}
	return list
}

// Add appends one error to the end of the list.
func (l *List[E]) Add(err E) {
	l.errs = append(l.errs, err)
}

// Len returns the number of errors in the list.
func (l *List[E]) Len() int {
	return len(l.errs)
}

// Empty returns true if the list holds no errors.
func (l *List[E]) Empty() bool {
	return len(l.errs) == 0
}

// First returns the first error in the list, or the zero E if empty.
func (l *List[E]) First() E {
	if len(l.errs) == 0 {
		var zero E
		return zero
	}
	return l.errs[0]
}

// Last returns the last error in the list, or the zero E if empty.
func (l *List[E]) Last() E {
	if len(l.errs) == 0 {
		var zero E
		return zero
	}
	return l.errs[len(l.errs)-1]
}

// All returns an iterator over the contained errors in insertion order.
// The sequence is restartable: every range over it walks the list again
// from the start.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, err := range l.errs {
			if !yield(err) {
				return
			}
		}
	}
}

// Errs returns a copy of the contained errors. Mutating the returned
// slice does not affect the list.
func (l *List[E]) Errs() []E {
	out := make([]E, len(l.errs))
	copy(out, l.errs)
	return out
}

// Error renders every contained error as a numbered block:
//
//	[error 1 of 2] first message
//
//	[error 2 of 2] second message
//
// Trailing whitespace of each message is trimmed, blocks are separated
// by exactly one blank line and there is no trailing blank line. This
// format is a contract: downstream tooling may scrape it verbatim. An
// empty list renders as the empty string.
func (l *List[E]) Error() string {
	var b strings.Builder
	n := len(l.errs)
	for i, err := range l.errs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("[error ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(" of ")
		b.WriteString(strconv.Itoa(n))
		b.WriteString("] ")
		b.WriteString(strings.TrimRightFunc(err.Error(), unicode.IsSpace))
	}
	return b.String()
}

// Unwrap exposes the contained errors to errors.Is and errors.As.
func (l *List[E]) Unwrap() []error {
	out := make([]error, len(l.errs))
	for i, err := range l.errs {
		out[i] = err
	}
	return out
}

// Err collapses the list into a pass/fail result: nil when the list is
// empty, otherwise an error carrying every accumulated error,
// undiminished and in order. Zero accumulated errors means success no
// matter how many items were processed.
//
// Err consumes the receiver: the accumulated errors move into the
// returned value and the receiver is left empty, so the same failures
// are never reported twice.
func (l *List[E]) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	taken := &List[E]{errs: l.errs}
	l.errs = nil
	return taken
}

// Collapse is Err with a success payload: if l is empty it returns
// (value, nil), otherwise the zero O together with the consumed list.
// A method cannot introduce the payload type parameter, hence the free
// function.
func Collapse[O any, E error](l *List[E], value O) (O, error) {
	if err := l.Err(); err != nil {
		var zero O
		return zero, err
	}
	return value, nil
}

// Take feeds a single outcome into the list: a success returns its
// payload and true, leaving the list untouched; a failure appends the
// error and returns the zero O and false, meaning no usable value
// resulted for that item. Take is the per-element building block behind
// Drain, for callers aggregating inside their own control flow.
func Take[O any, E error](l *List[E], o Outcome[O, E]) (O, bool) {
	if !o.ok {
		l.Add(o.err)
		var zero O
		return zero, false
	}
	return o.value, true
}
