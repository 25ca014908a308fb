package errorvec

import "iter"

// Drain consumes a sequence of outcomes in a single pass and reduces it
// to one result. If every outcome is a success, Drain returns the
// payloads in encounter order with a nil error; the empty sequence is a
// success with no payloads. If any outcome is a failure, Drain returns
// a nil slice and a *List[E] holding every encountered error in
// encounter order; the successes are discarded. Processing never stops
// early and failed elements are never retried.
//
// The sequence must be finite; it is consumed exactly once and no
// result is available until it is exhausted.
func Drain[O any, E error](seq iter.Seq[Outcome[O, E]]) ([]O, error) {
	var oks []O
	list := New[E]()
	for o := range seq {
		if v, ok := Take(list, o); ok {
			oks = append(oks, v)
		}
	}
	return Collapse(list, oks)
}

// Partition consumes a sequence of outcomes in a single pass and
// returns both the ordered success payloads and the ordered raw errors,
// regardless of whether any failures occurred.
func Partition[O any, E error](seq iter.Seq[Outcome[O, E]]) ([]O, []E) {
	var oks []O
	var errs []E
	for o := range seq {
		if o.ok {
			oks = append(oks, o.value)
		} else {
			errs = append(errs, o.err)
		}
	}
	return oks, errs
}

// DrainSeq2 is Drain for the usual Go shape of a fallible sequence, a
// pair stream of values and errors. An element with a nil error is a
// success.
func DrainSeq2[O any](seq iter.Seq2[O, error]) ([]O, error) {
	var oks []O
	list := New[error]()
	for v, err := range seq {
		if err != nil {
			list.Add(err)
			continue
		}
		oks = append(oks, v)
	}
	return Collapse(list, oks)
}

// PartitionSeq2 is Partition for a pair stream of values and errors.
func PartitionSeq2[O any](seq iter.Seq2[O, error]) ([]O, []error) {
	var oks []O
	var errs []error
	for v, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		oks = append(oks, v)
	}
	return oks, errs
}
