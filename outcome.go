package errorvec

// Outcome is the result of one fallible operation: either a success
// carrying a value of type O or a failure carrying an error of type E.
// The two cases are mutually exclusive; build outcomes with OK and
// Fail.
type Outcome[O any, E error] struct {
	value O
	err   E
	ok    bool
}

// OK returns a success outcome carrying v.
func OK[O any, E error](v O) Outcome[O, E] {
	return Outcome[O, E]{value: v, ok: true}
}

// Fail returns a failure outcome carrying err.
func Fail[O any, E error](err E) Outcome[O, E] {
	return Outcome[O, E]{err: err}
}

// Ok reports whether the outcome is a success.
func (o Outcome[O, E]) Ok() bool {
	return o.ok
}

// Value returns the success payload and whether it is present.
func (o Outcome[O, E]) Value() (O, bool) {
	return o.value, o.ok
}

// Err returns the failure error and whether it is present.
func (o Outcome[O, E]) Err() (E, bool) {
	return o.err, !o.ok
}
