package errorvec_test

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/nathan-at-least/errorvec"
)

func BenchmarkListAdd(b *testing.B) {
	err := errors.New("benchmark error")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		list := errorvec.New[error]()
		for j := 0; j < 10; j++ {
			list.Add(err)
		}
	}
}

func BenchmarkDrainMixed(b *testing.B) {
	outcomes := make([]errorvec.Outcome[int, error], 0, 1000)
	for i := 0; i < 1000; i++ {
		if i%10 == 0 {
			outcomes = append(outcomes, errorvec.Fail[int](errors.New("item "+strconv.Itoa(i)+" failed")))
		} else {
			outcomes = append(outcomes, errorvec.OK[int, error](i))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = errorvec.Drain(slices.Values(outcomes))
	}
}

func BenchmarkDrainAllSuccess(b *testing.B) {
	outcomes := make([]errorvec.Outcome[int, error], 0, 1000)
	for i := 0; i < 1000; i++ {
		outcomes = append(outcomes, errorvec.OK[int, error](i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = errorvec.Drain(slices.Values(outcomes))
	}
}

func BenchmarkListError(b *testing.B) {
	errs := make([]error, 100)
	for i := range errs {
		errs[i] = errors.New("failure number " + strconv.Itoa(i))
	}
	list := errorvec.From(errs)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = list.Error()
	}
}
