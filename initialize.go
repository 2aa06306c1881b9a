package sizedarray

import (
	"fmt"

	"github.com/rawbytedev/sizedarray/internal/common"
)

// GeneratorError reports the first failure of a generator passed to
// InitializeFromResult. The array returned alongside it is complete.
type GeneratorError struct {
	Index int
	Err   error
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("sizedarray: generator failed at index %d: %v", e.Index, e.Err)
}

func (e *GeneratorError) Unwrap() error {
	return e.Err
}

// InitializeFrom builds an A whose element i is f(i), calling f in
// increasing index order.
//
//	sizedarray.InitializeFrom[[4]int](func(i int) int { return i * i }) // [0 1 4 9]
func InitializeFrom[A, T any](f func(int) T) A {
	var out A
	if v := common.View[A, T](&out); v != nil {
		InitializeInto(v, f)
	} else {
		common.Build(&out, func(dst []T) { InitializeInto(dst, f) })
	}
	return out
}

// InitializeInto sets dst[i] = f(i) for every index of dst. A nil f zeroes dst.
func InitializeInto[T any](dst []T, f func(int) T) {
	if f == nil {
		clear(dst)
		return
	}
	for i := range dst {
		dst[i] = f(i)
	}
}

// InitializeTill generates the first count elements and sets the rest to
// fill. f is never called for an index at or beyond count or the length of A.
func InitializeTill[A, T any](count int, f func(int) T, fill T) A {
	var out A
	if v := common.View[A, T](&out); v != nil {
		InitializeTillInto(v, count, f, fill)
	} else {
		common.Build(&out, func(dst []T) { InitializeTillInto(dst, count, f, fill) })
	}
	return out
}

func InitializeTillInto[T any](dst []T, count int, f func(int) T, fill T) {
	n := common.Clamp(count, 0, len(dst))
	if f == nil {
		n = 0
	}
	for i := range n {
		dst[i] = f(i)
	}
	common.Fill(dst[n:], fill)
}

// InitializeUntil generates elements until f returns till. The sentinel is
// not stored; it and every later position hold fill. The returned index is
// where till was produced, or the length of A if it never was.
//
//	// null terminated stream
//	buf, n := sizedarray.InitializeUntil[[16]byte](readByte, 0, 0)
func InitializeUntil[A any, T comparable](f func(int) T, till, fill T) (A, int) {
	var (
		out A
		n   int
	)
	if v := common.View[A, T](&out); v != nil {
		n = InitializeUntilInto(v, f, till, fill)
	} else {
		common.Build(&out, func(dst []T) { n = InitializeUntilInto(dst, f, till, fill) })
	}
	return out, n
}

func InitializeUntilInto[T comparable](dst []T, f func(int) T, till, fill T) int {
	if f == nil {
		common.Fill(dst, fill)
		return 0
	}
	for i := range dst {
		v := f(i)
		if v == till {
			common.Fill(dst[i:], fill)
			return i
		}
		dst[i] = v
	}
	return len(dst)
}

// InitializeFromOption generates elements until f reports !ok. From that
// index on every element is fill and f is not called again. The index is
// returned, or the length of A when f produced every element.
func InitializeFromOption[A, T any](f func(int) (T, bool), fill T) (A, int) {
	var (
		out A
		n   int
	)
	if v := common.View[A, T](&out); v != nil {
		n = InitializeFromOptionInto(v, f, fill)
	} else {
		common.Build(&out, func(dst []T) { n = InitializeFromOptionInto(dst, f, fill) })
	}
	return out, n
}

func InitializeFromOptionInto[T any](dst []T, f func(int) (T, bool), fill T) int {
	if f == nil {
		common.Fill(dst, fill)
		return 0
	}
	for i := range dst {
		v, ok := f(i)
		if !ok {
			common.Fill(dst[i:], fill)
			return i
		}
		dst[i] = v
	}
	return len(dst)
}

// InitializeFromResult is InitializeFromOption for generators that fail with
// an error. The array is always fully formed; a failure is returned next to
// it as a *GeneratorError carrying the index it happened at.
func InitializeFromResult[A, T any](f func(int) (T, error), fill T) (A, int, error) {
	var (
		out A
		n   int
		err error
	)
	if v := common.View[A, T](&out); v != nil {
		n, err = InitializeFromResultInto(v, f, fill)
	} else {
		common.Build(&out, func(dst []T) { n, err = InitializeFromResultInto(dst, f, fill) })
	}
	return out, n, err
}

func InitializeFromResultInto[T any](dst []T, f func(int) (T, error), fill T) (int, error) {
	if f == nil {
		common.Fill(dst, fill)
		return 0, nil
	}
	for i := range dst {
		v, err := f(i)
		if err != nil {
			common.Fill(dst[i:], fill)
			return i, &GeneratorError{Index: i, Err: err}
		}
		dst[i] = v
	}
	return len(dst), nil
}
