package common

import (
	"reflect"
	"unsafe"
)

// View aliases the elements of *a as a []T without copying.
// It returns nil when A is not an array type whose element type is T.
func View[A, T any](a *A) []T {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array || t.Elem() != reflect.TypeFor[T]() {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(a)), t.Len())
}

// ArrayLen reports the static length of A, or 0 if A is not an array of T.
func ArrayLen[A, T any]() int {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array || t.Elem() != reflect.TypeFor[T]() {
		return 0
	}
	return t.Len()
}

// Convertible reports whether A is an array whose element type T values
// can be converted to without reinterpretation or a possible panic.
func Convertible[A, T any]() bool {
	t := reflect.TypeFor[A]()
	return t.Kind() == reflect.Array && convertible(reflect.TypeFor[T](), t.Elem())
}

// Len reports how many elements of T an A takes in: its length when its
// elements are T or convertible from T, 0 otherwise.
func Len[A, T any]() int {
	if !Convertible[A, T]() {
		return 0
	}
	return reflect.TypeFor[A]().Len()
}

func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	switch {
	case from.Kind() == reflect.Slice && to.Kind() != reflect.Slice:
		// slice to array conversions panic on short slices
		return false
	case to.Kind() == reflect.String && from.Kind() != reflect.String:
		// integers would read as runes and byte slices as text
		return false
	}
	return true
}

// Build is the slow path of the array constructors, taken when View fails.
// If T converts to the element type of A, fill runs over scratch space whose
// values are then converted into *a. Otherwise *a is left as is.
func Build[A, T any](a *A, fill func(dst []T)) {
	if !Convertible[A, T]() {
		return
	}
	tmp := make([]T, reflect.TypeFor[A]().Len())
	fill(tmp)
	store(reflect.ValueOf(a).Elem(), tmp)
}

func store[T any](arr reflect.Value, vals []T) {
	et := arr.Type().Elem()
	for i := range vals {
		arr.Index(i).Set(reflect.ValueOf(&vals[i]).Elem().Convert(et))
	}
}

// Rearrange is the slow path of the in-place operations, taken when View
// fails and T converts to the element type of A. op runs over index codes:
// dst starts as 0..n-1 and ext as -1..-len(extra). Afterwards every position
// of *a takes the original element or the converted extra value its code
// names. op must only move codes around, never invent them.
func Rearrange[A, T any](a *A, extra []T, op func(dst, ext []int)) {
	if !Convertible[A, T]() {
		return
	}
	arr := reflect.ValueOf(a).Elem()
	dst := make([]int, arr.Len())
	for i := range dst {
		dst[i] = i
	}
	ext := make([]int, len(extra))
	for j := range ext {
		ext[j] = -j - 1
	}
	op(dst, ext)

	orig := reflect.New(arr.Type()).Elem()
	orig.Set(arr)
	et := arr.Type().Elem()
	for i, c := range dst {
		if c >= 0 {
			arr.Index(i).Set(orig.Index(c))
		} else {
			arr.Index(i).Set(reflect.ValueOf(&extra[-c-1]).Elem().Convert(et))
		}
	}
}

// Clamp limits v to [lo, hi]. hi wins when lo > hi.
func Clamp(v, lo, hi int) int {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// Place returns the windows dst[d:d+n] and src[s:s+n] that coincide when
// src is laid over dst starting at index at. Parts of src landing outside
// dst are cut off on either side.
func Place(dstLen, srcLen, at int) (d, s, n int) {
	switch {
	case at >= 0:
		if at >= dstLen {
			return 0, 0, 0
		}
		return at, 0, min(srcLen, dstLen-at)
	case at <= -srcLen:
		return 0, 0, 0
	default:
		// at > -srcLen, so negating cannot overflow
		s = -at
		return 0, s, min(srcLen-s, dstLen)
	}
}

// Fill sets every element of s to v.
func Fill[T any](s []T, v T) {
	for i := range s {
		s[i] = v
	}
}
