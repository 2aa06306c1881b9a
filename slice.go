package sizedarray

import "github.com/rawbytedev/sizedarray/internal/common"

// SizedSlice copies src[start:] into an A. Positions src cannot supply are
// the zero value; source elements beyond the length of A are dropped.
//
//	sizedarray.SizedSlice[[4]int]([]int{1, 2, 3, 4, 5, 6}, 4) // [5 6 0 0]
func SizedSlice[A, T any](src []T, start int) A {
	var zero T
	return SliceRange[A](src, start, len(src), zero)
}

// SliceRange copies src[from:till] into an A, padding with fill. till is
// capped at len(src); an empty or inverted range gives an all-fill array.
//
//	sizedarray.SliceRange[[6]int]([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 6, 8, 0) // [7 8 0 0 0 0]
func SliceRange[A, T any](src []T, from, till int, fill T) A {
	var out A
	if v := common.View[A, T](&out); v != nil {
		SliceRangeInto(v, src, from, till, fill)
	} else {
		common.Build(&out, func(dst []T) { SliceRangeInto(dst, src, from, till, fill) })
	}
	return out
}

func SliceInto[T any](dst, src []T, start int, fill T) {
	SliceRangeInto(dst, src, start, len(src), fill)
}

// SliceRangeInto copies as much of src[from:till] as dst holds and fills
// the remainder of dst.
func SliceRangeInto[T any](dst, src []T, from, till int, fill T) {
	end := common.Clamp(till, 0, len(src))
	from = common.Clamp(from, 0, end)
	n := copy(dst, src[from:end])
	common.Fill(dst[n:], fill)
}

// Resize copies the leading elements of src into an A, truncating or
// padding with the zero value.
func Resize[A, T any](src []T) A {
	var zero T
	return ResizeFill[A](src, zero)
}

// ResizeFill is Resize with an explicit padding value.
//
//	sizedarray.ResizeFill[[4]int]([]int{1, 2, 3}, 9) // [1 2 3 9]
func ResizeFill[A, T any](src []T, fill T) A {
	return SliceRange[A](src, 0, len(src), fill)
}

func ResizeInto[T any](dst, src []T, fill T) {
	SliceRangeInto(dst, src, 0, len(src), fill)
}
