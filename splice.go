package sizedarray

import "github.com/rawbytedev/sizedarray/internal/common"

// Splice overwrites array from index on with insert. It has the effect of
// Superimpose without going through the general overlap computation. Every
// position keeps a value, so there is no fill: an index at or past the end
// of the array leaves it unchanged, and so does an empty insert.
//
//	sizedarray.Splice([6]int{1, 2, 3, 4, 5, 6}, []int{9, 9}, 3) // [1 2 3 9 9 6]
func Splice[A, T any](array A, insert []T, index int) A {
	if v := common.View[A, T](&array); v != nil {
		SpliceInto(v, insert, index)
	} else {
		common.Rearrange(&array, insert, func(dst, ext []int) { SpliceInto(dst, ext, index) })
	}
	return array
}

// SpliceInto is Splice over a slice. A negative index drops the leading
// -index elements of insert.
func SpliceInto[T any](dst, insert []T, index int) {
	if index < 0 {
		skip := len(insert)
		if index > -len(insert) {
			skip = -index
		}
		insert, index = insert[skip:], 0
	}
	if index < len(dst) {
		copy(dst[index:], insert)
	}
}

// Join builds an A holding a followed by b. Elements that do not fit are
// dropped and unused positions are fill.
//
//	sizedarray.Join[[4]int]([]int{1, 2}, []int{3, 4, 5}, 0) // [1 2 3 4]
//	sizedarray.Join[[5]int]([]int{1, 2}, []int{3}, 0)       // [1 2 3 0 0]
func Join[A, T any](a, b []T, fill T) A {
	var out A
	if v := common.View[A, T](&out); v != nil {
		JoinInto(v, a, b, fill)
	} else {
		common.Build(&out, func(dst []T) { JoinInto(dst, a, b, fill) })
	}
	return out
}

// JoinInto writes a, then b, then fill into dst. dst must not overlap b.
func JoinInto[T any](dst, a, b []T, fill T) {
	n := copy(dst, a)
	n += copy(dst[n:], b)
	common.Fill(dst[n:], fill)
}

// Split distributes src over two arrays, filling the left one first. Missing
// elements are fill and source elements past both arrays are dropped.
//
//	sizedarray.Split[[3]int, [3]int]([]int{1, 2, 3, 4, 5}, 0) // [1 2 3] [4 5 0]
func Split[L, R, T any](src []T, fill T) (L, R) {
	var (
		left  L
		right R
	)
	lv, rv := common.View[L, T](&left), common.View[R, T](&right)
	if lv != nil && rv != nil {
		SplitInto(lv, rv, src, fill)
		return left, right
	}
	n := min(common.Len[L, T](), len(src))
	return SliceRange[L](src, 0, n, fill), SliceRange[R](src, n, len(src), fill)
}

// SplitInto fills left from the start of src and right from where left ended.
func SplitInto[T any](left, right, src []T, fill T) {
	n := copy(left, src)
	common.Fill(left[n:], fill)
	m := copy(right, src[n:])
	common.Fill(right[m:], fill)
}
