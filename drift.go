package sizedarray

import "github.com/rawbytedev/sizedarray/internal/common"

// DriftToBegin floats array[start:] to the front of the array, behind margin
// fill elements. Everything not covered by the moved elements is fill.
//
//	sizedarray.DriftToBegin([7]int{1, 2, 3}, 0, 1, 0) // [0 1 2 3 0 0 0]
//
// A margin at least as long as the array, or a start at or past its end,
// gives an array of fill.
func DriftToBegin[A, T any](array A, start, margin int, fill T) A {
	if v := common.View[A, T](&array); v != nil {
		DriftToBeginInto(v, v, start, margin, fill)
	} else {
		common.Rearrange(&array, []T{fill}, func(dst, ext []int) {
			DriftToBeginInto(dst, dst, start, margin, ext[0])
		})
	}
	return array
}

// DriftToBeginInto writes fill to dst[:margin], src[start:] after it and fill
// to whatever is left. dst and src may be the same slice.
func DriftToBeginInto[T any](dst, src []T, start, margin int, fill T) {
	start = common.Clamp(start, 0, len(src))
	margin = common.Clamp(margin, 0, len(dst))
	n := copy(dst[margin:], src[start:])
	common.Fill(dst[:margin], fill)
	common.Fill(dst[margin+n:], fill)
}

// DriftToEnd floats array[:end] to the back of the array so that exactly
// margin fill elements trail it. Everything before it is fill too.
//
//	sizedarray.DriftToEnd([7]int{1, 2, 3}, 3, 0, 42) // [42 42 42 42 1 2 3]
//
// end is capped at the array length; if the moved elements do not fit in
// front of the margin, the leading ones are dropped.
func DriftToEnd[A, T any](array A, end, margin int, fill T) A {
	if v := common.View[A, T](&array); v != nil {
		DriftToEndInto(v, v, end, margin, fill)
	} else {
		common.Rearrange(&array, []T{fill}, func(dst, ext []int) {
			DriftToEndInto(dst, dst, end, margin, ext[0])
		})
	}
	return array
}

// DriftToEndInto places src[:end] so that it ends margin elements before the
// end of dst. dst and src may be the same slice.
func DriftToEndInto[T any](dst, src []T, end, margin int, fill T) {
	end = common.Clamp(end, 0, len(src))
	stop := len(dst) - common.Clamp(margin, 0, len(dst))
	moved := src[:end]
	if len(moved) > stop {
		moved = moved[len(moved)-stop:]
	}
	begin := stop - len(moved)
	copy(dst[begin:stop], moved)
	common.Fill(dst[:begin], fill)
	common.Fill(dst[stop:], fill)
}
