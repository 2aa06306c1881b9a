// Package sizedarray provides transformation primitives over fixed-length
// arrays that never panic.
//
// Every out-of-range index, length mismatch or overflow is resolved by
// truncating data or padding with a fill value. The primitives are
// initialize, slice, resize, superimpose, drift, splice, join and split.
//
// Go cannot abstract over an array length, so the output array type is
// passed as the first type parameter and its length is taken from the type:
//
//	evens := sizedarray.InitializeFrom[[5]int](func(i int) int { return 2 * i })
//	// [0 2 4 6 8]
//
//	short := sizedarray.Resize[[2]int](evens[:])
//	// [0 2]
//
// Inputs are plain slices, usually arr[:] of a fixed array. Operations that
// keep the array's length (Drift*, Superimpose, Splice) take the array by
// value and return the modified copy:
//
//	a := [7]int{1, 2, 3}
//	sizedarray.DriftToBegin(a, 0, 1, 0) // [0 1 2 3 0 0 0]
//	sizedarray.DriftToEnd(a, 3, 0, 42)  // [42 42 42 42 1 2 3]
//
// The element type T is inferred from the arguments. With an untyped
// constant fill such as 0 it is int even for a [4]byte. When T differs from
// the element type of the array but converts to it, the operation runs as if
// every T value had been converted first, wrapping as Go conversions do:
//
//	b := [7]byte{1, 2, 3}
//	sizedarray.DriftToEnd(b, 3, 0, 42) // [42 42 42 42 1 2 3]
//
// This path goes through reflection and allocates. When T does not convert
// (or would only convert by reinterpreting, like int to string) nothing is
// written: constructors return the zero array and by-value operations
// return their input.
//
// Each primitive has a slice-level ...Into form writing into a caller owned
// dst, whose length plays the role of the target length. With matching
// element types the array forms are thin wrappers around those and allocate
// nothing.
//
// Index arguments follow two rules. Quantities (start, end, from, till,
// count, margin) are clamped into the valid range, negative meaning 0.
// Placements (the offset of Superimpose, the index of Splice) are
// positional: elements that would land outside the array are dropped.
package sizedarray
