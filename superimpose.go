package sizedarray

import "github.com/rawbytedev/sizedarray/internal/common"

// Superimpose writes overlay over base starting at offset and returns the
// result. Overlay elements that would land outside base are ignored, so the
// result always has exactly base's elements everywhere else. An offset at or
// past the end of base returns it unchanged.
//
//	sizedarray.Superimpose([8]int{}, []int{1, 3, 3, 7}, 2) // [0 0 1 3 3 7 0 0]
//	sizedarray.Superimpose([3]int{1, 2, 3}, []int{4, 2}, 2) // [1 2 4]
func Superimpose[A, T any](base A, overlay []T, offset int) A {
	if v := common.View[A, T](&base); v != nil {
		SuperimposeInto(v, overlay, offset)
	} else {
		common.Rearrange(&base, overlay, func(dst, ext []int) { SuperimposeInto(dst, ext, offset) })
	}
	return base
}

// SuperimposeInto overwrites dst[offset:] with overlay, clipped to dst.
// A negative offset drops the leading -offset overlay elements.
func SuperimposeInto[T any](dst, overlay []T, offset int) {
	d, s, n := common.Place(len(dst), len(overlay), offset)
	copy(dst[d:d+n], overlay[s:s+n])
}
