package frame

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/rawbytedev/sizedarray"
	"github.com/rawbytedev/sizedarray/internal/common"
)

// Encode packs payload into a frame of fixed size F, e.g. [64]byte.
// Encoding never fails: payload bytes past the frame's capacity are dropped
// and FlagTruncated is set. The number of payload bytes stored is returned.
// A frame type smaller than Overhead encodes as all padding.
func Encode[F any](typ Type, flags byte, payload []byte) (F, int) {
	var out F
	n := EncodeInto(common.View[F, byte](&out), typ, flags, payload)
	return out, n
}

// EncodeInto writes a frame occupying all of dst. payload must not overlap dst.
func EncodeInto(dst []byte, typ Type, flags byte, payload []byte) int {
	return encode(dst, typ, flags, nil, payload)
}

func encode(dst []byte, typ Type, flags byte, prefix, payload []byte) int {
	if len(dst) < Overhead {
		common.Fill(dst, Padding)
		return 0
	}
	want := len(prefix) + len(payload)
	n := min(want, capacity(len(dst)))
	if n < want {
		flags |= FlagTruncated
	}
	end := HeaderSize + n

	hdr := Header{Type: typ, Flags: flags, Length: uint16(n)}.encode()
	sizedarray.SpliceInto(dst, hdr[:], 0)
	sizedarray.JoinInto(dst[HeaderSize:end], prefix, payload, Padding)

	var sum [TrailerSize]byte
	binary.LittleEndian.PutUint32(sum[:], crc32.ChecksumIEEE(dst[2:end]))
	sizedarray.SpliceInto(dst, sum[:], end)
	common.Fill(dst[end+TrailerSize:], Padding)
	return n
}

func (h Header) encode() [HeaderSize]byte {
	var b [HeaderSize]byte
	b[0], b[1], b[2], b[3] = Magic0, Magic1, byte(h.Type), h.Flags
	binary.LittleEndian.PutUint16(b[4:], h.Length)
	return b
}

// Fragment encodes the seq-th chunk of payload, each chunk as large as a
// frame of type F holds. The returned flag, also carried as FlagMore, is
// true while further chunks remain. A seq past the last chunk gives an empty
// final frame.
func Fragment[F any](typ Type, payload []byte, seq int) (F, bool) {
	var out F
	more := FragmentInto(common.View[F, byte](&out), typ, payload, seq)
	return out, more
}

func FragmentInto(dst []byte, typ Type, payload []byte, seq int) bool {
	room := capacity(len(dst))
	if room == 0 {
		encode(dst, typ, 0, nil, payload)
		return false
	}
	seq = common.Clamp(seq, 0, len(payload)/room+1)
	start := min(seq*room, len(payload))
	end := min(start+room, len(payload))
	more := end < len(payload)

	var flags byte
	if more {
		flags = FlagMore
	}
	encode(dst, typ, flags, nil, payload[start:end])
	return more
}

// FragmentCount reports how many frames of type F Fragment needs for a
// payload of n bytes. An empty payload still takes one frame.
func FragmentCount[F any](n int) int {
	room := Capacity[F]()
	if room == 0 || n <= 0 {
		return 1
	}
	return (n + room - 1) / room
}

// EncodeError builds an error frame carrying code followed by data. The
// returned count covers data only.
func EncodeError[F any](code byte, data []byte) (F, int) {
	var out F
	prefix := [1]byte{code}
	n := encode(common.View[F, byte](&out), TypeError, 0, prefix[:], data)
	return out, max(n-1, 0)
}

// Handshake opens a session. At most 255 algorithm codes are sent.
type Handshake struct {
	VersionMask uint16
	MTU         uint16
	TimeoutMS   uint32
	AlgCodes    []byte
}

const handshakeFixed = 9

func (h Handshake) fixed() [handshakeFixed]byte {
	var b [handshakeFixed]byte
	binary.LittleEndian.PutUint16(b[0:], h.VersionMask)
	binary.LittleEndian.PutUint16(b[2:], h.MTU)
	binary.LittleEndian.PutUint32(b[4:], h.TimeoutMS)
	b[8] = byte(min(len(h.AlgCodes), 0xFF))
	return b
}

// EncodeHandshake builds a handshake frame. Algorithm codes that do not fit
// are dropped and FlagTruncated is set.
func EncodeHandshake[F any](h Handshake) F {
	var out F
	fixed := h.fixed()
	algs := h.AlgCodes[:fixed[8]]
	encode(common.View[F, byte](&out), TypeHandshake, 0, fixed[:], algs)
	return out
}
