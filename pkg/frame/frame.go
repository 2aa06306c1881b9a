package frame

import (
	"errors"

	"github.com/rawbytedev/sizedarray/internal/common"
)

// Layout (little endian):
//
//	[0:2]      magic 0xF5 0x1A
//	[2]        frame type
//	[3]        flags
//	[4:6]      payload length
//	[6:6+n]    payload
//	[6+n:10+n] CRC-32 (IEEE) over bytes 2 .. 6+n
//	rest       padding
const (
	Magic0 byte = 0xF5
	Magic1 byte = 0x1A

	HeaderSize  = 6
	TrailerSize = 4
	Overhead    = HeaderSize + TrailerSize

	// MaxPayload is the largest length the header can describe.
	MaxPayload = 0xFFFF

	Padding byte = 0x00
)

type Type byte

const (
	TypeData      Type = 0x01
	TypeError     Type = 0x02
	TypeHandshake Type = 0x03
)

const (
	FlagTruncated byte = 1 << iota // payload was cut to fit the frame
	FlagMore                       // more fragments of the same payload follow
)

var (
	ErrShortFrame = errors.New("frame: buffer shorter than header and trailer")
	ErrBadMagic   = errors.New("frame: bad magic")
	ErrLength     = errors.New("frame: payload length exceeds buffer")
	ErrChecksum   = errors.New("frame: crc mismatch")
	ErrFrameType  = errors.New("frame: unexpected frame type")
	ErrPayload    = errors.New("frame: payload too short for frame type")
)

type Header struct {
	Type   Type
	Flags  byte
	Length uint16
}

// Frame is a decoded frame. Payload aliases the decoded buffer.
type Frame struct {
	Header
	Payload []byte
}

func (f Frame) Truncated() bool { return f.Flags&FlagTruncated != 0 }

func (f Frame) More() bool { return f.Flags&FlagMore != 0 }

// Capacity reports how many payload bytes fit in a frame of type F.
// F must be a byte array; anything else has no capacity.
func Capacity[F any]() int {
	return capacity(common.ArrayLen[F, byte]())
}

func capacity(size int) int {
	return common.Clamp(size-Overhead, 0, MaxPayload)
}
