package frame

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/rawbytedev/sizedarray"
)

// ParseHeader reads the header at the start of buf. Missing bytes read as
// zero, so a short buffer fails the magic check.
func ParseHeader(buf []byte) (Header, error) {
	b := sizedarray.SizedSlice[[HeaderSize]byte](buf, 0)
	if b[0] != Magic0 || b[1] != Magic1 {
		return Header{}, ErrBadMagic
	}
	return Header{
		Type:   Type(b[2]),
		Flags:  b[3],
		Length: binary.LittleEndian.Uint16(b[4:]),
	}, nil
}

// Decode validates a frame and returns it without copying the payload.
// Trailing padding after the checksum is ignored.
func Decode(buf []byte) (Frame, error) {
	if len(buf) < Overhead {
		return Frame{}, ErrShortFrame
	}
	h, err := ParseHeader(buf)
	if err != nil {
		return Frame{}, err
	}
	end := HeaderSize + int(h.Length)
	if end > len(buf)-TrailerSize {
		return Frame{}, ErrLength
	}
	sum := sizedarray.SizedSlice[[TrailerSize]byte](buf, end)
	if crc32.ChecksumIEEE(buf[2:end]) != binary.LittleEndian.Uint32(sum[:]) {
		return Frame{}, ErrChecksum
	}
	return Frame{Header: h, Payload: buf[HeaderSize:end:end]}, nil
}

// Payload copies the payload of f into a fixed array, truncating or padding
// with zeros.
func Payload[P any](f Frame) P {
	return sizedarray.Resize[P](f.Payload)
}

// DecodeError returns the code and data of an error frame.
func DecodeError(f Frame) (byte, []byte, error) {
	if f.Type != TypeError {
		return 0, nil, ErrFrameType
	}
	if len(f.Payload) == 0 {
		return 0, nil, ErrPayload
	}
	return f.Payload[0], f.Payload[1:], nil
}

// DecodeHandshake reads a handshake frame. AlgCodes aliases the payload and
// holds at most as many codes as were actually transmitted.
func DecodeHandshake(f Frame) (Handshake, error) {
	if f.Type != TypeHandshake {
		return Handshake{}, ErrFrameType
	}
	if len(f.Payload) < handshakeFixed {
		return Handshake{}, ErrPayload
	}
	fixed := sizedarray.SizedSlice[[handshakeFixed]byte](f.Payload, 0)
	count := min(int(fixed[8]), len(f.Payload)-handshakeFixed)
	return Handshake{
		VersionMask: binary.LittleEndian.Uint16(fixed[0:]),
		MTU:         binary.LittleEndian.Uint16(fixed[2:]),
		TimeoutMS:   binary.LittleEndian.Uint32(fixed[4:]),
		AlgCodes:    f.Payload[handshakeFixed : handshakeFixed+count],
	}, nil
}

// Reassemble concatenates fragment payloads into dst in the order given,
// dropping what does not fit. It stops at the first fragment without
// FlagMore and reports whether one was seen.
func Reassemble(dst []byte, frames ...Frame) (int, bool) {
	n := 0
	for _, f := range frames {
		sizedarray.SpliceInto(dst, f.Payload, n)
		n = min(n+len(f.Payload), len(dst))
		if !f.More() {
			return n, true
		}
	}
	return n, false
}
