package match

import (
	"encoding/binary"

	"github.com/parsekit/comb"
)

// The numeric readers are streaming-style: when the input holds fewer
// bytes than the value needs, they signal that more input is required and
// how much, rather than reporting a mismatch. Run one inside
// multi.LengthValue to get the complete-input behavior instead.

func needBytes(n int, in comb.Bytes) *comb.Err {
	return &comb.Err{Class: comb.MoreInput, Kind: comb.KindUint, Needed: uint(n - in.Len())}
}

// Uint8 returns a parser that reads one byte as an unsigned integer.
func Uint8() comb.Parser[comb.Bytes, uint8] {
	return func(in comb.Bytes) (comb.Bytes, uint8, error) {
		if in.Len() < 1 {
			return in, 0, needBytes(1, in)
		}
		_, rest := in.SplitAt(1)
		return rest, in[0], nil
	}
}

// BeUint16 returns a parser that reads a big-endian uint16.
func BeUint16() comb.Parser[comb.Bytes, uint16] {
	return func(in comb.Bytes) (comb.Bytes, uint16, error) {
		if in.Len() < 2 {
			return in, 0, needBytes(2, in)
		}
		prefix, rest := in.SplitAt(2)
		return rest, binary.BigEndian.Uint16(prefix), nil
	}
}

// BeUint32 returns a parser that reads a big-endian uint32.
func BeUint32() comb.Parser[comb.Bytes, uint32] {
	return func(in comb.Bytes) (comb.Bytes, uint32, error) {
		if in.Len() < 4 {
			return in, 0, needBytes(4, in)
		}
		prefix, rest := in.SplitAt(4)
		return rest, binary.BigEndian.Uint32(prefix), nil
	}
}

// LeUint16 returns a parser that reads a little-endian uint16.
func LeUint16() comb.Parser[comb.Bytes, uint16] {
	return func(in comb.Bytes) (comb.Bytes, uint16, error) {
		if in.Len() < 2 {
			return in, 0, needBytes(2, in)
		}
		prefix, rest := in.SplitAt(2)
		return rest, binary.LittleEndian.Uint16(prefix), nil
	}
}

// LeUint32 returns a parser that reads a little-endian uint32.
func LeUint32() comb.Parser[comb.Bytes, uint32] {
	return func(in comb.Bytes) (comb.Bytes, uint32, error) {
		if in.Len() < 4 {
			return in, 0, needBytes(4, in)
		}
		prefix, rest := in.SplitAt(4)
		return rest, binary.LittleEndian.Uint32(prefix), nil
	}
}
