// SPDX-License-Identifier: MIT

// Package cplx: raw bit-level access.
//
// Encoding:
//   - A value is Size[N]() bytes: the IEEE-754 bit pattern of Real followed
//     by that of Imaginary, each ByteSize[N]() bytes wide.
//   - Byte order is little-endian unless WithByteOrder / WithNativeOrder says
//     otherwise. NaN payloads and the sign of zero survive a round trip.
//
// Bitwise operators combine two encodings byte by byte and decode the
// result. Both operands and the result share one encoding, so the outcome
// does not depend on the host.
package cplx

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/complexn/number"
)

// maxSize is the encoded size of Complex[float64], the widest layout.
const maxSize = 16

// Size returns the encoded size of Complex[N] in bytes (8 or 16).
func Size[N number.Float]() int {
	return 2 * number.ByteSize[N]()
}

// Bytes returns the encoding of c in a fresh slice.
//
// Options: WithByteOrder, WithNativeOrder.
func (c Complex[N]) Bytes(opts ...Option) []byte {
	return c.AppendBytes(make([]byte, 0, Size[N]()), opts...)
}

// AppendBytes appends the encoding of c to dst and returns the extended slice.
func (c Complex[N]) AppendBytes(dst []byte, opts ...Option) []byte {
	var buf [maxSize]byte
	n := encode(buf[:], c, gatherOptions(opts...).order)

	return append(dst, buf[:n]...)
}

// FromBytes decodes a value from exactly Size[N]() bytes.
// Any other length fails with ErrSizeMismatch.
//
// Options: WithByteOrder, WithNativeOrder.
func FromBytes[N number.Float](b []byte, opts ...Option) (Complex[N], error) {
	if want := Size[N](); len(b) != want {
		return Complex[N]{}, cplxErrorf("FromBytes",
			fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(b), want))
	}

	return decode[N](b, gatherOptions(opts...).order), nil
}

// MarshalBinary implements encoding.BinaryMarshaler (little-endian).
func (c Complex[N]) MarshalBinary() ([]byte, error) {
	return c.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler (little-endian).
// On error the receiver is left unchanged.
func (c *Complex[N]) UnmarshalBinary(data []byte) error {
	v, err := FromBytes[N](data)
	if err != nil {
		return cplxErrorf("UnmarshalBinary", err)
	}
	*c = v

	return nil
}

// BitAnd returns the byte-wise AND of the encodings of c and other.
func (c Complex[N]) BitAnd(other Complex[N]) Complex[N] {
	return bitwise(c, other, func(x, y byte) byte { return x & y })
}

// BitOr returns the byte-wise OR of the encodings of c and other.
func (c Complex[N]) BitOr(other Complex[N]) Complex[N] {
	return bitwise(c, other, func(x, y byte) byte { return x | y })
}

// BitXor returns the byte-wise XOR of the encodings of c and other.
func (c Complex[N]) BitXor(other Complex[N]) Complex[N] {
	return bitwise(c, other, func(x, y byte) byte { return x ^ y })
}

// BitAndAssign sets c to c.BitAnd(other).
func (c *Complex[N]) BitAndAssign(other Complex[N]) { *c = c.BitAnd(other) }

// BitOrAssign sets c to c.BitOr(other).
func (c *Complex[N]) BitOrAssign(other Complex[N]) { *c = c.BitOr(other) }

// BitXorAssign sets c to c.BitXor(other).
func (c *Complex[N]) BitXorAssign(other Complex[N]) { *c = c.BitXor(other) }

// At returns a pointer to the real (false) or imaginary (true) component.
func (c *Complex[N]) At(imaginary bool) *N {
	if imaginary {
		return &c.Imaginary
	}

	return &c.Real
}

// Component returns the real (false) or imaginary (true) component.
func (c Complex[N]) Component(imaginary bool) N {
	if imaginary {
		return c.Imaginary
	}

	return c.Real
}

// bitwise combines the little-endian encodings of a and b with op.
func bitwise[N number.Float](a, b Complex[N], op func(x, y byte) byte) Complex[N] {
	var ab, bb [maxSize]byte
	n := encode(ab[:], a, binary.LittleEndian)
	encode(bb[:], b, binary.LittleEndian)
	for i := 0; i < n; i++ {
		ab[i] = op(ab[i], bb[i])
	}

	return decode[N](ab[:n], binary.LittleEndian)
}

// encode writes c into dst (len >= Size[N]()) and returns the bytes written.
func encode[N number.Float](dst []byte, c Complex[N], order binary.ByteOrder) int {
	w := number.ByteSize[N]()
	putComponent(dst[:w], c.Real, order)
	putComponent(dst[w:2*w], c.Imaginary, order)

	return 2 * w
}

// decode reads a value from src (len == Size[N]()).
func decode[N number.Float](src []byte, order binary.ByteOrder) Complex[N] {
	w := number.ByteSize[N]()

	return Complex[N]{
		Real:      getComponent[N](src[:w], order),
		Imaginary: getComponent[N](src[w:2*w], order),
	}
}

func putComponent[N number.Float](dst []byte, v N, order binary.ByteOrder) {
	if number.ByteSize[N]() == 4 {
		order.PutUint32(dst, math.Float32bits(float32(v)))
		return
	}
	order.PutUint64(dst, math.Float64bits(float64(v)))
}

func getComponent[N number.Float](src []byte, order binary.ByteOrder) N {
	if number.ByteSize[N]() == 4 {
		return N(math.Float32frombits(order.Uint32(src)))
	}

	return N(math.Float64frombits(order.Uint64(src)))
}
