// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package encoding

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"math/bits"
)

// MaxVarLen64 is the maximum number of bytes of a variable-length encoded
// 64-bit integer. The 9th byte carries the 8 most significant bits directly,
// with no continuation bit.
const MaxVarLen64 = 9

var errVarint32Overflow = errors.New("varint overflows a 32-bit integer")

// EncodeUvarint64 serializes a 64-bit unsigned integer 7 bits at a time,
// starting with the least significant bits. The most significant bit of each
// output byte, except the last possible one, is the continuation bit.
func EncodeUvarint64(b *[]byte, v uint64) {
	for i := 0; i < MaxVarLen64-1; i++ {
		if v < 0x80 {
			*b = append(*b, byte(v))
			return
		}
		*b = append(*b, byte(v)|0x80)
		v >>= 7
	}
	*b = append(*b, byte(v))
}

// DecodeUvarint64 deserializes 64-bit unsigned integers that have been
// encoded using EncodeUvarint64, advancing the input.
func DecodeUvarint64(b *[]byte) (uint64, error) {
	x := uint64(0)
	s := uint(0)
	for i := 0; ; i++ {
		if i >= len(*b) {
			return 0, io.EOF
		}
		n := (*b)[i]
		if n < 0x80 || i == MaxVarLen64-1 {
			*b = (*b)[i+1:]
			return x | uint64(n)<<s, nil
		}
		x |= uint64(n&0x7F) << s
		s += 7
	}
}

// Uvarint64Size returns the number of bytes that EncodeUvarint64 produces for
// the given value.
func Uvarint64Size(v uint64) int {
	numBits := 64 - bits.LeadingZeros64(v)
	if numBits == 0 {
		return 1
	}
	size := (numBits + 6) / 7
	if size > MaxVarLen64 {
		return MaxVarLen64
	}
	return size
}

// EncodeVarint64 serializes a 64-bit signed integer with zig-zag encoding,
// so that numbers of low absolute value require few bytes.
func EncodeVarint64(b *[]byte, v int64) {
	EncodeUvarint64(b, uint64(v>>63)^uint64(v<<1))
}

// DecodeVarint64 deserializes 64-bit signed integers that have been encoded
// using EncodeVarint64, advancing the input.
func DecodeVarint64(b *[]byte) (int64, error) {
	v, err := DecodeUvarint64(b)
	return int64(v>>1) ^ -int64(v&1), err
}

// Varint64Size returns the number of bytes that EncodeVarint64 produces for
// the given value.
func Varint64Size(v int64) int {
	return Uvarint64Size(uint64(v>>63) ^ uint64(v<<1))
}

// DecodeVarint32 deserializes a signed integer that has been encoded using
// EncodeVarint64, failing if it does not fit in 32 bits.
func DecodeVarint32(b *[]byte) (int32, error) {
	v, err := DecodeVarint64(b)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, errVarint32Overflow
	}
	return int32(v), nil
}

// EncodeFloat64LE serializes a float64 as its 8-byte little-endian bit
// pattern.
func EncodeFloat64LE(b *[]byte, v float64) {
	*b = append(*b, make([]byte, 8)...)
	binary.LittleEndian.PutUint64((*b)[len(*b)-8:], math.Float64bits(v))
}

// DecodeFloat64LE deserializes float64 values that have been encoded using
// EncodeFloat64LE, advancing the input.
func DecodeFloat64LE(b *[]byte) (float64, error) {
	if len(*b) < 8 {
		return 0, io.EOF
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(*b))
	*b = (*b)[8:]
	return v, nil
}
