// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package rlp

import (
	"fmt"

	"github.com/Fantom-foundation/trieslice/common"
)

// The definition of the RLP encoding can be found here:
// https://ethereum.org/en/developers/docs/data-structures-and-encoding/rlp
//
// This package covers the subset needed to inspect trie node payloads
// shipped in slices: a bounds-checked decoder, a check for the shape of MPT
// nodes, and an encoder used to produce well-formed nodes.

// ErrMalformed is returned for any input that is not a single, complete
// RLP item.
const ErrMalformed = common.ConstError("malformed RLP")

// Item is an interface for everything that can be RLP encoded by this package.
type Item interface {
	// write writes the RLP encoding of this item to the given writer.
	write(writer) writer

	// getEncodedLength computes the encoded length of this item in bytes.
	getEncodedLength() int
}

// String is the atomic ground type of an RLP structure representing a
// (potentially empty) string of bytes.
type String struct {
	Str []byte
}

// List composes a list of items into a new item.
type List struct {
	Items []Item
}

// Encode serializes the given item structure.
func Encode(item Item) []byte {
	return item.write(make(writer, 0, item.getEncodedLength()))
}

// Decode parses the given input, which must contain exactly one RLP item.
func Decode(rlp []byte) (Item, error) {
	item, consumed, err := decode(rlp)
	if err != nil {
		return nil, err
	}
	if consumed != uint64(len(rlp)) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, uint64(len(rlp))-consumed)
	}
	return item, nil
}

// decode decodes the first RLP item of the given stream and returns it
// together with the number of consumed bytes.
func decode(rlp []byte) (Item, uint64, error) {
	if len(rlp) == 0 {
		return nil, 0, fmt.Errorf("%w: input is empty", ErrMalformed)
	}

	l := rlp[0]
	switch {
	case l < 0x80: // single byte
		return String{Str: rlp[0:1]}, 1, nil

	case l < 0xb8: // short string
		length := uint64(l - 0x80)
		if err := checkAvailable(rlp, 1, length); err != nil {
			return nil, 0, err
		}
		return String{Str: rlp[1 : 1+length]}, 1 + length, nil

	case l < 0xc0: // long string
		offset, length, err := readLongSize(rlp, l-0xb7)
		if err != nil {
			return nil, 0, err
		}
		return String{Str: rlp[offset : offset+length]}, offset + length, nil

	case l < 0xf8: // short list
		length := uint64(l - 0xc0)
		if err := checkAvailable(rlp, 1, length); err != nil {
			return nil, 0, err
		}
		items, err := decodeList(rlp[1 : 1+length])
		return List{Items: items}, 1 + length, err

	default: // long list
		offset, length, err := readLongSize(rlp, l-0xf7)
		if err != nil {
			return nil, 0, err
		}
		items, err := decodeList(rlp[offset : offset+length])
		return List{Items: items}, offset + length, err
	}
}

// decodeList decodes the items of a list whose length prefix has already
// been removed.
func decodeList(rlp []byte) ([]Item, error) {
	items := make([]Item, 0, 17)
	for len(rlp) > 0 {
		item, consumed, err := decode(rlp)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		rlp = rlp[consumed:]
	}
	return items, nil
}

// readLongSize reads the big-endian length of a long string or list,
// stored in sizeLength bytes after the prefix byte.
func readLongSize(rlp []byte, sizeLength byte) (offset uint64, length uint64, err error) {
	if int(sizeLength) > len(rlp)-1 {
		return 0, 0, fmt.Errorf("%w: expected %d length bytes, got %d", ErrMalformed, sizeLength, len(rlp)-1)
	}
	for _, b := range rlp[1 : 1+sizeLength] {
		length = length<<8 | uint64(b)
	}
	offset = 1 + uint64(sizeLength)
	if err := checkAvailable(rlp, offset, length); err != nil {
		return 0, 0, err
	}
	return offset, length, nil
}

func checkAvailable(rlp []byte, offset, length uint64) error {
	if available := uint64(len(rlp)) - offset; length > available {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformed, length, available)
	}
	return nil
}

// ----------------------------------------------------------------------------
//                                Encoding
// ----------------------------------------------------------------------------

// writer is a specialized writer for this package writing encoded RLP
// content in a pre-allocated buffer.
type writer []byte

func (w writer) Write(data []byte) writer {
	return append(w, data...)
}

func (w writer) Put(c byte) writer {
	return append(w, c)
}

func (s String) write(writer writer) writer {
	l := len(s.Str)
	// Single-element strings are encoded as a single byte if the
	// value is small enough.
	if l == 1 && s.Str[0] < 0x80 {
		return writer.Write(s.Str)
	}
	writer = encodeLength(l, 0x80, writer)
	return writer.Write(s.Str)
}

func (s String) getEncodedLength() int {
	l := len(s.Str)
	if l == 1 && s.Str[0] < 0x80 {
		return 1
	}
	return l + getEncodedLengthLength(l)
}

func (l List) write(writer writer) writer {
	length := 0
	for _, item := range l.Items {
		length += item.getEncodedLength()
	}
	writer = encodeLength(length, 0xc0, writer)
	for _, item := range l.Items {
		writer = item.write(writer)
	}
	return writer
}

func (l List) getEncodedLength() int {
	sum := 0
	for _, item := range l.Items {
		sum += item.getEncodedLength()
	}
	return sum + getEncodedLengthLength(sum)
}

// encodeLength encodes the length prefix of a string or list.
func encodeLength(length int, offset byte, writer writer) writer {
	if length < 56 {
		return writer.Put(offset + byte(length))
	}
	numBytesForLength := getNumBytes(uint64(length))
	writer = writer.Put(offset + 55 + numBytesForLength)
	for i := byte(0); i < numBytesForLength; i++ {
		writer = writer.Put(byte(length >> (8 * (numBytesForLength - i - 1))))
	}
	return writer
}

// getNumBytes computes the minimum number of bytes required to represent
// the given value in big-endian encoding.
func getNumBytes(value uint64) byte {
	if value == 0 {
		return 0
	}
	for res := byte(1); ; res++ {
		if value >>= 8; value == 0 {
			return res
		}
	}
}

func getEncodedLengthLength(length int) int {
	if length < 56 {
		return 1
	}
	return int(getNumBytes(uint64(length))) + 1
}
