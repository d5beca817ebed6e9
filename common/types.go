// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// HashLength is the number of bytes of a trie node or storage root hash.
const HashLength = 32

// Hash is a 32-byte keccak256 hash identifying trie nodes, trie roots and
// slice leaves.
type Hash [HashLength]byte

// HashFromBytes converts the given bytes into a hash. The input must be
// exactly HashLength bytes long.
func HashFromBytes(data []byte) (Hash, error) {
	var res Hash
	if len(data) != HashLength {
		return res, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidHashLength, len(data), HashLength)
	}
	copy(res[:], data)
	return res, nil
}

// HashFromHex parses a 0x-prefixed hex string into a hash.
func HashFromHex(str string) (Hash, error) {
	data, err := hexutil.Decode(str)
	if err != nil {
		return Hash{}, err
	}
	return HashFromBytes(data)
}

// HashFromString parses a hex string, with or without 0x prefix, into a
// hash. It is intended for constants and tests and panics on malformed input.
func HashFromString(str string) Hash {
	if !has0xPrefix(str) {
		str = "0x" + str
	}
	hash, err := HashFromHex(str)
	if err != nil {
		panic(fmt.Sprintf("invalid hash %q: %v", str, err))
	}
	return hash
}

func has0xPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

// Compare orders hashes byte-wise. The result is negative if h < other,
// zero if they are equal and positive otherwise.
func (h Hash) Compare(other *Hash) int {
	return bytes.Compare(h[:], other[:])
}

// Hex renders the hash as 0x-prefixed lowercase hex, including leading zeros.
func (h Hash) Hex() string {
	return hexutil.Encode(h[:])
}

func (h Hash) String() string {
	return h.Hex()
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	hash, err := HashFromHex(string(text))
	if err != nil {
		return err
	}
	*h = hash
	return nil
}

// HashComparator implements a byte-wise order on hashes for generic code
// requiring a comparator object.
type HashComparator struct{}

func (HashComparator) Compare(a, b *Hash) int {
	return a.Compare(b)
}
