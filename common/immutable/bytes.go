// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package immutable

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Bytes is an immutable slice of bytes that can be trivially cloned.
// It is used for trie node payloads and contract code; once created, the
// content can no longer be modified by the producer that supplied it.
type Bytes struct {
	data string
}

// NewBytes creates a new Bytes from a slice of bytes. The input is copied.
func NewBytes(data []byte) Bytes {
	return Bytes{data: string(data)}
}

// ToBytes returns a fresh copy of the content.
func (b Bytes) ToBytes() []byte {
	return []byte(b.data)
}

func (b Bytes) Len() int {
	return len(b.data)
}

// Hex renders the content as 0x-prefixed lowercase hex. All bytes are
// encoded, including leading zeros; empty content renders as "0x".
func (b Bytes) Hex() string {
	return hexutil.Encode([]byte(b.data))
}

func (b Bytes) String() string {
	return b.Hex()
}

func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(b.Hex()), nil
}

func (b *Bytes) UnmarshalText(text []byte) error {
	data, err := hexutil.Decode(string(text))
	if err != nil {
		return err
	}
	*b = NewBytes(data)
	return nil
}
