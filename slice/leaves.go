// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package slice

import (
	"github.com/Fantom-foundation/trieslice/common"
	"github.com/Fantom-foundation/trieslice/common/immutable"
	"golang.org/x/exp/maps"
)

// Contract is the information shipped for a smart contract found in a leaf
// of a state slice.
type Contract struct {
	StorageRoot common.Hash
	EvmCode     immutable.Bytes
}

func NewContract(storageRoot common.Hash, code []byte) Contract {
	return Contract{StorageRoot: storageRoot, EvmCode: immutable.NewBytes(code)}
}

// Leaves is an immutable mapping of the trie keys of contracts to their
// storage roots and code.
type Leaves struct {
	contracts map[common.Hash]Contract
}

func NewLeaves(contracts map[common.Hash]Contract) Leaves {
	return Leaves{contracts: maps.Clone(contracts)}
}

func (l Leaves) Len() int {
	return len(l.contracts)
}

func (l Leaves) Get(key common.Hash) (Contract, bool) {
	contract, found := l.contracts[key]
	return contract, found
}

// Keys returns the trie keys of all contracts in ascending byte-wise order.
func (l Leaves) Keys() []common.Hash {
	return sortedHashes(l.contracts)
}

// ForEach calls the given function for each contract in ascending key order.
func (l Leaves) ForEach(f func(common.Hash, Contract)) {
	for _, key := range l.Keys() {
		f(key, l.contracts[key])
	}
}

func (l Leaves) Equal(other Leaves) bool {
	return maps.Equal(l.contracts, other.contracts)
}
