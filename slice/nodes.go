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
	"sort"

	"github.com/Fantom-foundation/trieslice/common"
	"github.com/Fantom-foundation/trieslice/common/immutable"
	"golang.org/x/exp/maps"
)

// NodeSet is an immutable mapping of node hashes to RLP encoded trie nodes.
type NodeSet struct {
	nodes map[common.Hash]immutable.Bytes
}

// NewNodeSet creates a node set holding copies of the given payloads.
func NewNodeSet(nodes map[common.Hash][]byte) NodeSet {
	res := make(map[common.Hash]immutable.Bytes, len(nodes))
	for hash, payload := range nodes {
		res[hash] = immutable.NewBytes(payload)
	}
	return NodeSet{nodes: res}
}

// copyNodeSet creates a node set from payloads that are already immutable.
func copyNodeSet(nodes map[common.Hash]immutable.Bytes) NodeSet {
	return NodeSet{nodes: maps.Clone(nodes)}
}

func (s NodeSet) Len() int {
	return len(s.nodes)
}

func (s NodeSet) Get(hash common.Hash) (immutable.Bytes, bool) {
	payload, found := s.nodes[hash]
	return payload, found
}

func (s NodeSet) Contains(hash common.Hash) bool {
	_, found := s.nodes[hash]
	return found
}

// Hashes returns the hashes of all nodes in ascending byte-wise order.
func (s NodeSet) Hashes() []common.Hash {
	return sortedHashes(s.nodes)
}

// ForEach calls the given function for each node in ascending hash order.
func (s NodeSet) ForEach(f func(common.Hash, immutable.Bytes)) {
	for _, hash := range s.Hashes() {
		f(hash, s.nodes[hash])
	}
}

func (s NodeSet) Equal(other NodeSet) bool {
	return maps.Equal(s.nodes, other.nodes)
}

// Nodes groups the trie nodes of a slice: the stem from the trie root
// (inclusive) to the slice head (exclusive), the head, and optionally the
// interior nodes of the slice.
type Nodes struct {
	stem  NodeSet
	head  NodeSet
	slice common.Optional[NodeSet]
}

func NewNodes(stem, head NodeSet, slice common.Optional[NodeSet]) Nodes {
	return Nodes{stem: stem, head: head, slice: slice}
}

func (n Nodes) Stem() NodeSet {
	return n.stem
}

func (n Nodes) Head() NodeSet {
	return n.head
}

// Slice returns the interior nodes of the slice, absent if only stem and
// head were requested.
func (n Nodes) Slice() common.Optional[NodeSet] {
	return n.slice
}

// Len returns the total number of nodes in all sections.
func (n Nodes) Len() int {
	res := n.stem.Len() + n.head.Len()
	if slice, present := n.slice.Get(); present {
		res += slice.Len()
	}
	return res
}

func (n Nodes) Equal(other Nodes) bool {
	return n.stem.Equal(other.stem) &&
		n.head.Equal(other.head) &&
		optionalEqual(n.slice, other.slice, NodeSet.Equal)
}

// sortedHashes returns the keys of the given map in ascending byte-wise
// order. Encoding relies on this explicit sort, not on map iteration order.
func sortedHashes[V any](m map[common.Hash]V) []common.Hash {
	hashes := maps.Keys(m)
	var comparator common.HashComparator
	sort.Slice(hashes, func(i, j int) bool { return comparator.Compare(&hashes[i], &hashes[j]) < 0 })
	return hashes
}

func optionalEqual[T any](a, b common.Optional[T], equal func(T, T) bool) bool {
	x, xPresent := a.Get()
	y, yPresent := b.Get()
	if xPresent != yPresent {
		return false
	}
	return !xPresent || equal(x, y)
}
