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
)

// Builder assembles a snapshot incrementally. It is meant to be used by
// producers walking a trie; payloads are copied when added, so buffers may
// be reused right away, and Build copies the collected sets so that the
// resulting snapshot is unaffected by later use of the builder.
type Builder struct {
	id        string
	metadata  common.Optional[Metadata]
	withNodes bool
	stem      map[common.Hash]immutable.Bytes
	head      map[common.Hash]immutable.Bytes
	slice     map[common.Hash]immutable.Bytes // nil if absent
	leaves    map[common.Hash]Contract        // nil if absent
}

func NewBuilder(id string) *Builder {
	return &Builder{
		id:   id,
		stem: map[common.Hash]immutable.Bytes{},
		head: map[common.Hash]immutable.Bytes{},
	}
}

func (b *Builder) SetMetadata(metadata Metadata) *Builder {
	b.metadata = common.Some(metadata)
	return b
}

// WithTrieNodes marks the trie nodes section as present, even if no node is
// added. If includeSlice is set, the slice nodes are marked present as well.
func (b *Builder) WithTrieNodes(includeSlice bool) *Builder {
	b.withNodes = true
	if includeSlice && b.slice == nil {
		b.slice = map[common.Hash]immutable.Bytes{}
	}
	return b
}

// WithLeaves marks the snapshot as a state slice, even if no leaf is added.
func (b *Builder) WithLeaves() *Builder {
	if b.leaves == nil {
		b.leaves = map[common.Hash]Contract{}
	}
	return b
}

func (b *Builder) AddStemNode(hash common.Hash, payload []byte) *Builder {
	b.withNodes = true
	b.stem[hash] = immutable.NewBytes(payload)
	return b
}

func (b *Builder) AddHeadNode(hash common.Hash, payload []byte) *Builder {
	b.withNodes = true
	b.head[hash] = immutable.NewBytes(payload)
	return b
}

func (b *Builder) AddSliceNode(hash common.Hash, payload []byte) *Builder {
	b.WithTrieNodes(true)
	b.slice[hash] = immutable.NewBytes(payload)
	return b
}

func (b *Builder) AddLeaf(key common.Hash, contract Contract) *Builder {
	b.WithLeaves()
	b.leaves[key] = contract
	return b
}

func (b *Builder) Build() Snapshot {
	nodes := common.None[Nodes]()
	if b.withNodes {
		slice := common.None[NodeSet]()
		if b.slice != nil {
			slice = common.Some(copyNodeSet(b.slice))
		}
		nodes = common.Some(NewNodes(copyNodeSet(b.stem), copyNodeSet(b.head), slice))
	}
	leaves := common.None[Leaves]()
	if b.leaves != nil {
		leaves = common.Some(NewLeaves(b.leaves))
	}
	return NewSnapshot(b.id, b.metadata, nodes, leaves)
}
