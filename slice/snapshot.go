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
	"fmt"

	"github.com/Fantom-foundation/trieslice/common"
)

// Kind distinguishes state slices, which ship contract information for
// their leaves, from storage slices, which only ship trie nodes.
type Kind int

const (
	StorageSlice Kind = iota
	StateSlice
)

func (k Kind) String() string {
	switch k {
	case StorageSlice:
		return "storage"
	case StateSlice:
		return "state"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Snapshot is an immutable trie slice as handed out by a producer. Every
// optional section is fixed at construction time.
type Snapshot struct {
	id        string
	metadata  common.Optional[Metadata]
	trieNodes common.Optional[Nodes]
	leaves    common.Optional[Leaves]
}

// NewSnapshot creates a snapshot from its sections. The id is kept as given;
// see Id for its canonical form.
func NewSnapshot(
	id string,
	metadata common.Optional[Metadata],
	trieNodes common.Optional[Nodes],
	leaves common.Optional[Leaves],
) Snapshot {
	return Snapshot{
		id:        id,
		metadata:  metadata,
		trieNodes: trieNodes,
		leaves:    leaves,
	}
}

// Id returns the slice id, <path>-<maxDepth>-<trieRootHash>.
func (s Snapshot) Id() string {
	return s.id
}

func (s Snapshot) Metadata() common.Optional[Metadata] {
	return s.metadata
}

func (s Snapshot) TrieNodes() common.Optional[Nodes] {
	return s.trieNodes
}

func (s Snapshot) Leaves() common.Optional[Leaves] {
	return s.leaves
}

func (s Snapshot) Kind() Kind {
	if s.leaves.Present() {
		return StateSlice
	}
	return StorageSlice
}

func (s Snapshot) Equal(other Snapshot) bool {
	return s.id == other.id &&
		optionalEqual(s.metadata, other.metadata, Metadata.Equal) &&
		optionalEqual(s.trieNodes, other.trieNodes, Nodes.Equal) &&
		optionalEqual(s.leaves, other.leaves, Leaves.Equal)
}

func (s Snapshot) String() string {
	nodes := 0
	if n, present := s.trieNodes.Get(); present {
		nodes = n.Len()
	}
	leaves := 0
	if l, present := s.leaves.Get(); present {
		leaves = l.Len()
	}
	return fmt.Sprintf("%s slice %s (%d nodes, %d leaves)", s.Kind(), s.id, nodes, leaves)
}
