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

// ErrNotANode is returned for well-formed RLP that does not have the shape
// of an MPT node.
const ErrNotANode = common.ConstError("not a trie node")

const (
	shortNodeItems  = 2  // leaf and extension nodes: [path, value/child]
	branchNodeItems = 17 // branch nodes: 16 children + value
)

// NodeKind classifies the RLP encoding of an MPT node by its shape.
type NodeKind int

const (
	ShortNode NodeKind = iota
	BranchNode
)

func (k NodeKind) String() string {
	switch k {
	case ShortNode:
		return "short"
	case BranchNode:
		return "branch"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// CheckNode verifies that the given payload is the RLP encoding of an MPT
// node, a list of either 2 or 17 items, and reports its kind.
func CheckNode(payload []byte) (NodeKind, error) {
	item, err := Decode(payload)
	if err != nil {
		return 0, err
	}
	list, ok := item.(List)
	if !ok {
		return 0, fmt.Errorf("%w: top-level item is a string", ErrNotANode)
	}
	switch len(list.Items) {
	case shortNodeItems:
		if _, ok := list.Items[0].(String); !ok {
			return 0, fmt.Errorf("%w: path of short node is a list", ErrNotANode)
		}
		return ShortNode, nil
	case branchNodeItems:
		return BranchNode, nil
	}
	return 0, fmt.Errorf("%w: list with %d items", ErrNotANode, len(list.Items))
}
