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
	"context"
)

//go:generate mockgen -source producer.go -destination producer_mocks.go -package slice

// Request describes the slice a Producer is asked to build.
type Request struct {
	Id              Id
	IncludeMetadata bool // record timings and node counts
	IncludeNodes    bool // ship stem and head nodes
	IncludeSlice    bool // ship the interior slice nodes, requires IncludeNodes
	IncludeLeaves   bool // ship contract information, state slices only
}

// Producer builds slices, typically by walking a trie stored in some
// database. Implementations are expected to enforce path validity, depth
// limits and root consistency; the returned snapshot is taken as is.
type Producer interface {
	// ProduceSlice builds the slice described by the request. The id of the
	// resulting snapshot must be the canonical form of the requested id.
	ProduceSlice(ctx context.Context, request Request) (Snapshot, error)
}
