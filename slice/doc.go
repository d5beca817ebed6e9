// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package slice implements the data model and the canonical JSON codec of
// trie slices.
//
// A trie slice is a bounded region of a Merkle-Patricia trie, identified by
// the nibble path of its head, a maximum depth and the root hash of the
// trie. Its document carries the stem (all nodes from the root down to the
// head, excluding it), the head node(s), optionally the interior slice nodes
// and, for state slices, the storage root and code of the contracts found
// in the leaves. Optional metadata reports timings and node counts captured
// by the producer of the slice.
//
// Snapshots are immutable values. They are created once by a producer,
// typically through a Builder, and are safe to share between goroutines.
// Encoding is a pure function of the snapshot: mapping keys are explicitly
// sorted so that equal snapshots always produce byte-identical documents.
package slice
