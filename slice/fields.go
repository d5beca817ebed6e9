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

import "strings"

// Field names of slice documents. Every name is the kebab-case rendering of
// the logical field name; encoder and decoder only refer to these constants.
const (
	fieldSliceId     = "slice-id"
	fieldMetadata    = "metadata"
	fieldTrieNodes   = "trie-nodes"
	fieldLeaves      = "leaves"
	fieldTimings     = "time-ms"
	fieldNodeCounts  = "nodes-number"
	fieldStem        = "stem"
	fieldHead        = "head"
	fieldSlice       = "slice"
	fieldStorageRoot = "storage-root"
	fieldEvmCode     = "evm-code"
)

// fieldPath joins nested field names for error reporting.
func fieldPath(names ...string) string {
	return strings.Join(names, ".")
}
