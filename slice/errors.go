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

const (
	ErrMalformedId         = common.ConstError("malformed slice id")
	ErrHashMismatch        = common.ConstError("node hash mismatch")
	ErrMalformedNode       = common.ConstError("malformed trie node")
	ErrRootMissing         = common.ConstError("trie root not covered by slice")
	ErrOverlappingSections = common.ConstError("node present in multiple sections")

	errMissingField = common.ConstError("missing field")
	errDuplicateKey = common.ConstError("duplicate key")
	errNotAnObject  = common.ConstError("not a JSON object")
	errTrailingData = common.ConstError("unexpected data after JSON object")
	errInvalidUtf8  = common.ConstError("string is not valid UTF-8")
)

// EncodingError is reported when a hash or byte payload of a slice document
// cannot be rendered or parsed, for instance a hash that is not exactly 32
// bytes long. It signals malformed input from a producer or a corrupted
// document, not a recoverable runtime condition.
type EncodingError struct {
	Field string // path of the offending field, e.g. "trie-nodes.stem"
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error in %s: %v", e.Field, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
