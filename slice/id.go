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
	"strconv"
	"strings"

	"github.com/Fantom-foundation/trieslice/common"
)

// Id identifies a slice by the nibble path of its head, the maximum depth
// of the slice below the head, and the root hash of the trie.
type Id struct {
	Path     string // hex nibbles, one character per nibble
	MaxDepth int
	Root     common.Hash
}

// String renders the id in its canonical form <path>-<maxDepth>-<root>,
// where the root is given as 64 lowercase hex digits without prefix.
func (id Id) String() string {
	return fmt.Sprintf("%s-%d-%x", id.Path, id.MaxDepth, id.Root[:])
}

// Validate checks that the path consists of hex nibbles and the depth is
// not negative.
func (id Id) Validate() error {
	for i, c := range id.Path {
		if !isHexDigit(c) {
			return fmt.Errorf("%w: invalid nibble %q at position %d of path %q", ErrMalformedId, c, i, id.Path)
		}
	}
	if id.MaxDepth < 0 {
		return fmt.Errorf("%w: negative depth %d", ErrMalformedId, id.MaxDepth)
	}
	return nil
}

// ParseId parses a slice id of the form <path>-<maxDepth>-<root>. The path
// may be empty for slices starting at the trie root.
func ParseId(str string) (Id, error) {
	parts := strings.Split(str, "-")
	if len(parts) != 3 {
		return Id{}, fmt.Errorf("%w: %q does not have the form <path>-<depth>-<root>", ErrMalformedId, str)
	}
	depth, err := strconv.Atoi(parts[1])
	if err != nil || !isDecimal(parts[1]) {
		return Id{}, fmt.Errorf("%w: invalid depth %q", ErrMalformedId, parts[1])
	}
	if len(parts[2]) != 2*common.HashLength {
		return Id{}, fmt.Errorf("%w: root %q is not %d hex digits", ErrMalformedId, parts[2], 2*common.HashLength)
	}
	root, err := common.HashFromHex("0x" + parts[2])
	if err != nil {
		return Id{}, fmt.Errorf("%w: invalid root: %v", ErrMalformedId, err)
	}
	id := Id{Path: parts[0], MaxDepth: depth, Root: root}
	if err := id.Validate(); err != nil {
		return Id{}, err
	}
	return id, nil
}

func isHexDigit(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isDecimal(str string) bool {
	for _, c := range str {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(str) > 0
}
