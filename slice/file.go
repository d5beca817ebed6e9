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
	"os"
)

// ReadFile reads and decodes a slice document stored in the given file.
func ReadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	return Decode(data)
}

// WriteFile encodes the snapshot into the given file. If indent is set, the
// document is indented by tabs; the content is otherwise identical.
func WriteFile(path string, s Snapshot, indent bool) error {
	var data []byte
	var err error
	if indent {
		data, err = EncodeIndent(s, "", "\t")
	} else {
		data, err = Encode(s)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
