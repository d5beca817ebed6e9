// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package archive

import (
	"github.com/syndtr/goleveldb/leveldb/util"
)

// tableSpace divides the key space of the database by prefixing keys.
type tableSpace byte

const (
	// documentKey is the table space of encoded slice documents, keyed by
	// their slice id.
	documentKey tableSpace = 'S'
)

// dbKey is a key of the document table, it consists of
//   - the table space
//   - the slice id as given by the document
type dbKey []byte

func toDbKey(id string) dbKey {
	key := make(dbKey, 0, 1+len(id))
	key = append(key, byte(documentKey))
	return append(key, id...)
}

func (k dbKey) id() string {
	return string(k[1:])
}

// documentRange provides the key range covering all stored documents.
func documentRange() *util.Range {
	return util.BytesPrefix([]byte{byte(documentKey)})
}
