// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// ConstError is a string based error type for sentinel errors. Being a
// string, values of it can be declared as constants and compared with
// errors.Is after wrapping.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// ErrInvalidHashLength is reported whenever a byte sequence that should
// be interpreted as a hash does not have exactly HashLength bytes.
const ErrInvalidHashLength = ConstError("invalid hash length")
