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

import "fmt"

// Optional is a value that may or may not be present. It is used wherever
// "absent" must remain distinguishable from an empty value, for instance an
// absent mapping versus a present but empty one.
type Optional[T any] struct {
	value   T
	present bool
}

// Some creates a present optional holding the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None creates an absent optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the contained value and whether it is present. For absent
// optionals the zero value of T is returned.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) Present() bool {
	return o.present
}

// GetOr returns the contained value, or the given default if absent.
func (o Optional[T]) GetOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o Optional[T]) String() string {
	if !o.present {
		return "none"
	}
	return fmt.Sprintf("some(%v)", o.value)
}
