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

import (
	"errors"
	"fmt"
	"testing"
)

func TestHashFromString(t *testing.T) {
	tests := []struct {
		input  string
		result Hash
	}{
		{"0000000000000000000000000000000000000000000000000000000000000000", Hash{}},
		{"1000000000000000000000000000000000000000000000000000000000000000", Hash{0x10}},
		{"0x1200000000000000000000000000000000000000000000000000000000000000", Hash{0x12}},
		{"123456789abcdefABCDEF0000000000000000000000000000000000000000000", Hash{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xfa, 0xbc, 0xde, 0xf0}},
	}

	for _, test := range tests {
		if got, want := HashFromString(test.input), test.result; got != want {
			t.Errorf("failed to parse %s: expected %v, got %v", test.input, want, got)
		}
	}
}

func TestHashFromString_PanicsOnMalformedInput(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic for a short hash")
		}
	}()
	HashFromString("0x1234")
}

func TestHashFromBytes_RejectsWrongLength(t *testing.T) {
	for _, size := range []int{0, 1, 31, 33, 64} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			_, err := HashFromBytes(make([]byte, size))
			if !errors.Is(err, ErrInvalidHashLength) {
				t.Errorf("unexpected error, got %v, want %v", err, ErrInvalidHashLength)
			}
		})
	}
}

func TestHashFromBytes_CopiesInput(t *testing.T) {
	data := make([]byte, HashLength)
	data[0] = 1
	hash, err := HashFromBytes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data[0] = 2
	if hash[0] != 1 {
		t.Errorf("hash shares memory with its input")
	}
}

func TestHashFromHex_RequiresPrefixAndValidDigits(t *testing.T) {
	tests := []string{
		"",
		"0x",
		"1000000000000000000000000000000000000000000000000000000000000000",
		"0x10000000000000000000000000000000000000000000000000000000000000",
		"0x100000000000000000000000000000000000000000000000000000000000000g",
	}
	for _, test := range tests {
		if _, err := HashFromHex(test); err == nil {
			t.Errorf("expected error for %q", test)
		}
	}
}

func TestHash_HexKeepsLeadingZeros(t *testing.T) {
	hash := Hash{0x00, 0x0a}
	want := "0x000a000000000000000000000000000000000000000000000000000000000000"
	if got := hash.Hex(); got != want {
		t.Errorf("unexpected hex, got %s, want %s", got, want)
	}
	if got := fmt.Sprintf("%v", hash); got != want {
		t.Errorf("unexpected string, got %s, want %s", got, want)
	}
}

func TestHash_TextRoundTrip(t *testing.T) {
	hash := HashFromString("8e9e2d4514bee72525133350201ecfc3da3815a4bb6b03ad5ff3bdd555363188")
	text, err := hash.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var restored Hash
	if err := restored.UnmarshalText(text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored != hash {
		t.Errorf("round trip failed, got %v, want %v", restored, hash)
	}
}

func TestHash_CompareIsByteWise(t *testing.T) {
	a := Hash{0x00, 0xff}
	b := Hash{0x01}
	if a.Compare(&b) >= 0 {
		t.Errorf("%v should be smaller than %v", a, b)
	}
	if b.Compare(&a) <= 0 {
		t.Errorf("%v should be larger than %v", b, a)
	}
	if a.Compare(&a) != 0 {
		t.Errorf("%v should be equal to itself", a)
	}
	if got := (HashComparator{}).Compare(&a, &b); got >= 0 {
		t.Errorf("comparator disagrees with Compare, got %d", got)
	}
}
