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
	"errors"
	"testing"

	"github.com/Fantom-foundation/trieslice/common"
)

func TestId_StringMatchesFixtureId(t *testing.T) {
	id := Id{
		Path:     "1372",
		MaxDepth: 10,
		Root:     hash("8e9e2d4514bee72525133350201ecfc3da3815a4bb6b03ad5ff3bdd555363188"),
	}
	if got, want := id.String(), fixtureId; got != want {
		t.Errorf("unexpected id, got %v, want %v", got, want)
	}
}

func TestParseId_AcceptsWellFormedIds(t *testing.T) {
	root := hash("8e9e2d4514bee72525133350201ecfc3da3815a4bb6b03ad5ff3bdd555363188")
	tests := map[string]Id{
		fixtureId: {Path: "1372", MaxDepth: 10, Root: root},
		"-0-8e9e2d4514bee72525133350201ecfc3da3815a4bb6b03ad5ff3bdd555363188":    {Path: "", MaxDepth: 0, Root: root},
		"aBf-3-8E9E2D4514BEE72525133350201ECFC3DA3815A4BB6B03AD5FF3BDD555363188": {Path: "aBf", MaxDepth: 3, Root: root},
	}
	for str, want := range tests {
		got, err := ParseId(str)
		if err != nil {
			t.Errorf("failed to parse %q: %v", str, err)
			continue
		}
		if got != want {
			t.Errorf("unexpected id, got %+v, want %+v", got, want)
		}
	}
}

func TestParseId_RoundTripsCanonicalIds(t *testing.T) {
	ids := []Id{
		{},
		{Path: "0", MaxDepth: 1, Root: common.Hash{0x01}},
		{Path: "fedcba9876543210", MaxDepth: 64, Root: common.Keccak256([]byte("root"))},
	}
	for _, id := range ids {
		got, err := ParseId(id.String())
		if err != nil {
			t.Fatalf("failed to parse %v: %v", id, err)
		}
		if got != id {
			t.Errorf("unexpected id, got %+v, want %+v", got, id)
		}
	}
}

func TestParseId_RejectsMalformedIds(t *testing.T) {
	const root = "8e9e2d4514bee72525133350201ecfc3da3815a4bb6b03ad5ff3bdd555363188"
	tests := map[string]string{
		"empty":          "",
		"no separators":  "1372",
		"two parts":      "1372-" + root,
		"four parts":     "1372-10-" + root + "-1",
		"negative depth": "1372--1-" + root,
		"signed depth":   "1372-+10-" + root,
		"empty depth":    "1372--" + root,
		"non-hex path":   "13g2-10-" + root,
		"short root":     "1372-10-" + root[2:],
		"long root":      "1372-10-" + root + "00",
		"prefixed root":  "1372-10-0x" + root[2:],
		"non-hex root":   "1372-10-" + root[:63] + "z",
	}
	for name, str := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseId(str); !errors.Is(err, ErrMalformedId) {
				t.Errorf("unexpected error for %q, got %v, want %v", str, err, ErrMalformedId)
			}
		})
	}
}

func TestId_ValidateRejectsInvalidComponents(t *testing.T) {
	tests := []Id{
		{Path: "12x"},
		{Path: "1 2"},
		{MaxDepth: -1},
	}
	for _, id := range tests {
		if err := id.Validate(); !errors.Is(err, ErrMalformedId) {
			t.Errorf("unexpected error for %+v, got %v, want %v", id, err, ErrMalformedId)
		}
	}
	if err := (Id{Path: "0aF", MaxDepth: 7}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
