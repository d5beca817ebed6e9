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
	"sort"
	"strings"

	"github.com/Fantom-foundation/trieslice/common"
)

// KeyDelta lists the keys of a mapping that were added, removed or whose
// value changed between two snapshots, each in ascending key order.
type KeyDelta[K any] struct {
	Added   []K
	Removed []K
	Changed []K
}

func (d KeyDelta[K]) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Delta describes the differences between two snapshots. Absent sections
// are compared like empty ones; changes in presence are listed separately
// by the path of the affected field.
type Delta struct {
	IdBefore, IdAfter string
	Presence          []string

	Timings    KeyDelta[string]
	NodeCounts KeyDelta[string]
	Stem       KeyDelta[common.Hash]
	Head       KeyDelta[common.Hash]
	Slice      KeyDelta[common.Hash]
	Leaves     KeyDelta[common.Hash]
}

// Diff computes the differences between two snapshots.
func Diff(before, after Snapshot) Delta {
	res := Delta{IdBefore: before.id, IdAfter: after.id}

	metaBefore, metaBeforePresent := before.metadata.Get()
	metaAfter, metaAfterPresent := after.metadata.Get()
	if metaBeforePresent != metaAfterPresent {
		res.Presence = append(res.Presence, fieldMetadata)
	}
	res.Timings = diffKeys(metaBefore.timings.values, metaAfter.timings.values, lessLabel)
	res.NodeCounts = diffKeys(metaBefore.nodeCounts.values, metaAfter.nodeCounts.values, lessLabel)

	nodesBefore, nodesBeforePresent := before.trieNodes.Get()
	nodesAfter, nodesAfterPresent := after.trieNodes.Get()
	if nodesBeforePresent != nodesAfterPresent {
		res.Presence = append(res.Presence, fieldTrieNodes)
	}
	res.Stem = diffKeys(nodesBefore.stem.nodes, nodesAfter.stem.nodes, lessHash)
	res.Head = diffKeys(nodesBefore.head.nodes, nodesAfter.head.nodes, lessHash)
	sliceBefore, sliceBeforePresent := nodesBefore.slice.Get()
	sliceAfter, sliceAfterPresent := nodesAfter.slice.Get()
	if sliceBeforePresent != sliceAfterPresent {
		res.Presence = append(res.Presence, fieldPath(fieldTrieNodes, fieldSlice))
	}
	res.Slice = diffKeys(sliceBefore.nodes, sliceAfter.nodes, lessHash)

	leavesBefore, leavesBeforePresent := before.leaves.Get()
	leavesAfter, leavesAfterPresent := after.leaves.Get()
	if leavesBeforePresent != leavesAfterPresent {
		res.Presence = append(res.Presence, fieldLeaves)
	}
	res.Leaves = diffKeys(leavesBefore.contracts, leavesAfter.contracts, lessHash)
	return res
}

func (d Delta) Empty() bool {
	return d.IdBefore == d.IdAfter &&
		len(d.Presence) == 0 &&
		d.Timings.Empty() &&
		d.NodeCounts.Empty() &&
		d.Stem.Empty() &&
		d.Head.Empty() &&
		d.Slice.Empty() &&
		d.Leaves.Empty()
}

// Sections returns the mapping deltas along with the paths of the fields
// they describe, in document order.
func (d Delta) Sections() []SectionDelta {
	return []SectionDelta{
		{fieldPath(fieldMetadata, fieldTimings), toStrings(d.Timings, quote)},
		{fieldPath(fieldMetadata, fieldNodeCounts), toStrings(d.NodeCounts, quote)},
		{fieldPath(fieldTrieNodes, fieldStem), toStrings(d.Stem, common.Hash.Hex)},
		{fieldPath(fieldTrieNodes, fieldHead), toStrings(d.Head, common.Hash.Hex)},
		{fieldPath(fieldTrieNodes, fieldSlice), toStrings(d.Slice, common.Hash.Hex)},
		{fieldLeaves, toStrings(d.Leaves, common.Hash.Hex)},
	}
}

// SectionDelta is a mapping delta with keys rendered for display.
type SectionDelta struct {
	Field string
	Keys  KeyDelta[string]
}

func (d Delta) String() string {
	builder := strings.Builder{}
	builder.WriteString("Diff {\n")
	if d.IdBefore != d.IdAfter {
		builder.WriteString(fmt.Sprintf("\t%s: %s -> %s\n", fieldSliceId, d.IdBefore, d.IdAfter))
	}
	for _, field := range d.Presence {
		builder.WriteString(fmt.Sprintf("\t%s: presence changed\n", field))
	}
	for _, section := range d.Sections() {
		if section.Keys.Empty() {
			continue
		}
		builder.WriteString(fmt.Sprintf("\t%s:\n", section.Field))
		for _, key := range section.Keys.Added {
			builder.WriteString(fmt.Sprintf("\t\t+ %s\n", key))
		}
		for _, key := range section.Keys.Removed {
			builder.WriteString(fmt.Sprintf("\t\t- %s\n", key))
		}
		for _, key := range section.Keys.Changed {
			builder.WriteString(fmt.Sprintf("\t\t~ %s\n", key))
		}
	}
	builder.WriteString("}")
	return builder.String()
}

func diffKeys[K, V comparable](before, after map[K]V, less func(a, b K) bool) KeyDelta[K] {
	var res KeyDelta[K]
	for key, value := range before {
		if other, found := after[key]; !found {
			res.Removed = append(res.Removed, key)
		} else if other != value {
			res.Changed = append(res.Changed, key)
		}
	}
	for key := range after {
		if _, found := before[key]; !found {
			res.Added = append(res.Added, key)
		}
	}
	for _, keys := range [][]K{res.Added, res.Removed, res.Changed} {
		sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	}
	return res
}

func toStrings[K any](d KeyDelta[K], format func(K) string) KeyDelta[string] {
	convert := func(keys []K) []string {
		if len(keys) == 0 {
			return nil
		}
		res := make([]string, 0, len(keys))
		for _, key := range keys {
			res = append(res, format(key))
		}
		return res
	}
	return KeyDelta[string]{
		Added:   convert(d.Added),
		Removed: convert(d.Removed),
		Changed: convert(d.Changed),
	}
}

func lessHash(a, b common.Hash) bool {
	return common.HashComparator{}.Compare(&a, &b) < 0
}

func lessLabel(a, b string) bool {
	return a < b
}

func quote(label string) string {
	return fmt.Sprintf("%q", label)
}
