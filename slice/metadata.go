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
	"strconv"
	"time"

	"golang.org/x/exp/maps"
)

// Labels is an immutable mapping of human readable labels to decimal
// strings. Labels carry an index prefix (e.g. "00 trie-loading") so that
// their lexicographic order reflects the order in which the producer
// recorded them. Values are opaque and never parsed.
type Labels struct {
	values map[string]string
}

// NewLabels creates a label mapping holding a copy of the given values.
func NewLabels(values map[string]string) Labels {
	return Labels{values: maps.Clone(values)}
}

func (l Labels) Len() int {
	return len(l.values)
}

func (l Labels) Get(label string) (string, bool) {
	value, found := l.values[label]
	return value, found
}

// Labels returns all labels in ascending lexicographic order.
func (l Labels) Labels() []string {
	return sortedLabels(l.values)
}

// ForEach calls the given function for each entry in ascending label order.
func (l Labels) ForEach(f func(label, value string)) {
	for _, label := range l.Labels() {
		f(label, l.values[label])
	}
}

func (l Labels) Equal(other Labels) bool {
	return maps.Equal(l.values, other.values)
}

func sortedLabels[V any](m map[string]V) []string {
	labels := maps.Keys(m)
	sort.Strings(labels)
	return labels
}

// Metadata summarizes the production of a slice: durations of its phases
// in milliseconds and the number of nodes in its various subsets.
type Metadata struct {
	timings    Labels
	nodeCounts Labels
}

func NewMetadata(timings, nodeCounts Labels) Metadata {
	return Metadata{timings: timings, nodeCounts: nodeCounts}
}

func (m Metadata) Timings() Labels {
	return m.timings
}

func (m Metadata) NodeCounts() Labels {
	return m.nodeCounts
}

func (m Metadata) Equal(other Metadata) bool {
	return m.timings.Equal(other.timings) && m.nodeCounts.Equal(other.nodeCounts)
}

// TimingLabel produces the label of the i-th recorded timing, e.g.
// "00 trie-loading".
func TimingLabel(i int, name string) string {
	return fmt.Sprintf("%02d %s", i, name)
}

// CountLabel produces the label of the i-th recorded node count, e.g.
// "N00 stem-and-head-nodes".
func CountLabel(i int, name string) string {
	return fmt.Sprintf("N%02d %s", i, name)
}

// FormatMillis renders a duration as milliseconds with six fractional
// digits, e.g. 15µs as "0.015000".
func FormatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 6, 64)
}

// MetadataRecorder collects timings and node counts while a slice is being
// produced. Labels are prefixed by their recording index so that documents
// list them in recording order. A recorder is not safe for concurrent use.
type MetadataRecorder struct {
	timings map[string]string
	counts  map[string]string
}

func (r *MetadataRecorder) RecordTiming(name string, d time.Duration) {
	if r.timings == nil {
		r.timings = map[string]string{}
	}
	r.timings[TimingLabel(len(r.timings), name)] = FormatMillis(d)
}

// Measure starts timing a phase; the returned function ends it.
func (r *MetadataRecorder) Measure(name string) func() {
	start := time.Now()
	return func() {
		r.RecordTiming(name, time.Since(start))
	}
}

func (r *MetadataRecorder) RecordCount(name string, count int) {
	if r.counts == nil {
		r.counts = map[string]string{}
	}
	r.counts[CountLabel(len(r.counts), name)] = strconv.Itoa(count)
}

// Metadata returns an immutable copy of everything recorded so far.
func (r *MetadataRecorder) Metadata() Metadata {
	return NewMetadata(NewLabels(r.timings), NewLabels(r.counts))
}
