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
	"reflect"
	"strconv"
	"testing"
	"time"
)

func TestLabels_AreCopiedOnCreation(t *testing.T) {
	values := map[string]string{"a": "1"}
	labels := NewLabels(values)
	values["a"] = "2"
	values["b"] = "3"
	if got, _ := labels.Get("a"); got != "1" {
		t.Errorf("labels were modified, got %v, want %v", got, "1")
	}
	if got, want := labels.Len(), 1; got != want {
		t.Errorf("unexpected length, got %d, want %d", got, want)
	}
}

func TestLabels_AreListedInOrder(t *testing.T) {
	labels := NewLabels(map[string]string{"02 c": "3", "00 a": "1", "01 b": "2"})
	if got, want := labels.Labels(), []string{"00 a", "01 b", "02 c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected labels, got %v, want %v", got, want)
	}
	var values []string
	labels.ForEach(func(_, value string) {
		values = append(values, value)
	})
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(values, want) {
		t.Errorf("unexpected visiting order, got %v, want %v", values, want)
	}
}

func TestLabels_Equal(t *testing.T) {
	a := NewLabels(map[string]string{"x": "1"})
	if !a.Equal(NewLabels(map[string]string{"x": "1"})) {
		t.Errorf("equal labels reported as different")
	}
	if a.Equal(NewLabels(map[string]string{"x": "2"})) {
		t.Errorf("different values reported as equal")
	}
	if !(Labels{}).Equal(NewLabels(map[string]string{})) {
		t.Errorf("empty labels should be equal")
	}
}

func TestLabelHelpers_ProduceIndexedLabels(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{TimingLabel(0, "trie-loading"), "00 trie-loading"},
		{TimingLabel(3, "fetch-leaves-info"), "03 fetch-leaves-info"},
		{TimingLabel(12, "x"), "12 x"},
		{CountLabel(0, "stem-and-head-nodes"), "N00 stem-and-head-nodes"},
		{CountLabel(4, "smart-contacts"), "N04 smart-contacts"},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("unexpected label, got %q, want %q", test.got, test.want)
		}
	}
}

func TestFormatMillis_UsesSixFractionDigits(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{0, "0.000000"},
		{15 * time.Microsecond, "0.015000"},
		{84504 * time.Nanosecond, "0.084504"},
		{177019430 * time.Nanosecond, "177.019430"},
		{2 * time.Second, "2000.000000"},
	}
	for _, test := range tests {
		if got := FormatMillis(test.duration); got != test.want {
			t.Errorf("unexpected format of %v, got %v, want %v", test.duration, got, test.want)
		}
	}
}

func TestMetadataRecorder_LabelsFollowRecordingOrder(t *testing.T) {
	recorder := MetadataRecorder{}
	recorder.RecordTiming("trie-loading", 15*time.Microsecond)
	recorder.RecordTiming("fetch-stem-keys", 84504*time.Nanosecond)
	recorder.RecordCount("stem-and-head-nodes", 5)
	recorder.RecordCount("max-depth", 7)
	recorder.RecordCount("leaves", 739)

	metadata := recorder.Metadata()
	wantTimings := NewLabels(map[string]string{
		"00 trie-loading":    "0.015000",
		"01 fetch-stem-keys": "0.084504",
	})
	if !metadata.Timings().Equal(wantTimings) {
		t.Errorf("unexpected timings, got %v, want %v", metadata.Timings().Labels(), wantTimings.Labels())
	}
	wantCounts := []string{"N00 stem-and-head-nodes", "N01 max-depth", "N02 leaves"}
	if got := metadata.NodeCounts().Labels(); !reflect.DeepEqual(got, wantCounts) {
		t.Errorf("unexpected counts, got %v, want %v", got, wantCounts)
	}
	if got, _ := metadata.NodeCounts().Get("N02 leaves"); got != "739" {
		t.Errorf("unexpected count, got %v, want %v", got, 739)
	}
}

func TestMetadataRecorder_MetadataIsASnapshot(t *testing.T) {
	recorder := MetadataRecorder{}
	recorder.RecordCount("a", 1)
	metadata := recorder.Metadata()
	recorder.RecordCount("b", 2)
	if got, want := metadata.NodeCounts().Len(), 1; got != want {
		t.Errorf("metadata changed after recording, got %d entries, want %d", got, want)
	}
	if got, want := recorder.Metadata().NodeCounts().Len(), 2; got != want {
		t.Errorf("unexpected number of counts, got %d, want %d", got, want)
	}
}

func TestMetadataRecorder_MeasureRecordsElapsedTime(t *testing.T) {
	recorder := MetadataRecorder{}
	done := recorder.Measure("phase")
	time.Sleep(2 * time.Millisecond)
	done()
	value, found := recorder.Metadata().Timings().Get("00 phase")
	if !found {
		t.Fatalf("timing was not recorded")
	}
	millis, err := strconv.ParseFloat(value, 64)
	if err != nil {
		t.Fatalf("timing %q is not a decimal: %v", value, err)
	}
	if millis < 2 {
		t.Errorf("unexpected duration, got %v ms, want at least 2 ms", millis)
	}
}
