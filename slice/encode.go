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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/Fantom-foundation/trieslice/common"
	"github.com/Fantom-foundation/trieslice/common/immutable"
)

// Encode renders the snapshot as a canonical JSON document:
//   - field names are kebab-case, and all fields are always present,
//     absent sections being rendered as null,
//   - every mapping is emitted in ascending key order, hashes ordered
//     byte-wise and labels lexicographically,
//   - hashes and byte payloads are 0x-prefixed lowercase hex strings
//     including leading zeros,
//   - label values are copied verbatim.
//
// The result is a pure function of the snapshot. On failure no partial
// document is returned.
func Encode(s Snapshot) ([]byte, error) {
	var e encoder
	if err := e.snapshot(s); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// EncodeIndent is like Encode but applies indentation to the document.
func EncodeIndent(s Snapshot, prefix, indent string) ([]byte, error) {
	data, err := Encode(s)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// EncodeTo writes the encoded snapshot to the given writer. Nothing is
// written if the snapshot cannot be encoded.
func EncodeTo(out io.Writer, s Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	return Encode(s)
}

// encoder emits a slice document into a buffer. Structure is produced
// directly; only strings of unknown content are run through the JSON
// string encoder.
type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) snapshot(s Snapshot) error {
	e.buf.WriteByte('{')
	e.key(fieldSliceId)
	if err := e.string(fieldSliceId, s.id); err != nil {
		return err
	}

	e.buf.WriteByte(',')
	e.key(fieldMetadata)
	if metadata, present := s.metadata.Get(); present {
		if err := e.metadata(metadata); err != nil {
			return err
		}
	} else {
		e.null()
	}

	e.buf.WriteByte(',')
	e.key(fieldTrieNodes)
	if nodes, present := s.trieNodes.Get(); present {
		e.nodes(nodes)
	} else {
		e.null()
	}

	e.buf.WriteByte(',')
	e.key(fieldLeaves)
	if leaves, present := s.leaves.Get(); present {
		e.leaves(leaves)
	} else {
		e.null()
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) metadata(m Metadata) error {
	e.buf.WriteByte('{')
	e.key(fieldTimings)
	if err := e.labels(fieldPath(fieldMetadata, fieldTimings), m.timings); err != nil {
		return err
	}
	e.buf.WriteByte(',')
	e.key(fieldNodeCounts)
	if err := e.labels(fieldPath(fieldMetadata, fieldNodeCounts), m.nodeCounts); err != nil {
		return err
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) labels(field string, l Labels) error {
	e.buf.WriteByte('{')
	for i, label := range l.Labels() {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := e.string(field, label); err != nil {
			return err
		}
		e.buf.WriteByte(':')
		if err := e.string(field, l.values[label]); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) nodes(n Nodes) {
	e.buf.WriteByte('{')
	e.key(fieldStem)
	e.nodeSet(n.stem)
	e.buf.WriteByte(',')
	e.key(fieldHead)
	e.nodeSet(n.head)
	e.buf.WriteByte(',')
	e.key(fieldSlice)
	if slice, present := n.slice.Get(); present {
		e.nodeSet(slice)
	} else {
		e.null()
	}
	e.buf.WriteByte('}')
}

func (e *encoder) nodeSet(s NodeSet) {
	e.buf.WriteByte('{')
	for i, hash := range s.Hashes() {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.hash(hash)
		e.buf.WriteByte(':')
		e.bytes(s.nodes[hash])
	}
	e.buf.WriteByte('}')
}

func (e *encoder) leaves(l Leaves) {
	e.buf.WriteByte('{')
	for i, key := range l.Keys() {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		contract := l.contracts[key]
		e.hash(key)
		e.buf.WriteString(":{")
		e.key(fieldStorageRoot)
		e.hash(contract.StorageRoot)
		e.buf.WriteByte(',')
		e.key(fieldEvmCode)
		e.bytes(contract.EvmCode)
		e.buf.WriteByte('}')
	}
	e.buf.WriteByte('}')
}

// key writes a field name from the field table followed by a colon. Field
// names are plain kebab-case and need no escaping.
func (e *encoder) key(name string) {
	e.buf.WriteByte('"')
	e.buf.WriteString(name)
	e.buf.WriteString(`":`)
}

func (e *encoder) null() {
	e.buf.WriteString("null")
}

func (e *encoder) hash(h common.Hash) {
	e.buf.WriteByte('"')
	e.buf.WriteString(h.Hex())
	e.buf.WriteByte('"')
}

func (e *encoder) bytes(b immutable.Bytes) {
	e.buf.WriteByte('"')
	e.buf.WriteString(b.Hex())
	e.buf.WriteByte('"')
}

// string writes a JSON string. HTML characters are not escaped so that
// labels and ids appear exactly as supplied. Invalid UTF-8 is rejected since
// the JSON encoder would replace it.
func (e *encoder) string(field, str string) error {
	if !utf8.ValidString(str) {
		return &EncodingError{Field: field, Err: fmt.Errorf("%w: %q", errInvalidUtf8, str)}
	}
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(str); err != nil {
		return &EncodingError{Field: field, Err: err}
	}
	e.buf.Write(bytes.TrimSuffix(out.Bytes(), []byte{'\n'}))
	return nil
}
