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

	"github.com/Fantom-foundation/trieslice/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Decode parses a slice document. Sections that are null or missing are
// absent in the resulting snapshot; empty objects yield present but empty
// sections. Malformed hashes or payloads are reported as EncodingError.
func Decode(data []byte) (Snapshot, error) {
	var res Snapshot
	if err := res.UnmarshalJSON(data); err != nil {
		return Snapshot{}, err
	}
	return res, nil
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	fields, present, err := decodeObject(data)
	if err != nil {
		return &EncodingError{Field: "document", Err: err}
	}
	if !present {
		return &EncodingError{Field: "document", Err: errNotAnObject}
	}

	raw, present := field(fields, fieldSliceId)
	if !present {
		return &EncodingError{Field: fieldSliceId, Err: errMissingField}
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return &EncodingError{Field: fieldSliceId, Err: err}
	}

	metadata := common.None[Metadata]()
	if raw, present := field(fields, fieldMetadata); present {
		m, err := decodeMetadata(raw)
		if err != nil {
			return err
		}
		metadata = common.Some(m)
	}

	nodes := common.None[Nodes]()
	if raw, present := field(fields, fieldTrieNodes); present {
		n, err := decodeNodes(raw)
		if err != nil {
			return err
		}
		nodes = common.Some(n)
	}

	leaves := common.None[Leaves]()
	if raw, present := field(fields, fieldLeaves); present {
		l, err := decodeLeaves(raw)
		if err != nil {
			return err
		}
		leaves = common.Some(l)
	}

	*s = NewSnapshot(id, metadata, nodes, leaves)
	return nil
}

func decodeMetadata(data []byte) (Metadata, error) {
	fields, err := decodeSection(fieldMetadata, data)
	if err != nil {
		return Metadata{}, err
	}
	timings, err := decodeLabels(fields, fieldMetadata, fieldTimings)
	if err != nil {
		return Metadata{}, err
	}
	counts, err := decodeLabels(fields, fieldMetadata, fieldNodeCounts)
	if err != nil {
		return Metadata{}, err
	}
	return NewMetadata(timings, counts), nil
}

func decodeLabels(fields map[string]json.RawMessage, parent, name string) (Labels, error) {
	path := fieldPath(parent, name)
	raw, present := field(fields, name)
	if !present {
		return Labels{}, &EncodingError{Field: path, Err: errMissingField}
	}
	entries, err := decodeSection(path, raw)
	if err != nil {
		return Labels{}, err
	}
	values := make(map[string]string, len(entries))
	for label, raw := range entries {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return Labels{}, &EncodingError{Field: path, Err: fmt.Errorf("label %q: %w", label, err)}
		}
		values[label] = value
	}
	return Labels{values: values}, nil
}

func decodeNodes(data []byte) (Nodes, error) {
	fields, err := decodeSection(fieldTrieNodes, data)
	if err != nil {
		return Nodes{}, err
	}
	stem, err := decodeRequiredNodeSet(fields, fieldStem)
	if err != nil {
		return Nodes{}, err
	}
	head, err := decodeRequiredNodeSet(fields, fieldHead)
	if err != nil {
		return Nodes{}, err
	}
	slice := common.None[NodeSet]()
	if raw, present := field(fields, fieldSlice); present {
		set, err := decodeNodeSet(fieldPath(fieldTrieNodes, fieldSlice), raw)
		if err != nil {
			return Nodes{}, err
		}
		slice = common.Some(set)
	}
	return NewNodes(stem, head, slice), nil
}

func decodeRequiredNodeSet(fields map[string]json.RawMessage, name string) (NodeSet, error) {
	path := fieldPath(fieldTrieNodes, name)
	raw, present := field(fields, name)
	if !present {
		return NodeSet{}, &EncodingError{Field: path, Err: errMissingField}
	}
	return decodeNodeSet(path, raw)
}

func decodeNodeSet(path string, data []byte) (NodeSet, error) {
	entries, err := decodeSection(path, data)
	if err != nil {
		return NodeSet{}, err
	}
	nodes := make(map[common.Hash][]byte, len(entries))
	for key, raw := range entries {
		hash, err := decodeKey(path, key)
		if err != nil {
			return NodeSet{}, err
		}
		if _, found := nodes[hash]; found {
			return NodeSet{}, &EncodingError{Field: path, Err: fmt.Errorf("%w: %s", errDuplicateKey, key)}
		}
		var payload hexutil.Bytes
		if err := json.Unmarshal(raw, &payload); err != nil {
			return NodeSet{}, &EncodingError{Field: path, Err: fmt.Errorf("key %q: %w", key, err)}
		}
		nodes[hash] = payload
	}
	return NewNodeSet(nodes), nil
}

func decodeLeaves(data []byte) (Leaves, error) {
	entries, err := decodeSection(fieldLeaves, data)
	if err != nil {
		return Leaves{}, err
	}
	contracts := make(map[common.Hash]Contract, len(entries))
	for key, raw := range entries {
		hash, err := decodeKey(fieldLeaves, key)
		if err != nil {
			return Leaves{}, err
		}
		if _, found := contracts[hash]; found {
			return Leaves{}, &EncodingError{Field: fieldLeaves, Err: fmt.Errorf("%w: %s", errDuplicateKey, key)}
		}
		contract, err := decodeContract(fieldPath(fieldLeaves, key), raw)
		if err != nil {
			return Leaves{}, err
		}
		contracts[hash] = contract
	}
	return Leaves{contracts: contracts}, nil
}

func decodeContract(path string, data []byte) (Contract, error) {
	fields, err := decodeSection(path, data)
	if err != nil {
		return Contract{}, err
	}

	rootPath := fieldPath(path, fieldStorageRoot)
	raw, present := field(fields, fieldStorageRoot)
	if !present {
		return Contract{}, &EncodingError{Field: rootPath, Err: errMissingField}
	}
	var root common.Hash
	if err := json.Unmarshal(raw, &root); err != nil {
		return Contract{}, &EncodingError{Field: rootPath, Err: err}
	}

	codePath := fieldPath(path, fieldEvmCode)
	raw, present = field(fields, fieldEvmCode)
	if !present {
		return Contract{}, &EncodingError{Field: codePath, Err: errMissingField}
	}
	var code hexutil.Bytes
	if err := json.Unmarshal(raw, &code); err != nil {
		return Contract{}, &EncodingError{Field: codePath, Err: err}
	}
	return NewContract(root, code), nil
}

func decodeKey(path, key string) (common.Hash, error) {
	hash, err := common.HashFromHex(key)
	if err != nil {
		return common.Hash{}, &EncodingError{Field: path, Err: fmt.Errorf("key %q: %w", key, err)}
	}
	return hash, nil
}

// decodeSection decodes a JSON object which must not be null.
func decodeSection(path string, data []byte) (map[string]json.RawMessage, error) {
	fields, present, err := decodeObject(data)
	if err != nil {
		return nil, &EncodingError{Field: path, Err: err}
	}
	if !present {
		return nil, &EncodingError{Field: path, Err: errNotAnObject}
	}
	return fields, nil
}

// decodeObject decodes a JSON object into its raw fields. The second result
// is false if the input is null. Keys occurring more than once are rejected
// instead of letting the last occurrence win.
func decodeObject(data []byte) (map[string]json.RawMessage, bool, error) {
	if isNull(data) {
		return nil, false, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return nil, false, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, false, errNotAnObject
	}
	fields := map[string]json.RawMessage{}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, false, err
		}
		key, ok := token.(string)
		if !ok {
			return nil, false, errNotAnObject
		}
		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return nil, false, err
		}
		if _, found := fields[key]; found {
			return nil, false, fmt.Errorf("%w: %s", errDuplicateKey, key)
		}
		fields[key] = value
	}
	if _, err := decoder.Token(); err != nil {
		return nil, false, err
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, false, errTrailingData
	}
	return fields, true, nil
}

// field looks up a field of a decoded object. Missing fields and fields set
// to null are reported as not present.
func field(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	raw, found := fields[name]
	if !found || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
