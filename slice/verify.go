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
	"fmt"

	"github.com/Fantom-foundation/trieslice/common"
	"github.com/Fantom-foundation/trieslice/common/immutable"
	"github.com/Fantom-foundation/trieslice/rlp"
)

// VerificationObserver is a listener interface for tracking the progress of
// the verification of a slice. It can, for instance, be implemented by a
// user interface to keep the user updated on current activities.
type VerificationObserver interface {
	StartVerification()
	Progress(msg string)
	EndVerification(res error)
}

// NilVerificationObserver is a trivial implementation of the observer
// interface above which ignores all reported events.
type NilVerificationObserver struct{}

func (NilVerificationObserver) StartVerification()        {}
func (NilVerificationObserver) Progress(msg string)       {}
func (NilVerificationObserver) EndVerification(res error) {}

// Verify checks the self-consistency of a snapshot:
//   - the slice id is well formed,
//   - every trie node hashes to the key it is stored under,
//   - every trie node is an RLP encoded MPT node,
//   - no node is listed in more than one section,
//   - the trie root named by the id is part of the stem, or of the head if
//     the slice starts at the root and the stem is empty.
//
// All detected problems are reported, joined into a single error. The
// result is nil if the snapshot is consistent. Snapshots without trie nodes
// are only checked for a valid id.
func Verify(s Snapshot, observer VerificationObserver) (res error) {
	if observer == nil {
		observer = NilVerificationObserver{}
	}
	observer.StartVerification()
	defer func() {
		observer.EndVerification(res)
	}()

	var errs []error
	observer.Progress(fmt.Sprintf("Checking slice id %s ...", s.Id()))
	id, idErr := ParseId(s.Id())
	if idErr != nil {
		errs = append(errs, idErr)
	}

	nodes, present := s.TrieNodes().Get()
	if !present {
		observer.Progress("Slice contains no trie nodes")
		return errors.Join(errs...)
	}

	sections := []struct {
		name string
		set  NodeSet
	}{
		{fieldStem, nodes.Stem()},
		{fieldHead, nodes.Head()},
	}
	if slice, present := nodes.Slice().Get(); present {
		sections = append(sections, struct {
			name string
			set  NodeSet
		}{fieldSlice, slice})
	}

	seen := map[common.Hash]string{}
	for _, section := range sections {
		observer.Progress(fmt.Sprintf("Checking %d %s nodes ...", section.set.Len(), section.name))
		section.set.ForEach(func(hash common.Hash, payload immutable.Bytes) {
			if other, found := seen[hash]; found {
				errs = append(errs, fmt.Errorf("%w: %v in %s and %s", ErrOverlappingSections, hash, other, section.name))
			} else {
				seen[hash] = section.name
			}
			errs = append(errs, verifyNode(section.name, hash, payload)...)
		})
	}

	if idErr == nil {
		observer.Progress(fmt.Sprintf("Checking presence of trie root %v ...", id.Root))
		roots, name := nodes.Stem(), fieldStem
		if roots.Len() == 0 {
			roots, name = nodes.Head(), fieldHead
		}
		if !roots.Contains(id.Root) {
			errs = append(errs, fmt.Errorf("%w: %v not in %s", ErrRootMissing, id.Root, name))
		}
	}

	return errors.Join(errs...)
}

func verifyNode(section string, hash common.Hash, payload immutable.Bytes) []error {
	var errs []error
	data := payload.ToBytes()
	if got := common.Keccak256(data); got != hash {
		errs = append(errs, fmt.Errorf("%w: %s node %v hashes to %v", ErrHashMismatch, section, hash, got))
	}
	if _, err := rlp.CheckNode(data); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s node %v: %w", ErrMalformedNode, section, hash, err))
	}
	return errs
}
