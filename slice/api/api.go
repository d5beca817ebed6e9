// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package api exposes slices to RPC clients. It asks a producer for a
// slice, checks and encodes the result and optionally retains the
// document in an archive.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Fantom-foundation/trieslice/common"
	"github.com/Fantom-foundation/trieslice/slice"
	"github.com/ethereum/go-ethereum/log"
)

//go:generate mockgen -source api.go -destination api_mocks.go -package api

const (
	ErrUnexpectedSlice = common.ConstError("producer returned unexpected slice")
	ErrNoArchive       = common.ConstError("no archive configured")
)

// Archive is the part of the slice archive used by the API.
type Archive interface {
	Put(s slice.Snapshot) error
	GetRaw(id string) ([]byte, error)
}

// Config defines the behavior of the API.
type Config struct {
	// Verify enables the verification of produced slices before they are
	// served. Slices failing the verification are not served.
	Verify bool
	// Archive enables retaining served documents in the archive.
	Archive bool
}

// Options select the sections of a requested slice.
type Options struct {
	Metadata bool `json:"metadata"`
	Nodes    bool `json:"nodes"`
	Slice    bool `json:"slice"`
	Leaves   bool `json:"leaves"`
}

// DefaultOptions request all sections of a slice.
var DefaultOptions = Options{
	Metadata: true,
	Nodes:    true,
	Slice:    true,
	Leaves:   true,
}

// SliceAPI provides access to trie slices.
type SliceAPI struct {
	producer slice.Producer
	archive  Archive
	config   Config
	logger   log.Logger
}

// NewSliceAPI creates a new API serving slices of the given producer. The
// archive may be nil if archiving is disabled.
func NewSliceAPI(producer slice.Producer, archive Archive, config Config) (*SliceAPI, error) {
	if config.Archive && archive == nil {
		return nil, ErrNoArchive
	}
	return &SliceAPI{
		producer: producer,
		archive:  archive,
		config:   config,
		logger:   log.New("module", "slice-api"),
	}, nil
}

// GetSlice returns the encoded slice of the trie with the given root, with
// its head at the given nibble path and reaching depth levels below the
// head. If opts is nil, all sections are included.
func (api *SliceAPI) GetSlice(ctx context.Context, path string, depth int, root common.Hash, opts *Options) (json.RawMessage, error) {
	id := slice.Id{Path: path, MaxDepth: depth, Root: root}
	if err := id.Validate(); err != nil {
		return nil, wrapError(err)
	}
	res, err := api.getSlice(ctx, id, opts)
	return res, wrapError(err)
}

// GetSliceById is like GetSlice but takes the slice id in its canonical
// form <path>-<depth>-<root>.
func (api *SliceAPI) GetSliceById(ctx context.Context, id string, opts *Options) (json.RawMessage, error) {
	parsed, err := slice.ParseId(id)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := api.getSlice(ctx, parsed, opts)
	return res, wrapError(err)
}

// GetArchivedSlice returns the archived document of the given slice id.
func (api *SliceAPI) GetArchivedSlice(id string) (json.RawMessage, error) {
	if api.archive == nil {
		return nil, wrapError(ErrNoArchive)
	}
	data, err := api.archive.GetRaw(id)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

func (api *SliceAPI) getSlice(ctx context.Context, id slice.Id, opts *Options) (json.RawMessage, error) {
	options := DefaultOptions
	if opts != nil {
		options = *opts
	}
	request := slice.Request{
		Id:              id,
		IncludeMetadata: options.Metadata,
		IncludeNodes:    options.Nodes || options.Slice,
		IncludeSlice:    options.Slice,
		IncludeLeaves:   options.Leaves,
	}

	start := time.Now()
	snapshot, err := api.producer.ProduceSlice(ctx, request)
	if err != nil {
		api.logger.Warn("Failed to produce slice", "id", id, "err", err)
		return nil, err
	}
	if got, want := snapshot.Id(), id.String(); got != want {
		api.logger.Error("Producer returned unexpected slice", "want", want, "got", got)
		return nil, fmt.Errorf("%w: requested %s, got %s", ErrUnexpectedSlice, want, got)
	}

	if api.config.Verify {
		if err := slice.Verify(snapshot, nil); err != nil {
			api.logger.Error("Produced slice is inconsistent", "id", id, "err", err)
			return nil, err
		}
	}

	data, err := slice.Encode(snapshot)
	if err != nil {
		return nil, err
	}

	if api.config.Archive {
		// the document is served even if it can not be archived
		if err := api.archive.Put(snapshot); err != nil {
			api.logger.Warn("Failed to archive slice", "id", id, "err", err)
		}
	}

	api.logger.Debug("Served slice", "id", id, "kind", snapshot.Kind(), "size", len(data), "elapsed", time.Since(start))
	return data, nil
}

// Error is returned by the API methods. It carries the JSON-RPC error code
// reported to clients.
type Error struct {
	err error
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{err: err}
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// ErrorCode implements the rpc.Error interface of go-ethereum.
func (e *Error) ErrorCode() int {
	if errors.Is(e.err, slice.ErrMalformedId) {
		return invalidParamsCode
	}
	return serverErrorCode
}

const (
	invalidParamsCode = -32602
	serverErrorCode   = -32000
)
