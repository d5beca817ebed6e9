// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package archive retains encoded slice documents in a LevelDB instance,
// keyed by their slice id. Documents are immutable: once stored, the
// document of an id can not be replaced by different content.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/Fantom-foundation/trieslice/common"
	"github.com/Fantom-foundation/trieslice/slice"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

const (
	ErrNotFound = common.ConstError("slice not found in archive")
	ErrConflict = common.ConstError("slice already archived with different content")
	ErrClosed   = common.ConstError("archive is closed")
)

// Config defines the parameters of an archive.
type Config struct {
	// Directory holding the LevelDB files. If empty, the archive is kept in
	// memory and lost on Close.
	Directory string
	// CacheSizeMiB is the size of the LevelDB block cache.
	CacheSizeMiB int
	// Handles is the number of open files LevelDB may keep cached.
	Handles int
}

// DefaultConfig is the configuration used by the tools of this module.
var DefaultConfig = Config{
	CacheSizeMiB: 16,
	Handles:      64,
}

// Archive is a LevelDB backed store of encoded slice documents. It is safe
// for concurrent use.
type Archive struct {
	db       *leveldb.DB
	putMutex sync.Mutex
}

// Open opens or creates an archive as described by the configuration.
func Open(config Config) (*Archive, error) {
	options := &opt.Options{
		BlockCacheCapacity:     config.CacheSizeMiB * opt.MiB,
		OpenFilesCacheCapacity: config.Handles,
	}
	var db *leveldb.DB
	var err error
	if config.Directory == "" {
		db, err = leveldb.Open(storage.NewMemStorage(), options)
	} else {
		db, err = leveldb.OpenFile(config.Directory, options)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &Archive{db: db}, nil
}

// Put encodes the snapshot and stores the document under its slice id.
// Storing an identical document again is a no-op; storing a different
// document under an already used id fails with ErrConflict.
func (a *Archive) Put(s slice.Snapshot) error {
	if _, err := slice.ParseId(s.Id()); err != nil {
		return err
	}
	data, err := slice.Encode(s)
	if err != nil {
		return err
	}

	a.putMutex.Lock()
	defer a.putMutex.Unlock()

	key := toDbKey(s.Id())
	present, err := a.db.Get(key, nil)
	if err == nil {
		if !bytes.Equal(present, data) {
			return fmt.Errorf("%w: %s", ErrConflict, s.Id())
		}
		return nil
	}
	if !errors.Is(err, leveldb.ErrNotFound) {
		return wrapDbError(err)
	}
	return wrapDbError(a.db.Put(key, data, nil))
}

// GetRaw returns the stored document of the given slice id exactly as it
// was encoded.
func (a *Archive) GetRaw(id string) ([]byte, error) {
	data, err := a.db.Get(toDbKey(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, wrapDbError(err)
	}
	return data, nil
}

// Get returns the decoded snapshot of the given slice id.
func (a *Archive) Get(id string) (slice.Snapshot, error) {
	data, err := a.GetRaw(id)
	if err != nil {
		return slice.Snapshot{}, err
	}
	return slice.Decode(data)
}

func (a *Archive) Has(id string) (bool, error) {
	res, err := a.db.Has(toDbKey(id), nil)
	return res, wrapDbError(err)
}

// Ids returns the ids of all stored slices in ascending byte-wise order.
func (a *Archive) Ids() ([]string, error) {
	iter := a.db.NewIterator(documentRange(), nil)
	defer iter.Release()

	var res []string
	for iter.Next() {
		res = append(res, dbKey(iter.Key()).id())
	}
	return res, wrapDbError(iter.Error())
}

func (a *Archive) Close() error {
	return wrapDbError(a.db.Close())
}

func wrapDbError(err error) error {
	if errors.Is(err, leveldb.ErrClosed) {
		return ErrClosed
	}
	return err
}
