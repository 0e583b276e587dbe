// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/tpccd/fault"
)

// DataAccess - a single database accessed through a deferred write batch
//
// reads see the pending writes of the current batch, physical writes
// happen only on Commit
type DataAccess interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte) error
}

type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) DataAccess {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionInUse
	}

	d.inUse = true
	return nil
}

// Put - record a pending write
//
// a key already marked for deletion in the same batch cannot be
// rewritten, the record stays deleted until the batch is flushed
func (d *AccessData) Put(key []byte, value []byte) error {
	_, op, found := d.cache.Get(string(key))
	if found && dbDelete == op {
		return fault.RecordMarkedDeleted
	}
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
	return nil
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

func (d *AccessData) Commit() error {
	return d.db.Write(d.batch, nil)
}

func (d *AccessData) DumpTx() []byte {
	return d.batch.Dump()
}

// Get - read through the cache
//
// absent records are cached as absent so that a repeated miss does
// not touch the database again, nil data means not found
func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op || dbAbsent == op {
			return nil, nil
		}
		return val, nil
	}

	val, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		d.cache.Set(dbAbsent, string(key), []byte{})
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	d.cache.Set(dbRead, string(key), val)
	return val, nil
}

func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	_, op, found := d.cache.Get(string(key))
	if found {
		return dbDelete != op && dbAbsent != op, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) InUse() bool {
	return d.inUse
}

func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
