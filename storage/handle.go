// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/tpccd/fault"
)

// PoolHandle - the accessor for one table of the key-value store
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess DataAccess
}

// Element - a binary key/value pair from a pool
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the pool
func (p *PoolHandle) Put(key []byte, value []byte) error {
	if nil == p.dataAccess {
		return fault.DatabaseIsNotSet
	}
	return p.dataAccess.Put(p.prefixKey(key), value)
}

// Delete - remove a key from the pool
func (p *PoolHandle) Delete(key []byte) error {
	if nil == p.dataAccess {
		return fault.DatabaseIsNotSet
	}
	p.dataAccess.Delete(p.prefixKey(key))
	return nil
}

// Get - read a value for a given key
//
// returns nil data and nil error if the record is not present
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	if nil == p.dataAccess {
		return nil, fault.DatabaseIsNotSet
	}
	return p.dataAccess.Get(p.prefixKey(key))
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	if nil == p.dataAccess {
		return false, fault.DatabaseIsNotSet
	}
	return p.dataAccess.Has(p.prefixKey(key))
}
