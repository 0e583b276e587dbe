// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tpccd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Warehouses      *PoolHandle `prefix:"W" database:"state"`
	Districts       *PoolHandle `prefix:"D" database:"state"`
	Customers       *PoolHandle `prefix:"C" database:"state"`
	Histories       *PoolHandle `prefix:"H" database:"state"`
	NewOrders       *PoolHandle `prefix:"N" database:"state"`
	Orders          *PoolHandle `prefix:"O" database:"state"`
	OrderLines      *PoolHandle `prefix:"L" database:"state"`
	Items           *PoolHandle `prefix:"I" database:"state"`
	Stocks          *PoolHandle `prefix:"S" database:"state"`
	CustomersByName *PoolHandle `prefix:"X" database:"index"`
	TestData        *PoolHandle `prefix:"Z" database:"index"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentStateDBVersion = 0x100
	currentIndexDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	dbState  *leveldb.DB
	dbIndex  *leveldb.DB
	trx      Transaction
	stateTrx *leveldb.Batch
	indexTrx *leveldb.Batch
	cache    Cache
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false

	if nil != poolData.dbState {
		return fault.AlreadyInitialised
	}

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	stateDatabase := database + "-state.leveldb"
	indexDatabase := database + "-index.leveldb"

	db, stateVersion, err := getDB(stateDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.dbState = db

	db, indexVersion, err := getDB(indexDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.dbIndex = db

	// no schema migration support, refuse mismatched databases
	if 0 != stateVersion && currentStateDBVersion != stateVersion {
		logger.Criticalf("state database version: %d  current version: %d", stateVersion, currentStateDBVersion)
		return fault.WrongDatabaseVersion
	}
	if 0 != indexVersion && currentIndexDBVersion != indexVersion {
		logger.Criticalf("index database version: %d  current version: %d", indexVersion, currentIndexDBVersion)
		return fault.WrongDatabaseVersion
	}

	if !readOnly {
		// database was empty so tag as current version
		if 0 == stateVersion {
			err = putVersion(poolData.dbState, currentStateDBVersion)
			if nil != err {
				return err
			}
		}
		if 0 == indexVersion {
			err = putVersion(poolData.dbIndex, currentIndexDBVersion)
			if nil != err {
				return err
			}
		}
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// databases
	poolData.stateTrx = new(leveldb.Batch)
	poolData.indexTrx = new(leveldb.Batch)
	poolData.cache = newCache()
	stateDBAccess := newDA(poolData.dbState, poolData.stateTrx, poolData.cache)
	indexDBAccess := newDA(poolData.dbIndex, poolData.indexTrx, poolData.cache)
	access := []DataAccess{stateDBAccess, indexDBAccess}
	poolData.trx = newTransaction(access)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		var dataAccess DataAccess
		switch dbName := fieldInfo.Tag.Get("database"); dbName {
		case "state":
			dataAccess = stateDBAccess
		case "index":
			dataAccess = indexDBAccess
		default:
			return fmt.Errorf("pool: %v  has invalid database: %q", fieldInfo, dbName)
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: dataAccess,
		}

		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.dbIndex {
		poolData.dbIndex.Close()
		poolData.dbIndex = nil
	}
	if nil != poolData.dbState {
		poolData.dbState.Close()
		poolData.dbState = nil
	}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// NewDBTransaction - begin a deferred write transaction over all pools
func NewDBTransaction() (Transaction, error) {
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}
