// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/tpccd/fault"
	"github.com/bitmark-inc/tpccd/storage/mocks"
)

const (
	dbName     = "data-access"
	defaultKey = "key"
)

var (
	db           *leveldb.DB
	trx          *leveldb.Batch
	defaultValue = []byte{'a'}
)

func initialiseVars() {
	trx = new(leveldb.Batch)
	if db == nil {
		db, _ = leveldb.OpenFile(dbName, nil)
	}
}

func newMockCache(t *testing.T) (*mocks.MockCache, *gomock.Controller) {
	ctl := gomock.NewController(t)
	return mocks.NewMockCache(ctl), ctl
}

func setupDummyMockCache(t *testing.T) *mocks.MockCache {
	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	mockCache.EXPECT().Get(gomock.Any()).Return([]byte{}, dbPut, true).AnyTimes()
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockCache.EXPECT().Clear().AnyTimes()

	return mockCache
}

func setupTestDataAccess(mockCache *mocks.MockCache) DataAccess {
	return newDA(db, trx, mockCache)
}

func removeDir(dirName string) {
	dirPath, _ := filepath.Abs(dirName)
	_ = os.RemoveAll(dirPath)
}

func teardownTestDataAccess() {
	_ = db.Close()
	removeDir(dbName)
}

func TestMain(m *testing.M) {
	initialiseVars()
	rc := m.Run()
	teardownTestDataAccess()
	os.Exit(rc)
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	mc := setupDummyMockCache(t)
	da := setupTestDataAccess(mc)

	err := da.Begin()
	assert.Equal(t, nil, err, "first time Begin should with not error")

	err = da.Begin()
	assert.NotEqual(t, nil, err, "second time Begin should return error")
}

func TestCommitDidNotUnlockInUse(t *testing.T) {
	mc := setupDummyMockCache(t)
	da := setupTestDataAccess(mc)

	_ = da.Begin()
	_ = da.Commit()

	err := da.Begin()
	assert.NotEqual(t, nil, err, "did not reset internal inUse ")
}

func TestCommitResetTransaction(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(gomock.Any()).Return([]byte{}, dbAbsent, false).AnyTimes()
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mc.EXPECT().Clear().AnyTimes()
	da := setupTestDataAccess(mc)

	_ = da.Begin()
	_ = da.Put([]byte(defaultKey), defaultValue)
	_ = da.Commit()
	da.Abort()

	actual := da.DumpTx()
	assert.Equal(t, 0, len(actual), "Commit did not reset transaction")
}

func TestCommitWriteToDB(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(gomock.Any()).Return(defaultValue, dbAbsent, false).AnyTimes()
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mc.EXPECT().Clear().AnyTimes()
	da := setupTestDataAccess(mc)

	_ = da.Begin()
	_ = da.Put([]byte(defaultKey), defaultValue)
	_ = da.Commit()

	actual, _ := da.Get([]byte(defaultKey))
	assert.Equal(t, defaultValue, actual, "commit not write to db")
}

func TestPutActionCached(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(gomock.Any()).Return([]byte{}, dbAbsent, false).AnyTimes()
	mc.EXPECT().Set(dbPut, defaultKey, defaultValue).Times(1)
	mc.EXPECT().Clear().AnyTimes()
	da := setupTestDataAccess(mc)

	_ = da.Begin()
	err := da.Put([]byte(defaultKey), defaultValue)
	assert.Equal(t, nil, err, "put with error")
}

func TestPutDeletedKeyReturnsConflict(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(defaultKey).Return([]byte{}, dbDelete, true).Times(1)
	da := setupTestDataAccess(mc)

	_ = da.Begin()
	err := da.Put([]byte(defaultKey), defaultValue)
	assert.Equal(t, fault.RecordMarkedDeleted, err, "put on deleted key must conflict")
}

func TestDeleteActionCached(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(gomock.Any()).Return([]byte{}, dbAbsent, false).AnyTimes()
	mc.EXPECT().Set(dbPut, "a", []byte{'b'}).Times(1)
	mc.EXPECT().Set(dbDelete, "a", []byte{}).Times(1)
	mc.EXPECT().Clear().AnyTimes()
	da := setupTestDataAccess(mc)

	fixture := struct {
		key   []byte
		value []byte
	}{
		[]byte{'a'},
		[]byte{'b'},
	}

	_ = da.Begin()
	_ = da.Put(fixture.key, fixture.value)
	da.Delete(fixture.key)
}

func TestGetActionReadsFromCache(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(defaultKey).Return(defaultValue, dbPut, true).Times(1)
	da := setupTestDataAccess(mc)

	actual, err := da.Get([]byte(defaultKey))
	assert.Equal(t, nil, err, "get with error")
	assert.Equal(t, defaultValue, actual, "wrong cached value")
}

func TestGetDeletedKeyIsAbsent(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(defaultKey).Return([]byte{}, dbDelete, true).Times(1)
	da := setupTestDataAccess(mc)

	actual, err := da.Get([]byte(defaultKey))
	assert.Equal(t, nil, err, "get with error")
	assert.Nil(t, actual, "deleted key must read as absent")
}

func TestGetCachesAbsence(t *testing.T) {
	key := "no-such-key"

	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(key).Return([]byte{}, dbAbsent, false).Times(1)
	mc.EXPECT().Set(dbAbsent, key, []byte{}).Times(1)
	da := setupTestDataAccess(mc)

	actual, err := da.Get([]byte(key))
	assert.Equal(t, nil, err, "get with error")
	assert.Nil(t, actual, "missing key must read as absent")
}

func TestInUse(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	da := setupTestDataAccess(mc)

	inUse := da.InUse()
	assert.Equal(t, false, inUse, "inUse default not true")

	_ = da.Begin()
	inUse = da.InUse()
	assert.Equal(t, true, inUse, "inUse not set")
}

func TestAbortResetInUse(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(gomock.Any()).Return([]byte{}, dbAbsent, false).Times(1)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	mc.EXPECT().Clear().Times(1)
	da := setupTestDataAccess(mc)

	_ = da.Begin()
	_ = da.Put([]byte(defaultKey), defaultValue)
	da.Abort()

	inUse := da.InUse()
	assert.Equal(t, false, inUse, "inUse is not set")
}

func TestAbortResetBatch(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(gomock.Any()).Return([]byte{}, dbAbsent, false).Times(1)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	mc.EXPECT().Clear().Times(1)
	da := setupTestDataAccess(mc)

	_ = da.Begin()
	_ = da.Put([]byte(defaultKey), defaultValue)
	da.Abort()

	dump := da.DumpTx()
	assert.Equal(t, []byte{}, dump, "batch not reset")
}

func TestHasCached(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(defaultKey).Return(defaultValue, dbPut, true).Times(1)
	da := setupTestDataAccess(mc)

	has, err := da.Has([]byte(defaultKey))
	assert.Equal(t, true, has, "cached key not found")
	assert.Equal(t, nil, err, "has with error")
}

func TestHasDeletedKeyIsFalse(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(defaultKey).Return([]byte{}, dbDelete, true).Times(1)
	da := setupTestDataAccess(mc)

	has, err := da.Has([]byte(defaultKey))
	assert.Equal(t, false, has, "deleted key must not exist")
	assert.Equal(t, nil, err, "has with error")
}
