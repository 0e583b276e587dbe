// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tpccd/compositekey"
	"github.com/bitmark-inc/tpccd/fault"
	"github.com/bitmark-inc/tpccd/registry"
	"github.com/bitmark-inc/tpccd/storage"
	"github.com/bitmark-inc/tpccd/tablerecord"
)

const databaseName = "registry-test"

func removeFiles() {
	os.RemoveAll(databaseName + "-state.leveldb")
	os.RemoveAll(databaseName + "-index.leveldb")
}

func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

func commit(t *testing.T, trx storage.Transaction) {
	err := trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestCreateAndRead(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()
	warehouse := &tablerecord.Warehouse{
		ID:   1,
		Name: "W_One",
		Tax:  0.1000,
	}
	err := registry.Create(warehouse)
	assert.Equal(t, nil, err, "create with error")
	commit(t, trx)

	stored := &tablerecord.Warehouse{ID: 1}
	trx, _ = storage.NewDBTransaction()
	err = registry.Read(stored)
	trx.Abort()
	assert.Equal(t, nil, err, "read with error")
	assert.Equal(t, warehouse, stored, "wrong stored record")
}

func TestCreateExistingFails(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()
	item := &tablerecord.Item{ID: 1, Name: "Cup", Price: 99.50}
	err := registry.Create(item)
	assert.Equal(t, nil, err, "create with error")

	// duplicate inside the same transaction
	err = registry.Create(item)
	assert.Equal(t, fault.RecordAlreadyExists, err, "duplicate create accepted")
	commit(t, trx)

	// duplicate after commit
	trx, _ = storage.NewDBTransaction()
	err = registry.Create(item)
	trx.Abort()
	assert.Equal(t, fault.RecordAlreadyExists, err, "duplicate create accepted")
}

func TestUpdateMissingFails(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()
	err := registry.Update(&tablerecord.Item{ID: 99})
	trx.Abort()
	assert.Equal(t, fault.RecordNotFound, err, "update of missing record accepted")
}

func TestDeleteMissingFails(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()
	err := registry.Delete(&tablerecord.Item{ID: 99})
	trx.Abort()
	assert.Equal(t, fault.RecordNotFound, err, "delete of missing record accepted")
}

func TestReadMissingFails(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()
	err := registry.Read(&tablerecord.Item{ID: 99})
	trx.Abort()
	assert.Equal(t, fault.RecordNotFound, err, "read of missing record succeeded")
}

func TestUpdateOverwrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()
	item := &tablerecord.Item{ID: 1, Name: "Cup", Price: 99.50}
	_ = registry.Create(item)
	commit(t, trx)

	trx, _ = storage.NewDBTransaction()
	item.Price = 89.50
	err := registry.Update(item)
	assert.Equal(t, nil, err, "update with error")
	commit(t, trx)

	stored := &tablerecord.Item{ID: 1}
	trx, _ = storage.NewDBTransaction()
	err = registry.Read(stored)
	trx.Abort()
	assert.Equal(t, nil, err, "read with error")
	assert.Equal(t, 89.50, stored.Price, "update not stored")
}

func TestCustomerLastNameIndexMaintained(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()
	alice := &tablerecord.Customer{
		ID:          1,
		DistrictID:  1,
		WarehouseID: 1,
		First:       "Alice",
		Last:        "Yong",
	}
	peter := &tablerecord.Customer{
		ID:          2,
		DistrictID:  1,
		WarehouseID: 1,
		First:       "Peter",
		Last:        "Yong",
	}
	other := &tablerecord.Customer{
		ID:          3,
		DistrictID:  2,
		WarehouseID: 1,
		First:       "Kate",
		Last:        "Yong",
	}
	_ = registry.Create(alice)
	_ = registry.Create(peter)
	_ = registry.Create(other)
	commit(t, trx)

	// only the matching district is selected
	matches, err := registry.ReadCustomersByLastName(1, 1, "Yong")
	assert.Equal(t, nil, err, "index read with error")
	assert.Equal(t, 2, len(matches), "wrong match count")
	assert.Equal(t, "Alice", matches[0].First, "wrong first match")
	assert.Equal(t, "Peter", matches[1].First, "wrong second match")

	// delete removes the index entry as well
	trx, _ = storage.NewDBTransaction()
	err = registry.Delete(alice)
	assert.Equal(t, nil, err, "delete with error")
	commit(t, trx)

	matches, err = registry.ReadCustomersByLastName(1, 1, "Yong")
	assert.Equal(t, nil, err, "index read with error")
	assert.Equal(t, 1, len(matches), "wrong match count after delete")
	assert.Equal(t, "Peter", matches[0].First, "wrong remaining match")
}

func TestReadAllUnderPartialKey(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()
	for order := 3000; order <= 3001; order += 1 {
		for number := 1; number <= 3; number += 1 {
			line := &tablerecord.OrderLine{
				OrderID:     order,
				DistrictID:  1,
				WarehouseID: 1,
				Number:      number,
				ItemID:      number,
			}
			err := registry.Create(line)
			assert.Equal(t, nil, err, "create with error")
		}
	}
	commit(t, trx)

	partial := []string{
		compositekey.Pad(1),
		compositekey.Pad(1),
		compositekey.Pad(3001),
	}
	records, err := registry.ReadAll(tablerecord.OrderLineTable, partial,
		func() tablerecord.Record { return &tablerecord.OrderLine{} })
	assert.Equal(t, nil, err, "read all with error")
	assert.Equal(t, 3, len(records), "wrong record count")

	for i, record := range records {
		line := record.(*tablerecord.OrderLine)
		assert.Equal(t, 3001, line.OrderID, "wrong order selected")
		assert.Equal(t, i+1, line.Number, "records out of key order")
	}
}
