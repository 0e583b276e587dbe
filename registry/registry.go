// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - typed record access over the storage pools
//
// create, read, update and delete for every tablerecord type, routing
// each record to the pool of its table, customers are additionally
// maintained in a last name index so Payment and Order-Status can
// select by (warehouse, district, last name)
package registry

import (
	"github.com/bitmark-inc/tpccd/compositekey"
	"github.com/bitmark-inc/tpccd/fault"
	"github.com/bitmark-inc/tpccd/storage"
	"github.com/bitmark-inc/tpccd/tablerecord"
)

// route a table to its storage pool
func poolFor(table tablerecord.Table) (*storage.PoolHandle, error) {
	switch table {
	case tablerecord.WarehouseTable:
		return storage.Pool.Warehouses, nil
	case tablerecord.DistrictTable:
		return storage.Pool.Districts, nil
	case tablerecord.CustomerTable:
		return storage.Pool.Customers, nil
	case tablerecord.HistoryTable:
		return storage.Pool.Histories, nil
	case tablerecord.NewOrderTable:
		return storage.Pool.NewOrders, nil
	case tablerecord.OrderTable:
		return storage.Pool.Orders, nil
	case tablerecord.OrderLineTable:
		return storage.Pool.OrderLines, nil
	case tablerecord.ItemTable:
		return storage.Pool.Items, nil
	case tablerecord.StockTable:
		return storage.Pool.Stocks, nil
	default:
		return nil, fault.RecordNotFound
	}
}

func recordKey(record tablerecord.Record) []byte {
	return compositekey.Join(record.KeyParts()...)
}

// Create - store a record that must not already exist
func Create(record tablerecord.Record) error {
	pool, err := poolFor(record.Table())
	if nil != err {
		return err
	}

	key := recordKey(record)
	has, err := pool.Has(key)
	if nil != err {
		return err
	}
	if has {
		return fault.RecordAlreadyExists
	}

	return store(pool, key, record)
}

// Update - overwrite a record that must already exist
func Update(record tablerecord.Record) error {
	pool, err := poolFor(record.Table())
	if nil != err {
		return err
	}

	key := recordKey(record)
	has, err := pool.Has(key)
	if nil != err {
		return err
	}
	if !has {
		return fault.RecordNotFound
	}

	return store(pool, key, record)
}

func store(pool *storage.PoolHandle, key []byte, record tablerecord.Record) error {
	data, err := record.Pack()
	if nil != err {
		return err
	}

	err = pool.Put(key, data)
	if nil != err {
		return err
	}

	// customers are also stored under their last name
	if customer, ok := record.(*tablerecord.Customer); ok {
		nameKey := compositekey.Join(customer.NameKeyParts()...)
		err = storage.Pool.CustomersByName.Put(nameKey, data)
		if nil != err {
			return err
		}
	}
	return nil
}

// Delete - remove a record that must already exist
func Delete(record tablerecord.Record) error {
	pool, err := poolFor(record.Table())
	if nil != err {
		return err
	}

	key := recordKey(record)
	has, err := pool.Has(key)
	if nil != err {
		return err
	}
	if !has {
		return fault.RecordNotFound
	}

	err = pool.Delete(key)
	if nil != err {
		return err
	}

	if customer, ok := record.(*tablerecord.Customer); ok {
		nameKey := compositekey.Join(customer.NameKeyParts()...)
		err = storage.Pool.CustomersByName.Delete(nameKey)
		if nil != err {
			return err
		}
	}
	return nil
}

// Read - fetch a record by the key parts already set on it
//
// the stored fields are merged onto the record
func Read(record tablerecord.Record) error {
	pool, err := poolFor(record.Table())
	if nil != err {
		return err
	}

	data, err := pool.Get(recordKey(record))
	if nil != err {
		return err
	}
	if nil == data {
		return fault.RecordNotFound
	}

	return record.Unpack(data)
}

// Exists - check whether a record is present
func Exists(record tablerecord.Record) (bool, error) {
	pool, err := poolFor(record.Table())
	if nil != err {
		return false, err
	}
	return pool.Has(recordKey(record))
}

// ReadAll - fetch every record of a table under a partial key
//
// records are returned in ascending key order, the factory provides a
// fresh record for each element
func ReadAll(table tablerecord.Table, partialParts []string, factory func() tablerecord.Record) ([]tablerecord.Record, error) {
	pool, err := poolFor(table)
	if nil != err {
		return nil, err
	}

	cursor := pool.NewFetchCursorPrefixed(compositekey.Join(partialParts...))

	records := []tablerecord.Record{}
	err = cursor.Map(func(key []byte, value []byte) error {
		record := factory()
		err := record.Unpack(value)
		if nil != err {
			return err
		}
		records = append(records, record)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return records, nil
}

// ReadCustomersByLastName - fetch the customers matching a last name
//
// scans the last name index of one district, results arrive in
// customer id order
func ReadCustomersByLastName(warehouseID int, districtID int, lastName string) ([]*tablerecord.Customer, error) {
	prefix := compositekey.Join(
		compositekey.Pad(uint64(warehouseID)),
		compositekey.Pad(uint64(districtID)),
		lastName,
	)
	cursor := storage.Pool.CustomersByName.NewFetchCursorPrefixed(prefix)

	customers := []*tablerecord.Customer{}
	err := cursor.Map(func(key []byte, value []byte) error {
		customer := &tablerecord.Customer{}
		err := customer.Unpack(value)
		if nil != err {
			return err
		}
		customers = append(customers, customer)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return customers, nil
}
