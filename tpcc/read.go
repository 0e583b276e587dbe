// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tpcc

import (
	"github.com/bitmark-inc/tpccd/registry"
	"github.com/bitmark-inc/tpccd/tablerecord"
)

// single record reads for diagnostics, no transaction needed

// ReadWarehouse - fetch one warehouse row
func ReadWarehouse(input ReadWarehouseInput) (*tablerecord.Warehouse, error) {
	warehouse := &tablerecord.Warehouse{ID: input.WarehouseID}
	err := registry.Read(warehouse)
	if nil != err {
		return nil, err
	}
	return warehouse, nil
}

// ReadOrder - fetch one order row
func ReadOrder(input ReadOrderInput) (*tablerecord.Order, error) {
	order := &tablerecord.Order{
		ID:          input.OrderID,
		DistrictID:  input.DistrictID,
		WarehouseID: input.WarehouseID,
	}
	err := registry.Read(order)
	if nil != err {
		return nil, err
	}
	return order, nil
}

// ReadItem - fetch one item row
func ReadItem(input ReadItemInput) (*tablerecord.Item, error) {
	item := &tablerecord.Item{ID: input.ItemID}
	err := registry.Read(item)
	if nil != err {
		return nil, err
	}
	return item, nil
}

// ReadNewOrder - fetch one pending order row
func ReadNewOrder(input ReadNewOrderInput) (*tablerecord.NewOrder, error) {
	newOrder := &tablerecord.NewOrder{
		OrderID:     input.OrderID,
		DistrictID:  input.DistrictID,
		WarehouseID: input.WarehouseID,
	}
	err := registry.Read(newOrder)
	if nil != err {
		return nil, err
	}
	return newOrder, nil
}
