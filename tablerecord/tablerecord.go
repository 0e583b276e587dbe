// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tablerecord - the stored entity types of the benchmark schema
//
// each record type knows its table, its ordered primary key parts and
// how to convert itself to and from the stored byte form
//
// the stored form is JSON with the conventional column names of the
// schema (w_id, d_next_o_id, ol_dist_info, ...) so decoding merges
// onto an existing record: unknown input fields are ignored and fields
// absent from the input keep their current values
package tablerecord

// Table - enumeration of the entity tables
type Table int

// the entity tables
const (
	WarehouseTable Table = iota + 1
	DistrictTable
	CustomerTable
	HistoryTable
	NewOrderTable
	OrderTable
	OrderLineTable
	ItemTable
	StockTable
)

// String - the conventional name of a table
func (table Table) String() string {
	switch table {
	case WarehouseTable:
		return "WAREHOUSE"
	case DistrictTable:
		return "DISTRICT"
	case CustomerTable:
		return "CUSTOMER"
	case HistoryTable:
		return "HISTORY"
	case NewOrderTable:
		return "NEW_ORDER"
	case OrderTable:
		return "ORDERS"
	case OrderLineTable:
		return "ORDER_LINE"
	case ItemTable:
		return "ITEM"
	case StockTable:
		return "STOCK"
	default:
		return "*unknown*"
	}
}

// Record - the contract every stored entity implements
type Record interface {
	Table() Table
	KeyParts() []string
	Pack() ([]byte, error)
	Unpack([]byte) error
}
