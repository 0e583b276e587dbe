// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tpcc

import (
	"fmt"
	"sort"

	"github.com/bitmark-inc/tpccd/compositekey"
	"github.com/bitmark-inc/tpccd/fault"
	"github.com/bitmark-inc/tpccd/registry"
	"github.com/bitmark-inc/tpccd/tablerecord"
)

// select a customer by id, or by the last name rule
//
// for a last name the matching customers are ordered by first name
// and the one at position ceil(n/2) is taken, a customer id of zero
// counts as not supplied
func customerByIDOrLastName(warehouseID int, districtID int, customerID int, lastName string) (*tablerecord.Customer, error) {

	if 0 == customerID && "" == lastName {
		return nil, fault.MissingCustomerSelector
	}

	if 0 != customerID {
		customer := &tablerecord.Customer{
			ID:          customerID,
			DistrictID:  districtID,
			WarehouseID: warehouseID,
		}
		err := registry.Read(customer)
		if nil != err {
			return nil, err
		}
		return customer, nil
	}

	customers, err := registry.ReadCustomersByLastName(warehouseID, districtID, lastName)
	if nil != err {
		return nil, err
	}
	if 0 == len(customers) {
		return nil, fault.CustomerNotFound
	}

	sort.Slice(customers, func(i, j int) bool {
		return customers[i].First < customers[j].First
	})

	position := (len(customers) + 1) / 2 // ceil(n/2), 1 based
	return customers[position-1], nil
}

// the most recent order of a customer, largest order id wins
func lastOrderOfCustomer(warehouseID int, districtID int, customerID int) (*tablerecord.Order, error) {
	partial := []string{
		compositekey.Pad(uint64(warehouseID)),
		compositekey.Pad(uint64(districtID)),
	}
	records, err := registry.ReadAll(tablerecord.OrderTable, partial,
		func() tablerecord.Record { return &tablerecord.Order{} })
	if nil != err {
		return nil, err
	}

	var last *tablerecord.Order
	for _, record := range records {
		order := record.(*tablerecord.Order)
		if order.CustomerID != customerID {
			continue
		}
		if nil == last || order.ID > last.ID {
			last = order
		}
	}
	if nil == last {
		return nil, fault.NoOrdersForCustomer
	}
	return last, nil
}

// pad a district information string to the stored width of 24
func padDistrictInfo(info string) (string, error) {
	if len(info) > 24 {
		return "", fmt.Errorf("district info is too long: %d", len(info))
	}
	return fmt.Sprintf("%24s", info), nil
}
