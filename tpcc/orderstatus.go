// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tpcc

import (
	"github.com/bitmark-inc/tpccd/registry"
	"github.com/bitmark-inc/tpccd/storage"
	"github.com/bitmark-inc/tpccd/tablerecord"
)

// OrderStatus - the Order-Status read-only profile
func OrderStatus(input OrderStatusInput) (*OrderStatusOutput, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	return doOrderStatus(&input)
}

func doOrderStatus(input *OrderStatusInput) (*OrderStatusOutput, error) {

	customer, err := customerByIDOrLastName(
		input.WarehouseID, input.DistrictID,
		input.CustomerID, input.CustomerLast)
	if nil != err {
		return nil, err
	}

	order, err := lastOrderOfCustomer(customer.WarehouseID, customer.DistrictID, customer.ID)
	if nil != err {
		return nil, err
	}

	orderLines := make([]OrderLineData, 0, order.LineCount)
	for number := 1; number <= order.LineCount; number += 1 {
		line := &tablerecord.OrderLine{
			OrderID:     order.ID,
			DistrictID:  order.DistrictID,
			WarehouseID: order.WarehouseID,
			Number:      number,
		}
		err = registry.Read(line)
		if nil != err {
			return nil, err
		}
		orderLines = append(orderLines, OrderLineData{
			SupplyWarehouseID: line.SupplyWarehouseID,
			ItemID:            line.ItemID,
			Quantity:          line.Quantity,
			Amount:            line.Amount,
			DeliveryDate:      line.DeliveryDate,
		})
	}

	return &OrderStatusOutput{
		WarehouseID:    customer.WarehouseID,
		DistrictID:     customer.DistrictID,
		CustomerID:     customer.ID,
		CustomerFirst:  customer.First,
		CustomerMiddle: customer.Middle,
		CustomerLast:   customer.Last,
		Balance:        customer.Balance,
		OrderID:        order.ID,
		EntryDate:      order.EntryDate,
		CarrierID:      order.CarrierID,
		OrderLines:     orderLines,
	}, nil
}
