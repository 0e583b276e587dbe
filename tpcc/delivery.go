// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tpcc

import (
	"github.com/bitmark-inc/tpccd/compositekey"
	"github.com/bitmark-inc/tpccd/registry"
	"github.com/bitmark-inc/tpccd/storage"
	"github.com/bitmark-inc/tpccd/tablerecord"
)

// Delivery - the Delivery read-write profile
//
// delivers the oldest undelivered order of every district of the
// warehouse, a district without a pending order is counted as skipped
// rather than failing the whole batch
func Delivery(input DeliveryInput) (*DeliveryOutput, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	output, err := doDelivery(&input)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}
	return output, nil
}

func doDelivery(input *DeliveryInput) (*DeliveryOutput, error) {

	log := globalData.log

	output := &DeliveryOutput{
		WarehouseID: input.WarehouseID,
		CarrierID:   input.CarrierID,
		Delivered:   []DeliveredOrder{},
	}

	for districtID := 1; districtID <= districtsPerWarehouse; districtID += 1 {

		newOrder, err := oldestNewOrder(input.WarehouseID, districtID)
		if nil != err {
			return nil, err
		}
		if nil == newOrder {
			log.Debugf("delivery: district: %d has no pending order", districtID)
			output.Skipped += 1
			continue
		}

		err = registry.Delete(newOrder)
		if nil != err {
			return nil, err
		}

		order := &tablerecord.Order{
			ID:          newOrder.OrderID,
			DistrictID:  newOrder.DistrictID,
			WarehouseID: newOrder.WarehouseID,
		}
		err = registry.Read(order)
		if nil != err {
			return nil, err
		}
		order.CarrierID = input.CarrierID
		err = registry.Update(order)
		if nil != err {
			return nil, err
		}

		total := 0.0
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
			line.DeliveryDate = input.DeliveryDate
			err = registry.Update(line)
			if nil != err {
				return nil, err
			}
			total += line.Amount
		}

		customer := &tablerecord.Customer{
			ID:          order.CustomerID,
			DistrictID:  order.DistrictID,
			WarehouseID: order.WarehouseID,
		}
		err = registry.Read(customer)
		if nil != err {
			return nil, err
		}
		customer.Balance += total
		customer.DeliveryCount += 1
		err = registry.Update(customer)
		if nil != err {
			return nil, err
		}

		output.Delivered = append(output.Delivered, DeliveredOrder{
			DistrictID: districtID,
			OrderID:    order.ID,
		})
	}

	log.Debugf("delivery: warehouse: %d  delivered: %d  skipped: %d",
		input.WarehouseID, len(output.Delivered), output.Skipped)
	return output, nil
}

// the pending order with the lowest order id, nil when the district
// has none
func oldestNewOrder(warehouseID int, districtID int) (*tablerecord.NewOrder, error) {
	prefix := compositekey.Join(
		compositekey.Pad(uint64(warehouseID)),
		compositekey.Pad(uint64(districtID)),
	)
	cursor := storage.Pool.NewOrders.NewFetchCursorPrefixed(prefix)

	elements, err := cursor.Fetch(1)
	if nil != err {
		return nil, err
	}
	if 0 == len(elements) {
		return nil, nil
	}

	newOrder := &tablerecord.NewOrder{}
	err = newOrder.Unpack(elements[0].Value)
	if nil != err {
		return nil, err
	}
	return newOrder, nil
}
