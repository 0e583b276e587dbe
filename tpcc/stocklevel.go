// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tpcc

import (
	"github.com/bitmark-inc/tpccd/fault"
	"github.com/bitmark-inc/tpccd/registry"
	"github.com/bitmark-inc/tpccd/storage"
	"github.com/bitmark-inc/tpccd/tablerecord"
)

// how many of the most recent orders the Stock-Level profile examines
const stockLevelWindow = 20

// StockLevel - the Stock-Level read-only profile
//
// counts the stocks below the threshold among the items of the most
// recent orders of the district
func StockLevel(input StockLevelInput) (*StockLevelOutput, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	return doStockLevel(&input)
}

func doStockLevel(input *StockLevelInput) (*StockLevelOutput, error) {

	district := &tablerecord.District{
		ID:          input.DistrictID,
		WarehouseID: input.WarehouseID,
	}
	err := registry.Read(district)
	if nil != err {
		return nil, err
	}

	firstOrderID := district.NextOrderID - stockLevelWindow
	if firstOrderID < 0 {
		firstOrderID = 0
	}

	// the distinct item ids of the recent orders, gaps in the order id
	// sequence are simply skipped
	itemIDs := map[int]struct{}{}
	for orderID := firstOrderID; orderID < district.NextOrderID; orderID += 1 {
		order := &tablerecord.Order{
			ID:          orderID,
			DistrictID:  district.ID,
			WarehouseID: district.WarehouseID,
		}
		err := registry.Read(order)
		if fault.IsErrNotFound(err) {
			continue
		} else if nil != err {
			return nil, err
		}

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
			itemIDs[line.ItemID] = struct{}{}
		}
	}

	if 0 == len(itemIDs) {
		return nil, fault.NoRecentOrderItems
	}

	lowStock := 0
	for itemID := range itemIDs {
		stock := &tablerecord.Stock{
			ItemID:      itemID,
			WarehouseID: district.WarehouseID,
		}
		err := registry.Read(stock)
		if nil != err {
			return nil, err
		}
		if stock.Quantity < input.Threshold {
			lowStock += 1
		}
	}

	return &StockLevelOutput{
		WarehouseID: district.WarehouseID,
		DistrictID:  district.ID,
		Threshold:   input.Threshold,
		LowStock:    lowStock,
	}, nil
}
