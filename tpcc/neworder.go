// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tpcc

import (
	"strings"

	"github.com/bitmark-inc/tpccd/fault"
	"github.com/bitmark-inc/tpccd/registry"
	"github.com/bitmark-inc/tpccd/storage"
	"github.com/bitmark-inc/tpccd/tablerecord"
)

const invalidItemMessage = "Item number is not valid"

// NewOrder - the New-Order read-write profile
//
// an unused item id is a deliberate benchmark condition, it reports
// the invalid item message and leaves the database untouched
func NewOrder(input NewOrderInput) (*NewOrderOutput, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	output, err := doNewOrder(&input)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	// an invalid item aborts the transaction but still reports a result
	if "" != output.Message {
		trx.Abort()
		return output, nil
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}
	return output, nil
}

func doNewOrder(input *NewOrderInput) (*NewOrderOutput, error) {

	if len(input.ItemIDs) != len(input.SupplyWarehouseIDs) ||
		len(input.ItemIDs) != len(input.Quantities) {
		return nil, fault.MismatchedItemCounts
	}

	log := globalData.log

	warehouse := &tablerecord.Warehouse{ID: input.WarehouseID}
	err := registry.Read(warehouse)
	if nil != err {
		return nil, err
	}

	district := &tablerecord.District{
		ID:          input.DistrictID,
		WarehouseID: warehouse.ID,
	}
	err = registry.Read(district)
	if nil != err {
		return nil, err
	}

	// take the next order number of the district
	orderID := district.NextOrderID
	district.NextOrderID += 1
	err = registry.Update(district)
	if nil != err {
		return nil, err
	}

	customer := &tablerecord.Customer{
		ID:          input.CustomerID,
		DistrictID:  district.ID,
		WarehouseID: warehouse.ID,
	}
	err = registry.Read(customer)
	if nil != err {
		return nil, err
	}

	allLocal := 1
	for _, supplyWarehouseID := range input.SupplyWarehouseIDs {
		if supplyWarehouseID != warehouse.ID {
			allLocal = 0
			break
		}
	}

	newOrder := &tablerecord.NewOrder{
		OrderID:     orderID,
		DistrictID:  district.ID,
		WarehouseID: warehouse.ID,
	}
	err = registry.Create(newOrder)
	if nil != err {
		return nil, err
	}

	order := &tablerecord.Order{
		ID:          orderID,
		DistrictID:  district.ID,
		WarehouseID: warehouse.ID,
		CustomerID:  customer.ID,
		EntryDate:   input.EntryDate,
		CarrierID:   0,
		LineCount:   len(input.ItemIDs),
		AllLocal:    allLocal,
	}
	err = registry.Create(order)
	if nil != err {
		return nil, err
	}

	output := &NewOrderOutput{
		WarehouseID:  warehouse.ID,
		DistrictID:   district.ID,
		CustomerID:   customer.ID,
		CustomerLast: customer.Last,
		Credit:       customer.Credit,
		Discount:     customer.Discount,
		WarehouseTax: warehouse.Tax,
		DistrictTax:  district.Tax,
		LineCount:    order.LineCount,
		OrderID:      order.ID,
		EntryDate:    order.EntryDate,
		Items:        make([]ItemsData, 0, len(input.ItemIDs)),
	}

	total := 0.0
	for i, itemID := range input.ItemIDs {
		supplyWarehouseID := input.SupplyWarehouseIDs[i]
		quantity := input.Quantities[i]

		item := &tablerecord.Item{ID: itemID}
		err = registry.Read(item)
		if fault.IsErrNotFound(err) {
			log.Warnf("new order %d: invalid item: %d", orderID, itemID)
			// report only the identifying fields, none of the
			// accumulated display data survives the rollback
			return &NewOrderOutput{
				WarehouseID:  warehouse.ID,
				DistrictID:   district.ID,
				CustomerID:   customer.ID,
				CustomerLast: customer.Last,
				Credit:       customer.Credit,
				OrderID:      orderID,
				Items:        []ItemsData{},
				Message:      invalidItemMessage,
			}, nil
		} else if nil != err {
			return nil, err
		}

		stock := &tablerecord.Stock{
			ItemID:      itemID,
			WarehouseID: supplyWarehouseID,
		}
		err = registry.Read(stock)
		if nil != err {
			return nil, err
		}

		if stock.Quantity >= quantity+10 {
			stock.Quantity -= quantity
		} else {
			stock.Quantity = stock.Quantity - quantity + 91
		}
		stock.YTD += quantity
		stock.OrderCount += 1
		if supplyWarehouseID != warehouse.ID {
			stock.RemoteCount += 1
		}
		err = registry.Update(stock)
		if nil != err {
			return nil, err
		}

		amount := float64(quantity) * item.Price

		brandGeneric := "G"
		if strings.Contains(item.Data, "ORIGINAL") && strings.Contains(stock.Data, "ORIGINAL") {
			brandGeneric = "B"
		}

		// the district information of the ordering district
		distInfo, err := stock.DistrictInfo(district.ID)
		if nil != err {
			return nil, err
		}

		orderLine := &tablerecord.OrderLine{
			OrderID:           orderID,
			DistrictID:        district.ID,
			WarehouseID:       warehouse.ID,
			Number:            i + 1,
			ItemID:            itemID,
			SupplyWarehouseID: supplyWarehouseID,
			DeliveryDate:      "",
			Quantity:          quantity,
			Amount:            amount,
			DistInfo:          distInfo,
		}
		err = registry.Create(orderLine)
		if nil != err {
			return nil, err
		}

		output.Items = append(output.Items, ItemsData{
			SupplyWarehouseID: supplyWarehouseID,
			ItemID:            itemID,
			ItemName:          item.Name,
			Quantity:          quantity,
			StockQuantity:     stock.Quantity,
			BrandGeneric:      brandGeneric,
			ItemPrice:         item.Price,
			Amount:            amount,
		})
		total += amount
	}

	output.TotalAmount = total * (1 - customer.Discount) * (1 + warehouse.Tax + district.Tax)

	log.Debugf("new order %d: %d lines  total: %f", orderID, order.LineCount, output.TotalAmount)
	return output, nil
}
