// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tpcc

import (
	"fmt"

	"github.com/bitmark-inc/tpccd/registry"
	"github.com/bitmark-inc/tpccd/storage"
	"github.com/bitmark-inc/tpccd/tablerecord"
)

// maximum stored length of the customer data field
const customerDataLimit = 500

// maximum displayed length of the customer data field
const customerDataDisplayLimit = 200

// Payment - the Payment read-write profile
func Payment(input PaymentInput) (*PaymentOutput, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	output, err := doPayment(&input)
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

func doPayment(input *PaymentInput) (*PaymentOutput, error) {

	log := globalData.log

	warehouse := &tablerecord.Warehouse{ID: input.WarehouseID}
	err := registry.Read(warehouse)
	if nil != err {
		return nil, err
	}
	warehouse.YTD += input.Amount
	err = registry.Update(warehouse)
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
	district.YTD += input.Amount
	err = registry.Update(district)
	if nil != err {
		return nil, err
	}

	customer, err := customerByIDOrLastName(
		input.CustomerWarehouseID, input.CustomerDistrictID,
		input.CustomerID, input.CustomerLast)
	if nil != err {
		return nil, err
	}

	customer.Balance -= input.Amount
	customer.YTDPayment += input.Amount
	customer.PaymentCount += 1

	// a bad credit customer keeps a record of the payment in its data
	// field, newest entry first, truncated to the stored limit
	if "BC" == customer.Credit {
		entry := fmt.Sprintf("%d %d %d %d %d %g",
			customer.ID, customer.DistrictID, customer.WarehouseID,
			district.ID, warehouse.ID, input.Amount)
		data := entry + "|" + customer.Data
		if len(data) > customerDataLimit {
			data = data[:customerDataLimit]
		}
		customer.Data = data
	}

	err = registry.Update(customer)
	if nil != err {
		return nil, err
	}

	history := &tablerecord.History{
		CustomerID:          customer.ID,
		CustomerDistrictID:  customer.DistrictID,
		CustomerWarehouseID: customer.WarehouseID,
		DistrictID:          district.ID,
		WarehouseID:         warehouse.ID,
		Date:                input.Date,
		Amount:              input.Amount,
		Data:                warehouse.Name + "    " + district.Name,
	}
	err = registry.Create(history)
	if nil != err {
		return nil, err
	}

	// only a bad credit customer has data to display
	displayData := ""
	if "BC" == customer.Credit {
		displayData = customer.Data
		if len(displayData) > customerDataDisplayLimit {
			displayData = displayData[:customerDataDisplayLimit]
		}
	}

	log.Debugf("payment: customer: %d  amount: %f  balance: %f",
		customer.ID, input.Amount, customer.Balance)

	return &PaymentOutput{
		WarehouseID:         warehouse.ID,
		DistrictID:          district.ID,
		CustomerID:          customer.ID,
		CustomerDistrictID:  customer.DistrictID,
		CustomerWarehouseID: customer.WarehouseID,
		Amount:              input.Amount,
		Date:                input.Date,
		WarehouseStreet1:    warehouse.Street1,
		WarehouseStreet2:    warehouse.Street2,
		WarehouseCity:       warehouse.City,
		WarehouseState:      warehouse.State,
		WarehouseZip:        warehouse.Zip,
		DistrictStreet1:     district.Street1,
		DistrictStreet2:     district.Street2,
		DistrictCity:        district.City,
		DistrictState:       district.State,
		DistrictZip:         district.Zip,
		CustomerFirst:       customer.First,
		CustomerMiddle:      customer.Middle,
		CustomerLast:        customer.Last,
		CustomerStreet1:     customer.Street1,
		CustomerStreet2:     customer.Street2,
		CustomerCity:        customer.City,
		CustomerState:       customer.State,
		CustomerZip:         customer.Zip,
		CustomerPhone:       customer.Phone,
		CustomerSince:       customer.Since,
		Credit:              customer.Credit,
		CreditLimit:         customer.CreditLimit,
		Discount:            customer.Discount,
		Balance:             customer.Balance,
		CustomerData:        displayData,
	}, nil
}
