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

// Init - load the initial benchmark data
//
// one warehouse with one district, two customers, three items and
// their stocks, all created in a single transaction so a rerun on a
// populated database changes nothing
func Init() error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = seed()
	if nil != err {
		trx.Abort()
		return err
	}

	return trx.Commit()
}

func seed() error {

	records := []tablerecord.Record{

		&tablerecord.Warehouse{
			ID:      1,
			Name:    "W_One",
			Street1: "xyz",
			Street2: "123",
			City:    "Budapest",
			State:   "LA",
			Zip:     "000011111",
			Tax:     0.1000,
			YTD:     10000,
		},

		&tablerecord.District{
			ID:          1,
			WarehouseID: 1,
			Name:        "D_One",
			Street1:     "abc",
			Street2:     "456",
			City:        "Budapest",
			State:       "BP",
			Zip:         "000111111",
			Tax:         0.0100,
			YTD:         10000,
			NextOrderID: 3001,
		},

		&tablerecord.Customer{
			ID:            1,
			DistrictID:    1,
			WarehouseID:   1,
			First:         "Alice",
			Middle:        "IS",
			Last:          "Yong",
			Street1:       "xyz",
			Street2:       "123",
			City:          "Budapest",
			State:         "HU",
			Zip:           "000101111",
			Phone:         "1234567890123456",
			Since:         "19/01/2020",
			Credit:        "GC",
			CreditLimit:   50000,
			Discount:      0.25,
			Balance:       1000.00,
			YTDPayment:    10,
			PaymentCount:  1,
			DeliveryCount: 0,
			Data:          "Good credit",
		},

		&tablerecord.Customer{
			ID:            2,
			DistrictID:    1,
			WarehouseID:   1,
			First:         "Peter",
			Middle:        "XX",
			Last:          "Peter",
			Street1:       "ABC",
			Street2:       "23",
			City:          "Budapest",
			State:         "DC",
			Zip:           "000011111",
			Phone:         "6123456789012345",
			Since:         "19/01/2020",
			Credit:        "GC",
			CreditLimit:   50000,
			Discount:      0.30,
			Balance:       1000.00,
			YTDPayment:    10,
			PaymentCount:  1,
			DeliveryCount: 0,
			Data:          "Good credit",
		},

		&tablerecord.Item{
			ID:      1,
			ImageID: 123,
			Name:    "Cup",
			Price:   99.50,
			Data:    "ORIGINAL",
		},

		&tablerecord.Item{
			ID:      2,
			ImageID: 234,
			Name:    "Plate",
			Price:   89.50,
			Data:    "ORIGINAL",
		},

		&tablerecord.Item{
			ID:      3,
			ImageID: 456,
			Name:    "Glass",
			Price:   78.00,
			Data:    "GENERIC",
		},
	}

	stocks := []struct {
		itemID   int
		quantity int
		data     string
	}{
		{1, 100, "ORIGINAL"},
		{2, 90, "ORIGINAL"},
		{3, 99, "GENERIC"},
	}

	good, err := padDistrictInfo("good")
	if nil != err {
		return err
	}
	null, err := padDistrictInfo("null")
	if nil != err {
		return err
	}

	for _, s := range stocks {
		records = append(records, &tablerecord.Stock{
			ItemID:      s.itemID,
			WarehouseID: 1,
			Quantity:    s.quantity,
			Dist01:      good,
			Dist02:      null,
			Dist03:      null,
			Dist04:      null,
			Dist05:      null,
			Dist06:      null,
			Dist07:      null,
			Dist08:      null,
			Dist09:      null,
			Dist10:      null,
			YTD:         0,
			OrderCount:  0,
			RemoteCount: 0,
			Data:        s.data,
		})
	}

	for _, record := range records {
		err := registry.Create(record)
		if nil != err {
			return err
		}
	}

	globalData.log.Infof("seeded %d records", len(records))
	return nil
}
