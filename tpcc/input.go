// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tpcc

// NewOrderInput - parameters of the New-Order profile
//
// the three item slices are positional: element i of each describes
// order line i+1
type NewOrderInput struct {
	WarehouseID        int    `json:"w_id"`
	DistrictID         int    `json:"d_id"`
	CustomerID         int    `json:"c_id"`
	EntryDate          string `json:"o_entry_d"`
	ItemIDs            []int  `json:"i_ids"`
	SupplyWarehouseIDs []int  `json:"i_w_ids"`
	Quantities         []int  `json:"i_qtys"`
}

// PaymentInput - parameters of the Payment profile
//
// the paying customer is selected either by id or by last name
type PaymentInput struct {
	WarehouseID         int     `json:"w_id"`
	DistrictID          int     `json:"d_id"`
	Amount              float64 `json:"h_amount"`
	CustomerWarehouseID int     `json:"c_w_id"`
	CustomerDistrictID  int     `json:"c_d_id"`
	CustomerID          int     `json:"c_id"`
	CustomerLast        string  `json:"c_last"`
	Date                string  `json:"h_date"`
}

// OrderStatusInput - parameters of the Order-Status profile
type OrderStatusInput struct {
	WarehouseID  int    `json:"w_id"`
	DistrictID   int    `json:"d_id"`
	CustomerID   int    `json:"c_id"`
	CustomerLast string `json:"c_last"`
}

// DeliveryInput - parameters of the Delivery profile
type DeliveryInput struct {
	WarehouseID  int    `json:"w_id"`
	CarrierID    int    `json:"o_carrier_id"`
	DeliveryDate string `json:"ol_delivery_d"`
}

// StockLevelInput - parameters of the Stock-Level profile
type StockLevelInput struct {
	WarehouseID int `json:"w_id"`
	DistrictID  int `json:"d_id"`
	Threshold   int `json:"threshold"`
}

// single record read parameters, for diagnostics

type ReadWarehouseInput struct {
	WarehouseID int `json:"w_id"`
}

type ReadOrderInput struct {
	WarehouseID int `json:"w_id"`
	DistrictID  int `json:"d_id"`
	OrderID     int `json:"o_id"`
}

type ReadItemInput struct {
	ItemID int `json:"i_id"`
}

type ReadNewOrderInput struct {
	WarehouseID int `json:"w_id"`
	DistrictID  int `json:"d_id"`
	OrderID     int `json:"o_id"`
}
