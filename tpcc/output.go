// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tpcc

// ItemsData - one ordered item of the New-Order display data
type ItemsData struct {
	SupplyWarehouseID int     `json:"ol_supply_w_id"`
	ItemID            int     `json:"ol_i_id"`
	ItemName          string  `json:"i_name"`
	Quantity          int     `json:"ol_quantity"`
	StockQuantity     int     `json:"s_quantity"`
	BrandGeneric      string  `json:"brand_generic"`
	ItemPrice         float64 `json:"i_price"`
	Amount            float64 `json:"ol_amount"`
}

// NewOrderOutput - display data of the New-Order profile
//
// when an item id was invalid only the identifying fields and the
// message are populated and nothing has been written
type NewOrderOutput struct {
	WarehouseID  int         `json:"w_id"`
	DistrictID   int         `json:"d_id"`
	CustomerID   int         `json:"c_id"`
	CustomerLast string      `json:"c_last"`
	Credit       string      `json:"c_credit"`
	Discount     float64     `json:"c_discount"`
	WarehouseTax float64     `json:"w_tax"`
	DistrictTax  float64     `json:"d_tax"`
	LineCount    int         `json:"o_ol_cnt"`
	OrderID      int         `json:"o_id"`
	EntryDate    string      `json:"o_entry_d"`
	TotalAmount  float64     `json:"total_amount"`
	Items        []ItemsData `json:"items"`
	Message      string      `json:"message,omitempty"`
}

// PaymentOutput - display data of the Payment profile
type PaymentOutput struct {
	WarehouseID         int     `json:"w_id"`
	DistrictID          int     `json:"d_id"`
	CustomerID          int     `json:"c_id"`
	CustomerDistrictID  int     `json:"c_d_id"`
	CustomerWarehouseID int     `json:"c_w_id"`
	Amount              float64 `json:"h_amount"`
	Date                string  `json:"h_date"`
	WarehouseStreet1    string  `json:"w_street_1"`
	WarehouseStreet2    string  `json:"w_street_2"`
	WarehouseCity       string  `json:"w_city"`
	WarehouseState      string  `json:"w_state"`
	WarehouseZip        string  `json:"w_zip"`
	DistrictStreet1     string  `json:"d_street_1"`
	DistrictStreet2     string  `json:"d_street_2"`
	DistrictCity        string  `json:"d_city"`
	DistrictState       string  `json:"d_state"`
	DistrictZip         string  `json:"d_zip"`
	CustomerFirst       string  `json:"c_first"`
	CustomerMiddle      string  `json:"c_middle"`
	CustomerLast        string  `json:"c_last"`
	CustomerStreet1     string  `json:"c_street_1"`
	CustomerStreet2     string  `json:"c_street_2"`
	CustomerCity        string  `json:"c_city"`
	CustomerState       string  `json:"c_state"`
	CustomerZip         string  `json:"c_zip"`
	CustomerPhone       string  `json:"c_phone"`
	CustomerSince       string  `json:"c_since"`
	Credit              string  `json:"c_credit"`
	CreditLimit         int     `json:"c_credit_lim"`
	Discount            float64 `json:"c_discount"`
	Balance             float64 `json:"c_balance"`
	CustomerData        string  `json:"c_data"`
}

// OrderLineData - one order line of the Order-Status display data
type OrderLineData struct {
	SupplyWarehouseID int     `json:"ol_supply_w_id"`
	ItemID            int     `json:"ol_i_id"`
	Quantity          int     `json:"ol_quantity"`
	Amount            float64 `json:"ol_amount"`
	DeliveryDate      string  `json:"ol_delivery_d"`
}

// OrderStatusOutput - display data of the Order-Status profile
type OrderStatusOutput struct {
	WarehouseID    int             `json:"w_id"`
	DistrictID     int             `json:"d_id"`
	CustomerID     int             `json:"c_id"`
	CustomerFirst  string          `json:"c_first"`
	CustomerMiddle string          `json:"c_middle"`
	CustomerLast   string          `json:"c_last"`
	Balance        float64         `json:"c_balance"`
	OrderID        int             `json:"o_id"`
	EntryDate      string          `json:"o_entry_d"`
	CarrierID      int             `json:"o_carrier_id"`
	OrderLines     []OrderLineData `json:"order_lines"`
}

// DeliveredOrder - one delivered order of the Delivery display data
type DeliveredOrder struct {
	DistrictID int `json:"d_id"`
	OrderID    int `json:"o_id"`
}

// DeliveryOutput - display data of the Delivery profile
type DeliveryOutput struct {
	WarehouseID int              `json:"w_id"`
	CarrierID   int              `json:"o_carrier_id"`
	Delivered   []DeliveredOrder `json:"delivered"`
	Skipped     int              `json:"skipped"`
}

// StockLevelOutput - display data of the Stock-Level profile
type StockLevelOutput struct {
	WarehouseID int `json:"w_id"`
	DistrictID  int `json:"d_id"`
	Threshold   int `json:"threshold"`
	LowStock    int `json:"low_stock"`
}
