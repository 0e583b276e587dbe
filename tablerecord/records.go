// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tablerecord

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/tpccd/compositekey"
)

// Warehouse - one row of the WAREHOUSE table
type Warehouse struct {
	ID      int     `json:"w_id"`
	Name    string  `json:"w_name"`
	Street1 string  `json:"w_street_1"`
	Street2 string  `json:"w_street_2"`
	City    string  `json:"w_city"`
	State   string  `json:"w_state"`
	Zip     string  `json:"w_zip"`
	Tax     float64 `json:"w_tax"`
	YTD     float64 `json:"w_ytd"`
}

func (w *Warehouse) Table() Table { return WarehouseTable }

func (w *Warehouse) KeyParts() []string {
	return []string{compositekey.Pad(uint64(w.ID))}
}

func (w *Warehouse) Pack() ([]byte, error)    { return json.Marshal(w) }
func (w *Warehouse) Unpack(data []byte) error { return json.Unmarshal(data, w) }

// District - one row of the DISTRICT table
type District struct {
	ID          int     `json:"d_id"`
	WarehouseID int     `json:"d_w_id"`
	Name        string  `json:"d_name"`
	Street1     string  `json:"d_street_1"`
	Street2     string  `json:"d_street_2"`
	City        string  `json:"d_city"`
	State       string  `json:"d_state"`
	Zip         string  `json:"d_zip"`
	Tax         float64 `json:"d_tax"`
	YTD         float64 `json:"d_ytd"`
	NextOrderID int     `json:"d_next_o_id"`
}

func (d *District) Table() Table { return DistrictTable }

func (d *District) KeyParts() []string {
	return []string{
		compositekey.Pad(uint64(d.WarehouseID)),
		compositekey.Pad(uint64(d.ID)),
	}
}

func (d *District) Pack() ([]byte, error)    { return json.Marshal(d) }
func (d *District) Unpack(data []byte) error { return json.Unmarshal(data, d) }

// Customer - one row of the CUSTOMER table
type Customer struct {
	ID            int     `json:"c_id"`
	DistrictID    int     `json:"c_d_id"`
	WarehouseID   int     `json:"c_w_id"`
	First         string  `json:"c_first"`
	Middle        string  `json:"c_middle"`
	Last          string  `json:"c_last"`
	Street1       string  `json:"c_street_1"`
	Street2       string  `json:"c_street_2"`
	City          string  `json:"c_city"`
	State         string  `json:"c_state"`
	Zip           string  `json:"c_zip"`
	Phone         string  `json:"c_phone"`
	Since         string  `json:"c_since"`
	Credit        string  `json:"c_credit"`
	CreditLimit   int     `json:"c_credit_lim"`
	Discount      float64 `json:"c_discount"`
	Balance       float64 `json:"c_balance"`
	YTDPayment    float64 `json:"c_ytd_payment"`
	PaymentCount  int     `json:"c_payment_cnt"`
	DeliveryCount int     `json:"c_delivery_cnt"`
	Data          string  `json:"c_data"`
}

func (c *Customer) Table() Table { return CustomerTable }

func (c *Customer) KeyParts() []string {
	return []string{
		compositekey.Pad(uint64(c.WarehouseID)),
		compositekey.Pad(uint64(c.DistrictID)),
		compositekey.Pad(uint64(c.ID)),
	}
}

// NameKeyParts - the key parts of the customer in the last name index
//
// the customer id is the final part so that customers sharing a last
// name stay individually addressable
func (c *Customer) NameKeyParts() []string {
	return []string{
		compositekey.Pad(uint64(c.WarehouseID)),
		compositekey.Pad(uint64(c.DistrictID)),
		c.Last,
		compositekey.Pad(uint64(c.ID)),
	}
}

func (c *Customer) Pack() ([]byte, error)    { return json.Marshal(c) }
func (c *Customer) Unpack(data []byte) error { return json.Unmarshal(data, c) }

// History - one row of the HISTORY table
type History struct {
	CustomerID          int     `json:"h_c_id"`
	CustomerDistrictID  int     `json:"h_c_d_id"`
	CustomerWarehouseID int     `json:"h_c_w_id"`
	DistrictID          int     `json:"h_d_id"`
	WarehouseID         int     `json:"h_w_id"`
	Date                string  `json:"h_date"`
	Amount              float64 `json:"h_amount"`
	Data                string  `json:"h_data"`
}

func (h *History) Table() Table { return HistoryTable }

func (h *History) KeyParts() []string {
	return []string{
		compositekey.Pad(uint64(h.CustomerWarehouseID)),
		compositekey.Pad(uint64(h.CustomerDistrictID)),
		compositekey.Pad(uint64(h.CustomerID)),
		h.Date,
	}
}

func (h *History) Pack() ([]byte, error)    { return json.Marshal(h) }
func (h *History) Unpack(data []byte) error { return json.Unmarshal(data, h) }

// NewOrder - one row of the NEW_ORDER table
type NewOrder struct {
	OrderID     int `json:"no_o_id"`
	DistrictID  int `json:"no_d_id"`
	WarehouseID int `json:"no_w_id"`
}

func (n *NewOrder) Table() Table { return NewOrderTable }

func (n *NewOrder) KeyParts() []string {
	return []string{
		compositekey.Pad(uint64(n.WarehouseID)),
		compositekey.Pad(uint64(n.DistrictID)),
		compositekey.Pad(uint64(n.OrderID)),
	}
}

func (n *NewOrder) Pack() ([]byte, error)    { return json.Marshal(n) }
func (n *NewOrder) Unpack(data []byte) error { return json.Unmarshal(data, n) }

// Order - one row of the ORDERS table
type Order struct {
	ID          int    `json:"o_id"`
	DistrictID  int    `json:"o_d_id"`
	WarehouseID int    `json:"o_w_id"`
	CustomerID  int    `json:"o_c_id"`
	EntryDate   string `json:"o_entry_d"`
	CarrierID   int    `json:"o_carrier_id"`
	LineCount   int    `json:"o_ol_cnt"`
	AllLocal    int    `json:"o_all_local"`
}

func (o *Order) Table() Table { return OrderTable }

func (o *Order) KeyParts() []string {
	return []string{
		compositekey.Pad(uint64(o.WarehouseID)),
		compositekey.Pad(uint64(o.DistrictID)),
		compositekey.Pad(uint64(o.ID)),
	}
}

func (o *Order) Pack() ([]byte, error)    { return json.Marshal(o) }
func (o *Order) Unpack(data []byte) error { return json.Unmarshal(data, o) }

// OrderLine - one row of the ORDER_LINE table
type OrderLine struct {
	OrderID           int     `json:"ol_o_id"`
	DistrictID        int     `json:"ol_d_id"`
	WarehouseID       int     `json:"ol_w_id"`
	Number            int     `json:"ol_number"`
	ItemID            int     `json:"ol_i_id"`
	SupplyWarehouseID int     `json:"ol_supply_w_id"`
	DeliveryDate      string  `json:"ol_delivery_d"`
	Quantity          int     `json:"ol_quantity"`
	Amount            float64 `json:"ol_amount"`
	DistInfo          string  `json:"ol_dist_info"`
}

func (l *OrderLine) Table() Table { return OrderLineTable }

func (l *OrderLine) KeyParts() []string {
	return []string{
		compositekey.Pad(uint64(l.WarehouseID)),
		compositekey.Pad(uint64(l.DistrictID)),
		compositekey.Pad(uint64(l.OrderID)),
		compositekey.Pad(uint64(l.Number)),
	}
}

func (l *OrderLine) Pack() ([]byte, error)    { return json.Marshal(l) }
func (l *OrderLine) Unpack(data []byte) error { return json.Unmarshal(data, l) }

// Item - one row of the ITEM table
type Item struct {
	ID      int     `json:"i_id"`
	ImageID int     `json:"i_im_id"`
	Name    string  `json:"i_name"`
	Price   float64 `json:"i_price"`
	Data    string  `json:"i_data"`
}

func (i *Item) Table() Table { return ItemTable }

func (i *Item) KeyParts() []string {
	return []string{compositekey.Pad(uint64(i.ID))}
}

func (i *Item) Pack() ([]byte, error)    { return json.Marshal(i) }
func (i *Item) Unpack(data []byte) error { return json.Unmarshal(data, i) }

// Stock - one row of the STOCK table
type Stock struct {
	ItemID      int    `json:"s_i_id"`
	WarehouseID int    `json:"s_w_id"`
	Quantity    int    `json:"s_quantity"`
	Dist01      string `json:"s_dist_01"`
	Dist02      string `json:"s_dist_02"`
	Dist03      string `json:"s_dist_03"`
	Dist04      string `json:"s_dist_04"`
	Dist05      string `json:"s_dist_05"`
	Dist06      string `json:"s_dist_06"`
	Dist07      string `json:"s_dist_07"`
	Dist08      string `json:"s_dist_08"`
	Dist09      string `json:"s_dist_09"`
	Dist10      string `json:"s_dist_10"`
	YTD         int    `json:"s_ytd"`
	OrderCount  int    `json:"s_order_cnt"`
	RemoteCount int    `json:"s_remote_cnt"`
	Data        string `json:"s_data"`
}

func (s *Stock) Table() Table { return StockTable }

func (s *Stock) KeyParts() []string {
	return []string{
		compositekey.Pad(uint64(s.WarehouseID)),
		compositekey.Pad(uint64(s.ItemID)),
	}
}

// DistrictInfo - the stored district information for a district number 1..10
func (s *Stock) DistrictInfo(district int) (string, error) {
	switch district {
	case 1:
		return s.Dist01, nil
	case 2:
		return s.Dist02, nil
	case 3:
		return s.Dist03, nil
	case 4:
		return s.Dist04, nil
	case 5:
		return s.Dist05, nil
	case 6:
		return s.Dist06, nil
	case 7:
		return s.Dist07, nil
	case 8:
		return s.Dist08, nil
	case 9:
		return s.Dist09, nil
	case 10:
		return s.Dist10, nil
	default:
		return "", fmt.Errorf("no such district: %d", district)
	}
}

func (s *Stock) Pack() ([]byte, error)    { return json.Marshal(s) }
func (s *Stock) Unpack(data []byte) error { return json.Unmarshal(data, s) }
