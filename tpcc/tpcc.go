// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tpcc - the benchmark transaction profiles
//
// implements the five TPC-C transaction profiles (New-Order, Payment,
// Order-Status, Delivery, Stock-Level) over the storage pools, each
// invocation owns one storage transaction and either commits all of
// its writes or none of them
package tpcc

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tpccd/fault"
)

// the number of districts of a warehouse
const districtsPerWarehouse = 10

// globals for background process
type tpccData struct {
	sync.RWMutex

	log *logger.L

	// set once during initialise
	initialised bool
}

// global data
var globalData tpccData

// Initialise - prepare the transaction engine
//
// storage must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("tpcc")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the transaction engine
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Invoke - run a transaction profile by name
//
// parameters and result are JSON encoded
func Invoke(name string, parameters []byte) ([]byte, error) {
	globalData.RLock()
	initialised := globalData.initialised
	globalData.RUnlock()
	if !initialised {
		return nil, fault.NotInitialised
	}

	globalData.log.Debugf("invoke: %s  parameters: %s", name, parameters)

	switch name {

	case "delivery":
		input := DeliveryInput{}
		if err := json.Unmarshal(parameters, &input); nil != err {
			return nil, err
		}
		return marshal(Delivery(input))

	case "newOrder":
		input := NewOrderInput{}
		if err := json.Unmarshal(parameters, &input); nil != err {
			return nil, err
		}
		return marshal(NewOrder(input))

	case "orderStatus":
		input := OrderStatusInput{}
		if err := json.Unmarshal(parameters, &input); nil != err {
			return nil, err
		}
		return marshal(OrderStatus(input))

	case "payment":
		input := PaymentInput{}
		if err := json.Unmarshal(parameters, &input); nil != err {
			return nil, err
		}
		return marshal(Payment(input))

	case "stockLevel":
		input := StockLevelInput{}
		if err := json.Unmarshal(parameters, &input); nil != err {
			return nil, err
		}
		return marshal(StockLevel(input))

	case "init":
		err := Init()
		if nil != err {
			return nil, err
		}
		return []byte(`"ok"`), nil

	case "ping":
		return []byte(`"pong"`), nil

	case "readWarehouse":
		input := ReadWarehouseInput{}
		if err := json.Unmarshal(parameters, &input); nil != err {
			return nil, err
		}
		return marshal(ReadWarehouse(input))

	case "readOrder":
		input := ReadOrderInput{}
		if err := json.Unmarshal(parameters, &input); nil != err {
			return nil, err
		}
		return marshal(ReadOrder(input))

	case "readItem":
		input := ReadItemInput{}
		if err := json.Unmarshal(parameters, &input); nil != err {
			return nil, err
		}
		return marshal(ReadItem(input))

	case "readNewOrder":
		input := ReadNewOrderInput{}
		if err := json.Unmarshal(parameters, &input); nil != err {
			return nil, err
		}
		return marshal(ReadNewOrder(input))

	default:
		return nil, fault.UnknownProfile
	}
}

func marshal(result interface{}, err error) ([]byte, error) {
	if nil != err {
		return nil, err
	}
	return json.Marshal(result)
}
