// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/tpccd/fault"
)

// Transaction - a deferred write unit spanning all databases
//
// writes issued through the pool handles stay in the per database
// batches until Commit, Abort discards them
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	InUse() bool
}

type TransactionData struct {
	sync.Mutex
	access []DataAccess
}

func newTransaction(access []DataAccess) Transaction {
	return &TransactionData{
		access: access,
	}
}

func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	for _, da := range t.access {
		if da.InUse() {
			return fault.TransactionInUse
		}
	}

	for _, da := range t.access {
		err := da.Begin()
		if nil != err {
			return err
		}
	}
	return nil
}

// Commit - flush every pending write, then reset the batches
func (t *TransactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	for _, da := range t.access {
		err := da.Commit()
		if nil != err {
			return err
		}
	}
	t.abort()
	return nil
}

func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()

	for _, da := range t.access {
		if da.InUse() {
			return true
		}
	}
	return false
}

// Abort - discard every pending write
func (t *TransactionData) Abort() {
	t.Lock()
	defer t.Unlock()
	t.abort()
}

func (t *TransactionData) abort() {
	for _, da := range t.access {
		da.Abort()
	}
}
