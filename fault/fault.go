// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - the error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised      = ProcessError("already initialised")
	CustomerNotFound        = NotFoundError("customer not found")
	DatabaseIsNotSet        = ProcessError("database is not set")
	InvalidCount            = InvalidError("invalid count")
	InvalidCursor           = InvalidError("invalid cursor")
	MismatchedItemCounts    = InvalidError("item id, supply warehouse and quantity counts differ")
	MissingCustomerSelector = InvalidError("missing customer id and last name")
	NoOrdersForCustomer     = NotFoundError("no orders for customer")
	NoRecentOrderItems      = NotFoundError("no item ids in recent order window")
	NotInitialised          = ProcessError("not initialised")
	RecordAlreadyExists     = ExistsError("record already exists")
	RecordMarkedDeleted     = InvalidError("record is marked for deletion")
	RecordNotFound          = NotFoundError("record not found")
	TransactionInUse        = ProcessError("transaction already in use")
	UnknownProfile          = NotFoundError("unknown transaction profile")
	WrongDatabaseVersion    = ProcessError("wrong database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine if an error is in the exists class
func IsErrExists(e error) bool {
	_, ok := e.(ExistsError)
	return ok
}

// IsErrInvalid - determine if an error is in the invalid class
func IsErrInvalid(e error) bool {
	_, ok := e.(InvalidError)
	return ok
}

// IsErrNotFound - determine if an error is in the not found class
func IsErrNotFound(e error) bool {
	_, ok := e.(NotFoundError)
	return ok
}

// IsErrProcess - determine if an error is in the process class
func IsErrProcess(e error) bool {
	_, ok := e.(ProcessError)
	return ok
}
