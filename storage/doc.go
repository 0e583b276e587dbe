// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++  = concatenation of byte data
// 3. key part = zero padded decimal number or verbatim string,
//    each terminated by a NUL byte (see the compositekey package)
// 4. value = JSON encoded record (see the tablerecord package)
//
// State database:
//
//   W ++ w_id                            - warehouses
//   D ++ w_id ++ d_id                    - districts
//   C ++ w_id ++ d_id ++ c_id            - customers
//   H ++ c_w_id ++ c_d_id ++ c_id ++ h_date
//                                        - payment histories
//   N ++ w_id ++ d_id ++ o_id            - new (undelivered) orders
//   O ++ w_id ++ d_id ++ o_id            - orders
//   L ++ w_id ++ d_id ++ o_id ++ number  - order lines
//   I ++ i_id                            - items
//   S ++ w_id ++ i_id                    - stocks
//
// Index database:
//
//   X ++ w_id ++ d_id ++ c_last ++ c_id  - customers by last name
//
// Testing:
//
//   Z ++ key                             - testing data
package storage
