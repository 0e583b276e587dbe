// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compositekey - build ordered composite database keys
//
// numeric key parts are zero padded to a fixed width so that the
// lexicographic byte order of a key equals the numeric order of its
// parts, string parts are used verbatim
//
// every part is terminated by a NUL byte, so joining a leading subset
// of the parts yields a prefix that matches only whole part values
package compositekey

import (
	"fmt"
)

// the number of decimal digits in the largest signed 64 bit integer
const padWidth = 19

// Pad - fixed width decimal representation of a numeric key part
func Pad(n uint64) string {
	return fmt.Sprintf("%0*d", padWidth, n)
}

// Join - concatenate key parts, terminating each with a NUL byte
func Join(parts ...string) []byte {
	size := 0
	for _, part := range parts {
		size += len(part) + 1
	}
	key := make([]byte, 0, size)
	for _, part := range parts {
		key = append(key, part...)
		key = append(key, 0x00)
	}
	return key
}
