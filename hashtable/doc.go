// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashtable - an open addressing hash table of unique string
// keys using double hashing
//
// The slot array always has a prime length.  A key's home slot is
// hash mod size and the probe stride is 1 + hash mod step, where step
// is a prime below the size, so every probe sequence visits every
// slot.  The table is grown before any insert that would take it past
// half full and all live keys are re-inserted into the new array.
//
// Note: a table is not thread safe.
package hashtable
