// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dictionary - the key-existence contract shared by the
// balanced tree and the hash table implementations
//
// A dictionary only stores keys.  Keys are inserted once (the caller
// checks Exists first), never removed, and can be listed in sorted
// order or as an implementation specific structural dump.
//
// Note: a dictionary is not thread safe.
package dictionary
