// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the spell checker configuration
//
// The configuration file is a Lua script that returns a table, this
// is mapped onto the Configuration structure.  Values not set in the
// file keep their defaults and relative file names are taken relative
// to the data directory.
package configuration
