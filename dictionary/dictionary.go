// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dictionary

import (
	"fmt"
	"io"
)

//go:generate mockgen -source=dictionary.go -destination=mocks/dictionary.go -package=mocks

// Dictionary - operations common to all dictionary kinds
type Dictionary interface {
	Insert(key string)
	Exists(key string) bool
	Count() int
	SortedKeys() []string
	Structure() []Entry
	EmitSortedKeys(w io.Writer) error
	EmitStructure(w io.Writer) error
	Copy() Dictionary
}

// Entry - one line of a structural dump
//
// Position is the depth for a tree and the slot index for a table;
// Key is empty for an unused table slot
type Entry struct {
	Position int
	Key      string
}

// WriteKeys - write one key per line
func WriteKeys(w io.Writer, keys []string) error {
	for _, key := range keys {
		if _, err := fmt.Fprintln(w, key); nil != err {
			return err
		}
	}
	return nil
}
