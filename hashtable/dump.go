// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"fmt"
	"io"
	"sort"

	"github.com/bitmark-inc/dictionary/dictionary"
)

// SortedKeys - all live keys in ascending order
func (t *Table) SortedKeys() []string {
	keys := make([]string, 0, t.count)
	for _, s := range t.slots {
		if s.used {
			keys = append(keys, s.key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Structure - every slot in index order, unused slots have an empty key
func (t *Table) Structure() []dictionary.Entry {
	entries := make([]dictionary.Entry, len(t.slots))
	for i, s := range t.slots {
		entries[i] = dictionary.Entry{
			Position: i,
			Key:      s.key,
		}
	}
	return entries
}

// EmitSortedKeys - write one key per line in ascending order
func (t *Table) EmitSortedKeys(w io.Writer) error {
	return dictionary.WriteKeys(w, t.SortedKeys())
}

// EmitStructure - write "index: key" for every slot
func (t *Table) EmitStructure(w io.Writer) error {
	for i, s := range t.slots {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i, s.key); nil != err {
			return err
		}
	}
	return nil
}
