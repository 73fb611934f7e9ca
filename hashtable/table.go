// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
)

func init() {
	err := dictionary.Register(dictionary.Hash, func() dictionary.Dictionary {
		return New()
	})
	fault.PanicIfError("hashtable: register", err)
}

// a key is stored by value, used distinguishes an empty key from an
// unused slot
type slot struct {
	key  string
	used bool
}

// Table - open addressing hash table
type Table struct {
	slots   []slot
	step    int // probe stride base, prime and less than len(slots)
	count   int // live keys
	level   int // index into the size sequence
	resizes int // growth events since creation
}

// New - create an empty table at the smallest size
func New() *Table {
	size, step := sizeAt(0)
	return &Table{
		slots: make([]slot, size),
		step:  step,
	}
}

// Insert - add a key to the table
//
// the key must not already be present; a duplicate is ignored
func (t *Table) Insert(key string) {
	if _, found := t.locate(key); found {
		return
	}
	t.insert(key)
}

// grow first if this insert would take the table past half full
func (t *Table) insert(key string) {
	if t.count+1 > len(t.slots)/2 {
		t.grow()
	}
	i, found := t.locate(key)
	if i < 0 || found {
		fault.Panicf("hashtable: key: %q  slot: %d  found: %v  count: %d  size: %d  error: %s",
			key, i, found, t.count, len(t.slots), fault.ErrTableFull)
	}
	t.slots[i] = slot{
		key:  key,
		used: true,
	}
	t.count += 1
}

// move to the next size and re-insert every live key
func (t *Table) grow() {
	old := t.slots

	t.level += 1
	size, step := sizeAt(t.level)
	t.slots = make([]slot, size)
	t.step = step
	t.count = 0
	t.resizes += 1

	for _, s := range old {
		if s.used {
			t.insert(s.key)
		}
	}
}

// Exists - true if the key is in the table
func (t *Table) Exists(key string) bool {
	_, found := t.locate(key)
	return found
}

// Count - number of live keys
func (t *Table) Count() int {
	return t.count
}

// Size - length of the slot array
func (t *Table) Size() int {
	return len(t.slots)
}

// Step - current probe step constant
func (t *Table) Step() int {
	return t.step
}

// Resizes - number of growth events performed
func (t *Table) Resizes() int {
	return t.resizes
}

// LoadFactor - live keys / slots
func (t *Table) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.slots))
}

// Clear - drop all keys and return to the smallest size
func (t *Table) Clear() {
	*t = *New()
}

// Copy - an independent copy of the table
func (t *Table) Copy() dictionary.Dictionary {
	return t.Clone()
}

// Clone - same as Copy but keeps the concrete type
func (t *Table) Clone() *Table {
	slots := make([]slot, len(t.slots))
	copy(slots, t.slots)
	return &Table{
		slots:   slots,
		step:    t.step,
		count:   t.count,
		level:   t.level,
		resizes: t.resizes,
	}
}
