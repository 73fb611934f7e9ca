// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

// polynomial string hash: h = 37*h + c for each byte, wrapping at 32 bits
func hash(key string) uint32 {
	h := uint32(0)
	for i := 0; i < len(key); i += 1 {
		h = 37*h + uint32(key[i])
	}
	return h
}

// follow the probe sequence for key until either the key or an unused
// slot is found
//
// returns the slot index and whether it holds the key; index is -1 if
// every slot was visited without success
func (t *Table) locate(key string) (int, bool) {
	h := uint64(hash(key))
	size := uint64(len(t.slots))
	stride := 1 + h%uint64(t.step)

	i := h % size
	for n := uint64(0); n < size; n += 1 {
		s := &t.slots[i]
		if !s.used {
			return int(i), false
		}
		if s.key == key {
			return int(i), true
		}
		i = (i + stride) % size
	}
	return -1, false
}
