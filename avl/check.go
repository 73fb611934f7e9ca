// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckBalance - true if no node has sub-tree heights differing by
// more than one, heights are recomputed not read from the cache
func (tree *Tree) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns the measured height and balance state
func checkBalance(p *node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, false
	}
	if hl > hr {
		return 1 + hl, true
	}
	return 1 + hr, true
}

// CheckHeights - true if every cached height matches the measured one
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

func checkHeights(p *node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, okl := checkHeights(p.left)
	hr, okr := checkHeights(p.right)
	h := 1 + hr
	if hl > hr {
		h = 1 + hl
	}
	return h, okl && okr && h == p.height
}

// CheckOrder - true if an in-order walk yields strictly ascending keys
// and the node count agrees with the tree count
func (tree *Tree) CheckOrder() bool {
	ok := true
	n := 0
	previous := ""
	tree.Walk(func(key string) bool {
		if n > 0 && previous >= key {
			ok = false
			return false
		}
		previous = key
		n += 1
		return true
	})
	return ok && n == tree.count
}
