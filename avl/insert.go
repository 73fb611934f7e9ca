// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// Insert - add a key to the tree
//
// the key must not already be present; a duplicate is ignored and
// leaves the tree unchanged
func (tree *Tree) Insert(key string) {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
}

// internal routine for insert
// returns the root of the sub-tree that now replaces p
func insert(key string, p *node) (*node, bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}
	added := false
	switch strings.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, added = insert(key, p.left)
	case -1: // p.key < key
		p.right, added = insert(key, p.right)
	default:
		return p, false
	}
	if !added {
		return p, false
	}
	return rebalance(p), true
}

// restore the height and balance of p after one of its sub-trees has
// changed, returns the new sub-tree root
func rebalance(p *node) *node {
	p.fix()
	bf := balanceFactor(p)
	switch {
	case bf > 1: // left heavy
		if height(p.left.left) < height(p.left.right) {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)

	case bf < -1: // right heavy
		if height(p.right.right) < height(p.right.left) {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}

// single right rotation: the left child is raised and p becomes its
// right child, the child's right sub-tree moves across to p.left
func rotateRight(p *node) *node {
	p1 := p.left
	p.left = p1.right
	p1.right = p
	p.fix()
	p1.fix()
	return p1
}

// single left rotation: mirror image of rotateRight
func rotateLeft(p *node) *node {
	p1 := p.right
	p.right = p1.left
	p1.left = p
	p.fix()
	p1.fix()
	return p1
}

// height of a possibly empty sub-tree
func height(p *node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// height(left) - height(right)
func balanceFactor(p *node) int {
	return height(p.left) - height(p.right)
}

// recompute the cached height from the children
func (p *node) fix() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}
