// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
)

func init() {
	err := dictionary.Register(dictionary.AVL, func() dictionary.Dictionary {
		return New()
	})
	fault.PanicIfError("avl: register", err)
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no keys
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - number of levels in the tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Clear - release all nodes
func (tree *Tree) Clear() {
	release(tree.root)
	tree.root = nil
	tree.count = 0
}

// post-order so children are released before their parent
func release(p *node) {
	if nil == p {
		return
	}
	release(p.left)
	release(p.right)
	freeNode(p)
}

// Copy - an independent deep copy of the tree
func (tree *Tree) Copy() dictionary.Dictionary {
	return tree.Clone()
}

// Clone - same as Copy but keeps the concrete type
func (tree *Tree) Clone() *Tree {
	return &Tree{
		root:  clone(tree.root),
		count: tree.count,
	}
}

// post-order: copy both sub-trees, then this node
func clone(p *node) *node {
	if nil == p {
		return nil
	}
	left := clone(p.left)
	right := clone(p.right)

	n := newNode(p.key)
	n.left = left
	n.right = right
	n.height = p.height
	return n
}
