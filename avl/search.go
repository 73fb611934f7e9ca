// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// Exists - true if the key is in the tree
func (tree *Tree) Exists(key string) bool {
	p := tree.root
	for nil != p {
		switch strings.Compare(p.key, key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return true
		}
	}
	return false
}

// First - the lowest key, false if tree is empty
func (tree *Tree) First() (string, bool) {
	p := tree.root
	if nil == p {
		return "", false
	}
	for nil != p.left {
		p = p.left
	}
	return p.key, true
}

// Last - the highest key, false if tree is empty
func (tree *Tree) Last() (string, bool) {
	p := tree.root
	if nil == p {
		return "", false
	}
	for nil != p.right {
		p = p.right
	}
	return p.key, true
}
