// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/dictionary/dictionary"
)

// indentation for each level of the structure dump
const indent = "  "

// Walk - call f for every key in ascending order, stops early if f
// returns false
func (tree *Tree) Walk(f func(key string) bool) {
	inOrder(tree.root, f)
}

// internal: left, self, right
func inOrder(p *node, f func(string) bool) bool {
	if nil == p {
		return true
	}
	return inOrder(p.left, f) && f(p.key) && inOrder(p.right, f)
}

// SortedKeys - all keys in ascending order
func (tree *Tree) SortedKeys() []string {
	keys := make([]string, 0, tree.count)
	tree.Walk(func(key string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Structure - pre-order list of (depth, key) showing the tree shape
func (tree *Tree) Structure() []dictionary.Entry {
	entries := make([]dictionary.Entry, 0, tree.count)
	return preOrder(tree.root, 0, entries)
}

// internal: self, left, right
func preOrder(p *node, depth int, entries []dictionary.Entry) []dictionary.Entry {
	if nil == p {
		return entries
	}
	entries = append(entries, dictionary.Entry{
		Position: depth,
		Key:      p.key,
	})
	entries = preOrder(p.left, depth+1, entries)
	return preOrder(p.right, depth+1, entries)
}

// EmitSortedKeys - write one key per line in ascending order
func (tree *Tree) EmitSortedKeys(w io.Writer) error {
	return dictionary.WriteKeys(w, tree.SortedKeys())
}

// EmitStructure - write the pre-order dump, each key indented by its
// depth
func (tree *Tree) EmitStructure(w io.Writer) error {
	for _, e := range tree.Structure() {
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(indent, e.Position), e.Key); nil != err {
			return err
		}
	}
	return nil
}
