// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree, right
// sub-trees above and left sub-trees below their parent
//
// returns the maximum depth of the tree
func (tree *Tree) Print(w io.Writer, printHeights bool) int {
	return printTree(w, tree.root, "", root, printHeights)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *node, prefix string, br branch, printHeights bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printHeights)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printHeights {
		fmt.Fprintf(w, "%q h:%d %+2d\n", tree.key, tree.height, balanceFactor(tree))
	} else {
		fmt.Fprintf(w, "%q\n", tree.key)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printHeights)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
