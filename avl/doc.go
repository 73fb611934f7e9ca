// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique string keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes carry no parent pointer.  Insertion is recursive and each
// level assigns its own child link from the subtree root returned by
// the level below, so a rotation only has to return the node that
// now heads the subtree.  Each node caches its height, which is
// refreshed on the same return path.
//
// Keys cannot be deleted; the whole tree can be cleared.
package avl
