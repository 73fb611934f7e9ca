// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dictionary

import (
	"sort"
	"strings"
	"sync"

	"github.com/bitmark-inc/dictionary/fault"
)

// Kind - name of a dictionary implementation
type Kind string

// the implementations
const (
	AVL  Kind = "avl"
	Hash Kind = "hash"
)

// Constructor - creates an empty dictionary
type Constructor func() Dictionary

var registry struct {
	sync.RWMutex
	constructors map[Kind]Constructor
}

// Register - make a dictionary kind available to New
//
// called from the init of each implementation package
func Register(kind Kind, constructor Constructor) error {
	registry.Lock()
	defer registry.Unlock()

	if nil == registry.constructors {
		registry.constructors = make(map[Kind]Constructor)
	}
	if _, ok := registry.constructors[kind]; ok {
		return fault.ErrDictionaryAlreadyRegistered
	}
	registry.constructors[kind] = constructor
	return nil
}

// ParseKind - convert a name to a kind, case is ignored
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case AVL, Hash:
		return k, nil
	case "tree", "bst":
		return AVL, nil
	case "table", "hashtable":
		return Hash, nil
	default:
		return "", fault.ErrUnknownDictionaryKind
	}
}

// New - create an empty dictionary of the given kind
func New(kind Kind) (Dictionary, error) {
	registry.RLock()
	constructor, ok := registry.constructors[kind]
	registry.RUnlock()

	if !ok {
		return nil, fault.ErrDictionaryNotRegistered
	}
	return constructor(), nil
}

// Kinds - sorted list of registered kinds
func Kinds() []Kind {
	registry.RLock()
	defer registry.RUnlock()

	kinds := make([]Kind, 0, len(registry.constructors))
	for k := range registry.constructors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
