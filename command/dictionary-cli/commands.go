// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/dictionary/avl"
	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
	"github.com/bitmark-inc/dictionary/hashtable"
	"github.com/bitmark-inc/dictionary/suggest"
)

// common errors - keep in alphabetic order
const (
	ErrMissingWords = fault.InvalidError("at least one word is required")
)

type statistics struct {
	Kind       dictionary.Kind `json:"kind"`
	Count      int             `json:"count"`
	Height     int             `json:"height,omitempty"`
	Size       int             `json:"size,omitempty"`
	Step       int             `json:"step,omitempty"`
	Resizes    int             `json:"resizes,omitempty"`
	LoadFactor float64         `json:"loadFactor,omitempty"`
}

func runLookup(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return ErrMissingWords
	}
	for _, word := range c.Args() {
		fmt.Fprintf(m.w, "%s: %t\n", word, m.dict.Exists(word))
	}
	return nil
}

func runSorted(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return m.dict.EmitSortedKeys(m.w)
}

func runStructure(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return m.dict.EmitStructure(m.w)
}

func runSuggest(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return ErrMissingWords
	}

	s := suggest.New(m.dict, 0)
	for _, word := range c.Args() {
		if m.dict.Exists(word) {
			fmt.Fprintf(m.w, "%s: correct\n", word)
			continue
		}
		suggestions := s.Suggest(word)
		if 0 == len(suggestions) {
			fmt.Fprintf(m.w, "%s: no suggestions found\n", word)
			continue
		}
		fmt.Fprintf(m.w, "%s:\n", word)
		for _, r := range suggestions {
			fmt.Fprintf(m.w, "\t%s\n", r)
		}
	}
	return nil
}

func runStats(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	stats := statistics{
		Kind:  m.kind,
		Count: m.dict.Count(),
	}
	switch d := m.dict.(type) {
	case *avl.Tree:
		stats.Height = d.Height()
	case *hashtable.Table:
		stats.Size = d.Size()
		stats.Step = d.Step()
		stats.Resizes = d.Resizes()
		stats.LoadFactor = d.LoadFactor()
	}
	return printJson(m.w, stats)
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
