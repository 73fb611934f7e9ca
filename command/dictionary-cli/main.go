// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/spf13/afero"
	"github.com/urfave/cli"

	_ "github.com/bitmark-inc/dictionary/avl"
	"github.com/bitmark-inc/dictionary/dictionary"
	_ "github.com/bitmark-inc/dictionary/hashtable"
	"github.com/bitmark-inc/dictionary/wordlist"
)

type metadata struct {
	kind    dictionary.Kind
	dict    dictionary.Dictionary
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "dictionary-cli"
	app.Usage = "query a dictionary built from a word list"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "type, t",
			Value: string(dictionary.AVL),
			Usage: " dictionary `KIND` [" + strings.Join(kindNames(), "|") + "]",
		},
		cli.StringFlag{
			Name:  "words, w",
			Value: "",
			Usage: "*word list `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "lookup",
			Usage:     "report whether each word is present",
			ArgsUsage: "WORD...",
			Action:    runLookup,
		},
		{
			Name:   "sorted",
			Usage:  "print all words in ascending order",
			Action: runSorted,
		},
		{
			Name:   "structure",
			Usage:  "print the internal layout of the dictionary",
			Action: runStructure,
		},
		{
			Name:      "suggest",
			Usage:     "print corrections for each word that is not present",
			ArgsUsage: "WORD...",
			Action:    runSuggest,
		},
		{
			Name:   "stats",
			Usage:  "print dictionary statistics as JSON",
			Action: runStats,
		},
		{
			Name:   "version",
			Usage:  "display dictionary-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress building the dictionary for certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		kind, err := dictionary.ParseKind(c.GlobalString("type"))
		if nil != err {
			return fmt.Errorf("type: %q can only be %s", c.GlobalString("type"), strings.Join(kindNames(), "/"))
		}

		level := "critical"
		if verbose {
			level = "info"
		}
		err = logger.Initialise(logger.Configuration{
			Directory: os.TempDir(),
			File:      app.Name + ".log",
			Size:      1024 * 1024,
			Count:     10,
			Console:   verbose,
			Levels: map[string]string{
				logger.DefaultTag: level,
			},
		})
		if nil != err {
			return err
		}

		dict, err := dictionary.New(kind)
		if nil != err {
			return err
		}

		files, err := wordlist.New(afero.NewOsFs(), logger.New("wordlist"))
		if nil != err {
			return err
		}

		n, err := files.Build(c.GlobalString("words"), dict)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "%s dictionary: %d words\n", kind, n)
		}

		c.App.Metadata["config"] = &metadata{
			kind:    kind,
			dict:    dict,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func kindNames() []string {
	names := []string{}
	for _, k := range dictionary.Kinds() {
		names = append(names, string(k))
	}
	return names
}
