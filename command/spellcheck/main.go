// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/spf13/afero"

	_ "github.com/bitmark-inc/dictionary/avl"
	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
	_ "github.com/bitmark-inc/dictionary/hashtable"
	"github.com/bitmark-inc/dictionary/suggest"
	"github.com/bitmark-inc/dictionary/wordlist"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "type", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "structure", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "sorted", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	verbose := len(options["verbose"]) > 0

	theConfiguration, err := getConfiguration(options, verbose)
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	wordListFile, inputFile, err := getFiles(theConfiguration, arguments)
	if nil != err {
		processSetupCommand(program, []string{""})
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// fatal invariant breaches are logged before the panic
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	dict, err := dictionary.New(theConfiguration.Kind)
	if nil != err {
		log.Criticalf("dictionary: %q  error: %s", theConfiguration.Kind, err)
		exitwithstatus.Message("%s: dictionary: %q  error: %s", program, theConfiguration.Kind, err)
	}

	files, err := wordlist.New(afero.NewOsFs(), logger.New("wordlist"))
	if nil != err {
		exitwithstatus.Message("%s: word list setup error: %s", program, err)
	}

	n, err := files.Build(wordListFile, dict)
	if nil != err {
		log.Criticalf("build from: %q  error: %s", wordListFile, err)
		exitwithstatus.Message("%s: build from: %q  error: %s", program, wordListFile, err)
	}
	log.Infof("dictionary: %s  words: %d", theConfiguration.Kind, n)

	if "" != theConfiguration.StructureFile {
		if err := files.WriteStructure(theConfiguration.StructureFile, dict); nil != err {
			exitwithstatus.Message("%s: structure error: %s", program, err)
		}
	}

	if "" != theConfiguration.SortedFile {
		if err := files.WriteSorted(theConfiguration.SortedFile, dict); nil != err {
			exitwithstatus.Message("%s: sorted error: %s", program, err)
		}
	}

	expiry := time.Duration(theConfiguration.SuggestionExpiry) * time.Second
	suggester := suggest.New(dict, expiry)

	misspelt, err := files.Check(inputFile, dict, suggester, os.Stdout)
	if nil != err {
		log.Criticalf("check: %q  error: %s", inputFile, err)
		exitwithstatus.Message("%s: check: %q  error: %s", program, inputFile, err)
	}
	log.Infof("misspelt: %d  cached suggestions: %d", misspelt, suggester.Cached())
}
