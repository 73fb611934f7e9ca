// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dictionary/configuration"
	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
)

// log file used when no configuration file is given
const (
	defaultLogFile  = "spellcheck.log"
	defaultLogCount = 10
	defaultLogSize  = 1024 * 1024
)

// commands that need nothing but the program name
func processSetupCommand(program string, arguments []string) {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing word list or input file\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--config-file=FILE] [--type=KIND] [--structure=FILE] [--sorted=FILE] [WORDLIST] INPUT\n\n", program)

		fmt.Printf("options:\n\n")
		fmt.Printf("  --help                     (-h)     - display this message\n")
		fmt.Printf("  --version                  (-V)     - display version string\n")
		fmt.Printf("  --verbose                  (-v)     - log to the console as well as the log file\n")
		fmt.Printf("  --config-file=FILE         (-c)     - Lua configuration file\n")
		fmt.Printf("  --type=KIND                (-t)     - dictionary kind, one of: %s\n", strings.Join(kindNames(), ", "))
		fmt.Printf("  --structure=FILE           (-s)     - write the dictionary structure to FILE\n")
		fmt.Printf("  --sorted=FILE              (-o)     - write the sorted dictionary keys to FILE\n")
		fmt.Printf("\n")
		fmt.Printf("  WORDLIST may be omitted when the configuration file sets word_list\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
}

// read the optional configuration file and apply command-line overrides
func getConfiguration(options map[string][]string, verbose bool) (*configuration.Configuration, error) {

	var theConfiguration *configuration.Configuration

	switch len(options["config-file"]) {
	case 0:
		theConfiguration = &configuration.Configuration{
			Dictionary: string(dictionary.AVL),
			Kind:       dictionary.AVL,
			Logging: logger.Configuration{
				Directory: os.TempDir(),
				File:      defaultLogFile,
				Size:      defaultLogSize,
				Count:     defaultLogCount,
				Levels: map[string]string{
					logger.DefaultTag: "critical",
				},
			},
		}

	case 1:
		c, err := configuration.GetConfiguration(options["config-file"][0])
		if nil != err {
			return nil, err
		}
		theConfiguration = c

	default:
		return nil, fmt.Errorf("only one config-file option is allowed, %d were detected", len(options["config-file"]))
	}

	if n := len(options["type"]); n > 0 {
		kind, err := dictionary.ParseKind(options["type"][n-1])
		if nil != err {
			return nil, err
		}
		theConfiguration.Dictionary = string(kind)
		theConfiguration.Kind = kind
	}
	if n := len(options["structure"]); n > 0 {
		theConfiguration.StructureFile = options["structure"][n-1]
	}
	if n := len(options["sorted"]); n > 0 {
		theConfiguration.SortedFile = options["sorted"][n-1]
	}

	if verbose {
		theConfiguration.Logging.Console = true
		if nil == theConfiguration.Logging.Levels {
			theConfiguration.Logging.Levels = map[string]string{}
		}
		theConfiguration.Logging.Levels[logger.DefaultTag] = "info"
	}

	return theConfiguration, nil
}

// word list and input from the arguments, the word list may come
// from the configuration
func getFiles(theConfiguration *configuration.Configuration, arguments []string) (string, string, error) {
	switch len(arguments) {
	case 1:
		if "" == theConfiguration.WordList {
			return "", "", fault.ErrMissingWordListFile
		}
		return theConfiguration.WordList, arguments[0], nil
	case 2:
		return arguments[0], arguments[1], nil
	default:
		return "", "", fault.ErrMissingInputFile
	}
}

func kindNames() []string {
	names := []string{}
	for _, k := range dictionary.Kinds() {
		names = append(names, string(k))
	}
	return names
}
