// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
)

// basic defaults (files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultDictionary    = string(dictionary.AVL)

	defaultSuggestionExpiry = 0 // seconds, zero is no expiry

	defaultLogDirectory = "log"
	defaultLogFile      = "spellcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"wordlist":        "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - values from the Lua file
type Configuration struct {
	DataDirectory    string               `gluamapper:"data_directory" json:"data_directory"`
	Dictionary       string               `gluamapper:"dictionary" json:"dictionary"`
	WordList         string               `gluamapper:"word_list" json:"word_list"`
	StructureFile    string               `gluamapper:"structure_file" json:"structure_file"`
	SortedFile       string               `gluamapper:"sorted_file" json:"sorted_file"`
	SuggestionExpiry int                  `gluamapper:"suggestion_expiry" json:"suggestion_expiry"`
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`

	// filled in after parsing
	Kind dictionary.Kind `gluamapper:"-" json:"-"`
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrNotFoundConfigFile
		}
		return nil, err
	}

	// absolute path to the main directory
	configurationDirectory, _ := filepath.Split(configurationFileName)

	// the mapper writes into an existing map so give it a fresh one
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		DataDirectory:    defaultDataDirectory,
		Dictionary:       defaultDictionary,
		SuggestionExpiry: defaultSuggestionExpiry,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	variables := map[string]string{
		"config_directory": configurationDirectory,
	}
	if err := ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.Kind, err = dictionary.ParseKind(options.Dictionary)
	if nil != err {
		return nil, errors.Wrapf(err, "dictionary: %q", options.Dictionary)
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, errors.Errorf("path: %q is not a valid directory", options.DataDirectory)
	case ".":
		options.DataDirectory = filepath.Clean(configurationDirectory)
	default:
		options.DataDirectory = ensureAbsolute(configurationDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.WordList,
		&options.StructureFile,
		&options.SortedFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = ensureAbsolute(options.DataDirectory, *f)
		}
	}

	if options.SuggestionExpiry < 0 {
		options.SuggestionExpiry = 0
	}

	return options, nil
}

// if not absolute, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
