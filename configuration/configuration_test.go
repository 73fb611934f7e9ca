// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/dictionary/configuration"
	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
)

const fullConfig = `
local M = {}

M.data_directory = config_directory .. "data"
M.dictionary = "hash"
M.word_list = "words.txt"
M.structure_file = "/tmp/structure.txt"
M.sorted_file = "sorted.txt"
M.suggestion_expiry = 30

M.logging = {
    directory = "logs",
    file = "check.log",
    size = 4096,
    count = 3,
    console = true,
    levels = {
        DEFAULT = "info",
        wordlist = "debug",
    },
}

return M
`

func writeConfig(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "spellcheck.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfig(t, fullConfig)
	defer os.RemoveAll(dir)

	dataDirectory := filepath.Join(dir, "data")
	err := os.Mkdir(dataDirectory, 0700)
	assert.Nil(t, err, "mkdir")

	options, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "wrong error")

	assert.Equal(t, dataDirectory, options.DataDirectory, "wrong data directory")
	assert.Equal(t, dictionary.Hash, options.Kind, "wrong kind")
	assert.Equal(t, filepath.Join(dataDirectory, "words.txt"), options.WordList, "wrong word list")
	assert.Equal(t, "/tmp/structure.txt", options.StructureFile, "absolute path was changed")
	assert.Equal(t, filepath.Join(dataDirectory, "sorted.txt"), options.SortedFile, "wrong sorted file")
	assert.Equal(t, 30, options.SuggestionExpiry, "wrong expiry")

	assert.Equal(t, filepath.Join(dataDirectory, "logs"), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, "check.log", options.Logging.File, "wrong log file")
	assert.Equal(t, 4096, options.Logging.Size, "wrong log size")
	assert.Equal(t, 3, options.Logging.Count, "wrong log count")
	assert.True(t, options.Logging.Console, "console not set")
	assert.Equal(t, "debug", options.Logging.Levels["wordlist"], "wrong level")
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfig(t, "return {}\n")
	defer os.RemoveAll(dir)

	options, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "wrong error")

	resolved, _ := filepath.EvalSymlinks(dir)
	actual, _ := filepath.EvalSymlinks(options.DataDirectory)
	assert.Equal(t, resolved, actual, "data directory should be the config directory")

	assert.Equal(t, dictionary.AVL, options.Kind, "wrong default kind")
	assert.Equal(t, "", options.WordList, "word list should be blank")
	assert.Equal(t, "", options.StructureFile, "structure file should be blank")
	assert.Equal(t, "", options.SortedFile, "sorted file should be blank")
	assert.Equal(t, 0, options.SuggestionExpiry, "wrong default expiry")
	assert.Equal(t, "spellcheck.log", options.Logging.File, "wrong default log file")
}

func TestGetConfigurationBadKind(t *testing.T) {
	dir, fileName := writeConfig(t, `return { dictionary = "skiplist" }`)
	defer os.RemoveAll(dir)

	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "unknown kind accepted")
}

func TestGetConfigurationMissingDataDirectory(t *testing.T) {
	dir, fileName := writeConfig(t, `return { data_directory = "absent" }`)
	defer os.RemoveAll(dir)

	_, err := configuration.GetConfiguration(fileName)
	assert.True(t, os.IsNotExist(err), "wrong error: %v", err)
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration("/no/such/directory/spellcheck.conf")
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "wrong error")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	dir, fileName := writeConfig(t, "return 42\n")
	defer os.RemoveAll(dir)

	s := struct {
		Name string `gluamapper:"name"`
	}{}

	err := configuration.ParseConfigurationFile(fileName, s, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer accepted")

	err = configuration.ParseConfigurationFile(fileName, &s, nil)
	assert.NotNil(t, err, "non-table result accepted")

	err = ioutil.WriteFile(fileName, []byte("return {"), 0600)
	assert.Nil(t, err, "rewrite")
	err = configuration.ParseConfigurationFile(fileName, &s, nil)
	assert.NotNil(t, err, "syntax error accepted")
}

func TestParseConfigurationFileVariables(t *testing.T) {
	dir, fileName := writeConfig(t, `return { name = greeting .. " " .. arg[0] }`)
	defer os.RemoveAll(dir)

	s := struct {
		Name string `gluamapper:"name"`
	}{}

	err := configuration.ParseConfigurationFile(fileName, &s, map[string]string{"greeting": "hello"})
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "hello "+fileName, s.Name, "wrong value")
}
