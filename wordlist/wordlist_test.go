// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordlist_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/dictionary/avl"
	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
	"github.com/bitmark-inc/dictionary/hashtable"
	"github.com/bitmark-inc/dictionary/suggest"
	"github.com/bitmark-inc/dictionary/wordlist"
)

const (
	testingDirName = "testing"
	wordFile       = "/data/words.txt"
	textFile       = "/data/input.txt"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setupFiles(t *testing.T, wordText string, inputText string) (*wordlist.Files, afero.Fs) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, wordFile, []byte(wordText), 0644)
	assert.Nil(t, err, "word file")
	err = afero.WriteFile(fs, textFile, []byte(inputText), 0644)
	assert.Nil(t, err, "input file")

	files, err := wordlist.New(fs, logger.New("wordlist"))
	assert.Nil(t, err, "new")
	return files, fs
}

func TestNewWithoutLogger(t *testing.T) {
	_, err := wordlist.New(afero.NewMemMapFs(), nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "wrong error")
}

func TestBuild(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	files, _ := setupFiles(t, "Dog cat\nbird, CAT\n\n  dog's\n", "")

	for _, dict := range []dictionary.Dictionary{avl.New(), hashtable.New()} {
		n, err := files.Build(wordFile, dict)
		assert.Nil(t, err, "build")
		assert.Equal(t, 4, n, "words added")
		assert.Equal(t, []string{"bird", "cat", "dog", "s"}, dict.SortedKeys(), "keys")

		n, err = files.Build(wordFile, dict)
		assert.Nil(t, err, "rebuild")
		assert.Equal(t, 0, n, "words added twice")
		assert.Equal(t, 4, dict.Count(), "count after rebuild")
	}
}

func TestBuildErrors(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	files, _ := setupFiles(t, "", "")

	_, err := files.Build("", avl.New())
	assert.Equal(t, fault.ErrMissingWordListFile, err, "blank file name")

	_, err = files.Build("/data/absent.txt", avl.New())
	assert.Equal(t, fault.ErrNotFoundWordListFile, err, "missing file")
	assert.True(t, fault.IsErrNotFound(err), "wrong class")

	n, err := files.Build(wordFile, avl.New())
	assert.Nil(t, err, "empty file")
	assert.Equal(t, 0, n, "words from empty file")
}

func TestCheck(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	files, _ := setupFiles(t,
		"the cat sat on a mat",
		"The cat\nsta on\n\nthe xyzzy mat\n",
	)

	for _, dict := range []dictionary.Dictionary{avl.New(), hashtable.New()} {
		_, err := files.Build(wordFile, dict)
		assert.Nil(t, err, "build")

		buffer := &bytes.Buffer{}
		n, err := files.Check(textFile, dict, suggest.New(dict, 0), buffer)
		assert.Nil(t, err, "check")
		assert.Equal(t, 2, n, "misspellings")

		expected := "sta on line 2\n" +
			"Suggested corrections:\n" +
			"\tsat\n" +
			"xyzzy on line 4\n" +
			"No suggestions found\n"
		assert.Equal(t, expected, buffer.String(), "report")
	}
}

func TestCheckErrors(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	files, _ := setupFiles(t, "word", "wrod")
	dict := avl.New()
	_, err := files.Build(wordFile, dict)
	assert.Nil(t, err, "build")

	s := suggest.New(dict, 0)

	_, err = files.Check("", dict, s, &bytes.Buffer{})
	assert.Equal(t, fault.ErrMissingInputFile, err, "blank file name")

	_, err = files.Check("/data/absent.txt", dict, s, &bytes.Buffer{})
	assert.True(t, os.IsNotExist(pkgerrors.Cause(err)), "missing file: %v", err)

	n, err := files.Check(textFile, dict, s, failingWriter{})
	assert.Equal(t, 1, n, "misspellings before failure")
	assert.Equal(t, fault.ErrWriteFailed, pkgerrors.Cause(err), "wrong error")
}

func TestWriteDumps(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	files, fs := setupFiles(t, "dog cat bird", "")

	dict := avl.New()
	_, err := files.Build(wordFile, dict)
	assert.Nil(t, err, "build")

	err = files.WriteSorted("/out/sorted.txt", dict)
	assert.Nil(t, err, "sorted")
	err = files.WriteStructure("/out/structure.txt", dict)
	assert.Nil(t, err, "structure")

	sorted, err := afero.ReadFile(fs, "/out/sorted.txt")
	assert.Nil(t, err, "read sorted")
	assert.Equal(t, "bird\ncat\ndog\n", string(sorted), "sorted content")

	structure, err := afero.ReadFile(fs, "/out/structure.txt")
	assert.Nil(t, err, "read structure")
	assert.Equal(t, "cat\n  bird\n  dog\n", string(structure), "structure content")
}

func TestWriteReadOnly(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	files, err := wordlist.New(fs, logger.New("wordlist"))
	assert.Nil(t, err, "new")

	err = files.WriteSorted("/out/sorted.txt", hashtable.New())
	assert.NotNil(t, err, "read only filesystem accepted a write")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
