// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wordlist - load dictionaries from word files, check text
// against them and save their dumps
package wordlist

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
	"github.com/bitmark-inc/dictionary/words"
)

// Suggester - source of corrections for a misspelt word
type Suggester interface {
	Suggest(word string) []string
}

// Files - word file operations on a filesystem
type Files struct {
	fs  afero.Fs
	log *logger.L
}

// New - create file operations on fs logging to log
func New(fs afero.Fs, log *logger.L) (*Files, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Files{
		fs:  fs,
		log: log,
	}, nil
}

// Build - insert every word of a word file that is not already
// present, returns the number of words added
func (f *Files) Build(fileName string, dict dictionary.Dictionary) (int, error) {
	if "" == fileName {
		return 0, fault.ErrMissingWordListFile
	}

	fh, err := f.fs.Open(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return 0, fault.ErrNotFoundWordListFile
		}
		return 0, errors.Wrapf(err, "open: %q", fileName)
	}
	defer fh.Close()

	f.log.Infof("building dictionary from: %q", fileName)

	added := 0
	scanner := words.NewScanner(fh)
	for scanner.Scan() {
		word := scanner.Word()
		if dict.Exists(word) {
			continue
		}
		dict.Insert(word)
		added += 1
	}
	if err := scanner.Err(); nil != err {
		return added, errors.Wrapf(err, "read: %q", fileName)
	}

	f.log.Infof("added: %d  total: %d", added, dict.Count())
	return added, nil
}

// Check - report every word of a text file missing from the
// dictionary together with its suggested corrections, returns the
// number of misspellings
func (f *Files) Check(fileName string, dict dictionary.Dictionary, suggester Suggester, w io.Writer) (int, error) {
	if "" == fileName {
		return 0, fault.ErrMissingInputFile
	}

	fh, err := f.fs.Open(fileName)
	if nil != err {
		return 0, errors.Wrapf(err, "open: %q", fileName)
	}
	defer fh.Close()

	f.log.Infof("checking: %q", fileName)

	misspelt := 0
	scanner := words.NewScanner(fh)
	for scanner.Scan() {
		word := scanner.Word()
		if dict.Exists(word) {
			continue
		}
		misspelt += 1
		f.log.Debugf("line: %d  unknown: %q", scanner.Line(), word)

		if err := report(w, word, scanner.Line(), suggester.Suggest(word)); nil != err {
			return misspelt, errors.Wrap(fault.ErrWriteFailed, err.Error())
		}
	}
	if err := scanner.Err(); nil != err {
		return misspelt, errors.Wrapf(err, "read: %q", fileName)
	}

	f.log.Infof("misspelt: %d", misspelt)
	return misspelt, nil
}

func report(w io.Writer, word string, line int, suggestions []string) error {
	if _, err := fmt.Fprintf(w, "%s on line %d\n", word, line); nil != err {
		return err
	}
	if 0 == len(suggestions) {
		_, err := fmt.Fprint(w, "No suggestions found\n")
		return err
	}
	if _, err := fmt.Fprint(w, "Suggested corrections:\n"); nil != err {
		return err
	}
	for _, s := range suggestions {
		if _, err := fmt.Fprintf(w, "\t%s\n", s); nil != err {
			return err
		}
	}
	return nil
}

// WriteStructure - save the structural dump of a dictionary
func (f *Files) WriteStructure(fileName string, dict dictionary.Dictionary) error {
	return f.write(fileName, dict.EmitStructure)
}

// WriteSorted - save the keys of a dictionary in ascending order
func (f *Files) WriteSorted(fileName string, dict dictionary.Dictionary) error {
	return f.write(fileName, dict.EmitSortedKeys)
}

func (f *Files) write(fileName string, emit func(io.Writer) error) error {
	fh, err := f.fs.Create(fileName)
	if nil != err {
		return errors.Wrapf(err, "create: %q", fileName)
	}

	err = emit(fh)
	if nil != err {
		fh.Close()
		return errors.Wrapf(err, "write: %q", fileName)
	}

	if err := fh.Close(); nil != err {
		return errors.Wrapf(err, "close: %q", fileName)
	}

	f.log.Infof("wrote: %q", fileName)
	return nil
}
