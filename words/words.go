// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package words - split text into lower case words with line numbers
//
// A word is a maximal run of ASCII letters; any other byte ends it.
package words

import (
	"bufio"
	"io"
)

// Scanner - reads words one at a time
type Scanner struct {
	r        *bufio.Reader
	word     []byte
	line     int // line of the next byte
	wordLine int // line the current word ended on
	err      error
	done     bool
}

// NewScanner - create a scanner, line numbers start at 1
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		r:    bufio.NewReader(r),
		word: make([]byte, 0, 32),
		line: 1,
	}
}

// Scan - advance to the next word, false at end of input or on error
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	s.word = s.word[:0]
	for {
		c, err := s.r.ReadByte()
		if nil != err {
			s.done = true
			if io.EOF != err {
				s.err = err
			}
			s.wordLine = s.line
			return len(s.word) > 0
		}
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if 'a' <= c && c <= 'z' {
			s.word = append(s.word, c)
			continue
		}

		found := len(s.word) > 0
		if found {
			s.wordLine = s.line
		}
		if '\n' == c {
			s.line += 1
		}
		if found {
			return true
		}
	}
}

// Word - the current word
func (s *Scanner) Word() string {
	return string(s.word)
}

// Line - line number of the current word
func (s *Scanner) Line() int {
	return s.wordLine
}

// Err - first non-EOF read error
func (s *Scanner) Err() error {
	return s.err
}
