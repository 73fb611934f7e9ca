// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

// tuned pairs of table size and step constant, each roughly double
// the previous
var sizes = []struct {
	size int
	step int
}{
	{101, 97},
	{211, 199},
	{431, 421},
	{863, 859},
	{1733, 1723},
	{3469, 3467},
	{6947, 6917},
	{13901, 13883},
	{27803, 27799},
	{55609, 55603},
	{111227, 111217},
	{222461, 222437},
	{444929, 444901},
	{889871, 889829},
}

// size and step for a growth level, past the end of the tuned list
// each level is the next prime at least twice the previous size, with
// the largest prime below it as the step
func sizeAt(level int) (size int, step int) {
	if level < len(sizes) {
		return sizes[level].size, sizes[level].step
	}
	size = sizes[len(sizes)-1].size
	for i := len(sizes) - 1; i < level; i += 1 {
		size = nextPrime(2 * size)
	}
	return size, prevPrime(size - 1)
}

// smallest prime >= n
func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if 0 == n%2 {
		n += 1
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

// largest prime <= n, n must be at least 2
func prevPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if 0 == n%2 {
		n -= 1
	}
	for !isPrime(n) {
		n -= 2
	}
	return n
}

// trial division, sizes stay small enough for this to be cheap
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if 0 == n%2 || 0 == n%3 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if 0 == n%i || 0 == n%(i+2) {
			return false
		}
	}
	return true
}
