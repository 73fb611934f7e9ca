// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTunedSizes(t *testing.T) {
	for i, s := range sizes {
		size, step := sizeAt(i)
		assert.Equal(t, s.size, size, "%d: wrong size", i)
		assert.Equal(t, s.step, step, "%d: wrong step", i)
		assert.True(t, isPrime(size), "%d: size: %d not prime", i, size)
		assert.True(t, step < size, "%d: step: %d not below size: %d", i, step, size)
		if i > 0 {
			assert.True(t, size > 2*sizes[i-1].size, "%d: size: %d not doubled", i, size)
		}
	}
}

func TestGeometricSizes(t *testing.T) {
	previous, _ := sizeAt(len(sizes) - 1)
	for level := len(sizes); level < len(sizes)+3; level += 1 {
		size, step := sizeAt(level)
		assert.True(t, isPrime(size), "level: %d  size: %d not prime", level, size)
		assert.True(t, size >= 2*previous, "level: %d  size: %d not doubled from: %d", level, size, previous)
		assert.True(t, isPrime(step), "level: %d  step: %d not prime", level, step)
		assert.True(t, step < size, "level: %d  step: %d not below size", level, step)
		previous = size
	}
}

func TestPrimes(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 97, 101, 7919}
	for _, p := range primes {
		assert.True(t, isPrime(p), "%d should be prime", p)
	}
	composites := []int{0, 1, 4, 9, 25, 49, 91, 7917, 889871 * 3}
	for _, c := range composites {
		assert.False(t, isPrime(c), "%d should not be prime", c)
	}
	assert.Equal(t, 101, nextPrime(98), "next prime")
	assert.Equal(t, 101, nextPrime(101), "next prime of a prime")
	assert.Equal(t, 97, prevPrime(100), "previous prime")
	assert.Equal(t, 2, prevPrime(2), "previous prime of two")
}

func TestHash(t *testing.T) {
	assert.Equal(t, uint32(0), hash(""), "empty")
	assert.Equal(t, uint32(97), hash("a"), "single byte")
	assert.Equal(t, uint32(37*97+98), hash("ab"), "two bytes")
	assert.Equal(t, uint32(3181962480), hash("firstWord"), "wrapped")
}

func TestProbeStride(t *testing.T) {
	table := New()
	table.Insert("k75")  // home slot 0
	table.Insert("k233") // home slot 0, stride 60

	i, found := table.locate("k233")
	assert.True(t, found, "not found")
	assert.Equal(t, 60, i, "wrong probed slot")

	i, found = table.locate("k75")
	assert.True(t, found, "not found")
	assert.Equal(t, 0, i, "wrong home slot")
}
