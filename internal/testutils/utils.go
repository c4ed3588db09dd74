/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package testutils generates reproducible test data.
package testutils

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

const DefaultSeed = uint64(9001)

// HashedInts returns n values in [0, bound) derived from murmur3 hashes of
// their index, so the same seed always yields the same slice.
func HashedInts(n int, bound int, seed uint64) []int {
	var scratch [8]byte
	out := make([]int, n)
	for i := range out {
		binary.LittleEndian.PutUint64(scratch[:], uint64(i))
		out[i] = int(murmur3.SeedSum64(seed, scratch[:]) % uint64(bound))
	}
	return out
}

// HashedFloats returns n values in [0, 1).
func HashedFloats(n int, seed uint64) []float64 {
	var scratch [8]byte
	out := make([]float64, n)
	for i := range out {
		binary.LittleEndian.PutUint64(scratch[:], uint64(i))
		out[i] = float64(murmur3.SeedSum64(seed, scratch[:])>>11) / (1 << 53)
	}
	return out
}

// Ascending returns 1, 2, ..., n.
func Ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Descending returns n, n-1, ..., 1.
func Descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out
}

// OrganPipe returns 1, 2, ..., n/2, ..., 2, 1, a classic bad case for naive pivots.
func OrganPipe(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = min(i, n-1-i) + 1
	}
	return out
}
