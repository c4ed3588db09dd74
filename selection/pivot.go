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

package selection

import (
	"encoding/binary"

	"github.com/biffbaff64/LibGDXSharp-sub001/comparator"
	"github.com/twmb/murmur3"
)

// Names accepted by PivotByName.
const (
	PivotNameFirst         = "first"
	PivotNameMiddle        = "middle"
	PivotNameMedianOfThree = "median3"
	PivotNameHashed        = "hashed"
)

// PivotFunc picks the index of the partitioning item within items[lo..hi].
// It must return a value in [lo, hi] and must not reorder items.
//
// The pivot choice only affects running time. A strategy that always lands on
// the smallest or largest remaining item (FirstPivot on sorted input, for
// example) degrades selection to O(n^2) comparisons.
type PivotFunc[T any] func(items []T, comp comparator.Func[T], lo int, hi int) int

// FirstPivot always partitions around items[lo].
func FirstPivot[T any]() PivotFunc[T] {
	return firstPivot[T]
}

// MiddlePivot partitions around the item halfway between lo and hi.
func MiddlePivot[T any]() PivotFunc[T] {
	return middlePivot[T]
}

// MedianOfThreePivot partitions around the median of items[lo], the middle
// item and items[hi]. It is the default strategy.
func MedianOfThreePivot[T any]() PivotFunc[T] {
	return medianOfThreePivot[T]
}

// HashedPivot picks a pseudo-random index derived from the seeded murmur3
// hash of the bounds. It behaves like a random pivot against crafted inputs
// while staying deterministic for a given seed.
func HashedPivot[T any](seed uint64) PivotFunc[T] {
	return func(items []T, comp comparator.Func[T], lo int, hi int) int {
		var scratch [16]byte
		binary.LittleEndian.PutUint64(scratch[:8], uint64(lo))
		binary.LittleEndian.PutUint64(scratch[8:], uint64(hi))
		span := uint64(hi - lo + 1)
		return lo + int(murmur3.SeedSum64(seed, scratch[:])%span)
	}
}

// PivotByName resolves a strategy name as used in configuration files.
// The seed is only used by the hashed strategy.
func PivotByName[T any](name string, seed uint64) (PivotFunc[T], error) {
	switch name {
	case PivotNameFirst:
		return FirstPivot[T](), nil
	case PivotNameMiddle:
		return MiddlePivot[T](), nil
	case "", PivotNameMedianOfThree:
		return MedianOfThreePivot[T](), nil
	case PivotNameHashed:
		return HashedPivot[T](seed), nil
	}
	return nil, invalidArgument("unknown pivot strategy %q", name)
}

func firstPivot[T any](items []T, comp comparator.Func[T], lo int, hi int) int {
	return lo
}

func middlePivot[T any](items []T, comp comparator.Func[T], lo int, hi int) int {
	return lo + (hi-lo)/2
}

func medianOfThreePivot[T any](items []T, comp comparator.Func[T], lo int, hi int) int {
	mid := lo + (hi-lo)/2
	a, b, c := items[lo], items[mid], items[hi]
	if comp(a, b) < 0 {
		if comp(b, c) < 0 {
			return mid // a < b < c
		}
		if comp(a, c) < 0 {
			return hi // a < c <= b
		}
		return lo // c <= a < b
	}
	if comp(a, c) < 0 {
		return lo // b <= a < c
	}
	if comp(b, c) < 0 {
		return hi // b < c <= a
	}
	return mid // c <= b <= a
}
