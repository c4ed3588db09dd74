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

// Package selection finds k-th order statistics: the item that would sit at
// rank k if a slice were sorted, without sorting it.
//
// Selection works in place on items[0:size]. The range is left partitioned
// around the answer, so every item before index k-1 is <= the answer and every
// item from k-1 on is >= it; nothing beyond size is touched and nothing is
// copied. Ranks are 1-based: k=1 is the minimum and k=size the maximum. Both
// extremes are found with a single linear scan; every other rank uses Hoare's
// quickselect, expected O(size) time with O(1) extra space and O(size^2) in
// the worst case when the pivot strategy keeps landing on an extreme.
//
// Nothing here keeps state between calls. Concurrent calls on disjoint slices
// are safe; concurrent calls on the same slice must be serialized by the caller.
package selection

import (
	"cmp"

	"github.com/biffbaff64/LibGDXSharp-sub001/comparator"
)

// Select returns the item of rank k (1-based, ascending under comp) among
// items[0:size], partially reordering that range. It fails with
// ErrInvalidArgument, leaving items untouched, when comp is nil, size is not
// in [1, len(items)] or k is not in [1, size].
func Select[T any](items []T, comp comparator.Func[T], k int, size int) (T, error) {
	idx, err := selectIndex(items, comp, k, size, medianOfThreePivot[T])
	if err != nil {
		var zero T
		return zero, err
	}
	return items[idx], nil
}

// SelectIndex is Select reporting where the answer now lives, which is always
// k-1.
func SelectIndex[T any](items []T, comp comparator.Func[T], k int, size int) (int, error) {
	return selectIndex(items, comp, k, size, medianOfThreePivot[T])
}

// SelectOrdered selects rank k from the whole slice in natural order.
func SelectOrdered[T cmp.Ordered](items []T, k int) (T, error) {
	return Select(items, comparator.Natural[T](), k, len(items))
}

// Smallest selects rank k and returns items[:k], the k smallest items in no
// particular order. The result aliases items.
func Smallest[T any](items []T, comp comparator.Func[T], k int, size int) ([]T, error) {
	return smallest(items, comp, k, size, medianOfThreePivot[T])
}

// Quantile returns the item at the normalized rank in [0, 1] of the whole
// slice. With inclusive set it selects rank ceil(rank*n), at least 1;
// otherwise it selects rank floor(rank*n)+1, at most n.
func Quantile[T any](items []T, comp comparator.Func[T], rank float64, inclusive bool) (T, error) {
	return quantile(items, comp, rank, inclusive, medianOfThreePivot[T])
}

// Median is the inclusive quantile at rank 0.5, the lower median for an even
// number of items.
func Median[T any](items []T, comp comparator.Func[T]) (T, error) {
	return quantile(items, comp, 0.5, true, medianOfThreePivot[T])
}

func selectIndex[T any](items []T, comp comparator.Func[T], k int, size int, pivot PivotFunc[T]) (int, error) {
	if err := checkArgs(items, comp, k, size); err != nil {
		return -1, err
	}
	switch k {
	case 1:
		return minIndex(items, size, comp), nil
	case size:
		return maxIndex(items, size, comp), nil
	}
	return quickSelect(items, 0, size-1, k-1, comp, pivot), nil
}

func smallest[T any](items []T, comp comparator.Func[T], k int, size int, pivot PivotFunc[T]) ([]T, error) {
	if _, err := selectIndex(items, comp, k, size, pivot); err != nil {
		return nil, err
	}
	return items[:k:k], nil
}

func quantile[T any](items []T, comp comparator.Func[T], rank float64, inclusive bool, pivot PivotFunc[T]) (T, error) {
	var zero T
	if err := checkNormalizedRankBounds(rank); err != nil {
		return zero, err
	}
	n := len(items)
	if n == 0 {
		return zero, invalidArgument("cannot take a quantile of an empty slice")
	}
	idx, err := selectIndex(items, comp, quantileRank(rank, n, inclusive), n, pivot)
	if err != nil {
		return zero, err
	}
	return items[idx], nil
}
