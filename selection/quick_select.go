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

import "github.com/biffbaff64/LibGDXSharp-sub001/comparator"

// quickSelect moves the item of 0-based rank target within items[lo..hi] to
// index target and returns target. Afterwards items[lo..target-1] <=
// items[target] <= items[target+1..hi]. The loop narrows one side per round,
// so stack depth stays constant whatever the input.
func quickSelect[T any](items []T, lo int, hi int, target int, comp comparator.Func[T], pivot PivotFunc[T]) int {
	for hi > lo {
		p := pivot(items, comp, lo, hi)
		items[lo], items[p] = items[p], items[lo]
		j := partition(items, lo, hi, comp)
		if j == target {
			return target
		}
		if j > target {
			hi = j - 1
		} else {
			lo = j + 1
		}
	}
	return target
}

// partition is Hoare's scheme around v=items[lo]. Both scans stop on items
// equal to v, so runs of duplicates are split evenly instead of piling up on
// one side.
func partition[T any](items []T, lo int, hi int, comp comparator.Func[T]) int {
	i := lo
	j := hi + 1
	v := items[lo]
	for {
		for comp(items[i+1], v) < 0 {
			i++
			if i == hi {
				break
			}
		}
		i++
		for comp(v, items[j-1]) < 0 {
			j--
			if j == lo {
				break
			}
		}
		j--
		if i >= j {
			break
		}
		items[i], items[j] = items[j], items[i]
	}
	// put v into position with items[lo..j-1] <= items[j] <= items[j+1..hi]
	items[lo], items[j] = items[j], items[lo]
	return j
}

// minIndex scans items[0..size) once and swaps the smallest item into slot 0.
func minIndex[T any](items []T, size int, comp comparator.Func[T]) int {
	idx := 0
	for i := 1; i < size; i++ {
		if comp(items[i], items[idx]) < 0 {
			idx = i
		}
	}
	items[0], items[idx] = items[idx], items[0]
	return 0
}

// maxIndex scans items[0..size) once and swaps the largest item into slot size-1.
func maxIndex[T any](items []T, size int, comp comparator.Func[T]) int {
	idx := 0
	for i := 1; i < size; i++ {
		if comp(items[i], items[idx]) > 0 {
			idx = i
		}
	}
	last := size - 1
	items[last], items[idx] = items[idx], items[last]
	return last
}
