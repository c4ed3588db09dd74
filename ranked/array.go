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

// Package ranked answers rank queries for game logic: the k-th item of a
// growable array, or the k-th nearest entity to a point.
package ranked

import (
	"fmt"
	"slices"

	"github.com/biffbaff64/LibGDXSharp-sub001/comparator"
	"github.com/biffbaff64/LibGDXSharp-sub001/selection"
)

const defaultArrayCapacity = 16

// Array is a growable list whose backing storage may be larger than its
// size. Rank queries reorder the live items in place and never touch the
// spare capacity. An Array is not safe for concurrent use.
type Array[T any] struct {
	items []T
	size  int
}

// NewArray returns an empty Array able to hold capacity items before growing.
func NewArray[T any](capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = defaultArrayCapacity
	}
	return &Array[T]{items: make([]T, capacity)}
}

// Add appends values, growing the backing storage by 1.75x when full.
func (a *Array[T]) Add(values ...T) {
	needed := a.size + len(values)
	if needed > len(a.items) {
		a.resize(max(8, needed, int(float64(len(a.items))*1.75)))
	}
	copy(a.items[a.size:], values)
	a.size = needed
}

// AddAll appends the live items of other.
func (a *Array[T]) AddAll(other *Array[T]) {
	a.Add(other.Items()...)
}

func (a *Array[T]) Get(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return a.items[index], nil
}

func (a *Array[T]) Set(index int, value T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.items[index] = value
	return nil
}

// RemoveIndex removes and returns the item at index, shifting later items down.
func (a *Array[T]) RemoveIndex(index int) (T, error) {
	var zero T
	if err := a.checkIndex(index); err != nil {
		return zero, err
	}
	value := a.items[index]
	copy(a.items[index:], a.items[index+1:a.size])
	a.size--
	a.items[a.size] = zero
	return value, nil
}

func (a *Array[T]) Size() int {
	return a.size
}

func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

// Clear drops every item but keeps the backing storage.
func (a *Array[T]) Clear() {
	clear(a.items[:a.size])
	a.size = 0
}

// Items returns a view of the live items. It aliases the array's storage.
func (a *Array[T]) Items() []T {
	return a.items[:a.size:a.size]
}

// Sort fully sorts the live items.
func (a *Array[T]) Sort(comp comparator.Func[T]) {
	slices.SortFunc(a.items[:a.size], comp)
}

// SelectRanked returns the item of rank k (1-based) under comp, reordering
// the live items as selection.Select does.
func (a *Array[T]) SelectRanked(comp comparator.Func[T], k int) (T, error) {
	return selection.Select(a.items, comp, k, a.size)
}

// SelectRankedIndex is SelectRanked returning the item's index.
func (a *Array[T]) SelectRankedIndex(comp comparator.Func[T], k int) (int, error) {
	return selection.SelectIndex(a.items, comp, k, a.size)
}

func (a *Array[T]) checkIndex(index int) error {
	if index < 0 || index >= a.size {
		return fmt.Errorf("index can't be >= size or negative: %d >= %d", index, a.size)
	}
	return nil
}

func (a *Array[T]) resize(newCapacity int) {
	items := make([]T, newCapacity)
	copy(items, a.items[:a.size])
	a.items = items
}
