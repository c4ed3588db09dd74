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

// Selector bundles a comparator with a pivot strategy. It is immutable once
// built, so one Selector can serve any number of goroutines as long as each
// works on its own slice.
type Selector[T any] struct {
	comp  comparator.Func[T]
	pivot PivotFunc[T]
}

type selectorOptions[T any] struct {
	pivot PivotFunc[T]
}

// SelectorOptionFunc configures NewSelector.
type SelectorOptionFunc[T any] func(*selectorOptions[T])

// WithPivot sets the pivot strategy (defaults to MedianOfThreePivot).
func WithPivot[T any](pivot PivotFunc[T]) SelectorOptionFunc[T] {
	return func(opts *selectorOptions[T]) {
		opts.pivot = pivot
	}
}

// NewSelector returns a Selector ordering items with comp.
func NewSelector[T any](comp comparator.Func[T], opts ...SelectorOptionFunc[T]) (*Selector[T], error) {
	options := &selectorOptions[T]{
		pivot: MedianOfThreePivot[T](),
	}
	for _, opt := range opts {
		opt(options)
	}

	if comp == nil {
		return nil, invalidArgument("comparator must not be nil")
	}
	if options.pivot == nil {
		return nil, invalidArgument("pivot strategy must not be nil")
	}
	return &Selector[T]{
		comp:  comp,
		pivot: options.pivot,
	}, nil
}

// Comparator returns the order the selector uses.
func (s *Selector[T]) Comparator() comparator.Func[T] {
	return s.comp
}

// Select returns the item of rank k among items[0:size]. See the package
// function Select.
func (s *Selector[T]) Select(items []T, k int, size int) (T, error) {
	idx, err := selectIndex(items, s.comp, k, size, s.pivot)
	if err != nil {
		var zero T
		return zero, err
	}
	return items[idx], nil
}

// SelectIndex is Select returning the index of the selected item, which is
// always k-1.
func (s *Selector[T]) SelectIndex(items []T, k int, size int) (int, error) {
	return selectIndex(items, s.comp, k, size, s.pivot)
}

// Smallest returns items[:k], the k smallest of items[0:size] in no particular
// order.
func (s *Selector[T]) Smallest(items []T, k int, size int) ([]T, error) {
	return smallest(items, s.comp, k, size, s.pivot)
}

// Quantile returns the item at the normalized rank in [0, 1] of all items.
func (s *Selector[T]) Quantile(items []T, rank float64, inclusive bool) (T, error) {
	return quantile(items, s.comp, rank, inclusive, s.pivot)
}

// Median returns the inclusive quantile at 0.5, the lower median for an even
// number of items.
func (s *Selector[T]) Median(items []T) (T, error) {
	return quantile(items, s.comp, 0.5, true, s.pivot)
}
