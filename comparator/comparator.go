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

// Package comparator defines the total-order functions used by the selection
// and ranked packages, together with a few combinators for building them.
package comparator

import "cmp"

// Func orders two items. It returns a negative number when a sorts before b,
// zero when they are equivalent and a positive number when a sorts after b.
// A Func must describe a consistent total order; callers never validate it.
type Func[T any] func(a, b T) int

// Natural orders items ascending by their built-in ordering.
// Floating point NaN sorts before every other value.
func Natural[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse flips the order described by c.
func Reverse[T any](c Func[T]) Func[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// FromLess adapts a strict "less" predicate.
func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	}
}

// By orders items by the natural order of a derived key.
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Then consults secondary only when primary reports equivalence.
func Then[T any](primary, secondary Func[T]) Func[T] {
	return func(a, b T) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return secondary(a, b)
	}
}
