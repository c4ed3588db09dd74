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

package ranked

import (
	"fmt"
	"math"

	"github.com/biffbaff64/LibGDXSharp-sub001/comparator"
	"github.com/biffbaff64/LibGDXSharp-sub001/selection"
	"golang.org/x/exp/constraints"
)

// Number is any coordinate type a Point can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a 2D position in world units.
type Point[N Number] struct {
	X N
	Y N
}

// Dst2 returns the squared euclidean distance to q, computed in float64 so
// integer coordinates cannot overflow.
func (p Point[N]) Dst2(q Point[N]) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)
	return dx*dx + dy*dy
}

// Query configures nearest-entity lookups around an origin.
type Query[T any, N Number] struct {
	pos    func(T) Point[N]
	origin Point[N]
	key    func(T) string
	seed   uint64
}

// QueryOptionFunc configures NewQuery.
type QueryOptionFunc[T any, N Number] func(*Query[T, N])

// WithTieBreakKey orders entities at equal distance by the hash of key and
// then by key, so equidistant entities rank the same way every run.
func WithTieBreakKey[T any, N Number](key func(T) string) QueryOptionFunc[T, N] {
	return func(q *Query[T, N]) {
		q.key = key
	}
}

// WithTieBreakSeed changes the seed of the tie-break hash.
func WithTieBreakSeed[T any, N Number](seed uint64) QueryOptionFunc[T, N] {
	return func(q *Query[T, N]) {
		q.seed = seed
	}
}

// NewQuery ranks entities by their distance from origin, with pos giving each
// entity's position.
func NewQuery[T any, N Number](pos func(T) Point[N], origin Point[N], opts ...QueryOptionFunc[T, N]) (*Query[T, N], error) {
	if pos == nil {
		return nil, fmt.Errorf("%w: position function must not be nil", selection.ErrInvalidArgument)
	}
	q := &Query[T, N]{
		pos:    pos,
		origin: origin,
		seed:   comparator.DefaultTieBreakSeed,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q, nil
}

func (q *Query[T, N]) dst2(e T) float64 {
	return q.pos(e).Dst2(q.origin)
}

// Comparator orders entities nearest first. Entities whose distance is NaN
// rank after every other entity.
func (q *Query[T, N]) Comparator() comparator.Func[T] {
	byDist := comparator.Then(
		comparator.By(func(e T) int {
			if math.IsNaN(q.dst2(e)) {
				return 1
			}
			return 0
		}),
		comparator.By(q.dst2),
	)
	if q.key == nil {
		return byDist
	}
	return comparator.ThenByHash(byDist, q.key, q.seed)
}

// KthNearest returns the entity ranked k by distance (k=1 is the nearest),
// reordering entities in place.
func (q *Query[T, N]) KthNearest(entities []T, k int) (T, error) {
	return selection.Select(entities, q.Comparator(), k, len(entities))
}

// Nearest returns the entity closest to the origin.
func (q *Query[T, N]) Nearest(entities []T) (T, error) {
	return q.KthNearest(entities, 1)
}

// KNearest returns the k entities closest to the origin in no particular
// order. The result aliases entities.
func (q *Query[T, N]) KNearest(entities []T, k int) ([]T, error) {
	return selection.Smallest(entities, q.Comparator(), k, len(entities))
}

// Within moves the entities no farther than radius from the origin to the
// front of entities and returns them, in no particular order. The result
// aliases entities and may be empty. Entities with a NaN distance are never
// within any radius.
func (q *Query[T, N]) Within(entities []T, radius float64) ([]T, error) {
	if !(radius >= 0) {
		return nil, fmt.Errorf("%w: radius must be a non-negative number: %v", selection.ErrInvalidArgument, radius)
	}
	limit := radius * radius
	n := 0
	for i, e := range entities {
		if q.dst2(e) <= limit {
			entities[n], entities[i] = entities[i], entities[n]
			n++
		}
	}
	return entities[:n:n], nil
}
