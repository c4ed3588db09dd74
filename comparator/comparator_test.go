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

package comparator

import (
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func TestNatural(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     float64
		expected int
	}{
		{name: "less", a: 1, b: 2, expected: -1},
		{name: "equal", a: 2, b: 2, expected: 0},
		{name: "greater", a: 3, b: 2, expected: 1},
		{name: "nan first", a: math.NaN(), b: math.Inf(-1), expected: -1},
	}
	c := Natural[float64]()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sign(c(tc.a, tc.b)))
		})
	}
}

func TestReverse(t *testing.T) {
	c := Reverse(Natural[int]())
	assert.Equal(t, 1, sign(c(1, 2)))
	assert.Equal(t, -1, sign(c(2, 1)))
	assert.Equal(t, 0, c(7, 7))
}

func TestFromLess(t *testing.T) {
	c := FromLess(func(a, b string) bool { return len(a) < len(b) })
	assert.Equal(t, -1, c("a", "bb"))
	assert.Equal(t, 1, c("ccc", "bb"))
	assert.Equal(t, 0, c("ab", "cd"))
}

func TestByAndThen(t *testing.T) {
	type enemy struct {
		name string
		hp   int
	}
	byHP := By(func(e enemy) int { return e.hp })
	byName := By(func(e enemy) string { return e.name })
	c := Then(byHP, byName)

	enemies := []enemy{{"orc", 10}, {"bat", 3}, {"elf", 10}, {"ant", 3}}
	slices.SortFunc(enemies, c)
	assert.Equal(t, []enemy{{"ant", 3}, {"bat", 3}, {"elf", 10}, {"orc", 10}}, enemies)
}

func TestThenByHash(t *testing.T) {
	type enemy struct {
		id   string
		dist float64
	}
	byDist := By(func(e enemy) float64 { return e.dist })
	c := ThenByHash(byDist, func(e enemy) string { return e.id }, DefaultTieBreakSeed)

	a := enemy{"goblin-1", 5}
	b := enemy{"goblin-2", 5}
	far := enemy{"troll", 9}

	t.Run("primary order wins", func(t *testing.T) {
		assert.Less(t, c(a, far), 0)
		assert.Greater(t, c(far, b), 0)
	})
	t.Run("ties are broken antisymmetrically", func(t *testing.T) {
		assert.NotEqual(t, 0, c(a, b))
		assert.Equal(t, -sign(c(a, b)), sign(c(b, a)))
	})
	t.Run("same key is equal", func(t *testing.T) {
		assert.Equal(t, 0, c(a, a))
	})
	t.Run("stable across comparator instances", func(t *testing.T) {
		again := ThenByHash(byDist, func(e enemy) string { return e.id }, DefaultTieBreakSeed)
		assert.Equal(t, sign(c(a, b)), sign(again(a, b)))
	})
}

func TestCollator(t *testing.T) {
	t.Run("case insensitive english", func(t *testing.T) {
		c := Collator(language.English, collate.IgnoreCase)
		assert.Equal(t, 0, c("Dragon", "dragon"))
		assert.Less(t, c("apple", "Banana"), 0)
	})
	t.Run("numeric", func(t *testing.T) {
		c := Collator(language.English, collate.Numeric)
		names := []string{"level10", "level2", "level1"}
		slices.SortFunc(names, c)
		assert.Equal(t, []string{"level1", "level2", "level10"}, names)
	})
	t.Run("concurrent use", func(t *testing.T) {
		c := Collator(language.German)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					assert.Less(t, c("Äpfel", "Birnen"), 0)
				}
			}()
		}
		wg.Wait()
	})
}
