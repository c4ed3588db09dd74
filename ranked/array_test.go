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
	"testing"

	"github.com/biffbaff64/LibGDXSharp-sub001/comparator"
	"github.com/biffbaff64/LibGDXSharp-sub001/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayBasics(t *testing.T) {
	a := NewArray[int](2)
	assert.True(t, a.IsEmpty())

	a.Add(9, 3, 7)
	a.Add(1)
	assert.Equal(t, 4, a.Size())
	assert.Equal(t, []int{9, 3, 7, 1}, a.Items())

	v, err := a.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	require.NoError(t, a.Set(2, 8))
	v, _ = a.Get(2)
	assert.Equal(t, 8, v)

	removed, err := a.RemoveIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 9, removed)
	assert.Equal(t, []int{3, 8, 1}, a.Items())

	_, err = a.Get(3)
	assert.Error(t, err)
	_, err = a.RemoveIndex(-1)
	assert.Error(t, err)
	assert.Error(t, a.Set(5, 0))

	b := NewArray[int](0)
	b.Add(100)
	b.AddAll(a)
	assert.Equal(t, []int{100, 3, 8, 1}, b.Items())

	a.Sort(comparator.Natural[int]())
	assert.Equal(t, []int{1, 3, 8}, a.Items())

	a.Clear()
	assert.True(t, a.IsEmpty())
	assert.Empty(t, a.Items())
}

func TestArraySelectRanked(t *testing.T) {
	a := NewArray[int](32)
	a.Add(9, 3, 7, 1, 5)

	testCases := []struct {
		k        int
		expected int
	}{
		{k: 1, expected: 1},
		{k: 3, expected: 5},
		{k: 5, expected: 9},
	}
	for _, tc := range testCases {
		v, err := a.SelectRanked(comparator.Natural[int](), tc.k)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, v)

		idx, err := a.SelectRankedIndex(comparator.Natural[int](), tc.k)
		require.NoError(t, err)
		got, _ := a.Get(idx)
		assert.Equal(t, tc.expected, got)
	}

	_, err := a.SelectRanked(comparator.Natural[int](), 6)
	assert.ErrorIs(t, err, selection.ErrInvalidArgument)
	_, err = a.SelectRanked(comparator.Natural[int](), 0)
	assert.ErrorIs(t, err, selection.ErrInvalidArgument)

	empty := NewArray[int](4)
	_, err = empty.SelectRanked(comparator.Natural[int](), 1)
	assert.ErrorIs(t, err, selection.ErrInvalidArgument)
}

func TestArraySelectRankedIgnoresSpareCapacity(t *testing.T) {
	a := NewArray[int](8)
	a.Add(1, 2, 3, 4, 5, 6, 7, 8)
	_, err := a.RemoveIndex(7)
	require.NoError(t, err)
	_, err = a.RemoveIndex(6)
	require.NoError(t, err)

	// spare slots hold zero values that would win a min query if scanned
	v, err := a.SelectRanked(comparator.Natural[int](), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{0, 0}, a.items[a.size:])
}
