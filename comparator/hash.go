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
	"strings"

	"github.com/cespare/xxhash/v2"
)

const DefaultTieBreakSeed = uint64(9001)

// ThenByHash breaks ties of c by the seeded xxhash64 of each item's key and
// finally by the key itself. Items with distinct keys therefore never compare
// equal, and the resulting order is the same from run to run.
func ThenByHash[T any](c Func[T], key func(T) string, seed uint64) Func[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		ka, kb := key(a), key(b)
		ha, hb := keyHash(ka, seed), keyHash(kb, seed)
		if ha < hb {
			return -1
		}
		if ha > hb {
			return 1
		}
		return strings.Compare(ka, kb)
	}
}

func keyHash(key string, seed uint64) uint64 {
	h := xxhash.NewWithSeed(seed)
	_, _ = h.WriteString(key)
	return h.Sum64()
}
