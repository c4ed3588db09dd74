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
	"errors"
	"fmt"

	"github.com/biffbaff64/LibGDXSharp-sub001/comparator"
)

// ErrInvalidArgument is wrapped by every validation failure. It signals a
// bug at the call site and is never worth retrying.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func checkArgs[T any](items []T, comp comparator.Func[T], k int, size int) error {
	if comp == nil {
		return invalidArgument("comparator must not be nil")
	}
	if size <= 0 {
		return invalidArgument("cannot select from empty range (size %d)", size)
	}
	if size > len(items) {
		return invalidArgument("size %d exceeds number of items %d", size, len(items))
	}
	if k < 1 || k > size {
		return invalidArgument("k must be >= 1 and <= size %d: %d", size, k)
	}
	return nil
}

func checkNormalizedRankBounds(rank float64) error {
	if !(rank >= 0 && rank <= 1) {
		return invalidArgument("rank must be between 0 and 1 inclusive: %v", rank)
	}
	return nil
}
