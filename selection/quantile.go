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

import "math"

const tailRoundingFactor = 1e7

func getNaturalRank(normalizedRank float64, totalN int, inclusive bool) int {
	naturalRank := normalizedRank * float64(totalN)
	if totalN <= tailRoundingFactor {
		naturalRank = math.Round(naturalRank*tailRoundingFactor) / tailRoundingFactor
	}
	if inclusive {
		return int(math.Ceil(naturalRank))
	}
	return int(math.Floor(naturalRank))
}

// quantileRank maps a normalized rank onto the 1-based rank to select among n
// items.
func quantileRank(normalizedRank float64, n int, inclusive bool) int {
	naturalRank := getNaturalRank(normalizedRank, n, inclusive)
	if inclusive {
		return max(naturalRank, 1)
	}
	return min(naturalRank+1, n)
}
