// Copyright 2025 Desfoga
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package seed provides the deterministic hashing primitive that drives the
// affinity engine's score derivation and template selection. It is the leaf
// of the core dependency graph: everything that needs a reproducible
// pseudo-random value derives it from Hash.
//
// The function is a polynomial rolling hash over the UTF-16 code units of the
// input, accumulated in a 32-bit signed integer with wrap-around semantics.
// The fixed width matters: the same input must produce the same value on
// every platform and every run, so the accumulator must overflow identically
// everywhere. Collisions are acceptable; the output is a seed for indexing
// into fixed content pools, not a content address.
package seed

import "unicode/utf16"

// The absolute value of the minimum accumulator is 1<<31, which does not
// fit a 32-bit int. This constant fails to compile on 32-bit platforms, so
// Hash's non-negative contract cannot silently truncate there.
const _ = uint(1) << 32

// Hash computes the deterministic seed for a string.
//
// The accumulator starts at zero and folds in each UTF-16 code unit in order
// as acc = acc*31 + unit, with the multiplication and addition wrapping in
// int32 space. The result is the absolute value of the final accumulator,
// widened to int64 before negation so that the minimum int32 value does not
// overflow when negated.
//
// Inputs:
//   - text: The string to hash. May be empty.
//
// Outputs:
//   - int: A non-negative seed. Hash("") == 0, and a single-character input
//     yields that character's code unit value.
func Hash(text string) int {
	var acc int32
	for _, unit := range utf16.Encode([]rune(text)) {
		// acc*31 is the (acc<<5)-acc folding step; int32 arithmetic in Go
		// wraps on overflow, which is exactly the behavior the seed contract
		// depends on.
		acc = acc*31 + int32(unit)
	}
	v := int64(acc)
	if v < 0 {
		v = -v
	}
	return int(v)
}
