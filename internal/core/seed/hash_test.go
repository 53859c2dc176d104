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

// Package seed_test verifies the determinism, fixed-width arithmetic, and
// distribution behavior of the hashing primitive. These properties are the
// foundation of the whole recommendation feature: if Hash drifts between
// runs or platforms, every derived score and template selection drifts
// with it.
package seed_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiazg46-design/Festival-app/internal/core/seed"
)

// TestHashEmptyString verifies the documented base case: an empty input
// never touches the accumulator and therefore hashes to zero.
func TestHashEmptyString(t *testing.T) {
	assert.Equal(t, 0, seed.Hash(""))
}

// TestHashSingleCharacter verifies that a one-character input yields that
// character's UTF-16 code unit value. With a zero accumulator, the single
// folding step reduces to 0*31 + unit.
func TestHashSingleCharacter(t *testing.T) {
	assert.Equal(t, int('a'), seed.Hash("a"))
	assert.Equal(t, int('Z'), seed.Hash("Z"))
	assert.Equal(t, int('ñ'), seed.Hash("ñ"))
}

// TestHashPolynomialExpansion checks the rolling-hash arithmetic against a
// hand-expanded polynomial for a short string:
// hash("abc") == 'a'*31^2 + 'b'*31 + 'c'.
func TestHashPolynomialExpansion(t *testing.T) {
	expected := int('a')*31*31 + int('b')*31 + int('c')
	assert.Equal(t, expected, seed.Hash("abc"))
}

// TestHashDeterminism verifies that repeated calls with identical input
// produce identical output, including for inputs long enough to force the
// 32-bit accumulator through many wrap-arounds.
func TestHashDeterminism(t *testing.T) {
	inputs := []string{
		"https://youtube.com/watch?v=dQw4w9WgXcQ",
		"a longer piece of text that will certainly overflow the accumulator several times over",
		"MODO SILENCIO",
		"日本語のタイトル",
	}
	for _, in := range inputs {
		first := seed.Hash(in)
		second := seed.Hash(in)
		assert.Equal(t, first, second, "hash must be stable for %q", in)
		assert.GreaterOrEqual(t, first, 0, "hash must be non-negative for %q", in)
	}
}

// TestHashOverflowWraps pins the wrap-around behavior with a long input.
// The exact value is not important; what matters is that the accumulator
// wraps instead of saturating, so the result stays inside the 32-bit
// signed magnitude range and is reproducible.
func TestHashOverflowWraps(t *testing.T) {
	long := ""
	for i := 0; i < 256; i++ {
		long += "overflow"
	}
	v := seed.Hash(long)
	assert.GreaterOrEqual(t, v, 0)
	// |int32 min| is the largest magnitude the absolute value can take.
	assert.LessOrEqual(t, v, 1<<31)
	assert.Equal(t, v, seed.Hash(long))
}

// TestHashMinimumAccumulator exercises the one input class where the
// absolute value exceeds the int32 range: an accumulator of exactly the
// int32 minimum negates to 1<<31. The input below lands on that
// accumulator, so this pins both the widening-before-negation step and the
// 64-bit int requirement.
func TestHashMinimumAccumulator(t *testing.T) {
	v := seed.Hash("ntq6129yl")
	assert.Equal(t, 1<<31, v)
	assert.GreaterOrEqual(t, v, 0)
}

// TestHashDistributionSanity samples a set of distinct short inputs and
// checks that collisions are rare. This is not a strict invariant of the
// primitive, which is a seed rather than a content address, but the selection logic
// built on top of it only looks varied if most inputs land on distinct
// values.
func TestHashDistributionSanity(t *testing.T) {
	spread := make(map[int]bool)
	const samples = 40
	for i := 0; i < samples; i++ {
		spread[seed.Hash(fmt.Sprintf("https://example.com/videos/%d", i))] = true
	}
	// Allow a couple of collisions before calling the distribution degenerate.
	assert.GreaterOrEqual(t, len(spread), samples-2)
}
