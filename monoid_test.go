// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/fold"
)

// checkMonoidLaws verifies identity and associativity on the given samples.
func checkMonoidLaws[A, M any](t *testing.T, m fold.Monoid[A, M], samples []A) {
	t.Helper()
	for _, a := range samples {
		x := m.Create(a)
		assert.Equal(t, x, m.Combine(m.Identity, x), "left identity")
		assert.Equal(t, x, m.Combine(x, m.Identity), "right identity")
		for _, b := range samples {
			for _, c := range samples {
				y, z := m.Create(b), m.Create(c)
				assert.Equal(t, m.Combine(m.Combine(x, y), z), m.Combine(x, m.Combine(y, z)), "associativity")
			}
		}
	}
}

func TestMonoidLaws(t *testing.T) {
	samples := []int{-3, 0, 4, 11}
	even := func(n int) bool { return n%2 == 0 }

	t.Run("sum", func(t *testing.T) { checkMonoidLaws(t, fold.SumMonoid[int](), samples) })
	t.Run("product", func(t *testing.T) { checkMonoidLaws(t, fold.ProductMonoid[int](), samples) })
	t.Run("max", func(t *testing.T) { checkMonoidLaws(t, fold.MaxMonoid[int](), samples) })
	t.Run("min", func(t *testing.T) { checkMonoidLaws(t, fold.MinMonoid[int](), samples) })
	t.Run("any", func(t *testing.T) { checkMonoidLaws(t, fold.AnyMonoid(even), samples) })
	t.Run("all", func(t *testing.T) { checkMonoidLaws(t, fold.AllMonoid(even), samples) })
	t.Run("slice", func(t *testing.T) { checkMonoidLaws(t, fold.SliceMonoid[int](), samples) })
}

func TestFoldMapWitnesses(t *testing.T) {
	xs := fold.Of(3, 1, 4, 1, 5)
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, 14, fold.FoldMap(fold.SumMonoid[int](), xs))
	assert.Equal(t, 60, fold.FoldMap(fold.ProductMonoid[int](), xs))
	assert.Equal(t, fold.Just(5), fold.FoldMap(fold.MaxMonoid[int](), xs))
	assert.Equal(t, fold.Just(1), fold.FoldMap(fold.MinMonoid[int](), xs))
	assert.True(t, fold.FoldMap(fold.AnyMonoid(even), xs))
	assert.False(t, fold.FoldMap(fold.AllMonoid(even), xs))
	assert.Equal(t, []int{3, 1, 4, 1, 5}, fold.FoldMap(fold.SliceMonoid[int](), xs))
}

func TestFoldMapCustomMonoid(t *testing.T) {
	// String concatenation is not commutative, so the order of Combine shows.
	concat := fold.Monoid[string, string]{
		Identity: "",
		Combine:  func(x, y string) string { return x + y },
		Create:   strings.ToUpper,
	}
	ops := fold.MustDerive[string](list[string]{arr: []string{"a", "b", "c"}})

	assert.Equal(t, "ABC", fold.FoldMap(concat, ops))
	assert.Equal(t, "", fold.FoldMap(concat, list[string]{}))
}
