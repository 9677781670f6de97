// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Generic algorithms over any Foldable.
//
// Each function uses the container's own implementation of an operation
// when it has one (a Seq, an Ops, or a user type implementing one of the
// optional interfaces) and the derivation from Foldr otherwise, so the
// result never depends on which path was taken.

// Foldr folds t from the right: Foldr(f, z, [a, b, c]) == f(a, f(b, f(c, z))).
func Foldr[A, B any](f func(A, B) B, z B, t Foldable[A]) B {
	return unerase[B](t.Foldr(func(a A, acc Erased) Erased {
		return f(a, unerase[B](acc))
	}, z))
}

// Foldl folds t from the left: Foldl(f, z, [a, b, c]) == f(f(f(z, a), b), c).
func Foldl[A, B any](f func(B, A) B, z B, t Foldable[A]) B {
	step := func(acc Erased, a A) Erased {
		return f(unerase[B](acc), a)
	}
	if lf, ok := t.(LeftFolder[A]); ok {
		return unerase[B](lf.Foldl(step, z))
	}
	return unerase[B](deriveFoldl(t, step, z))
}

// ShortFoldr folds t from the right until f returns [Stop].
// The stopped value is the result and f is not called on any element to
// its left. If f always continues, ShortFoldr equals Foldr.
func ShortFoldr[A, B any](f func(A, B) Outcome[B], z B, t Foldable[A]) B {
	step := func(a A, acc Erased) Outcome[Erased] {
		return eraseOutcome(f(a, unerase[B](acc)))
	}
	if sf, ok := t.(ShortRightFolder[A]); ok {
		return unerase[B](sf.ShortFoldr(step, z))
	}
	return unerase[B](deriveShortFoldr(t, step, z))
}

// ShortFoldl folds t from the left until f returns [Stop].
// If f always continues, ShortFoldl equals Foldl.
func ShortFoldl[A, B any](f func(B, A) Outcome[B], z B, t Foldable[A]) B {
	step := func(acc Erased, a A) Outcome[Erased] {
		return eraseOutcome(f(unerase[B](acc), a))
	}
	if sf, ok := t.(ShortLeftFolder[A]); ok {
		return unerase[B](sf.ShortFoldl(step, z))
	}
	return unerase[B](deriveShortFoldl(t, step, z))
}

// Size returns the number of elements of t.
func Size[A any](t Foldable[A]) int {
	if s, ok := t.(Sizer); ok {
		return s.Size()
	}
	return deriveSize(t)
}

// Maximum returns the largest element of t.
// An empty t yields an [*EmptyContainerError].
func Maximum[A Ordered](t Foldable[A]) (A, error) {
	if m, ok := t.(interface{ Maximum() (A, error) }); ok {
		return m.Maximum()
	}
	return deriveMaximum(t)
}

// Minimum returns the smallest element of t.
// An empty t yields an [*EmptyContainerError].
func Minimum[A Ordered](t Foldable[A]) (A, error) {
	if m, ok := t.(interface{ Minimum() (A, error) }); ok {
		return m.Minimum()
	}
	return deriveMinimum(t)
}

// Sum adds the elements of t; the sum of an empty t is 0.
func Sum[A Number](t Foldable[A]) A {
	if s, ok := t.(interface{ Sum() A }); ok {
		return s.Sum()
	}
	return deriveSum(t)
}

// Product multiplies the elements of t; the product of an empty t is 1.
func Product[A Number](t Foldable[A]) A {
	return FoldMap(ProductMonoid[A](), t)
}

// FoldMap maps every element through m.Create and combines the results
// with m.Combine, starting from m.Identity. An empty t yields m.Identity.
func FoldMap[A, M any](m Monoid[A, M], t Foldable[A]) M {
	return Foldr(func(a A, acc M) M {
		return m.Combine(m.Create(a), acc)
	}, m.Identity, t)
}

// Find returns the leftmost element satisfying pred, or Nothing.
// pred is not evaluated on elements after the first match.
func Find[A any](pred func(A) bool, t Foldable[A]) Maybe[A] {
	return ShortFoldl(func(acc Maybe[A], a A) Outcome[Maybe[A]] {
		if pred(a) {
			return Stop(Just(a))
		}
		return Continue(acc)
	}, Nothing[A](), t)
}

// FindLast returns the rightmost element satisfying pred, or Nothing.
// pred is not evaluated on elements before the last match.
func FindLast[A any](pred func(A) bool, t Foldable[A]) Maybe[A] {
	return ShortFoldr(func(a A, acc Maybe[A]) Outcome[Maybe[A]] {
		if pred(a) {
			return Stop(Just(a))
		}
		return Continue(acc)
	}, Nothing[A](), t)
}

// Any reports whether some element satisfies pred, stopping at the first.
func Any[A any](pred func(A) bool, t Foldable[A]) bool {
	return ShortFoldl(func(acc bool, a A) Outcome[bool] {
		if pred(a) {
			return Stop(true)
		}
		return Continue(acc)
	}, false, t)
}

// All reports whether every element satisfies pred, stopping at the first
// that does not. All of an empty t is true.
func All[A any](pred func(A) bool, t Foldable[A]) bool {
	return ShortFoldl(func(acc bool, a A) Outcome[bool] {
		if !pred(a) {
			return Stop(false)
		}
		return Continue(acc)
	}, true, t)
}

// Contains reports whether x is an element of t.
func Contains[A comparable](x A, t Foldable[A]) bool {
	return Any(func(a A) bool { return a == x }, t)
}

// IsEmpty reports whether t has no elements. It looks at one element at most.
func IsEmpty[A any](t Foldable[A]) bool {
	return !Any(func(A) bool { return true }, t)
}

// ToSlice returns the elements of t in order.
// A [Seq] is returned as its underlying slice, not a copy.
func ToSlice[A any](t Foldable[A]) []A {
	if s, ok := t.(Seq[A]); ok {
		return []A(s)
	}
	return Foldl(func(out []A, a A) []A {
		return append(out, a)
	}, make([]A, 0), t)
}
