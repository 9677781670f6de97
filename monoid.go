// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Monoid is a monoid witness over M together with the lift from A.
//
// Laws, for all x, y, z of M:
//
//	Combine(Identity, x) == x == Combine(x, Identity)
//	Combine(Combine(x, y), z) == Combine(x, Combine(y, z))
//
// A Monoid is a value; copies share nothing mutable.
type Monoid[A, M any] struct {
	Identity M
	Combine  func(x, y M) M
	Create   func(a A) M
}

// SumMonoid is addition with identity 0.
func SumMonoid[A Number]() Monoid[A, A] {
	return Monoid[A, A]{
		Identity: 0,
		Combine:  func(x, y A) A { return x + y },
		Create:   identity[A],
	}
}

// ProductMonoid is multiplication with identity 1.
func ProductMonoid[A Number]() Monoid[A, A] {
	return Monoid[A, A]{
		Identity: 1,
		Combine:  func(x, y A) A { return x * y },
		Create:   identity[A],
	}
}

// MaxMonoid keeps the larger value. Nothing is the identity, so an empty
// container folds to Nothing instead of an arbitrary bound.
func MaxMonoid[A Ordered]() Monoid[A, Maybe[A]] {
	return Monoid[A, Maybe[A]]{
		Identity: Nothing[A](),
		Combine: func(x, y Maybe[A]) Maybe[A] {
			return pick(x, y, func(a, b A) bool { return a >= b })
		},
		Create: Just[A],
	}
}

// MinMonoid keeps the smaller value, with Nothing as the identity.
func MinMonoid[A Ordered]() Monoid[A, Maybe[A]] {
	return Monoid[A, Maybe[A]]{
		Identity: Nothing[A](),
		Combine: func(x, y Maybe[A]) Maybe[A] {
			return pick(x, y, func(a, b A) bool { return a <= b })
		},
		Create: Just[A],
	}
}

// pick returns x when keep(x, y) holds or y is Nothing, and y otherwise.
func pick[A any](x, y Maybe[A], keep func(a, b A) bool) Maybe[A] {
	if !x.ok {
		return y
	}
	if !y.ok || keep(x.value, y.value) {
		return x
	}
	return y
}

// AnyMonoid is disjunction of pred over the elements.
func AnyMonoid[A any](pred func(A) bool) Monoid[A, bool] {
	return Monoid[A, bool]{
		Identity: false,
		Combine:  func(x, y bool) bool { return x || y },
		Create:   pred,
	}
}

// AllMonoid is conjunction of pred over the elements.
func AllMonoid[A any](pred func(A) bool) Monoid[A, bool] {
	return Monoid[A, bool]{
		Identity: true,
		Combine:  func(x, y bool) bool { return x && y },
		Create:   pred,
	}
}

// SliceMonoid is concatenation, the free monoid over A.
func SliceMonoid[A any]() Monoid[A, []A] {
	return Monoid[A, []A]{
		Identity: []A{},
		Combine: func(x, y []A) []A {
			out := make([]A, 0, len(x)+len(y))
			return append(append(out, x...), y...)
		},
		Create: func(a A) []A { return []A{a} },
	}
}
