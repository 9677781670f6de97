// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Seq is the built-in [Foldable] for plain slices.
// Besides Foldr it implements every optional operation with a direct
// index loop, so short-circuit folds return as soon as a step stops.
type Seq[A any] []A

// Of returns the elements as a Seq without copying.
func Of[A any](xs ...A) Seq[A] {
	return Seq[A](xs)
}

// Foldr folds from the last element to the first.
func (s Seq[A]) Foldr(f func(A, Erased) Erased, z Erased) Erased {
	for i := len(s) - 1; i >= 0; i-- {
		z = f(s[i], z)
	}
	return z
}

// Foldl folds from the first element to the last.
func (s Seq[A]) Foldl(f func(Erased, A) Erased, z Erased) Erased {
	for _, a := range s {
		z = f(z, a)
	}
	return z
}

// ShortFoldr folds from the right until a step stops.
func (s Seq[A]) ShortFoldr(f func(A, Erased) Outcome[Erased], z Erased) Erased {
	for i := len(s) - 1; i >= 0; i-- {
		v, stop := unwrapOutcome(f(s[i], z))
		if stop {
			return v
		}
		z = v
	}
	return z
}

// ShortFoldl folds from the left until a step stops.
func (s Seq[A]) ShortFoldl(f func(Erased, A) Outcome[Erased], z Erased) Erased {
	for _, a := range s {
		v, stop := unwrapOutcome(f(z, a))
		if stop {
			return v
		}
		z = v
	}
	return z
}

// Size returns len(s).
func (s Seq[A]) Size() int {
	return len(s)
}
