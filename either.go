// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Either holds exactly one of a Left value or a Right value.
// By convention Left is the failure or stopping side and Right the
// success or continuing side.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight reports whether e holds a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft reports whether e holds a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither eliminates e by calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies f to a Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies f to a Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// Outcome is the step result of a short-circuit fold.
// A Left outcome terminates the fold with its value;
// a Right outcome continues with its value as the new accumulator.
type Outcome[B any] = Either[B, B]

// Stop ends a short-circuit fold with result b.
func Stop[B any](b B) Outcome[B] {
	return Left[B, B](b)
}

// Continue carries accumulator b into the next step of a short-circuit fold.
func Continue[B any](b B) Outcome[B] {
	return Right[B](b)
}

// eraseOutcome widens a typed outcome to the erased form used by the
// Foldable method set.
func eraseOutcome[B any](o Outcome[B]) Outcome[Erased] {
	if o.isRight {
		return Right[Erased](Erased(o.right))
	}
	return Left[Erased, Erased](Erased(o.left))
}

// unwrapOutcome returns the carried value and whether the fold must stop.
func unwrapOutcome[B any](o Outcome[B]) (B, bool) {
	if o.isRight {
		return o.right, false
	}
	return o.left, true
}
