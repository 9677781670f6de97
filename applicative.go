// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Applicative lifting.
// A function of n plain arguments is lifted to n wrapped arguments;
// the result is present only when every argument is.

// LiftMaybe lifts a unary function over Maybe. It coincides with MapMaybe.
func LiftMaybe[T1, R any](f func(T1) R, m Maybe[T1]) Maybe[R] {
	return MapMaybe(m, f)
}

// LiftMaybe2 lifts a binary function over Maybe.
func LiftMaybe2[T1, T2, R any](f func(T1, T2) R, m1 Maybe[T1], m2 Maybe[T2]) Maybe[R] {
	if !m1.ok || !m2.ok {
		return Nothing[R]()
	}
	return Just(f(m1.value, m2.value))
}

// LiftMaybe3 lifts a ternary function over Maybe.
func LiftMaybe3[T1, T2, T3, R any](f func(T1, T2, T3) R, m1 Maybe[T1], m2 Maybe[T2], m3 Maybe[T3]) Maybe[R] {
	if !m1.ok || !m2.ok || !m3.ok {
		return Nothing[R]()
	}
	return Just(f(m1.value, m2.value, m3.value))
}

// LiftEither2 lifts a binary function over Either.
// The first Left encountered, scanning left to right, is the result.
func LiftEither2[E, T1, T2, R any](f func(T1, T2) R, e1 Either[E, T1], e2 Either[E, T2]) Either[E, R] {
	if !e1.isRight {
		return Left[E, R](e1.left)
	}
	if !e2.isRight {
		return Left[E, R](e2.left)
	}
	return Right[E](f(e1.right, e2.right))
}
