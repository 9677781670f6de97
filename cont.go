// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Cont is a computation in continuation-passing style.
// Given the rest of the computation k, it produces the final answer R.
//
// Cont is the Monad witness of the package, and the continuation shape
// func(A) R is the accumulator used to derive left folds from a right fold.
type Cont[R, A any] func(k func(A) R) R

// Return passes a straight to the continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend builds a Cont from a raw CPS function.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Bind runs m and feeds its result to f.
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// Map transforms the result of m with a pure function.
// Equivalent to Bind(m, func(a A) Cont[R, B] { return Return[R](f(a)) })
// without the intermediate Return closure.
func Map[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// Then runs m, ignores its result and continues with n.
func Then[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(_ A) R {
			return n(k)
		})
	}
}

// identity is the final continuation of Run and the seed of derived left folds.
func identity[A any](a A) A { return a }

// Run executes m with the identity continuation.
func Run[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunWith executes m with the final continuation k.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}
