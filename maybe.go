// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Maybe is an optional value: either Just a value or Nothing.
// The zero Maybe is Nothing.
type Maybe[A any] struct {
	value A
	ok    bool
}

// Just wraps a present value.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{value: a, ok: true}
}

// Nothing returns the absent value.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// OfMaybe lifts a into Maybe. It is the applicative pure for Maybe.
func OfMaybe[A any](a A) Maybe[A] {
	return Just(a)
}

// IsJust reports whether m holds a value.
func (m Maybe[A]) IsJust() bool {
	return m.ok
}

// IsNothing reports whether m is empty.
func (m Maybe[A]) IsNothing() bool {
	return !m.ok
}

// Get returns the held value and true, or zero and false.
func (m Maybe[A]) Get() (A, bool) {
	return m.value, m.ok
}

// GetOr returns the held value or def.
func (m Maybe[A]) GetOr(def A) A {
	if m.ok {
		return m.value
	}
	return def
}

// MatchMaybe eliminates m by calling onNothing or onJust.
func MatchMaybe[A, K any](m Maybe[A], onNothing func() K, onJust func(A) K) K {
	if m.ok {
		return onJust(m.value)
	}
	return onNothing()
}

// MapMaybe applies f to a held value.
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if m.ok {
		return Just(f(m.value))
	}
	return Nothing[B]()
}

// MapTo replaces a held value with b. Nothing stays Nothing.
func MapTo[A, B any](m Maybe[A], b B) Maybe[B] {
	if m.ok {
		return Just(b)
	}
	return Nothing[B]()
}

// ChainMaybe is monadic bind for Maybe.
func ChainMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if m.ok {
		return f(m.value)
	}
	return Nothing[B]()
}

// FlattenMaybe removes one level of nesting.
func FlattenMaybe[A any](mm Maybe[Maybe[A]]) Maybe[A] {
	if mm.ok {
		return mm.value
	}
	return Nothing[A]()
}
