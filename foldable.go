// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Erased is a type-erased accumulator.
// Methods cannot declare their own type parameters, so the method set of
// [Foldable] threads accumulators as Erased; the generic free functions
// recover the concrete type at the boundary.
type Erased = any

// Foldable is the capability of an ordered container of A.
// Foldr is the only required operation. For a container [a, b, c]:
//
//	Foldr(f, z) == f(a, f(b, f(c, z)))
//
// Every other operation of the package is either derived from Foldr
// or taken from one of the optional interfaces below when implemented.
type Foldable[A any] interface {
	Foldr(f func(A, Erased) Erased, z Erased) Erased
}

// FoldrFunc adapts an ordinary right fold function to [Foldable].
type FoldrFunc[A any] func(f func(A, Erased) Erased, z Erased) Erased

// Foldr calls fn(f, z).
func (fn FoldrFunc[A]) Foldr(f func(A, Erased) Erased, z Erased) Erased {
	return fn(f, z)
}

// Optional operations. A container implementing any of these is used
// directly instead of the derivation from Foldr. Implementations must agree
// with the derived results.

// LeftFolder is implemented by containers with a native left fold.
type LeftFolder[A any] interface {
	Foldl(f func(Erased, A) Erased, z Erased) Erased
}

// ShortRightFolder is implemented by containers that can stop a right fold early.
type ShortRightFolder[A any] interface {
	ShortFoldr(f func(A, Erased) Outcome[Erased], z Erased) Erased
}

// ShortLeftFolder is implemented by containers that can stop a left fold early.
type ShortLeftFolder[A any] interface {
	ShortFoldl(f func(Erased, A) Outcome[Erased], z Erased) Erased
}

// Sizer is implemented by containers that know their length.
type Sizer interface {
	Size() int
}

// unerase recovers a B from an erased accumulator.
// nil is read as the zero value of B, so interface-typed accumulators
// may start from nil.
func unerase[B any](v Erased) B {
	if v == nil {
		var zero B
		return zero
	}
	return v.(B)
}
