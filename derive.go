// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Table is the operation set of a registered container type.
// Each field takes the container as its first argument. Fields are either
// the container's own optional implementation or the derivation from Foldr.
// A Table is built once per type by [Register] and never mutated.
type Table[A any] struct {
	Foldr      func(t Foldable[A], f func(A, Erased) Erased, z Erased) Erased
	Foldl      func(t Foldable[A], f func(Erased, A) Erased, z Erased) Erased
	ShortFoldr func(t Foldable[A], f func(A, Erased) Outcome[Erased], z Erased) Erased
	ShortFoldl func(t Foldable[A], f func(Erased, A) Outcome[Erased], z Erased) Erased
	Size       func(t Foldable[A]) int
}

// derivedTable returns the table of pure derivations from Foldr.
func derivedTable[A any]() *Table[A] {
	return &Table[A]{
		Foldr:      callFoldr[A],
		Foldl:      deriveFoldl[A],
		ShortFoldr: deriveShortFoldr[A],
		ShortFoldl: deriveShortFoldl[A],
		Size:       deriveSize[A],
	}
}

func callFoldr[A any](t Foldable[A], f func(A, Erased) Erased, z Erased) Erased {
	return t.Foldr(f, z)
}

// deriveFoldl runs Foldr with a continuation as the accumulator.
// Elements are visited right to left, each wrapping the continuation built
// so far, so the resulting chain applies f left to right when run on z:
//
//	k_c = x => f(x, c)
//	k_b = x => k_c(f(x, b))
//	k_a = x => k_b(f(x, a))    k_a(z) == f(f(f(z, a), b), c)
func deriveFoldl[A any](t Foldable[A], f func(Erased, A) Erased, z Erased) Erased {
	chain := t.Foldr(func(a A, acc Erased) Erased {
		next := acc.(func(Erased) Erased)
		return func(b Erased) Erased {
			return next(f(b, a))
		}
	}, identity[Erased])
	return RunWith(Return[Erased](z), chain.(func(Erased) Erased))
}

// deriveShortFoldl is deriveFoldl where a stopping step returns without
// invoking the rest of the chain, so no later element reaches f.
func deriveShortFoldl[A any](t Foldable[A], f func(Erased, A) Outcome[Erased], z Erased) Erased {
	chain := t.Foldr(func(a A, acc Erased) Erased {
		next := acc.(func(Erased) Erased)
		return func(b Erased) Erased {
			v, stop := unwrapOutcome(f(b, a))
			if stop {
				return v
			}
			return next(v)
		}
	}, identity[Erased])
	return RunWith(Return[Erased](z), chain.(func(Erased) Erased))
}

// shortState is the accumulator of deriveShortFoldr.
type shortState struct {
	value Erased
	done  bool
}

// deriveShortFoldr threads a stop flag through Foldr. Foldr owns the loop,
// so the remaining elements are still visited, but f is never called again
// once a step has stopped.
func deriveShortFoldr[A any](t Foldable[A], f func(A, Erased) Outcome[Erased], z Erased) Erased {
	r := t.Foldr(func(a A, acc Erased) Erased {
		s := acc.(shortState)
		if s.done {
			return s
		}
		v, stop := unwrapOutcome(f(a, s.value))
		return shortState{value: v, done: stop}
	}, shortState{value: z})
	return r.(shortState).value
}

func deriveSize[A any](t Foldable[A]) int {
	return t.Foldr(func(_ A, n Erased) Erased {
		return n.(int) + 1
	}, 0).(int)
}

// Ops binds a registered [Table] to one container value.
// It implements [Foldable] and all optional operations, so every free
// function of the package dispatches to it. The zero Ops is not usable.
type Ops[A any] struct {
	self  Foldable[A]
	table *Table[A]
}

// Foldr runs the container's right fold.
func (o Ops[A]) Foldr(f func(A, Erased) Erased, z Erased) Erased {
	return o.table.Foldr(o.self, f, z)
}

// Foldl runs the left fold.
func (o Ops[A]) Foldl(f func(Erased, A) Erased, z Erased) Erased {
	return o.table.Foldl(o.self, f, z)
}

// ShortFoldr runs a right fold that f may stop with [Stop].
func (o Ops[A]) ShortFoldr(f func(A, Erased) Outcome[Erased], z Erased) Erased {
	return o.table.ShortFoldr(o.self, f, z)
}

// ShortFoldl runs a left fold that f may stop with [Stop].
func (o Ops[A]) ShortFoldl(f func(Erased, A) Outcome[Erased], z Erased) Erased {
	return o.table.ShortFoldl(o.self, f, z)
}

// Size returns the number of elements.
func (o Ops[A]) Size() int {
	return o.table.Size(o.self)
}

// Table returns the shared table of the container's type.
func (o Ops[A]) Table() *Table[A] {
	return o.table
}

// Unwrap returns the container the operations are bound to.
func (o Ops[A]) Unwrap() Foldable[A] {
	return o.self
}

// NumericOps extends [Ops] with the aggregates of ordered, summable elements.
type NumericOps[A Number] struct {
	Ops[A]
}

// Maximum returns the largest element, or an [EmptyContainerError].
func (o NumericOps[A]) Maximum() (A, error) {
	return deriveMaximum[A](o.Ops)
}

// Minimum returns the smallest element, or an [EmptyContainerError].
func (o NumericOps[A]) Minimum() (A, error) {
	return deriveMinimum[A](o.Ops)
}

// Sum returns the sum of the elements; 0 when empty.
func (o NumericOps[A]) Sum() A {
	return deriveSum[A](o.Ops)
}

func deriveMaximum[A Ordered](t Foldable[A]) (A, error) {
	if v, ok := FoldMap(MaxMonoid[A](), t).Get(); ok {
		return v, nil
	}
	var zero A
	return zero, &EmptyContainerError{Op: "Maximum"}
}

func deriveMinimum[A Ordered](t Foldable[A]) (A, error) {
	if v, ok := FoldMap(MinMonoid[A](), t).Get(); ok {
		return v, nil
	}
	var zero A
	return zero, &EmptyContainerError{Op: "Minimum"}
}

func deriveSum[A Number](t Foldable[A]) A {
	return Foldr(func(a, b A) A { return a + b }, 0, t)
}
