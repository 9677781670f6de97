// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fold provides the Foldable capability and the operations derived
// from it, together with the small algebra it rests on: Maybe, Either,
// Monoid and the continuation monad.
//
// A container becomes foldable by implementing one method, a right fold:
//
//	type Foldable[A any] interface {
//		Foldr(f func(A, Erased) Erased, z Erased) Erased
//	}
//
// Everything else is derived from Foldr or taken from the container when it
// implements the operation itself.
//
// # Fold Direction
//
// For a container [a, b, c]:
//
//	Foldr(f, z) == f(a, f(b, f(c, z)))
//	Foldl(f, z) == f(f(f(z, a), b), c)
//
// The left fold is derived without a second primitive: Foldr builds a chain
// of continuations right to left, and the chain is run on z left to right.
//
// # Derivation
//
// Go has no decorators and no default methods, so derivation is an explicit
// registration step:
//
//   - [Register]: Build (once per type) the [Table] of operations of a container type
//   - [Derive]: Register the dynamic type of a value and bind the table to it as [Ops]
//   - [DeriveFunc]: Derive from a bare [FoldrFunc]
//   - [DeriveNumeric]: Derive [NumericOps], adding Maximum, Minimum and Sum
//   - [MustDerive]: Derive or panic
//
// A type without Foldr is rejected with [*MissingPrimitiveError] at
// registration. Registration is idempotent and safe for concurrent use.
//
// Optional operations a container may implement to replace the derived ones:
//
//   - [LeftFolder]: Foldl
//   - [ShortRightFolder]: ShortFoldr
//   - [ShortLeftFolder]: ShortFoldl
//   - [Sizer]: Size
//
// # Short-Circuit Folds
//
// [ShortFoldr] and [ShortFoldl] take a step function returning an [Outcome]:
// [Continue] carries the accumulator on, [Stop] ends the fold with a result.
// The step function is never called after a Stop.
//
//	n := fold.ShortFoldl(func(acc, x int) fold.Outcome[int] {
//		if x == 2 {
//			return fold.Stop(acc)
//		}
//		return fold.Continue(acc + x)
//	}, 0, fold.Of(4, 4, 2, 3, 3))
//	// n == 8
//
// # Generic Algorithms
//
// Free functions accept any [Foldable]; a plain slice takes part as [Seq]:
//
//   - [Foldr], [Foldl], [ShortFoldr], [ShortFoldl]: Folds with typed accumulators
//   - [Size], [IsEmpty]: Length
//   - [Maximum], [Minimum]: Extrema (fail with [*EmptyContainerError] when empty)
//   - [Sum], [Product]: Arithmetic aggregates (0 and 1 when empty)
//   - [FoldMap]: Map into a [Monoid] and combine
//   - [Find], [FindLast]: First and last match as [Maybe]
//   - [Any], [All], [Contains]: Short-circuiting predicates
//   - [ToSlice]: Materialize in order ([Seq] is returned as is)
//
// # Monoids
//
// [Monoid] is a record of identity, combine and the lift from elements.
// Witnesses: [SumMonoid], [ProductMonoid], [MaxMonoid], [MinMonoid],
// [AnyMonoid], [AllMonoid], [SliceMonoid].
//
// # Maybe, Either and Applicative
//
//   - [Maybe]: [Just], [Nothing], [MatchMaybe], [MapMaybe], [MapTo], [ChainMaybe], [FlattenMaybe]
//   - [Either]: [Left], [Right], [MatchEither], [MapEither], [FlatMapEither], [MapLeftEither]
//   - Applicative lift: [LiftMaybe], [LiftMaybe2], [LiftMaybe3], [LiftEither2]
//
// # Continuations
//
// [Cont] is the continuation monad: [Return], [Bind], [Map], [Then],
// [Suspend], [Run], [RunWith]. Derived left folds are continuation chains
// run with RunWith.
//
// # Example
//
//	type List[A any] struct{ items []A }
//
//	func (l List[A]) Foldr(f func(A, fold.Erased) fold.Erased, z fold.Erased) fold.Erased {
//		for i := len(l.items) - 1; i >= 0; i-- {
//			z = f(l.items[i], z)
//		}
//		return z
//	}
//
//	ops := fold.MustDerive[int](List[int]{items: []int{16, 12, 9, 6, 3}})
//	d := fold.Foldl(func(acc, n int) int { return acc - n }, 1, ops)
//	// d == -45
package fold
