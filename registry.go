// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

import (
	"reflect"
	"sync"
)

// registryKey identifies a container type folded at one element type.
type registryKey struct {
	container reflect.Type
	elem      reflect.Type
}

// registry maps registryKey to *Table[A]. Entries live for the process
// lifetime and are never replaced; LoadOrStore picks a single winner when
// the same type is registered concurrently.
var registry sync.Map

// Register derives the operation table of container type T with element type A.
// T must implement Foldable[A], otherwise a [*MissingPrimitiveError] is
// returned. Optional operations implemented by T ([LeftFolder],
// [ShortRightFolder], [ShortLeftFolder], [Sizer]) are used as is; the rest
// are derived from Foldr.
//
// Register is idempotent: every call for the same T and A returns the same
// *Table.
func Register[T, A any]() (*Table[A], error) {
	return register[A](reflect.TypeFor[T]())
}

// Registered reports whether T has been registered with element type A.
func Registered[T, A any]() bool {
	_, ok := registry.Load(registryKey{reflect.TypeFor[T](), reflect.TypeFor[A]()})
	return ok
}

func register[A any](typ reflect.Type) (*Table[A], error) {
	elem := reflect.TypeFor[A]()
	key := registryKey{container: typ, elem: elem}
	if v, ok := registry.Load(key); ok {
		return v.(*Table[A]), nil
	}
	if typ == nil || !typ.Implements(reflect.TypeFor[Foldable[A]]()) {
		return nil, &MissingPrimitiveError{Type: typeName(typ), Elem: elem.String()}
	}
	v, _ := registry.LoadOrStore(key, buildTable[A](typ))
	return v.(*Table[A]), nil
}

// buildTable starts from the derived table and replaces each entry whose
// operation typ implements itself.
func buildTable[A any](typ reflect.Type) *Table[A] {
	t := derivedTable[A]()
	if typ.Implements(reflect.TypeFor[LeftFolder[A]]()) {
		t.Foldl = func(c Foldable[A], f func(Erased, A) Erased, z Erased) Erased {
			return c.(LeftFolder[A]).Foldl(f, z)
		}
	}
	if typ.Implements(reflect.TypeFor[ShortRightFolder[A]]()) {
		t.ShortFoldr = func(c Foldable[A], f func(A, Erased) Outcome[Erased], z Erased) Erased {
			return c.(ShortRightFolder[A]).ShortFoldr(f, z)
		}
	}
	if typ.Implements(reflect.TypeFor[ShortLeftFolder[A]]()) {
		t.ShortFoldl = func(c Foldable[A], f func(Erased, A) Outcome[Erased], z Erased) Erased {
			return c.(ShortLeftFolder[A]).ShortFoldl(f, z)
		}
	}
	if typ.Implements(reflect.TypeFor[Sizer]()) {
		t.Size = func(c Foldable[A]) int {
			return c.(Sizer).Size()
		}
	}
	return t
}

func typeName(typ reflect.Type) string {
	if typ == nil {
		return "<nil>"
	}
	return typ.String()
}

// Derive registers the dynamic type of v and binds its table to v.
// It fails with a [*MissingPrimitiveError] when v is nil or has no Foldr
// over A.
func Derive[A any](v any) (Ops[A], error) {
	table, err := register[A](reflect.TypeOf(v))
	if err != nil {
		return Ops[A]{}, err
	}
	return Ops[A]{self: v.(Foldable[A]), table: table}, nil
}

// DeriveFunc derives the operation set of a bare right fold.
func DeriveFunc[A any](foldr FoldrFunc[A]) (Ops[A], error) {
	if foldr == nil {
		return Ops[A]{}, &MissingPrimitiveError{
			Type: typeName(reflect.TypeFor[FoldrFunc[A]]()),
			Elem: reflect.TypeFor[A]().String(),
		}
	}
	return Derive[A](foldr)
}

// MustDerive is like [Derive] but panics on error.
// It suits package-level variables and constructors of container types.
func MustDerive[A any](v any) Ops[A] {
	o, err := Derive[A](v)
	if err != nil {
		panic(err)
	}
	return o
}

// DeriveNumeric is [Derive] for numeric elements, adding Maximum, Minimum
// and Sum to the operation set.
func DeriveNumeric[A Number](v any) (NumericOps[A], error) {
	o, err := Derive[A](v)
	if err != nil {
		return NumericOps[A]{}, err
	}
	return NumericOps[A]{Ops: o}, nil
}
