// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

import "errors"

var (
	// ErrMissingPrimitive matches every [MissingPrimitiveError].
	ErrMissingPrimitive = errors.New("fold: missing Foldr primitive")

	// ErrEmptyContainer matches every [EmptyContainerError].
	ErrEmptyContainer = errors.New("fold: empty container")
)

// MissingPrimitiveError is returned when operations are derived for a
// type that does not implement Foldr. It is a programming error and is
// reported at registration, never during a traversal.
type MissingPrimitiveError struct {
	Type string // container type
	Elem string // element type
}

func (e *MissingPrimitiveError) Error() string {
	return "fold: " + e.Type + " does not implement Foldr over " + e.Elem
}

func (e *MissingPrimitiveError) Is(target error) bool {
	return target == ErrMissingPrimitive
}

// EmptyContainerError is returned by Maximum and Minimum on an empty
// container, which has no extremum.
type EmptyContainerError struct {
	Op string
}

func (e *EmptyContainerError) Error() string {
	return "fold: " + e.Op + " of empty container"
}

func (e *EmptyContainerError) Is(target error) bool {
	return target == ErrEmptyContainer
}
