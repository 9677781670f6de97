// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

import "golang.org/x/exp/constraints"

// Ordered is an element type with a total order for Maximum and Minimum.
type Ordered = constraints.Ordered

// Number is an ordered element type closed under addition and multiplication.
type Number interface {
	constraints.Integer | constraints.Float
}
