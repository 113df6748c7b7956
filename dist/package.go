// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist provides parametric probability distribution objects.
package dist // import "github.com/dsmath/go-distfit/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// tailEps is the tail mass left outside the practical Bounds of
// distributions with infinite support.
const tailEps = 1e-10
