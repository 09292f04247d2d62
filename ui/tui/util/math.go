// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import "cmp"

// Clamp limits v to [lo, hi]. lo wins when the bounds cross.
func Clamp[T cmp.Ordered](lo, v, hi T) T {
	return max(min(v, hi), lo)
}
