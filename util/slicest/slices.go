// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers shared by the UI code.
package slicest

// MapI maps every element of s through fn.
// - I: Provides index to callback.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, t := range s {
		result[i] = fn(i, t)
	}
	return result
}

// Map maps every element of s through fn.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U {
		return fn(t)
	})
}

// IndexFunc returns the index of the first element matching fn, or -1.
func IndexFunc[T any, S ~[]T](s S, fn func(T) bool) int {
	for i, t := range s {
		if fn(t) {
			return i
		}
	}
	return -1
}
