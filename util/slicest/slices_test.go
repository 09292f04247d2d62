// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package slicest

import (
	"reflect"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestMapI(t *testing.T) {
	got := MapI([]string{"a", "b"}, func(i int, s string) string { return s + strconv.Itoa(i) })
	if !reflect.DeepEqual(got, []string{"a0", "b1"}) {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestIndexFunc(t *testing.T) {
	s := []string{"", "x", ""}
	if i := IndexFunc(s, func(v string) bool { return v == "" }); i != 0 {
		t.Fatalf("expected 0, got %d", i)
	}
	if i := IndexFunc(s, func(v string) bool { return v == "y" }); i != -1 {
		t.Fatalf("expected -1, got %d", i)
	}
}
