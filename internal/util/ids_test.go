package util

import "testing"

func TestNewRunIDIsHexAndUnique(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	if len(a) != 16 {
		t.Fatalf("len(a) = %d, want 16", len(a))
	}
	if a == b {
		t.Fatal("two calls to NewRunID produced the same id")
	}
	for _, c := range a {
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
		if !isHex {
			t.Fatalf("non-hex character %q in %q", c, a)
		}
	}
}
