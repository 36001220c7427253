package runes

import "testing"

func TestIndex(t *testing.T) {
	tt := []struct {
		s, sep string
		n      int
	}{
		{"foobar", "", 0},
		{"", "abc", -1},
		{"abc", "abcd", -1},
		{"x", "x", 0},
		{"fooabcbar", "foo", 0},
		{"fooabcbar", "abc", 3},
		{"fooabcbar", "xyz", -1},
		{"fooabcbar", "bar", 6},
		{"私はガラスを食べる", "ガラス", 2},
		{"私は私", "私", 0},
	}
	for _, tc := range tt {
		n := Index([]rune(tc.s), []rune(tc.sep))
		if n != tc.n {
			t.Errorf("Index(%q, %q) is %v; expected %v", tc.s, tc.sep, n, tc.n)
		}
	}
}

func TestIndexRune(t *testing.T) {
	if got := IndexRune([]rune("a\tb"), '\t'); got != 1 {
		t.Errorf("IndexRune got %d want 1", got)
	}
	if got := IndexRune([]rune("ab"), '\n'); got != -1 {
		t.Errorf("IndexRune got %d want -1", got)
	}
}

func TestIsAlnum(t *testing.T) {
	for _, r := range "aZ9_é" {
		if !IsAlnum(r) {
			t.Errorf("IsAlnum(%q) false", r)
		}
	}
	for _, r := range " (\n.-" {
		if IsAlnum(r) {
			t.Errorf("IsAlnum(%q) true", r)
		}
	}
}
