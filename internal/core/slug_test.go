package core

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ladakh Circuit", "ladakh-circuit"},
		{"  Goa -- Beach!  ", "goa-beach"},
		{"Már 2026", "már-2026"},
		{"---", ""},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRandomSuffix(t *testing.T) {
	a := randomSuffix(4)
	b := randomSuffix(4)
	if len(a) != 8 || len(b) != 8 {
		t.Fatalf("suffix length: got %d and %d, want 8", len(a), len(b))
	}
	if a == b {
		t.Errorf("two suffixes should differ, both %q", a)
	}
}
