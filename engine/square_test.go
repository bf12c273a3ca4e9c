package engine

import "testing"

func TestSquareRoundTrip(t *testing.T) {
	cases := []string{"a1", "e5", "i9", "a9", "i1", "e1", "a5"}
	for _, s := range cases {
		sq, err := SquareFromString(s)
		if err != nil {
			t.Fatalf("SquareFromString(%q): %v", s, err)
		}
		if got := sq.String(); got != s {
			t.Errorf("SquareFromString(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestSquareFromStringInvalid(t *testing.T) {
	cases := []string{"", "a", "j1", "a0", "aa", "11"}
	for _, s := range cases {
		if _, err := SquareFromString(s); err == nil {
			t.Errorf("SquareFromString(%q): expected error, got nil", s)
		}
	}
}

func TestIsCorner(t *testing.T) {
	corners := map[Square]bool{
		RowCol(0, 0): true,
		RowCol(0, 8): true,
		RowCol(8, 0): true,
		RowCol(8, 8): true,
		RowCol(0, 1): false,
		RowCol(4, 4): false,
	}
	for sq, want := range corners {
		if got := sq.IsCorner(); got != want {
			t.Errorf("%v.IsCorner() = %v, want %v", sq, got, want)
		}
	}
}

func TestIsCentral(t *testing.T) {
	for row := 3; row <= 5; row++ {
		for col := 3; col <= 5; col++ {
			if !RowCol(row, col).IsCentral() {
				t.Errorf("%v should be central", RowCol(row, col))
			}
		}
	}
	if RowCol(0, 0).IsCentral() {
		t.Errorf("a1 should not be central")
	}
}
