package schemaast

import "testing"

func TestBoundedCount(t *testing.T) {
	cases := []struct {
		min       int
		maxFinite bool
		max       int
		want      int
	}{
		{0, false, 0, 0},
		{2, false, 0, 2},
		{0, true, 2, 2},
		{2, true, 5, 5},
		{3, true, 2, 3}, // max <= min: min wins
		{3, true, 3, 3},
	}
	for _, c := range cases {
		if got := boundedCount(c.min, c.maxFinite, c.max); got != c.want {
			t.Errorf("boundedCount(%d, %v, %d) = %d, want %d", c.min, c.maxFinite, c.max, got, c.want)
		}
	}
}

func TestIntOr(t *testing.T) {
	if got := intOr(nil, 7); got != 7 {
		t.Fatalf("intOr(nil, 7) = %d", got)
	}
	n := 3
	if got := intOr(&n, 7); got != 3 {
		t.Fatalf("intOr(&3, 7) = %d", got)
	}
}

func TestFiniteMax(t *testing.T) {
	if finite, _ := finiteMax(nil); finite {
		t.Fatalf("finiteMax(nil) should report false")
	}
	n := 4
	finite, max := finiteMax(&n)
	if !finite || max != 4 {
		t.Fatalf("finiteMax(&4) = %v, %d", finite, max)
	}
}
