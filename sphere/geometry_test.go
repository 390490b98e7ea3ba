package sphere

import (
	"math"
	"testing"
)

func TestAtan2SafeMatchesAtan2AwayFromOrigin(t *testing.T) {
	cases := []struct{ y, x float64 }{
		{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {3, 4}, {-2, -5},
	}
	for _, c := range cases {
		want := math.Atan2(c.y, c.x)
		got := Atan2Safe(c.y, c.x)
		if got != want {
			t.Fatalf("Atan2Safe(%g,%g)=%g, want %g", c.y, c.x, got, want)
		}
	}
}

func TestAtan2SafeReturnsZeroAtOrigin(t *testing.T) {
	if got := Atan2Safe(0, 0); got != 0 {
		t.Fatalf("Atan2Safe(0,0)=%g, want 0", got)
	}
}
