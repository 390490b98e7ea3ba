package sphere

import (
	"math"
	"testing"
)

func TestSpecIndexCanonicalOrdering(t *testing.T) {
	ntrunc := 4
	k := 0
	for m := 0; m <= ntrunc; m++ {
		for n := m; n <= ntrunc; n++ {
			got := specIndex(n, m, ntrunc)
			if got != k {
				t.Fatalf("specIndex(%d,%d,%d)=%d, want %d", n, m, ntrunc, got, k)
			}
			k++
		}
	}
}

func TestLegendreTableOrthonormal(t *testing.T) {
	ntrunc := 4
	mu, w, err := gaussianQuadrature(6)
	if err != nil {
		t.Fatalf("gaussianQuadrature: %v", err)
	}
	tbl := buildLegendreTable(mu, ntrunc)

	for m := 0; m <= ntrunc; m++ {
		for n1 := m; n1 <= ntrunc; n1++ {
			k1 := specIndex(n1, m, ntrunc)
			for n2 := m; n2 <= ntrunc; n2++ {
				k2 := specIndex(n2, m, ntrunc)
				var sum float64
				for j := range mu {
					sum += w[j] * tbl.at(k1, j) * tbl.at(k2, j)
				}
				want := 0.0
				if n1 == n2 {
					want = 1.0
				}
				if math.Abs(sum-want) > 1e-8 {
					t.Fatalf("m=%d n1=%d n2=%d: orthonormality sum=%g, want %g", m, n1, n2, sum, want)
				}
			}
		}
	}
}

func TestLegendreZonalMeanIsConstant(t *testing.T) {
	mu, _, err := gaussianQuadrature(8)
	if err != nil {
		t.Fatalf("gaussianQuadrature: %v", err)
	}
	tbl := buildLegendreTable(mu, 2)
	k00 := specIndex(0, 0, 2)
	want := 1 / math.Sqrt(2)
	for j := range mu {
		got := tbl.at(k00, j)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("P_0^0 should be constant %g, got %g at j=%d", want, got, j)
		}
	}
}
