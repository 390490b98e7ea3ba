package sphere

import (
	"errors"
	"testing"
)

func TestNewRejectsInvalidGeometry(t *testing.T) {
	cases := []struct {
		name               string
		nlon, nlat, ntrunc int
		a                  float64
	}{
		{"odd nlon", 9, 6, 4, 1.0},
		{"nlon/2 not power of two", 12, 6, 4, 1.0},
		{"nlat too small for truncation", 8, 3, 4, 1.0},
		{"negative ntrunc", 8, 6, -1, 1.0},
		{"zero radius", 8, 6, 4, 0},
		{"negative radius", 8, 6, 4, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.nlon, tc.nlat, tc.ntrunc, tc.a); !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("New(%d,%d,%d,%g): got %v, want ErrInvalidGeometry", tc.nlon, tc.nlat, tc.ntrunc, tc.a, err)
			}
		})
	}
}

func TestNewAcceptsValidGeometry(t *testing.T) {
	s, err := New(16, 8, 5, 6371000.0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Release()

	if s.Nlon() != 16 || s.Nlat() != 8 || s.Ntrunc() != 5 {
		t.Fatalf("unexpected geometry: nlon=%d nlat=%d ntrunc=%d", s.Nlon(), s.Nlat(), s.Ntrunc())
	}
	wantNmdim := (5 + 1) * (5 + 2) / 2
	if s.Nmdim() != wantNmdim {
		t.Fatalf("Nmdim()=%d, want %d", s.Nmdim(), wantNmdim)
	}
	if len(s.GaussianLatitudes()) != 8 || len(s.GaussianWeights()) != 8 {
		t.Fatalf("expected 8 Gaussian nodes and weights")
	}
}

func TestLaplacianEigenvalues(t *testing.T) {
	s, err := New(8, 6, 4, 2.0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Release()

	lap := s.Laplacian()
	invLap := s.InvLaplacian()
	for k := 0; k < s.Nmdim(); k++ {
		n := s.IndexN()[k]
		want := -float64(n*(n+1)) / 4.0
		if lap[k] != want {
			t.Fatalf("Laplacian[%d] (n=%d) = %g, want %g", k, n, lap[k], want)
		}
		if n == 0 {
			if invLap[k] != 0 {
				t.Fatalf("InvLaplacian at n=0 should be forced to 0, got %g", invLap[k])
			}
			continue
		}
		if got := invLap[k] * lap[k]; got < 0.999999 || got > 1.000001 {
			t.Fatalf("InvLaplacian[%d]*Laplacian[%d] = %g, want ~1", k, k, got)
		}
	}
}
