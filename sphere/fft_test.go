package sphere

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestRFFTPlanRejectsNonPowerOfTwoHalfLength(t *testing.T) {
	if _, err := newRFFTPlan(12); err == nil {
		t.Fatalf("expected an error: nlon/2=6 is not a power of two")
	}
	if _, err := newRFFTPlan(16); err != nil {
		t.Fatalf("nlon=16 should be valid: %v", err)
	}
}

func TestForwardRowExtractsSingleCosineMode(t *testing.T) {
	const nlon = 8
	p, err := newRFFTPlan(nlon)
	if err != nil {
		t.Fatalf("newRFFTPlan: %v", err)
	}

	for _, m0 := range []int{1, 2, 3} {
		g := make([]float64, nlon)
		for i := range g {
			g[i] = math.Cos(2 * math.Pi * float64(m0) * float64(i) / float64(nlon))
		}
		dst := make([]complex128, nlon/2+1)
		p.forwardRow(dst, g, nlon/2)

		for m, c := range dst {
			want := complex(0, 0)
			if m == m0 {
				want = complex(0.5, 0)
			}
			if cmplx.Abs(c-want) > 1e-9 {
				t.Fatalf("m0=%d: dst[%d]=%v, want %v", m0, m, c, want)
			}
		}
	}
}

func TestForwardRowExtractsConstant(t *testing.T) {
	const nlon = 8
	p, err := newRFFTPlan(nlon)
	if err != nil {
		t.Fatalf("newRFFTPlan: %v", err)
	}
	g := make([]float64, nlon)
	for i := range g {
		g[i] = 3.0
	}
	dst := make([]complex128, nlon/2+1)
	p.forwardRow(dst, g, nlon/2)
	if cmplx.Abs(dst[0]-complex(3, 0)) > 1e-9 {
		t.Fatalf("dst[0]=%v, want 3", dst[0])
	}
	for m := 1; m < len(dst); m++ {
		if cmplx.Abs(dst[m]) > 1e-9 {
			t.Fatalf("dst[%d]=%v, want 0", m, dst[m])
		}
	}
}

func TestRealFFTRoundTrip(t *testing.T) {
	const nlon = 16
	p, err := newRFFTPlan(nlon)
	if err != nil {
		t.Fatalf("newRFFTPlan: %v", err)
	}
	maxMode := nlon / 2

	src := make([]complex128, maxMode+1)
	for m := range src {
		src[m] = complex(float64(m+1)*0.3, float64(m)*-0.1)
	}
	src[0] = complex(real(src[0]), 0)
	src[maxMode] = complex(real(src[maxMode]), 0)

	g := make([]float64, nlon)
	p.inverseRow(g, src, maxMode)

	dst := make([]complex128, maxMode+1)
	p.forwardRow(dst, g, maxMode)

	for m := range src {
		if cmplx.Abs(dst[m]-src[m]) > 1e-9 {
			t.Fatalf("mode %d: round trip got %v, want %v", m, dst[m], src[m])
		}
	}
}
