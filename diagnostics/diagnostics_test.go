package diagnostics

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spharm/sphere"
)

func newTestSphere(t *testing.T) *sphere.SpectralSphere {
	t.Helper()
	s, err := sphere.New(8, 6, 4, 1.0)
	if err != nil {
		t.Fatalf("sphere.New: %v", err)
	}
	return s
}

func TestComputeReportsHealthyMetrics(t *testing.T) {
	s := newTestSphere(t)
	defer s.Release()

	m, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if math.Abs(m.QuadratureWeightSum-2) > 1e-9 {
		t.Fatalf("QuadratureWeightSum=%g, want ~2", m.QuadratureWeightSum)
	}
	if m.OrthonormalResidual > 1e-8 {
		t.Fatalf("OrthonormalResidual=%g, want ~0", m.OrthonormalResidual)
	}
	if m.RoundTripRMSE > 1e-8 {
		t.Fatalf("RoundTripRMSE=%g, want ~0", m.RoundTripRMSE)
	}
	if m.LaplacianResidual > 1e-9 {
		t.Fatalf("LaplacianResidual=%g, want ~0", m.LaplacianResidual)
	}
}

func TestCrossCheckFFTAgreesWithReference(t *testing.T) {
	s := newTestSphere(t)
	defer s.Release()

	row := make([]float64, s.Nlon())
	for i := range row {
		row[i] = math.Cos(2*math.Pi*float64(i)/float64(s.Nlon())) + 0.5
	}

	diff, err := CrossCheckFFT(s, row)
	if err != nil {
		t.Fatalf("CrossCheckFFT: %v", err)
	}
	if diff > 1e-8 {
		t.Fatalf("CrossCheckFFT max abs diff=%g, want ~0", diff)
	}
}

func TestCrossCheckFFTRejectsWrongRowLength(t *testing.T) {
	s := newTestSphere(t)
	defer s.Release()

	if _, err := CrossCheckFFT(s, make([]float64, 1)); err == nil {
		t.Fatalf("expected an error for a mis-sized row")
	}
}
