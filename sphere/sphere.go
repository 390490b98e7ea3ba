// Package sphere implements the spectral transform engine on a Gaussian
// grid of the sphere: the numerical core that moves scalar and vector
// fields between physical grid space (longitude x Gaussian latitude) and
// a truncated spherical-harmonic spectral space.
//
// A SpectralSphere is built once via New and is immutable and read-only
// for the rest of its lifetime; every exposed operation is a pure
// function of its precomputed tables and the caller's buffers, so a
// single SpectralSphere may be shared freely across goroutines.
package sphere

// Direction selects which way a transform runs.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

// lifecycle tracks the two states named in spec.md §4.6.
type lifecycle int

const (
	stateConstructed lifecycle = iota
	stateReleased
)

// SpectralSphere is the core stateful object of this package: a Gaussian
// grid of (nlon, nlat) paired with a triangular spectral truncation T =
// ntrunc, on a sphere of radius a. See spec.md §3 for the full data model.
type SpectralSphere struct {
	nlon   int
	nlat   int
	ntrunc int
	radius float64
	nmdim  int

	gaussianLatitudes []float64
	gaussianWeights   []float64

	legendre *legendreTable

	laplacian    []float64
	invLaplacian []float64

	fft *rfftPlan

	state lifecycle
}

// New precomputes every grid-dependent table for the given geometry.
// nlon must be even with nlon/2 a power of two (§4.3's radix-2
// requirement); nlat must be at least ntrunc+1; a must be positive.
func New(nlon, nlat, ntrunc int, a float64) (*SpectralSphere, error) {
	if nlon <= 0 || nlon%2 != 0 || nlon < 4 {
		return nil, invalidGeometryf("nlon must be even and >= 4, got %d", nlon)
	}
	if ntrunc < 0 {
		return nil, invalidGeometryf("ntrunc must be >= 0, got %d", ntrunc)
	}
	if nlat < ntrunc+1 {
		return nil, invalidGeometryf("nlat (%d) must be >= ntrunc+1 (%d)", nlat, ntrunc+1)
	}
	if a <= 0 {
		return nil, invalidGeometryf("radius a must be > 0, got %g", a)
	}

	fft, err := newRFFTPlan(nlon)
	if err != nil {
		return nil, err
	}

	mu, w, err := gaussianQuadrature(nlat)
	if err != nil {
		return nil, err
	}

	legendreTbl := buildLegendreTable(mu, ntrunc)

	nmdim := (ntrunc + 1) * (ntrunc + 2) / 2
	laplacian := make([]float64, nmdim)
	invLaplacian := make([]float64, nmdim)
	for k := 0; k < nmdim; k++ {
		n := legendreTbl.indexN[k]
		laplacian[k] = -float64(n*(n+1)) / (a * a)
		if n == 0 {
			invLaplacian[k] = 0
		} else {
			invLaplacian[k] = 1 / laplacian[k]
		}
	}

	return &SpectralSphere{
		nlon:              nlon,
		nlat:              nlat,
		ntrunc:            ntrunc,
		radius:            a,
		nmdim:             nmdim,
		gaussianLatitudes: mu,
		gaussianWeights:   w,
		legendre:          legendreTbl,
		laplacian:         laplacian,
		invLaplacian:      invLaplacian,
		fft:               fft,
		state:             stateConstructed,
	}, nil
}

// Release marks the SpectralSphere as no longer usable. Per spec.md
// §4.6 there are exactly two lifecycle states; every other operation
// requires Constructed.
func (s *SpectralSphere) Release() {
	s.state = stateReleased
}

func (s *SpectralSphere) checkConstructed() error {
	if s.state != stateConstructed {
		return shapeMismatchf("operation on a released SpectralSphere")
	}
	return nil
}

// Nlon, Nlat, Ntrunc, Radius, Nmdim expose the fixed geometry of this
// SpectralSphere.
func (s *SpectralSphere) Nlon() int        { return s.nlon }
func (s *SpectralSphere) Nlat() int        { return s.nlat }
func (s *SpectralSphere) Ntrunc() int      { return s.ntrunc }
func (s *SpectralSphere) Radius() float64  { return s.radius }
func (s *SpectralSphere) Nmdim() int       { return s.nmdim }

// GaussianLatitudes returns the sines of the Gaussian latitudes, mu_j,
// ordered north to south. The returned slice is owned by the
// SpectralSphere and must not be mutated.
func (s *SpectralSphere) GaussianLatitudes() []float64 { return s.gaussianLatitudes }

// GaussianWeights returns the quadrature weights paired with
// GaussianLatitudes; they sum to 2.
func (s *SpectralSphere) GaussianWeights() []float64 { return s.gaussianWeights }

// Laplacian returns the eigenvalue -n(n+1)/a^2 of the horizontal
// Laplacian at every spectral position, in canonical order.
func (s *SpectralSphere) Laplacian() []float64 { return s.laplacian }

// InvLaplacian returns the reciprocal of Laplacian, with the n=0 entry
// defined to be 0.
func (s *SpectralSphere) InvLaplacian() []float64 { return s.invLaplacian }

// IndexN and IndexM return the (n,m) pair stored at each spectral
// position, in canonical order.
func (s *SpectralSphere) IndexN() []int { return s.legendre.indexN }
func (s *SpectralSphere) IndexM() []int { return s.legendre.indexM }

// SpecIndex returns the canonical spectral position k(n,m) for this
// SpectralSphere's truncation, per spec.md §4.2.
func (s *SpectralSphere) SpecIndex(n, m int) int { return specIndex(n, m, s.ntrunc) }

func (s *SpectralSphere) checkGridShape(g []float64) error {
	if len(g) != s.nlon*s.nlat {
		return shapeMismatchf("grid field must have length nlon*nlat (%d*%d=%d), got %d", s.nlon, s.nlat, s.nlon*s.nlat, len(g))
	}
	return nil
}

func (s *SpectralSphere) checkFourierShape(f []complex128) error {
	if len(f) != (s.ntrunc+1)*s.nlat {
		return shapeMismatchf("fourier matrix must have length (ntrunc+1)*nlat (%d*%d=%d), got %d", s.ntrunc+1, s.nlat, (s.ntrunc+1)*s.nlat, len(f))
	}
	return nil
}

func (s *SpectralSphere) checkSpectralShape(x []complex128) error {
	if len(x) != s.nmdim {
		return shapeMismatchf("spectral vector must have length nmdim (%d), got %d", s.nmdim, len(x))
	}
	return nil
}
