package sphere

// Grid fields G[nlon,nlat] are stored flat, latitude-major over
// contiguous longitude rows: G[i,j] = g[j*nlon+i]. Fourier matrices
// F[ntrunc+1,nlat] are stored flat with latitude contiguous within each
// zonal wavenumber: F[m,j] = f[m*nlat+j], matching spec.md §9's
// direction to keep latitude innermost during the Legendre transform.

// RealFFTRows performs the real FFT along longitude described in
// spec.md §4.3. Forward: g (grid, nlon*nlat) -> f (Fourier,
// (ntrunc+1)*nlat). Inverse: f -> g, with modes above ntrunc treated as
// zero.
func (s *SpectralSphere) RealFFTRows(g []float64, f []complex128, dir Direction) error {
	if err := s.checkConstructed(); err != nil {
		return err
	}
	if err := s.checkGridShape(g); err != nil {
		return err
	}
	if err := s.checkFourierShape(f); err != nil {
		return err
	}

	switch dir {
	case Forward:
		for j := 0; j < s.nlat; j++ {
			row := g[j*s.nlon : (j+1)*s.nlon]
			col := make([]complex128, s.ntrunc+1)
			s.fft.forwardRow(col, row, s.ntrunc)
			for m := 0; m <= s.ntrunc; m++ {
				f[m*s.nlat+j] = col[m]
			}
		}
	case Inverse:
		for j := 0; j < s.nlat; j++ {
			col := make([]complex128, s.ntrunc+1)
			for m := 0; m <= s.ntrunc; m++ {
				col[m] = f[m*s.nlat+j]
			}
			s.fft.inverseRow(g[j*s.nlon:(j+1)*s.nlon], col, s.ntrunc)
		}
	default:
		return shapeMismatchf("unknown direction %d", dir)
	}
	return nil
}

// legendreAnalyze projects Fourier coefficients f (one per latitude, per
// zonal wavenumber) onto spectral coefficients x, per spec.md §4.4:
// x[k(n,m)] = sum_j w_j P̃_{n,m}(mu_j) f[m,j].
func (s *SpectralSphere) legendreAnalyze(f []complex128, x []complex128) {
	w := s.gaussianWeights
	for m := 0; m <= s.ntrunc; m++ {
		fCol := f[m*s.nlat : (m+1)*s.nlat]
		for n := m; n <= s.ntrunc; n++ {
			k := s.SpecIndex(n, m)
			p := s.legendre.row(k)
			var sum complex128
			for j := 0; j < s.nlat; j++ {
				sum += complex(w[j]*p[j], 0) * fCol[j]
			}
			x[k] = sum
		}
	}
}

// legendreSynthesize is the dual of legendreAnalyze: spec.md §4.4,
// f[m,j] = sum_{n=m}^{ntrunc} P̃_{n,m}(mu_j) x[k(n,m)].
func (s *SpectralSphere) legendreSynthesize(x []complex128, f []complex128) {
	for m := 0; m <= s.ntrunc; m++ {
		fCol := f[m*s.nlat : (m+1)*s.nlat]
		for j := 0; j < s.nlat; j++ {
			fCol[j] = 0
		}
		for n := m; n <= s.ntrunc; n++ {
			k := s.SpecIndex(n, m)
			p := s.legendre.row(k)
			xk := x[k]
			for j := 0; j < s.nlat; j++ {
				fCol[j] += complex(p[j], 0) * xk
			}
		}
	}
}

// ScalarTransform moves a scalar field between grid space and spectral
// space. Forward = real FFT followed by Legendre analysis; inverse =
// Legendre synthesis followed by the inverse real FFT.
func (s *SpectralSphere) ScalarTransform(g []float64, x []complex128, dir Direction) error {
	if err := s.checkConstructed(); err != nil {
		return err
	}
	if err := s.checkGridShape(g); err != nil {
		return err
	}
	if err := s.checkSpectralShape(x); err != nil {
		return err
	}

	f := make([]complex128, (s.ntrunc+1)*s.nlat)
	switch dir {
	case Forward:
		if err := s.RealFFTRows(g, f, Forward); err != nil {
			return err
		}
		s.legendreAnalyze(f, x)
	case Inverse:
		s.legendreSynthesize(x, f)
		if err := s.RealFFTRows(g, f, Inverse); err != nil {
			return err
		}
	default:
		return shapeMismatchf("unknown direction %d", dir)
	}
	return nil
}
