package sphere

// This file implements spec.md §4.5: the spectral vector operators
// relating vorticity/divergence to velocity components, built directly
// in spectral space from latitudinal derivatives of the Legendre
// functions (the d_legendre table). The underlying identity is the
// classical spectral shallow-water transform (Hack & Jakob-style
// vrtdiv/synthesis pair): writing U = u*cosφ, V = v*cosφ,
//
//	U_F[m,j] = (1/a) sum_n [ i*m*P̃_{n,m}(j)*chi_{n,m} - H_{n,m}(j)*psi_{n,m} ]
//	V_F[m,j] = (1/a) sum_n [ i*m*P̃_{n,m}(j)*psi_{n,m} + H_{n,m}(j)*chi_{n,m} ]
//
// where H is the stored d_legendre quantity (1-mu^2) dP̃/dmu = cosφ
// dP̃/dφ, and psi = -inv_laplacian*zeta, chi = -inv_laplacian*D. The
// inverse (vorticity_divergence_from_velocities) recovers zeta, D
// directly via the adjoint projection, which is exactly
// combine_fourier_to_spectral applied twice with the sign/operand
// pairing below.

// legendreSynthesizeDeriv is legendreSynthesize but weighted by the
// d_legendre table instead of the plain Legendre table: it synthesizes
// cosφ d/dφ of the field whose spectral coefficients are x.
func (s *SpectralSphere) legendreSynthesizeDeriv(x []complex128, f []complex128) {
	for m := 0; m <= s.ntrunc; m++ {
		fCol := f[m*s.nlat : (m+1)*s.nlat]
		for j := 0; j < s.nlat; j++ {
			fCol[j] = 0
		}
		for n := m; n <= s.ntrunc; n++ {
			k := s.SpecIndex(n, m)
			d := s.legendre.drow(k)
			xk := x[k]
			for j := 0; j < s.nlat; j++ {
				fCol[j] += complex(d[j], 0) * xk
			}
		}
	}
}

// CombineFourierToSpectral is the shared analysis kernel of spec.md
// §4.5 point 3:
//
//	X[k(n,m)] = sum_j w_j (signA*H_{n,m}(j)*A[m,j] + signB*i*m*P̃_{n,m}(j)*B[m,j]) / (a*(1-mu_j^2))
func (s *SpectralSphere) CombineFourierToSpectral(a, b []complex128, signA, signB float64, x []complex128) error {
	if err := s.checkConstructed(); err != nil {
		return err
	}
	if err := s.checkFourierShape(a); err != nil {
		return err
	}
	if err := s.checkFourierShape(b); err != nil {
		return err
	}
	if err := s.checkSpectralShape(x); err != nil {
		return err
	}

	w := s.gaussianWeights
	mu := s.gaussianLatitudes
	radius := s.radius

	for m := 0; m <= s.ntrunc; m++ {
		aCol := a[m*s.nlat : (m+1)*s.nlat]
		bCol := b[m*s.nlat : (m+1)*s.nlat]
		imM := complex(0, float64(m))
		for n := m; n <= s.ntrunc; n++ {
			k := s.SpecIndex(n, m)
			d := s.legendre.drow(k)
			p := s.legendre.row(k)
			var sum complex128
			for j := 0; j < s.nlat; j++ {
				denom := radius * (1 - mu[j]*mu[j])
				term := complex(signA*d[j], 0)*aCol[j] + complex(signB, 0)*imM*complex(p[j], 0)*bCol[j]
				sum += complex(w[j]/denom, 0) * term
			}
			x[k] = sum
		}
	}
	return nil
}

// VelocitiesFromVorticityDivergence synthesizes u*cosφ and v*cosφ grid
// fields from spectral vorticity and divergence, per spec.md §4.5.
func (s *SpectralSphere) VelocitiesFromVorticityDivergence(zeta, div []complex128, uCosPhi, vCosPhi []float64) error {
	if err := s.checkConstructed(); err != nil {
		return err
	}
	if err := s.checkSpectralShape(zeta); err != nil {
		return err
	}
	if err := s.checkSpectralShape(div); err != nil {
		return err
	}
	if err := s.checkGridShape(uCosPhi); err != nil {
		return err
	}
	if err := s.checkGridShape(vCosPhi); err != nil {
		return err
	}

	psi := make([]complex128, s.nmdim)
	chi := make([]complex128, s.nmdim)
	for k := 0; k < s.nmdim; k++ {
		psi[k] = complex(-s.invLaplacian[k], 0) * zeta[k]
		chi[k] = complex(-s.invLaplacian[k], 0) * div[k]
	}

	fsize := (s.ntrunc + 1) * s.nlat
	psiF := make([]complex128, fsize)
	chiF := make([]complex128, fsize)
	dPsiF := make([]complex128, fsize)
	dChiF := make([]complex128, fsize)
	s.legendreSynthesize(psi, psiF)
	s.legendreSynthesize(chi, chiF)
	s.legendreSynthesizeDeriv(psi, dPsiF)
	s.legendreSynthesizeDeriv(chi, dChiF)

	uF := make([]complex128, fsize)
	vF := make([]complex128, fsize)
	invA := complex(1/s.radius, 0)
	for m := 0; m <= s.ntrunc; m++ {
		imM := complex(0, float64(m))
		for j := 0; j < s.nlat; j++ {
			idx := m*s.nlat + j
			uF[idx] = (imM*chiF[idx] - dPsiF[idx]) * invA
			vF[idx] = (imM*psiF[idx] + dChiF[idx]) * invA
		}
	}

	if err := s.RealFFTRows(uCosPhi, uF, Inverse); err != nil {
		return err
	}
	return s.RealFFTRows(vCosPhi, vF, Inverse)
}

// VorticityDivergenceFromVelocities recovers spectral vorticity and
// divergence directly from grid fields u*cosφ, v*cosφ, without an
// intermediate streamfunction. It is the inverse of
// VelocitiesFromVorticityDivergence.
func (s *SpectralSphere) VorticityDivergenceFromVelocities(uCosPhi, vCosPhi []float64, zeta, div []complex128) error {
	if err := s.checkConstructed(); err != nil {
		return err
	}
	if err := s.checkGridShape(uCosPhi); err != nil {
		return err
	}
	if err := s.checkGridShape(vCosPhi); err != nil {
		return err
	}
	if err := s.checkSpectralShape(zeta); err != nil {
		return err
	}
	if err := s.checkSpectralShape(div); err != nil {
		return err
	}

	fsize := (s.ntrunc + 1) * s.nlat
	uF := make([]complex128, fsize)
	vF := make([]complex128, fsize)
	if err := s.RealFFTRows(uCosPhi, uF, Forward); err != nil {
		return err
	}
	if err := s.RealFFTRows(vCosPhi, vF, Forward); err != nil {
		return err
	}

	if err := s.CombineFourierToSpectral(uF, vF, -1, -1, zeta); err != nil {
		return err
	}
	return s.CombineFourierToSpectral(vF, uF, +1, -1, div)
}
