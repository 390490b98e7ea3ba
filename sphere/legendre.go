package sphere

import "math"

// legendreTable holds the normalized associated Legendre functions and
// their latitudinal derivative at every Gaussian node, laid out in the
// canonical spectral ordering of spec.md §4.2.
type legendreTable struct {
	nlat   int
	values []float64 // [nmdim*nlat], row k spans values[k*nlat : (k+1)*nlat]
	deriv  []float64 // (1-mu^2) dP/dmu, same layout
	indexN []int
	indexM []int
}

// k computes the canonical spectral position of (n,m) per spec.md §4.2:
// outer loop m = 0..ntrunc, inner loop n = m..ntrunc.
func specIndex(n, m, ntrunc int) int {
	return m*(ntrunc+1) - m*(m-1)/2 + (n - m)
}

// buildLegendreTable computes P̃_{n,m}(mu_j) and the paired derivative
// quantity (1-mu_j^2) dP̃_{n,m}/dmu at every Gaussian node, for every
// (n,m) with 0 <= m <= n <= ntrunc.
//
// The seed uses a normalization constant of
// sqrt((2m+1)!!/(2m)!!) / sqrt(2) instead of the literal
// sqrt((2m+1)!!/(2m)!!) of spec.md §4.2: both conventions are "4π-style"
// up to the fixed global factor spec.md §9 explicitly leaves open, and
// the extra 1/sqrt(2) is the one that makes the Gaussian-quadrature
// orthonormality sum over mu equal exactly 1 rather than 2 (spec.md §8,
// testable property 2) given that the weights themselves sum to 2
// (testable property 1). See DESIGN.md for the derivation. Because the
// recurrences below are linear and homogeneous in P̃, scaling only the
// seed scales the entire table consistently; nothing else changes.
func buildLegendreTable(mu []float64, ntrunc int) *legendreTable {
	nlat := len(mu)
	nmdim := (ntrunc + 1) * (ntrunc + 2) / 2

	t := &legendreTable{
		nlat:   nlat,
		values: make([]float64, nmdim*nlat),
		deriv:  make([]float64, nmdim*nlat),
		indexN: make([]int, nmdim),
		indexM: make([]int, nmdim),
	}

	row := func(k int) []float64 { return t.values[k*nlat : (k+1)*nlat] }
	drow := func(k int) []float64 { return t.deriv[k*nlat : (k+1)*nlat] }

	logDoubleFactRatio := 0.0 // running sum of log(2k+1) - log(2k), k=1..m

	for m := 0; m <= ntrunc; m++ {
		if m > 0 {
			logDoubleFactRatio += math.Log(float64(2*m+1)) - math.Log(float64(2*m))
		}

		kMM := specIndex(m, m, ntrunc)
		t.indexN[kMM] = m
		t.indexM[kMM] = m
		seedRow := row(kMM)

		for j := 0; j < nlat; j++ {
			u := mu[j]
			oneMinusU2 := 1 - u*u
			logSeed := 0.5*logDoubleFactRatio - 0.5*math.Log(2)
			if m > 0 {
				logSeed += (float64(m) / 2) * math.Log(oneMinusU2)
			}
			seedRow[j] = math.Exp(logSeed)
		}

		// Derivative at n=m: no P_{m-1,m} term exists, so the formula
		// reduces to just the leading -n*mu*P term.
		dRowMM := drow(kMM)
		for j := 0; j < nlat; j++ {
			dRowMM[j] = -float64(m) * mu[j] * seedRow[j]
		}

		if m == ntrunc {
			continue
		}

		// Step: P̃_{m+1,m} = mu sqrt(2m+3) P̃_{m,m}.
		kM1 := specIndex(m+1, m, ntrunc)
		t.indexN[kM1] = m + 1
		t.indexM[kM1] = m
		row1 := row(kM1)
		stepCoeff := math.Sqrt(float64(2*m + 3))
		for j := 0; j < nlat; j++ {
			row1[j] = mu[j] * stepCoeff * seedRow[j]
		}

		dRow1 := drow(kM1)
		cM1 := math.Sqrt(float64((m+1)*(m+1)-m*m) * float64(2*(m+1)+1) / float64(2*(m+1)-1))
		for j := 0; j < nlat; j++ {
			dRow1[j] = -float64(m+1)*mu[j]*row1[j] + cM1*seedRow[j]
		}

		prevPrev := seedRow
		prev := row1

		for n := m + 2; n <= ntrunc; n++ {
			k := specIndex(n, m, ntrunc)
			t.indexN[k] = n
			t.indexM[k] = m
			cur := row(k)

			fn := float64(n)
			fm := float64(m)
			a := math.Sqrt((2*fn + 1) * (2*fn - 1) / ((fn - fm) * (fn + fm)))
			b := math.Sqrt((fn - 1 - fm) * (fn - 1 + fm) / (2*fn - 3) / (2*fn - 1))
			for j := 0; j < nlat; j++ {
				cur[j] = a * (mu[j]*prev[j] - b*prevPrev[j])
			}

			dCur := drow(k)
			c := math.Sqrt((fn*fn-fm*fm)*(2*fn+1)/(2*fn-1))
			for j := 0; j < nlat; j++ {
				dCur[j] = -fn*mu[j]*cur[j] + c*prev[j]
			}

			prevPrev = prev
			prev = cur
		}
	}

	return t
}

// at returns P̃_{n,m}(mu_j) and must only be called with a valid k(n,m).
func (t *legendreTable) at(k, j int) float64 {
	return t.values[k*t.nlat+j]
}

func (t *legendreTable) dat(k, j int) float64 {
	return t.deriv[k*t.nlat+j]
}

func (t *legendreTable) row(k int) []float64 {
	return t.values[k*t.nlat : (k+1)*t.nlat]
}

func (t *legendreTable) drow(k int) []float64 {
	return t.deriv[k*t.nlat : (k+1)*t.nlat]
}
