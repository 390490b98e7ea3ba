package sphere

import "math"

// machineEpsilon reproduces the source's "nearest(1,1) - nearest(1,-1)"
// idiom: the smallest step away from 1.0 representable in float64.
var machineEpsilon = math.Nextafter(1, 2) - 1

// gaussianQuadrature computes the nlat roots of the Legendre polynomial
// P_nlat on (-1,1) and the associated quadrature weights, per spec.md
// §4.1. Roots are returned in descending order (north pole first):
// mu[0] > mu[1] > ... > mu[nlat-1], and weights sum to 2.
func gaussianQuadrature(nlat int) (mu []float64, weights []float64, err error) {
	n := nlat
	half := (n + 1) / 2

	// ascending/ascWeights hold the classical south-to-north ordering
	// (x[0] near -1, x[n-1] near +1); reversed into mu/weights below.
	ascending := make([]float64, n)
	ascWeights := make([]float64, n)

	const maxIterations = 100

	for i := 1; i <= half; i++ {
		// Asymptotic seed per spec.md §4.1.
		z := math.Cos(math.Pi * (float64(i) - 0.25) / (float64(n) + 0.5))

		var pDeriv, p1 float64
		converged := false
		for iter := 0; iter < maxIterations; iter++ {
			p2 := 0.0
			p1 = 1.0
			for j := 1; j <= n; j++ {
				p3 := p2
				p2 = p1
				fj := float64(j)
				p1 = ((2*fj-1)*z*p2 - (fj-1)*p3) / fj
			}
			// p1 = P_n(z), p2 = P_{n-1}(z); derivative via
			// P'_n(z) = n(z P_n(z) - P_{n-1}(z)) / (z^2 - 1).
			pDeriv = float64(n) * (z*p1 - p2) / (z*z - 1)
			z1 := z
			z = z1 - p1/pDeriv
			if math.Abs(z-z1) < 10*machineEpsilon {
				converged = true
				break
			}
		}
		if !converged {
			return nil, nil, convergenceFailuref("gaussian quadrature root %d of %d did not converge", i, n)
		}

		ascending[i-1] = -z
		ascending[n-i] = z
		w := 2 / ((1 - z*z) * pDeriv * pDeriv)
		ascWeights[i-1] = w
		ascWeights[n-i] = w
	}

	mu = make([]float64, n)
	weights = make([]float64, n)
	for j := 0; j < n; j++ {
		mu[j] = ascending[n-1-j]
		weights[j] = ascWeights[n-1-j]
	}
	return mu, weights, nil
}
