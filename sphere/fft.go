package sphere

import "math"

// rfftPlan holds the precomputed twiddle factors and bit-reversal table
// for a real FFT of length nlon, implemented as a complex radix-2
// Cooley-Tukey FFT of length nlon/2 plus the packing/unpacking shuffle of
// spec.md §4.3. nlon/2 must be a power of two.
type rfftPlan struct {
	nlon     int
	half     int // nlon/2
	bitrev   []int
	twiddles []complex128 // e^{-i*2*pi*k/half}, k = 0..half/2
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func log2Int(n int) int {
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	return bits
}

func newRFFTPlan(nlon int) (*rfftPlan, error) {
	half := nlon / 2
	if half < 1 || !isPowerOfTwo(half) {
		return nil, invalidGeometryf("nlon/2 (%d) must be a power of two for the radix-2 real FFT", half)
	}

	bits := log2Int(half)
	bitrev := make([]int, half)
	for i := 0; i < half; i++ {
		rev := 0
		x := i
		for b := 0; b < bits; b++ {
			rev = (rev << 1) | (x & 1)
			x >>= 1
		}
		bitrev[i] = rev
	}

	twiddles := make([]complex128, half/2+1)
	for k := range twiddles {
		angle := -2 * math.Pi * float64(k) / float64(half)
		twiddles[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return &rfftPlan{nlon: nlon, half: half, bitrev: bitrev, twiddles: twiddles}, nil
}

// complexFFTInPlace runs an iterative radix-2 Cooley-Tukey transform of
// data (length must equal p.half) without any normalization. inverse
// flips the sign of the exponent; neither direction divides by length,
// matching spec.md §4.3's "forward divides by N; inverse does not"
// convention carried down to this internal half-length transform: the
// single 1/nlon factor is applied in forwardRow.
func (p *rfftPlan) complexFFTInPlace(data []complex128, inverse bool) {
	n := p.half
	for i, r := range p.bitrev {
		if r > i {
			data[i], data[r] = data[r], data[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		stride := n / size
		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				tw := p.twiddles[j*stride]
				if inverse {
					tw = complex(real(tw), -imag(tw))
				}
				u := data[start+j]
				v := data[start+j+half] * tw
				data[start+j] = u + v
				data[start+j+half] = u - v
			}
		}
	}
}

// forwardRow computes F[m] = (1/nlon) * DFT(g)[m] for m = 0..maxMode,
// where g has length nlon (real) and maxMode <= nlon/2.
func (p *rfftPlan) forwardRow(dst []complex128, src []float64, maxMode int) {
	n := p.half
	z := make([]complex128, n)
	for k := 0; k < n; k++ {
		z[k] = complex(src[2*k], src[2*k+1])
	}
	p.complexFFTInPlace(z, false)

	invN := 1 / float64(p.nlon)
	for m := 0; m <= maxMode; m++ {
		var g complex128
		switch {
		case m == 0:
			g = complex(real(z[0])+imag(z[0]), 0)
		case m == n:
			g = complex(real(z[0])-imag(z[0]), 0)
		default:
			mirror := z[n-m]
			e := (z[m] + cmplxConj(mirror)) / 2
			o := complex(0, -1) * (z[m] - cmplxConj(mirror)) / 2
			angle := -2 * math.Pi * float64(m) / float64(p.nlon)
			w := complex(math.Cos(angle), math.Sin(angle))
			g = e + w*o
		}
		dst[m] = g * complex(invN, 0)
	}
}

// inverseRow reconstructs a real row of length nlon from F[0..maxMode]
// (modes above maxMode, up to nlon/2, are treated as zero), using the
// Hermitian symmetry of a real row's spectrum to pack it into a
// half-length complex inverse FFT. No normalization is applied.
func (p *rfftPlan) inverseRow(dst []float64, src []complex128, maxMode int) {
	n := p.half
	c := make([]complex128, n)

	fAt := func(m int) complex128 {
		if m <= maxMode {
			return src[m]
		}
		return 0
	}
	// F[Nh - m'] when Nh - m' itself must be reflected through the
	// Hermitian extension if it exceeds Nh; for m' in [0, Nh-1] we only
	// ever need F at indices in [0, Nh], all directly available or zero.
	fMirror := func(m int) complex128 {
		if m == 0 {
			return fAt(n) // F[Nh]
		}
		return cmplxConj(fAt(n - m))
	}

	for m := 0; m < n; m++ {
		fm := fAt(m)
		mirror := fMirror(m)
		a := fm + mirror
		angle := 2 * math.Pi * float64(m) / float64(p.nlon)
		w := complex(math.Cos(angle), math.Sin(angle))
		b := w * (fm - mirror)
		c[m] = a + complex(0, 1)*b
	}

	p.complexFFTInPlace(c, true)

	for k := 0; k < n; k++ {
		dst[2*k] = real(c[k])
		dst[2*k+1] = imag(c[k])
	}
}

func cmplxConj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
