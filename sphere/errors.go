package sphere

import "fmt"

// Sentinel error kinds. Every error this package returns wraps exactly one
// of these so callers can branch with errors.Is instead of parsing messages.
var (
	// ErrInvalidGeometry is returned by New when (nlon, nlat, ntrunc, a) do
	// not describe a valid Gaussian grid / triangular truncation.
	ErrInvalidGeometry = fmt.Errorf("spharm: invalid geometry")

	// ErrShapeMismatch is returned by any transform whose input/output
	// buffers do not match the declared sizes of the SpectralSphere.
	ErrShapeMismatch = fmt.Errorf("spharm: shape mismatch")

	// ErrConvergenceFailure is returned by New if Gaussian root-finding
	// fails to converge within its iteration budget. Should not occur for
	// nlat <= 1e4.
	ErrConvergenceFailure = fmt.Errorf("spharm: convergence failure")
)

func invalidGeometryf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidGeometry}, args...)...)
}

func shapeMismatchf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrShapeMismatch}, args...)...)
}

func convergenceFailuref(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConvergenceFailure}, args...)...)
}
