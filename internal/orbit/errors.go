package orbit

import "errors"

var (
	// ErrEccentricity marks an eccentricity outside [0,1); such an
	// orbit is open and cannot be looped.
	ErrEccentricity = errors.New("eccentricity must be in [0,1)")

	// ErrSemiMajor marks a non-positive semi-major axis.
	ErrSemiMajor = errors.New("semi-major axis must be positive")
)
