package locus

import "errors"

var (
	// ErrBadConfig indicates a Config that fails Validate.
	ErrBadConfig = errors.New("locus: invalid config")
	// ErrBadBounds indicates negative, non-finite or reversed current bounds.
	ErrBadBounds = errors.New("locus: invalid current bounds")
	// ErrBadMode indicates an unknown Mode or one with unusable voltages.
	ErrBadMode = errors.New("locus: invalid mode")
	// ErrBadPoint indicates a Point whose coordinates cannot be resolved.
	ErrBadPoint = errors.New("locus: invalid operating point")
	// ErrNoCurrent indicates that the sweep's upper current bound resolved
	// to zero: the chosen mode never leaves cutoff.
	ErrNoCurrent = errors.New("locus: no anode current in the sweep range")
)
