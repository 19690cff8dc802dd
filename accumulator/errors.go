package accumulator

import "errors"

var (
	ErrPairMissingChild = errors.New("pair hashing requires both child references")
	ErrPeakRange        = errors.New("peak index not in the peaks list")
	ErrCorruptNode      = errors.New("stored node has the wrong shape for its position")
)
