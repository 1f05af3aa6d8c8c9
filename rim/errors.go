package rim

import "errors"

var (
	// ErrInvalidWidth indicates a width below 1.
	ErrInvalidWidth = errors.New("rim: width must be at least 1")
	// ErrRingLength indicates the fold slice does not hold 4(width+1) values.
	ErrRingLength = errors.New("rim: fold count must equal 4*(width+1)")
	// ErrFoldValue indicates a fold value outside [0,7].
	ErrFoldValue = errors.New("rim: fold value must be in [0,7]")
)
