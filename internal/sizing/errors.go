package sizing

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is().
var (
	// ErrInvalidPathway indicates a pathway string that is neither
	// "biogas" nor "chp".
	ErrInvalidPathway = constError("invalid output pathway")

	// ErrInvalidLoadingRate indicates a non-positive organic loading rate.
	ErrInvalidLoadingRate = constError("loading rate must be positive")
)
