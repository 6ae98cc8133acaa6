package analysis

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is().
var (
	// ErrNoFeedstocks indicates a project with an empty active set.
	ErrNoFeedstocks = constError("project has no feedstocks")
)
