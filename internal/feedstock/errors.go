package feedstock

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is().
var (
	// ErrUnknownFeedstock indicates a catalog lookup for a name that is
	// not in the built-in library.
	ErrUnknownFeedstock = constError("unknown feedstock")

	// ErrDuplicateFeedstock indicates two active feedstocks share a name.
	ErrDuplicateFeedstock = constError("duplicate feedstock name")
)
