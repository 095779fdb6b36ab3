package examples

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Catalog errors, comparable with errors.Is.
var (
	ErrEmptyCatalog = constError("catalog is empty")
	ErrMissingID    = constError("example id is empty")
	ErrDuplicateID  = constError("duplicate example id")
	ErrInvalidValue = constError("example value must be finite and positive")
)
