package roster

import "errors"

// Error kinds. Callers match with errors.Is; the wrapped message carries
// the detail. Allocation failure isn't modeled: Go aborts the process if
// append can't grow the backing array, there is no recoverable path.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate roll number")
	ErrNoData       = errors.New("no records")
)
