package graphward

import "errors"

// The four error kinds shared by every component. Components wrap these
// with fmt.Errorf("%w: ...") adding the offending index or value, so
// callers match with errors.Is and humans still get a full message.
var (
	// ErrInvalidArgument indicates a non-positive capacity or size was
	// passed to a constructor.
	ErrInvalidArgument = errors.New("graphward: invalid argument")

	// ErrOutOfRange indicates a vertex or element index outside its valid
	// domain was passed to an operation.
	ErrOutOfRange = errors.New("graphward: index out of range")

	// ErrCapacityExceeded indicates an insertion into a fixed-capacity
	// structure that is already full.
	ErrCapacityExceeded = errors.New("graphward: capacity exceeded")

	// ErrEmptyCollection indicates a removal or extraction from an empty
	// structure.
	ErrEmptyCollection = errors.New("graphward: empty collection")
)
