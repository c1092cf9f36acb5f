package cocoon

import "errors"

var (
	// ErrEmptyImage is returned when a nil or zero-sized image reaches the pipeline.
	ErrEmptyImage = errors.New("cocoon: empty image")

	// ErrInvalidParams wraps every parameter validation failure.
	ErrInvalidParams = errors.New("cocoon: invalid parameters")
)
