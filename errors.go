package lattice

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by the checked accessors when a coordinate falls
// outside the grid. Match with errors.Is.
var ErrOutOfBounds = errors.New("Index out of bounds")

// Validation reasons reported by ValidationError.
const (
	// ReasonNonPositive marks a width or height of zero or less.
	ReasonNonPositive = "non-positive dimension"
	// ReasonNonInteger marks a fractional dimension. It cannot arise from
	// New itself (dimensions are ints) but is produced by front-ends such
	// as the scene loader, where dimensions arrive as untyped numbers.
	ReasonNonInteger = "non-integer dimension"
	// ReasonTooLarge marks a width*height product above MaxCells.
	ReasonTooLarge = "dimensions too large"
)

// ValidationError reports a rejected grid construction. Dimension names the
// offending dimension ("width" or "height") when a single one is at fault;
// it is empty for ReasonTooLarge, which concerns the product.
type ValidationError struct {
	Dimension string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.Dimension == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Dimension)
}
