package datatable

import "errors"

// Error kinds returned by the package. Every failure wraps exactly one of
// these, so callers can branch with errors.Is while the message keeps the
// operation-specific context.
var (
	// ErrInvalidType is returned when a value's runtime type does not match
	// the column's declared element type.
	ErrInvalidType = errors.New("invalid value type")

	// ErrIndexOutOfBounds is returned when a row or column index is outside
	// the valid range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrNotFound is returned when a name- or identity-based column lookup
	// does not resolve.
	ErrNotFound = errors.New("column not found")

	// ErrTypeMismatch is returned when a typed retrieval requests a type
	// that differs from the column's actual element type, or when a sort
	// key refers to a column whose element type has no natural order.
	ErrTypeMismatch = errors.New("column type mismatch")

	// ErrStructure is returned when a structural change would leave the
	// table violating an aggregate invariant (uneven column lengths or
	// duplicate column names).
	ErrStructure = errors.New("invalid table structure")

	// ErrCrossTableRows is returned when a row handed to a view does not
	// belong to the view's source table.
	ErrCrossTableRows = errors.New("row belongs to a different table")
)
