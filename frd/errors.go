package frd

import "errors"

// Sentinel errors returned across the package. Callers match them with
// errors.Is; contextual detail is added by wrapping with fmt.Errorf.
var (
	// ErrShapeMismatch is returned at construction when the response
	// tensor and the frequency grid disagree, or when smoothing is
	// requested on a grid it cannot be fitted over.
	ErrShapeMismatch = errors.New("frd: response data and frequency grid do not match")

	// ErrDimension is returned when operator operands have incompatible
	// input/output counts after promotion.
	ErrDimension = errors.New("frd: incompatible input/output dimensions")

	// ErrConversion is returned when an operand cannot be coerced onto
	// the target frequency grid, either because its grid differs or
	// because its type is not convertible.
	ErrConversion = errors.New("frd: cannot convert operand to frequency response data")

	// ErrDomain is returned when a frequency outside the grid is queried
	// without interpolation, or when a call argument is not purely
	// imaginary.
	ErrDomain = errors.New("frd: frequency outside the response domain")

	// ErrUnsupported is returned for operations the representation does
	// not define, such as MIMO division.
	ErrUnsupported = errors.New("frd: unsupported operation")

	// ErrConfiguration is returned for invalid option values.
	ErrConfiguration = errors.New("frd: invalid configuration")
)
