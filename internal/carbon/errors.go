package carbon

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors comparable with errors.Is().
var (
	// ErrInvalidUnit indicates an unrecognized carbon unit.
	ErrInvalidUnit = constError("invalid carbon unit")

	// ErrCalculationOverflow indicates a value too large to calculate safely.
	ErrCalculationOverflow = constError("calculation overflow")
)
