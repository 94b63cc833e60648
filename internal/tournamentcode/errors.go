package tournamentcode

import "errors"

var (
	ErrInvalidConfig    = errors.New("invalid game configuration")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidAttribute = errors.New("invalid attribute")
	ErrInvalidValue     = errors.New("invalid value")
)

// IsValidationError reports whether err was produced by validating user input,
// as opposed to an unexpected failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidAttribute) ||
		errors.Is(err, ErrInvalidValue)
}
