package device

import "errors"

var (
	// ErrNotImplemented is returned when a device is asked to switch but has
	// no switching law.
	ErrNotImplemented = errors.New("device: switching law not implemented")

	// ErrZeroExponent is returned when the voltage makes the power-law
	// exponent vanish, which leaves the pulse number undefined.
	ErrZeroExponent = errors.New("device: zero switching exponent")

	// ErrDomain is returned when a pulse would produce a value that is not a
	// number.
	ErrDomain = errors.New("device: resistance outside of the model domain")
)
