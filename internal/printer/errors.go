package printer

import "errors"

var (
	// ErrInputFormat is returned when the input token is not an integer in the accepted range
	ErrInputFormat = errors.New("input is not a valid integer")

	// ErrEndOfInput is returned when the input closes before a bound was read
	ErrEndOfInput = errors.New("end of input before a number was read")
)
