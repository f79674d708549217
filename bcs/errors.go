package bcs

import "errors"

var (
	ErrUnexpectedEOF    = errors.New("bcs: unexpected end of input")
	ErrOverflow         = errors.New("bcs: uleb128 overflow")
	ErrNonCanonical     = errors.New("bcs: non-canonical uleb128 encoding")
	ErrInvalidBool      = errors.New("bcs: invalid bool byte")
	ErrInvalidOptionTag = errors.New("bcs: invalid option tag")
	ErrTrailingBytes    = errors.New("bcs: trailing bytes after value")
	ErrSequenceTooLong  = errors.New("bcs: sequence length exceeds limit")
	ErrValueTooLarge    = errors.New("bcs: value does not fit the integer width")
)
