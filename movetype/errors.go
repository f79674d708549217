package movetype

import "errors"

var (
	ErrInvalidAddress    = errors.New("invalid address")
	ErrUnclosedGeneric   = errors.New("unclosed generic")
	ErrInvalidTypeTag    = errors.New("invalid type tag")
	ErrInvalidTarget     = errors.New("invalid move call target")
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
