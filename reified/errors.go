package reified

import "errors"

var (
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrUnknownType   = errors.New("unknown type")
	ErrTypeArgCount  = errors.New("wrong number of type arguments")
	ErrNotMoveObject = errors.New("not a move object")
	ErrInvalidField  = errors.New("invalid field")
	ErrPhantom       = errors.New("phantom type has no values")
)
