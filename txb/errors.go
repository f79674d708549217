package txb

import "errors"

var (
	ErrNestedArgument   = errors.New("nesting TransactionArgument is not supported")
	ErrMixedArguments   = errors.New("mixing TransactionArgument with other types is not supported")
	ErrExpectedArray    = errors.New("expected an array for vector type")
	ErrInvalidPrimitive = errors.New("invalid primitive type")
	ErrNotObject        = errors.New("not an object argument")
	ErrUnresolvedObject = errors.New("unresolved object input")
	ErrInvalidDigest    = errors.New("invalid object digest")
	ErrTooManyInputs    = errors.New("too many inputs")
)
